package xor

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey    = errors.New("cannot use empty key")
	ErrOffsetRange = errors.New("key offset out of range")
)

// xorScreen walks a key as a ring buffer, starting at an optional offset.
type xorScreen struct {
	key []byte
	cur int
}

func newXorScreen(key []byte, offset ...int) (*xorScreen, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	s := &xorScreen{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("%w: offset %d for key of len %d", ErrOffsetRange, offset[0], len(key))
		}
		s.cur = offset[0]
	}
	return s, nil
}

func (s *xorScreen) screen(b byte) byte {
	b ^= s.key[s.cur]
	s.cur = (s.cur + 1) % len(s.key)
	return b
}

// apply screens every byte of in, writing the result to a new buffer.
func (s *xorScreen) apply(in []byte) []byte {
	out := make([]byte, len(in))
	for i := 0; i < len(in); i++ {
		out[i] = s.screen(in[i])
	}
	return out
}
