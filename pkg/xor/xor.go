package xor

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch = errors.New("buffers must be the same length")
)

// Fixed returns a new buffer where each byte is a[i] ^ b[i].
// ErrLengthMismatch is returned if a and b are not the same length.
func Fixed(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return []byte{}, nil
	}
	scr, err := newXorScreen(b)
	if err != nil {
		return nil, err
	}
	return scr.apply(a), nil
}

// SingleByte returns a new buffer with every byte of buf XOR'd with key.
func SingleByte(buf []byte, key byte) []byte {
	scr := &xorScreen{key: []byte{key}}
	return scr.apply(buf)
}

// Repeating applies key to buf as a ring buffer, starting at the optional offset.
// This is the general form of both Fixed and SingleByte.
func Repeating(buf, key []byte, offset ...int) ([]byte, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return scr.apply(buf), nil
}
