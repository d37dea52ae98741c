package codec

import (
	"fmt"
)

const hexDigits = "0123456789abcdef"

// HexEncode returns the lowercase hex representation of data.
func HexEncode(data []byte) string {
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return string(out)
}

// HexDecode returns the bytes represented by the hex string s.
// Digits a-f may be upper or lower case.
func HexDecode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: hex string has odd length %d", ErrInvalidLength, len(s))
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, err := hexNibble(s, i)
		if err != nil {
			return nil, err
		}
		lo, err := hexNibble(s, i+1)
		if err != nil {
			return nil, err
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

func hexNibble(s string, pos int) (byte, error) {
	c := s[pos]
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("%w: %q at position %d is not a hex digit", ErrInvalidCharacter, c, pos)
	}
}
