package codec

import (
	"fmt"
)

const (
	b64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	b64Pad      = '='
	b64Invalid  = 0xff
)

// b64Values is the reverse of b64Alphabet, with b64Invalid marking characters outside of it.
var b64Values = func() [256]byte {
	var vals [256]byte
	for i := range vals {
		vals[i] = b64Invalid
	}
	for i := 0; i < len(b64Alphabet); i++ {
		vals[b64Alphabet[i]] = byte(i)
	}
	return vals
}()

// Base64Encode returns the padded, standard Base64 representation of data.
// An empty input results in an empty string.
func Base64Encode(data []byte) string {
	out := make([]byte, 0, (len(data)+2)/3*4)
	full := len(data) / 3 * 3
	for i := 0; i < full; i += 3 {
		word := uint32(data[i])<<16 | uint32(data[i+1])<<8 | uint32(data[i+2])
		out = appendSextets(out, word, 4)
	}

	switch len(data) - full {
	case 1:
		word := uint32(data[full]) << 16
		out = appendSextets(out, word, 2)
		out = append(out, b64Pad, b64Pad)
	case 2:
		word := uint32(data[full])<<16 | uint32(data[full+1])<<8
		out = appendSextets(out, word, 3)
		out = append(out, b64Pad)
	}
	return string(out)
}

// appendSextets emits the first n 6-bit groups of a 24-bit word, most significant first.
func appendSextets(out []byte, word uint32, n int) []byte {
	for i := 0; i < n; i++ {
		shift := 18 - 6*uint(i)
		out = append(out, b64Alphabet[(word>>shift)&0x3f])
	}
	return out
}

// Base64Decode returns the bytes represented by the padded, standard Base64 string s.
// The length of s must be a multiple of 4, and '=' is only valid as one or two trailing characters.
func Base64Decode(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, fmt.Errorf("%w: base64 string length %d is not a multiple of 4", ErrInvalidLength, len(s))
	}
	if len(s) == 0 {
		return []byte{}, nil
	}
	pad, err := b64Padding(s)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(s)/4*3)
	for i := 0; i < len(s); i += 4 {
		var word uint32
		for j := 0; j < 4; j++ {
			val, err := b64Value(s, i+j)
			if err != nil {
				return nil, err
			}
			word = word<<6 | uint32(val)
		}
		out = append(out, byte(word>>16), byte(word>>8), byte(word))
	}
	return out[:len(out)-pad], nil
}

// b64Padding counts the trailing pad characters, rejecting any '=' that isn't part of the trailing padding.
func b64Padding(s string) (int, error) {
	pad := 0
	last := len(s) - 1
	if s[last] == b64Pad {
		pad++
		if s[last-1] == b64Pad {
			pad++
		}
	}
	for i := 0; i < len(s)-pad; i++ {
		if s[i] == b64Pad {
			return 0, fmt.Errorf("%w: padding '=' at position %d is not at the end of the input", ErrInvalidCharacter, i)
		}
	}
	return pad, nil
}

func b64Value(s string, pos int) (byte, error) {
	c := s[pos]
	if c == b64Pad {
		return 0, nil
	}
	val := b64Values[c]
	if val == b64Invalid {
		return 0, fmt.Errorf("%w: %q at position %d is not in the base64 alphabet", ErrInvalidCharacter, c, pos)
	}
	return val, nil
}
