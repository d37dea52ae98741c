package xor

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// GenKey will generate an XOR key with the given length.
func GenKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a 0-length key")
	}
	buf := make([]byte, length)
	n, err := rand.Read(buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return buf, nil
}

// GenSingleKey generates a single key byte for use with SingleByte.
func GenSingleKey() (byte, error) {
	key, err := GenKey(1)
	if err != nil {
		return 0, err
	}
	return key[0], nil
}
