package codec

import "errors"

var (
	ErrInvalidLength    = errors.New("invalid input length")
	ErrInvalidCharacter = errors.New("invalid character")
)
