package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewXorScreenNeg(t *testing.T) {
	_, err := newXorScreen(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = newXorScreen([]byte{0}, -1)
	assert.ErrorIs(t, err, ErrOffsetRange)
	_, err = newXorScreen([]byte{0}, 1)
	assert.ErrorIs(t, err, ErrOffsetRange)
	_, err = newXorScreen([]byte{0}, 2)
	assert.ErrorIs(t, err, ErrOffsetRange)
}

func TestXorScreen_Apply(t *testing.T) {
	scr, err := newXorScreen([]byte{0x0, 0x1, 0x1, 0x2}, 1)
	assert.NoError(t, err)
	in := []byte{0x0, 0x1, 0x0, 0x1, 0x0}
	out := scr.apply(in)
	assert.Equal(t, []byte{0x1, 0x0, 0x2, 0x1, 0x1}, out)
	assert.Equal(t, []byte{0x0, 0x1, 0x0, 0x1, 0x0}, in, "Input should not be modified")
}
