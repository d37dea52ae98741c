package xor

import (
	"testing"

	"github.com/saylorsolutions/cryptopals/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	a, err := codec.HexDecode("1c0111001f010100061a024b53535009181c")
	require.NoError(t, err)
	b, err := codec.HexDecode("686974207468652062756c6c277320657965")
	require.NoError(t, err)
	expected, err := codec.HexDecode("746865206b696420646f6e277420706c6179")
	require.NoError(t, err)

	out, err := Fixed(a, b)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
	assert.Equal(t, "the kid don't play", string(out))
}

func TestFixed_Neg(t *testing.T) {
	tests := map[string]struct {
		a, b []byte
	}{
		"Shorter left":   {a: []byte("a"), b: []byte("ab")},
		"Shorter right":  {a: []byte("ab"), b: []byte("a")},
		"Empty and some": {a: nil, b: []byte{0x0}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := Fixed(tc.a, tc.b)
			assert.ErrorIs(t, err, ErrLengthMismatch)
			assert.Nil(t, out)
		})
	}
}

func TestFixed_Empty(t *testing.T) {
	out, err := Fixed(nil, []byte{})
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestFixed_Inverse(t *testing.T) {
	for _, length := range []int{1, 2, 3, 17, 256} {
		a, err := GenKey(length)
		require.NoError(t, err)
		b, err := GenKey(length)
		require.NoError(t, err)
		origA := append([]byte{}, a...)

		once, err := Fixed(a, b)
		require.NoError(t, err)
		assert.Len(t, once, length)
		twice, err := Fixed(once, b)
		require.NoError(t, err)
		assert.Equal(t, a, twice)
		assert.Equal(t, origA, a, "Input should not be modified")
	}
}

func TestSingleByte(t *testing.T) {
	assert.Equal(t, []byte{0x1, 0xfe, 0x0}, SingleByte([]byte{0x0, 0xff, 0x1}, 0x1))
	assert.Equal(t, []byte("Cooking"), SingleByte([]byte{0x1b, 0x37, 0x37, 0x33, 0x31, 0x36, 0x3f}, 88))
	assert.Empty(t, SingleByte(nil, 0x42))
	assert.NotNil(t, SingleByte(nil, 0x42))
}

func TestSingleByte_Inverse(t *testing.T) {
	buf, err := GenKey(64)
	require.NoError(t, err)
	orig := append([]byte{}, buf...)
	for k := 0; k <= 255; k++ {
		once := SingleByte(buf, byte(k))
		assert.Len(t, once, len(buf))
		assert.Equal(t, buf, SingleByte(once, byte(k)))
	}
	assert.Equal(t, orig, buf, "Input should not be modified")
}

func TestRepeating(t *testing.T) {
	out, err := Repeating([]byte{0x0, 0x1}, []byte{0x0, 0x1, 0x1, 0x2}, 1)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x1, 0x0}, out)

	_, err = Repeating([]byte{0x0}, nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
}
