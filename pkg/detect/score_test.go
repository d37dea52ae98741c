package detect

import (
	"testing"

	"github.com/saylorsolutions/cryptopals/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	assert.Zero(t, Score(""))
	assert.Zero(t, Score("!!!"))
	assert.Equal(t, Score("etaoin"), Score("ETAOIN"))
	assert.Greater(t, Score("the kid"), Score("zqx#jvk"))
}

func TestRank(t *testing.T) {
	cands := []Candidate{
		{Text: "zzzz", Key: 1},
		{Text: "the end", Key: 2},
		{Text: "qqqq", Key: 3},
		{Text: "zzzz", Key: 4},
	}
	ranked := Rank(cands)
	assert.Equal(t, []Candidate{
		{Text: "the end", Key: 2},
		{Text: "qqqq", Key: 3},
		{Text: "zzzz", Key: 1},
		{Text: "zzzz", Key: 4},
	}, ranked)
	assert.Equal(t, byte(1), cands[0].Key, "Input should not be reordered")
	assert.Empty(t, Rank(nil))
}

func TestBest(t *testing.T) {
	data, err := codec.HexDecode("1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
	require.NoError(t, err)

	best, ok := Best(data)
	require.True(t, ok)
	assert.Equal(t, Candidate{Text: "Cooking MC's like a pound of bacon", Key: 88}, best)

	_, ok = Best([]byte{0x00, 0x80})
	assert.False(t, ok)
}
