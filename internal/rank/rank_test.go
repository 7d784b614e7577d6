package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/index"
)

func TestSubstringScorer(t *testing.T) {
	s := SubstringScorer{}
	tests := []struct {
		name   string
		tokens []string
		text   string
		want   int
	}{
		{"single match", []string{"v2s"}, "The V2S protocol", 1},
		{"repeated query token counts twice", []string{"v2s", "v2s"}, "v2s", 2},
		{"repeated chunk text counts once", []string{"sdk"}, "sdk sdk sdk", 1},
		{"substring inside word", []string{"access"}, "Accessibility rules", 1},
		{"no match", []string{"bluetooth"}, "wifi only", 0},
		{"cjk", []string{"规", "则", "无"}, "内部SDK规则", 2},
		{"empty tokens", nil, "anything", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Score(tc.tokens, tc.text))
		})
	}
}

func TestRank_OrdersByScoreThenIndexOrder(t *testing.T) {
	chunks := []index.Chunk{
		{Source: "a.pdf", Text: "sdk only"},
		{Source: "b.pdf", Text: "v2s and sdk"},
		{Source: "c.txt", Text: "nothing here"},
		{Source: "d.txt", Text: "v2s sdk again"},
		{Source: "e.txt", Text: "sdk tail"},
	}

	hits := Rank([]string{"v2s", "sdk"}, chunks, SubstringScorer{}, 3)
	require.Len(t, hits, 3)
	assert.Equal(t, Hit{Source: "b.pdf", Text: "v2s and sdk", Score: 2}, hits[0])
	assert.Equal(t, Hit{Source: "d.txt", Text: "v2s sdk again", Score: 2}, hits[1])
	assert.Equal(t, Hit{Source: "a.pdf", Text: "sdk only", Score: 1}, hits[2])
}

func TestRank_FiltersZeroScores(t *testing.T) {
	chunks := []index.Chunk{
		{Source: "a.txt", Text: "alpha"},
		{Source: "b.txt", Text: "beta"},
	}
	hits := Rank([]string{"beta"}, chunks, nil, 3)
	require.Len(t, hits, 1)
	assert.Equal(t, "b.txt", hits[0].Source)

	assert.Empty(t, Rank([]string{"gamma"}, chunks, nil, 3))
}

func TestRank_EmptyInputs(t *testing.T) {
	chunks := []index.Chunk{{Source: "a.txt", Text: "alpha"}}
	assert.Nil(t, Rank(nil, chunks, nil, 3))
	assert.Nil(t, Rank([]string{"alpha"}, nil, nil, 3))
	assert.Nil(t, Rank([]string{"alpha"}, chunks, nil, 0))
}

type lengthScorer struct{}

func (lengthScorer) Score(_ []string, text string) int { return len(text) }

func TestRank_CustomScorer(t *testing.T) {
	chunks := []index.Chunk{
		{Source: "short", Text: "ab"},
		{Source: "long", Text: "abcdef"},
	}
	hits := Rank([]string{"x"}, chunks, lengthScorer{}, 1)
	require.Len(t, hits, 1)
	assert.Equal(t, "long", hits[0].Source)
}
