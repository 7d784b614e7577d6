// Package rank scores indexed chunks against query tokens and selects the
// best matches.
package rank

import (
	"sort"
	"strings"

	"docsearch/internal/index"
)

// DefaultTopK is the number of hits a search returns.
const DefaultTopK = 3

// Scorer assigns a relevance score to a chunk for a tokenized query.
type Scorer interface {
	Score(tokens []string, text string) int
}

// SubstringScorer counts query tokens, with repetition, that occur anywhere
// in the lowercased chunk text. It has no notion of word boundaries, so
// "v2" matches inside "v2s".
type SubstringScorer struct{}

func (SubstringScorer) Score(tokens []string, text string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			score++
		}
	}
	return score
}

// Hit is a chunk with its score for one query.
type Hit struct {
	Source string
	Text   string
	Score  int
}

// Rank scores every chunk, orders them by descending score, and returns at
// most k hits with a positive score. Equal scores keep index order.
func Rank(tokens []string, chunks []index.Chunk, scorer Scorer, k int) []Hit {
	if len(tokens) == 0 || k <= 0 {
		return nil
	}
	if scorer == nil {
		scorer = SubstringScorer{}
	}

	hits := make([]Hit, len(chunks))
	for i, c := range chunks {
		hits[i] = Hit{Source: c.Source, Text: c.Text, Score: scorer.Score(tokens, c.Text)}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	var top []Hit
	for _, h := range hits {
		if h.Score <= 0 || len(top) == k {
			break
		}
		top = append(top, h)
	}
	return top
}
