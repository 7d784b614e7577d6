package tokenizer

import (
	"regexp"
	"strings"
)

// tokenRe matches runs of ASCII word characters, or a single CJK ideograph.
var tokenRe = regexp.MustCompile(`[0-9A-Za-z_]+|[\x{4e00}-\x{9fff}]`)

// Tokenize splits text into lowercase tokens in order of occurrence.
func Tokenize(text string) []string {
	matches := tokenRe.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}
	return tokens
}
