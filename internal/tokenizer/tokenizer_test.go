package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "word digits underscore and cjk",
			input:    "Hello_123 世界",
			expected: []string{"hello_123", "世", "界"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "punctuation only",
			input:    "?!  ... --- \n\t",
			expected: []string{},
		},
		{
			name:     "mixed case and separators",
			input:    "V2S-Protocol, accessibility/SDK",
			expected: []string{"v2s", "protocol", "accessibility", "sdk"},
		},
		{
			name:     "cjk adjacent to latin",
			input:    "SDK规则v2",
			expected: []string{"sdk", "规", "则", "v2"},
		},
		{
			name:     "non-ascii letters are separators",
			input:    "café über",
			expected: []string{"caf", "ber"},
		},
		{
			name:     "repeated tokens are kept",
			input:    "v2s v2s",
			expected: []string{"v2s", "v2s"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.input))
		})
	}
}
