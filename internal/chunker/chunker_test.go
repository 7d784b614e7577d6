package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", " \n\t\r\n  ", ""},
		{"collapses runs", "a  b\n\nc\t\td", "a b c d"},
		{"trims edges", "\n  hello world \t", "hello world"},
		{"ascii separators", "v2s\x1cend\x1d\x1e\x1fdone", "v2s end done"},
		{"unicode spaces", "a\u00a0b\u2003c\u3000d", "a b c d"},
		{"vertical tab and form feed", "a\vb\fc", "a b c"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestSplit_Empty(t *testing.T) {
	c := New(DefaultConfig())
	assert.Empty(t, c.Split(""))
	assert.Empty(t, c.Split("   \n\t  "))
}

func TestSplit_WindowCounts(t *testing.T) {
	c := New(DefaultConfig())

	for _, n := range []int{1, 799, 800, 801, 1600, 2401, 5000} {
		text := strings.Repeat("x", n)
		chunks := c.Split(text)

		want := (n + DefaultSize - 1) / DefaultSize
		require.Len(t, chunks, want, "length %d", n)

		for i, ch := range chunks {
			assert.LessOrEqual(t, utf8.RuneCountInString(ch), DefaultSize)
			if i < n/DefaultSize {
				assert.Equal(t, DefaultSize, utf8.RuneCountInString(ch))
			}
		}
		assert.Equal(t, text, strings.Join(chunks, ""))
	}
}

func TestSplit_ConcatenationReproducesNormalizedText(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 300; i++ {
		b.WriteString("word\n\t ")
		b.WriteString("世界 ")
	}
	raw := b.String()

	c := New(DefaultConfig())
	chunks := c.Split(raw)
	require.NotEmpty(t, chunks)
	assert.Equal(t, Normalize(raw), strings.Join(chunks, ""))
	for _, ch := range chunks {
		assert.NotEmpty(t, ch)
	}
}

func TestSplit_CountsCharactersNotBytes(t *testing.T) {
	c := New(Config{Size: 4, Overlap: 1})
	chunks := c.Split("世界你好再见")
	assert.Equal(t, []string{"世界你好", "再见"}, chunks)
}

func TestSplit_OverlapDoesNotShiftWindows(t *testing.T) {
	text := "abcdefghij"
	for _, overlap := range []int{0, 1, 3} {
		c := New(Config{Size: 4, Overlap: overlap})
		assert.Equal(t, []string{"abcd", "efgh", "ij"}, c.Split(text), "overlap %d", overlap)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"zero overlap", Config{Size: 10, Overlap: 0}, false},
		{"zero size", Config{Size: 0, Overlap: 0}, true},
		{"negative overlap", Config{Size: 10, Overlap: -1}, true},
		{"overlap equals size", Config{Size: 10, Overlap: 10}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_InvalidConfigFallsBack(t *testing.T) {
	c := New(Config{Size: -5, Overlap: 2})
	assert.Equal(t, DefaultConfig(), c.Config())
}
