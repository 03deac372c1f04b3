package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", " \t\n ", []string{}},
		{"punctuation becomes separator", "hello, world! it's 5%", []string{"hello", "world", "it", "s", "5"}},
		{"underscores and digits are word chars", "snake_case v2", []string{"snake_case", "v2"}},
		{"slashes split phrases", "ci/cd", []string{"ci", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := words(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSentences(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "three"}, sentences("one. two!! three? "))
	assert.Equal(t, []string{"no terminator"}, sentences("  no terminator  "))
	assert.Empty(t, sentences(""))
	assert.Empty(t, sentences("...!?"))
}

func TestSentencesTrimsUnicodeSpace(t *testing.T) {
	assert.Equal(t, []string{"hello"}, sentences("hello.\ufeff"))
	assert.Empty(t, sentences("\ufeff"))
	assert.Equal(t, []string{"led a team", "shipped"}, sentences("\ufeffled a team.\u00a0shipped!\u3000"))
}
