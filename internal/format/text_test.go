package format

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{name: "shorter than budget", text: "Notebook", max: 50, want: "Notebook"},
		{name: "exactly the budget", text: "abcde", max: 5, want: "abcde"},
		{name: "over budget", text: "abcdef", max: 5, want: "abcde..."},
		{name: "multibyte runes", text: "Eletrônicos e acessórios", max: 10, want: "Eletrônico..."},
		{name: "empty", text: "", max: 3, want: ""},
		{name: "negative budget", text: "abc", max: -1, want: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.text, tt.max))
		})
	}
}

func TestTruncate_ResultLength(t *testing.T) {
	text := strings.Repeat("ç", 120)

	for _, n := range []int{0, 1, 50, 119} {
		got := Truncate(text, n)
		assert.Equal(t, n+utf8.RuneCountInString(Ellipsis), utf8.RuneCountInString(got))
	}
	assert.Equal(t, text, Truncate(text, 120))
}
