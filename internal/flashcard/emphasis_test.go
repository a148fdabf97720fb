package flashcard_test

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/flipdeck/internal/flashcard"
)

func TestRenderAnswer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want template.HTML
	}{
		{
			name: "single pair",
			in:   "**Open Access** refers to the practice",
			want: "<strong>Open Access</strong> refers to the practice",
		},
		{
			name: "several pairs are matched lazily",
			in:   "by **removing price barriers** and **removing permission barriers**.",
			want: "by <strong>removing price barriers</strong> and <strong>removing permission barriers</strong>.",
		},
		{
			name: "no markup",
			in:   "plain answer",
			want: "plain answer",
		},
		{
			name: "unpaired delimiter is kept",
			in:   "half **open",
			want: "half **open",
		},
		{
			name: "html is escaped",
			in:   `a <b> & **"c"**`,
			want: "a &lt;b&gt; &amp; <strong>&#34;c&#34;</strong>",
		},
		{
			name: "empty pair",
			in:   "****",
			want: "<strong></strong>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flashcard.RenderAnswer(tt.in))
		})
	}
}

func TestPlainAnswer(t *testing.T) {
	assert.Equal(t, "Gold OA refers to access", flashcard.PlainAnswer("**Gold OA** refers to access"))
}
