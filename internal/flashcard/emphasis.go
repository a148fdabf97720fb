package flashcard

import (
	"html"
	"html/template"
	"regexp"
)

var emphasisRe = regexp.MustCompile(`\*\*(.*?)\*\*`)

// RenderAnswer turns **word** pairs into <strong>word</strong>. Everything else
// is HTML-escaped, so the result is safe to inject into a page.
func RenderAnswer(answer string) template.HTML {
	escaped := html.EscapeString(answer)
	return template.HTML(emphasisRe.ReplaceAllString(escaped, "<strong>$1</strong>"))
}

// PlainAnswer strips the emphasis delimiters, keeping the enclosed text.
func PlainAnswer(answer string) string {
	return emphasisRe.ReplaceAllString(answer, "$1")
}
