// Package sanitize provides the text helpers exposed to the résumé
// templates for escaping user-supplied content.
package sanitize

import (
	"html/template"
	"strings"
	"unicode"
)

// EscapeText escapes the five HTML metacharacters. The ampersand is
// replaced first so that entities produced by the later substitutions are
// not escaped a second time.
func EscapeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// RenderInline escapes text and keeps user line breaks as <br> tags. Used
// for fields like address and phone where line breaks carry meaning.
func RenderInline(s string) template.HTML {
	return template.HTML(strings.ReplaceAll(EscapeText(s), "\n", "<br>"))
}

// RenderRich escapes text but lets a literal <br> typed by the user
// survive as a visual line break. Every other tag stays neutralized; this
// is a narrow allow-list, not rich-text support.
func RenderRich(s string) template.HTML {
	if s == "" {
		return ""
	}
	escaped := EscapeText(s)
	escaped = strings.ReplaceAll(escaped, "&lt;br&gt;", "<br>")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// Initials returns the upper-cased first letters of the first two
// whitespace-separated words of name. A blank name yields "".
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteRune(unicode.ToUpper([]rune(w)[0]))
	}
	return b.String()
}
