// Package strcase converts identifier text between casing conventions.
// Words are recognized across separators (spaces, dashes, underscores) and
// case transitions, so "HTTPServer", "http-server" and "http_server" all
// split the same way.
package strcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Camel returns s in camelCase.
func Camel(s string) string {
	words := split(s)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		sb.WriteString(titleCaser.String(strings.ToLower(w)))
	}
	return sb.String()
}

// Pascal returns s in PascalCase.
func Pascal(s string) string {
	var sb strings.Builder
	for _, w := range split(s) {
		sb.WriteString(titleCaser.String(strings.ToLower(w)))
	}
	return sb.String()
}

// Snake returns s in snake_case.
func Snake(s string) string {
	return joinLower(s, "_")
}

// Kebab returns s in kebab-case.
func Kebab(s string) string {
	return joinLower(s, "-")
}

// Title returns s as space-separated Title Case words.
func Title(s string) string {
	words := split(s)
	for i, w := range words {
		words[i] = titleCaser.String(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

func joinLower(s, sep string) string {
	words := split(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

// split breaks s into words at separators, lower-to-upper transitions and
// acronym tails (the "S" of "HTTPServer" starts a new word).
func split(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			if len(cur) > 0 && !unicode.IsUpper(cur[len(cur)-1]) {
				flush()
			} else if len(cur) > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}
