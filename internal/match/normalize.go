package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a name for fuzzy comparison: case is dropped together
// with the separators '_', '-', '.' and ' '.
//
//	NormalizeName("darkBlue")  == "darkblue"
//	NormalizeName("Dark_Blue") == "darkblue"
//	NormalizeName("dark-blue") == "darkblue"
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Tokens splits a name into lowercase words at separators and at lower-to-upper
// case transitions. An acronym stays one word: "brandHTMLBlue" yields
// brand, html, blue.
func Tokens(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ' '
}

// startsWord reports whether runes[i] opens a new camel-case word.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	// Last capital of an acronym followed by a lowercase word: "HTMLBlue".
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
