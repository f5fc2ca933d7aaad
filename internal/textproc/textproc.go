// Package textproc detects identifier naming conventions and turns
// identifiers into word lists or plain lowercase phrases.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

// CaseType is the naming convention of an identifier.
type CaseType string

const (
	ConstantCase CaseType = "CONSTANT_CASE"
	SnakeCase    CaseType = "snake_case"
	KebabCase    CaseType = "kebab-case"
	CamelCase    CaseType = "camelCase"
	PascalCase   CaseType = "PascalCase"
	Unknown      CaseType = "unknown"
)

var (
	constantRe = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	snakeRe    = regexp.MustCompile(`^[a-z]+(_[a-z]+)*$`)
	kebabRe    = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)
	camelRe    = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	pascalRe   = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

	lowerUpperRe   = regexp.MustCompile(`([a-z])([A-Z])`)
	acronymRunRe   = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
	wordBoundaryRe = regexp.MustCompile(`[\s_-]+`)
)

// DetectCaseType classifies text. The checks run in a fixed order, so a
// token like "USER" is CONSTANT_CASE rather than PascalCase and "user" is
// snake_case rather than camelCase.
func DetectCaseType(text string) CaseType {
	switch {
	case constantRe.MatchString(text):
		return ConstantCase
	case snakeRe.MatchString(text):
		return SnakeCase
	case kebabRe.MatchString(text):
		return KebabCase
	case camelRe.MatchString(text):
		return CamelCase
	case pascalRe.MatchString(text):
		return PascalCase
	default:
		return Unknown
	}
}

// IsConvertibleCase reports whether text follows a recognised convention.
func IsConvertibleCase(text string) bool {
	return DetectCaseType(text) != Unknown
}

// SplitWords breaks text into its words, keeping their original casing.
// Empty fragments from doubled delimiters are dropped. Text without a
// recognised convention is split on camel boundaries, whitespace, '_' and '-'.
func SplitWords(text string) []string {
	switch DetectCaseType(text) {
	case ConstantCase, SnakeCase:
		return nonEmpty(strings.Split(text, "_"))
	case KebabCase:
		return nonEmpty(strings.Split(text, "-"))
	case CamelCase, PascalCase:
		return nonEmpty(strings.Split(lowerUpperRe.ReplaceAllString(text, "$1 $2"), " "))
	default:
		spaced := lowerUpperRe.ReplaceAllString(text, "$1 $2")
		return nonEmpty(wordBoundaryRe.Split(spaced, -1))
	}
}

// ConvertToSpaces turns an identifier into a lowercase, space-separated
// phrase: "API_BASE_URL" becomes "api base url" and "XMLHttpRequest" becomes
// "xml http request". Text without a recognised convention is returned as is.
func ConvertToSpaces(text string) string {
	switch DetectCaseType(text) {
	case ConstantCase:
		return strings.ToLower(strings.Join(nonEmpty(strings.Split(text, "_")), " "))
	case SnakeCase:
		return strings.Join(strings.Split(text, "_"), " ")
	case KebabCase:
		return strings.Join(strings.Split(text, "-"), " ")
	case CamelCase, PascalCase:
		spaced := lowerUpperRe.ReplaceAllString(text, "$1 $2")
		spaced = acronymRunRe.ReplaceAllString(spaced, "$1 $2")
		return strings.ToLower(spaced)
	default:
		return text
	}
}

// Preprocess returns the form of text handed to translation strategies.
func Preprocess(text string) string {
	if !IsConvertibleCase(text) {
		return text
	}
	return ConvertToSpaces(text)
}

func nonEmpty(parts []string) []string {
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// IsHangulSyllable reports whether r is a precomposed Hangul syllable (가-힣).
func IsHangulSyllable(r rune) bool {
	return r >= '가' && r <= '힣'
}

// ContainsHangul reports whether s contains at least one Hangul syllable.
func ContainsHangul(s string) bool {
	return strings.IndexFunc(s, IsHangulSyllable) >= 0
}

// ContainsKorean is like ContainsHangul but also counts bare jamo (ㄱ-ㅎ, ㅏ-ㅣ).
func ContainsKorean(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.Is(unicode.Hangul, r)
	}) >= 0
}

// CountHangul returns the number of Hangul syllables in s.
func CountHangul(s string) int {
	n := 0
	for _, r := range s {
		if IsHangulSyllable(r) {
			n++
		}
	}
	return n
}
