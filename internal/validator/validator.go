// Package validator decides whether a piece of source text is worth sending
// through translation at all.
package validator

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/kotrans/internal/lexicon"
	"codeberg.org/snonux/kotrans/internal/textproc"
)

const (
	minLength = 3
	maxLength = 100
)

// Rejection reasons returned by Check.
var (
	ErrEmpty        = errors.New("empty text")
	ErrNumeric      = errors.New("numeric text")
	ErrSymbolic     = errors.New("symbols only")
	ErrTooShort     = errors.New("text too short")
	ErrTooLong      = errors.New("text too long")
	ErrKorean       = errors.New("already contains Korean")
	ErrURL          = errors.New("url, domain or address")
	ErrExtension    = errors.New("file extension")
	ErrColor        = errors.New("color literal")
	ErrStopWord     = errors.New("stopword")
	ErrNamingCase   = errors.New("unrecognised naming")
	ErrAbbreviation = errors.New("opaque abbreviation")
)

var (
	numericRe   = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	symbolicRe  = regexp.MustCompile(`^[^\w\s]+$`)
	extensionRe = regexp.MustCompile(`(?i)^\.[a-z0-9]+$`)
	colorRe     = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$|^rgb\(|^rgba\(|^hsl\(`)

	schemeRe     = regexp.MustCompile(`(?i)^https?://|^ftp://|^www\.`)
	domainRe     = regexp.MustCompile(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	ipRe         = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}(:\d+)?$`)
	hostPortRe   = regexp.MustCompile(`^[a-zA-Z0-9.-]+:\d+`)
	pathQueryRe  = regexp.MustCompile(`[/?&#=]`)
	startsAlphRe = regexp.MustCompile(`^[a-zA-Z]`)
	constantRe   = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	snakeRe      = regexp.MustCompile(`^[a-z]+(_[a-z]+)*$`)
	kebabRe      = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)
	shortCapsRe  = regexp.MustCompile(`^[A-Z]{2,5}$`)
)

// Classifier is the gate in front of the translation pipeline.
type Classifier struct {
	lex *lexicon.Lexicon
}

// New creates a classifier backed by lex. A nil lex uses the default lexicon.
func New(lex *lexicon.Lexicon) *Classifier {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Classifier{lex: lex}
}

// IsTranslatable reports whether text is a useful translation candidate.
func (c *Classifier) IsTranslatable(text string) bool {
	return c.Check(text) == nil
}

// Check returns nil for a translation candidate, or the first reason it is
// rejected.
func (c *Classifier) Check(text string) error {
	trimmed := strings.TrimSpace(text)

	switch {
	case trimmed == "":
		return ErrEmpty
	case numericRe.MatchString(trimmed):
		return ErrNumeric
	case symbolicRe.MatchString(text):
		return ErrSymbolic
	case utf8.RuneCountInString(trimmed) < minLength:
		return ErrTooShort
	case textproc.ContainsHangul(text):
		return ErrKorean
	case isURLOrDomain(text):
		return ErrURL
	case extensionRe.MatchString(text):
		return ErrExtension
	case colorRe.MatchString(text):
		return ErrColor
	case c.lex.IsStopWord(text):
		return ErrStopWord
	case !isValidNamingCase(text):
		return ErrNamingCase
	case utf8.RuneCountInString(text) > maxLength:
		return ErrTooLong
	case shortCapsRe.MatchString(text) && !c.lex.IsTranslatableAcronym(text):
		return ErrAbbreviation
	}
	return nil
}

func isURLOrDomain(text string) bool {
	switch {
	case schemeRe.MatchString(text),
		domainRe.MatchString(text),
		ipRe.MatchString(text),
		hostPortRe.MatchString(text):
		return true
	}
	return pathQueryRe.MatchString(text) && strings.Contains(text, ".")
}

func isValidNamingCase(text string) bool {
	return startsAlphRe.MatchString(text) ||
		constantRe.MatchString(text) ||
		snakeRe.MatchString(text) ||
		kebabRe.MatchString(text)
}
