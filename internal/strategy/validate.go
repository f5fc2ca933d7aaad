package strategy

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/kotrans/internal/textproc"
)

const minHangulSyllables = 2

var nonLetterRe = regexp.MustCompile(`[^a-z]`)

var injectionMarkers = []string{"()", "<?", "?>", "include_"}

// IsValidTranslation reports whether translated plausibly is a Korean
// rendering of original. Echoes of the input, code-like artifacts and text
// with fewer than two Hangul syllables are rejected.
func IsValidTranslation(original, translated string) bool {
	t := strings.TrimSpace(translated)
	if t == "" || t == original {
		return false
	}
	if strings.EqualFold(t, original) {
		return false
	}
	if lettersOnly(t) == lettersOnly(original) {
		return false
	}
	if utf8.RuneCountInString(t) > utf8.RuneCountInString(original)*10 {
		return false
	}
	for _, m := range injectionMarkers {
		if strings.Contains(t, m) {
			return false
		}
	}
	return textproc.CountHangul(t) >= minHangulSyllables
}

// isChanged accepts any non-empty answer that differs from the input.
func isChanged(original, translated string) bool {
	return translated != "" && translated != original
}

func lettersOnly(s string) string {
	return nonLetterRe.ReplaceAllString(strings.ToLower(s), "")
}
