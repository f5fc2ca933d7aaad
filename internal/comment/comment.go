// Package comment pulls plain English text out of source comments.
package comment

import (
	"regexp"
	"strings"
)

var (
	lineMarkerRe   = regexp.MustCompile(`^//\s*`)
	hashMarkerRe   = regexp.MustCompile(`^#\s*`)
	blockOpenRe    = regexp.MustCompile(`^/\*\*?\s*`)
	blockCloseRe   = regexp.MustCompile(`\*/\s*$`)
	continuationRe = regexp.MustCompile(`^\*\s*`)
	englishRe      = regexp.MustCompile(`^[a-zA-Z\s.,!?;:'"()-]+$`)
)

// Strip removes comment syntax from a single line and trims the rest.
func Strip(line string) string {
	s := strings.TrimSpace(line)
	s = lineMarkerRe.ReplaceAllString(s, "")
	s = hashMarkerRe.ReplaceAllString(s, "")
	s = blockOpenRe.ReplaceAllString(s, "")
	s = blockCloseRe.ReplaceAllString(s, "")
	s = continuationRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Extract strips comment syntax from line and returns the remainder if it is
// plain English: ASCII letters, whitespace and common punctuation only.
func Extract(line string) (string, bool) {
	s := Strip(line)
	if !englishRe.MatchString(s) {
		return "", false
	}
	return s, true
}

// Span is the comment portion of a line, in byte offsets.
type Span struct {
	Text  string
	Start int
	End   int
}

// Detect finds the comment on line that covers column col. Line comments
// ("//" and "#") run to the end of the line; a block comment "/* */" covers
// col when col lies between its opening marker and its closing marker.
func Detect(line string, col int) (Span, bool) {
	if i := strings.Index(line, "//"); i >= 0 && col >= i {
		return Span{Text: line[i:], Start: i, End: len(line)}, true
	}

	if i := strings.Index(line, "#"); i >= 0 && col >= i {
		return Span{Text: line[i:], Start: i, End: len(line)}, true
	}

	start := strings.Index(line, "/*")
	if start < 0 || col < start {
		return Span{}, false
	}
	end := strings.Index(line, "*/")
	if end >= 0 && col > end+2 {
		return Span{}, false
	}
	stop := len(line)
	if end >= 0 {
		stop = end + 2
	}
	return Span{Text: line[start:stop], Start: start, End: stop}, true
}
