package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one line of a batch file.
type Entry struct {
	// Text is the identifier, phrase or comment line to translate.
	Text        string
	// Translation is a Korean translation supplied by the file. Entries
	// carrying one extend the dictionary instead of being translated.
	Translation string
	// Comment marks lines starting with comment syntax.
	Comment     bool
}

// NeedsTranslation reports whether the entry has to go through the
// translator.
func (e Entry) NeedsTranslation() bool {
	return e.Translation == ""
}

var commentPrefixes = []string{"//", "/*", "#", "*"}

// ReadBatchFile reads entries from a file.
// Supports formats:
// - Identifier or phrase: "getUserName"
// - With translation: "widget = 위젯" (added to the dictionary)
// - Comment line: "// fetch the user" (translated as a comment)
func ReadBatchFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses batch entries from r. Blank lines and lines with an empty
// side around "=" are skipped.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if isComment(line) {
			entries = append(entries, Entry{Text: line, Comment: true})
			continue
		}

		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			english := strings.TrimSpace(parts[0])
			korean := strings.TrimSpace(parts[1])
			if english != "" && korean != "" {
				entries = append(entries, Entry{Text: english, Translation: korean})
			}
			continue
		}

		entries = append(entries, Entry{Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return entries, nil
}

func isComment(line string) bool {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
