package strategy

import (
	"context"
	"strings"
	"sync"

	"codeberg.org/snonux/kotrans/internal/lexicon"
	"codeberg.org/snonux/kotrans/internal/textproc"
)

// LocalName is the name of the dictionary strategy.
const LocalName = "Local Dictionary"

// Local translates from an in-memory dictionary. It starts from a copy of a
// lexicon and can be extended at runtime without touching the lexicon.
type Local struct {
	mu    sync.RWMutex
	terms map[string]string
}

// NewLocal creates a dictionary strategy seeded from lex. A nil lex uses the
// built-in lexicon.
func NewLocal(lex *lexicon.Lexicon) *Local {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Local{terms: lex.Terms()}
}

func (l *Local) Name() string { return LocalName }

func (l *Local) Priority() int { return 0 }

// CanHandle always returns true.
func (l *Local) CanHandle(string) bool { return true }

// Translate looks text up as a whole, then word by word. When at least one
// word is known the words are joined back with unknown words left as they
// are. Otherwise text is returned unchanged.
func (l *Local) Translate(_ context.Context, text string) (string, error) {
	if ko, ok := l.lookup(strings.TrimSpace(text)); ok {
		return ko, nil
	}

	words := textproc.SplitWords(text)
	if len(words) < 2 {
		return text, nil
	}

	matched := false
	out := make([]string, len(words))
	for i, w := range words {
		if ko, ok := l.lookup(w); ok {
			out[i] = ko
			matched = true
			continue
		}
		out[i] = w
	}
	if !matched {
		return text, nil
	}
	return strings.Join(out, " "), nil
}

func (l *Local) lookup(word string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ko, ok := l.terms[strings.ToLower(word)]
	return ko, ok
}

// AddTranslation adds or replaces a dictionary entry.
func (l *Local) AddTranslation(en, ko string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.terms[strings.ToLower(en)] = ko
}

// RemoveTranslation deletes a dictionary entry and reports whether it existed.
func (l *Local) RemoveTranslation(en string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := strings.ToLower(en)
	if _, ok := l.terms[key]; !ok {
		return false
	}
	delete(l.terms, key)
	return true
}

// HasTranslation reports whether en has a dictionary entry.
func (l *Local) HasTranslation(en string) bool {
	_, ok := l.lookup(en)
	return ok
}

// Size returns the number of dictionary entries.
func (l *Local) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.terms)
}
