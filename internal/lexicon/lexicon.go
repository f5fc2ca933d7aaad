package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon is an immutable set of word lists. All lookups are case-insensitive.
type Lexicon struct {
	terms     map[string]string
	stopWords map[string]struct{}
	acronyms  map[string]struct{}
}

// New builds a Lexicon from the given lists. The inputs are copied.
func New(terms map[string]string, stopWords, acronyms []string) *Lexicon {
	l := &Lexicon{
		terms:     make(map[string]string, len(terms)),
		stopWords: make(map[string]struct{}, len(stopWords)),
		acronyms:  make(map[string]struct{}, len(acronyms)),
	}
	for en, ko := range terms {
		l.terms[strings.ToLower(en)] = ko
	}
	for _, w := range stopWords {
		l.stopWords[strings.ToLower(w)] = struct{}{}
	}
	for _, a := range acronyms {
		l.acronyms[strings.ToUpper(a)] = struct{}{}
	}
	return l
}

// Default returns the built-in lexicon.
func Default() *Lexicon {
	return New(defaultTerms, defaultStopWords, defaultAcronyms)
}

// Lookup returns the Korean term for word.
func (l *Lexicon) Lookup(word string) (string, bool) {
	ko, ok := l.terms[strings.ToLower(word)]
	return ko, ok
}

// IsStopWord reports whether word is on the stopword list.
func (l *Lexicon) IsStopWord(word string) bool {
	_, ok := l.stopWords[strings.ToLower(word)]
	return ok
}

// IsTranslatableAcronym reports whether an all-caps token is on the
// allow-list of acronyms worth translating.
func (l *Lexicon) IsTranslatableAcronym(word string) bool {
	_, ok := l.acronyms[strings.ToUpper(word)]
	return ok
}

// Terms returns a copy of the dictionary.
func (l *Lexicon) Terms() map[string]string {
	result := make(map[string]string, len(l.terms))
	for k, v := range l.terms {
		result[k] = v
	}
	return result
}

// Len returns the number of dictionary terms.
func (l *Lexicon) Len() int {
	return len(l.terms)
}

// WithGlossary returns a new Lexicon whose dictionary is extended, and where
// keys collide overridden, by entries. The receiver is left untouched.
func (l *Lexicon) WithGlossary(entries map[string]string) *Lexicon {
	terms := l.Terms()
	for en, ko := range entries {
		en = strings.ToLower(strings.TrimSpace(en))
		ko = strings.TrimSpace(ko)
		if en == "" || ko == "" {
			continue
		}
		terms[en] = ko
	}

	stop := make([]string, 0, len(l.stopWords))
	for w := range l.stopWords {
		stop = append(stop, w)
	}
	acr := make([]string, 0, len(l.acronyms))
	for a := range l.acronyms {
		acr = append(acr, a)
	}
	return New(terms, stop, acr)
}

// glossaryFile is the on-disk shape of a user glossary:
//
//	terms:
//	  widget: 위젯
//	  handler: 핸들러
type glossaryFile struct {
	Terms map[string]string `yaml:"terms"`
}

// LoadGlossary reads a YAML glossary file.
func LoadGlossary(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary: %w", err)
	}

	var g glossaryFile
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse glossary %s: %w", path, err)
	}
	if g.Terms == nil {
		return map[string]string{}, nil
	}
	return g.Terms, nil
}
