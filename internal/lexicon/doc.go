// Package lexicon holds the shared, read-only word lists used by the
// translation pipeline: the English to Korean programming dictionary, the
// stopword list the classifier rejects, and the acronyms that are still worth
// translating. A Lexicon is built once and handed to every component that
// needs it, so the lists exist in exactly one place.
package lexicon
