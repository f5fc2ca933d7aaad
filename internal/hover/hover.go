package hover

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"codeberg.org/snonux/kotrans/internal/comment"
	"codeberg.org/snonux/kotrans/internal/engine"
)

// Kinds of hover targets.
const (
	KindComment    = "comment"
	KindIdentifier = "identifier"
)

const (
	// DefaultDebounceDelay is used when Settings has no delay.
	DefaultDebounceDelay = 300 * time.Millisecond

	minWordLength = 3
)

var (
	wordRe    = regexp.MustCompile(`[A-Za-z][A-Za-z0-9_]*`)
	englishRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// Position is a zero-based line and character offset in a document.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Hover is the translation shown for a position.
type Hover struct {
	Kind     string        `json:"kind"`
	Result   engine.Result `json:"result"`
	Markdown string        `json:"markdown"`
}

// Settings are read on every hover so changes apply immediately.
type Settings struct {
	Enabled       bool
	DebounceDelay time.Duration
}

// Translator is the subset of the translation service used for hovers.
type Translator interface {
	TranslateDetailed(ctx context.Context, text string) engine.Result
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock replaces the time source used for debouncing.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// Provider answers hover requests for a document.
type Provider struct {
	translator Translator
	settings   func() Settings
	now        func() time.Time

	mu       sync.Mutex
	lastText string
	lastTime time.Time
}

// NewProvider creates a hover provider. settings is consulted on every
// request; a nil settings func means enabled with the default delay.
func NewProvider(translator Translator, settings func() Settings, opts ...Option) *Provider {
	if settings == nil {
		settings = func() Settings {
			return Settings{Enabled: true, DebounceDelay: DefaultDebounceDelay}
		}
	}
	p := &Provider{
		translator: translator,
		settings:   settings,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProvideHover translates the comment or identifier under pos. It returns
// false when hovering is disabled, nothing translatable is under pos, the
// same text was hovered within the debounce delay, or an identifier has no
// translation.
// Comment hovers are always shown, even when the translation failed.
func (p *Provider) ProvideHover(ctx context.Context, document string, pos Position) (*Hover, bool) {
	settings := p.settings()
	if !settings.Enabled {
		return nil, false
	}

	line, ok := lineAt(document, pos.Line)
	if !ok {
		return nil, false
	}

	if span, ok := comment.Detect(line, pos.Character); ok {
		if text, ok := comment.Extract(span.Text); ok {
			if !p.shouldTranslate(text, settings.DebounceDelay) {
				return nil, false
			}
			result := p.translator.TranslateDetailed(ctx, text)
			return newHover(KindComment, result), true
		}
	}

	word, ok := wordAt(line, pos.Character)
	if !ok || len(word) < minWordLength || !englishRe.MatchString(word) {
		return nil, false
	}
	if !p.shouldTranslate(word, settings.DebounceDelay) {
		return nil, false
	}

	result := p.translator.TranslateDetailed(ctx, word)
	if result.TranslatedText == word {
		return nil, false
	}
	return newHover(KindIdentifier, result), true
}

// shouldTranslate drops a repeat of the last text inside the delay window
// and records text as the latest hover otherwise.
func (p *Provider) shouldTranslate(text string, delay time.Duration) bool {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.lastText == text && now.Sub(p.lastTime) < delay {
		return false
	}
	p.lastText = text
	p.lastTime = now
	return true
}

func lineAt(document string, n int) (string, bool) {
	lines := strings.Split(document, "\n")
	if n < 0 || n >= len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n], "\r"), true
}

// wordAt returns the identifier touching column col.
func wordAt(line string, col int) (string, bool) {
	for _, loc := range wordRe.FindAllStringIndex(line, -1) {
		if col >= loc[0] && col <= loc[1] {
			return line[loc[0]:loc[1]], true
		}
	}
	return "", false
}

func newHover(kind string, result engine.Result) *Hover {
	return &Hover{
		Kind:     kind,
		Result:   result,
		Markdown: Markdown(kind, result.OriginalText, result.TranslatedText),
	}
}

// Markdown renders a hover body.
func Markdown(kind, original, translated string) string {
	label := "변수/함수명"
	if kind == KindComment {
		label = "주석"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**🇰🇷 한국어 번역 (%s)**\n\n", label)
	fmt.Fprintf(&sb, "**원문:** %s\n\n", original)
	fmt.Fprintf(&sb, "**번역:** `%s`\n", translated)
	return sb.String()
}
