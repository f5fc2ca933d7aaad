package translation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/kotrans/internal/cache"
	"codeberg.org/snonux/kotrans/internal/engine"
	"codeberg.org/snonux/kotrans/internal/lexicon"
	"codeberg.org/snonux/kotrans/internal/registry"
	"codeberg.org/snonux/kotrans/internal/strategy"
	"codeberg.org/snonux/kotrans/internal/validator"
)

// Config holds everything needed to build a Translator.
type Config struct {
	OpenAIKey   string
	OpenAIModel string
	OpenAIURL   string

	GeminiKey   string
	GeminiModel string
	GeminiURL   string

	MyMemoryURL string
	GoogleURL   string
	LibreURL    string

	// DisabledStrategies lists registry identifiers to leave out.
	DisabledStrategies []string

	// GlossaryFile is an optional YAML file of extra dictionary terms.
	GlossaryFile string

	StrategyOptions strategy.Options
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		OpenAIModel: strategy.DefaultGPTModel,
		GeminiModel: strategy.DefaultGeminiModel,
	}
}

// Translator handles English to Korean translation of identifiers and
// comments. It owns the process-wide cache and strategy registry.
type Translator struct {
	engine   *engine.Engine
	registry *registry.Registry
	logger   *zap.Logger
}

// NewTranslator creates a new translator instance
func NewTranslator(config *Config, logger *zap.Logger) (*Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	lex := lexicon.Default()
	if config.GlossaryFile != "" {
		entries, err := lexicon.LoadGlossary(config.GlossaryFile)
		if err != nil {
			return nil, err
		}
		lex = lex.WithGlossary(entries)
		logger.Info("loaded glossary",
			zap.String("file", config.GlossaryFile),
			zap.Int("terms", len(entries)))
	}

	reg := registry.NewDefault(registry.Config{
		Lexicon:     lex,
		OpenAIKey:   config.OpenAIKey,
		OpenAIModel: config.OpenAIModel,
		OpenAIURL:   config.OpenAIURL,
		GeminiKey:   config.GeminiKey,
		GeminiModel: config.GeminiModel,
		GeminiURL:   config.GeminiURL,
		MyMemoryURL: config.MyMemoryURL,
		GoogleURL:   config.GoogleURL,
		LibreURL:    config.LibreURL,
		Disabled:    config.DisabledStrategies,
		Options:     config.StrategyOptions,
		Logger:      logger,
	})

	return &Translator{
		engine:   engine.New(cache.New(logger), reg, validator.New(lex), logger),
		registry: reg,
		logger:   logger,
	}, nil
}

// New wraps an existing registry. It is meant for callers that assemble
// their own strategies.
func New(reg *registry.Registry, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{
		engine:   engine.New(cache.New(logger), reg, nil, logger),
		registry: reg,
		logger:   logger,
	}
}

// Translate returns the Korean translation of text, or text itself when
// nothing could be translated.
func (t *Translator) Translate(ctx context.Context, text string) string {
	return t.engine.Translate(ctx, text).TranslatedText
}

// TranslateDetailed returns the full pipeline result for text.
func (t *Translator) TranslateDetailed(ctx context.Context, text string) engine.Result {
	return t.engine.Translate(ctx, text)
}

// TranslateWithStrategy translates text with the named strategy only.
func (t *Translator) TranslateWithStrategy(ctx context.Context, text, strategyName string) engine.Result {
	return t.engine.TranslateWithStrategy(ctx, text, strategyName)
}

// TranslateComment translates the English text of a comment line.
func (t *Translator) TranslateComment(ctx context.Context, line string) engine.Result {
	return t.engine.TranslateComment(ctx, line)
}

// Strategies returns every registered strategy name by priority.
func (t *Translator) Strategies() []string {
	return t.engine.Strategies()
}

// AvailableStrategies returns the strategies that would be tried for text.
func (t *Translator) AvailableStrategies(text string) []string {
	return t.engine.AvailableStrategies(text)
}

// ClearCache empties the translation cache and returns the number removed.
func (t *Translator) ClearCache() int {
	return t.engine.ClearCache()
}

// CacheStatus returns the cache size and request count.
func (t *Translator) CacheStatus() cache.Status {
	return t.engine.CacheStatus()
}

// LogCacheStatus logs every cache entry.
func (t *Translator) LogCacheStatus() {
	t.engine.LogCacheStatus()
}

// CachedTranslations returns a snapshot of the cache.
func (t *Translator) CachedTranslations() map[string]string {
	return t.engine.CachedTranslations()
}

// Reconfigure applies new API keys and models to the LLM strategies.
func (t *Translator) Reconfigure(openAIKey, openAIModel, geminiKey, geminiModel string) {
	if s, ok := t.registry.Get(registry.GPTID); ok {
		if gpt, ok := s.(*strategy.GPT); ok {
			gpt.Reconfigure(openAIKey, openAIModel)
		}
	}
	if s, ok := t.registry.Get(registry.GeminiID); ok {
		if gemini, ok := s.(*strategy.Gemini); ok {
			gemini.Reconfigure(geminiKey, geminiModel)
		}
	}
	t.logger.Info("translation strategies reconfigured")
}

// AddTerm adds an entry to the local dictionary.
func (t *Translator) AddTerm(en, ko string) error {
	s, ok := t.registry.Get(registry.LocalID)
	if !ok {
		return fmt.Errorf("local dictionary is disabled")
	}
	local, ok := s.(*strategy.Local)
	if !ok {
		return fmt.Errorf("unexpected local strategy %T", s)
	}
	local.AddTranslation(en, ko)
	return nil
}

// SaveTranslations writes translations to dir/translations.txt, one
// "original = translation" pair per line, sorted by original text.
func SaveTranslations(dir string, translations map[string]string) error {
	keys := make([]string, 0, len(translations))
	for k := range translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s = %s\n", k, translations[k])
	}

	outputFile := filepath.Join(dir, "translations.txt")
	if err := os.WriteFile(outputFile, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write translation file: %w", err)
	}

	return nil
}
