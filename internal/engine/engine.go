package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/kotrans/internal/cache"
	"codeberg.org/snonux/kotrans/internal/comment"
	"codeberg.org/snonux/kotrans/internal/registry"
	"codeberg.org/snonux/kotrans/internal/strategy"
	"codeberg.org/snonux/kotrans/internal/textproc"
	"codeberg.org/snonux/kotrans/internal/validator"
)

// Strategy names reported for outcomes that no real strategy produced.
const (
	CacheStrategy         = "Cache"
	ValidatorStrategy     = "Validator"
	NoneStrategy          = "None"
	AllFailedStrategy     = "All Failed"
	CommentParserStrategy = "Comment Parser"
	UnknownStrategy       = "Unknown"
)

// Error reasons carried in Result.Error.
const (
	ErrNotTranslatable = "Text is not translatable"
	ErrNoStrategies    = "No available translation strategies"
	ErrAllFailed       = "All translation strategies failed"
	ErrNoCommentText   = "No English text found in comment"
)

// Result describes the outcome of one translation request. When Success is
// false TranslatedText equals OriginalText.
type Result struct {
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
	Strategy       string `json:"strategy"`
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
}

func failure(text, strategyName, reason string) Result {
	return Result{
		OriginalText:   text,
		TranslatedText: text,
		Strategy:       strategyName,
		Error:          reason,
	}
}

// Engine runs the translation pipeline: cache, classifier, preprocessing and
// the ordered strategy chain.
type Engine struct {
	cache      *cache.Cache
	registry   *registry.Registry
	classifier *validator.Classifier
	logger     *zap.Logger
}

// New creates an engine over the given collaborators. A nil classifier uses
// the built-in lexicon and a nil logger disables logging.
func New(c *cache.Cache, r *registry.Registry, cl *validator.Classifier, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		c = cache.New(logger)
	}
	if r == nil {
		r = registry.New()
	}
	if cl == nil {
		cl = validator.New(nil)
	}
	return &Engine{cache: c, registry: r, classifier: cl, logger: logger}
}

// Translate resolves text through the pipeline. It never returns an error;
// every failure is reported in the Result.
func (e *Engine) Translate(ctx context.Context, text string) Result {
	if cached, ok := e.cache.Get(text); ok {
		e.logger.Debug("cache hit", zap.String("text", text), zap.String("result", cached))
		return Result{OriginalText: text, TranslatedText: cached, Strategy: CacheStrategy, Success: true}
	}

	if err := e.classifier.Check(text); err != nil {
		e.logger.Debug("text rejected", zap.String("text", text), zap.Error(err))
		return failure(text, ValidatorStrategy, ErrNotTranslatable)
	}

	input := textproc.Preprocess(text)
	if input != text {
		e.logger.Debug("text preprocessed", zap.String("text", text), zap.String("result", input))
	}

	candidates := e.registry.Available(input)
	if len(candidates) == 0 {
		e.logger.Debug("no strategy available", zap.String("text", input))
		return failure(text, NoneStrategy, ErrNoStrategies)
	}

	for _, s := range candidates {
		translated, err := e.invoke(ctx, s, input)
		if err != nil {
			e.logger.Debug("strategy failed",
				zap.String("strategy", s.Name()),
				zap.String("text", input),
				zap.Error(err))
			continue
		}
		if unchanged(translated, input) {
			e.logger.Debug("strategy produced no translation",
				zap.String("strategy", s.Name()),
				zap.String("text", input))
			continue
		}

		e.cache.Set(text, translated)
		e.logger.Debug("translated",
			zap.String("strategy", s.Name()),
			zap.String("text", text),
			zap.String("result", translated))
		return Result{OriginalText: text, TranslatedText: translated, Strategy: s.Name(), Success: true}
	}

	return failure(text, AllFailedStrategy, ErrAllFailed)
}

// TranslateWithStrategy runs text through the strategy whose name matches
// strategyName, ignoring case. It skips the cache, the classifier and
// preprocessing, and does not store the result.
func (e *Engine) TranslateWithStrategy(ctx context.Context, text, strategyName string) Result {
	s, ok := e.registry.Find(strategyName)
	if !ok {
		return failure(text, UnknownStrategy, fmt.Sprintf("Strategy %q not found", strategyName))
	}

	if !s.CanHandle(text) {
		return failure(text, s.Name(), fmt.Sprintf("Strategy %q cannot handle this text", s.Name()))
	}

	translated, err := e.invoke(ctx, s, text)
	if err != nil {
		e.logger.Debug("strategy failed",
			zap.String("strategy", s.Name()),
			zap.String("text", text),
			zap.Error(err))
		return failure(text, s.Name(), err.Error())
	}
	if unchanged(translated, text) {
		return failure(text, s.Name(), "Translation failed or returned same text")
	}
	return Result{OriginalText: text, TranslatedText: translated, Strategy: s.Name(), Success: true}
}

// TranslateComment strips comment syntax from line and translates what is
// left. Lines without plain English text are rejected before the pipeline.
func (e *Engine) TranslateComment(ctx context.Context, line string) Result {
	text, ok := comment.Extract(line)
	if !ok {
		e.logger.Debug("no English text in comment", zap.String("text", line))
		return failure(line, CommentParserStrategy, ErrNoCommentText)
	}
	return e.Translate(ctx, text)
}

// AvailableStrategies returns the names of the strategies that can currently
// handle text, in the order they would be tried.
func (e *Engine) AvailableStrategies(text string) []string {
	available := e.registry.Available(text)
	out := make([]string, len(available))
	for i, s := range available {
		out[i] = s.Name()
	}
	return out
}

// Strategies returns the names of all registered strategies by priority.
func (e *Engine) Strategies() []string {
	all := e.registry.All()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.Name()
	}
	return out
}

// ClearCache empties the cache and returns the number of entries removed.
func (e *Engine) ClearCache() int {
	return e.cache.Clear()
}

// CacheStatus returns the cache size and request count.
func (e *Engine) CacheStatus() cache.Status {
	return e.cache.Status()
}

// LogCacheStatus writes the cache contents to the log.
func (e *Engine) LogCacheStatus() {
	e.cache.LogStatus()
}

// CachedTranslations returns a snapshot of the cache.
func (e *Engine) CachedTranslations() map[string]string {
	return e.cache.All()
}

// invoke calls s and counts the request when s leaves the process.
func (e *Engine) invoke(ctx context.Context, s strategy.Strategy, text string) (string, error) {
	if _, ok := s.(strategy.Remote); ok {
		e.cache.IncrementRequestCount()
	}
	translated, err := s.Translate(ctx, text)
	if err != nil {
		return text, err
	}
	return strings.TrimSpace(translated), nil
}

// unchanged compares a trimmed strategy result with the text it was given.
func unchanged(translated, text string) bool {
	return translated == strings.TrimSpace(text)
}
