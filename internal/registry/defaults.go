package registry

import (
	"go.uber.org/zap"

	"codeberg.org/snonux/kotrans/internal/lexicon"
	"codeberg.org/snonux/kotrans/internal/strategy"
)

// Config selects and configures the default strategies.
type Config struct {
	Lexicon *lexicon.Lexicon

	OpenAIKey   string
	OpenAIModel string
	OpenAIURL   string

	GeminiKey   string
	GeminiModel string
	GeminiURL   string

	MyMemoryURL string
	GoogleURL   string
	LibreURL    string

	// Disabled lists identifiers that are not registered.
	Disabled []string

	Options strategy.Options
	Logger  *zap.Logger
}

// NewDefault builds a registry with the local dictionary and every online
// strategy, minus those listed in cfg.Disabled. The LLM strategies are
// always registered and decline text until they have an API key.
func NewDefault(cfg Config) *Registry {
	disabled := make(map[string]bool, len(cfg.Disabled))
	for _, id := range cfg.Disabled {
		disabled[id] = true
	}

	opts := func(baseURL string) strategy.Options {
		o := cfg.Options
		if baseURL != "" {
			o.BaseURL = baseURL
		}
		if o.Logger == nil {
			o.Logger = cfg.Logger
		}
		return o
	}

	r := New()
	register := func(id string, build func() strategy.Strategy) {
		if disabled[id] {
			return
		}
		r.Register(id, build())
	}

	register(LocalID, func() strategy.Strategy { return strategy.NewLocal(cfg.Lexicon) })
	register(GPTID, func() strategy.Strategy {
		return strategy.NewGPT(cfg.OpenAIKey, cfg.OpenAIModel, opts(cfg.OpenAIURL))
	})
	register(GeminiID, func() strategy.Strategy {
		return strategy.NewGemini(cfg.GeminiKey, cfg.GeminiModel, opts(cfg.GeminiURL))
	})
	register(MyMemoryID, func() strategy.Strategy { return strategy.NewMyMemory(opts(cfg.MyMemoryURL)) })
	register(GoogleID, func() strategy.Strategy { return strategy.NewGoogle(opts(cfg.GoogleURL)) })
	register(LibreID, func() strategy.Strategy { return strategy.NewLibre(opts(cfg.LibreURL)) })

	return r
}
