package strategy

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"codeberg.org/snonux/kotrans/internal/textproc"
)

const (
	// GeminiName is the name of the Gemini strategy.
	GeminiName = "Gemini Translation"

	// DefaultGeminiModel is used when no model is configured.
	DefaultGeminiModel = "gemini-2.0-flash"

	geminiTimeout   = 10 * time.Second
	geminiMaxLength = 1000
	geminiMaxTokens = 150
)

// Gemini translates with a Google Gemini model. It mirrors GPT and is
// tried after it when both are configured.
type Gemini struct {
	*online

	mu     sync.RWMutex
	client *genai.Client
	model  string
}

// NewGemini creates the Gemini strategy. An empty model selects
// DefaultGeminiModel.
func NewGemini(apiKey, model string, opts Options) *Gemini {
	g := &Gemini{online: newOnline(settings{
		name:      GeminiName,
		priority:  1,
		maxLength: geminiMaxLength,
		timeout:   geminiTimeout,
		accept:    isChanged,
	}, opts)}
	g.Reconfigure(apiKey, model)
	return g
}

// Reconfigure replaces the API key and model. An empty key disables the
// strategy.
func (g *Gemini) Reconfigure(apiKey, model string) {
	if model == "" {
		model = DefaultGeminiModel
	}
	apiKey = strings.TrimSpace(apiKey)

	var client *genai.Client
	if apiKey != "" {
		cfg := &genai.ClientConfig{
			APIKey:     apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: g.online.client,
		}
		if g.baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
		}
		c, err := genai.NewClient(context.Background(), cfg)
		if err != nil {
			g.logger.Warn("failed to initialize Gemini client", zap.Error(err))
		} else {
			client = c
			g.logger.Info("Gemini strategy initialized", zap.String("model", model))
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.client = client
	g.model = model
}

// IsConfigured reports whether the strategy has a usable client.
func (g *Gemini) IsConfigured() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.client != nil
}

// Model returns the configured Gemini model.
func (g *Gemini) Model() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.model
}

// CanHandle requires a client, at least two characters and no Korean in text.
func (g *Gemini) CanHandle(text string) bool {
	if !g.IsConfigured() {
		return false
	}
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < gptMinLength || textproc.ContainsKorean(trimmed) {
		return false
	}
	return g.online.CanHandle(text)
}

// Translate sends one GenerateContent request.
func (g *Gemini) Translate(ctx context.Context, text string) (string, error) {
	g.mu.RLock()
	client, model := g.client, g.model
	g.mu.RUnlock()

	if client == nil {
		return text, fmt.Errorf("%s: %w", GeminiName, ErrNotConfigured)
	}

	return g.call(ctx, text, func(ctx context.Context) (string, error) {
		config := &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.1),
			MaxOutputTokens:   geminiMaxTokens,
		}

		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(translationPrompt(text)), config)
		if err != nil {
			return "", fmt.Errorf("Gemini API error: %w", err)
		}
		return resp.Text(), nil
	})
}
