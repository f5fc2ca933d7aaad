package strategy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"codeberg.org/snonux/kotrans/internal/textproc"
)

const (
	// GPTName is the name of the OpenAI strategy.
	GPTName = "GPT Translation"

	// DefaultGPTModel is used when no model is configured.
	DefaultGPTModel = openai.GPT4oMini

	gptTimeout   = 10 * time.Second
	gptMaxLength = 1000
	gptMaxTokens = 150
	gptMinLength = 2
)

// GPT translates with an OpenAI chat model. Without an API key it declines
// every text. A rejected key disables it until Reconfigure is called.
type GPT struct {
	*online

	mu     sync.RWMutex
	client *openai.Client
	model  string
}

// NewGPT creates the OpenAI strategy. An empty model selects DefaultGPTModel.
func NewGPT(apiKey, model string, opts Options) *GPT {
	g := &GPT{online: newOnline(settings{
		name:      GPTName,
		priority:  1,
		maxLength: gptMaxLength,
		timeout:   gptTimeout,
		accept:    isChanged,
	}, opts)}
	g.Reconfigure(apiKey, model)
	return g
}

// Reconfigure replaces the API key and model. An empty key disables the
// strategy.
func (g *GPT) Reconfigure(apiKey, model string) {
	if model == "" {
		model = DefaultGPTModel
	}
	apiKey = strings.TrimSpace(apiKey)

	var client *openai.Client
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		if g.baseURL != "" {
			cfg.BaseURL = g.baseURL
		}
		cfg.HTTPClient = g.online.client
		client = openai.NewClientWithConfig(cfg)
		g.logger.Info("GPT strategy initialized", zap.String("model", model))
	} else {
		g.logger.Info("GPT strategy disabled: no API key")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.client = client
	g.model = model
}

// IsConfigured reports whether the strategy has a usable client.
func (g *GPT) IsConfigured() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.client != nil
}

// Model returns the configured chat model.
func (g *GPT) Model() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.model
}

// CanHandle requires a client, at least two characters and no Korean in text.
func (g *GPT) CanHandle(text string) bool {
	if !g.IsConfigured() {
		return false
	}
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < gptMinLength || textproc.ContainsKorean(trimmed) {
		return false
	}
	return g.online.CanHandle(text)
}

// Translate sends one chat completion request.
func (g *GPT) Translate(ctx context.Context, text string) (string, error) {
	g.mu.RLock()
	client, model := g.client, g.model
	g.mu.RUnlock()

	if client == nil {
		return text, fmt.Errorf("%s: %w", GPTName, ErrNotConfigured)
	}

	return g.call(ctx, text, func(ctx context.Context) (string, error) {
		req := openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: translationPrompt(text),
				},
			},
			MaxTokens:   gptMaxTokens,
			Temperature: 0.1,
		}

		resp, err := client.CreateChatCompletion(ctx, req)
		if err != nil {
			g.handleAPIError(client, text, err)
			return "", fmt.Errorf("OpenAI API error: %w", err)
		}

		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no translation returned")
		}
		return resp.Choices[0].Message.Content, nil
	})
}

// handleAPIError disables the client on an invalid key and logs quota errors.
func (g *GPT) handleAPIError(client *openai.Client, text string, err error) {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return
	}

	switch {
	case apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.Code == "invalid_api_key":
		g.logger.Warn("GPT strategy disabled: invalid API key")
		g.mu.Lock()
		if g.client == client {
			g.client = nil
		}
		g.mu.Unlock()
	case apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.Code == "insufficient_quota":
		g.logger.Info("GPT quota exceeded, moving on to the next strategy",
			zap.String("text", text))
	}
}
