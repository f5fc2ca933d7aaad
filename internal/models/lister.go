package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/kotrans/internal/strategy"
)

// Model ids containing any of these are not chat completion models.
var excludedModelParts = []string{"tts", "audio", "realtime", "transcribe", "image", "search", "embedding", "dall-e"}

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
	out    io.Writer
}

// NewLister creates a new model lister. baseURL overrides the OpenAI
// endpoint when not empty.
func NewLister(apiKey, baseURL string) *Lister {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(cfg),
		out:    os.Stdout,
	}
}

// ChatModels returns the sorted ids of models usable for translation.
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .kotrans.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)
	return chatModels, nil
}

// ListAvailableModels prints the chat models and marks the default one.
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	chatModels, err := l.ChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(l.out, "Chat/Translation Models (for Korean translation):")
	if len(chatModels) == 0 {
		fmt.Fprintln(l.out, "  No chat models found")
		return nil
	}
	for _, model := range chatModels {
		if model == strategy.DefaultGPTModel {
			fmt.Fprintf(l.out, "  %s (default)\n", model)
			continue
		}
		fmt.Fprintf(l.out, "  %s\n", model)
	}
	return nil
}

func isChatModel(id string) bool {
	if !strings.Contains(id, "gpt") && !strings.Contains(id, "chat") {
		return false
	}
	for _, part := range excludedModelParts {
		if strings.Contains(id, part) {
			return false
		}
	}
	return true
}
