package strategy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// LibreName is the name of the LibreTranslate strategy.
	LibreName = "LibreTranslate"

	libreURL       = "https://libretranslate.de/translate"
	libreTimeout   = 3 * time.Second
	libreMaxLength = 1000
	librePerDay    = 100
)

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Libre translates through a LibreTranslate instance.
type Libre struct {
	*online
}

// NewLibre creates the LibreTranslate strategy.
func NewLibre(opts Options) *Libre {
	return &Libre{online: newOnline(settings{
		name:        LibreName,
		priority:    3,
		baseURL:     libreURL,
		maxLength:   libreMaxLength,
		maxPerDay:   librePerDay,
		timeout:     libreTimeout,
		minInterval: defaultMinInterval,
	}, opts)}
}

// Translate posts text to the LibreTranslate endpoint.
func (l *Libre) Translate(ctx context.Context, text string) (string, error) {
	return l.call(ctx, text, func(ctx context.Context) (string, error) {
		payload, err := json.Marshal(libreRequest{Q: text, Source: "en", Target: "ko", Format: "text"})
		if err != nil {
			return "", fmt.Errorf("failed to encode request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL, bytes.NewReader(payload))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		var body libreResponse
		if err := l.doJSON(req, &body); err != nil {
			return "", err
		}
		return body.TranslatedText, nil
	})
}
