package strategy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// GoogleName is the name of the Google strategy.
	GoogleName = "Google Translate"

	googleURL       = "https://translate.googleapis.com/translate_a/single"
	googleTimeout   = 3 * time.Second
	googleMaxLength = 1000
	googlePerDay    = 50
	googleUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

var errMalformedResponse = errors.New("malformed response")

// Google translates through the public translate_a endpoint.
type Google struct {
	*online
}

// NewGoogle creates the Google strategy.
func NewGoogle(opts Options) *Google {
	return &Google{online: newOnline(settings{
		name:        GoogleName,
		priority:    3,
		baseURL:     googleURL,
		maxLength:   googleMaxLength,
		maxPerDay:   googlePerDay,
		timeout:     googleTimeout,
		minInterval: defaultMinInterval,
	}, opts)}
}

// Translate requests text in Korean. The reply is a nested array whose first
// element lists the translated sentences.
func (g *Google) Translate(ctx context.Context, text string) (string, error) {
	return g.call(ctx, text, func(ctx context.Context) (string, error) {
		params := url.Values{}
		params.Set("client", "gtx")
		params.Set("sl", "en")
		params.Set("tl", "ko")
		params.Set("dt", "t")
		params.Set("q", text)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", googleUserAgent)

		var body []interface{}
		if err := g.doJSON(req, &body); err != nil {
			return "", err
		}
		return parseGoogleSentences(body)
	})
}

func parseGoogleSentences(body []interface{}) (string, error) {
	if len(body) == 0 {
		return "", errMalformedResponse
	}
	sentences, ok := body[0].([]interface{})
	if !ok || len(sentences) == 0 {
		return "", errMalformedResponse
	}

	var sb strings.Builder
	for _, s := range sentences {
		parts, ok := s.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if piece, ok := parts[0].(string); ok {
			sb.WriteString(piece)
		}
	}
	if sb.Len() == 0 {
		return "", errMalformedResponse
	}
	return sb.String(), nil
}
