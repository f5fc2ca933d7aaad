package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// MyMemoryName is the name of the MyMemory strategy.
	MyMemoryName = "MyMemory"

	myMemoryURL       = "https://api.mymemory.translated.net/get"
	myMemoryTimeout   = 5 * time.Second
	myMemoryMaxLength = 500
	myMemoryPerDay    = 100
)

// myMemoryResponse is the part of the MyMemory reply we read. The service
// sends responseStatus either as a number or as a string.
type myMemoryResponse struct {
	ResponseStatus json.Number `json:"responseStatus"`
	ResponseData   struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// MyMemory translates through the free MyMemory API.
type MyMemory struct {
	*online
}

// NewMyMemory creates the MyMemory strategy.
func NewMyMemory(opts Options) *MyMemory {
	return &MyMemory{online: newOnline(settings{
		name:        MyMemoryName,
		priority:    2,
		baseURL:     myMemoryURL,
		maxLength:   myMemoryMaxLength,
		maxPerDay:   myMemoryPerDay,
		timeout:     myMemoryTimeout,
		minInterval: defaultMinInterval,
	}, opts)}
}

// Translate asks MyMemory for an en|ko translation of text.
func (m *MyMemory) Translate(ctx context.Context, text string) (string, error) {
	return m.call(ctx, text, func(ctx context.Context) (string, error) {
		params := url.Values{}
		params.Set("q", text)
		params.Set("langpair", "en|ko")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+params.Encode(), nil)
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}

		var body myMemoryResponse
		if err := m.doJSON(req, &body); err != nil {
			return "", err
		}
		if body.ResponseStatus.String() != "200" {
			return "", fmt.Errorf("%w: responseStatus %s", ErrUnexpectedStatus, body.ResponseStatus)
		}
		return body.ResponseData.TranslatedText, nil
	})
}
