package strategy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, status int, reply string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 150, req.MaxTokens)
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
			assert.Equal(t, systemPrompt, req.Messages[0].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewGPT_NoAPIKey(t *testing.T) {
	g := NewGPT("", "", Options{})

	assert.False(t, g.IsConfigured())
	assert.Equal(t, DefaultGPTModel, g.Model())
	assert.False(t, g.CanHandle("user name"))

	got, err := g.Translate(context.Background(), "user name")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, "user name", got)
}

func TestGPT_CanHandle(t *testing.T) {
	g := NewGPT("test-api-key", "gpt-4o", Options{})

	assert.True(t, g.IsConfigured())
	assert.Equal(t, "gpt-4o", g.Model())
	assert.Equal(t, 1, g.Priority())
	assert.True(t, g.CanHandle("user name"))
	assert.False(t, g.CanHandle("a"))
	assert.False(t, g.CanHandle("  a  "))
	assert.False(t, g.CanHandle("사용자 name"))
	assert.False(t, g.CanHandle("ㅎuser"))
}

func TestGPT_Translate(t *testing.T) {
	server := chatServer(t, http.StatusOK,
		`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":" 사용자 이름 "},"finish_reason":"stop"}]}`)

	g := NewGPT("test-api-key", "", Options{BaseURL: server.URL + "/v1"})

	got, err := g.Translate(context.Background(), "user name")
	require.NoError(t, err)
	assert.Equal(t, "사용자 이름", got)
	assert.Equal(t, 1, g.RequestCount())
}

func TestGPT_NoChoices(t *testing.T) {
	server := chatServer(t, http.StatusOK, `{"id":"1","object":"chat.completion","choices":[]}`)

	g := NewGPT("test-api-key", "", Options{BaseURL: server.URL + "/v1"})

	got, err := g.Translate(context.Background(), "user name")
	assert.Error(t, err)
	assert.Equal(t, "user name", got)
}

func TestGPT_InvalidKeyDisables(t *testing.T) {
	server := chatServer(t, http.StatusUnauthorized,
		`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)

	g := NewGPT("bad-key", "", Options{BaseURL: server.URL + "/v1"})

	got, err := g.Translate(context.Background(), "user name")
	assert.Error(t, err)
	assert.Equal(t, "user name", got)
	assert.False(t, g.IsConfigured())
	assert.False(t, g.CanHandle("user name"))

	g.Reconfigure("new-key", "gpt-4o")
	assert.True(t, g.IsConfigured())
	assert.Equal(t, "gpt-4o", g.Model())
}

func TestGPT_QuotaKeepsClient(t *testing.T) {
	server := chatServer(t, http.StatusTooManyRequests,
		`{"error":{"message":"quota","type":"insufficient_quota","code":"insufficient_quota"}}`)

	g := NewGPT("test-api-key", "", Options{BaseURL: server.URL + "/v1"})

	got, err := g.Translate(context.Background(), "user name")
	assert.Error(t, err)
	assert.Equal(t, "user name", got)
	assert.True(t, g.IsConfigured())
}

func TestGPT_Translate_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	g := NewGPT(apiKey, "", Options{})

	translation, err := g.Translate(context.Background(), "user name")
	if err != nil {
		t.Errorf("Translate failed: %v", err)
	}
	if translation == "user name" {
		t.Error("Got untranslated text")
	}

	t.Logf("Translation of 'user name': %s", translation)
}

func TestGemini_NoAPIKey(t *testing.T) {
	g := NewGemini("", "", Options{})

	assert.False(t, g.IsConfigured())
	assert.Equal(t, DefaultGeminiModel, g.Model())
	assert.False(t, g.CanHandle("user name"))

	got, err := g.Translate(context.Background(), "user name")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, "user name", got)
}

func TestGemini_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, DefaultGeminiModel+":generateContent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"사용자 이름"}]}}]}`))
	}))
	defer server.Close()

	g := NewGemini("test-api-key", "", Options{BaseURL: server.URL})
	require.True(t, g.IsConfigured())
	assert.True(t, g.CanHandle("user name"))

	got, err := g.Translate(context.Background(), "user name")
	require.NoError(t, err)
	assert.Equal(t, "사용자 이름", got)
}
