package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"achaperto/config"
	"achaperto/internal/domain/entity"
	"achaperto/internal/domain/service"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func justificationConfig(baseURL string) *config.Config {
	return &config.Config{Justification: &config.JustificationConfig{
		Enabled:           true,
		APIKey:            "sk-test",
		Model:             "gpt-4o-mini",
		BaseURL:           baseURL,
		MaxTokens:         60,
		Timeout:           2 * time.Second,
		RequestsPerSecond: 10,
		Burst:             10,
	}}
}

func completionServer(t *testing.T, content string, seen *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if seen != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
			},
		})
	}))
	t.Cleanup(server.Close)

	return server
}

func TestOpenAIJustifier_Justify(t *testing.T) {
	var seen openai.ChatCompletionRequest
	server := completionServer(t, "\"A Drogaria Central está aberta a 0.45 km de você.\"\nExtra line", &seen)

	justifier := NewJustifier(justificationConfig(server.URL), discardLogger())
	text, err := justifier.Justify(context.Background(), service.JustificationInput{
		PlaceName: "Drogaria Central",
		Distance:  "0.45",
		Query:     "farmácia",
	})
	require.NoError(t, err)

	assert.Equal(t, "A Drogaria Central está aberta a 0.45 km de você.", text)
	assert.Equal(t, "gpt-4o-mini", seen.Model)
	assert.Equal(t, 60, seen.MaxCompletionTokens)
	require.Len(t, seen.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, seen.Messages[0].Role)
	assert.Contains(t, seen.Messages[1].Content, "Drogaria Central")
	assert.Contains(t, seen.Messages[1].Content, "a 0.45 km")
}

func TestOpenAIJustifier_EmptyCompletion(t *testing.T) {
	server := completionServer(t, "   ", nil)

	justifier := NewJustifier(justificationConfig(server.URL), discardLogger())
	_, err := justifier.Justify(context.Background(), service.JustificationInput{PlaceName: "X"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOpenAIJustifier_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	justifier := NewJustifier(justificationConfig(server.URL), discardLogger())
	_, err := justifier.Justify(context.Background(), service.JustificationInput{PlaceName: "X"})
	require.Error(t, err)
}

func TestOpenAIJustifier_RateLimited(t *testing.T) {
	server := completionServer(t, "Ok.", nil)

	cfg := justificationConfig(server.URL)
	cfg.Justification.RequestsPerSecond = 0.001
	cfg.Justification.Burst = 1

	justifier := NewJustifier(cfg, discardLogger())
	_, err := justifier.Justify(context.Background(), service.JustificationInput{PlaceName: "X"})
	require.NoError(t, err)

	_, err = justifier.Justify(context.Background(), service.JustificationInput{PlaceName: "X"})
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestNewJustifier_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "no section", cfg: &config.Config{}},
		{name: "disabled", cfg: &config.Config{Justification: &config.JustificationConfig{APIKey: "sk"}}},
		{name: "no key", cfg: &config.Config{Justification: &config.JustificationConfig{Enabled: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJustifier(tt.cfg, discardLogger()).Justify(context.Background(), service.JustificationInput{})
			assert.ErrorIs(t, err, ErrDisabled)
		})
	}
}

func TestUserPrompt_UnknownDistance(t *testing.T) {
	prompt := userPrompt(service.JustificationInput{PlaceName: "Posto", Distance: entity.DistanceUnavailable, Query: " gasolina "})

	assert.Contains(t, prompt, "não informada")
	assert.Contains(t, prompt, `"gasolina"`)
}
