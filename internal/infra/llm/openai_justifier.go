// Package llm produces recommendation sentences through an OpenAI-compatible chat API.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"achaperto/config"
	"achaperto/internal/domain/entity"
	"achaperto/internal/domain/service"
	"achaperto/internal/infra/metrics"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const providerName = "llm_justification"

const systemPrompt = "Você é o assistente do AchAberto. Explique em uma única frase curta, " +
	"em português do Brasil, por que o local indicado é a melhor opção aberta para o usuário. " +
	"Não invente horários, preços ou telefones."

var (
	// ErrDisabled is returned when no generator is configured.
	ErrDisabled = errors.New("justification generator disabled")

	// ErrRateLimited is returned when the local call budget is exhausted.
	ErrRateLimited = errors.New("justification rate limit exceeded")

	// ErrEmptyCompletion is returned when the model answers without text.
	ErrEmptyCompletion = errors.New("justification completion is empty")
)

type openAIJustifier struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// NewJustifier returns the OpenAI-backed Justifier, or a disabled one that always
// errors when justification is off or has no API key.
func NewJustifier(cfg *config.Config, logger *slog.Logger) service.Justifier {
	jcfg := cfg.Justification
	if jcfg == nil || !jcfg.Enabled || jcfg.APIKey == "" {
		logger.Info("Justification generator disabled, using fixed sentence")

		return disabledJustifier{}
	}

	clientConfig := openai.DefaultConfig(jcfg.APIKey)
	if jcfg.BaseURL != "" {
		clientConfig.BaseURL = jcfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: jcfg.Timeout}

	return &openAIJustifier{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     jcfg.Model,
		maxTokens: jcfg.MaxTokens,
		timeout:   jcfg.Timeout,
		limiter:   rate.NewLimiter(rate.Limit(jcfg.RequestsPerSecond), jcfg.Burst),
		logger:    logger,
	}
}

func (j *openAIJustifier) Justify(ctx context.Context, input service.JustificationInput) (string, error) {
	if !j.limiter.Allow() {
		return "", errors.WithStack(ErrRateLimited)
	}

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	started := time.Now()
	resp, err := j.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: j.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(input),
			},
		},
		MaxCompletionTokens: j.maxTokens,
		Temperature:         0.3,
	})
	metrics.ObserveProvider(providerName, time.Since(started), err)
	if err != nil {
		return "", errors.Wrap(err, "create chat completion")
	}

	if len(resp.Choices) == 0 {
		return "", errors.WithStack(ErrEmptyCompletion)
	}

	text := firstSentence(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.WithStack(ErrEmptyCompletion)
	}

	j.logger.Debug("Justification generated", slog.Int("tokens", resp.Usage.TotalTokens))

	return text, nil
}

func userPrompt(input service.JustificationInput) string {
	distance := "a uma distância não informada"
	if input.Distance != "" && input.Distance != entity.DistanceUnavailable {
		distance = fmt.Sprintf("a %s km", input.Distance)
	}

	return fmt.Sprintf(
		"O usuário procurou por %q. O local recomendado é %q, %s da posição dele. "+
			"Escreva uma frase justificando a recomendação.",
		strings.TrimSpace(input.Query), input.PlaceName, distance,
	)
}

// firstSentence keeps the first line of the completion, without surrounding quotes.
func firstSentence(content string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(content), "\n")

	return strings.Trim(strings.TrimSpace(line), "\"“”")
}

type disabledJustifier struct{}

func (disabledJustifier) Justify(context.Context, service.JustificationInput) (string, error) {
	return "", errors.WithStack(ErrDisabled)
}
