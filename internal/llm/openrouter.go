package llm

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// Fixed generation parameters: bounded randomness, a hard token ceiling and
// nucleus sampling, so scoped assistants stay predictable.
const (
	genTemperature = 0.3
	genMaxTokens   = 1200
	genTopP        = 0.9
	requestTimeout = 30 * time.Second
)

// OpenRouterClient talks to an OpenAI-compatible chat-completions endpoint,
// walking an ordered list of model candidates until one answers.
type OpenRouterClient struct {
	client openai.Client
	models []string
}

func NewOpenRouterClient(apiKey, baseURL string, models []string) *OpenRouterClient {
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}
	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(requestTimeout),
		// The candidate chain is the retry policy; the SDK must not add its own.
		option.WithMaxRetries(0),
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &OpenRouterClient{client: openai.NewClient(opts...), models: models}
}

// Chat tries each model candidate in order. An error body naming an invalid
// model moves on to the next candidate; any other API error aborts the chain;
// transport failures are logged and the next candidate is tried. Exhausting
// the chain yields a GatewayError with a user-facing message, not a crash.
func (c *OpenRouterClient) Chat(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	msgs = append(msgs, openai.SystemMessage(systemPrompt))
	for _, m := range history {
		switch m.Role {
		case "assistant":
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	for _, model := range c.models {
		resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:       openai.ChatModel(model),
			Messages:    msgs,
			Temperature: openai.Float(genTemperature),
			MaxTokens:   openai.Int(genMaxTokens),
			TopP:        openai.Float(genTopP),
		})
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", ErrEmptyResponse
			}
			content := strings.TrimSpace(resp.Choices[0].Message.Content)
			if content == "" {
				return "", ErrEmptyResponse
			}
			return content, nil
		}

		var apierr *openai.Error
		if errors.As(err, &apierr) {
			if isInvalidModelError(apierr.RawJSON()) || isInvalidModelError(err.Error()) {
				log.Printf("llm: model %q rejected by provider, trying next candidate", model)
				continue
			}
			return "", &GatewayError{Message: FallbackErrorMessage, Err: err}
		}

		// Transport-level failure (timeout, connection refused): move on.
		log.Printf("llm: request for model %q failed: %v", model, err)
	}

	return "", &GatewayError{Message: FallbackErrorMessage}
}
