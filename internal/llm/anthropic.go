package llm

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient is the alternate provider. It honors the same candidate
// fallback contract as the OpenRouter gateway.
type AnthropicClient struct {
	client anthropic.Client
	models []string
}

func NewAnthropicClient(apiKey string, models []string) *AnthropicClient {
	opts := []option.RequestOption{
		option.WithRequestTimeout(requestTimeout),
		option.WithMaxRetries(0),
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &AnthropicClient{client: anthropic.NewClient(opts...), models: models}
}

func (c *AnthropicClient) Chat(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	msgs := make([]anthropic.MessageParam, 0, len(history))
	for _, m := range history {
		block := anthropic.NewTextBlock(m.Content)
		switch m.Role {
		case "assistant":
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		default:
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}

	for _, model := range c.models {
		resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:       anthropic.Model(model),
			MaxTokens:   genMaxTokens,
			System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
			Messages:    msgs,
			Temperature: anthropic.Float(genTemperature),
			TopP:        anthropic.Float(genTopP),
		})
		if err == nil {
			var text strings.Builder
			for _, block := range resp.Content {
				if block.Type == "text" {
					text.WriteString(block.Text)
				}
			}
			content := strings.TrimSpace(text.String())
			if content == "" {
				return "", ErrEmptyResponse
			}
			return content, nil
		}

		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			if isInvalidModelError(apierr.RawJSON()) || isInvalidModelError(err.Error()) {
				log.Printf("llm: model %q rejected by provider, trying next candidate", model)
				continue
			}
			return "", &GatewayError{Message: FallbackErrorMessage, Err: err}
		}

		log.Printf("llm: request for model %q failed: %v", model, err)
	}

	return "", &GatewayError{Message: FallbackErrorMessage}
}
