package openai

import (
	"context"
	"fmt"
	"strings"

	"lira-support-be/pkg/llm"

	openai "github.com/sashabaranov/go-openai"
)

type Provider struct {
	client *openai.Client
	model  string
}

// Ensure Provider implements LLMProvider
var _ llm.LLMProvider = &Provider{}

func NewProvider(apiKey, model string) *Provider {
	return NewProviderWithClient(openai.NewClient(apiKey), model)
}

// NewProviderWithClient allows injecting a preconfigured client, mainly for
// pointing tests at a local server.
func NewProviderWithClient(client *openai.Client, model string) *Provider {
	return &Provider{
		client: client,
		model:  model,
	}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openai.ChatCompletionMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		// Some providers call the assistant role "model"
		if role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		messages[i] = openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	}
	if options.MaxTokens > 0 {
		req.MaxTokens = options.MaxTokens
	}
	if options.Temperature > 0 {
		req.Temperature = float32(options.Temperature)
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrModelUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", llm.ErrModelUnavailable)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
