package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	"github.com/vheikkine/franchiselab/internal/errors"
)

const openAIMaxTokens = 800

// OpenAIClient is a drop-in Completer backed by the OpenAI chat API, for
// deployments without access to the hosted bot endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a Completer using the given API key.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

// Complete implements Completer using a single chat completion call.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, systemMessage string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: openAIMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(errors.Join(err, ErrCompletionFailed), "openai chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.Wrap(ErrCompletionFailed, "openai returned no choices")
	}
	return StripCodeFences(resp.Choices[0].Message.Content), nil
}
