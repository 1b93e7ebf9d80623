package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openAIBackend serves every OpenAI-compatible chat completions provider:
// OpenAI itself, Groq and OpenRouter differ only by base URL and model.
type openAIBackend struct {
	client *openai.Client
}

func newOpenAIBackend(cfg Config, httpClient *http.Client) *openAIBackend {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.EffectiveEndpoint()
	oc.HTTPClient = httpClient
	return &openAIBackend{client: openai.NewClientWithConfig(oc)}
}

func (b *openAIBackend) generate(ctx context.Context, c call) (string, string, error) {
	system, err := systemWithSchema(c.SystemPrompt, c.Schema)
	if err != nil {
		return "", "", err
	}

	req := openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: c.UserPrompt},
		},
		Temperature: float32(c.Temperature),
		MaxTokens:   c.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", "", &StatusError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
			return "", "", &StatusError{StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Error()}
		}
		return "", "", err
	}
	if len(resp.Choices) == 0 {
		return "", "", fmt.Errorf("%w: no choices", ErrInvalidOutput)
	}
	return resp.Choices[0].Message.Content, resp.Model, nil
}

func (b *openAIBackend) available(ctx context.Context) bool {
	_, err := b.client.ListModels(ctx)
	return err == nil
}

// systemWithSchema appends the response schema to the system prompt for
// providers whose JSON mode does not take a schema parameter.
func systemWithSchema(system string, schema *Schema) (string, error) {
	if schema == nil {
		return system + "\n\nRespond with a single JSON object.", nil
	}
	js, err := schema.MarshalJSONSchema()
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}
	return fmt.Sprintf("%s\n\nRespond with a single JSON object that validates against this JSON Schema:\n%s", system, js), nil
}
