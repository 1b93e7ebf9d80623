package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ollamaBackend talks to a local Ollama instance. It needs no credential.
type ollamaBackend struct {
	endpoint string
	http     *http.Client
}

func newOllamaBackend(cfg Config, httpClient *http.Client) *ollamaBackend {
	return &ollamaBackend{endpoint: cfg.EffectiveEndpoint(), http: httpClient}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string          `json:"model"`
	System  string          `json:"system,omitempty"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Format  json.RawMessage `json:"format,omitempty"`
	Options ollamaOptions   `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (b *ollamaBackend) generate(ctx context.Context, c call) (string, string, error) {
	format := json.RawMessage(`"json"`)
	if c.Schema != nil {
		js, err := c.Schema.MarshalJSONSchema()
		if err != nil {
			return "", "", fmt.Errorf("marshaling schema: %w", err)
		}
		format = js
	}

	data, err := json.Marshal(ollamaRequest{
		Model:  c.Model,
		System: c.SystemPrompt,
		Prompt: c.UserPrompt,
		Stream: false,
		Format: format,
		Options: ollamaOptions{
			Temperature: c.Temperature,
			NumPredict:  c.MaxTokens,
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := b.http.Do(httpReq)
	if err != nil {
		return "", "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", "", fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", "", &StatusError{StatusCode: httpResp.StatusCode, Body: truncate(string(respBody), 512)}
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", "", fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
	}
	return resp.Response, resp.Model, nil
}

func (b *ollamaBackend) available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := b.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
