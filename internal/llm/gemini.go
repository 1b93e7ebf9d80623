package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

// geminiBackend calls the Generative Language REST API.
type geminiBackend struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func newGeminiBackend(cfg Config, httpClient *http.Client) *geminiBackend {
	return &geminiBackend{
		endpoint: cfg.EffectiveEndpoint(),
		apiKey:   cfg.APIKey,
		http:     httpClient,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

// geminiRequest is the JSON body sent to models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	ModelVersion string `json:"modelVersion"`
}

func (b *geminiBackend) generate(ctx context.Context, c call) (string, string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: c.UserPrompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      c.Temperature,
			MaxOutputTokens:  c.MaxTokens,
			ResponseMimeType: "application/json",
			ResponseSchema:   c.Schema,
		},
	}
	if c.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: c.SystemPrompt}}}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", "", fmt.Errorf("marshaling request: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent", b.endpoint, url.PathEscape(c.Model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", b.apiKey)

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

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", "", fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
	}
	if len(resp.Candidates) == 0 {
		reason := resp.PromptFeedback.BlockReason
		if reason == "" {
			reason = "no candidates"
		}
		return "", "", fmt.Errorf("%w: %s", ErrInvalidOutput, reason)
	}

	var text strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	model := resp.ModelVersion
	if model == "" {
		model = c.Model
	}
	return text.String(), model, nil
}

func (b *geminiBackend) available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint+"/models?pageSize=1", nil)
	if err != nil {
		return false
	}
	req.Header.Set("x-goog-api-key", b.apiKey)
	resp, err := b.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
