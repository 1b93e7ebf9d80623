package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// GenerateRequest holds the parameters for one generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Schema       *Schema  // shape the response must follow; nil asks for any JSON object
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	RequestID string
	LatencyMs int64
}

// LLMClient provides access to a language model for structured generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the provider is reachable with the
	// configured credential.
	Available(ctx context.Context) bool
}

// call is one resolved provider round trip.
type call struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Schema       *Schema
	Temperature  float64
	MaxTokens    int
}

// backend speaks one provider's wire protocol.
type backend interface {
	generate(ctx context.Context, c call) (text string, model string, err error)
	available(ctx context.Context) bool
}

// client applies configuration, timeouts and observation around a backend.
// Every call is a single attempt.
type client struct {
	cfg      Config
	backend  backend
	observer Observer
}

// NewClient creates an LLMClient for the configured provider.
func NewClient(cfg Config, observer Observer) (LLMClient, error) {
	if observer == nil {
		observer = NoopObserver{}
	}
	httpClient := newHTTPClient()

	var b backend
	switch cfg.Provider {
	case ProviderGemini:
		b = newGeminiBackend(cfg, httpClient)
	case ProviderOpenAI, ProviderGroq, ProviderOpenRouter:
		b = newOpenAIBackend(cfg, httpClient)
	case ProviderOllama:
		b = newOllamaBackend(cfg, httpClient)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	return &client{cfg: cfg, backend: b, observer: observer}, nil
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		},
	}
}

func (c *client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if err := c.cfg.RequireCredential(c.cfg.Language); err != nil {
		return nil, err
	}

	start := time.Now()
	requestID := uuid.New().String()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	model := c.cfg.ModelFor(req.Task)

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	callCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	text, respModel, err := c.backend.generate(callCtx, call{
		Model:        model,
		SystemPrompt: req.SystemPrompt,
		UserPrompt:   req.UserPrompt,
		Schema:       req.Schema,
		Temperature:  temp,
		MaxTokens:    maxTok,
	})
	latency := time.Since(start).Milliseconds()

	event := LLMCallEvent{
		RequestID: requestID,
		Task:      req.Task,
		Provider:  c.cfg.Provider,
		Model:     model,
		LatencyMs: latency,
	}

	if err != nil {
		err = classify(ctx, callCtx, err)
		event.ErrorCode = errorCode(err)
		c.observer.OnCallComplete(event)
		return nil, err
	}

	event.Success = true
	c.observer.OnCallComplete(event)

	if respModel == "" {
		respModel = model
	}
	return &GenerateResponse{
		Text:      text,
		Model:     respModel,
		RequestID: requestID,
		LatencyMs: latency,
	}, nil
}

func (c *client) Available(ctx context.Context) bool {
	if !c.cfg.HasCredential() {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return c.backend.available(ctx)
}

// classify maps transport failures onto the package sentinels. A parent
// cancellation is passed through untouched.
func classify(parent, callCtx context.Context, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return err
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrRejected):
		return "REJECTED"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}
