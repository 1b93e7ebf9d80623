package llm

import "github.com/fift2939-create/ather1/internal/logger"

// LLMCallEvent records metadata about a single generation call.
type LLMCallEvent struct {
	RequestID string
	Task      TaskType
	Provider  Provider
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about generation calls for logging.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes one structured line per call.
type LogObserver struct {
	log *logger.Logger
}

// NewLogObserver creates an Observer that logs events through log.
func NewLogObserver(log *logger.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	kv := []any{
		"request_id", event.RequestID,
		"task", event.Task,
		"provider", event.Provider,
		"model", event.Model,
		"latency_ms", event.LatencyMs,
	}
	if event.Success {
		o.log.Info("llm_call", append(kv, "status", "ok")...)
		return
	}
	o.log.Warn("llm_call", append(kv, "status", "err", "error_code", event.ErrorCode)...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
