package errors

import "time"

// Logger is the minimal logging surface the handler needs.
type Logger interface {
	Error(msg string, fields map[string]interface{})
}

// Handler normalizes arbitrary failures so the pipeline can always fall
// back to a well-formed result instead of surfacing an error to callers.
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Normalize ensures we always have a StandardError.
func (h *Handler) Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Report logs a normalized error with its code and returns it.
func (h *Handler) Report(stage string, err error) *StandardError {
	stdErr := h.Normalize(err)
	h.logger.Error("pipeline stage failed", map[string]interface{}{
		"stage":     stage,
		"errorCode": string(stdErr.Code),
		"error":     stdErr.Details,
		"retryable": stdErr.Retryable,
	})
	return stdErr
}
