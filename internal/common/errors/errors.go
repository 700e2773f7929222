// Package errors provides standardized error handling for the chatbot engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeVectorizerNotFitted   ErrorCode = "VECTORIZER_NOT_FITTED"
	ErrCodeClassificationFailed  ErrorCode = "INTENT_CLASSIFICATION_FAILED"
	ErrCodeSentimentUnavailable  ErrorCode = "SENTIMENT_RESOURCE_UNAVAILABLE"
	ErrCodeLemmatizerUnavailable ErrorCode = "LEMMATIZER_UNAVAILABLE"

	ErrCodeKnowledgeBaseInvalid ErrorCode = "KNOWLEDGE_BASE_INVALID"
	ErrCodeIntentsInvalid       ErrorCode = "INTENTS_INVALID"
	ErrCodeTemplatesInvalid     ErrorCode = "TEMPLATES_INVALID"
	ErrCodeConfigMissing        ErrorCode = "CONFIG_MISSING"

	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeQueryFailed      ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeSearchFailed     ErrorCode = "SEARCH_QUERY_FAILED"

	ErrCodeTicketCreateFailed     ErrorCode = "TICKET_CREATE_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// New creates a StandardError with the given code and message.
func New(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// Wrap creates a StandardError carrying the wrapped error's text as details.
func Wrap(code ErrorCode, message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreUnavailableError creates a retryable storage error.
func NewStoreUnavailableError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreUnavailable,
		Message:   "Conversation store is unreachable",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification error.
func NewNotificationSendFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Failed to send escalation notification",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether an error is a retryable StandardError.
func IsRetryable(err error) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Retryable
}
