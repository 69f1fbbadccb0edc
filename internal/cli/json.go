package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/llamactl/llamactl/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine
// parsing. All --json output uses this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output. These map to specific actions
// automation can take.
const (
	ErrCodeConfigNotFound     = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid      = "CONFIG_INVALID"
	ErrCodeOllamaNotInstalled = "OLLAMA_NOT_INSTALLED"
	ErrCodeServerUnreachable  = "SERVER_UNREACHABLE"
	ErrCodeModelNotFound      = "MODEL_NOT_FOUND"
	ErrCodeCatalogInvalid     = "CATALOG_INVALID"
	ErrCodeHardwareFailed     = "HARDWARE_FAILED"
	ErrCodeCommandFailed      = "COMMAND_FAILED"
	ErrCodeUnknown            = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*errors.Error); ok {
		return &JSONError{
			Code:       mapErrorCode(appErr.Code, appErr.Message),
			Message:    appErr.Message,
			Suggestion: appErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	msgLower := strings.ToLower(message)

	switch internalCode {
	case errors.ErrConfig:
		if strings.Contains(msgLower, "model") {
			return ErrCodeModelNotFound
		}
		if strings.Contains(msgLower, "not found") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrOllama:
		if strings.Contains(msgLower, "model") {
			return ErrCodeModelNotFound
		}
		if strings.Contains(msgLower, "not installed") {
			return ErrCodeOllamaNotInstalled
		}
		if strings.Contains(msgLower, "not responding") || strings.Contains(msgLower, "reach") {
			return ErrCodeServerUnreachable
		}
		return ErrCodeCommandFailed
	case errors.ErrCatalog:
		if strings.Contains(msgLower, "no models") {
			return ErrCodeModelNotFound
		}
		return ErrCodeCatalogInvalid
	case errors.ErrHardware:
		return ErrCodeHardwareFailed
	case errors.ErrExec:
		return ErrCodeCommandFailed
	}

	return ErrCodeUnknown
}
