package common

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Warn("JSON encode failed", zap.Error(err))
	}
}

// WriteError writes the usual {"error": message} body.
func WriteError(logger *zap.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, map[string]string{"error": message})
}

// InternalErrorResponse is the 500 body. Stack carries the wrapped error's
// trace when one was recorded.
type InternalErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// WriteInternalError logs err and answers 500 with its message and stack.
func WriteInternalError(logger *zap.Logger, w http.ResponseWriter, err error) {
	if logger != nil {
		logger.Error("request failed", zap.Error(err))
	}
	resp := InternalErrorResponse{
		Error:   "Internal Server Error",
		Message: "Unknown error",
	}
	if err != nil {
		resp.Message = err.Error()
		if stack := fmt.Sprintf("%+v", err); stack != resp.Message {
			resp.Stack = stack
		}
	}
	WriteJSON(logger, w, http.StatusInternalServerError, resp)
}
