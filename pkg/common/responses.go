package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "journeymap/pkg/errors"

	"go.uber.org/zap"
)

// ErrorEnvelope is the uniform error body returned by every endpoint.
type ErrorEnvelope struct {
	Detail    string `json:"detail"`
	ErrorCode string `json:"error_code"`
	Timestamp string `json:"timestamp"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError sends an error envelope with the given status and detail
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, ErrorEnvelope{
		Detail:    detail,
		ErrorCode: errorCode(status),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// RespondAppError maps an error to the uniform envelope. Typed AppErrors keep
// their status and message; anything else becomes a generic 500 with no
// internal detail leaked.
func RespondAppError(w http.ResponseWriter, logger *zap.Logger, r *http.Request, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		if status >= 500 {
			logger.Error("Request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			RespondError(w, status, "An unexpected error occurred")
			return
		}
		RespondError(w, status, appErr.Message)
		return
	}

	logger.Error("Unhandled error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	RespondError(w, http.StatusInternalServerError, "An unexpected error occurred")
}

func errorCode(status int) string {
	if status == http.StatusInternalServerError {
		return "500_INTERNAL_ERROR"
	}
	return fmt.Sprintf("%d_ERROR", status)
}
