package common

import (
	"encoding/json"
	"net/http"

	"mock-bank-api/logger"

	"github.com/sirupsen/logrus"
)

// AppError is the error shape handlers return. On the wire it becomes
// {"error": "..."} (plus "path" for unmatched routes); the status code
// and the internal cause stay server-side.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Path    string `json:"path,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Warn(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
