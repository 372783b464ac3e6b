package common

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateAndDecode decodes the JSON body into payload and runs struct
// validation against its tags.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request payload", err)
	}
	return nil
}

// Validate runs struct validation only, for handlers that need to map
// validation failures to something other than a 400.
func Validate(payload interface{}) error {
	return validate.Struct(payload)
}
