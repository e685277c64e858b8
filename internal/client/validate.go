package client

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/dispatch/internal/http"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

var validate = validator.New()

// validateRequest checks request parameters before anything is sent.
func validateRequest(request interface{}) error {
	if http.IsNil(request) {
		return fmt.Errorf("%w: request is required", dispatch.ErrInvalidRequest)
	}

	err := validate.Struct(request)
	if err != nil {
		return fmt.Errorf("%w: %w", dispatch.ErrInvalidRequest, err)
	}

	return nil
}
