package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks any field validation failure so callers can branch
// with errors.Is instead of inspecting validator internals.
var ErrValidation = errors.New("validation failed")

var validate = validator.New()

func checkStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
