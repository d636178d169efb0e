// Package validators wires go-playground/validator into echo's Validator
// hook so handlers can call c.Validate on bound request structs.
package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator backed by struct tags.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks i against its validate tags and surfaces failures as 400s.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
