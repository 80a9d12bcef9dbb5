package handler

import (
	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
//
// Required fields use the `required` tag, which rejects zero values. That is
// deliberate: the wire contract treats falsy values (quantity 0, empty string)
// as missing, and callers depend on it. The one exception is the admin-user
// level, modelled as a pointer so that 0 passes but absence fails.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	return ev.v.Struct(i)
}
