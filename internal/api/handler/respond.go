package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
)

// send writes an envelope with its embedded status mirrored onto the HTTP
// response.
func send(c echo.Context, env *envelope.Envelope) error {
	return c.JSON(env.Status, env)
}

// fail writes a failure envelope.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope.Fail(status, message))
}
