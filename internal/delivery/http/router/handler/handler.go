// Package handler contains the echo handlers of the gateway API. Handlers return
// use case errors wrapped with a stack; the centralized error handler renders them.
package handler

import (
	"strconv"

	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/delivery/http/response"
	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// sessionOf returns the session stored by the auth middleware.
func sessionOf(c echo.Context) (entity.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return entity.Session{}, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return session, nil
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// bindAndValidate binds the request body into req and runs the struct rules.
// On failure it writes the 400 response itself and reports false.
func bindAndValidate(c echo.Context, req any, message string) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", message)
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err.Error())
	}

	return true, nil
}
