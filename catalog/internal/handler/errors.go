package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const validationMessage = "request validation failed"

// serviceError maps service error kinds onto status codes.
func serviceError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, bindError(err))
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errs.ValidationErrorResponse{
			Message: validationMessage,
			Errors:  validate.Fields(err),
		})
	}
	return nil
}

func bindError(err error) errs.ValidationErrorResponse {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fieldError(typeErr.Field, typeErr.Type.String())
	}
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}
	return errs.ValidationErrorResponse{Message: msg}
}

func fieldError(field, rule string) errs.ValidationErrorResponse {
	return errs.ValidationErrorResponse{
		Message: validationMessage,
		Errors:  map[string]string{field: rule},
	}
}
