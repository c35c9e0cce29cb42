package shared

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a usecase error to a status code and a client-safe message.
// Unrecognized errors become a generic 500 so internal detail never leaks.
func HTTPStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized, "token has expired"
	case errors.Is(err, ErrTokenInvalid):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ErrProvider):
		return http.StatusBadGateway, "upstream provider error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
