package user

import (
	"errors"
	"net/http"
)

// ErrInvalidJSON is returned when the body is not a single, well-formed JSON object matching CreateUserRequest.
var ErrInvalidJSON = errors.New("invalid JSON")

// ErrUsernameRequired is returned when the body has no "username" member or it is null.
var ErrUsernameRequired = errors.New("username required")

// ErrBodyTooLarge is returned when the body exceeds MaxRequestBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// MapDecodeError returns (status, message) for known create-user decode errors. Returns (0, "") for unknown errors.
func MapDecodeError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, msgBodyTooLarge
	case errors.Is(err, ErrUsernameRequired):
		return http.StatusBadRequest, msgUsernameRequired
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, msgInvalidJSON
	default:
		return 0, ""
	}
}
