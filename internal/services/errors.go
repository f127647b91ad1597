package services

import (
	"errors"
	"net/http"

	relay_errors "relay-chat/pkg/errors"
)

// HTTPStatus maps a service error onto the status code returned to clients.
// Specific sentinels are checked before the generic ones they refine.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, relay_errors.ErrUnknownAction),
		errors.Is(err, relay_errors.ErrNoFileData),
		errors.Is(err, relay_errors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, relay_errors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, relay_errors.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, relay_errors.ErrLoginTaken):
		return http.StatusConflict
	case errors.Is(err, relay_errors.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the stable text shown to clients. Internal failures never
// leak their cause; callers log the full error.
func PublicMessage(err error) string {
	for _, known := range publicErrors {
		if errors.Is(err, known) {
			if known == relay_errors.ErrUnknownAction {
				return "Invalid request"
			}
			return known.Error()
		}
	}
	return "internal error"
}

// Code is a machine readable error kind for the response envelope.
func Code(err error) string {
	switch HTTPStatus(err) {
	case http.StatusBadRequest:
		if errors.Is(err, relay_errors.ErrUnknownAction) {
			return "UNKNOWN_ACTION"
		}
		return "INVALID_REQUEST"
	case http.StatusUnauthorized:
		return "INVALID_CREDENTIALS"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusRequestEntityTooLarge:
		return "TOO_LARGE"
	default:
		return "INTERNAL"
	}
}

// Ordered most specific first.
var publicErrors = []error{
	relay_errors.ErrUnknownAction,
	relay_errors.ErrNoFileData,
	relay_errors.ErrInvalidCredentials,
	relay_errors.ErrUserNotFound,
	relay_errors.ErrLoginTaken,
	relay_errors.ErrTooLarge,
	relay_errors.ErrInvalidInput,
}
