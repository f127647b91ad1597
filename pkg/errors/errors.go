package relay_errors

import "errors"

// Common errors. Anything not listed here is reported to clients as an internal error.
var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoFileData         = errors.New("no file data provided")
	ErrTooLarge           = errors.New("file too large")
	ErrUnknownAction      = errors.New("unknown action")
)
