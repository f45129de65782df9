package service

import "errors"

// Every rule violation a handler is expected to surface as a user-visible
// alert. Anything else that comes out of a service is a fatal request failure.
var (
	ErrValidation         = errors.New("required field missing")
	ErrDuplicateLoginID   = errors.New("login id already in use")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateCode      = errors.New("department code already in use")
	ErrDuplicateName      = errors.New("department name already in use")
	ErrNotFound           = errors.New("record not found")
	ErrProtectedRole      = errors.New("admin accounts cannot be deleted")
	ErrHasDependents      = errors.New("department still has users assigned")
	ErrInvalidCredentials = errors.New("invalid login id or password")
)
