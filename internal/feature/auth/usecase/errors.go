package usecase

import "errors"

// ErrInvalidCredentials is returned when login fails, regardless of whether
// the email was unknown or the password did not match. The single error value
// prevents user-enumeration through error messages.
var ErrInvalidCredentials = errors.New("invalid credentials")
