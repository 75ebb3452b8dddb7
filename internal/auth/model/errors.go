package model

import "errors"

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so a caller cannot tell which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")
