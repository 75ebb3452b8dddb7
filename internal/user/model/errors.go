package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates that a user with the given email is already registered.
	ErrEmailTaken = errors.New("user already exists")
)
