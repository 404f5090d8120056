package model

import "errors"

// ErrNotFound is returned by stores when no row matches the query.
var ErrNotFound = errors.New("record not found")

var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// disabled accounts. Callers must not reveal which one happened.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken   = errors.New("email already registered")
	ErrUnauthorized = errors.New("access denied")
)
