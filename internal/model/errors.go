package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token related errors
	ErrInvalidToken = errors.New("invalid token")

	// Character related errors
	ErrCharacterNotFound = errors.New("character not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
