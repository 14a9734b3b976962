// Package login provides the HTTP handler for storefront customer login.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login body cannot be parsed.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is returned when the provided email and/or password
	// do not match a registered user.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
