package models

import "errors"

// ErrUserNotFound is returned when no user matches the given email.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned when the email exists but the
// credentials are not accepted.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering with an email that
// already exists.
var ErrEmailTaken = errors.New("user with this email already exists")

// ErrItemNotFound is returned when an item id lookup misses.
var ErrItemNotFound = errors.New("item not found")

// ErrCategoryNotFound is returned when a category id lookup misses.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCategoryInUse is returned when deleting a category that at least
// one item still references.
var ErrCategoryInUse = errors.New("cannot delete category that is in use")

// ErrMissingCredentials is returned when a login attempt omits the
// email or the password.
var ErrMissingCredentials = errors.New("email and password are required")

// ErrMissingFields is returned when a registration attempt omits any
// of its fields.
var ErrMissingFields = errors.New("all fields are required")
