package service

import "errors"

var (
	// ErrInvalidDataProvided signals a missing or empty required field.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword signals a credential mismatch during login. Together
	// with store.ErrUserNotFound it forms the "no match" outcome, which the
	// HTTP layer presents uniformly.
	ErrWrongPassword = errors.New("wrong password")

	// ErrUnauthenticated signals that an operation requiring an
	// authenticated actor was attempted anonymously. Checked inside every
	// mutating and relationship-viewing service call, before any state is
	// touched, regardless of what the transport layer already enforced.
	ErrUnauthenticated = errors.New("no authenticated actor")

	// ErrNotMessageOwner signals an authenticated actor acting on a message
	// owned by another user.
	ErrNotMessageOwner = errors.New("message belongs to another user")

	// ErrMessageTooLong signals message text exceeding models.MaxMessageLength.
	ErrMessageTooLong = errors.New("message text exceeds maximum length")

	// ErrSelfFollow signals an attempt to create a follow edge from a user
	// to themselves. Self-follows are rejected, never stored.
	ErrSelfFollow = errors.New("users cannot follow themselves")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
