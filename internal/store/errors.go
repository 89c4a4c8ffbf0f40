package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username or email already exists.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrMessageNotFound is returned when a query or delete targets a
	// message that does not exist in the database.
	ErrMessageNotFound = errors.New("message was not found")

	// ErrFollowAlreadyExists is returned when an edge insert collides with
	// an existing (follower, followed) pair. Duplicate follows are rejected,
	// not silently absorbed, so clients can tell a fresh edge from a repeat.
	ErrFollowAlreadyExists = errors.New("follow edge already exists")

	// ErrFollowNotFound is returned when an unfollow targets an edge that
	// is not present in the database.
	ErrFollowNotFound = errors.New("follow edge was not found")
)
