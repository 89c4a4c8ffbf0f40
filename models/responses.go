package models

// TimelineResponse is the payload returned by timeline reads.
type TimelineResponse struct {
	// Messages is the page of messages, newest first.
	Messages []Message `json:"messages"`

	// Length is the number of entries in Messages. Provided for
	// convenience so the client can validate the response without
	// iterating the slice.
	Length int `json:"length"`
}

// UserListResponse is the payload returned by follower/following listings.
type UserListResponse struct {
	// Users is the list of matched users.
	Users []User `json:"users"`

	// Length is the number of entries in Users.
	Length int `json:"length"`
}

// ProfileResponse is the payload returned for a single user profile.
// The relationship flags are computed against the requesting actor.
type ProfileResponse struct {
	User User `json:"user"`

	// IsFollowing reports whether the actor follows this user.
	IsFollowing bool `json:"is_following"`

	// IsFollowedBy reports whether this user follows the actor.
	IsFollowedBy bool `json:"is_followed_by"`
}
