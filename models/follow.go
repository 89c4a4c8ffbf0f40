package models

import "time"

// Follow is a directed edge in the follow graph: the follower observes the
// followed user's messages. The (FollowerID, FollowedID) pair is unique;
// self-edges are rejected before the store is touched and by a database
// CHECK constraint.
type Follow struct {
	// FollowerID is the user doing the following.
	FollowerID int64 `json:"follower_id"`

	// FollowedID is the user being followed.
	FollowedID int64 `json:"followed_id"`

	// CreatedAt is the timestamp when the edge was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Follow model.
func (f Follow) TableName() string {
	return "follows"
}
