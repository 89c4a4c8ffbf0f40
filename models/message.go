package models

import "time"

// MaxMessageLength is the upper bound on message text length, in characters.
const MaxMessageLength = 140

// Message is a single timestamped post authored by exactly one user.
// UserID always names the authenticated actor that created the message;
// it is never taken from client-supplied data.
type Message struct {
	// MessageID is the unique identifier assigned by the database on insert.
	MessageID int64 `json:"id"`

	// Text is the message body, non-empty and at most MaxMessageLength
	// characters.
	Text string `json:"text"`

	// UserID is the owning user. Only the owner may delete the message.
	UserID int64 `json:"user_id"`

	// CreatedAt is set by the database at insert time and never changes.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
