package models

// CreateMessageRequest is the inbound payload for posting a new message.
//
// UserID is accepted for wire compatibility with older clients but is
// deliberately ignored: message ownership is always taken from the
// authenticated actor, never from the request body.
type CreateMessageRequest struct {
	// Text is the message body.
	Text string `json:"text"`

	// UserID is a client-supplied owner hint. The server discards it.
	UserID int64 `json:"user_id,omitempty"`
}

// TimelineQuery carries paging criteria for timeline reads.
type TimelineQuery struct {
	// UserIDs restricts the result to messages authored by these users.
	// Empty means no author filter.
	UserIDs []int64 `json:"user_ids,omitempty"`

	// BeforeID, when non-zero, returns only messages with a smaller
	// identifier. Used for cursor-style paging.
	BeforeID int64 `json:"before_id,omitempty"`

	// Limit caps the number of returned messages. Zero means the server
	// default.
	Limit uint64 `json:"limit,omitempty"`
}
