package models

import "time"

// Default profile images applied at signup when the client does not supply
// its own references.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents a registered account: identity attributes, public profile
// fields, and the hashed credential.
// PasswordHash must only ever hold a bcrypt digest, never plaintext, and is
// excluded from every JSON representation.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on insert.
	UserID int64 `json:"id"`

	// Username is the unique public handle used for login and mentions.
	Username string `json:"username"`

	// Email is the unique contact address supplied at signup.
	Email string `json:"email"`

	// Password carries the raw credential on inbound signup/login requests
	// only. It is hashed before any persistence call and is never written
	// back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Never exposed via JSON and never compared in plaintext.
	PasswordHash string `json:"-"`

	// ImageURL is the profile picture reference shown next to messages.
	ImageURL string `json:"image_url"`

	// HeaderImageURL is the profile page banner reference.
	HeaderImageURL string `json:"header_image_url"`

	// Bio is the optional free-text self description.
	Bio string `json:"bio,omitempty"`

	// Location is the optional free-text location line.
	Location string `json:"location,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
