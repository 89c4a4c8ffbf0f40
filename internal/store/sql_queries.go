package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/warblerhq/warbler/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, image_url, header_image_url, bio, location)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING user_id, username, email, password_hash, image_url, header_image_url, bio, location, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, image_url, header_image_url, bio, location, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, image_url, header_image_url, bio, location, created_at
    FROM users
    WHERE user_id = $1;`

	createMessage = `INSERT INTO messages (user_id, text)
    VALUES ($1, $2)
    RETURNING message_id, user_id, text, created_at;`

	findMessageByID = `SELECT message_id, user_id, text, created_at
    FROM messages
    WHERE message_id = $1;`

	// Owner is part of the predicate: the delete cannot outrun the
	// ownership check.
	deleteMessage = `DELETE FROM messages
    WHERE message_id = $1 AND user_id = $2;`

	createFollow = `INSERT INTO follows (follower_id, followed_id)
    VALUES ($1, $2);`

	deleteFollow = `DELETE FROM follows
    WHERE follower_id = $1 AND followed_id = $2;`

	followExists = `SELECT EXISTS (
        SELECT 1 FROM follows
        WHERE follower_id = $1 AND followed_id = $2
    );`

	listFollowing = `SELECT u.user_id, u.username, u.email, u.password_hash, u.image_url, u.header_image_url, u.bio, u.location, u.created_at
    FROM users u
    JOIN follows f ON f.followed_id = u.user_id
    WHERE f.follower_id = $1
    ORDER BY f.created_at DESC;`

	listFollowers = `SELECT u.user_id, u.username, u.email, u.password_hash, u.image_url, u.header_image_url, u.bio, u.location, u.created_at
    FROM users u
    JOIN follows f ON f.follower_id = u.user_id
    WHERE f.followed_id = $1
    ORDER BY f.created_at DESC;`
)

const (
	defaultTimelineLimit = 50
	maxTimelineLimit     = 200
)

// buildTimelineQuery assembles the timeline SELECT from the optional filters
// in query: author set, before-id cursor, limit. Messages come back newest
// first.
func buildTimelineQuery(query models.TimelineQuery) (string, []any, error) {
	builder := sq.Select("message_id", "user_id", "text", "created_at").
		From("messages").
		OrderBy("message_id DESC").
		PlaceholderFormat(sq.Dollar)

	if len(query.UserIDs) > 0 {
		builder = builder.Where(sq.Eq{"user_id": query.UserIDs})
	}

	if query.BeforeID > 0 {
		builder = builder.Where(sq.Lt{"message_id": query.BeforeID})
	}

	builder = builder.Limit(clampTimelineLimit(query.Limit))

	return builder.ToSql()
}

// clampTimelineLimit normalizes a client-supplied page size. Zero and
// anything above the maximum fall back to the default, so the value is safe
// to use both in the SQL LIMIT and as an allocation hint.
func clampTimelineLimit(limit uint64) uint64 {
	if limit == 0 || limit > maxTimelineLimit {
		return defaultTimelineLimit
	}

	return limit
}
