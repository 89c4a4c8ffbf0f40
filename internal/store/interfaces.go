package store

import (
	"context"

	"github.com/warblerhq/warbler/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// MessageRepository persists and looks up messages.
//
// DeleteMessage binds the owner into the DELETE predicate, so the ownership
// check and the row removal are one atomic statement.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
	FindMessageByID(ctx context.Context, messageID int64) (models.Message, error)
	DeleteMessage(ctx context.Context, messageID, ownerID int64) error
	ListMessages(ctx context.Context, query models.TimelineQuery) ([]models.Message, error)
}

// FollowRepository maintains the directed follow edge set and answers
// adjacency queries via indexed lookups.
type FollowRepository interface {
	CreateFollow(ctx context.Context, followerID, followedID int64) error
	DeleteFollow(ctx context.Context, followerID, followedID int64) error
	FollowExists(ctx context.Context, followerID, followedID int64) (bool, error)
	ListFollowing(ctx context.Context, userID int64) ([]models.User, error)
	ListFollowers(ctx context.Context, userID int64) ([]models.User, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
