package service

import (
	"context"

	"github.com/warblerhq/warbler/models"
)

// AuthService owns the user account lifecycle: signup, credential
// verification, and JWT token issue/parse.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MessageService owns message creation, lookup, deletion, and timeline
// reads.
//
// Every method takes the authenticated actor's id explicitly; there is no
// ambient session state. Message ownership is always pinned to actorID on
// creation, and deletion requires actorID to match the stored owner.
type MessageService interface {
	CreateMessage(ctx context.Context, actorID int64, text string) (models.Message, error)
	GetMessage(ctx context.Context, actorID, messageID int64) (models.Message, error)
	DeleteMessage(ctx context.Context, actorID, messageID int64) error
	UserTimeline(ctx context.Context, actorID, userID int64, query models.TimelineQuery) ([]models.Message, error)
	HomeTimeline(ctx context.Context, actorID int64, query models.TimelineQuery) ([]models.Message, error)
}

// FollowService owns the directed follow graph and relationship views.
//
// Any authenticated actor may view another user's relationship pages; an
// anonymous actor may not. Edge mutations always act on behalf of actorID.
type FollowService interface {
	Follow(ctx context.Context, actorID, targetID int64) error
	Unfollow(ctx context.Context, actorID, targetID int64) error
	IsFollowing(ctx context.Context, userID, otherID int64) (bool, error)
	IsFollowedBy(ctx context.Context, userID, otherID int64) (bool, error)
	Following(ctx context.Context, actorID, userID int64) ([]models.User, error)
	Followers(ctx context.Context, actorID, userID int64) ([]models.User, error)
	Profile(ctx context.Context, actorID, userID int64) (models.ProfileResponse, error)
}
