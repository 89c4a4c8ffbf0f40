package service

import (
	"context"
	"fmt"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/store"
	"github.com/warblerhq/warbler/models"
)

// followService is the concrete implementation of FollowService.
//
// Edge policies (documented invariants, see errors.go):
//   - a duplicate follow is a conflict, surfaced as store.ErrFollowAlreadyExists;
//   - a self-follow is rejected with ErrSelfFollow before the store is touched;
//   - unfollowing an absent edge surfaces store.ErrFollowNotFound.
type followService struct {
	followRepository store.FollowRepository
	userRepository   store.UserRepository
	logger           *logger.Logger
}

// NewFollowService constructs a FollowService over the follow and user
// repositories. The user repository backs target-existence checks and
// profile reads.
func NewFollowService(followRepository store.FollowRepository, userRepository store.UserRepository, logger *logger.Logger) FollowService {
	return &followService{
		followRepository: followRepository,
		userRepository:   userRepository,
		logger:           logger,
	}
}

// Follow creates the edge actor → target.
//
// Returns nil on success or:
//   - ErrUnauthenticated if actorID names no authenticated actor.
//   - ErrSelfFollow if actorID == targetID.
//   - store.ErrUserNotFound if the target does not exist.
//   - store.ErrFollowAlreadyExists if the edge is already present.
func (s *followService) Follow(ctx context.Context, actorID, targetID int64) error {
	log := logger.FromContext(ctx)

	if actorID <= 0 {
		return ErrUnauthenticated
	}
	if actorID == targetID {
		return ErrSelfFollow
	}

	if _, err := s.userRepository.FindUserByID(ctx, targetID); err != nil {
		return fmt.Errorf("target lookup failed: %w", err)
	}

	if err := s.followRepository.CreateFollow(ctx, actorID, targetID); err != nil {
		log.Err(err).Int64("actor_id", actorID).Int64("target_id", targetID).Msg("follow ended with error")
		return fmt.Errorf("follow ended with error: %w", err)
	}

	return nil
}

// Unfollow removes the edge actor → target.
//
// Returns nil on success or:
//   - ErrUnauthenticated if actorID names no authenticated actor.
//   - store.ErrFollowNotFound if no such edge exists.
func (s *followService) Unfollow(ctx context.Context, actorID, targetID int64) error {
	log := logger.FromContext(ctx)

	if actorID <= 0 {
		return ErrUnauthenticated
	}

	if err := s.followRepository.DeleteFollow(ctx, actorID, targetID); err != nil {
		log.Err(err).Int64("actor_id", actorID).Int64("target_id", targetID).Msg("unfollow ended with error")
		return fmt.Errorf("unfollow ended with error: %w", err)
	}

	return nil
}

// IsFollowing reports whether userID follows otherID. A pure query over the
// edge set: one indexed lookup for the ordered pair.
func (s *followService) IsFollowing(ctx context.Context, userID, otherID int64) (bool, error) {
	return s.followRepository.FollowExists(ctx, userID, otherID)
}

// IsFollowedBy reports whether otherID follows userID — the same edge set
// queried with the pair reversed.
func (s *followService) IsFollowedBy(ctx context.Context, userID, otherID int64) (bool, error) {
	return s.followRepository.FollowExists(ctx, otherID, userID)
}

// Following lists the users that userID follows. Any authenticated actor
// may view any user's following page; anonymous actors may not.
func (s *followService) Following(ctx context.Context, actorID, userID int64) ([]models.User, error) {
	if actorID <= 0 {
		return nil, ErrUnauthenticated
	}

	users, err := s.followRepository.ListFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("following list read failed: %w", err)
	}

	return users, nil
}

// Followers lists the users that follow userID, under the same visibility
// rule as Following.
func (s *followService) Followers(ctx context.Context, actorID, userID int64) ([]models.User, error) {
	if actorID <= 0 {
		return nil, ErrUnauthenticated
	}

	users, err := s.followRepository.ListFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("followers list read failed: %w", err)
	}

	return users, nil
}

// Profile returns userID's public profile together with the relationship
// flags between the actor and that user.
func (s *followService) Profile(ctx context.Context, actorID, userID int64) (models.ProfileResponse, error) {
	if actorID <= 0 {
		return models.ProfileResponse{}, ErrUnauthenticated
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	isFollowing, err := s.followRepository.FollowExists(ctx, actorID, userID)
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("follow graph read failed: %w", err)
	}

	isFollowedBy, err := s.followRepository.FollowExists(ctx, userID, actorID)
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("follow graph read failed: %w", err)
	}

	return models.ProfileResponse{
		User:         user,
		IsFollowing:  isFollowing,
		IsFollowedBy: isFollowedBy,
	}, nil
}
