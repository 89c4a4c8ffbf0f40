package store

import (
	"context"
	"fmt"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/models"
)

// followRepository is the SQL-backed implementation of [FollowRepository].
// The composite primary key on (follower_id, followed_id) keeps the edge set
// duplicate-free; adjacency checks are single indexed EXISTS lookups.
type followRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFollowRepository constructs a [FollowRepository] backed by the provided
// database connection and logger.
func NewFollowRepository(db *DB, logger *logger.Logger) FollowRepository {
	logger.Debug().Msg("creating follow repository")
	return &followRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFollow inserts the directed edge follower → followed.
//
// Error handling:
//   - duplicate (follower, followed) pair → [ErrFollowAlreadyExists].
//   - foreign-key failure (either user missing) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *followRepository) CreateFollow(ctx context.Context, followerID, followedID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createFollow, followerID, followedID); err != nil {
		if isUniqueViolation(err) {
			return ErrFollowAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}

		log.Err(err).Str("func", "*followRepository.CreateFollow").Stringer("db_error_class", r.db.classify(err)).Msg("error: executing error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteFollow removes the directed edge follower → followed.
// Zero affected rows maps to [ErrFollowNotFound].
func (r *followRepository) DeleteFollow(ctx context.Context, followerID, followedID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFollow, followerID, followedID)
	if err != nil {
		log.Err(err).Str("func", "*followRepository.DeleteFollow").Stringer("db_error_class", r.db.classify(err)).Msg("error: executing error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrFollowNotFound
	}

	return nil
}

// FollowExists reports whether the directed edge follower → followed is
// present. One indexed EXISTS lookup, no scan of the edge set.
func (r *followRepository) FollowExists(ctx context.Context, followerID, followedID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, followExists, followerID, followedID)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*followRepository.FollowExists").Stringer("db_error_class", r.db.classify(err)).Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}

// ListFollowing returns the users that userID follows, most recent edge
// first.
func (r *followRepository) ListFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	return r.listUsers(ctx, listFollowing, userID, "*followRepository.ListFollowing")
}

// ListFollowers returns the users that follow userID, most recent edge
// first.
func (r *followRepository) ListFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	return r.listUsers(ctx, listFollowers, userID, "*followRepository.ListFollowers")
}

func (r *followRepository) listUsers(ctx context.Context, query string, userID int64, caller string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Err(err).Str("func", caller).Stringer("db_error_class", r.db.classify(err)).Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			log.Err(err).Str("func", caller).Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, nil
}
