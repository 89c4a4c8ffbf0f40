package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - uniqueness violation (duplicate username or email) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Email, user.PasswordHash,
		user.ImageURL, user.HeaderImageURL, user.Bio, user.Location)

	// scan saved user from db
	var saved models.User
	if err := scanUser(row, &saved); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Stringer("db_error_class", r.db.classify(err)).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindUserByUsername retrieves the user record whose username matches
// exactly. An empty result set maps to [ErrUserNotFound] — a normal outcome
// during login, not a failure of the store.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Stringer("db_error_class", r.db.classify(err)).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves the user record with the given identifier.
// An empty result set maps to [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Stringer("db_error_class", r.db.classify(err)).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one full users-table row into dst. The bio and location
// columns are nullable.
func scanUser(row rowScanner, dst *models.User) error {
	var bio, location sql.NullString

	err := row.Scan(&dst.UserID, &dst.Username, &dst.Email, &dst.PasswordHash,
		&dst.ImageURL, &dst.HeaderImageURL, &bio, &location, &dst.CreatedAt)
	if err != nil {
		return err
	}

	dst.Bio = bio.String
	dst.Location = location.String
	return nil
}
