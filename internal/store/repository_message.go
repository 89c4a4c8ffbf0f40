package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/models"
)

// messageRepository is the SQL-backed implementation of [MessageRepository].
// The owning user id written on insert always comes from the caller-supplied
// model, which the service layer has already pinned to the authenticated
// actor; nothing at this layer re-reads it from request data.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage persists a new message and returns it with server-assigned
// fields (MessageID, CreatedAt). The creation timestamp is set by the
// database at insert time.
func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMessage, message.UserID, message.Text)

	var saved models.Message
	if err := row.Scan(&saved.MessageID, &saved.UserID, &saved.Text, &saved.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return models.Message{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*messageRepository.CreateMessage").Stringer("db_error_class", r.db.classify(err)).Msg("error: scanning error")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindMessageByID retrieves a single message. An empty result set maps to
// [ErrMessageNotFound].
func (r *messageRepository) FindMessageByID(ctx context.Context, messageID int64) (models.Message, error) {
	log := logger.FromContext(ctx)

	var found models.Message
	row := r.db.QueryRowContext(ctx, findMessageByID, messageID)

	if err := row.Scan(&found.MessageID, &found.UserID, &found.Text, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Message{}, ErrMessageNotFound
		}

		log.Err(err).Str("func", "*messageRepository.FindMessageByID").Msg("error: scanning error")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteMessage removes the message only when ownerID matches the stored
// owner; the ownership predicate is part of the DELETE statement itself.
// Zero affected rows maps to [ErrMessageNotFound] — either the message does
// not exist or it belongs to someone else, and the caller has already
// distinguished the two.
func (r *messageRepository) DeleteMessage(ctx context.Context, messageID, ownerID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMessage, messageID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.DeleteMessage").Stringer("db_error_class", r.db.classify(err)).Msg("error: executing error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

// ListMessages runs the squirrel-built timeline query and returns the
// matching page of messages, newest first.
func (r *messageRepository) ListMessages(ctx context.Context, query models.TimelineQuery) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	// Clamp before the capacity hint below; the raw value comes straight
	// from the request query string.
	query.Limit = clampTimelineLimit(query.Limit)

	sqlQuery, args, err := buildTimelineQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error: building query")
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Stringer("db_error_class", r.db.classify(err)).Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, query.Limit)
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.MessageID, &m.UserID, &m.Text, &m.CreatedAt); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return messages, nil
}
