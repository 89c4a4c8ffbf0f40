package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/store"
	"github.com/warblerhq/warbler/models"
)

// messageService is the concrete implementation of MessageService.
//
// Ownership is enforced here, before any repository call: a message is
// always created for the actor (never for a client-named user), and a
// delete first proves the actor owns the message. The repositories never
// see an unauthorized mutation.
type messageService struct {
	messageRepository store.MessageRepository
	followRepository  store.FollowRepository
	logger            *logger.Logger
}

// NewMessageService constructs a MessageService over the message and follow
// repositories. The follow repository is needed for home-timeline reads.
func NewMessageService(messageRepository store.MessageRepository, followRepository store.FollowRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		followRepository:  followRepository,
		logger:            logger,
	}
}

// CreateMessage posts a new message owned by actorID.
//
// The owner is fixed to actorID here; any owner field a client put in the
// request payload never reaches this call. Text must be non-empty after
// trimming and at most models.MaxMessageLength characters.
//
// Returns the persisted message or:
//   - ErrUnauthenticated if actorID names no authenticated actor.
//   - ErrInvalidDataProvided if the text is empty.
//   - ErrMessageTooLong if the text exceeds the bound.
func (s *messageService) CreateMessage(ctx context.Context, actorID int64, text string) (models.Message, error) {
	log := logger.FromContext(ctx)

	if actorID <= 0 {
		return models.Message{}, ErrUnauthenticated
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Error().Int64("actor_id", actorID).Msg("empty message text")
		return models.Message{}, ErrInvalidDataProvided
	}
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		log.Error().Int64("actor_id", actorID).Int("length", utf8.RuneCountInString(text)).Msg("message text too long")
		return models.Message{}, ErrMessageTooLong
	}

	created, err := s.messageRepository.CreateMessage(ctx, models.Message{
		UserID: actorID,
		Text:   text,
	})
	if err != nil {
		log.Err(err).Int64("actor_id", actorID).Msg("message creation ended with error")
		return models.Message{}, fmt.Errorf("message creation ended with error: %w", err)
	}

	return created, nil
}

// GetMessage returns a single message. Requires an authenticated actor but
// no ownership: any logged-in user may read any message.
func (s *messageService) GetMessage(ctx context.Context, actorID, messageID int64) (models.Message, error) {
	if actorID <= 0 {
		return models.Message{}, ErrUnauthenticated
	}

	message, err := s.messageRepository.FindMessageByID(ctx, messageID)
	if err != nil {
		return models.Message{}, fmt.Errorf("message lookup failed: %w", err)
	}

	return message, nil
}

// DeleteMessage removes a message owned by actorID.
//
// The message is loaded first so a wrong owner can be distinguished from a
// missing message; the repository delete then re-binds the owner into its
// predicate, so the row cannot be removed on anyone else's behalf even
// under concurrent ownership changes.
//
// Returns nil on success or:
//   - ErrUnauthenticated if actorID names no authenticated actor.
//   - store.ErrMessageNotFound if no such message exists.
//   - ErrNotMessageOwner if the message belongs to another user; the
//     message is left untouched.
func (s *messageService) DeleteMessage(ctx context.Context, actorID, messageID int64) error {
	log := logger.FromContext(ctx)

	if actorID <= 0 {
		return ErrUnauthenticated
	}

	message, err := s.messageRepository.FindMessageByID(ctx, messageID)
	if err != nil {
		return fmt.Errorf("message lookup failed: %w", err)
	}

	if message.UserID != actorID {
		log.Error().
			Int64("actor_id", actorID).
			Int64("owner_id", message.UserID).
			Int64("message_id", messageID).
			Msg("delete attempt by non-owner")
		return ErrNotMessageOwner
	}

	if err := s.messageRepository.DeleteMessage(ctx, messageID, actorID); err != nil {
		log.Err(err).Int64("message_id", messageID).Msg("message deletion ended with error")
		return fmt.Errorf("message deletion ended with error: %w", err)
	}

	return nil
}

// UserTimeline returns one user's messages, newest first, honouring the
// paging fields of query. The author filter in query is overwritten with
// userID.
func (s *messageService) UserTimeline(ctx context.Context, actorID, userID int64, query models.TimelineQuery) ([]models.Message, error) {
	if actorID <= 0 {
		return nil, ErrUnauthenticated
	}

	query.UserIDs = []int64{userID}
	messages, err := s.messageRepository.ListMessages(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("timeline read failed: %w", err)
	}

	return messages, nil
}

// HomeTimeline returns the actor's feed: their own messages plus those of
// every user they follow, newest first.
func (s *messageService) HomeTimeline(ctx context.Context, actorID int64, query models.TimelineQuery) ([]models.Message, error) {
	if actorID <= 0 {
		return nil, ErrUnauthenticated
	}

	following, err := s.followRepository.ListFollowing(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("follow graph read failed: %w", err)
	}

	authorIDs := make([]int64, 0, len(following)+1)
	authorIDs = append(authorIDs, actorID)
	for _, u := range following {
		authorIDs = append(authorIDs, u.UserID)
	}

	query.UserIDs = authorIDs
	messages, err := s.messageRepository.ListMessages(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("timeline read failed: %w", err)
	}

	return messages, nil
}
