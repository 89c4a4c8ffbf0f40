package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/utils"
	"github.com/warblerhq/warbler/models"
)

// createMessage posts a new message for the authenticated actor.
//
// The request payload may carry a user_id field; it is ignored. Ownership
// always goes to the actor resolved from the session token, which is what
// keeps one user from posting on another's behalf.
func (h *Handler) createMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorID, ok := actorFromRequest(r)
	if !ok {
		accessUnauthorized(w)
		return
	}

	var req models.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.UserID != 0 && req.UserID != actorID {
		log.Warn().
			Int64("actor_id", actorID).
			Int64("claimed_user_id", req.UserID).
			Msg("client-supplied owner ignored")
	}

	message, err := h.services.MessageService.CreateMessage(ctx, actorID, req.Text)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, message, http.StatusCreated)
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := actorFromRequest(r)
	if !ok {
		accessUnauthorized(w)
		return
	}

	messageID, err := pathID(r, "messageID")
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	message, err := h.services.MessageService.GetMessage(ctx, actorID, messageID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, message, http.StatusOK)
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := actorFromRequest(r)
	if !ok {
		accessUnauthorized(w)
		return
	}

	messageID, err := pathID(r, "messageID")
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	if err := h.services.MessageService.DeleteMessage(ctx, actorID, messageID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// homeTimeline returns the actor's feed: their own messages and those of
// everyone they follow.
func (h *Handler) homeTimeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := actorFromRequest(r)
	if !ok {
		accessUnauthorized(w)
		return
	}

	messages, err := h.services.MessageService.HomeTimeline(ctx, actorID, timelineQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TimelineResponse{Messages: messages, Length: len(messages)}, http.StatusOK)
}

// userTimeline returns one user's messages, newest first.
func (h *Handler) userTimeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := actorFromRequest(r)
	if !ok {
		accessUnauthorized(w)
		return
	}

	userID, err := pathID(r, "userID")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	messages, err := h.services.MessageService.UserTimeline(ctx, actorID, userID, timelineQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TimelineResponse{Messages: messages, Length: len(messages)}, http.StatusOK)
}

// pathID parses the named chi URL parameter as a positive int64.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// timelineQuery extracts paging parameters from the request query string.
// Unparseable values fall back to server defaults.
func timelineQuery(r *http.Request) models.TimelineQuery {
	var query models.TimelineQuery

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.ParseUint(raw, 10, 64); err == nil {
			query.Limit = limit
		}
	}

	if raw := r.URL.Query().Get("before_id"); raw != "" {
		if beforeID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			query.BeforeID = beforeID
		}
	}

	return query
}
