package http

import (
	"context"
	"net/http"

	"github.com/warblerhq/warbler/internal/utils"
	"github.com/warblerhq/warbler/models"
)

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := actorFromRequest(r)
	if !ok {
		accessUnauthorized(w)
		return
	}

	targetID, err := pathID(r, "userID")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.services.FollowService.Follow(ctx, actorID, targetID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := actorFromRequest(r)
	if !ok {
		accessUnauthorized(w)
		return
	}

	targetID, err := pathID(r, "userID")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.services.FollowService.Unfollow(ctx, actorID, targetID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// following serves another user's following page. Visible to any
// authenticated actor, never to anonymous requests.
func (h *Handler) following(w http.ResponseWriter, r *http.Request) {
	h.userList(w, r, h.services.FollowService.Following)
}

// followers serves another user's followers page under the same visibility
// rule as following.
func (h *Handler) followers(w http.ResponseWriter, r *http.Request) {
	h.userList(w, r, h.services.FollowService.Followers)
}

func (h *Handler) userList(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, actorID, userID int64) ([]models.User, error)) {
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

	users, err := list(ctx, actorID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserListResponse{Users: users, Length: len(users)}, http.StatusOK)
}
