package http

import (
	"net/http"

	"github.com/warblerhq/warbler/internal/utils"
)

// profile serves a user's public profile together with the relationship
// flags between the requesting actor and that user.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
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

	profile, err := h.services.FollowService.Profile(ctx, actorID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
