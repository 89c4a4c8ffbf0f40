package http

import (
	"errors"
	"net/http"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/service"
	"github.com/warblerhq/warbler/internal/store"
)

// accessUnauthorizedMsg is the single user-visible body for every
// authorization failure. Anonymous access and wrong-owner access are
// deliberately indistinguishable to the caller.
const accessUnauthorizedMsg = "Access unauthorized."

func accessUnauthorized(w http.ResponseWriter) {
	http.Error(w, accessUnauthorizedMsg, http.StatusUnauthorized)
}

// writeServiceError translates a service- or store-layer sentinel error into
// the HTTP status and body policy of the API:
//
//	authorization failures      → 401 "Access unauthorized."
//	validation failures         → 400
//	uniqueness / edge conflicts → 409
//	missing resources           → 404
//	anything else               → 500
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrNotMessageOwner):
		log.Err(err).Msg("access unauthorized")
		accessUnauthorized(w)

	case errors.Is(err, service.ErrInvalidDataProvided),
		errors.Is(err, service.ErrMessageTooLong),
		errors.Is(err, service.ErrSelfFollow):
		log.Err(err).Msg("invalid data provided")
		http.Error(w, "invalid data provided", http.StatusBadRequest)

	case errors.Is(err, store.ErrUserAlreadyExists),
		errors.Is(err, store.ErrFollowAlreadyExists):
		log.Err(err).Msg("conflict")
		http.Error(w, err.Error(), http.StatusConflict)

	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrMessageNotFound),
		errors.Is(err, store.ErrFollowNotFound):
		log.Err(err).Msg("not found")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

	default:
		log.Err(err).Msg("unexpected error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
