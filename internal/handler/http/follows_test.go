package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/service"
	"github.com/warblerhq/warbler/internal/store"
	"github.com/warblerhq/warbler/models"
)

func newHandlerWithFollows(t *testing.T, follows service.FollowService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{FollowService: follows})
}

// ─────────────────────────────────────────────
// follow / unfollow
// ─────────────────────────────────────────────

func TestFollow_Created(t *testing.T) {
	follows := &mockFollowService{
		followFn: func(_ context.Context, actorID, targetID int64) error {
			assert.Equal(t, int64(7), actorID)
			assert.Equal(t, int64(8), targetID)
			return nil
		},
	}
	h := newHandlerWithFollows(t, follows)

	r := httptest.NewRequest(http.MethodPost, "/api/users/8/follow", nil)
	r = withActor(withPathParam(r, "userID", "8"), 7)
	w := httptest.NewRecorder()

	h.follow(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestFollow_Self(t *testing.T) {
	follows := &mockFollowService{
		followFn: func(_ context.Context, _, _ int64) error {
			return service.ErrSelfFollow
		},
	}
	h := newHandlerWithFollows(t, follows)

	r := httptest.NewRequest(http.MethodPost, "/api/users/7/follow", nil)
	r = withActor(withPathParam(r, "userID", "7"), 7)
	w := httptest.NewRecorder()

	h.follow(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollow_Duplicate(t *testing.T) {
	follows := &mockFollowService{
		followFn: func(_ context.Context, _, _ int64) error {
			return store.ErrFollowAlreadyExists
		},
	}
	h := newHandlerWithFollows(t, follows)

	r := httptest.NewRequest(http.MethodPost, "/api/users/8/follow", nil)
	r = withActor(withPathParam(r, "userID", "8"), 7)
	w := httptest.NewRecorder()

	h.follow(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFollow_UnknownTarget(t *testing.T) {
	follows := &mockFollowService{
		followFn: func(_ context.Context, _, _ int64) error {
			return store.ErrUserNotFound
		},
	}
	h := newHandlerWithFollows(t, follows)

	r := httptest.NewRequest(http.MethodPost, "/api/users/404/follow", nil)
	r = withActor(withPathParam(r, "userID", "404"), 7)
	w := httptest.NewRecorder()

	h.follow(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollow_Anonymous(t *testing.T) {
	h := newHandlerWithFollows(t, &mockFollowService{})

	r := httptest.NewRequest(http.MethodPost, "/api/users/8/follow", nil)
	r = withPathParam(r, "userID", "8")
	w := httptest.NewRecorder()

	h.follow(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, accessUnauthorizedMsg, strings.TrimSpace(w.Body.String()))
}

func TestUnfollow_Removed(t *testing.T) {
	follows := &mockFollowService{
		unfollowFn: func(_ context.Context, actorID, targetID int64) error {
			assert.Equal(t, int64(7), actorID)
			assert.Equal(t, int64(8), targetID)
			return nil
		},
	}
	h := newHandlerWithFollows(t, follows)

	r := httptest.NewRequest(http.MethodDelete, "/api/users/8/follow", nil)
	r = withActor(withPathParam(r, "userID", "8"), 7)
	w := httptest.NewRecorder()

	h.unfollow(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUnfollow_EdgeAbsent(t *testing.T) {
	follows := &mockFollowService{
		unfollowFn: func(_ context.Context, _, _ int64) error {
			return store.ErrFollowNotFound
		},
	}
	h := newHandlerWithFollows(t, follows)

	r := httptest.NewRequest(http.MethodDelete, "/api/users/8/follow", nil)
	r = withActor(withPathParam(r, "userID", "8"), 7)
	w := httptest.NewRecorder()

	h.unfollow(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ─────────────────────────────────────────────
// following / followers
// ─────────────────────────────────────────────

func TestFollowing_Success(t *testing.T) {
	follows := &mockFollowService{
		followingFn: func(_ context.Context, actorID, userID int64) ([]models.User, error) {
			assert.Equal(t, int64(7), actorID)
			assert.Equal(t, int64(8), userID)
			return []models.User{{UserID: 9, Username: "followed"}}, nil
		},
	}
	h := newHandlerWithFollows(t, follows)

	r := httptest.NewRequest(http.MethodGet, "/api/users/8/following", nil)
	r = withActor(withPathParam(r, "userID", "8"), 7)
	w := httptest.NewRecorder()

	h.following(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.UserListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Length)
	assert.Equal(t, "followed", got.Users[0].Username)
}

func TestFollowers_Anonymous(t *testing.T) {
	h := newHandlerWithFollows(t, &mockFollowService{})

	r := httptest.NewRequest(http.MethodGet, "/api/users/8/followers", nil)
	r = withPathParam(r, "userID", "8")
	w := httptest.NewRecorder()

	h.followers(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFollowing_BadID(t *testing.T) {
	h := newHandlerWithFollows(t, &mockFollowService{})

	r := httptest.NewRequest(http.MethodGet, "/api/users/abc/following", nil)
	r = withActor(withPathParam(r, "userID", "abc"), 7)
	w := httptest.NewRecorder()

	h.following(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
