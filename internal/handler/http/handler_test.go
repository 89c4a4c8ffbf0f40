package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/service"
	"github.com/warblerhq/warbler/internal/utils"
	"github.com/warblerhq/warbler/models"
)

// ─────────────────────────────────────────────
// Mock: AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock: MessageService
// ─────────────────────────────────────────────

type mockMessageService struct {
	createMessageFn func(ctx context.Context, actorID int64, text string) (models.Message, error)
	getMessageFn    func(ctx context.Context, actorID, messageID int64) (models.Message, error)
	deleteMessageFn func(ctx context.Context, actorID, messageID int64) error
	userTimelineFn  func(ctx context.Context, actorID, userID int64, query models.TimelineQuery) ([]models.Message, error)
	homeTimelineFn  func(ctx context.Context, actorID int64, query models.TimelineQuery) ([]models.Message, error)
}

func (m *mockMessageService) CreateMessage(ctx context.Context, actorID int64, text string) (models.Message, error) {
	return m.createMessageFn(ctx, actorID, text)
}

func (m *mockMessageService) GetMessage(ctx context.Context, actorID, messageID int64) (models.Message, error) {
	return m.getMessageFn(ctx, actorID, messageID)
}

func (m *mockMessageService) DeleteMessage(ctx context.Context, actorID, messageID int64) error {
	return m.deleteMessageFn(ctx, actorID, messageID)
}

func (m *mockMessageService) UserTimeline(ctx context.Context, actorID, userID int64, query models.TimelineQuery) ([]models.Message, error) {
	return m.userTimelineFn(ctx, actorID, userID, query)
}

func (m *mockMessageService) HomeTimeline(ctx context.Context, actorID int64, query models.TimelineQuery) ([]models.Message, error) {
	return m.homeTimelineFn(ctx, actorID, query)
}

// ─────────────────────────────────────────────
// Mock: FollowService
// ─────────────────────────────────────────────

type mockFollowService struct {
	followFn       func(ctx context.Context, actorID, targetID int64) error
	unfollowFn     func(ctx context.Context, actorID, targetID int64) error
	isFollowingFn  func(ctx context.Context, userID, otherID int64) (bool, error)
	isFollowedByFn func(ctx context.Context, userID, otherID int64) (bool, error)
	followingFn    func(ctx context.Context, actorID, userID int64) ([]models.User, error)
	followersFn    func(ctx context.Context, actorID, userID int64) ([]models.User, error)
	profileFn      func(ctx context.Context, actorID, userID int64) (models.ProfileResponse, error)
}

func (m *mockFollowService) Follow(ctx context.Context, actorID, targetID int64) error {
	return m.followFn(ctx, actorID, targetID)
}

func (m *mockFollowService) Unfollow(ctx context.Context, actorID, targetID int64) error {
	return m.unfollowFn(ctx, actorID, targetID)
}

func (m *mockFollowService) IsFollowing(ctx context.Context, userID, otherID int64) (bool, error) {
	return m.isFollowingFn(ctx, userID, otherID)
}

func (m *mockFollowService) IsFollowedBy(ctx context.Context, userID, otherID int64) (bool, error) {
	return m.isFollowedByFn(ctx, userID, otherID)
}

func (m *mockFollowService) Following(ctx context.Context, actorID, userID int64) ([]models.User, error) {
	return m.followingFn(ctx, actorID, userID)
}

func (m *mockFollowService) Followers(ctx context.Context, actorID, userID int64) ([]models.User, error) {
	return m.followersFn(ctx, actorID, userID)
}

func (m *mockFollowService) Profile(ctx context.Context, actorID, userID int64) (models.ProfileResponse, error) {
	return m.profileFn(ctx, actorID, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{AuthService: auth})
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// withActor stamps the authenticated actor's id into the request context,
// exactly like the auth middleware does.
func withActor(r *http.Request, actorID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, actorID)
	return r.WithContext(ctx)
}

// withPathParam attaches a chi URL parameter to the request so handlers can
// be exercised without going through the full router.
func withPathParam(r *http.Request, name, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(name, value)
	return r
}
