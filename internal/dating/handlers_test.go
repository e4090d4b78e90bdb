package dating

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadgeboyega/soulconnect-backend/internal/auth"
	"github.com/imadgeboyega/soulconnect-backend/internal/chat"
	"github.com/imadgeboyega/soulconnect-backend/internal/common/logger"
)

// fakeService lets each test stub only the calls it exercises.
type fakeService struct {
	DiscoverFn      func(ctx context.Context, userID string) ([]*MatchResult, error)
	MatchesFn       func(ctx context.Context, userID string) ([]*MatchResult, error)
	LikeFn          func(ctx context.Context, userID, matchID string) (*LikeResult, error)
	PassFn          func(ctx context.Context, userID, matchID string) error
	StartChatFn     func(ctx context.Context, userID, matchID string) (*chat.Conversation, error)
	CompatibilityFn func(ctx context.Context, userID, otherID string) (*CompatibilityReport, error)
	ProfileFn       func(ctx context.Context, userID string) (*UserProfile, error)
}

func (f *fakeService) Discover(ctx context.Context, userID string) ([]*MatchResult, error) {
	return f.DiscoverFn(ctx, userID)
}

func (f *fakeService) Matches(ctx context.Context, userID string) ([]*MatchResult, error) {
	return f.MatchesFn(ctx, userID)
}

func (f *fakeService) Like(ctx context.Context, userID, matchID string) (*LikeResult, error) {
	return f.LikeFn(ctx, userID, matchID)
}

func (f *fakeService) Pass(ctx context.Context, userID, matchID string) error {
	return f.PassFn(ctx, userID, matchID)
}

func (f *fakeService) StartChat(ctx context.Context, userID, matchID string) (*chat.Conversation, error) {
	return f.StartChatFn(ctx, userID, matchID)
}

func (f *fakeService) Compatibility(ctx context.Context, userID, otherID string) (*CompatibilityReport, error) {
	return f.CompatibilityFn(ctx, userID, otherID)
}

func (f *fakeService) Profile(ctx context.Context, userID string) (*UserProfile, error) {
	return f.ProfileFn(ctx, userID)
}

func (f *fakeService) RefreshFeeds(ctx context.Context) (int, error) {
	return 0, nil
}

func serve(t *testing.T, svc Service, method, path string, user *auth.AuthUser) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, logger.Discard())

	router := mux.NewRouter()
	router.HandleFunc("/discover", h.Discover).Methods("GET")
	router.HandleFunc("/matches", h.GetMatches).Methods("GET")
	router.HandleFunc("/matches/{id}/like", h.Like).Methods("POST")
	router.HandleFunc("/matches/{id}/pass", h.Pass).Methods("POST")
	router.HandleFunc("/matches/{id}/chat", h.StartChat).Methods("POST")
	router.HandleFunc("/compatibility/{userId}", h.GetCompatibility).Methods("GET")
	router.HandleFunc("/profile", h.GetProfile).Methods("GET")

	req := httptest.NewRequest(method, path, nil)
	if user != nil {
		req = req.WithContext(auth.ContextWithUser(req.Context(), user))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var demoUser = &auth.AuthUser{ID: DemoUserID, Name: "Alex Johnson"}

func TestHandler_Discover(t *testing.T) {
	svc, _ := newTestService(t)

	w := serve(t, svc, http.MethodGet, "/discover", demoUser)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool         `json:"success"`
		Data    FeedResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 4, body.Data.Total)
	assert.Equal(t, "Emma Thompson", body.Data.Matches[0].User.Name)
	assert.Equal(t, 87, body.Data.Matches[0].CompatibilityScore)
}

func TestHandler_RequiresUser(t *testing.T) {
	w := serve(t, &fakeService{}, http.MethodGet, "/discover", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_LikeFlow(t *testing.T) {
	svc, _ := newTestService(t)

	w := serve(t, svc, http.MethodPost, "/matches/match-4/like", demoUser)
	assert.Equal(t, http.StatusConflict, w.Code)

	serve(t, svc, http.MethodGet, "/discover", demoUser)

	w = serve(t, svc, http.MethodPost, "/matches/match-4/like", demoUser)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data LikeResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.ConversationCreated)
	assert.Equal(t, "conv-4", body.Data.Conversation.ID)

	w = serve(t, svc, http.MethodPost, "/matches/match-9/pass", demoUser)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, svc, http.MethodPost, "/matches/match-5/chat", demoUser)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"profile not found", ErrProfileNotFound, http.StatusNotFound},
		{"match not found", ErrMatchNotFound, http.StatusNotFound},
		{"feed not loaded", ErrFeedNotLoaded, http.StatusConflict},
		{"invalid profile", ErrInvalidProfile, http.StatusUnprocessableEntity},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{
				CompatibilityFn: func(ctx context.Context, userID, otherID string) (*CompatibilityReport, error) {
					assert.Equal(t, DemoUserID, userID)
					assert.Equal(t, "7", otherID)
					return nil, tt.err
				},
			}

			w := serve(t, svc, http.MethodGet, "/compatibility/7", demoUser)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "db down")
			}
		})
	}
}

func TestHandler_Profile(t *testing.T) {
	svc := &fakeService{
		ProfileFn: func(ctx context.Context, userID string) (*UserProfile, error) {
			return mockByID(userID), nil
		},
	}

	w := serve(t, svc, http.MethodGet, "/profile", demoUser)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"education":"Stanford University"`)
}
