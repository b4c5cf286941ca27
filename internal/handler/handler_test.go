package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AndrivA89/pinboard/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockServices struct {
	mock.Mock
}

func (m *mockServices) ToggleLike(ctx context.Context, pinID, userID string) (*domain.ToggleResult, error) {
	args := m.Called(ctx, pinID, userID)
	res, _ := args.Get(0).(*domain.ToggleResult)
	return res, args.Error(1)
}

func (m *mockServices) ToggleFollow(ctx context.Context, targetID, userID string) (*domain.ToggleResult, error) {
	args := m.Called(ctx, targetID, userID)
	res, _ := args.Get(0).(*domain.ToggleResult)
	return res, args.Error(1)
}

func (m *mockServices) Feed(ctx context.Context, viewerID string) ([]domain.PinView, error) {
	args := m.Called(ctx, viewerID)
	pins, _ := args.Get(0).([]domain.PinView)
	return pins, args.Error(1)
}

func (m *mockServices) PinDetail(ctx context.Context, pinID, viewerID string) (*domain.PinDetail, error) {
	args := m.Called(ctx, pinID, viewerID)
	detail, _ := args.Get(0).(*domain.PinDetail)
	return detail, args.Error(1)
}

func (m *mockServices) CreatePin(ctx context.Context, pin domain.NewPin) (string, error) {
	args := m.Called(ctx, pin)
	return args.String(0), args.Error(1)
}

func (m *mockServices) AddComment(ctx context.Context, pinID string, c domain.NewComment) (string, error) {
	args := m.Called(ctx, pinID, c)
	return args.String(0), args.Error(1)
}

func (m *mockServices) SavedPins(ctx context.Context, userID string) ([]domain.SavedPin, error) {
	args := m.Called(ctx, userID)
	pins, _ := args.Get(0).([]domain.SavedPin)
	return pins, args.Error(1)
}

func (m *mockServices) LikedPins(ctx context.Context, userID string) ([]domain.LikedPin, error) {
	args := m.Called(ctx, userID)
	pins, _ := args.Get(0).([]domain.LikedPin)
	return pins, args.Error(1)
}

func (m *mockServices) Boards(ctx context.Context) ([]domain.BoardSummary, error) {
	args := m.Called(ctx)
	boards, _ := args.Get(0).([]domain.BoardSummary)
	return boards, args.Error(1)
}

func (m *mockServices) UserBoards(ctx context.Context, userID string) ([]domain.BoardPreview, error) {
	args := m.Called(ctx, userID)
	boards, _ := args.Get(0).([]domain.BoardPreview)
	return boards, args.Error(1)
}

func (m *mockServices) Board(ctx context.Context, boardID string) (*domain.BoardView, error) {
	args := m.Called(ctx, boardID)
	board, _ := args.Get(0).(*domain.BoardView)
	return board, args.Error(1)
}

func (m *mockServices) CreateBoard(ctx context.Context, board domain.NewBoard) (string, error) {
	args := m.Called(ctx, board)
	return args.String(0), args.Error(1)
}

func (m *mockServices) AddPinToBoard(ctx context.Context, boardID, pinID string) (string, error) {
	args := m.Called(ctx, boardID, pinID)
	return args.String(0), args.Error(1)
}

func (m *mockServices) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*domain.UserProfile)
	return profile, args.Error(1)
}

func (m *mockServices) Following(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	args := m.Called(ctx, userID)
	users, _ := args.Get(0).([]domain.UserSummary)
	return users, args.Error(1)
}

func (m *mockServices) Followers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	args := m.Called(ctx, userID)
	users, _ := args.Get(0).([]domain.UserSummary)
	return users, args.Error(1)
}

func (m *mockServices) VerifyConnectivity(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newTestRouter(svc *mockServices) *gin.Engine {
	log, _ := test.NewNullLogger()
	return NewRouter(log, time.Second, Handlers{
		Pins:   NewPinHandler(svc, svc),
		Boards: NewBoardHandler(svc),
		Users:  NewUserHandler(svc, svc, svc),
		Store:  svc,
	})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestLikeResponse(t *testing.T) {
	svc := &mockServices{}
	svc.On("ToggleLike", mock.Anything, "PIN-1", "USER-1").
		Return(&domain.ToggleResult{State: true, Count: 4}, nil).Once()

	w := do(newTestRouter(svc), http.MethodPost, "/api/pins/PIN-1/like", `{"userId":"USER-1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success    bool  `json:"success"`
		IsLiked    bool  `json:"isLiked"`
		LikesCount int64 `json:"likesCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.IsLiked)
	assert.Equal(t, int64(4), body.LikesCount)
	svc.AssertExpectations(t)
}

func TestFollowResponse(t *testing.T) {
	svc := &mockServices{}
	svc.On("ToggleFollow", mock.Anything, "USER-2", "USER-1").
		Return(&domain.ToggleResult{State: false, Count: 0}, nil).Once()

	w := do(newTestRouter(svc), http.MethodPost, "/api/users/USER-2/follow", `{"userId":"USER-1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"isFollowing":false,"followersCount":0}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.ErrSelfFollow, http.StatusBadRequest},
		{"wrapped not found", errors.Wrap(errors.Wrapf(domain.ErrNotFound, "User %q", "X"), "toggle"), http.StatusNotFound},
		{"storage failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockServices{}
			svc.On("ToggleFollow", mock.Anything, "USER-1", "USER-1").Return(nil, tt.err).Once()

			w := do(newTestRouter(svc), http.MethodPost, "/api/users/USER-1/follow", `{"userId":"USER-1"}`)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.err.Error(), errorBody(t, w))
		})
	}
}

func TestMalformedBodyRejected(t *testing.T) {
	svc := &mockServices{}
	r := newTestRouter(svc)

	for _, path := range []string{"/api/pins/PIN-1/like", "/api/pins", "/api/boards", "/api/boards/B-1/add-pin"} {
		w := do(r, http.MethodPost, path, `{"userId":`)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, errorBody(t, w), "invalid request body", path)
	}
	assert.Empty(t, svc.Calls)
}

func TestBoardRoutes(t *testing.T) {
	svc := &mockServices{}
	r := newTestRouter(svc)

	svc.On("Boards", mock.Anything).Return([]domain.BoardSummary{{ID: "B-1", Title: "Trips"}}, nil).Once()
	svc.On("UserBoards", mock.Anything, "USER-1").Return([]domain.BoardPreview{}, nil).Once()
	svc.On("Board", mock.Anything, "B-404").Return(nil, errors.Wrapf(domain.ErrNotFound, "Board %q", "B-404")).Once()
	svc.On("AddPinToBoard", mock.Anything, "B-1", "PIN-1").Return("PIN-1", nil).Once()
	svc.On("CreateBoard", mock.Anything, domain.NewBoard{Title: "Food", UserID: "USER-1"}).Return("B-2", nil).Once()

	w := do(r, http.MethodGet, "/api/boards", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"B-1","title":"Trips"}]`, w.Body.String())

	w = do(r, http.MethodGet, "/api/USER-1/boards", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(r, http.MethodGet, "/api/boards/B-404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/boards/B-1/add-pin", `{"pinId":"PIN-1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"pin":"PIN-1"}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/boards", `{"title":"Food","userId":"USER-1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"id":"B-2"}`, w.Body.String())

	svc.AssertExpectations(t)
}

func TestPinRoutesPassQuery(t *testing.T) {
	svc := &mockServices{}
	r := newTestRouter(svc)

	svc.On("Feed", mock.Anything, "USER-7").Return([]domain.PinView{}, nil).Once()
	svc.On("PinDetail", mock.Anything, "PIN-1", "").Return(&domain.PinDetail{}, nil).Once()
	svc.On("AddComment", mock.Anything, "PIN-1", domain.NewComment{UserID: "USER-1", Text: "nice"}).Return("C-1", nil).Once()

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/pins?userId=USER-7", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/pin/PIN-1", "").Code)

	w := do(r, http.MethodPost, "/api/pins/PIN-1/comment", `{"userId":"USER-1","text":"nice"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"id":"C-1"}`, w.Body.String())

	svc.AssertExpectations(t)
}

func TestUnknownRoute(t *testing.T) {
	w := do(newTestRouter(&mockServices{}), http.MethodGet, "/api/nothing/here/at/all", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "route not found", errorBody(t, w))
}

func TestHealth(t *testing.T) {
	svc := &mockServices{}
	svc.On("VerifyConnectivity", mock.Anything).Return(nil).Once()
	svc.On("VerifyConnectivity", mock.Anything).Return(errors.New("dial tcp: refused")).Once()
	r := newTestRouter(svc)

	w := do(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "dial tcp: refused", errorBody(t, w))
}

func TestTimeoutSetsDeadline(t *testing.T) {
	var deadline time.Time
	var ok bool

	r := gin.New()
	r.Use(Timeout(5 * time.Second))
	r.GET("/", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})

	start := time.Now()
	do(r, http.MethodGet, "/", "")

	require.True(t, ok)
	assert.WithinDuration(t, start.Add(5*time.Second), deadline, time.Second)
}

func TestUserRoutes(t *testing.T) {
	svc := &mockServices{}
	r := newTestRouter(svc)

	svc.On("Profile", mock.Anything, "USER-1").Return(&domain.UserProfile{ID: "USER-1", Name: "Ann", PinsCount: 2}, nil).Once()
	svc.On("Profile", mock.Anything, "USER-404").Return(nil, errors.Wrapf(domain.ErrNotFound, "User %q", "USER-404")).Once()
	svc.On("Following", mock.Anything, "USER-1").Return([]domain.UserSummary{{ID: "USER-2", Name: "Bob"}}, nil).Once()
	svc.On("Followers", mock.Anything, "USER-1").Return([]domain.UserSummary{}, nil).Once()
	svc.On("SavedPins", mock.Anything, "USER-1").Return([]domain.SavedPin{}, nil).Once()
	svc.On("LikedPins", mock.Anything, "USER-1").Return([]domain.LikedPin{}, nil).Once()

	w := do(r, http.MethodGet, "/api/user/USER-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var profile domain.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Ann", profile.Name)
	assert.Equal(t, int64(2), profile.PinsCount)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/user/USER-404", "").Code)

	w = do(r, http.MethodGet, "/api/users/USER-1/following", "")
	require.Equal(t, http.StatusOK, w.Code)
	var following []domain.UserSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &following))
	assert.Equal(t, []domain.UserSummary{{ID: "USER-2", Name: "Bob"}}, following)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/users/USER-1/followers", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/user/USER-1/saved-pins", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/user/USER-1/liked-pins", "").Code)

	svc.AssertExpectations(t)
}
