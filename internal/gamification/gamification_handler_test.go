package gamification_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	gamificationerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification/errors"
	gamificationMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupHandlerTest(t *testing.T, role string) (*gin.Engine, *gamificationMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := gamificationMock.NewMockService(ctrl)

	r := gin.New()
	auth := func(c *gin.Context) {
		c.Set("user_id", int64(7))
		c.Set("role", role)
		c.Next()
	}
	gamification.RegisterRoutes(r.Group("/api/v1"), gamification.NewHandler(svc), auth)
	return r, svc
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestGamificationHandler_Leaderboard(t *testing.T) {
	r, svc := setupHandlerTest(t, "USER")

	svc.EXPECT().Leaderboard(gomock.Any(), 25).Return([]gamification.LeaderboardEntryDTO{{UserID: 4, Rank: 1}}, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/gamification/leaderboard?limit=25", "")

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Ok)

	var entries []gamification.LeaderboardEntryDTO
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	assert.Len(t, entries, 1)
}

func TestGamificationHandler_TopPerformers(t *testing.T) {
	r, svc := setupHandlerTest(t, "USER")

	svc.EXPECT().TopPerformers(gomock.Any(), gamification.ActivityType("JUGGLING"), gamification.DefaultLeaderboardLimit).
		Return(nil, gamificationerrors.ErrInvalidActivityType)

	w := doRequest(r, http.MethodGet, "/api/v1/gamification/leaderboard/JUGGLING", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGamificationHandler_RecordActivity(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER")

		svc.EXPECT().
			RecordActivity(gomock.Any(), int64(7), gamification.RecordActivityRequest{ActivityType: gamification.ActivityLoungeJoined}).
			Return(gamification.ActivityResultDTO{PointsEarned: 3}, nil)

		w := doRequest(r, http.MethodPost, "/api/v1/gamification/activities", `{"activity_type":"LOUNGE_JOINED"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"points_earned":3`)
	})

	t.Run("missing activity type", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER")

		w := doRequest(r, http.MethodPost, "/api/v1/gamification/activities", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGamificationHandler_AwardBadge(t *testing.T) {
	t.Run("admin awards badge", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "ADMIN")

		svc.EXPECT().AwardBadge(gomock.Any(), int64(12), int64(3)).
			Return(gamification.UserBadgeDTO{ID: 50, UserID: 12}, nil)

		w := doRequest(r, http.MethodPost, "/api/v1/gamification/badges/3/award", `{"user_id":12}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("already earned", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "ADMIN")

		svc.EXPECT().AwardBadge(gomock.Any(), int64(12), int64(3)).
			Return(gamification.UserBadgeDTO{}, gamificationerrors.ErrBadgeAlreadyEarned)

		w := doRequest(r, http.MethodPost, "/api/v1/gamification/badges/3/award", `{"user_id":12}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decode(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER")

		w := doRequest(r, http.MethodPost, "/api/v1/gamification/badges/3/award", `{"user_id":12}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("bad badge id", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "ADMIN")

		w := doRequest(r, http.MethodPost, "/api/v1/gamification/badges/abc/award", `{"user_id":12}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGamificationHandler_AcknowledgeBadges(t *testing.T) {
	r, svc := setupHandlerTest(t, "USER")

	svc.EXPECT().AcknowledgeBadges(gomock.Any(), int64(7)).Return(int64(2), nil)

	w := doRequest(r, http.MethodPost, "/api/v1/gamification/badges/acknowledge", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated":2`)
}
