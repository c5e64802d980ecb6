package lounge_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge"
	loungeerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge/errors"
	loungeMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, *loungeMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := loungeMock.NewMockService(ctrl)

	r := gin.New()
	auth := func(c *gin.Context) {
		c.Set("user_id", int64(9))
		c.Set("role", "USER")
		c.Next()
	}
	lounge.RegisterRoutes(r.Group("/api/v1"), lounge.NewHandler(svc), auth)
	return r, svc
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoungeHandler_List(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().List(gomock.Any(), int64(9), lounge.ListFilter{Topic: "go", WithSpace: true}).
		Return([]lounge.LoungeDTO{{ID: 1, Title: "Gophers", SpotsLeft: 3}}, nil)

	w := serve(r, http.MethodGet, "/api/v1/lounges?topic=go&available=true", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"spots_left":3`)
}

func TestLoungeHandler_Create(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		w := serve(r, http.MethodPost, "/api/v1/lounges", `{"title":"ab","topic":"go"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Create(gomock.Any(), int64(9), gomock.Any()).Return(lounge.LoungeDTO{ID: 4, Title: "Coffee"}, nil)

		w := serve(r, http.MethodPost, "/api/v1/lounges", `{"title":"Coffee","topic":"beans"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestLoungeHandler_Join(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Join(gomock.Any(), int64(4), int64(9)).Return(lounge.LoungeDTO{}, loungeerrors.ErrLoungeFull)

		w := serve(r, http.MethodPost, "/api/v1/lounges/4/join", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("invalid id", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		w := serve(r, http.MethodPost, "/api/v1/lounges/abc/join", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoungeHandler_Messages(t *testing.T) {
	t.Run("bad since", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		w := serve(r, http.MethodGet, "/api/v1/lounges/4/messages?since=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Messages(gomock.Any(), int64(4), int64(9), nil, 20).
			Return([]lounge.MessageDTO{{ID: 1, Content: "hi"}}, nil)

		w := serve(r, http.MethodGet, "/api/v1/lounges/4/messages?limit=20", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"content":"hi"`)
	})
}

func TestLoungeHandler_Leave(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().Leave(gomock.Any(), int64(4), int64(9)).Return(nil)

	w := serve(r, http.MethodPost, "/api/v1/lounges/4/leave", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}
