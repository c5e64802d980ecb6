package notification_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	notificationerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/pagination"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool                     `json:"ok"`
	Data  json.RawMessage          `json:"data"`
	Meta  *response.PaginationMeta `json:"meta"`
	Error *apiError                `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

type fakeNotificationService struct {
	notification.Service
	ListFn              func(ctx context.Context, userID int64, page pagination.Page) ([]notification.NotificationDTO, response.PaginationMeta, error)
	UnreadCountFn       func(ctx context.Context, userID int64) (int64, error)
	MarkAsReadFn        func(ctx context.Context, userID, id int64) error
	MarkAllAsReadFn     func(ctx context.Context, userID int64) (int64, error)
	UpdatePreferencesFn func(ctx context.Context, userID int64, req notification.UpdatePreferencesRequest) (notification.PreferencesDTO, error)
}

func (f *fakeNotificationService) List(ctx context.Context, userID int64, page pagination.Page) ([]notification.NotificationDTO, response.PaginationMeta, error) {
	return f.ListFn(ctx, userID, page)
}
func (f *fakeNotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return f.UnreadCountFn(ctx, userID)
}
func (f *fakeNotificationService) MarkAsRead(ctx context.Context, userID, id int64) error {
	return f.MarkAsReadFn(ctx, userID, id)
}
func (f *fakeNotificationService) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	return f.MarkAllAsReadFn(ctx, userID)
}
func (f *fakeNotificationService) UpdatePreferences(ctx context.Context, userID int64, req notification.UpdatePreferencesRequest) (notification.PreferencesDTO, error) {
	return f.UpdatePreferencesFn(ctx, userID, req)
}

func setupRouter(svc notification.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := notification.NewHandler(svc)
	notification.RegisterRoutes(r.Group("/api/v1"), h, withUser(7))
	return r
}

func withUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestNotificationHandler_List(t *testing.T) {
	svc := &fakeNotificationService{
		ListFn: func(_ context.Context, userID int64, page pagination.Page) ([]notification.NotificationDTO, response.PaginationMeta, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, 2, page.Page)
			assert.Equal(t, 5, page.Limit)
			return []notification.NotificationDTO{{ID: 1, Title: "hi", CreatedAt: time.Now()}},
				response.NewPaginationMeta(6, page.Page, page.Limit), nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?page=2&limit=5", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.TotalPages)
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	svc := &fakeNotificationService{
		UnreadCountFn: func(context.Context, int64) (int64, error) { return 9, nil },
	}

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notifications/unread-count", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	var body notification.UnreadCountResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, int64(9), body.UnreadCount)
}

func TestNotificationHandler_MarkAsRead(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeNotificationService{
			MarkAsReadFn: func(_ context.Context, userID, id int64) error {
				assert.Equal(t, int64(7), userID)
				assert.Equal(t, int64(15), id)
				return nil
			},
		}

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/15/read", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(&fakeNotificationService{}).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/abc/read", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeNotificationService{
			MarkAsReadFn: func(context.Context, int64, int64) error {
				return notificationerrors.ErrNotificationNotFound
			},
		}

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/15/read", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestNotificationHandler_UpdatePreferences(t *testing.T) {
	t.Run("binds partial payload", func(t *testing.T) {
		svc := &fakeNotificationService{
			UpdatePreferencesFn: func(_ context.Context, _ int64, req notification.UpdatePreferencesRequest) (notification.PreferencesDTO, error) {
				require.NotNil(t, req.PushEnabled)
				assert.False(t, *req.PushEnabled)
				assert.Nil(t, req.EmailEnabled)
				return notification.PreferencesDTO{UserID: 7, Timezone: "UTC"}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/notifications/preferences", strings.NewReader(`{"push_enabled":false}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/notifications/preferences", strings.NewReader(`{"push_enabled":`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(&fakeNotificationService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
