package middleware_test

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIdempotency(t *testing.T, status int) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()
	t.Cleanup(func() { _ = rdb.Close() })

	calls := 0
	r := gin.New()
	r.Use(withClaims(7, 1, middleware.RoleUser), middleware.Idempotency(rdb))
	r.POST("/pay", func(c *gin.Context) {
		calls++
		c.JSON(status, gin.H{"ok": status < 400})
	})
	r.GET("/pay", func(c *gin.Context) {
		calls++
		c.Status(http.StatusOK)
	})
	return r, mock, &calls
}

func doRequest(r http.Handler, method, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/pay", nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func storedPayload(status int, body string) string {
	return fmt.Sprintf(`{"status":%d,"body":"%s"}`, status, base64.StdEncoding.EncodeToString([]byte(body)))
}

func TestIdempotency(t *testing.T) {
	cacheKey := middleware.IdempotencyCacheKey(7, "/pay", "k1")
	lockKey := cacheKey + ":lock"

	t.Run("passes through without key", func(t *testing.T) {
		r, mock, calls := setupIdempotency(t, http.StatusCreated)

		w := doRequest(r, http.MethodPost, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ignores non-POST requests", func(t *testing.T) {
		r, mock, calls := setupIdempotency(t, http.StatusOK)

		w := doRequest(r, http.MethodGet, "k1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stores the first response", func(t *testing.T) {
		r, mock, calls := setupIdempotency(t, http.StatusCreated)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "1", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, storedPayload(http.StatusCreated, `{"ok":true}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := doRequest(r, http.MethodPost, "k1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.Empty(t, w.Header().Get(middleware.IdempotentReplayHeader))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replays a stored response", func(t *testing.T) {
		r, mock, calls := setupIdempotency(t, http.StatusCreated)

		mock.ExpectGet(cacheKey).SetVal(storedPayload(http.StatusCreated, `{"ok":true}`))

		w := doRequest(r, http.MethodPost, "k1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get(middleware.IdempotentReplayHeader))
		assert.Zero(t, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a duplicate in flight", func(t *testing.T) {
		r, mock, calls := setupIdempotency(t, http.StatusCreated)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "1", 30*time.Second).SetVal(false)

		w := doRequest(r, http.MethodPost, "k1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Zero(t, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("does not store server errors", func(t *testing.T) {
		r, mock, calls := setupIdempotency(t, http.StatusInternalServerError)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "1", 30*time.Second).SetVal(true)
		mock.ExpectDel(lockKey).SetVal(1)

		w := doRequest(r, http.MethodPost, "k1")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lets the request through when redis is down", func(t *testing.T) {
		r, mock, calls := setupIdempotency(t, http.StatusCreated)

		mock.ExpectGet(cacheKey).SetErr(errors.New("connection refused"))

		w := doRequest(r, http.MethodPost, "k1")

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
