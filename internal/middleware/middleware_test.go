package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newRouter(chain ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    c.GetInt64("user_id"),
			"company_id": c.GetInt64("company_id"),
			"role":       c.GetString("role"),
		})
	})
	r.GET("/", handlers...)
	return r
}

func get(r http.Handler, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		for _, value := range v {
			req.Header.Add(k, value)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": {"Bearer " + token}}
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(secret))
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("accepts a valid token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": 7, "company_id": "3", "role": "ADMIN", "exp": exp})

		w := get(r, bearer(token))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":7,"company_id":3,"role":"ADMIN"}`, w.Body.String())
	})

	t.Run("defaults role to USER", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": 7, "exp": exp})

		w := get(r, bearer(token))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":7,"company_id":0,"role":"USER"}`, w.Body.String())
	})

	t.Run("reads the access_token cookie", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": 9, "exp": exp})

		w := get(r, http.Header{"Cookie": {"access_token=" + token}})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := get(r, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": 7, "exp": time.Now().Add(-time.Minute).Unix()})

		w := get(r, bearer(token))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token has expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 7}).SignedString([]byte("other"))
		require.NoError(t, err)

		w := get(r, bearer(token))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("refresh tokens are rejected", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": 7, "typ": "refresh", "exp": exp})

		w := get(r, bearer(token))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing user id", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"role": "USER", "exp": exp})

		w := get(r, bearer(token))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "User ID not found in token")
	})
}

func withClaims(userID, companyID int64, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("company_id", companyID)
		c.Set("role", role)
		c.Next()
	}
}

func TestRoleMiddleware(t *testing.T) {
	t.Run("allows listed role", func(t *testing.T) {
		r := newRouter(withClaims(1, 1, middleware.RoleAdmin), middleware.RoleMiddleware(middleware.RoleAdmin, middleware.RoleCorporateAdmin))

		assert.Equal(t, http.StatusOK, get(r, nil).Code)
	})

	t.Run("rejects other roles", func(t *testing.T) {
		r := newRouter(withClaims(1, 1, middleware.RoleUser), middleware.RoleMiddleware(middleware.RoleAdmin))

		w := get(r, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"FORBIDDEN"`)
	})
}

func TestRequireCompany(t *testing.T) {
	t.Run("passes with company", func(t *testing.T) {
		r := newRouter(withClaims(1, 4, middleware.RoleUser), middleware.RequireCompany())

		assert.Equal(t, http.StatusOK, get(r, nil).Code)
	})

	t.Run("rejects users without company", func(t *testing.T) {
		r := newRouter(withClaims(1, 0, middleware.RoleUser), middleware.RequireCompany())

		w := get(r, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "User does not belong to a company")
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := newRouter(middleware.RateLimitByIP(0.001, 2))

	assert.Equal(t, http.StatusOK, get(r, nil).Code)
	assert.Equal(t, http.StatusOK, get(r, nil).Code)

	w := get(r, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"RATE_LIMITED"`)
}

func TestRateLimitByUser(t *testing.T) {
	t.Run("anonymous requests pass", func(t *testing.T) {
		r := newRouter(middleware.RateLimitByUser(0.001, 1))

		assert.Equal(t, http.StatusOK, get(r, nil).Code)
		assert.Equal(t, http.StatusOK, get(r, nil).Code)
	})

	t.Run("buckets are per user", func(t *testing.T) {
		limit := middleware.RateLimitByUser(0.001, 1)
		alice := newRouter(withClaims(1, 1, middleware.RoleUser), limit)
		bob := newRouter(withClaims(2, 1, middleware.RoleUser), limit)

		assert.Equal(t, http.StatusOK, get(alice, nil).Code)
		assert.Equal(t, http.StatusTooManyRequests, get(alice, nil).Code)
		assert.Equal(t, http.StatusOK, get(bob, nil).Code)
	})
}

func TestRequestIDAndContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), withClaims(5, 2, middleware.RoleUser), middleware.ContextLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		md := contextutil.ExtractMetadata(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"rid": md.RequestID, "uid": md.UserID, "cid": md.CompanyID})
	})

	t.Run("echoes inbound request id", func(t *testing.T) {
		w := get(r, http.Header{middleware.RequestIDHeader: {"abc"}})

		assert.Equal(t, "abc", w.Header().Get(middleware.RequestIDHeader))
		assert.JSONEq(t, `{"rid":"abc","uid":"5","cid":"2"}`, w.Body.String())
	})

	t.Run("generates one when absent", func(t *testing.T) {
		w := get(r, nil)

		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})
}
