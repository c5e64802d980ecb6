package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/pagination"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"
	usererrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/errors"
	userMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T, role string, companyID int64) (*gin.Engine, *userMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := userMock.NewMockService(gomock.NewController(t))

	r := gin.New()
	auth := func(c *gin.Context) {
		c.Set("user_id", int64(7))
		c.Set("company_id", companyID)
		c.Set("role", role)
		c.Next()
	}
	user.RegisterRoutes(r.Group("/api/v1"), user.NewHandler(svc), auth)
	return r, svc
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Me(t *testing.T) {
	r, svc := setupHandlerTest(t, "USER", 0)
	svc.EXPECT().GetProfile(gomock.Any(), int64(7)).
		Return(user.UserProfileDTO{UserDTO: user.UserDTO{ID: 7, Email: "ada@acme.io"}}, nil)

	w := serve(r, http.MethodGet, "/api/v1/users/me", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"ada@acme.io"`)
}

func TestUserHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 0)
		svc.EXPECT().GetProfile(gomock.Any(), int64(42)).Return(user.UserProfileDTO{}, usererrors.ErrUserNotFound)

		w := serve(r, http.MethodGet, "/api/v1/users/42", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 0)

		w := serve(r, http.MethodGet, "/api/v1/users/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_Search(t *testing.T) {
	r, svc := setupHandlerTest(t, "USER", 0)
	svc.EXPECT().
		Search(gomock.Any(), user.SearchFilter{Query: "ada", Skills: "go"}, pagination.New(1, 5)).
		Return(user.SearchResultDTO{Query: "ada", TotalResults: 1, Users: []user.UserDTO{{ID: 1}}}, nil)

	w := serve(r, http.MethodGet, "/api/v1/users/search?q=ada&skills=go&limit=5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_results":1`)
}

func TestUserHandler_CompanyMembers(t *testing.T) {
	t.Run("requires a company", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 0)

		w := serve(r, http.MethodGet, "/api/v1/users/company", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("lists members", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().CompanyMembers(gomock.Any(), int64(3)).Return([]user.UserDTO{{ID: 1}, {ID: 2}}, nil)

		w := serve(r, http.MethodGet, "/api/v1/users/company", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUserHandler_SetStatus(t *testing.T) {
	t.Run("admin deactivates", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "ADMIN", 0)
		svc.EXPECT().SetStatus(gomock.Any(), int64(9), false).Return(nil)

		w := serve(r, http.MethodPatch, "/api/v1/users/9/status", `{"is_active":false}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing flag", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "ADMIN", 0)

		w := serve(r, http.MethodPatch, "/api/v1/users/9/status", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 0)

		w := serve(r, http.MethodPatch, "/api/v1/users/9/status", `{"is_active":false}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUserHandler_UpdatePreferences(t *testing.T) {
	t.Run("rejects unknown level", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 0)

		w := serve(r, http.MethodPut, "/api/v1/users/me/preferences", `{"preferred_experience_level":"WIZARD"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("saves", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 0)
		svc.EXPECT().UpdatePreferences(gomock.Any(), int64(7), gomock.Any()).
			Return(user.UserPreferencesDTO{PreferredChatDuration: 45}, nil)

		w := serve(r, http.MethodPut, "/api/v1/users/me/preferences", `{"preferred_chat_duration":45}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"preferred_chat_duration":45`)
	})
}
