package company_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company"
	companyerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/errors"
	companyMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type handlerDeps struct {
	router      *gin.Engine
	svc         *companyMock.MockService
	invitations *companyMock.MockInvitationService
}

func setupHandlerTest(t *testing.T, role string, companyID int64) *handlerDeps {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	deps := &handlerDeps{
		svc:         companyMock.NewMockService(ctrl),
		invitations: companyMock.NewMockInvitationService(ctrl),
	}

	r := gin.New()
	auth := func(c *gin.Context) {
		c.Set("user_id", int64(7))
		c.Set("company_id", companyID)
		c.Set("role", role)
		c.Next()
	}
	company.RegisterRoutes(r.Group("/api/v1"), company.NewHandler(deps.svc, deps.invitations), auth)
	deps.router = r
	return deps
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCompanyHandler_GetMine(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		deps := setupHandlerTest(t, "USER", 3)
		deps.svc.EXPECT().Get(gomock.Any(), int64(3)).Return(company.CompanyDTO{ID: 3, Name: "Acme", EmployeeCount: 12}, nil)

		w := serve(deps.router, http.MethodGet, "/api/v1/companies/me", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_count":12`)
	})

	t.Run("no company", func(t *testing.T) {
		deps := setupHandlerTest(t, "USER", 0)

		w := serve(deps.router, http.MethodGet, "/api/v1/companies/me", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCompanyHandler_Create(t *testing.T) {
	t.Run("corporate admin", func(t *testing.T) {
		deps := setupHandlerTest(t, "CORPORATE_ADMIN", 0)
		deps.svc.EXPECT().Create(gomock.Any(), int64(7), company.CreateCompanyRequest{Name: "Acme"}).
			Return(company.CompanyDTO{ID: 3, Name: "Acme"}, nil)

		w := serve(deps.router, http.MethodPost, "/api/v1/companies", `{"name":"Acme"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("regular user", func(t *testing.T) {
		deps := setupHandlerTest(t, "USER", 0)

		w := serve(deps.router, http.MethodPost, "/api/v1/companies", `{"name":"Acme"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("name taken", func(t *testing.T) {
		deps := setupHandlerTest(t, "CORPORATE_ADMIN", 0)
		deps.svc.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).Return(company.CompanyDTO{}, companyerrors.ErrCompanyAlreadyExists)

		w := serve(deps.router, http.MethodPost, "/api/v1/companies", `{"name":"Acme"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCompanyHandler_Invite(t *testing.T) {
	t.Run("issues invitation", func(t *testing.T) {
		deps := setupHandlerTest(t, "CORPORATE_ADMIN", 3)
		deps.invitations.EXPECT().
			Invite(gomock.Any(), int64(3), int64(7), company.InviteRequest{Email: "new@acme.io"}).
			Return(company.InvitationDTO{ID: 11, Email: "new@acme.io", Token: "tok"}, nil)

		w := serve(deps.router, http.MethodPost, "/api/v1/companies/me/invitations", `{"email":"new@acme.io"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
	})

	t.Run("invalid email", func(t *testing.T) {
		deps := setupHandlerTest(t, "CORPORATE_ADMIN", 3)

		w := serve(deps.router, http.MethodPost, "/api/v1/companies/me/invitations", `{"email":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("pending already", func(t *testing.T) {
		deps := setupHandlerTest(t, "ADMIN", 3)
		deps.invitations.EXPECT().Invite(gomock.Any(), int64(3), int64(7), gomock.Any()).
			Return(company.InvitationDTO{}, companyerrors.ErrInvitationAlreadyPending)

		w := serve(deps.router, http.MethodPost, "/api/v1/companies/me/invitations", `{"email":"new@acme.io"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCompanyHandler_ListInvitations(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		deps := setupHandlerTest(t, "CORPORATE_ADMIN", 3)
		deps.invitations.EXPECT().ListForCompany(gomock.Any(), int64(3), company.InvitationPending).
			Return([]company.InvitationDTO{{ID: 1}}, nil)

		w := serve(deps.router, http.MethodGet, "/api/v1/companies/me/invitations?status=PENDING", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		deps := setupHandlerTest(t, "CORPORATE_ADMIN", 3)

		w := serve(deps.router, http.MethodGet, "/api/v1/companies/me/invitations?status=LOST", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCompanyHandler_AcceptInvitation(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		deps := setupHandlerTest(t, "USER", 0)
		deps.invitations.EXPECT().Accept(gomock.Any(), int64(7), "tok", gomock.Any()).
			Return(company.InvitationDTO{}, companyerrors.ErrInvitationExpired)

		w := serve(deps.router, http.MethodPost, "/api/v1/invitations/accept", `{"token":"tok"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("missing token", func(t *testing.T) {
		deps := setupHandlerTest(t, "USER", 0)

		w := serve(deps.router, http.MethodPost, "/api/v1/invitations/accept", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCompanyHandler_CancelInvitation(t *testing.T) {
	deps := setupHandlerTest(t, "CORPORATE_ADMIN", 3)
	deps.invitations.EXPECT().Cancel(gomock.Any(), int64(3), int64(11)).Return(nil)

	w := serve(deps.router, http.MethodDelete, "/api/v1/companies/me/invitations/11", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}
