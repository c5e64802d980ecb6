package mentorship_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/mentorship"
	mentorshiperrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/mentorship/errors"
	mentorshipMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/mentorship/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T, role string, companyID int64) (*gin.Engine, *mentorshipMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := mentorshipMock.NewMockService(gomock.NewController(t))

	r := gin.New()
	auth := func(c *gin.Context) {
		c.Set("user_id", int64(7))
		c.Set("company_id", companyID)
		c.Set("role", role)
		c.Next()
	}
	mentorship.RegisterRoutes(r.Group("/api/v1"), mentorship.NewHandler(svc), auth)
	return r, svc
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMentorshipHandler_ListPrograms(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().ListPrograms(gomock.Any(), int64(3), gomock.Any()).
			Return([]mentorship.ProgramDTO{{ID: 5, StatusDisplay: "Full"}}, nil)

		w := serve(r, http.MethodGet, "/api/v1/mentorship/programs", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status_display":"Full"`)
	})

	t.Run("requires a company", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 0)

		w := serve(r, http.MethodGet, "/api/v1/mentorship/programs", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMentorshipHandler_CreateProgram(t *testing.T) {
	t.Run("admins only", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 3)

		w := serve(r, http.MethodPost, "/api/v1/mentorship/programs", `{"program_name":"x","program_type":"NETWORKING"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "CORPORATE_ADMIN", 3)
		svc.EXPECT().CreateProgram(gomock.Any(), int64(3), gomock.Any()).Return(mentorship.ProgramDTO{ID: 5}, nil)

		w := serve(r, http.MethodPost, "/api/v1/mentorship/programs", `{"program_name":"Tech Ladder","program_type":"NETWORKING"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "CORPORATE_ADMIN", 3)

		w := serve(r, http.MethodPost, "/api/v1/mentorship/programs", `{"program_name":"Tech Ladder","program_type":"COOKING"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMentorshipHandler_RequestMentorship(t *testing.T) {
	r, svc := setupHandlerTest(t, "USER", 3)
	svc.EXPECT().RequestMentorship(gomock.Any(), int64(3), int64(7), mentorship.CreateRelationshipRequest{ProgramID: 5, MentorID: 8}).
		Return(mentorship.RelationshipDTO{}, mentorshiperrors.ErrMentorAtCapacity)

	w := serve(r, http.MethodPost, "/api/v1/mentorship/relationships", `{"program_id":5,"mentor_id":8}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "maximum number of mentees")
}

func TestMentorshipHandler_UpdateRelationshipStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 3)

		w := serve(r, http.MethodPut, "/api/v1/mentorship/relationships/abc/status", `{"status":"ACTIVE"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("pending is not a target", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 3)

		w := serve(r, http.MethodPut, "/api/v1/mentorship/relationships/9/status", `{"status":"PENDING"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().UpdateRelationshipStatus(gomock.Any(), int64(9), int64(7), mentorship.RelationshipCompleted).
			Return(mentorship.RelationshipDTO{ID: 9, Status: mentorship.RelationshipCompleted}, nil)

		w := serve(r, http.MethodPut, "/api/v1/mentorship/relationships/9/status", `{"status":"COMPLETED"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMentorshipHandler_Sessions(t *testing.T) {
	r, svc := setupHandlerTest(t, "USER", 3)
	svc.EXPECT().Sessions(gomock.Any(), int64(9), int64(7)).Return(nil, mentorshiperrors.ErrNotParticipant)

	w := serve(r, http.MethodGet, "/api/v1/mentorship/relationships/9/sessions", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}
