package subscription_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription"
	subscriptionerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription/errors"
	subscriptionMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T, role string, companyID int64) (*gin.Engine, *subscriptionMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := subscriptionMock.NewMockService(gomock.NewController(t))

	r := gin.New()
	auth := func(c *gin.Context) {
		c.Set("user_id", int64(7))
		c.Set("company_id", companyID)
		c.Set("role", role)
		c.Next()
	}
	subscription.RegisterRoutes(r.Group("/api/v1"), subscription.NewHandler(svc), auth)
	return r, svc
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubscriptionHandler_Current(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().Current(gomock.Any(), int64(3)).Return(subscription.SubscriptionDTO{ID: 4, StatusDisplay: "Active"}, nil)

		w := serve(r, http.MethodGet, "/api/v1/subscriptions/current", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status_display":"Active"`)
	})

	t.Run("none", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().Current(gomock.Any(), int64(3)).Return(subscription.SubscriptionDTO{}, subscriptionerrors.ErrSubscriptionNotFound)

		w := serve(r, http.MethodGet, "/api/v1/subscriptions/current", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("requires a company", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 0)

		w := serve(r, http.MethodGet, "/api/v1/subscriptions/current", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestSubscriptionHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "CORPORATE_ADMIN", 3)
		svc.EXPECT().Create(gomock.Any(), int64(3), subscription.CreateSubscriptionRequest{
			PlanType:     subscription.PlanBasic,
			BillingCycle: subscription.CycleYearly,
		}).Return(subscription.SubscriptionDTO{ID: 4}, nil)

		w := serve(r, http.MethodPost, "/api/v1/subscriptions", `{"plan_type":"BASIC","billing_cycle":"YEARLY"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid plan", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "CORPORATE_ADMIN", 3)

		w := serve(r, http.MethodPost, "/api/v1/subscriptions", `{"plan_type":"GOLD"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("employees cannot subscribe", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 3)

		w := serve(r, http.MethodPost, "/api/v1/subscriptions", `{"plan_type":"BASIC"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "CORPORATE_ADMIN", 3)
		svc.EXPECT().Create(gomock.Any(), int64(3), gomock.Any()).Return(subscription.SubscriptionDTO{}, subscriptionerrors.ErrSubscriptionExists)

		w := serve(r, http.MethodPost, "/api/v1/subscriptions", `{"plan_type":"BASIC"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestSubscriptionHandler_Cancel(t *testing.T) {
	t.Run("without body cancels now", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "CORPORATE_ADMIN", 3)
		svc.EXPECT().Cancel(gomock.Any(), int64(3), false).Return(subscription.SubscriptionDTO{ID: 4}, nil)

		w := serve(r, http.MethodPost, "/api/v1/subscriptions/cancel", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("at period end", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "CORPORATE_ADMIN", 3)
		svc.EXPECT().Cancel(gomock.Any(), int64(3), true).Return(subscription.SubscriptionDTO{ID: 4}, nil)

		w := serve(r, http.MethodPost, "/api/v1/subscriptions/cancel", `{"at_period_end":true}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSubscriptionHandler_CanUpgrade(t *testing.T) {
	r, svc := setupHandlerTest(t, "USER", 3)
	svc.EXPECT().CanUpgrade(gomock.Any(), int64(3), subscription.PlanPremium).Return(true, nil)

	w := serve(r, http.MethodGet, "/api/v1/subscriptions/can-upgrade/PREMIUM", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"can_upgrade":true`)
}

func TestSubscriptionHandler_Plans(t *testing.T) {
	r, svc := setupHandlerTest(t, "USER", 0)
	svc.EXPECT().Plans().Return([]subscription.PlanDTO{{PlanType: subscription.PlanFree, DisplayName: "Free"}})

	w := serve(r, http.MethodGet, "/api/v1/subscriptions/plans", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"display_name":"Free"`)
}
