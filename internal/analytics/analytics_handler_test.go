package analytics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics"
	analyticserrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics/errors"
	analyticsMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T, role string, companyID int64) (*gin.Engine, *analyticsMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := analyticsMock.NewMockService(gomock.NewController(t))

	r := gin.New()
	auth := func(c *gin.Context) {
		c.Set("user_id", int64(7))
		c.Set("company_id", companyID)
		c.Set("role", role)
		c.Next()
	}
	analytics.RegisterRoutes(r.Group("/api/v1"), analytics.NewHandler(svc), auth)
	return r, svc
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyticsHandler_Overview(t *testing.T) {
	t.Run("admins only", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 3)

		w := serve(r, http.MethodGet, "/api/v1/analytics/overview", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "ADMIN", 0)
		svc.EXPECT().Overview(gomock.Any(), gomock.Any()).Return(analytics.OverviewDTO{TotalUsers: 120}, nil)

		w := serve(r, http.MethodGet, "/api/v1/analytics/overview", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_users":120`)
	})
}

func TestAnalyticsHandler_Rollup(t *testing.T) {
	t.Run("explicit date", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "ADMIN", 0)
		svc.EXPECT().RollupDay(gomock.Any(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)).
			Return(&analytics.PlatformDay{TotalUsers: 80}, nil)

		w := serve(r, http.MethodPost, "/api/v1/analytics/rollup?date=2026-03-01", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "ADMIN", 0)

		w := serve(r, http.MethodPost, "/api/v1/analytics/rollup?date=March", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAnalyticsHandler_CompanyRoutes(t *testing.T) {
	t.Run("requires a company", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 0)

		w := serve(r, http.MethodGet, "/api/v1/analytics/company/snapshot", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("metric series", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().MetricSeries(gomock.Any(), int64(3), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, q analytics.SeriesQuery) (analytics.MetricSeriesDTO, error) {
				assert.Equal(t, analytics.MetricBadgesEarned, q.MetricType)
				assert.Equal(t, 2026, q.From.Year())
				return analytics.MetricSeriesDTO{MetricType: q.MetricType}, nil
			})

		w := serve(r, http.MethodGet, "/api/v1/analytics/company/metrics?metric=BADGES_EARNED&from=2026-02-01&to=2026-03-01", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metric series needs a metric", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 3)

		w := serve(r, http.MethodGet, "/api/v1/analytics/company/metrics?from=2026-02-01&to=2026-03-01", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("recording metrics is for company admins", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 3)

		w := serve(r, http.MethodPost, "/api/v1/analytics/company/metrics", `{}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAnalyticsHandler_TrackBehavior(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().TrackBehavior(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, req analytics.TrackBehaviorRequest) error {
				assert.Equal(t, analytics.BehaviorType("LOGIN"), req.BehaviorType)
				return nil
			})

		w := serve(r, http.MethodPost, "/api/v1/analytics/behaviors", `{"behavior_type":"LOGIN","metadata":{"source":"web"}}`)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("unknown behavior", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().TrackBehavior(gomock.Any(), int64(7), gomock.Any()).Return(analyticserrors.ErrUnknownBehavior)

		w := serve(r, http.MethodPost, "/api/v1/analytics/behaviors", `{"behavior_type":"DANCING"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAnalyticsHandler_TrackBatch(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 3)

		w := serve(r, http.MethodPost, "/api/v1/analytics/behaviors/batch", `{"behaviors":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("tracked", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().TrackBatch(gomock.Any(), int64(7), gomock.Any()).Return(2, nil)

		w := serve(r, http.MethodPost, "/api/v1/analytics/behaviors/batch",
			`{"behaviors":[{"behavior_type":"LOGIN"},{"behavior_type":"SEARCH"}]}`)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"tracked":2`)
	})
}

func TestAnalyticsHandler_Insights(t *testing.T) {
	r, svc := setupHandlerTest(t, "USER", 3)
	svc.EXPECT().Insights(gomock.Any(), int64(7), analytics.InsightFilter{Status: "unread"}, gomock.Any()).
		Return([]analytics.InsightDTO{{ID: 1, StatusDisplay: "New"}}, nil)

	w := serve(r, http.MethodGet, "/api/v1/analytics/insights?status=unread", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status_display":"New"`)
}

func TestAnalyticsHandler_MarkInsightRead(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 3)

		w := serve(r, http.MethodPut, "/api/v1/analytics/insights/abc/read", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("someone else's insight", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().MarkInsightRead(gomock.Any(), int64(7), int64(9)).
			Return(analytics.InsightDTO{}, analyticserrors.ErrInsightNotFound)

		w := serve(r, http.MethodPut, "/api/v1/analytics/insights/9/read", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAnalyticsHandler_AddInsightFeedback(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		r, _ := setupHandlerTest(t, "USER", 3)

		w := serve(r, http.MethodPost, "/api/v1/analytics/insights/9/feedback", `{"rating":6}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		r, svc := setupHandlerTest(t, "USER", 3)
		svc.EXPECT().AddInsightFeedback(gomock.Any(), int64(7), int64(9), analytics.InsightFeedbackRequest{Rating: 4}).
			Return(analytics.InsightDTO{ID: 9}, nil)

		w := serve(r, http.MethodPost, "/api/v1/analytics/insights/9/feedback", `{"rating":4}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
