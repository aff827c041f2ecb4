package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dhruvahir777/billoza-backend/models"
)

type stubReportGenerator struct {
	timeFrame models.TimeFrame
	start     time.Time
	end       time.Time
}

func (s *stubReportGenerator) GenerateSalesReport(ctx context.Context, userID string, timeFrame models.TimeFrame, startDate, endDate time.Time) (*models.SalesReport, error) {
	s.timeFrame, s.start, s.end = timeFrame, startDate, endDate
	return &models.SalesReport{TimeFrame: timeFrame, StartDate: startDate, EndDate: endDate, Data: []models.SalesDataPoint{}}, nil
}

func (s *stubReportGenerator) GenerateRevenueReport(ctx context.Context, userID string, timeFrame models.TimeFrame, startDate, endDate time.Time) (*models.RevenueReport, error) {
	s.timeFrame, s.start, s.end = timeFrame, startDate, endDate
	return &models.RevenueReport{TimeFrame: timeFrame, StartDate: startDate, EndDate: endDate, Data: []models.RevenueDataPoint{}}, nil
}

func reportTestRouter(gen ReportGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rc := NewReportController(gen)
	router := gin.New()
	router.GET("/users/:user_id/reports/sales", rc.GetSalesReport)
	router.GET("/users/:user_id/reports/revenue", rc.GetRevenueReport)
	return router
}

func TestGetSalesReport_DefaultsToDaily(t *testing.T) {
	gen := &stubReportGenerator{}
	router := reportTestRouter(gen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/BZU123456/reports/sales?start_date=2024-01-01", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.TimeFrameDaily, gen.timeFrame)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), gen.start)
	assert.True(t, gen.end.IsZero())
}

func TestGetRevenueReport_PassesExplicitWindow(t *testing.T) {
	gen := &stubReportGenerator{}
	router := reportTestRouter(gen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/users/BZU123456/reports/revenue?time_frame=monthly&start_date=2024-01-01&end_date=2024-03-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.TimeFrameMonthly, gen.timeFrame)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), gen.end)
}

func TestGetSalesReport_Validation(t *testing.T) {
	router := reportTestRouter(&stubReportGenerator{})

	t.Run("missing start_date", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/BZU123456/reports/sales", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad time frame", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/users/BZU123456/reports/sales?time_frame=hourly&start_date=2024-01-01", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
