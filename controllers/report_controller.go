package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/models"
)

type ReportController struct {
	reports ReportGenerator
}

func NewReportController(reports ReportGenerator) *ReportController {
	return &ReportController{reports: reports}
}

// parseReportParams extracts the shared report query parameters: time_frame
// (default daily), required start_date, and an optional end_date used
// verbatim when supplied.
func parseReportParams(c *gin.Context) (models.TimeFrame, time.Time, time.Time, error) {
	timeFrame := models.TimeFrame(c.DefaultQuery("time_frame", string(models.TimeFrameDaily)))
	if !timeFrame.IsValid() {
		return "", time.Time{}, time.Time{}, apperrors.NewValidation("Invalid time frame", string(timeFrame))
	}

	startDate, err := parseDateQuery(c, "start_date")
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	if startDate == nil {
		return "", time.Time{}, time.Time{}, apperrors.NewValidation("start_date is required", "start_date")
	}

	endDate, err := parseDateQuery(c, "end_date")
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}

	end := time.Time{}
	if endDate != nil {
		end = *endDate
	}
	return timeFrame, *startDate, end, nil
}

// GetSalesReport generates a sales report for the tenant in the path.
func (rc *ReportController) GetSalesReport(c *gin.Context) {
	timeFrame, start, end, err := parseReportParams(c)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	report, err := rc.reports.GenerateSalesReport(c.Request.Context(), c.Param("user_id"), timeFrame, start, end)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetRevenueReport generates a revenue report for the tenant in the path.
func (rc *ReportController) GetRevenueReport(c *gin.Context) {
	timeFrame, start, end, err := parseReportParams(c)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	report, err := rc.reports.GenerateRevenueReport(c.Request.Context(), c.Param("user_id"), timeFrame, start, end)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
