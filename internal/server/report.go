package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	reportdomain "github.com/smallbiznis/stockbook/internal/report/domain"
)

// FinancialReport defaults to the current calendar month when no range is
// given, matching the reporting surface this API replaced.
func (s *Server) FinancialReport(c *gin.Context) {
	startDate, err := parseOptionalDate(c.Query("start_date"))
	if err != nil {
		AbortWithError(c, reportdomain.ErrInvalidDateRange)
		return
	}
	endDate, err := parseOptionalDate(c.Query("end_date"))
	if err != nil {
		AbortWithError(c, reportdomain.ErrInvalidDateRange)
		return
	}

	if startDate == nil || endDate == nil {
		first, last := currentMonthRange(time.Now().UTC())
		if startDate == nil {
			startDate = &first
		}
		if endDate == nil {
			endDate = &last
		}
	}

	resp, err := s.reportSvc.Report(c.Request.Context(), *startDate, *endDate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) Dashboard(c *gin.Context) {
	resp, err := s.reportSvc.Overview(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func currentMonthRange(now time.Time) (time.Time, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
