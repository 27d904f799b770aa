// controllers/analytics.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"maisonglow-backend/analytics"
	"maisonglow-backend/config"
	"maisonglow-backend/models"
	"maisonglow-backend/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsController handles the admin dashboard metrics. It fetches rows
// and delegates every calculation to the analytics package.
type AnalyticsController struct{}

func (ac *AnalyticsController) load(c *gin.Context) ([]models.Appointment, []models.Service, bool) {
	var appointments []models.Appointment
	if err := config.DB.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return nil, nil, false
	}
	var services []models.Service
	if err := config.DB.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return nil, nil, false
	}
	return appointments, services, true
}

func (ac *AnalyticsController) dateRange(c *gin.Context) (*time.Time, *time.Time, bool) {
	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date format")
			return nil, nil, false
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date format")
			return nil, nil, false
		}
		to = &t
	}
	return from, to, true
}

// GetSnapshot returns the aggregate dashboard snapshot, optionally scoped
// to a date range and a status set
func (ac *AnalyticsController) GetSnapshot(c *gin.Context) {
	appointments, services, ok := ac.load(c)
	if !ok {
		return
	}
	from, to, ok := ac.dateRange(c)
	if !ok {
		return
	}
	if statuses := c.Query("statuses"); statuses != "" {
		appointments = analytics.FilterByStatus(appointments, strings.Split(statuses, ","))
	}

	c.JSON(http.StatusOK, analytics.BuildSnapshot(appointments, services, from, to))
}

// GetRevenueTrend returns a sparse revenue series bucketed by day, week, or
// month
func (ac *AnalyticsController) GetRevenueTrend(c *gin.Context) {
	granularity := analytics.Granularity(c.DefaultQuery("granularity", "day"))
	switch granularity {
	case analytics.ByDay, analytics.ByWeek, analytics.ByMonth:
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "granularity must be day, week, or month")
		return
	}

	appointments, services, ok := ac.load(c)
	if !ok {
		return
	}
	from, to, ok := ac.dateRange(c)
	if !ok {
		return
	}

	ranged := analytics.FilterByRange(appointments, from, to)
	c.JSON(http.StatusOK, analytics.RevenueTrend(ranged, services, granularity))
}

// GetTopServices returns services ranked by billable revenue
func (ac *AnalyticsController) GetTopServices(c *gin.Context) {
	limit := 5
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			utils.RespondWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	appointments, services, ok := ac.load(c)
	if !ok {
		return
	}
	from, to, ok := ac.dateRange(c)
	if !ok {
		return
	}

	ranged := analytics.FilterByRange(appointments, from, to)
	c.JSON(http.StatusOK, analytics.TopServices(ranged, services, limit))
}

// GetStatusDistribution returns appointment counts and percentages by status
func (ac *AnalyticsController) GetStatusDistribution(c *gin.Context) {
	appointments, _, ok := ac.load(c)
	if !ok {
		return
	}
	from, to, ok := ac.dateRange(c)
	if !ok {
		return
	}

	ranged := analytics.FilterByRange(appointments, from, to)
	c.JSON(http.StatusOK, analytics.StatusDistribution(ranged))
}

// GetPeakHours returns appointment counts by hour of day
func (ac *AnalyticsController) GetPeakHours(c *gin.Context) {
	appointments, _, ok := ac.load(c)
	if !ok {
		return
	}
	from, to, ok := ac.dateRange(c)
	if !ok {
		return
	}

	ranged := analytics.FilterByRange(appointments, from, to)
	c.JSON(http.StatusOK, analytics.PeakHours(ranged))
}
