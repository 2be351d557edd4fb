package handlers

import (
	"net/http"
	"strconv"
	"time"

	"chitoro-backend/holidays"

	"github.com/gin-gonic/gin"
)

type HolidayHandler struct{}

// GetHolidays returns the public holidays for a year (default: the
// current year).
func (h *HolidayHandler) GetHolidays(c *gin.Context) {
	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 1900 || parsed > 2200 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"holidays": holidays.GetZimbabweHolidays(year),
	})
}

// GetTodayHoliday answers whether today is a public holiday.
func (h *HolidayHandler) GetTodayHoliday(c *gin.Context) {
	holiday := holidays.GetHolidayForDate(time.Now())
	if holiday == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not a public holiday"})
		return
	}
	c.JSON(http.StatusOK, holiday)
}
