package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"chitoro-backend/directory"
	"chitoro-backend/dtos"
	"chitoro-backend/hours"
	"chitoro-backend/models"
	"chitoro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BusinessHandler struct {
	DB       *gorm.DB
	Notifier utils.Notifier
}

// ========== Public Endpoints ==========

// ListBusinesses serves the filterable directory. Branches are
// flattened into display rows, annotated with a live status and, when
// lat/lng are supplied, sorted by distance from the caller.
func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	filters := directory.Filters{
		City:   c.Query("city"),
		Area:   c.Query("area"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}

	var userLocation *directory.LatLng
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
			return
		}
		userLocation = &directory.LatLng{Lat: lat, Lng: lng}
	}

	var businesses []models.Business
	if err := h.DB.Preload("Branches.Hours").Find(&businesses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch businesses"})
		return
	}

	rows := directory.Project(businesses, filters, userLocation)
	now := time.Now()
	for i := range rows {
		rows[i].Status = hours.StatusAt(rows[i].Schedule, now)
	}

	c.JSON(http.StatusOK, rows)
}

// GetBusiness returns one business with its branches, each carrying a
// live status and a formatted week of opening hours.
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	if err := h.DB.Preload("Branches.Hours").Where("id = ?", id).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	now := time.Now()
	branches := make([]gin.H, 0, len(business.Branches))
	for _, branch := range business.Branches {
		schedule := branch.Schedule()
		week := make(map[string]string, 7)
		for day := hours.Monday; day <= hours.Sunday; day++ {
			week[day.String()] = hours.FormatHours(schedule[day])
		}
		branches = append(branches, gin.H{
			"id":        branch.ID,
			"address":   branch.Address,
			"city":      branch.City,
			"area":      branch.Area,
			"latitude":  branch.Latitude,
			"longitude": branch.Longitude,
			"schedule":  schedule,
			"week":      week,
			"status":    hours.StatusAt(schedule, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       business.ID,
		"name":     business.Name,
		"type":     business.Type,
		"branches": branches,
	})
}

// GetLocations returns the supported city -> areas map for the filter UI.
func (h *BusinessHandler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cities":    directory.Cities(),
		"locations": directory.Locations,
	})
}

// ========== Authenticated Endpoints ==========

// CreateBusiness is the add operation: a new business together with
// its first branch. Ids are assigned here; the schedule payload is the
// one place a bad range is rejected outright.
func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	var req dtos.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	schedule, err := req.Branch.Schedule.ToSchedule()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := directory.Locations[req.Branch.City]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown city"})
		return
	}

	business := models.Business{
		Name: req.Name,
		Type: models.BusinessType(req.Type),
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&business).Error; err != nil {
			return err
		}
		branch := models.Branch{
			BusinessID: business.ID,
			Address:    req.Branch.Address,
			City:       req.Branch.City,
			Area:       req.Branch.Area,
			Latitude:   req.Branch.Latitude,
			Longitude:  req.Branch.Longitude,
		}
		if err := tx.Create(&branch).Error; err != nil {
			return err
		}
		rows := models.HourRows(branch.ID, schedule)
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		branch.Hours = rows
		business.Branches = []models.Branch{branch}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business"})
		return
	}

	h.notifyListingAdded(business)

	c.JSON(http.StatusCreated, business)
}

// UpdateBranch is the edit operation: replaces a branch's mutable
// fields in place (and the parent's name/type), preserving both ids.
func (h *BusinessHandler) UpdateBranch(c *gin.Context) {
	businessID := c.Param("id")
	branchID := c.Param("branchId")

	var req dtos.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	schedule, err := req.Branch.Schedule.ToSchedule()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var business models.Business
	if err := h.DB.Where("id = ?", businessID).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	var branch models.Branch
	if err := h.DB.Where("id = ? AND business_id = ?", branchID, business.ID).First(&branch).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&business).Updates(map[string]interface{}{
			"name": req.Name,
			"type": req.Type,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&branch).Updates(map[string]interface{}{
			"address":   req.Branch.Address,
			"city":      req.Branch.City,
			"area":      req.Branch.Area,
			"latitude":  req.Branch.Latitude,
			"longitude": req.Branch.Longitude,
		}).Error; err != nil {
			return err
		}
		// Replace the week wholesale so the seven-rows invariant holds.
		if err := tx.Where("branch_id = ?", branch.ID).Delete(&models.BranchHours{}).Error; err != nil {
			return err
		}
		rows := models.HourRows(branch.ID, schedule)
		return tx.Create(&rows).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update branch"})
		return
	}

	var updated models.Business
	if err := h.DB.Preload("Branches.Hours").Where("id = ?", business.ID).First(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload business"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *BusinessHandler) notifyListingAdded(business models.Business) {
	if h.Notifier == nil {
		return
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}
	go func() {
		subject := fmt.Sprintf("New listing: %s", business.Name)
		body := fmt.Sprintf("<p>A new %s listing was added: <b>%s</b> (id %d).</p>",
			business.Type, business.Name, business.ID)
		if err := h.Notifier.Notify(adminEmail, subject, body); err != nil {
			log.Printf("Failed to send listing notification: %v", err)
		}
	}()
}
