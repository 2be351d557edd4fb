package handlers

import (
	"net/http"
	"time"

	"chitoro-backend/hours"
	"chitoro-backend/models"
	"chitoro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatusRefreshInterval is how often the background refresher
// recomputes every branch's status, matching the one-minute tick the
// directory UI refreshes on.
const StatusRefreshInterval = 60 * time.Second

type StatusHandler struct {
	DB    *gorm.DB
	Store *utils.StatusStore
}

// GetStatuses serves the latest refresh snapshot without touching the
// database.
func (h *StatusHandler) GetStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statuses": h.Store.Snapshot()})
}

// RefreshNow forces a refresh ahead of the next tick. Admin only.
func (h *StatusHandler) RefreshNow(c *gin.Context) {
	if err := RefreshStatuses(h.DB, h.Store); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh statuses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"statuses": h.Store.Snapshot()})
}

// RefreshStatuses recomputes every branch's status from its schedule
// and the current clock. The engine itself stays stateless; this is
// the external timer-driven caller the design relies on.
func RefreshStatuses(db *gorm.DB, store *utils.StatusStore) error {
	var branches []models.Branch
	if err := db.Preload("Hours").Find(&branches).Error; err != nil {
		return err
	}

	now := time.Now()
	for _, branch := range branches {
		store.Set(utils.BranchStatus{
			BranchID:   branch.ID,
			BusinessID: branch.BusinessID,
			Status:     hours.StatusAt(branch.Schedule(), now),
			ComputedAt: now,
		})
	}

	// Drop entries for branches that no longer exist.
	store.CleanupStale(3 * StatusRefreshInterval)
	return nil
}
