package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planwerk/shiftboard-api/pkg/directory"
	"github.com/planwerk/shiftboard-api/pkg/models"
)

// ListEmployees returns the full roster
func (h *Handler) ListEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"employees": h.Directory.All()})
}

// FilterEmployees evaluates a FilterOptions payload against the roster
func (h *Handler) FilterEmployees(c *gin.Context) {
	var opts models.FilterOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := directory.Filter(h.Directory.All(), opts)
	c.JSON(http.StatusOK, gin.H{
		"employees": filtered,
		"count":     len(filtered),
		"total":     h.Directory.Len(),
	})
}

// SetAvailability toggles the availability flag of one employee
func (h *Handler) SetAvailability(c *gin.Context) {
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "available is required"})
		return
	}

	if err := h.Planner.SetAvailability(c.Param("id"), *req.Available); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// OrganizationStats returns roster counts by location, department and team
func (h *Handler) OrganizationStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.Planner.OrganizationStats()})
}

// ListShiftTypes returns the catalog's shift type definitions
func (h *Handler) ListShiftTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"shift_types": h.Catalog.ShiftTypes()})
}
