package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planwerk/shiftboard-api/pkg/models"
)

// rosterPayload is the shape accepted by the validation endpoint: a roster
// plus the shift types a planning session would be opened with.
type rosterPayload struct {
	Employees  []models.Employee  `json:"employees"`
	ShiftTypes []models.ShiftType `json:"shift_types"`
}

// ValidateRoster checks a roster/shift-type payload for structural problems
// before a session is opened: empty sets, duplicate ids, out-of-range ratings
func (h *Handler) ValidateRoster(c *gin.Context) {
	var input rosterPayload
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.Employees) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one employee is required",
		})
		return
	}

	if len(input.ShiftTypes) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one shift type is required",
		})
		return
	}

	// Check for duplicate IDs
	empIDs := make(map[string]bool)
	for _, e := range input.Employees {
		if empIDs[e.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate employee ID: " + e.ID})
			return
		}
		empIDs[e.ID] = true

		if e.PerformanceRating < 1 || e.PerformanceRating > 5 {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Performance rating out of range for employee: " + e.ID})
			return
		}
	}

	shiftIDs := make(map[string]bool)
	for _, s := range input.ShiftTypes {
		if shiftIDs[s.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate shift type ID: " + s.ID})
			return
		}
		shiftIDs[s.ID] = true
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"employee_count":   len(input.Employees),
			"shift_type_count": len(input.ShiftTypes),
		},
	})
}
