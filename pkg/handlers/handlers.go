package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/planwerk/shiftboard-api/pkg/auth"
	"github.com/planwerk/shiftboard-api/pkg/catalog"
	"github.com/planwerk/shiftboard-api/pkg/database"
	"github.com/planwerk/shiftboard-api/pkg/directory"
	"github.com/planwerk/shiftboard-api/pkg/models"
	"github.com/planwerk/shiftboard-api/pkg/planner"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB        *gorm.DB
	Planner   *planner.Planner
	Directory *directory.Directory
	Catalog   *catalog.Catalog
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// APIKeyMiddleware verifies the API key for planner routes using HMAC
func (h *Handler) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Authorization")
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API Key required"})
			c.Abort()
			return
		}

		if len(key) > 7 && key[:7] == "Bearer " {
			key = key[7:]
		}

		plannerID, err := auth.VerifyHMACKey(key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key signature"})
			c.Abort()
			return
		}

		// Fetch or create API key record to track usage
		var apiKey database.APIKey
		h.DB.Where(database.APIKey{Key: key}).FirstOrCreate(&apiKey, database.APIKey{
			Key:       key,
			Name:      plannerID,
			RateLimit: 10000,
		})

		c.Set("apiKey", &apiKey)
		c.Set("plannerID", plannerID)
		c.Next()
	}
}

// plannerIdentity returns the authenticated planner id for audit fields.
func plannerIdentity(c *gin.Context) string {
	if id, ok := c.Get("plannerID"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return "unknown"
}

// respondEngineError maps planner error codes onto HTTP statuses.
func respondEngineError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch planner.CodeOf(err) {
	case planner.CodeEmployeeNotFound, planner.CodeShiftTypeNotFound, planner.CodeAssignmentNotFound:
		status = http.StatusNotFound
	case planner.CodeConflict, planner.CodeInvalidTransition:
		status = http.StatusConflict
	case planner.CodeSkillMismatch, planner.CodeEmployeeUnavailable:
		status = http.StatusUnprocessableEntity
	}

	body := gin.H{"error": err.Error(), "code": string(planner.CodeOf(err))}
	var pe *planner.Error
	if errors.As(err, &pe) && len(pe.MissingSkills) > 0 {
		body["missing_skills"] = pe.MissingSkills
	}
	c.JSON(status, body)
}

// assignRequest is the payload for single-cell placement.
type assignRequest struct {
	EmployeeID  string         `json:"employee_id" binding:"required"`
	Day         models.Weekday `json:"day" binding:"required"`
	ShiftTypeID string         `json:"shift_type_id" binding:"required"`

	// ExpectedOccupantID turns the call into a compare-and-swap: set it to
	// the assignment id last seen in the cell, or "" for an empty cell.
	ExpectedOccupantID *string `json:"expected_occupant_id,omitempty"`
}

// CreateAssignment handles a drag-drop placement from the scheduling surface
func (h *Handler) CreateAssignment(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		asgn *models.ShiftAssignment
		err  error
	)
	if req.ExpectedOccupantID != nil {
		asgn, err = h.Planner.CompareAndAssign(req.EmployeeID, req.Day, req.ShiftTypeID, plannerIdentity(c), *req.ExpectedOccupantID)
	} else {
		asgn, err = h.Planner.Assign(req.EmployeeID, req.Day, req.ShiftTypeID, plannerIdentity(c))
	}
	if err != nil {
		respondEngineError(c, err)
		return
	}

	h.RecordUsage(c, 1)

	quota, _ := h.Planner.QuotaUsage(req.ShiftTypeID, req.Day)
	c.JSON(http.StatusCreated, gin.H{"assignment": asgn, "quota": quota})
}

// moveRequest is the payload for relocating an existing assignment.
type moveRequest struct {
	EmployeeID         string         `json:"employee_id" binding:"required"`
	Day                models.Weekday `json:"day" binding:"required"`
	ShiftTypeID        string         `json:"shift_type_id" binding:"required"`
	SourceAssignmentID string         `json:"source_assignment_id" binding:"required"`
}

// MoveAssignment relocates an assignment; the destination is validated before
// the source is touched
func (h *Handler) MoveAssignment(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asgn, err := h.Planner.Move(req.EmployeeID, req.Day, req.ShiftTypeID, plannerIdentity(c), req.SourceAssignmentID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	h.RecordUsage(c, 1)
	c.JSON(http.StatusOK, gin.H{"assignment": asgn})
}

// DeleteAssignment removes an assignment; unknown ids are a silent no-op
func (h *Handler) DeleteAssignment(c *gin.Context) {
	h.Planner.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Assignment removed"})
}

// ListAssignments returns the full assignment set for a surface re-render
func (h *Handler) ListAssignments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assignments": h.Planner.Assignments()})
}

// GetCell returns the occupant of one (employee, day) cell
func (h *Handler) GetCell(c *gin.Context) {
	day := models.Weekday(c.Param("day"))
	if !day.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day: " + c.Param("day")})
		return
	}

	asgn, ok := h.Planner.GetAssignmentForCell(c.Param("employeeID"), day)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"assignment": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignment": asgn})
}

// BatchAssign applies independent placements and reports per-request results
func (h *Handler) BatchAssign(c *gin.Context) {
	var req struct {
		Requests []models.AssignRequest `json:"requests" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := h.Planner.BatchAssign(req.Requests, plannerIdentity(c))

	succeeded := 0
	for _, r := range results {
		if r.Assignment != nil {
			succeeded++
		}
	}
	h.RecordUsage(c, succeeded)

	c.JSON(http.StatusOK, gin.H{
		"results":   results,
		"succeeded": succeeded,
		"failed":    len(results) - succeeded,
	})
}

// SkillMatch returns the advisory drag-over score for an employee and shift type
func (h *Handler) SkillMatch(c *gin.Context) {
	employeeID := c.Query("employee_id")
	shiftTypeID := c.Query("shift_type_id")
	if employeeID == "" || shiftTypeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id and shift_type_id are required"})
		return
	}

	match, err := h.Planner.SkillMatchFor(employeeID, shiftTypeID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skill_match": match})
}

// TransitionAssignment drives the status workflow: confirm, start, complete, cancel
func (h *Handler) TransitionAssignment(c *gin.Context) {
	id := c.Param("id")

	var err error
	switch action := c.Param("action"); action {
	case "confirm":
		err = h.Planner.Confirm(id)
	case "start":
		err = h.Planner.Start(id)
	case "complete":
		err = h.Planner.Complete(id)
	case "cancel":
		err = h.Planner.Cancel(id)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown transition: " + action})
		return
	}
	if err != nil {
		respondEngineError(c, err)
		return
	}

	asgn, _ := h.Planner.GetAssignment(id)
	c.JSON(http.StatusOK, gin.H{"assignment": asgn})
}

// GetQuotaUsage reports advisory quota consumption for a shift type and day
func (h *Handler) GetQuotaUsage(c *gin.Context) {
	day := models.Weekday(c.Query("day"))
	if !day.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day: " + c.Query("day")})
		return
	}

	usage, err := h.Planner.QuotaUsage(c.Query("shift_type_id"), day)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quota": usage})
}

// RecordUsage records API usage in the database using an efficient upsert
func (h *Handler) RecordUsage(c *gin.Context, assignmentCount int) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	today := time.Now().Format("2006-01-02")

	// Use OnConflict for a single-query upsert (supported by both Postgres and SQLite)
	h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count":     gorm.Expr("request_count + ?", 1),
			"total_assignments": gorm.Expr("total_assignments + ?", assignmentCount),
			"total_employees":   gorm.Expr("total_employees + ?", h.Directory.Len()),
		}),
	}).Create(&database.APIUsage{
		KeyID:            apiKey.ID,
		Date:             today,
		RequestCount:     1,
		TotalAssignments: assignmentCount,
		TotalEmployees:   h.Directory.Len(),
	})
}
