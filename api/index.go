package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/planwerk/shiftboard-api/pkg/auth"
	"github.com/planwerk/shiftboard-api/pkg/catalog"
	"github.com/planwerk/shiftboard-api/pkg/database"
	"github.com/planwerk/shiftboard-api/pkg/directory"
	"github.com/planwerk/shiftboard-api/pkg/handlers"
	"github.com/planwerk/shiftboard-api/pkg/planner"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	// Initialize DB and the planning session
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)

	locations, departments, teams, equipment, shiftTypes, err := database.LoadReferenceData(db)
	if err != nil {
		log.Fatalf("could not load reference data: %v", err)
	}
	roster, err := database.LoadRoster(db)
	if err != nil {
		log.Fatalf("could not load roster: %v", err)
	}

	cat := catalog.New(locations, departments, teams, equipment, shiftTypes)
	dir := directory.New(roster)
	h := &handlers.Handler{DB: db, Planner: planner.New(dir, cat), Directory: dir, Catalog: cat}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Shiftboard Planning API (Vercel)",
			"version": "1.3.0",
		})
	})

	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/assignments", h.CreateAssignment)
		api.POST("/assignments/batch", h.BatchAssign)
		api.POST("/assignments/move", h.MoveAssignment)
		api.DELETE("/assignments/:id", h.DeleteAssignment)
		api.GET("/assignments", h.ListAssignments)
		api.POST("/assignments/:id/:action", h.TransitionAssignment)
		api.GET("/cells/:employeeID/:day", h.GetCell)
		api.GET("/skill-match", h.SkillMatch)
		api.GET("/quota", h.GetQuotaUsage)
		api.GET("/employees", h.ListEmployees)
		api.POST("/employees/filter", h.FilterEmployees)
		api.PUT("/employees/:id/availability", h.SetAvailability)
		api.GET("/shift-types", h.ListShiftTypes)
		api.GET("/stats", h.OrganizationStats)
		api.POST("/validate", h.ValidateRoster)
		api.GET("/usage", h.GetMyUsage)
	}
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}
