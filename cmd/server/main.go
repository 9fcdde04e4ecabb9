package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/planwerk/shiftboard-api/pkg/auth"
	"github.com/planwerk/shiftboard-api/pkg/catalog"
	"github.com/planwerk/shiftboard-api/pkg/database"
	"github.com/planwerk/shiftboard-api/pkg/directory"
	"github.com/planwerk/shiftboard-api/pkg/handlers"
	"github.com/planwerk/shiftboard-api/pkg/planner"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)

	if os.Getenv("SEED_DEMO_DATA") != "" {
		if err := database.SeedDemoData(db); err != nil {
			log.Fatalf("could not seed demo data: %v", err)
		}
	}

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
	session := planner.New(dir, cat)

	h := &handlers.Handler{DB: db, Planner: session, Directory: dir, Catalog: cat}

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Shiftboard Planning API",
			"version": "1.3.0",
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Planner Endpoints
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

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
