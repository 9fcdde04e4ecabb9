package database

import (
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/planwerk/shiftboard-api/pkg/models"
)

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table
type APIUsage struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	KeyID            uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date             string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount     int    `gorm:"default:0" json:"request_count"`
	TotalAssignments int    `gorm:"default:0" json:"total_assignments"`
	TotalEmployees   int    `gorm:"default:0" json:"total_employees"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Location represents the locations reference table
type Location struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
}

// Department represents the departments reference table
type Department struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	LocationID string `gorm:"index" json:"location_id"`
}

// Team represents the teams reference table
type Team struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	DepartmentID string `gorm:"index" json:"department_id"`
}

// Equipment represents the equipment reference table
type Equipment struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Kind string `json:"kind"`
}

// ShiftType represents the shift_types reference table. List columns are
// stored pipe-separated for SQLite/Postgres parity.
type ShiftType struct {
	ID             string `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null" json:"name"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	RequiredSkills string `json:"required_skills"`
	WorkerQuota    int    `gorm:"default:1" json:"worker_quota"`
	Priority       int    `gorm:"default:0" json:"priority"`
	EquipmentIDs   string `json:"equipment_ids"`
}

// Employee represents the employees roster table.
type Employee struct {
	ID                string  `gorm:"primaryKey" json:"id"`
	Name              string  `gorm:"not null" json:"name"`
	EmployeeNumber    string  `gorm:"index" json:"employee_number"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Skills            string  `json:"skills"`
	Availability      bool    `gorm:"default:true" json:"availability"`
	LocationID        string  `gorm:"index" json:"location_id"`
	DepartmentID      string  `gorm:"index" json:"department_id"`
	TeamID            string  `gorm:"index" json:"team_id"`
	Role              string  `json:"role"`
	ContractType      string  `json:"contract_type"`
	PerformanceRating int     `gorm:"default:3" json:"performance_rating"`
	CostPerHour       float64 `json:"cost_per_hour"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "shiftboard.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&APIKey{}, &APIUsage{}, &MasterUser{},
		&Location{}, &Department{}, &Team{}, &Equipment{}, &ShiftType{}, &Employee{})

	return db
}

// LoadReferenceData reads the organizational catalog tables into domain values.
func LoadReferenceData(db *gorm.DB) ([]models.Location, []models.Department, []models.Team, []models.Equipment, []models.ShiftType, error) {
	var (
		locRows   []Location
		deptRows  []Department
		teamRows  []Team
		equipRows []Equipment
		shiftRows []ShiftType
	)
	if err := db.Order("id").Find(&locRows).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}
	if err := db.Order("id").Find(&deptRows).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}
	if err := db.Order("id").Find(&teamRows).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}
	if err := db.Order("id").Find(&equipRows).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}
	if err := db.Order("id").Find(&shiftRows).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}

	locations := make([]models.Location, 0, len(locRows))
	for _, r := range locRows {
		locations = append(locations, models.Location{ID: r.ID, Name: r.Name, Address: r.Address})
	}
	departments := make([]models.Department, 0, len(deptRows))
	for _, r := range deptRows {
		departments = append(departments, models.Department{ID: r.ID, Name: r.Name, LocationID: r.LocationID})
	}
	teams := make([]models.Team, 0, len(teamRows))
	for _, r := range teamRows {
		teams = append(teams, models.Team{ID: r.ID, Name: r.Name, DepartmentID: r.DepartmentID})
	}
	equipment := make([]models.Equipment, 0, len(equipRows))
	for _, r := range equipRows {
		equipment = append(equipment, models.Equipment{ID: r.ID, Name: r.Name, Kind: r.Kind})
	}
	shiftTypes := make([]models.ShiftType, 0, len(shiftRows))
	for _, r := range shiftRows {
		shiftTypes = append(shiftTypes, models.ShiftType{
			ID:             r.ID,
			Name:           r.Name,
			StartTime:      r.StartTime,
			EndTime:        r.EndTime,
			RequiredSkills: splitList(r.RequiredSkills),
			WorkerQuota:    r.WorkerQuota,
			Priority:       r.Priority,
			EquipmentIDs:   splitList(r.EquipmentIDs),
		})
	}
	return locations, departments, teams, equipment, shiftTypes, nil
}

// LoadRoster reads the employees table into domain values.
func LoadRoster(db *gorm.DB) ([]models.Employee, error) {
	var rows []Employee
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	employees := make([]models.Employee, 0, len(rows))
	for _, r := range rows {
		employees = append(employees, models.Employee{
			ID:                r.ID,
			Name:              r.Name,
			EmployeeNumber:    r.EmployeeNumber,
			Email:             r.Email,
			Phone:             r.Phone,
			Skills:            splitList(r.Skills),
			Availability:      r.Availability,
			LocationID:        r.LocationID,
			DepartmentID:      r.DepartmentID,
			TeamID:            r.TeamID,
			Role:              r.Role,
			ContractType:      r.ContractType,
			PerformanceRating: r.PerformanceRating,
			CostPerHour:       r.CostPerHour,
		})
	}
	return employees, nil
}

// splitList decodes a pipe-separated column into a string slice.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinList encodes a string slice into the pipe-separated column format.
func JoinList(values []string) string {
	return strings.Join(values, "|")
}
