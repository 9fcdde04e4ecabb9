package models

import "time"

// Weekday identifies one of the seven planning columns of the scheduling grid.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists all planning days in calendar order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is one of the seven recognized weekdays.
func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// AssignmentStatus tracks an assignment through its workflow.
type AssignmentStatus string

const (
	StatusPlanned    AssignmentStatus = "planned"
	StatusConfirmed  AssignmentStatus = "confirmed"
	StatusInProgress AssignmentStatus = "in_progress"
	StatusCompleted  AssignmentStatus = "completed"
	StatusCancelled  AssignmentStatus = "cancelled"
)

// Employee is one row of the roster. Immutable during a planning session
// except for Availability.
type Employee struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	EmployeeNumber    string   `json:"employee_number"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone,omitempty"`
	Skills            []string `json:"skills"`
	Availability      bool     `json:"availability"`
	LocationID        string   `json:"location_id"`
	DepartmentID      string   `json:"department_id"`
	TeamID            string   `json:"team_id"`
	Role              string   `json:"role"`
	ContractType      string   `json:"contract_type"`
	PerformanceRating int      `json:"performance_rating"`
	CostPerHour       float64  `json:"cost_per_hour"`
}

// HasSkill reports whether the employee holds the named qualification.
func (e *Employee) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// ShiftType is a reusable shift definition from the catalog. Static reference
// data; never mutated by the engine.
type ShiftType struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	StartTime      string   `json:"start_time"` // "HH:MM"
	EndTime        string   `json:"end_time"`   // "HH:MM"
	RequiredSkills []string `json:"required_skills"`
	WorkerQuota    int      `json:"worker_quota"`
	Priority       int      `json:"priority"`
	EquipmentIDs   []string `json:"equipment_ids,omitempty"`
}

// ShiftAssignment binds one employee to one shift type on one weekday.
// RequiredSkills is a snapshot taken at assignment time; later catalog edits
// do not retroactively invalidate it.
type ShiftAssignment struct {
	ID             string           `json:"id"`
	EmployeeID     string           `json:"employee_id"`
	Day            Weekday          `json:"day"`
	ShiftTypeID    string           `json:"shift_type_id"`
	ShiftTypeName  string           `json:"shift_type_name"`
	RequiredSkills []string         `json:"required_skills"`
	BackupIDs      []string         `json:"backup_ids"`
	EquipmentIDs   []string         `json:"equipment_ids,omitempty"`
	Status         AssignmentStatus `json:"status"`
	AssignedBy     string           `json:"assigned_by"`
	AssignedAt     time.Time        `json:"assigned_at"`
	Notes          string           `json:"notes,omitempty"`
}

// Location is an organizational reference entry (a site).
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// Department is an organizational reference entry within a location.
type Department struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LocationID string `json:"location_id"`
}

// Team is an organizational reference entry within a department.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}

// Equipment is a piece of gear a shift type may be linked to.
type Equipment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

// SkillMatch is the advisory drag-over score. Percentage is 100 for a shift
// with no required skills; a full assignment still demands complete coverage.
type SkillMatch struct {
	Matched    int     `json:"matched"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// FilterOptions narrows the roster shown to a planner. Empty list fields and
// zero values impose no constraint; all dimensions combine with AND.
type FilterOptions struct {
	Locations     []string `json:"locations,omitempty"`
	Departments   []string `json:"departments,omitempty"`
	Teams         []string `json:"teams,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Roles         []string `json:"roles,omitempty"`
	ContractTypes []string `json:"contract_types,omitempty"`
	Availability  *bool    `json:"availability,omitempty"`
	MinRating     int      `json:"min_rating,omitempty"`
	MaxRating     int      `json:"max_rating,omitempty"`
	Search        string   `json:"search,omitempty"`
}

// GroupCount is one bucket of the organization statistics.
type GroupCount struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

// OrganizationStats aggregates the current roster and assignment set.
type OrganizationStats struct {
	TotalEmployees      int                   `json:"total_employees"`
	AvailableEmployees  int                   `json:"available_employees"`
	ByLocation          map[string]GroupCount `json:"by_location"`
	ByDepartment        map[string]GroupCount `json:"by_department"`
	ByTeam              map[string]GroupCount `json:"by_team"`
	AssignmentsByStatus map[string]int        `json:"assignments_by_status"`
}

// AssignRequest is one entry of a batch assignment call.
type AssignRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Day         Weekday `json:"day"`
	ShiftTypeID string  `json:"shift_type_id"`
}

// BatchResult reports the outcome of one AssignRequest. Exactly one of
// Assignment and Error is set.
type BatchResult struct {
	Request    AssignRequest    `json:"request"`
	Assignment *ShiftAssignment `json:"assignment,omitempty"`
	Error      string           `json:"error,omitempty"`
	ErrorCode  string           `json:"error_code,omitempty"`
}

// QuotaUsage reports how many workers occupy a shift type on a day relative
// to its advisory quota.
type QuotaUsage struct {
	ShiftTypeID string  `json:"shift_type_id"`
	Day         Weekday `json:"day"`
	Used        int     `json:"used"`
	Quota       int     `json:"quota"`
	Exceeded    bool    `json:"exceeded"`
}
