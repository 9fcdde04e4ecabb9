package directory

import (
	"strings"

	"github.com/planwerk/shiftboard-api/pkg/models"
)

// Directory holds the employee roster for a planning session and answers
// the organizational lookups the assignment engine needs.
type Directory struct {
	byID  map[string]*models.Employee
	order []*models.Employee
}

// New builds a Directory from a roster slice. Roster order is preserved for
// listing; lookups are by id.
func New(employees []models.Employee) *Directory {
	d := &Directory{
		byID:  make(map[string]*models.Employee, len(employees)),
		order: make([]*models.Employee, 0, len(employees)),
	}
	for i := range employees {
		emp := &employees[i]
		d.byID[emp.ID] = emp
		d.order = append(d.order, emp)
	}
	return d
}

// ByID returns the employee with the given id.
func (d *Directory) ByID(id string) (*models.Employee, bool) {
	e, ok := d.byID[id]
	return e, ok
}

// All returns the full roster in load order.
func (d *Directory) All() []*models.Employee {
	return d.order
}

// Len returns the roster size.
func (d *Directory) Len() int {
	return len(d.order)
}

// LocationOf returns the location id of an employee.
func (d *Directory) LocationOf(employeeID string) (string, bool) {
	e, ok := d.byID[employeeID]
	if !ok {
		return "", false
	}
	return e.LocationID, true
}

// DepartmentOf returns the department id of an employee.
func (d *Directory) DepartmentOf(employeeID string) (string, bool) {
	e, ok := d.byID[employeeID]
	if !ok {
		return "", false
	}
	return e.DepartmentID, true
}

// Filter evaluates opts against every employee and returns those passing all
// non-empty dimensions. A nil or zero-valued FilterOptions returns the input
// unchanged; an empty result is a valid outcome.
func Filter(employees []*models.Employee, opts models.FilterOptions) []*models.Employee {
	out := make([]*models.Employee, 0, len(employees))
	for _, e := range employees {
		if Matches(e, opts) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether a single employee passes every filter dimension.
func Matches(e *models.Employee, opts models.FilterOptions) bool {
	if !contains(opts.Locations, e.LocationID) {
		return false
	}
	if !contains(opts.Departments, e.DepartmentID) {
		return false
	}
	if !contains(opts.Teams, e.TeamID) {
		return false
	}
	if !contains(opts.Roles, e.Role) {
		return false
	}
	if !contains(opts.ContractTypes, e.ContractType) {
		return false
	}
	if !hasAnySkill(e, opts.Skills) {
		return false
	}
	if opts.Availability != nil && e.Availability != *opts.Availability {
		return false
	}
	if opts.MinRating > 0 && e.PerformanceRating < opts.MinRating {
		return false
	}
	if opts.MaxRating > 0 && e.PerformanceRating > opts.MaxRating {
		return false
	}
	if !matchesSearch(e, opts.Search) {
		return false
	}
	return true
}

// contains is the pass-through inclusion test: an empty list constrains nothing.
func contains(list []string, value string) bool {
	if len(list) == 0 {
		return true
	}
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// hasAnySkill passes when no skills are requested or the employee holds at
// least one of them.
func hasAnySkill(e *models.Employee, skills []string) bool {
	if len(skills) == 0 {
		return true
	}
	for _, s := range skills {
		if e.HasSkill(s) {
			return true
		}
	}
	return false
}

// matchesSearch applies the free-text query against name, employee number
// and email, case-insensitively.
func matchesSearch(e *models.Employee, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.EmployeeNumber), q) ||
		strings.Contains(strings.ToLower(e.Email), q)
}
