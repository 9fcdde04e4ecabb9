package planner

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planwerk/shiftboard-api/pkg/catalog"
	"github.com/planwerk/shiftboard-api/pkg/directory"
	"github.com/planwerk/shiftboard-api/pkg/models"
)

// maxBackups caps the backup list on every assignment.
const maxBackups = 2

// cellKey addresses one slot of the scheduling grid.
type cellKey struct {
	employeeID string
	day        models.Weekday
}

// Planner owns the assignment set for one planning session. All mutation goes
// through its methods so the one-assignment-per-cell invariant is enforced in
// a single place. Safe for concurrent use by HTTP handlers.
type Planner struct {
	mu          sync.RWMutex
	directory   *directory.Directory
	catalog     *catalog.Catalog
	assignments map[string]*models.ShiftAssignment
	cells       map[cellKey]string // occupied cell -> assignment id

	now   func() time.Time
	newID func() string
}

// New creates a planning session over the given roster and catalog.
func New(dir *directory.Directory, cat *catalog.Catalog) *Planner {
	return &Planner{
		directory:   dir,
		catalog:     cat,
		assignments: make(map[string]*models.ShiftAssignment),
		cells:       make(map[cellKey]string),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// CanAssign reports whether the employee may hold the shift: available and
// covering every required skill. Pure, no side effects.
func CanAssign(e *models.Employee, st *models.ShiftType) bool {
	if e == nil || st == nil || !e.Availability {
		return false
	}
	for _, skill := range st.RequiredSkills {
		if !e.HasSkill(skill) {
			return false
		}
	}
	return true
}

// MissingSkills returns the required skills the employee does not hold.
func MissingSkills(e *models.Employee, st *models.ShiftType) []string {
	var missing []string
	for _, skill := range st.RequiredSkills {
		if !e.HasSkill(skill) {
			missing = append(missing, skill)
		}
	}
	return missing
}

// SkillMatch scores how closely the employee matches the shift's skill set.
// Advisory only: the drag hint may show a partial match, but an assignment
// still requires full coverage.
func SkillMatch(e *models.Employee, st *models.ShiftType) models.SkillMatch {
	total := len(st.RequiredSkills)
	if total == 0 {
		return models.SkillMatch{Matched: 0, Total: 0, Percentage: 100.0}
	}
	matched := 0
	for _, skill := range st.RequiredSkills {
		if e.HasSkill(skill) {
			matched++
		}
	}
	return models.SkillMatch{
		Matched:    matched,
		Total:      total,
		Percentage: float64(matched) / float64(total) * 100.0,
	}
}

// SkillMatchFor resolves ids and scores the employee against the shift type.
func (p *Planner) SkillMatchFor(employeeID, shiftTypeID string) (models.SkillMatch, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	emp, ok := p.directory.ByID(employeeID)
	if !ok {
		return models.SkillMatch{}, errEmployeeNotFound(employeeID)
	}
	st, ok := p.catalog.ShiftTypeByID(shiftTypeID)
	if !ok {
		return models.SkillMatch{}, errShiftTypeNotFound(shiftTypeID)
	}
	return SkillMatch(emp, st), nil
}

// Assign places an employee into a cell. An existing occupant of the same
// cell is silently replaced. Returns the created assignment.
func (p *Planner) Assign(employeeID string, day models.Weekday, shiftTypeID, assignedBy string) (*models.ShiftAssignment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.assignLocked(employeeID, day, shiftTypeID, assignedBy)
}

// CompareAndAssign is Assign with an optimistic concurrency check: the caller
// states which assignment id it believes occupies the cell ("" for an empty
// cell). A mismatch rejects the mutation with a conflict so the caller can
// re-read and retry.
func (p *Planner) CompareAndAssign(employeeID string, day models.Weekday, shiftTypeID, assignedBy, expectedOccupantID string) (*models.ShiftAssignment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !day.Valid() {
		return nil, errInvalidDay(string(day))
	}
	actual := p.cells[cellKey{employeeID, day}]
	if actual != expectedOccupantID {
		return nil, errConflict(expectedOccupantID, actual)
	}
	return p.assignLocked(employeeID, day, shiftTypeID, assignedBy)
}

func (p *Planner) assignLocked(employeeID string, day models.Weekday, shiftTypeID, assignedBy string) (*models.ShiftAssignment, error) {
	if !day.Valid() {
		return nil, errInvalidDay(string(day))
	}

	emp, ok := p.directory.ByID(employeeID)
	if !ok {
		return nil, errEmployeeNotFound(employeeID)
	}
	st, ok := p.catalog.ShiftTypeByID(shiftTypeID)
	if !ok {
		return nil, errShiftTypeNotFound(shiftTypeID)
	}
	if err := p.checkEligibility(emp, st); err != nil {
		return nil, err
	}

	// Silent overwrite: the cell is a single slot.
	key := cellKey{employeeID, day}
	if occupantID, occupied := p.cells[key]; occupied {
		delete(p.assignments, occupantID)
		delete(p.cells, key)
	}

	asgn := &models.ShiftAssignment{
		ID:             p.newID(),
		EmployeeID:     employeeID,
		Day:            day,
		ShiftTypeID:    st.ID,
		ShiftTypeName:  st.Name,
		RequiredSkills: append([]string(nil), st.RequiredSkills...),
		BackupIDs:      p.backupCandidates(emp, st),
		EquipmentIDs:   append([]string(nil), st.EquipmentIDs...),
		Status:         models.StatusPlanned,
		AssignedBy:     assignedBy,
		AssignedAt:     p.now(),
	}
	p.assignments[asgn.ID] = asgn
	p.cells[key] = asgn.ID
	return asgn, nil
}

func (p *Planner) checkEligibility(emp *models.Employee, st *models.ShiftType) error {
	if !emp.Availability {
		return errEmployeeUnavailable(emp.ID)
	}
	if missing := MissingSkills(emp, st); len(missing) > 0 {
		return errSkillMismatch(emp.ID, missing)
	}
	return nil
}

// backupCandidates picks up to two stand-ins for the assignee: same
// department and location, available, fully qualified. Candidates are ordered
// by performance rating descending, then id, so the choice is deterministic.
func (p *Planner) backupCandidates(assignee *models.Employee, st *models.ShiftType) []string {
	var pool []*models.Employee
	for _, cand := range p.directory.All() {
		if cand.ID == assignee.ID {
			continue
		}
		if cand.DepartmentID != assignee.DepartmentID || cand.LocationID != assignee.LocationID {
			continue
		}
		if !CanAssign(cand, st) {
			continue
		}
		pool = append(pool, cand)
	}

	sort.Slice(pool, func(i, j int) bool {
		if pool[i].PerformanceRating != pool[j].PerformanceRating {
			return pool[i].PerformanceRating > pool[j].PerformanceRating
		}
		return pool[i].ID < pool[j].ID
	})

	backups := make([]string, 0, maxBackups)
	for _, cand := range pool {
		if len(backups) == maxBackups {
			break
		}
		backups = append(backups, cand.ID)
	}
	return backups
}

// Move relocates an existing assignment to a new cell. The destination is
// validated first; only a valid destination deletes the source, so a rejected
// move leaves the source assignment untouched.
func (p *Planner) Move(employeeID string, day models.Weekday, shiftTypeID, assignedBy, sourceAssignmentID string) (*models.ShiftAssignment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !day.Valid() {
		return nil, errInvalidDay(string(day))
	}
	emp, ok := p.directory.ByID(employeeID)
	if !ok {
		return nil, errEmployeeNotFound(employeeID)
	}
	st, ok := p.catalog.ShiftTypeByID(shiftTypeID)
	if !ok {
		return nil, errShiftTypeNotFound(shiftTypeID)
	}
	if err := p.checkEligibility(emp, st); err != nil {
		return nil, err
	}

	// Destination is valid; now the source may go.
	p.removeLocked(sourceAssignmentID)
	return p.assignLocked(employeeID, day, shiftTypeID, assignedBy)
}

// Remove deletes an assignment. Removing an unknown id is a no-op.
func (p *Planner) Remove(assignmentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.removeLocked(assignmentID)
}

func (p *Planner) removeLocked(assignmentID string) {
	asgn, ok := p.assignments[assignmentID]
	if !ok {
		return
	}
	delete(p.assignments, assignmentID)
	key := cellKey{asgn.EmployeeID, asgn.Day}
	if p.cells[key] == assignmentID {
		delete(p.cells, key)
	}
}

// GetAssignmentForCell returns the current occupant of a cell, if any.
func (p *Planner) GetAssignmentForCell(employeeID string, day models.Weekday) (*models.ShiftAssignment, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	id, ok := p.cells[cellKey{employeeID, day}]
	if !ok {
		return nil, false
	}
	asgn, ok := p.assignments[id]
	return asgn, ok
}

// GetAssignment returns an assignment by id, including cancelled ones.
func (p *Planner) GetAssignment(assignmentID string) (*models.ShiftAssignment, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	asgn, ok := p.assignments[assignmentID]
	return asgn, ok
}

// Assignments returns the full assignment set ordered by employee id and day,
// for the scheduling surface to re-render from.
func (p *Planner) Assignments() []*models.ShiftAssignment {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*models.ShiftAssignment, 0, len(p.assignments))
	for _, asgn := range p.assignments {
		out = append(out, asgn)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeID != out[j].EmployeeID {
			return out[i].EmployeeID < out[j].EmployeeID
		}
		return dayIndex(out[i].Day) < dayIndex(out[j].Day)
	})
	return out
}

func dayIndex(day models.Weekday) int {
	for i, d := range models.Weekdays {
		if d == day {
			return i
		}
	}
	return len(models.Weekdays)
}

// BatchAssign applies Assign to each request independently and reports a
// per-request result in request order. One failure does not block the rest.
func (p *Planner) BatchAssign(requests []models.AssignRequest, assignedBy string) []models.BatchResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	results := make([]models.BatchResult, 0, len(requests))
	for _, req := range requests {
		res := models.BatchResult{Request: req}
		asgn, err := p.assignLocked(req.EmployeeID, req.Day, req.ShiftTypeID, assignedBy)
		if err != nil {
			res.Error = err.Error()
			res.ErrorCode = string(CodeOf(err))
		} else {
			res.Assignment = asgn
		}
		results = append(results, res)
	}
	return results
}

// SetAvailability flips the one roster attribute that may change during a
// session. Existing assignments are not revoked; availability gates new
// placements only.
func (p *Planner) SetAvailability(employeeID string, available bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	emp, ok := p.directory.ByID(employeeID)
	if !ok {
		return errEmployeeNotFound(employeeID)
	}
	emp.Availability = available
	return nil
}

// QuotaUsage counts the non-cancelled assignments of a shift type on a day
// against its worker quota. Quota is advisory: exceeding it never blocks an
// assignment, the surface just renders a warning.
func (p *Planner) QuotaUsage(shiftTypeID string, day models.Weekday) (models.QuotaUsage, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	st, ok := p.catalog.ShiftTypeByID(shiftTypeID)
	if !ok {
		return models.QuotaUsage{}, errShiftTypeNotFound(shiftTypeID)
	}

	used := 0
	for _, asgn := range p.assignments {
		if asgn.ShiftTypeID == shiftTypeID && asgn.Day == day && asgn.Status != models.StatusCancelled {
			used++
		}
	}
	return models.QuotaUsage{
		ShiftTypeID: shiftTypeID,
		Day:         day,
		Used:        used,
		Quota:       st.WorkerQuota,
		Exceeded:    st.WorkerQuota > 0 && used > st.WorkerQuota,
	}, nil
}

// OrganizationStats aggregates roster counts by location, department and team
// plus assignment counts by status. Pure reducer over current state.
func (p *Planner) OrganizationStats() models.OrganizationStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stats := models.OrganizationStats{
		ByLocation:          make(map[string]models.GroupCount),
		ByDepartment:        make(map[string]models.GroupCount),
		ByTeam:              make(map[string]models.GroupCount),
		AssignmentsByStatus: make(map[string]int),
	}
	for _, emp := range p.directory.All() {
		stats.TotalEmployees++
		if emp.Availability {
			stats.AvailableEmployees++
		}
		bump(stats.ByLocation, emp.LocationID, emp.Availability)
		bump(stats.ByDepartment, emp.DepartmentID, emp.Availability)
		bump(stats.ByTeam, emp.TeamID, emp.Availability)
	}
	for _, asgn := range p.assignments {
		stats.AssignmentsByStatus[string(asgn.Status)]++
	}
	return stats
}

func bump(m map[string]models.GroupCount, key string, available bool) {
	c := m[key]
	c.Total++
	if available {
		c.Available++
	}
	m[key] = c
}
