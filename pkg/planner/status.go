package planner

import "github.com/planwerk/shiftboard-api/pkg/models"

// The engine itself only ever produces planned assignments. The transitions
// below belong to the day-of workflow (supervisor confirmation, tracking) and
// each validates the expected prior status.

// Confirm moves a planned assignment to confirmed.
func (p *Planner) Confirm(assignmentID string) error {
	return p.transition(assignmentID, []models.AssignmentStatus{models.StatusPlanned}, models.StatusConfirmed)
}

// Start moves a confirmed assignment to in_progress.
func (p *Planner) Start(assignmentID string) error {
	return p.transition(assignmentID, []models.AssignmentStatus{models.StatusConfirmed}, models.StatusInProgress)
}

// Complete moves an in_progress assignment to completed.
func (p *Planner) Complete(assignmentID string) error {
	return p.transition(assignmentID, []models.AssignmentStatus{models.StatusInProgress}, models.StatusCompleted)
}

// Cancel terminates an assignment from any non-terminal status and vacates
// its cell; the record itself is kept for the session.
func (p *Planner) Cancel(assignmentID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	asgn, ok := p.assignments[assignmentID]
	if !ok {
		return errAssignmentNotFound(assignmentID)
	}
	switch asgn.Status {
	case models.StatusPlanned, models.StatusConfirmed, models.StatusInProgress:
	default:
		return errInvalidTransition(assignmentID, string(asgn.Status), string(models.StatusCancelled))
	}

	asgn.Status = models.StatusCancelled
	key := cellKey{asgn.EmployeeID, asgn.Day}
	if p.cells[key] == assignmentID {
		delete(p.cells, key)
	}
	return nil
}

func (p *Planner) transition(assignmentID string, from []models.AssignmentStatus, to models.AssignmentStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	asgn, ok := p.assignments[assignmentID]
	if !ok {
		return errAssignmentNotFound(assignmentID)
	}
	for _, f := range from {
		if asgn.Status == f {
			asgn.Status = to
			return nil
		}
	}
	return errInvalidTransition(assignmentID, string(asgn.Status), string(to))
}
