package planner

import (
	"testing"

	"github.com/planwerk/shiftboard-api/pkg/models"
)

func plannedAssignment(t *testing.T, p *Planner) *models.ShiftAssignment {
	t.Helper()
	asgn, err := p.Assign("emp-anna", models.Monday, "shift-early", "planner-1")
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	return asgn
}

func TestStatusWorkflowHappyPath(t *testing.T) {
	p := newTestPlanner()
	asgn := plannedAssignment(t, p)

	steps := []struct {
		name string
		do   func(string) error
		want models.AssignmentStatus
	}{
		{"confirm", p.Confirm, models.StatusConfirmed},
		{"start", p.Start, models.StatusInProgress},
		{"complete", p.Complete, models.StatusCompleted},
	}
	for _, step := range steps {
		if err := step.do(asgn.ID); err != nil {
			t.Fatalf("%s failed: %v", step.name, err)
		}
		got, _ := p.GetAssignment(asgn.ID)
		if got.Status != step.want {
			t.Errorf("after %s: expected %s, got %s", step.name, step.want, got.Status)
		}
	}
}

func TestStatusWorkflowRejectsSkippedSteps(t *testing.T) {
	p := newTestPlanner()
	asgn := plannedAssignment(t, p)

	// planned -> in_progress and planned -> completed are not allowed.
	if err := p.Start(asgn.ID); CodeOf(err) != CodeInvalidTransition {
		t.Errorf("expected INVALID_TRANSITION for start from planned, got %v", err)
	}
	if err := p.Complete(asgn.ID); CodeOf(err) != CodeInvalidTransition {
		t.Errorf("expected INVALID_TRANSITION for complete from planned, got %v", err)
	}

	// A completed assignment is terminal.
	if err := p.Confirm(asgn.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if err := p.Start(asgn.ID); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := p.Complete(asgn.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if err := p.Cancel(asgn.ID); CodeOf(err) != CodeInvalidTransition {
		t.Errorf("expected INVALID_TRANSITION for cancel from completed, got %v", err)
	}
}

func TestCancelVacatesCell(t *testing.T) {
	p := newTestPlanner()
	asgn := plannedAssignment(t, p)

	if err := p.Cancel(asgn.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, ok := p.GetAssignmentForCell("emp-anna", models.Monday); ok {
		t.Errorf("cancelled assignment must vacate the cell")
	}

	// The record survives for the session with cancelled status.
	got, ok := p.GetAssignment(asgn.ID)
	if !ok || got.Status != models.StatusCancelled {
		t.Errorf("expected cancelled record to remain, got %+v", got)
	}

	// The cell is a free slot again.
	if _, err := p.Assign("emp-anna", models.Monday, "shift-open", "planner-1"); err != nil {
		t.Errorf("cell should be assignable after cancel, got %v", err)
	}
}

func TestTransitionUnknownAssignment(t *testing.T) {
	p := newTestPlanner()

	if err := p.Confirm("no-such-id"); CodeOf(err) != CodeAssignmentNotFound {
		t.Errorf("expected ASSIGNMENT_NOT_FOUND, got %v", err)
	}
	if err := p.Cancel("no-such-id"); CodeOf(err) != CodeAssignmentNotFound {
		t.Errorf("expected ASSIGNMENT_NOT_FOUND, got %v", err)
	}
}
