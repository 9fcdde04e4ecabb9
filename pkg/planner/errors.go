package planner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode categorizes engine errors so the HTTP layer can map them to
// statuses and user feedback without string matching.
type ErrorCode string

const (
	// CodeEmployeeNotFound: the referenced employee id is not in the directory.
	CodeEmployeeNotFound ErrorCode = "EMPLOYEE_NOT_FOUND"

	// CodeShiftTypeNotFound: the shift type id is not backed by the catalog.
	CodeShiftTypeNotFound ErrorCode = "SHIFT_TYPE_NOT_FOUND"

	// CodeEmployeeUnavailable: the employee's availability flag is off.
	CodeEmployeeUnavailable ErrorCode = "EMPLOYEE_UNAVAILABLE"

	// CodeSkillMismatch: the employee lacks one or more required skills.
	CodeSkillMismatch ErrorCode = "SKILL_MISMATCH"

	// CodeConflict: the cell's occupant differs from the caller's expectation.
	CodeConflict ErrorCode = "CONFLICT"

	// CodeInvalidTransition: the assignment is not in the expected prior status.
	CodeInvalidTransition ErrorCode = "INVALID_TRANSITION"

	// CodeAssignmentNotFound: a workflow transition referenced an unknown
	// assignment. Remove is exempt and stays a no-op.
	CodeAssignmentNotFound ErrorCode = "ASSIGNMENT_NOT_FOUND"

	// CodeInvalidDay: the day is not one of the seven weekdays.
	CodeInvalidDay ErrorCode = "INVALID_DAY"
)

// Error is the engine's error type. Every rejected mutation returns one of
// these and leaves state unchanged.
type Error struct {
	Code    ErrorCode
	Message string

	// MissingSkills is set for CodeSkillMismatch.
	MissingSkills []string

	// Expected and Actual identify cell occupants for CodeConflict.
	// Empty string means "empty cell".
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.MissingSkills) > 0 {
		return fmt.Sprintf("%s: %s (missing: %s)", e.Code, e.Message, strings.Join(e.MissingSkills, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf extracts the ErrorCode from err, or "" if err is not an engine error.
func CodeOf(err error) ErrorCode {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsSkillMismatch reports whether err is a skill mismatch rejection.
func IsSkillMismatch(err error) bool {
	return CodeOf(err) == CodeSkillMismatch
}

// IsConflict reports whether err is a compare-and-swap conflict.
func IsConflict(err error) bool {
	return CodeOf(err) == CodeConflict
}

func errEmployeeNotFound(id string) *Error {
	return &Error{Code: CodeEmployeeNotFound, Message: "employee " + id + " not found"}
}

func errShiftTypeNotFound(id string) *Error {
	return &Error{Code: CodeShiftTypeNotFound, Message: "shift type " + id + " not found in catalog"}
}

func errEmployeeUnavailable(id string) *Error {
	return &Error{Code: CodeEmployeeUnavailable, Message: "employee " + id + " is not available"}
}

func errSkillMismatch(employeeID string, missing []string) *Error {
	return &Error{
		Code:          CodeSkillMismatch,
		Message:       "employee " + employeeID + " lacks required skills",
		MissingSkills: missing,
	}
}

func errConflict(expected, actual string) *Error {
	return &Error{
		Code:     CodeConflict,
		Message:  "cell occupant changed since last read",
		Expected: expected,
		Actual:   actual,
	}
}

func errAssignmentNotFound(id string) *Error {
	return &Error{Code: CodeAssignmentNotFound, Message: "assignment " + id + " not found"}
}

func errInvalidTransition(id string, from, to string) *Error {
	return &Error{
		Code:    CodeInvalidTransition,
		Message: fmt.Sprintf("assignment %s cannot move from %s to %s", id, from, to),
	}
}

func errInvalidDay(day string) *Error {
	return &Error{Code: CodeInvalidDay, Message: "invalid day " + day}
}
