package attendance

import "context"

// AttendanceService defines business logic for the attendance ledger
type AttendanceService interface {
	// Mark records the employee's attendance for a day. Marking the same
	// (employee, date) pair again overwrites the status in place; the result
	// reports whether the record was created or updated.
	Mark(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResult, error)

	// ListForEmployee returns the employee's records, newest date first,
	// optionally restricted to an inclusive date range
	ListForEmployee(ctx context.Context, req ListAttendanceRequest) ([]AttendanceResponse, error)

	// SummaryForEmployee returns present/absent/total counts over all of the
	// employee's records
	SummaryForEmployee(ctx context.Context, employeeCode string) (SummaryResponse, error)
}
