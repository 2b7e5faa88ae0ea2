package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert writes the day's attendance fact in a single atomic statement.
	// The returned bool is true when a new row was inserted and false when an
	// existing row's status was overwritten.
	Upsert(ctx context.Context, rec Attendance) (Attendance, bool, error)

	// ListByEmployee returns the employee's records ordered by date
	// descending, optionally bounded inclusively on either side.
	ListByEmployee(ctx context.Context, employeeCode string, start, end *time.Time) ([]Attendance, error)

	// SummaryByEmployee computes present/absent/total counts in one query.
	SummaryByEmployee(ctx context.Context, employeeCode string) (Summary, error)
}
