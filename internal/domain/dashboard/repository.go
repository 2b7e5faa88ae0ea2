package dashboard

import (
	"context"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
)

// DailyCounts combines present/absent counts for a single date
type DailyCounts struct {
	Present int64
	Absent  int64
}

// ActivityRecord is a recent attendance write joined with its employee
type ActivityRecord struct {
	RecordID     int64
	EmployeeCode string
	FullName     string
	Date         time.Time
	Status       string
	MarkedAt     time.Time
}

// DashboardRepository defines the read-side queries behind the aggregation
// engine. It owns no state; every call recomputes from the current ledger.
type DashboardRepository interface {
	// CountEmployees returns the total number of employees
	CountEmployees(ctx context.Context) (int64, error)

	// GetDailyCounts returns present/absent counts for exactly one date
	GetDailyCounts(ctx context.Context, date time.Time) (DailyCounts, error)

	// GetDailyCountsRange returns counts for every date in [start, end] that
	// has at least one record, keyed by "YYYY-MM-DD". Dates with no records
	// are absent from the map.
	GetDailyCountsRange(ctx context.Context, start, end time.Time) (map[string]DailyCounts, error)

	// GetDepartmentDistribution groups employees by department, largest first
	GetDepartmentDistribution(ctx context.Context) ([]DepartmentCount, error)

	// GetRecentEmployees returns the most recently added employees
	GetRecentEmployees(ctx context.Context, limit int) ([]employee.Employee, error)

	// GetRecentActivity returns the most recently written attendance records
	// across the whole ledger, newest first
	GetRecentActivity(ctx context.Context, limit int) ([]ActivityRecord, error)
}
