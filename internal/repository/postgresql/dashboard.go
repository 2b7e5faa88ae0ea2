package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// GetDailyCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetDailyCounts(ctx context.Context, date time.Time) (dashboard.DailyCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance_records
		WHERE date = $1
	`

	var counts dashboard.DailyCounts
	err := q.QueryRow(ctx, query, date).Scan(&counts.Present, &counts.Absent)
	if err != nil {
		return dashboard.DailyCounts{}, fmt.Errorf("failed to get daily counts: %w", err)
	}
	return counts, nil
}

// GetDailyCountsRange implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetDailyCountsRange(ctx context.Context, start, end time.Time) (map[string]dashboard.DailyCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			date,
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance_records
		WHERE date >= $1 AND date <= $2
		GROUP BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily counts range: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]dashboard.DailyCounts)
	for rows.Next() {
		var (
			day   time.Time
			entry dashboard.DailyCounts
		)
		if err := rows.Scan(&day, &entry.Present, &entry.Absent); err != nil {
			return nil, fmt.Errorf("failed to scan daily counts: %w", err)
		}
		counts[day.Format("2006-01-02")] = entry
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// GetDepartmentDistribution implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetDepartmentDistribution(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, COUNT(*) AS count
		FROM employees
		GROUP BY department
		ORDER BY count DESC, department ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get department distribution: %w", err)
	}
	defer rows.Close()

	var distribution []dashboard.DepartmentCount
	for rows.Next() {
		var dc dashboard.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		distribution = append(distribution, dc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return distribution, nil
}

// GetRecentEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetRecentEmployees(ctx context.Context, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, full_name, email, department, created_at
		FROM employees
		ORDER BY created_at DESC, employee_code DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeCode, &emp.FullName,
			&emp.Email, &emp.Department, &emp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetRecentActivity implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetRecentActivity(ctx context.Context, limit int) ([]dashboard.ActivityRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_code, e.full_name, ar.date, ar.status, ar.updated_at
		FROM attendance_records ar
		INNER JOIN employees e ON ar.employee_code = e.employee_code
		ORDER BY ar.updated_at DESC, ar.id DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activity: %w", err)
	}
	defer rows.Close()

	var activity []dashboard.ActivityRecord
	for rows.Next() {
		var rec dashboard.ActivityRecord
		err := rows.Scan(
			&rec.RecordID, &rec.EmployeeCode, &rec.FullName,
			&rec.Date, &rec.Status, &rec.MarkedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity record: %w", err)
		}
		activity = append(activity, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return activity, nil
}
