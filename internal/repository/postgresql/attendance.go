package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository.
//
// The insert-or-update is a single statement keyed on the natural key, so two
// concurrent marks for the same (employee, date) serialize inside Postgres:
// the second writer always lands as an update, never as a duplicate-key
// error. xmax = 0 only holds for freshly inserted rows, which is how the
// statement reports created-vs-updated without a second query.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_code, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_code, date) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, employee_code, date, status, created_at, updated_at, (xmax = 0) AS inserted
	`

	var (
		written  attendance.Attendance
		inserted bool
	)
	err := q.QueryRow(ctx, query, rec.EmployeeCode, rec.Date, string(rec.Status)).Scan(
		&written.ID, &written.EmployeeCode, &written.Date, &written.Status,
		&written.CreatedAt, &written.UpdatedAt, &inserted,
	)
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return written, inserted, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeCode string, start, end *time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"employee_code = $1"}
	args := []interface{}{employeeCode}
	argIdx := 2

	if start != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *end)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, employee_code, date, status, created_at, updated_at
		FROM attendance_records
		WHERE %s
		ORDER BY date DESC
	`, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeCode, &rec.Date, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// SummaryByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) SummaryByEmployee(ctx context.Context, employeeCode string) (attendance.Summary, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present_total,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent_total,
			COUNT(*) AS record_total
		FROM attendance_records
		WHERE employee_code = $1
	`

	var summary attendance.Summary
	err := q.QueryRow(ctx, query, employeeCode).Scan(
		&summary.Present, &summary.Absent, &summary.Total,
	)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to get attendance summary: %w", err)
	}

	return summary, nil
}
