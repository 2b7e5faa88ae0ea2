package postgresql

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
	id            UUID        PRIMARY KEY,
	employee_code TEXT        NOT NULL,
	full_name     TEXT        NOT NULL,
	email         TEXT        NOT NULL,
	department    TEXT        NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT employees_employee_code_key UNIQUE (employee_code),
	CONSTRAINT employees_email_key UNIQUE (email)
);
`

const createAttendanceRecordsTable = `
CREATE TABLE IF NOT EXISTS attendance_records (
	id            BIGSERIAL   PRIMARY KEY,
	employee_code TEXT        NOT NULL REFERENCES employees (employee_code) ON DELETE CASCADE,
	date          DATE        NOT NULL,
	status        TEXT        NOT NULL CHECK (status IN ('Present', 'Absent')),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT attendance_records_employee_code_date_key UNIQUE (employee_code, date)
);
`

const createAttendanceIndexes = `
CREATE INDEX IF NOT EXISTS idx_attendance_records_employee_code ON attendance_records (employee_code);
CREATE INDEX IF NOT EXISTS idx_attendance_records_date ON attendance_records (date);
`

// Migrate applies the schema. Every statement is idempotent, so running it on
// each startup is safe.
func Migrate(ctx context.Context, db *database.DB) error {
	statements := []string{
		createEmployeesTable,
		createAttendanceRecordsTable,
		createAttendanceIndexes,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
