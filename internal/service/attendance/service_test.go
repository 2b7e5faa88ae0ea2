package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/fixtures"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

func newTestService(store *fixtures.Store) attendance.AttendanceService {
	return NewAttendanceService(store.Attendance(), store.Employees())
}

func seedTestEmployee(store *fixtures.Store, code string) {
	store.SeedEmployee(employee.Employee{
		EmployeeCode: code,
		FullName:     "Employee " + code,
		Email:        code + "@example.com",
		Department:   "Engineering",
	})
}

func TestAttendanceService_Mark_CreatesRecord(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	seedTestEmployee(store, "EMP001")
	svc := newTestService(store)

	result, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeCode: "EMP001",
		Date:         "2024-03-01",
		Status:       "Present",
	})
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, "EMP001", result.Record.EmployeeCode)
	assert.Equal(t, "2024-03-01", result.Record.Date)
	assert.Equal(t, "Present", result.Record.Status)
	assert.NotZero(t, result.Record.ID)
}

func TestAttendanceService_Mark_OverwritesSameDay(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	seedTestEmployee(store, "EMP001")
	svc := newTestService(store)

	first, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeCode: "EMP001",
		Date:         "2024-03-01",
		Status:       "Present",
	})
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeCode: "EMP001",
		Date:         "2024-03-01",
		Status:       "Absent",
	})
	require.NoError(t, err)

	// Same row, new status, no duplicate.
	assert.False(t, second.Created)
	assert.Equal(t, first.Record.ID, second.Record.ID)
	assert.Equal(t, "Absent", second.Record.Status)

	records, err := svc.ListForEmployee(ctx, attendance.ListAttendanceRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Absent", records[0].Status)
}

func TestAttendanceService_Mark_DistinctDaysCoexist(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	seedTestEmployee(store, "EMP001")
	svc := newTestService(store)

	for _, day := range []string{"2024-03-01", "2024-03-02"} {
		_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
			EmployeeCode: "EMP001",
			Date:         day,
			Status:       "Present",
		})
		require.NoError(t, err)
	}

	records, err := svc.ListForEmployee(ctx, attendance.ListAttendanceRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest date first.
	assert.Equal(t, "2024-03-02", records[0].Date)
	assert.Equal(t, "2024-03-01", records[1].Date)
}

func TestAttendanceService_Mark_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(fixtures.NewStore())

	_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeCode: "EMP999",
		Date:         "2024-03-01",
		Status:       "Present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Mark_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	seedTestEmployee(store, "EMP001")
	svc := newTestService(store)

	tests := []struct {
		name  string
		req   attendance.MarkAttendanceRequest
		field string
	}{
		{
			name:  "wrong date layout",
			req:   attendance.MarkAttendanceRequest{EmployeeCode: "EMP001", Date: "03/01/2024", Status: "Present"},
			field: "date",
		},
		{
			name:  "impossible date",
			req:   attendance.MarkAttendanceRequest{EmployeeCode: "EMP001", Date: "2024-02-30", Status: "Present"},
			field: "date",
		},
		{
			name:  "lowercase status",
			req:   attendance.MarkAttendanceRequest{EmployeeCode: "EMP001", Date: "2024-03-01", Status: "present"},
			field: "status",
		},
		{
			name:  "unknown status",
			req:   attendance.MarkAttendanceRequest{EmployeeCode: "EMP001", Date: "2024-03-01", Status: "Late"},
			field: "status",
		},
		{
			name:  "missing employee code",
			req:   attendance.MarkAttendanceRequest{Date: "2024-03-01", Status: "Present"},
			field: "employee_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Mark(ctx, tt.req)
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}

func TestAttendanceService_ListForEmployee_DateRange(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	seedTestEmployee(store, "EMP001")
	svc := newTestService(store)

	for _, day := range []string{"2024-03-01", "2024-03-05", "2024-03-10"} {
		_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
			EmployeeCode: "EMP001",
			Date:         day,
			Status:       "Present",
		})
		require.NoError(t, err)
	}

	// Bounds are inclusive on both sides.
	records, err := svc.ListForEmployee(ctx, attendance.ListAttendanceRequest{
		EmployeeCode: "EMP001",
		StartDate:    fixtures.StrPtr("2024-03-05"),
		EndDate:      fixtures.StrPtr("2024-03-10"),
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-03-10", records[0].Date)
	assert.Equal(t, "2024-03-05", records[1].Date)

	// A single bound works on its own.
	records, err = svc.ListForEmployee(ctx, attendance.ListAttendanceRequest{
		EmployeeCode: "EMP001",
		EndDate:      fixtures.StrPtr("2024-03-04"),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-01", records[0].Date)
}

func TestAttendanceService_ListForEmployee_BadBound(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	seedTestEmployee(store, "EMP001")
	svc := newTestService(store)

	_, err := svc.ListForEmployee(ctx, attendance.ListAttendanceRequest{
		EmployeeCode: "EMP001",
		StartDate:    fixtures.StrPtr("yesterday"),
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "start_date")
}

func TestAttendanceService_ListForEmployee_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(fixtures.NewStore())

	_, err := svc.ListForEmployee(ctx, attendance.ListAttendanceRequest{EmployeeCode: "EMP999"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_SummaryForEmployee(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	seedTestEmployee(store, "EMP001")
	svc := newTestService(store)

	marks := map[string]string{
		"2024-03-01": "Present",
		"2024-03-02": "Present",
		"2024-03-03": "Absent",
	}
	for day, status := range marks {
		_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{
			EmployeeCode: "EMP001",
			Date:         day,
			Status:       status,
		})
		require.NoError(t, err)
	}

	summary, err := svc.SummaryForEmployee(ctx, "EMP001")
	require.NoError(t, err)

	assert.Equal(t, "EMP001", summary.EmployeeCode)
	assert.Equal(t, "Employee EMP001", summary.FullName)
	assert.Equal(t, int64(2), summary.PresentTotal)
	assert.Equal(t, int64(1), summary.AbsentTotal)
	assert.Equal(t, summary.PresentTotal+summary.AbsentTotal, summary.RecordTotal)
}

func TestAttendanceService_SummaryForEmployee_NoRecords(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	seedTestEmployee(store, "EMP001")
	svc := newTestService(store)

	summary, err := svc.SummaryForEmployee(ctx, "EMP001")
	require.NoError(t, err)

	assert.Zero(t, summary.PresentTotal)
	assert.Zero(t, summary.AbsentTotal)
	assert.Zero(t, summary.RecordTotal)
}

func TestAttendanceService_SummaryForEmployee_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(fixtures.NewStore())

	_, err := svc.SummaryForEmployee(ctx, "EMP999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
