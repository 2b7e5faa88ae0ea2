package employee

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

func newTestService(store *fixtures.Store) employee.EmployeeService {
	return NewEmployeeService(store.Employees())
}

func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	svc := newTestService(store)

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "EMP001",
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Department:   "Engineering",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "EMP001", created.EmployeeCode)
	assert.Equal(t, "Jane Doe", created.FullName)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.Equal(t, "Engineering", created.Department)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestEmployeeService_CreateEmployee_NormalizesEmail(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	svc := newTestService(store)

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "EMP001",
		FullName:     "  Jane Doe  ",
		Email:        "  Jane@Example.COM ",
		Department:   "Engineering",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", created.Email)
	assert.Equal(t, "Jane Doe", created.FullName)
}

func TestEmployeeService_CreateEmployee_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	store.SeedEmployee(employee.Employee{
		EmployeeCode: "EMP001",
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Department:   "Engineering",
	})
	svc := newTestService(store)

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "EMP001",
		FullName:     "Someone Else",
		Email:        "other@example.com",
		Department:   "Sales",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	// The existing employee is untouched.
	got, err := svc.GetEmployee(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestEmployeeService_CreateEmployee_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	store.SeedEmployee(employee.Employee{
		EmployeeCode: "EMP001",
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Department:   "Engineering",
	})
	svc := newTestService(store)

	// Uniqueness is case-insensitive because the request normalizes first.
	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "EMP002",
		FullName:     "Someone Else",
		Email:        "JANE@example.com",
		Department:   "Sales",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_CreateEmployee_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(fixtures.NewStore())

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Email: "not-an-email",
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))

	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_code")
	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "department")
	assert.Equal(t, "Invalid email format", fields["email"])
}

func TestEmployeeService_GetEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(fixtures.NewStore())

	_, err := svc.GetEmployee(ctx, "EMP999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_ListEmployees_NewestFirst(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	svc := newTestService(store)

	for _, code := range []string{"EMP001", "EMP002", "EMP003"} {
		_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			EmployeeCode: code,
			FullName:     "Employee " + code,
			Email:        code + "@example.com",
			Department:   "Engineering",
		})
		require.NoError(t, err)
	}

	listed, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	assert.Equal(t, "EMP003", listed[0].EmployeeCode)
	assert.Equal(t, "EMP002", listed[1].EmployeeCode)
	assert.Equal(t, "EMP001", listed[2].EmployeeCode)
}

func TestEmployeeService_ListEmployees_Empty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(fixtures.NewStore())

	listed, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestEmployeeService_UpdateEmployee_Success(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	store.SeedEmployee(employee.Employee{
		EmployeeCode: "EMP001",
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Department:   "Engineering",
	})
	svc := newTestService(store)

	updated, err := svc.UpdateEmployee(ctx, "EMP001", employee.UpdateEmployeeRequest{
		FullName:   fixtures.StrPtr("Jane Smith"),
		Department: fixtures.StrPtr("Platform"),
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP001", updated.EmployeeCode)
	assert.Equal(t, "Jane Smith", updated.FullName)
	assert.Equal(t, "Platform", updated.Department)
	assert.Equal(t, "jane@example.com", updated.Email)
}

func TestEmployeeService_UpdateEmployee_EmailConflict(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	store.SeedEmployee(employee.Employee{
		EmployeeCode: "EMP001",
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Department:   "Engineering",
	})
	store.SeedEmployee(employee.Employee{
		EmployeeCode: "EMP002",
		FullName:     "John Roe",
		Email:        "john@example.com",
		Department:   "Sales",
	})
	svc := newTestService(store)

	_, err := svc.UpdateEmployee(ctx, "EMP002", employee.UpdateEmployeeRequest{
		Email: fixtures.StrPtr("jane@example.com"),
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_UpdateEmployee_SameEmailIsNoConflict(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	store.SeedEmployee(employee.Employee{
		EmployeeCode: "EMP001",
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Department:   "Engineering",
	})
	svc := newTestService(store)

	updated, err := svc.UpdateEmployee(ctx, "EMP001", employee.UpdateEmployeeRequest{
		Email: fixtures.StrPtr("Jane@Example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", updated.Email)
}

func TestEmployeeService_UpdateEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(fixtures.NewStore())

	_, err := svc.UpdateEmployee(ctx, "EMP999", employee.UpdateEmployeeRequest{
		FullName: fixtures.StrPtr("Nobody"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_DeleteEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(fixtures.NewStore())

	err := svc.DeleteEmployee(ctx, "EMP999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_DeleteEmployee_CascadesAttendance(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore()
	store.SeedEmployee(employee.Employee{
		EmployeeCode: "EMP001",
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Department:   "Engineering",
	})
	store.SeedAttendance(attendance.Attendance{
		EmployeeCode: "EMP001",
		Date:         fixtures.Date("2024-03-01"),
		Status:       attendance.StatusPresent,
	})
	store.SeedAttendance(attendance.Attendance{
		EmployeeCode: "EMP001",
		Date:         fixtures.Date("2024-03-02"),
		Status:       attendance.StatusAbsent,
	})
	svc := newTestService(store)

	require.NoError(t, svc.DeleteEmployee(ctx, "EMP001"))

	_, err := svc.GetEmployee(ctx, "EMP001")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	records, err := store.Attendance().ListByEmployee(ctx, "EMP001", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}
