package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByCode(ctx context.Context, employeeCode string) (Employee, error)
	ExistsByCode(ctx context.Context, employeeCode string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, employeeCode string, req UpdateEmployeeRequest) (Employee, error)

	// Delete removes the employee and, atomically, every attendance record
	// owned by them.
	Delete(ctx context.Context, employeeCode string) error
}
