package employee

import "context"

// EmployeeService defines business logic for employee directory operations
type EmployeeService interface {
	// CreateEmployee registers a new employee; the code and email must be unused
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by employee code
	GetEmployee(ctx context.Context, employeeCode string) (EmployeeResponse, error)

	// ListEmployees lists all employees, most recently created first
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee partially updates an employee's mutable fields
	UpdateEmployee(ctx context.Context, employeeCode string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and all of their attendance records
	DeleteEmployee(ctx context.Context, employeeCode string) error
}
