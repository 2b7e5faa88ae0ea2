package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, employee_code, full_name, email, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_code, full_name, email, department, created_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.EmployeeCode, newEmployee.FullName,
		newEmployee.Email, newEmployee.Department,
	).Scan(
		&created.ID, &created.EmployeeCode, &created.FullName,
		&created.Email, &created.Department, &created.CreatedAt,
	)
	if err != nil {
		// Two concurrent creates can both pass the service's existence
		// checks; the unique constraints decide the loser here.
		if isUniqueViolation(err, "employees_employee_code_key") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if isUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, email, department, created_at
		FROM employees
		WHERE employee_code = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, employeeCode).Scan(
		&found.ID, &found.EmployeeCode, &found.FullName,
		&found.Email, &found.Department, &found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return found, nil
}

// ExistsByCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByCode(ctx context.Context, employeeCode string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_code = $1)`,
		employeeCode,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee code: %w", err)
	}

	return exists, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}

	return exists, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, email, department, created_at
		FROM employees
		ORDER BY created_at DESC, employee_code DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
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

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, employeeCode string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	i := 1

	if req.FullName != nil {
		setClauses = append(setClauses, fmt.Sprintf("full_name = $%d", i))
		args = append(args, *req.FullName)
		i++
	}
	if req.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", i))
		args = append(args, *req.Email)
		i++
	}
	if req.Department != nil {
		setClauses = append(setClauses, fmt.Sprintf("department = $%d", i))
		args = append(args, *req.Department)
		i++
	}

	if len(setClauses) == 0 {
		return e.GetByCode(ctx, employeeCode)
	}

	query := fmt.Sprintf(`
		UPDATE employees SET %s
		WHERE employee_code = $%d
		RETURNING id, employee_code, full_name, email, department, created_at
	`, strings.Join(setClauses, ", "), i)
	args = append(args, employeeCode)

	var updated employee.Employee
	err := q.QueryRow(ctx, query, args...).Scan(
		&updated.ID, &updated.EmployeeCode, &updated.FullName,
		&updated.Email, &updated.Department, &updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee %s: %w", employeeCode, err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
//
// The employee's attendance records go first, then the employee, in one
// transaction. The schema's ON DELETE CASCADE would catch the records
// anyway; deleting them explicitly keeps the ownership rule visible here
// instead of buried in the DDL.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, employeeCode string) error {
	return WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, TxKey, tx)
		q := GetQuerier(txCtx, e.db)

		if _, err := q.Exec(txCtx, `DELETE FROM attendance_records WHERE employee_code = $1`, employeeCode); err != nil {
			return fmt.Errorf("failed to delete attendance for %s: %w", employeeCode, err)
		}

		tag, err := q.Exec(txCtx, `DELETE FROM employees WHERE employee_code = $1`, employeeCode)
		if err != nil {
			return fmt.Errorf("failed to delete employee %s: %w", employeeCode, err)
		}
		if tag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}

		return nil
	})
}
