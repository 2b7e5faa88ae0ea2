package employee

import (
	"strings"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
}

// Validate checks required fields and normalizes the request in place.
// The email is lowercased so uniqueness is case-insensitive.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = validator.NormalizeEmail(r.Email)
	r.Department = strings.TrimSpace(r.Department)

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Employee code is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "Full name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email format"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "Department is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
}

// Validate normalizes and checks the fields that are present. The employee
// code is immutable and deliberately absent from this request.
func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil {
		trimmed := strings.TrimSpace(*r.FullName)
		r.FullName = &trimmed
		if validator.IsEmpty(trimmed) {
			errs = append(errs, validator.ValidationError{Field: "full_name", Message: "Full name cannot be empty"})
		}
	}
	if r.Email != nil {
		normalized := validator.NormalizeEmail(*r.Email)
		r.Email = &normalized
		if !validator.IsValidEmail(normalized) {
			errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email format"})
		}
	}
	if r.Department != nil {
		trimmed := strings.TrimSpace(*r.Department)
		r.Department = &trimmed
		if validator.IsEmpty(trimmed) {
			errs = append(errs, validator.ValidationError{Field: "department", Message: "Department cannot be empty"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	CreatedAt    string `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		Department:   e.Department,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}
