package attendance

import (
	"strings"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeCode string `json:"employee_code"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

// Validate checks the mark request. The date must be a well-formed calendar
// date and the status must be exactly "Present" or "Absent", case-sensitive.
func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Employee code is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status is required"})
	} else if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: `Status must be either "Present" or "Absent"`})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceRequest struct {
	EmployeeCode string
	StartDate    *string
	EndDate      *string
}

// Validate checks the optional inclusive date bounds. Either bound may be
// given independently of the other.
func (r *ListAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Employee code is required"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be in YYYY-MM-DD format"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           int64  `json:"id"`
	EmployeeCode string `json:"employee_code"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeCode: a.EmployeeCode,
		Date:         a.Date.Format("2006-01-02"),
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}

// MarkAttendanceResult carries the written record plus whether the mark
// created a new row or overwrote an existing one.
type MarkAttendanceResult struct {
	Record  AttendanceResponse
	Created bool
}

type SummaryResponse struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	PresentTotal int64  `json:"present_total"`
	AbsentTotal  int64  `json:"absent_total"`
	RecordTotal  int64  `json:"record_total"`
}
