package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// Mark implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResult{}, err
	}

	exists, err := a.EmployeeRepository.ExistsByCode(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.MarkAttendanceResult{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if !exists {
		return attendance.MarkAttendanceResult{}, employee.ErrEmployeeNotFound
	}

	// Validate already proved the date parses.
	date, _ := time.Parse("2006-01-02", req.Date)

	written, created, err := a.AttendanceRepository.Upsert(ctx, attendance.Attendance{
		EmployeeCode: req.EmployeeCode,
		Date:         date,
		Status:       attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.MarkAttendanceResult{}, err
	}

	return attendance.MarkAttendanceResult{
		Record:  attendance.NewAttendanceResponse(written),
		Created: created,
	}, nil
}

// ListForEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListForEmployee(ctx context.Context, req attendance.ListAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := a.EmployeeRepository.ExistsByCode(ctx, req.EmployeeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee code: %w", err)
	}
	if !exists {
		return nil, employee.ErrEmployeeNotFound
	}

	var start, end *time.Time
	if req.StartDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.StartDate)
		start = &parsed
	}
	if req.EndDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.EndDate)
		end = &parsed
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, req.EmployeeCode, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewAttendanceResponse(rec))
	}
	return responses, nil
}

// SummaryForEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SummaryForEmployee(ctx context.Context, employeeCode string) (attendance.SummaryResponse, error) {
	emp, err := a.EmployeeRepository.GetByCode(ctx, employeeCode)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	summary, err := a.AttendanceRepository.SummaryByEmployee(ctx, employeeCode)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.SummaryResponse{
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		PresentTotal: summary.Present,
		AbsentTotal:  summary.Absent,
		RecordTotal:  summary.Total,
	}, nil
}
