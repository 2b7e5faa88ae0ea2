package fixtures

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func StrPtr(s string) *string { return &s }

// Date parses a "YYYY-MM-DD" string into a midnight-UTC time. It panics on
// bad input, which is acceptable for test fixtures.
func Date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// ==========================================
// IN-MEMORY STORE
// ==========================================

// Store is an in-memory stand-in for the PostgreSQL repositories. It honors
// the same sentinel errors, uniqueness rules and orderings as the real
// implementations so service tests exercise true behavior without a database.
type Store struct {
	mu        sync.Mutex
	employees map[string]employee.Employee     // keyed by employee code
	records   map[string]attendance.Attendance // keyed by code + "|" + date
	nextID    int64
	now       time.Time
}

// NewStore returns an empty store. Timestamps assigned to created rows start
// at a fixed instant and advance by one second per write, so "newest first"
// orderings are deterministic.
func NewStore() *Store {
	return &Store{
		employees: make(map[string]employee.Employee),
		records:   make(map[string]attendance.Attendance),
		now:       time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *Store) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func recordKey(employeeCode string, date time.Time) string {
	return employeeCode + "|" + date.Format("2006-01-02")
}

// SeedEmployee inserts an employee directly, bypassing validation. Intended
// for test arrangement only.
func (s *Store) SeedEmployee(emp employee.Employee) employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	if emp.CreatedAt.IsZero() {
		emp.CreatedAt = s.tick()
	}
	s.employees[emp.EmployeeCode] = emp
	return emp
}

// SeedAttendance inserts an attendance record directly, bypassing the
// service layer.
func (s *Store) SeedAttendance(rec attendance.Attendance) attendance.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	rec.ID = s.nextID
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.tick()
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	s.records[recordKey(rec.EmployeeCode, rec.Date)] = rec
	return rec
}

// Employees returns the repository view backed by this store.
func (s *Store) Employees() employee.EmployeeRepository { return &employeeRepo{s} }

// Attendance returns the repository view backed by this store.
func (s *Store) Attendance() attendance.AttendanceRepository { return &attendanceRepo{s} }

// Dashboard returns the repository view backed by this store.
func (s *Store) Dashboard() dashboard.DashboardRepository { return &dashboardRepo{s} }

// ==========================================
// EMPLOYEE REPOSITORY
// ==========================================

type employeeRepo struct {
	store *Store
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[newEmployee.EmployeeCode]; ok {
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}
	for _, existing := range r.store.employees {
		if existing.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	newEmployee.CreatedAt = r.store.tick()
	r.store.employees[newEmployee.EmployeeCode] = newEmployee
	return newEmployee, nil
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepo) GetByCode(_ context.Context, employeeCode string) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[employeeCode]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// ExistsByCode implements employee.EmployeeRepository.
func (r *employeeRepo) ExistsByCode(_ context.Context, employeeCode string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, ok := r.store.employees[employeeCode]
	return ok, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.employees {
		if existing.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// List implements employee.EmployeeRepository. Newest first, matching the
// SQL ordering.
func (r *employeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]employee.Employee, 0, len(r.store.employees))
	for _, emp := range r.store.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].EmployeeCode > out[j].EmployeeCode
	})
	return out, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepo) Update(_ context.Context, employeeCode string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[employeeCode]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if req.Email != nil {
		for code, existing := range r.store.employees {
			if code != employeeCode && existing.Email == *req.Email {
				return employee.Employee{}, employee.ErrEmailExists
			}
		}
		emp.Email = *req.Email
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	r.store.employees[employeeCode] = emp
	return emp, nil
}

// Delete implements employee.EmployeeRepository. Attendance records owned by
// the employee are removed in the same step, mirroring the transactional
// cascade of the real repository.
func (r *employeeRepo) Delete(_ context.Context, employeeCode string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[employeeCode]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.store.employees, employeeCode)
	for key, rec := range r.store.records {
		if rec.EmployeeCode == employeeCode {
			delete(r.store.records, key)
		}
	}
	return nil
}

// ==========================================
// ATTENDANCE REPOSITORY
// ==========================================

type attendanceRepo struct {
	store *Store
}

// Upsert implements attendance.AttendanceRepository. A repeated mark for the
// same (employee, date) overwrites the status in place and keeps the row ID.
func (r *attendanceRepo) Upsert(_ context.Context, rec attendance.Attendance) (attendance.Attendance, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := recordKey(rec.EmployeeCode, rec.Date)
	if existing, ok := r.store.records[key]; ok {
		existing.Status = rec.Status
		existing.UpdatedAt = r.store.tick()
		r.store.records[key] = existing
		return existing, false, nil
	}

	r.store.nextID++
	rec.ID = r.store.nextID
	rec.CreatedAt = r.store.tick()
	rec.UpdatedAt = rec.CreatedAt
	r.store.records[key] = rec
	return rec, true, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepo) ListByEmployee(_ context.Context, employeeCode string, start, end *time.Time) ([]attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []attendance.Attendance
	for _, rec := range r.store.records {
		if rec.EmployeeCode != employeeCode {
			continue
		}
		if start != nil && rec.Date.Before(*start) {
			continue
		}
		if end != nil && rec.Date.After(*end) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// SummaryByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepo) SummaryByEmployee(_ context.Context, employeeCode string) (attendance.Summary, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var summary attendance.Summary
	for _, rec := range r.store.records {
		if rec.EmployeeCode != employeeCode {
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		}
		summary.Total++
	}
	return summary, nil
}

// ==========================================
// DASHBOARD REPOSITORY
// ==========================================

type dashboardRepo struct {
	store *Store
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepo) CountEmployees(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return int64(len(r.store.employees)), nil
}

// GetDailyCounts implements dashboard.DashboardRepository.
func (r *dashboardRepo) GetDailyCounts(_ context.Context, date time.Time) (dashboard.DailyCounts, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.countsFor(date), nil
}

func (r *dashboardRepo) countsFor(date time.Time) dashboard.DailyCounts {
	var counts dashboard.DailyCounts
	for _, rec := range r.store.records {
		if !rec.Date.Equal(date) {
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			counts.Present++
		case attendance.StatusAbsent:
			counts.Absent++
		}
	}
	return counts
}

// GetDailyCountsRange implements dashboard.DashboardRepository.
func (r *dashboardRepo) GetDailyCountsRange(_ context.Context, start, end time.Time) (map[string]dashboard.DailyCounts, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make(map[string]dashboard.DailyCounts)
	for _, rec := range r.store.records {
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		counts := out[rec.Date.Format("2006-01-02")]
		switch rec.Status {
		case attendance.StatusPresent:
			counts.Present++
		case attendance.StatusAbsent:
			counts.Absent++
		}
		out[rec.Date.Format("2006-01-02")] = counts
	}
	return out, nil
}

// GetDepartmentDistribution implements dashboard.DashboardRepository. Largest
// department first, ties broken alphabetically, matching the SQL ordering.
func (r *dashboardRepo) GetDepartmentDistribution(_ context.Context) ([]dashboard.DepartmentCount, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	byName := make(map[string]int64)
	for _, emp := range r.store.employees {
		byName[emp.Department]++
	}
	out := make([]dashboard.DepartmentCount, 0, len(byName))
	for name, count := range byName {
		out = append(out, dashboard.DepartmentCount{Department: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Department < out[j].Department
	})
	return out, nil
}

// GetRecentEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepo) GetRecentEmployees(ctx context.Context, limit int) ([]employee.Employee, error) {
	all, err := (&employeeRepo{r.store}).List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// GetRecentActivity implements dashboard.DashboardRepository.
func (r *dashboardRepo) GetRecentActivity(_ context.Context, limit int) ([]dashboard.ActivityRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []dashboard.ActivityRecord
	for _, rec := range r.store.records {
		item := dashboard.ActivityRecord{
			RecordID:     rec.ID,
			EmployeeCode: rec.EmployeeCode,
			Date:         rec.Date,
			Status:       string(rec.Status),
			MarkedAt:     rec.UpdatedAt,
		}
		if emp, ok := r.store.employees[rec.EmployeeCode]; ok {
			item.FullName = emp.FullName
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].MarkedAt.Equal(out[j].MarkedAt) {
			return out[i].MarkedAt.After(out[j].MarkedAt)
		}
		return out[i].RecordID > out[j].RecordID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
