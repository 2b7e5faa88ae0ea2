package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Statuses lists every valid attendance status, in the exact spelling the
// API accepts.
var Statuses = []string{string(StatusPresent), string(StatusAbsent)}

// Attendance is one day's attendance fact for one employee. At most one row
// exists per (employee code, date); a repeated mark overwrites the status.
type Attendance struct {
	ID           int64
	EmployeeCode string
	Date         time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary holds per-employee attendance totals. Total is always
// Present + Absent since status is binary.
type Summary struct {
	Present int64
	Absent  int64
	Total   int64
}
