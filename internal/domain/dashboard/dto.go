package dashboard

// ========== DAILY SNAPSHOT ==========

// DailySnapshotResponse holds present/absent counts for one calendar date.
// Employees with no record for the date count toward neither side.
type DailySnapshotResponse struct {
	Date    string `json:"date"` // Format: "YYYY-MM-DD"
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
}

// ========== DEPARTMENT DISTRIBUTION ==========

// DepartmentCount is one department's headcount, for the distribution list
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// ========== TREND ==========

// TrendEntry is one day in a trend window, oldest-to-newest ordered
type TrendEntry struct {
	Date    string `json:"date"` // Format: "YYYY-MM-DD"
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
}

// ========== RECENT ACTIVITY ==========

// ActivityItem is one recent attendance write, annotated with the owning
// employee's name
type ActivityItem struct {
	RecordID     int64  `json:"record_id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	MarkedAt     string `json:"marked_at"`
}

// ========== ORGANIZATION SUMMARY ==========

// RecentEmployee is a trimmed employee view for the landing page
type RecentEmployee struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
	CreatedAt    string `json:"created_at"`
}

// OrganizationSummaryResponse is the combined read-optimized bundle for the
// dashboard landing view
type OrganizationSummaryResponse struct {
	TotalEmployees  int64             `json:"total_employees"`
	PresentToday    int64             `json:"present_today"`
	AbsentToday     int64             `json:"absent_today"`
	Departments     []DepartmentCount `json:"departments"`
	RecentEmployees []RecentEmployee  `json:"recent_employees"`
	RecentActivity  []ActivityItem    `json:"recent_activity"`
}
