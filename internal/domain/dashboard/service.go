package dashboard

import "context"

// DashboardService defines the interface for aggregation operations. All of
// these are pure reads over the directory and the ledger.
type DashboardService interface {
	// GetOrganizationSummary returns the combined landing-view bundle,
	// fetched with parallel queries
	GetOrganizationSummary(ctx context.Context) (*OrganizationSummaryResponse, error)

	// GetDailySnapshot returns present/absent counts for a date
	// (YYYY-MM-DD, empty defaults to today)
	GetDailySnapshot(ctx context.Context, date string) (*DailySnapshotResponse, error)

	// GetTrend returns one entry per day for the window ending at endDate
	// inclusive, oldest first. days defaults to 7, endDate to today.
	GetTrend(ctx context.Context, days string, endDate string) ([]TrendEntry, error)

	// GetRecentActivity returns the latest attendance writes, newest first
	GetRecentActivity(ctx context.Context, limit int) ([]ActivityItem, error)
}
