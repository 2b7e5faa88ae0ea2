package dashboard

import (
	"context"
	"strconv"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTrendDays    = 7
	maxTrendDays        = 365
	recentEmployeeLimit = 5
	recentActivityLimit = 10
	maxActivityLimit    = 100
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// today returns the current calendar date, truncated to midnight UTC so it
// compares cleanly against stored DATE values.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GetOrganizationSummary implements dashboard.DashboardService.
//
// The five reads are independent, so they fan out in parallel the way the
// landing page consumes them as one bundle.
func (s *DashboardServiceImpl) GetOrganizationSummary(ctx context.Context) (*dashboard.OrganizationSummaryResponse, error) {
	now := today()

	var (
		totalEmployees  int64
		todayCounts     dashboard.DailyCounts
		departments     []dashboard.DepartmentCount
		recentEmployees []dashboard.RecentEmployee
		recentActivity  []dashboard.ActivityItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		totalEmployees = total
		return nil
	})

	g.Go(func() error {
		counts, err := s.GetDailyCounts(gCtx, now)
		if err != nil {
			return err
		}
		todayCounts = counts
		return nil
	})

	g.Go(func() error {
		distribution, err := s.GetDepartmentDistribution(gCtx)
		if err != nil {
			return err
		}
		departments = distribution
		return nil
	})

	g.Go(func() error {
		employees, err := s.GetRecentEmployees(gCtx, recentEmployeeLimit)
		if err != nil {
			return err
		}
		recentEmployees = make([]dashboard.RecentEmployee, 0, len(employees))
		for _, emp := range employees {
			recentEmployees = append(recentEmployees, dashboard.RecentEmployee{
				EmployeeCode: emp.EmployeeCode,
				FullName:     emp.FullName,
				Department:   emp.Department,
				CreatedAt:    emp.CreatedAt.Format(time.RFC3339),
			})
		}
		return nil
	})

	g.Go(func() error {
		records, err := s.DashboardRepository.GetRecentActivity(gCtx, recentActivityLimit)
		if err != nil {
			return err
		}
		recentActivity = activityItems(records)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.OrganizationSummaryResponse{
		TotalEmployees:  totalEmployees,
		PresentToday:    todayCounts.Present,
		AbsentToday:     todayCounts.Absent,
		Departments:     departments,
		RecentEmployees: recentEmployees,
		RecentActivity:  recentActivity,
	}, nil
}

// GetDailySnapshot implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDailySnapshot(ctx context.Context, date string) (*dashboard.DailySnapshotResponse, error) {
	day := today()
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return nil, validator.ValidationErrors{
				{Field: "date", Message: "Date must be in YYYY-MM-DD format"},
			}
		}
		day = parsed
	}

	counts, err := s.GetDailyCounts(ctx, day)
	if err != nil {
		return nil, err
	}

	return &dashboard.DailySnapshotResponse{
		Date:    day.Format("2006-01-02"),
		Present: counts.Present,
		Absent:  counts.Absent,
	}, nil
}

// GetTrend implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetTrend(ctx context.Context, days string, endDate string) ([]dashboard.TrendEntry, error) {
	var errs validator.ValidationErrors

	windowDays := defaultTrendDays
	if days != "" {
		parsed, err := strconv.Atoi(days)
		if err != nil || parsed < 1 || parsed > maxTrendDays {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "Days must be a number between 1 and " + strconv.Itoa(maxTrendDays),
			})
		} else {
			windowDays = parsed
		}
	}

	end := today()
	if endDate != "" {
		parsed, ok := validator.IsValidDate(endDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "End date must be in YYYY-MM-DD format",
			})
		} else {
			end = parsed
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	start := end.AddDate(0, 0, -(windowDays - 1))

	counts, err := s.GetDailyCountsRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	// One entry per calendar day, zero-filled where nothing was marked,
	// oldest first.
	trend := make([]dashboard.TrendEntry, 0, windowDays)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		entry := counts[key]
		trend = append(trend, dashboard.TrendEntry{
			Date:    key,
			Present: entry.Present,
			Absent:  entry.Absent,
		})
	}

	return trend, nil
}

// GetRecentActivity implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetRecentActivity(ctx context.Context, limit int) ([]dashboard.ActivityItem, error) {
	if limit < 1 {
		limit = recentActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	records, err := s.DashboardRepository.GetRecentActivity(ctx, limit)
	if err != nil {
		return nil, err
	}

	return activityItems(records), nil
}

func activityItems(records []dashboard.ActivityRecord) []dashboard.ActivityItem {
	items := make([]dashboard.ActivityItem, 0, len(records))
	for _, rec := range records {
		items = append(items, dashboard.ActivityItem{
			RecordID:     rec.RecordID,
			EmployeeCode: rec.EmployeeCode,
			FullName:     rec.FullName,
			Date:         rec.Date.Format("2006-01-02"),
			Status:       rec.Status,
			MarkedAt:     rec.MarkedAt.Format(time.RFC3339),
		})
	}
	return items
}
