package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"labstock-backend/internal/model"
)

// StatusCount is one bucket of the status distribution report.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// OverdueLoan is one row of the overdue report.
type OverdueLoan struct {
	ID                 int64      `json:"id"`
	AssetName          string     `json:"asset_name"`
	BorrowerName       string     `json:"borrower_name"`
	ExpectedReturnDate model.Date `json:"expected_return_date"`
}

// CategoryStat aggregates assets per category. Utilization is the rounded
// percentage of assets not currently in stock, always within [0,100].
type CategoryStat struct {
	Name        string `json:"name"`
	Total       int64  `json:"total"`
	Utilization int    `json:"utilization"`
}

// DashboardReport bundles the three read-only projections served on the
// dashboard. Reads are not transactional relative to the ledger; a slightly
// stale view under concurrent writes is acceptable.
type DashboardReport struct {
	StatusDistribution []StatusCount  `json:"statusDistribution"`
	OverdueAssets      []OverdueLoan  `json:"overdueAssets"`
	CategoryStats      []CategoryStat `json:"categoryStats"`
}

// Dashboard computes the full dashboard report as of now.
func (s *gormStore) Dashboard(ctx context.Context, now time.Time) (*DashboardReport, error) {
	report := &DashboardReport{
		StatusDistribution: []StatusCount{},
		OverdueAssets:      []OverdueLoan{},
		CategoryStats:      []CategoryStat{},
	}

	if err := s.db.WithContext(ctx).Model(&model.Asset{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&report.StatusDistribution).Error; err != nil {
		return nil, fmt.Errorf("status distribution query failed: %w", err)
	}

	// Oldest due date first: the longest-overdue loans surface at the top.
	today := model.NewDate(now)
	if err := s.db.WithContext(ctx).
		Table("loan_records AS r").
		Select("r.id, r.borrower_name, r.expected_return_date, a.name AS asset_name").
		Joins("JOIN assets a ON r.asset_id = a.id").
		Where("r.actual_return_date IS NULL AND r.expected_return_date < ?", today.Time).
		Order("r.expected_return_date ASC").
		Scan(&report.OverdueAssets).Error; err != nil {
		return nil, fmt.Errorf("overdue assets query failed: %w", err)
	}

	type categoryRow struct {
		Name  string
		Total int64
		Used  int64
	}
	var rows []categoryRow
	if err := s.db.WithContext(ctx).
		Table("asset_types AS t").
		Select("t.name, COUNT(a.id) AS total, "+
			"COALESCE(SUM(CASE WHEN a.status != ? THEN 1 ELSE 0 END), 0) AS used",
			model.StatusInStock).
		Joins("LEFT JOIN assets a ON t.id = a.asset_type_id").
		Group("t.name").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("category stats query failed: %w", err)
	}

	for _, row := range rows {
		stat := CategoryStat{Name: row.Name, Total: row.Total}
		if row.Total > 0 {
			stat.Utilization = int(math.Round(float64(row.Used) / float64(row.Total) * 100))
		}
		report.CategoryStats = append(report.CategoryStats, stat)
	}

	return report, nil
}
