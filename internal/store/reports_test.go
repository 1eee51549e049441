package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labstock-backend/internal/model"
)

func TestDashboardStatusDistribution(t *testing.T) {
	s, gormDB := newTestStore(t)
	ctx := context.Background()

	assetType := seedType(t, s, "VR Headset")
	for _, name := range []string{"A", "B", "C"} {
		seedAsset(t, s, name, assetType.ID)
	}
	loaned := seedAsset(t, s, "D", assetType.ID)
	_, err := s.LoanOut(ctx, LoanInput{AssetID: loaned.ID, BorrowerName: "Alice"})
	require.NoError(t, err)

	retired := seedAsset(t, s, "E", assetType.ID)
	require.NoError(t, gormDB.Model(&model.Asset{}).Where("id = ?", retired.ID).
		Update("status", model.StatusRetired).Error)

	report, err := s.Dashboard(ctx, time.Now().UTC())
	require.NoError(t, err)

	counts := make(map[string]int64)
	for _, sc := range report.StatusDistribution {
		counts[sc.Status] = sc.Count
	}
	assert.Equal(t, int64(3), counts[model.StatusInStock])
	assert.Equal(t, int64(1), counts[model.StatusOnLoan])
	assert.Equal(t, int64(1), counts[model.StatusRetired])
	assert.NotContains(t, counts, model.StatusMaintenance)
}

func TestDashboardOverdueAssets(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assetType := seedType(t, s, "Camera")
	oldest := seedAsset(t, s, "Oldest", assetType.ID)
	newer := seedAsset(t, s, "Newer", assetType.ID)
	onTime := seedAsset(t, s, "On time", assetType.ID)
	noDue := seedAsset(t, s, "No due date", assetType.ID)

	_, err := s.LoanOut(ctx, LoanInput{AssetID: oldest.ID, BorrowerName: "Alice", ExpectedReturnDate: strptr("2020-01-01")})
	require.NoError(t, err)
	_, err = s.LoanOut(ctx, LoanInput{AssetID: newer.ID, BorrowerName: "Bob", ExpectedReturnDate: strptr("2021-06-15")})
	require.NoError(t, err)
	_, err = s.LoanOut(ctx, LoanInput{AssetID: onTime.ID, BorrowerName: "Carol", ExpectedReturnDate: strptr("2099-01-01")})
	require.NoError(t, err)
	_, err = s.LoanOut(ctx, LoanInput{AssetID: noDue.ID, BorrowerName: "Dave"})
	require.NoError(t, err)

	report, err := s.Dashboard(ctx, time.Now().UTC())
	require.NoError(t, err)

	// Longest-overdue first; loans without a due date never show up.
	require.Len(t, report.OverdueAssets, 2)
	assert.Equal(t, "Oldest", report.OverdueAssets[0].AssetName)
	assert.Equal(t, "Alice", report.OverdueAssets[0].BorrowerName)
	assert.Equal(t, "2020-01-01", report.OverdueAssets[0].ExpectedReturnDate.String())
	assert.Equal(t, "Newer", report.OverdueAssets[1].AssetName)
}

func TestDashboardOverdueExcludesReturned(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assetType := seedType(t, s, "Tablet")
	asset := seedAsset(t, s, "iPad", assetType.ID)

	_, err := s.LoanOut(ctx, LoanInput{AssetID: asset.ID, BorrowerName: "Alice", ExpectedReturnDate: strptr("2020-01-01")})
	require.NoError(t, err)
	_, err = s.ReturnAsset(ctx, asset.ID)
	require.NoError(t, err)

	report, err := s.Dashboard(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, report.OverdueAssets)
}

func TestDashboardCategoryStats(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// One category with 3 in-stock + 1 on-loan, one with no assets at all.
	headsets := seedType(t, s, "VR Headset")
	seedType(t, s, "Microscope")

	for _, name := range []string{"A", "B", "C"} {
		seedAsset(t, s, name, headsets.ID)
	}
	loaned := seedAsset(t, s, "D", headsets.ID)
	_, err := s.LoanOut(ctx, LoanInput{AssetID: loaned.ID, BorrowerName: "Alice"})
	require.NoError(t, err)

	report, err := s.Dashboard(ctx, time.Now().UTC())
	require.NoError(t, err)

	stats := make(map[string]CategoryStat)
	for _, cs := range report.CategoryStats {
		stats[cs.Name] = cs
		assert.GreaterOrEqual(t, cs.Utilization, 0)
		assert.LessOrEqual(t, cs.Utilization, 100)
	}

	require.Contains(t, stats, "VR Headset")
	assert.Equal(t, int64(4), stats["VR Headset"].Total)
	assert.Equal(t, 25, stats["VR Headset"].Utilization)

	require.Contains(t, stats, "Microscope")
	assert.Equal(t, int64(0), stats["Microscope"].Total)
	assert.Equal(t, 0, stats["Microscope"].Utilization, "empty category must not divide by zero")
}
