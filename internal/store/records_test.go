package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLoanRecordsPagination(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assetType := seedType(t, s, "VR Headset")
	asset := seedAsset(t, s, "Quest 3", assetType.ID)

	for _, borrower := range []string{"Alice", "Bob", "Carol"} {
		_, err := s.LoanOut(ctx, LoanInput{AssetID: asset.ID, BorrowerName: borrower})
		require.NoError(t, err)
		_, err = s.ReturnAsset(ctx, asset.ID)
		require.NoError(t, err)
	}

	page1, err := s.ListLoanRecords(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page1.TotalRecords)
	assert.Equal(t, int64(2), page1.TotalPages)
	require.Len(t, page1.Records, 2)
	assert.Equal(t, "Carol", page1.Records[0].BorrowerName, "newest first")
	assert.Equal(t, "Bob", page1.Records[1].BorrowerName)
	assert.Equal(t, "Quest 3", page1.Records[0].AssetName)

	page2, err := s.ListLoanRecords(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2.Records, 1)
	assert.Equal(t, "Alice", page2.Records[0].BorrowerName)

	// Out-of-range parameters fall back to sane defaults.
	fallback, err := s.ListLoanRecords(ctx, -3, 0)
	require.NoError(t, err)
	assert.Len(t, fallback.Records, 3)
	assert.Equal(t, int64(1), fallback.TotalPages)
}

func TestListLoanRecordsEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	page, err := s.ListLoanRecords(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalRecords)
	assert.Equal(t, int64(0), page.TotalPages)
	assert.Empty(t, page.Records)
}
