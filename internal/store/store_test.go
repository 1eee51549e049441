package store

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"labstock-backend/internal/db"
	"labstock-backend/internal/model"
)

// newTestStore opens an isolated in-memory SQLite database, migrated and
// wrapped in a Store.
func newTestStore(t *testing.T) (Store, *gorm.DB) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return NewGormStore(gormDB), gormDB
}

// seedType creates an asset type to hang assets off.
func seedType(t *testing.T, s Store, name string) *model.AssetType {
	t.Helper()
	assetType, err := s.CreateAssetType(context.Background(), AssetTypeInput{Name: name})
	require.NoError(t, err)
	return assetType
}

// seedAsset creates an in-stock asset of the given type.
func seedAsset(t *testing.T, s Store, name string, typeID int64) *model.Asset {
	t.Helper()
	asset, err := s.CreateAsset(context.Background(), AssetInput{
		Name:        name,
		AssetTypeID: &typeID,
	})
	require.NoError(t, err)
	return asset
}

func strptr(s string) *string { return &s }
