package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"labstock-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	// Loan ledger
	LoanOut(ctx context.Context, in LoanInput) (*model.LoanRecord, error)
	ReturnAsset(ctx context.Context, assetID int64) (*model.LoanRecord, error)

	// Asset registry
	ListAssets(ctx context.Context) ([]AssetView, error)
	CreateAsset(ctx context.Context, in AssetInput) (*model.Asset, error)
	UpdateAsset(ctx context.Context, id int64, in AssetInput) error
	DeleteAsset(ctx context.Context, id int64) error

	// Asset types
	ListAssetTypes(ctx context.Context) ([]model.AssetType, error)
	CreateAssetType(ctx context.Context, in AssetTypeInput) (*model.AssetType, error)
	UpdateAssetType(ctx context.Context, id int64, in AssetTypeInput) error
	DeleteAssetType(ctx context.Context, id int64) error

	// Loan history
	ListLoanRecords(ctx context.Context, page, limit int) (*LoanRecordPage, error)

	// Reporting projection
	Dashboard(ctx context.Context, now time.Time) (*DashboardReport, error)

	// Push subscriptions and overdue reminders
	UpsertSubscription(ctx context.Context, sub *model.PushSubscription) error
	DeleteSubscription(ctx context.Context, endpoint string) error
	OverdueLoansNeedingReminder(ctx context.Context, now time.Time) ([]model.LoanRecord, error)
	MarkReminderSent(ctx context.Context, recordID int64, at time.Time) error

	// DB exposes the underlying handle for components that manage their own
	// queries (notification worker) and for tests.
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}
