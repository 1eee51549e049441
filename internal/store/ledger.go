package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"labstock-backend/internal/model"
	"labstock-backend/internal/parse"
)

// LoanInput carries the parameters of a loan-out operation.
type LoanInput struct {
	AssetID            int64
	BorrowerName       string
	ExpectedReturnDate *string // raw client date, normalized here
	Notes              *string
}

// LoanOut opens a loan: flips the asset from in-stock to on-loan and inserts
// the loan record, atomically. The conditional UPDATE is the concurrency gate:
// of N concurrent calls on the same asset exactly one affects a row, the rest
// fail with ErrAssetUnavailable without touching anything.
func (s *gormStore) LoanOut(ctx context.Context, in LoanInput) (*model.LoanRecord, error) {
	if strings.TrimSpace(in.BorrowerName) == "" {
		return nil, validationf("borrower name is required")
	}

	var due *model.Date
	if in.ExpectedReturnDate != nil && *in.ExpectedReturnDate != "" {
		normalized, err := parse.NormalizeDate(*in.ExpectedReturnDate)
		if err != nil {
			return nil, validationf("invalid expected return date: %v", err)
		}
		d, _ := model.ParseDate(normalized)
		due = &d
	}

	record := &model.LoanRecord{
		AssetID:            in.AssetID,
		BorrowerName:       strings.TrimSpace(in.BorrowerName),
		ExpectedReturnDate: due,
		Notes:              in.Notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Asset{}).
			Where("id = ? AND status = ?", in.AssetID, model.StatusInStock).
			Update("status", model.StatusOnLoan)
		if res.Error != nil {
			return fmt.Errorf("status gate failed for asset %d: %w", in.AssetID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAssetUnavailable
		}

		record.BorrowDate = time.Now().UTC()
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create loan record for asset %d: %w", in.AssetID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ReturnAsset closes the newest open loan for the asset and flips its status
// back to in-stock, atomically. Symmetric to LoanOut: the conditional UPDATE
// is the linearization point.
func (s *gormStore) ReturnAsset(ctx context.Context, assetID int64) (*model.LoanRecord, error) {
	var record model.LoanRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Asset{}).
			Where("id = ? AND status = ?", assetID, model.StatusOnLoan).
			Update("status", model.StatusInStock)
		if res.Error != nil {
			return fmt.Errorf("status gate failed for asset %d: %w", assetID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAssetNotOnLoan
		}

		closed, err := closeNewestOpenLoan(tx, assetID)
		if err != nil {
			return err
		}
		if closed == nil {
			// Asset said on-loan but the ledger has no open record. Refuse and
			// roll back rather than hide the inconsistency.
			return ErrNoOpenLoan
		}
		record = *closed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// closeNewestOpenLoan stamps actual_return_date on the most recent open loan
// record for the asset, chosen by borrow_date descending. Historical data
// could in theory hold more than one open record; always targeting the newest
// keeps the protocol deterministic. Returns nil without error when no open
// record exists.
func closeNewestOpenLoan(tx *gorm.DB, assetID int64) (*model.LoanRecord, error) {
	var record model.LoanRecord
	err := tx.Where("asset_id = ? AND actual_return_date IS NULL", assetID).
		Order("borrow_date DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up open loan for asset %d: %w", assetID, err)
	}

	now := time.Now().UTC()
	if err := tx.Model(&record).Update("actual_return_date", now).Error; err != nil {
		return nil, fmt.Errorf("failed to close loan record %d: %w", record.ID, err)
	}
	record.ActualReturnDate = &now
	return &record, nil
}
