package store

import (
	"context"
	"fmt"
	"time"

	"labstock-backend/internal/model"
)

// LoanRecordView is one row of the loan history listing, with the asset name
// joined in.
type LoanRecordView struct {
	ID                 int64       `json:"id"`
	AssetID            int64       `json:"asset_id"`
	AssetName          string      `json:"asset_name"`
	BorrowerName       string      `json:"borrower_name"`
	BorrowDate         time.Time   `json:"borrow_date"`
	ExpectedReturnDate *model.Date `json:"expected_return_date"`
	ActualReturnDate   *time.Time  `json:"actual_return_date"`
}

// LoanRecordPage is one page of loan history.
type LoanRecordPage struct {
	Records      []LoanRecordView `json:"records"`
	TotalRecords int64            `json:"totalRecords"`
	TotalPages   int64            `json:"totalPages"`
}

// ListLoanRecords returns loan history newest-first, paginated.
func (s *gormStore) ListLoanRecords(ctx context.Context, page, limit int) (*LoanRecordPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.LoanRecord{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count loan records: %w", err)
	}

	records := make([]LoanRecordView, 0, limit)
	err := s.db.WithContext(ctx).
		Table("loan_records AS r").
		Select("r.id, r.asset_id, r.borrower_name, r.borrow_date, "+
			"r.expected_return_date, r.actual_return_date, a.name AS asset_name").
		Joins("JOIN assets a ON r.asset_id = a.id").
		Order("r.borrow_date DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list loan records: %w", err)
	}

	return &LoanRecordPage{
		Records:      records,
		TotalRecords: total,
		TotalPages:   (total + int64(limit) - 1) / int64(limit),
	}, nil
}
