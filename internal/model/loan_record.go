package model

import "time"

// LoanRecord is one borrow/return cycle of an asset. A record with a null
// ActualReturnDate is open: the asset is out with BorrowerName. At most one
// open record may exist per asset at any time (partial unique index, see
// internal/db).
type LoanRecord struct {
	ID                 int64      `gorm:"primaryKey" json:"id"`
	AssetID            int64      `gorm:"index;not null" json:"asset_id"`
	BorrowerName       string     `gorm:"size:128;not null" json:"borrower_name"`
	BorrowDate         time.Time  `gorm:"index;not null" json:"borrow_date"`
	ExpectedReturnDate *Date      `gorm:"type:date" json:"expected_return_date"`
	ActualReturnDate   *time.Time `json:"actual_return_date"`
	Notes              *string    `gorm:"size:512" json:"notes"`
	ReminderSentAt     *time.Time `json:"-"`
	CreatedAt          time.Time  `gorm:"not null" json:"-"`
	UpdatedAt          time.Time  `gorm:"not null" json:"-"`
}
