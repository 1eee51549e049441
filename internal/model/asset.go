package model

import "time"

// Asset lifecycle statuses. An asset is `on-loan` exactly when one open loan
// record exists for it; all status transitions in and out of `on-loan` go
// through the loan ledger.
const (
	StatusInStock     = "in-stock"
	StatusOnLoan      = "on-loan"
	StatusMaintenance = "maintenance"
	StatusRetired     = "retired"
)

// Asset physical conditions.
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionPoor      = "poor"
)

// ValidStatus reports whether s is a known asset status.
func ValidStatus(s string) bool {
	switch s {
	case StatusInStock, StatusOnLoan, StatusMaintenance, StatusRetired:
		return true
	}
	return false
}

// ValidCondition reports whether c is a known asset condition.
func ValidCondition(c string) bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// Asset is a single trackable piece of equipment.
type Asset struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:256;not null" json:"name"`
	Model        *string   `gorm:"size:256" json:"model"`
	SerialNumber *string   `gorm:"size:128;uniqueIndex" json:"serial_number"`
	AssetTypeID  *int64    `gorm:"index" json:"asset_type_id"`
	Status       string    `gorm:"size:32;not null;default:'in-stock'" json:"status"`
	Location     *string   `gorm:"size:256" json:"location"`
	Condition    string    `gorm:"size:32;not null;default:'good'" json:"condition"`
	PurchaseDate *Date     `gorm:"type:date" json:"purchase_date"`
	Description  *string   `gorm:"size:1024" json:"description"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
	UpdatedAt    time.Time `gorm:"not null" json:"-"`
}
