package model

import "time"

// AssetType is a user-defined equipment category (VR headset, camera, ...).
// It owns no lifecycle beyond CRUD; assets reference it weakly.
type AssetType struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	Icon      *string   `gorm:"size:64" json:"icon"`
	Color     *string   `gorm:"size:64" json:"color"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}
