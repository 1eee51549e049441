package model

import "time"

// PushSubscription holds a staff member's browser push subscription. Overdue
// loan reminders go to every registered subscription.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
