package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"labstock-backend/internal/model"
)

// UpsertSubscription creates or refreshes a push subscription keyed by its
// endpoint.
func (s *gormStore) UpsertSubscription(ctx context.Context, sub *model.PushSubscription) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth"}),
	}).Create(sub).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return nil
}

// DeleteSubscription removes a push subscription by endpoint.
func (s *gormStore) DeleteSubscription(ctx context.Context, endpoint string) error {
	if err := s.db.WithContext(ctx).Delete(&model.PushSubscription{Endpoint: endpoint}).Error; err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

// OverdueLoansNeedingReminder returns open loans past their expected return
// date that have not yet been reminded.
func (s *gormStore) OverdueLoansNeedingReminder(ctx context.Context, now time.Time) ([]model.LoanRecord, error) {
	var records []model.LoanRecord
	today := model.NewDate(now)
	err := s.db.WithContext(ctx).
		Where("actual_return_date IS NULL AND reminder_sent_at IS NULL AND expected_return_date < ?", today.Time).
		Order("expected_return_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue loans: %w", err)
	}
	return records, nil
}

// MarkReminderSent stamps a loan record after its overdue reminder went out.
func (s *gormStore) MarkReminderSent(ctx context.Context, recordID int64, at time.Time) error {
	err := s.db.WithContext(ctx).Model(&model.LoanRecord{}).
		Where("id = ?", recordID).
		Update("reminder_sent_at", at).Error
	if err != nil {
		return fmt.Errorf("failed to mark reminder for record %d: %w", recordID, err)
	}
	return nil
}
