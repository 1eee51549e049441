package reminder

import (
	"context"
	"log"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"labstock-backend/config"
	"labstock-backend/internal/notification"
	"labstock-backend/internal/store"
)

// Service periodically scans for overdue open loans and hands each one to the
// notification worker pool. It only reads the ledger and stamps
// reminder_sent_at; asset status is never touched here.
type Service struct {
	cfg        *config.Config
	store      store.Store
	workerPool *notification.WorkerPool
}

// NewService creates a new reminder service.
func NewService(cfg *config.Config, s store.Store) *Service {
	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	return &Service{
		cfg:        cfg,
		store:      s,
		workerPool: notification.NewWorkerPool(cfg.WorkerPool.Size, s.DB(), &webpushOptions),
	}
}

// Run starts the reminder loop.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Reminder.Enabled {
		log.Println("Reminder service is disabled. Not starting.")
		return
	}
	log.Println("Starting reminder service...")

	s.workerPool.Start(ctx)

	s.RemindOnce(ctx)

	timer := time.NewTimer(s.cfg.Reminder.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Reminder service shutting down.")
			return
		case <-timer.C:
			s.RemindOnce(ctx)
			timer.Reset(s.cfg.Reminder.Interval)
		}
	}
}

// RemindOnce performs a single reminder sweep: every open loan past its
// expected return date that has not been reminded yet gets dispatched and
// marked. Marking happens before the push goes out; a crashed send means a
// lost reminder, not a duplicate.
func (s *Service) RemindOnce(ctx context.Context) {
	now := time.Now().UTC()

	records, err := s.store.OverdueLoansNeedingReminder(ctx, now)
	if err != nil {
		log.Printf("Reminder sweep failed: %v", err)
		return
	}
	if len(records) == 0 {
		return
	}

	log.Printf("Reminder sweep found %d overdue loans", len(records))
	for _, record := range records {
		if err := s.store.MarkReminderSent(ctx, record.ID, now); err != nil {
			log.Printf("Failed to mark reminder for record %d: %v", record.ID, err)
			continue
		}
		s.workerPool.Dispatch(record.ID)
	}
}
