package notify

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/cleankart/marketplace-api/internal/models"
)

// Job carries everything the worker needs so delivery never re-reads
// user or booking rows; only the notification record is written back.
type Job struct {
	NotificationID uint

	Email string
	Phone string

	Subject string
	Message string
	HTML    string
}

// Dispatcher moves notification delivery off the request path. Jobs are
// queued on a buffered channel and handled by a single worker that
// retries each failed channel with exponential backoff.
type Dispatcher struct {
	db    *gorm.DB
	email EmailSender
	sms   SMSSender

	queue       chan Job
	maxAttempts int
	backoff     time.Duration
}

func NewDispatcher(db *gorm.DB, email EmailSender, sms SMSSender) *Dispatcher {
	d := &Dispatcher{
		db:          db,
		email:       email,
		sms:         sms,
		queue:       make(chan Job, 100),
		maxAttempts: 3,
		backoff:     time.Second,
	}

	go d.worker()
	return d
}

// HasChannels reports whether any delivery channel is configured.
func (d *Dispatcher) HasChannels() bool {
	return d.email != nil || d.sms != nil
}

func (d *Dispatcher) worker() {
	for job := range d.queue {
		d.process(context.Background(), job)
	}
}

// Dispatch never blocks the caller; a full queue drops the job and the
// record simply stays unsent.
func (d *Dispatcher) Dispatch(job Job) {
	select {
	case d.queue <- job:
	default:
		log.Printf("notify queue full, dropping notification %d", job.NotificationID)
	}
}

func (d *Dispatcher) process(ctx context.Context, job Job) {
	wantEmail := d.email != nil && job.Email != ""
	wantSMS := d.sms != nil && job.Phone != ""

	emailSent := false
	smsSent := false
	attempts := 0
	var lastErr error

	for attempt := 0; attempt < d.maxAttempts; attempt++ {
		pendingEmail := wantEmail && !emailSent
		pendingSMS := wantSMS && !smsSent
		if !pendingEmail && !pendingSMS {
			break
		}

		if attempt > 0 {
			time.Sleep(d.backoff << (attempt - 1))
		}
		attempts++

		if pendingEmail {
			if err := d.email.SendEmail(ctx, job.Email, job.Subject, job.HTML); err != nil {
				lastErr = err
				log.Printf("notification %d: email attempt %d failed: %v", job.NotificationID, attempts, err)
			} else {
				emailSent = true
			}
		}

		if pendingSMS {
			if err := d.sms.SendSMS(ctx, job.Phone, job.Message); err != nil {
				lastErr = err
				log.Printf("notification %d: sms attempt %d failed: %v", job.NotificationID, attempts, err)
			} else {
				smsSent = true
			}
		}
	}

	updates := map[string]any{
		"email_sent": emailSent,
		"sms_sent":   smsSent,
		"attempts":   attempts,
	}
	if lastErr != nil {
		updates["last_error"] = lastErr.Error()
	}
	if emailSent || smsSent {
		now := time.Now()
		updates["is_sent"] = true
		updates["sent_at"] = &now
	}

	if err := d.db.Model(&models.Notification{}).
		Where("id = ?", job.NotificationID).
		Updates(updates).Error; err != nil {
		log.Printf("notification %d: failed to record outcome: %v", job.NotificationID, err)
	}
}
