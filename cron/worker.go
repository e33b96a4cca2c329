package cron

import (
	"context"
	"encoding/json"
	"time"

	"meetsync/config"
	bookingRepo "meetsync/database/repository/booking"
	userRepo "meetsync/database/repository/user"
	"meetsync/models"
	"meetsync/services/notification"
	"meetsync/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// reminderLead is how long before the meeting start the reminder fires.
const reminderLead = time.Hour

// ReminderPayload is the queued task body.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues reminder emails for future bookings.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler backed by the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisOpts())}
}

// Schedule enqueues a reminder to fire one hour before the meeting starts.
// Meetings starting sooner than that get no reminder.
func (s *ReminderScheduler) Schedule(booking *models.Booking) error {
	fireAt := booking.Interval.Start.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{BookingID: booking.ID})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3))
	return err
}

// InitReminderWorker runs the reminder worker in the background.
func InitReminderWorker(bookings bookingRepo.BookingRepository, users userRepo.UserRepository, mailer notification.Mailer) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(bookings, users, mailer))

	go func() {
		logger.Info("starting reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()
}

// handleReminderTask sends the reminder email, unless the booking has been
// cancelled since it was enqueued.
func handleReminderTask(bookings bookingRepo.BookingRepository, users userRepo.UserRepository, mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
			return err
		}

		booking, err := bookings.GetByID(p.BookingID)
		if err != nil {
			return err
		}
		if booking == nil || booking.Status == models.StatusCancelled {
			return nil
		}

		organizer := ""
		if owner, err := users.GetByID(booking.UserID); err == nil && owner != nil {
			organizer = owner.Name
		}

		results := mailer.SendReminder(ctx, booking, organizer)
		utils.GetLogger().Info("reminder sent",
			zap.String("bookingId", booking.ID),
			zap.Bool("allDelivered", notification.AllSent(results)))
		return nil
	}
}
