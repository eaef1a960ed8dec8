package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mesafy/config"
	reservationRepo "mesafy/database/repository/reservation"
	"mesafy/models"
	"mesafy/services/booking"
	"mesafy/services/notification"
	"mesafy/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReservationWorker runs the async worker in background: it delivers
// reservation reminders and periodically sweeps stale PENDING reservations
// into NO_SHOW.
func InitReservationWorker(notifSvc notification.NotificationService, bookingSvc booking.BookingService, reservations reservationRepo.ReservationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))
	mux.HandleFunc(tasks.TypeNoShowSweep, handleNoShowSweep(bookingSvc, reservations))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 15m", tasks.NewNoShowSweepTask()); err != nil {
		log.Printf("[ReservationWorker] failed to register no-show sweep: %v", err)
	}

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReservationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReservationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReservationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ReservationWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] reminder for reservation %s on %s at %s", p.ReservationID, p.Date, p.Time)

		event := models.ReservationEvent{
			Kind: "reminder",
			Reservation: models.Reservation{
				ID:            p.ReservationID,
				RestaurantID:  p.RestaurantID,
				Date:          p.Date,
				Time:          p.Time,
				CustomerName:  p.CustomerName,
				CustomerPhone: p.CustomerPhone,
			},
		}
		if err := notifSvc.ReservationEvent(ctx, event); err != nil {
			log.Printf("[ReminderHandler] failed to hand off reminder: %v", err)
			return err
		}
		return nil
	}
}

// handleNoShowSweep marks PENDING reservations past their release time as
// NO_SHOW, including reservations left over from earlier dates.
func handleNoShowSweep(bookingSvc booking.BookingService, reservations reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		now := time.Now()
		today := now.Format("2006-01-02")
		nowMinutes := now.Hour()*60 + now.Minute()

		pending, err := reservations.ListPendingThrough(ctx, today)
		if err != nil {
			log.Printf("[NoShowSweep] failed to list pending reservations: %v", err)
			return err
		}

		for _, res := range pending {
			if !noShowDue(res, today, nowMinutes) {
				continue
			}
			if _, err := bookingSvc.UpdateStatus(ctx, res.ID, models.ReservationStatusNoShow); err != nil {
				log.Printf("[NoShowSweep] failed to mark reservation %s as no-show: %v", res.ID, err)
			}
		}
		return nil
	}
}

// noShowDue reports whether a PENDING reservation's release time has passed:
// anything dated before today is overdue outright, today's reservations once
// their occupied interval ends.
func noShowDue(res models.Reservation, today string, nowMinutes int) bool {
	if res.Date < today {
		return true
	}
	return res.EndMinutes <= nowMinutes
}
