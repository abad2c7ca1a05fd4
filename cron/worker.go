package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"strikersyard/config"
	bookingRepo "strikersyard/database/repository/booking"
	"strikersyard/services/booking"
	"strikersyard/services/notification"
	"strikersyard/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	robfig "github.com/robfig/cron/v3"
)

// InitTaskWorker runs the async worker in background.
func InitTaskWorker(bookingSvc booking.BookingService, notifSvc notification.Service) {
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
	mux.HandleFunc(tasks.TypeBookingExpire, handleExpireTask(bookingSvc))
	mux.HandleFunc(tasks.TypeBookingConfirmedEmail, handleConfirmationEmailTask(bookingSvc, notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[TaskWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TaskWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TaskWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleExpireTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpireHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[ExpireHandler] ⏰ Expiring unpaid booking %s", p.BookingID)
		if err := bookingSvc.Expire(ctx, p.BookingID); err != nil {
			log.Printf("[ExpireHandler] ❌ Failed to expire booking %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}

func handleConfirmationEmailTask(bookingSvc booking.BookingService, notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingConfirmedEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		conf, err := bookingSvc.BuildConfirmation(ctx, p.BookingID)
		if err != nil {
			log.Printf("[ConfirmationHandler] ❌ Failed to assemble confirmation for %s: %v", p.BookingID, err)
			return err
		}

		if err := notifSvc.SendBookingConfirmed(ctx, *conf); err != nil {
			log.Printf("[ConfirmationHandler] ❌ Failed to send confirmation for %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}

// StartExpirySweep runs a periodic backstop that cancels pending bookings
// whose deferred expiry task was lost (queue flush, missed enqueue). The
// per-booking Expire call is idempotent, so overlap with the deferred task
// is harmless.
func StartExpirySweep(bookingSvc booking.BookingService, repo bookingRepo.BookingRepository) *robfig.Cron {
	c := robfig.New()

	_, err := c.AddFunc("@every 5m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		cutoff := time.Now().Add(-time.Duration(config.AppConfig.BookingExpiryMinutes) * time.Minute)
		stale, err := repo.ListStalePending(ctx, cutoff)
		if err != nil {
			log.Printf("[ExpirySweep] ❌ Failed to list stale bookings: %v", err)
			return
		}

		for _, b := range stale {
			if err := bookingSvc.Expire(ctx, b.BookingID); err != nil {
				log.Printf("[ExpirySweep] ❌ Failed to expire booking %s: %v", b.BookingID, err)
			}
		}
		if len(stale) > 0 {
			log.Printf("[ExpirySweep] 🧹 Swept %d stale pending booking(s)", len(stale))
		}
	})
	if err != nil {
		log.Printf("[ExpirySweep] ❌ Failed to schedule sweep: %v", err)
		return c
	}

	c.Start()
	return c
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[TaskWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
