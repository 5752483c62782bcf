package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REVIEW-SYNC %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartReviewSyncScheduler runs an hourly sweep over every location that has
// not been refreshed in the last hour.
func StartReviewSyncScheduler(c *cron.Cron) {
	c.AddFunc("0 * * * *", func() {
		logScheduler("Hourly review sync starting")
		SyncAllLocations(time.Hour)
		logScheduler("Hourly review sync finished")
	})
	logScheduler("Review sync scheduler started - runs hourly")
}

// InitializeSchedulers initializes all background schedulers
func InitializeSchedulers() *cron.Cron {
	logScheduler("Initializing schedulers...")

	c := cron.New()
	StartReviewSyncScheduler(c)
	c.Start()

	logScheduler("All schedulers initialized successfully")
	return c
}
