package config

import (
	"github.com/Eboreg/klaatu-go/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"mediacleanup": {Schedule: "0 3 * * *", Job: jobs.MediaCleanupJob},
	"cachedump":    {Schedule: "@every 10m", Job: jobs.CacheDumpJob},
	// Add more jobs here
}
