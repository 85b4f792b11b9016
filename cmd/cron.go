package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Eboreg/klaatu-go/config"
	"github.com/Eboreg/klaatu-go/cron"
)

var cronJobName string

var cronCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler, or run a single job with --job",
	RunE: func(c *cobra.Command, args []string) error {
		config.LoadEnv()
		config.LoadAppConfig()

		if cronJobName != "" {
			if j, ok := config.CronJobs[cronJobName]; ok {
				j.Job(args...)
				return nil
			}
			if j, ok := cron.Jobs()[cronJobName]; ok {
				j.Run(args...)
				return nil
			}
			return fmt.Errorf("unknown cron job %q", cronJobName)
		}

		cron.StartCron()
		log.Println("Cron scheduler started")
		select {}
	},
}

func init() {
	cronCmd.Flags().StringVarP(&cronJobName, "job", "j", "", "run a single named job once and exit")
	rootCmd.AddCommand(cronCmd)
}
