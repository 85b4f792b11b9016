package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Eboreg/klaatu-go/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run: func(c *cobra.Command, args []string) {
		server.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
