package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Eboreg/klaatu-go/config"
	"github.com/Eboreg/klaatu-go/core/storage"
	mediaService "github.com/Eboreg/klaatu-go/service/media"
)

var (
	mediaImportDir     string
	mediaImportSubdir  string
	mediaImportWebP    bool
	mediaImportQuality float32
)

var mediaImportCmd = &cobra.Command{
	Use:   "media:import",
	Short: "Import and resize images from a directory into the media store",
	RunE: func(c *cobra.Command, args []string) error {
		return RunExclusive("media-import", func() error {
			config.LoadEnv()
			config.LoadAppConfig()
			cfg := config.AppConfig

			db, err := config.NewDB()
			if err != nil {
				return fmt.Errorf("database connection failed: %w", err)
			}

			store := storage.NewFileSystemStorage(cfg.MediaRoot)
			report, err := mediaService.ImportDirectory(db, store, mediaImportDir, mediaService.ImportOptions{
				Subdir: mediaImportSubdir,
				Resize: mediaService.ResizeOptions{
					MaxWidth:  cfg.MaxImageWidth,
					MaxHeight: cfg.MaxImageHeight,
					ToWebP:    mediaImportWebP,
					Quality:   mediaImportQuality,
				},
			})
			if err != nil {
				return err
			}

			for _, w := range report.Warnings {
				fmt.Printf("  [warn] %s\n", w)
			}
			fmt.Printf(`
=== Import Report ===
Scanned:      %d
Imported:     %d
Skipped:      %d
Warnings:     %d
Total time:   %s
  - Resizing: %s
=====================
`, report.Scanned, report.Imported, report.Skipped, len(report.Warnings),
				report.TotalTime.Round(time.Millisecond),
				report.ProcessTime.Round(time.Millisecond))
			return nil
		})
	},
}

func init() {
	mediaImportCmd.Flags().StringVarP(&mediaImportDir, "dir", "d", "", "source directory (required)")
	mediaImportCmd.MarkFlagRequired("dir")
	mediaImportCmd.Flags().StringVar(&mediaImportSubdir, "subdir", "import", "destination subdirectory below the media root")
	mediaImportCmd.Flags().BoolVar(&mediaImportWebP, "webp", false, "re-encode images as WebP")
	mediaImportCmd.Flags().Float32Var(&mediaImportQuality, "quality", 85, "WebP encoding quality")
	rootCmd.AddCommand(mediaImportCmd)
}
