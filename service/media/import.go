package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Eboreg/klaatu-go/core/storage"
	entity "github.com/Eboreg/klaatu-go/model/entity"
	mediaRepository "github.com/Eboreg/klaatu-go/model/repository/media"
)

// ImportOptions controls a batch import from a local directory.
type ImportOptions struct {
	Resize ResizeOptions
	// Subdir is the destination below the media root (default "import").
	Subdir string
}

// ImportReport summarizes a batch import run.
type ImportReport struct {
	Scanned     int
	Imported    int
	Skipped     int
	Warnings    []string
	TotalTime   time.Duration
	ProcessTime time.Duration
}

var importableExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// ImportDirectory processes every image file directly inside srcDir and
// stores it below the media root, recording one MediaFile row each. Files
// whose destination path is already recorded are skipped.
func ImportDirectory(db *gorm.DB, store *storage.FileSystemStorage, srcDir string, opts ImportOptions) (*ImportReport, error) {
	start := time.Now()
	if opts.Subdir == "" {
		opts.Subdir = "import"
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, err
	}

	repo := mediaRepository.NewMediaRepository(db)
	existing, err := repo.PathSet()
	if err != nil {
		return nil, err
	}

	report := &ImportReport{}
	for _, e := range entries {
		if e.IsDir() || !importableExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		report.Scanned++

		f, err := os.Open(filepath.Join(srcDir, e.Name()))
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		pStart := time.Now()
		res, err := Process(f, opts.Resize)
		f.Close()
		report.ProcessTime += time.Since(pStart)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}

		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		dest := filepath.Join(opts.Subdir, base+Ext(res.Format))
		if existing[dest] {
			report.Skipped++
			continue
		}

		if err := store.Save(dest, bytes.NewReader(res.Data)); err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		meta, _ := json.Marshal(map[string]any{
			"orig_name":   e.Name(),
			"orig_width":  res.OrigWidth,
			"orig_height": res.OrigHeight,
			"resized":     res.Resized,
		})
		file := &entity.MediaFile{
			Path:     dest,
			Format:   res.Format,
			Width:    res.Width,
			Height:   res.Height,
			Size:     int64(len(res.Data)),
			Metadata: datatypes.JSON(meta),
		}
		if err := repo.Create(file); err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		existing[dest] = true
		report.Imported++
	}

	report.TotalTime = time.Since(start)
	return report, nil
}
