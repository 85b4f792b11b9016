// Package jobs holds the built-in cron job functions. This package must not
// import config (config.CronJobs refers to these functions), so settings are
// read straight from the environment.
package jobs

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Eboreg/klaatu-go/core/cache"
	"github.com/Eboreg/klaatu-go/core/storage"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// MediaCleanupJob removes temporary upload files older than 24 hours from
// <MEDIA_ROOT>/tmp.
func MediaCleanupJob(args ...string) {
	store := storage.NewFileSystemStorage(getenv("MEDIA_ROOT", "media"))
	files, err := store.ListRecursive("tmp", storage.SortSpec{Key: storage.SortMTime})
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("MediaCleanupJob:", err)
		}
		return
	}
	cutoff := time.Now().Add(-24 * time.Hour)
	removed := 0
	for _, name := range files {
		full := store.Path(filepath.Join("tmp", name))
		info, err := os.Stat(full)
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(full); err == nil {
			removed++
		}
	}
	log.Printf("MediaCleanupJob: removed %d stale upload(s)", removed)
}

// CacheDumpJob persists the in-process cache so fragments survive restarts.
func CacheDumpJob(args ...string) {
	file := getenv("CACHE_DUMP_FILE", "cache_dump.json")
	if err := cache.GetInstance().DumpToFile(file); err != nil {
		log.Println("CacheDumpJob:", err)
		return
	}
	log.Println("CacheDumpJob: dumped cache to", file)
}
