// Package storage implements file storage under a root directory, with
// recursive listings orderable by name, size, directory-ness and timestamps.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type SortKey int

const (
	SortName SortKey = iota
	SortSize
	SortIsDir
	SortCTime
	SortMTime
)

// SortSpec pairs a sort key with its direction.
type SortSpec struct {
	Key     SortKey
	Reverse bool
}

// FileSystemStorage stores files under Root. All paths given to and returned
// from its methods are relative to Root.
type FileSystemStorage struct {
	Root string
}

func NewFileSystemStorage(root string) *FileSystemStorage {
	return &FileSystemStorage{Root: root}
}

// Path returns the absolute path for a storage-relative name.
func (s *FileSystemStorage) Path(name string) string {
	return filepath.Join(s.Root, filepath.FromSlash(name))
}

func (s *FileSystemStorage) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Save writes content to name, creating parent directories as needed.
func (s *FileSystemStorage) Save(name string, content io.Reader) error {
	full := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, content)
	return err
}

func (s *FileSystemStorage) Open(name string) (*os.File, error) {
	return os.Open(s.Path(name))
}

func (s *FileSystemStorage) Delete(name string) error {
	return os.Remove(s.Path(name))
}

type fileEntry struct {
	relPath string
	info    os.FileInfo
}

// ListRecursive lists all files under path (storage-relative), ordered by
// the given sort keys. Directories themselves are not listed, matching the
// recursive file listing of the original storage layer.
func (s *FileSystemStorage) ListRecursive(path string, keys ...SortSpec) ([]string, error) {
	root := s.Path(path)
	var entries []fileEntry
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		entries = append(entries, fileEntry{relPath: filepath.ToSlash(rel), info: info})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortEntries(entries, keys)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = strings.Trim(e.relPath, "/")
	}
	return out, nil
}

// sortEntries orders entries by each key in turn; each key's direction is
// independent of the others.
func sortEntries(entries []fileEntry, keys []SortSpec) {
	if len(keys) == 0 {
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		for _, spec := range keys {
			cmp := compareBy(a, b, spec.Key)
			if cmp == 0 {
				continue
			}
			if spec.Reverse {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareBy(a, b fileEntry, key SortKey) int {
	switch key {
	case SortName:
		return strings.Compare(filepath.Base(a.relPath), filepath.Base(b.relPath))
	case SortSize:
		return compareInt64(a.info.Size(), b.info.Size())
	case SortIsDir:
		return compareBool(a.info.IsDir(), b.info.IsDir())
	case SortCTime, SortMTime:
		// ctime is not portably available; both map to mtime here
		return compareInt64(a.info.ModTime().UnixNano(), b.info.ModTime().UnixNano())
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	}
	return 0
}
