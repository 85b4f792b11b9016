package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// RunExclusive runs fn while holding a non-blocking flock on a lockfile named
// after the command. A second concurrent invocation fails immediately instead
// of queueing.
func RunExclusive(name string, fn func() error) error {
	lockfile := filepath.Join(os.TempDir(), "klaatu-"+name+".lock")
	f, err := os.OpenFile(lockfile, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		return fmt.Errorf("%s is already running in another process", name)
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	return fn()
}
