// Package fields holds column-level helpers shared by the entities.
package fields

import "log"

// TruncateString enforces a max length on char columns that aren't super
// important, like log-ish text. Over-long values are truncated with a
// warning instead of failing the write.
func TruncateString(value string, maxLen int, column string) string {
	if len(value) > maxLen {
		log.Printf("TruncateString: value of %s exceeds max length %d, truncating", column, maxLen)
		return value[:maxLen]
	}
	return value
}
