package upload

import (
	"fmt"
	"time"
)

// MakeObjectKey builds the storage key for an uploaded file:
//
//	uploads/YYYY/MM/DD/YYYYMMDD_HHMMSS_mmm_<filename>
//
// The instant is taken in UTC with millisecond precision and the original
// filename is carried verbatim, spaces and unicode included. Two same-name
// uploads within the same millisecond produce the same key and the later
// one overwrites the earlier.
func MakeObjectKey(filename string, now time.Time) string {
	now = now.UTC()
	stamp := fmt.Sprintf("%s_%03d", now.Format("20060102_150405"), now.Nanosecond()/int(time.Millisecond))
	return fmt.Sprintf("uploads/%04d/%02d/%02d/%s_%s", now.Year(), int(now.Month()), now.Day(), stamp, filename)
}
