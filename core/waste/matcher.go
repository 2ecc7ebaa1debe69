package waste

import (
	"time"

	"github.com/mossyhq/binminder/core/model"
)

// FindTomorrow returns the bin due the day after today, if any. Entries are
// scanned in schedule order and the first match wins; later entries for the
// same date are ignored. The second return is false when nothing is due.
func FindTomorrow(schedule model.Schedule, today time.Time) (model.Bin, bool) {
	target := civil(today).AddDate(0, 0, 1)
	for _, e := range schedule {
		if civil(e.Date).Equal(target) {
			return e.Bin, true
		}
	}
	return model.Bin{}, false
}

// civil strips the time-of-day and zone, leaving a UTC-midnight date.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
