package analytics

import (
	"errors"
	"fmt"
	"time"
)

// dayLayout is the only accepted calendar-day format. Earlier data sources
// used DD-MM-YYYY; that form is rejected rather than reinterpreted, so an
// input like "01-02-2022" can never be read two different ways.
const dayLayout = "2006-01-02"

// ErrInvalidDate marks a malformed day string. Callers use it to tell a bad
// request apart from a day that simply has no data.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// DayBounds resolves an ISO calendar day to its inclusive UTC window
// [00:00:00, 23:59:59] as millisecond timestamps.
func DayBounds(date string) (startMillis, endMillis int64, err error) {
	day, err := time.ParseInLocation(dayLayout, date, time.UTC)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	start := day
	end := day.Add(24*time.Hour - time.Second)
	return start.UnixMilli(), end.UnixMilli(), nil
}
