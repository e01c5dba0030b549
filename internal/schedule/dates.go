package schedule

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// AddTime shifts a YYYY-MM-DD calendar date by delta and returns the date
// component of the shifted instant. An empty date is returned unchanged.
func AddTime(date string, delta time.Duration) (string, error) {
	if date == "" {
		return "", nil
	}
	t, err := parseDate(date)
	if err != nil {
		return "", err
	}
	return t.Add(delta).Format(dateLayout), nil
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}
