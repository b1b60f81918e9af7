// Package calendar decides calendar-day boundaries in a fixed reference timezone.
//
// "Today" must never depend on the host's local zone: a reminder computed in the
// wrong zone fires for users who already trained or skips users who have not.
package calendar

import (
	"strings"
	"time"

	"ignite/internal/domain/entity"
	"ignite/internal/errors"
)

// ReferenceDate returns the calendar date of now in loc.
func ReferenceDate(now time.Time, loc *time.Location) entity.CalendarDate {
	return entity.CalendarDate(now.In(loc).Format(entity.CalendarDateLayout))
}

// LoadLocation resolves an IANA timezone name. Empty names and "Local" are rejected.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, errors.Errorf("reference timezone must be an explicit IANA name, got %q", name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %s", name)
	}

	return loc, nil
}

// Clock returns the current instant. It is injected so runs can be pinned in tests.
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time {
	return time.Now()
}
