package entity

import (
	"github.com/google/uuid"
)

// CalendarDate is a date without time component, formatted as YYYY-MM-DD.
type CalendarDate string

// CalendarDateLayout is the layout of a CalendarDate.
const CalendarDateLayout = "2006-01-02"

func (d CalendarDate) String() string {
	return string(d)
}

// WorkoutLogEntry records that a user trained on a calendar date.
type WorkoutLogEntry struct {
	UserID uuid.UUID    `json:"user_id"`
	Date   CalendarDate `json:"date"`
}
