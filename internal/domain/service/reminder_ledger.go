package service

import (
	"context"

	"ignite/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderLedger remembers which users already received today's reminder.
type ReminderLedger interface {
	// Claim reserves the reminder for userID on date before it is sent.
	// It returns false when another run already holds the slot.
	Claim(ctx context.Context, date entity.CalendarDate, userID uuid.UUID) (bool, error)

	// Release frees a claimed slot whose reminder was not delivered.
	Release(ctx context.Context, date entity.CalendarDate, userID uuid.UUID) error
}
