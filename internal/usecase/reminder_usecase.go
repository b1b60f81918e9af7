// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"ignite/internal/domain/entity"
)

// ReminderUsecase defines the daily reminder operation
type ReminderUsecase interface {
	// RunDailyReminders notifies every subscriber who has not logged a workout today.
	// Store failures abort the run; per-subscriber delivery failures never do.
	RunDailyReminders(ctx context.Context) (*entity.ReminderReport, error)
}
