package repository

import (
	"context"

	"ignite/internal/domain/entity"

	"github.com/google/uuid"
)

// WorkoutRepository reads workout log entries owned by the main application.
type WorkoutRepository interface {
	// FindUserIDsTrainedOn returns the distinct users with a workout logged on date.
	FindUserIDsTrainedOn(ctx context.Context, date entity.CalendarDate) ([]uuid.UUID, error)
}
