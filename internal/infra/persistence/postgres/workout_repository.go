package postgres

import (
	"context"
	"time"

	"ignite/internal/domain/entity"
	"ignite/internal/domain/repository"
	"ignite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workoutRepository implements the repository.WorkoutRepository interface.
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository is the constructor for workoutRepository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &workoutRepository{
		db: db,
	}
}

// FindUserIDsTrainedOn returns the distinct users with a workout logged on date.
func (repo *workoutRepository) FindUserIDsTrainedOn(ctx context.Context, date entity.CalendarDate) ([]uuid.UUID, error) {
	day, err := time.Parse(entity.CalendarDateLayout, date.String())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid workout date %q", date)
	}

	var userIDs []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Distinct("user_id").
		Where("data = ?", day.Format(entity.CalendarDateLayout)).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find workouts by date")
	}

	return userIDs, nil
}
