package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkoutModel is the GORM-specific struct for the 'treinos' table.
// The table is owned by the main application; this module only reads it.
type WorkoutModel struct {
	ID     int64          `gorm:"primaryKey"`
	UserID uuid.UUID      `gorm:"type:uuid;not null;index:idx_treinos_user_data"`
	Data   datatypes.Date `gorm:"column:data;not null;index:idx_treinos_user_data"`
	Hora   *int           `gorm:"column:hora"`
}

// TableName explicitly sets the table name for GORM.
func (WorkoutModel) TableName() string {
	return "treinos"
}
