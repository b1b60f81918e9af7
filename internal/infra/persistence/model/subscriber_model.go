package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
// SubscriptionJSON holds the browser's PushSubscription.toJSON() blob verbatim.
type PushSubscriptionModel struct {
	UserID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SubscriptionJSON datatypes.JSON `gorm:"column:subscription_json;type:jsonb;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
