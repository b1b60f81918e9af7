package service

import (
	"time"

	"ignite/internal/domain/entity"
)

// ReminderMetrics records reminder run telemetry.
type ReminderMetrics interface {
	ObserveDispatch(outcome entity.DispatchOutcome)
	ObserveRun(duration time.Duration, success bool)
}
