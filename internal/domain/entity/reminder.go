package entity

import (
	"github.com/google/uuid"
)

// NotificationPayload is the push message body consumed by the service worker.
type NotificationPayload struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
	URL   string `json:"url,omitempty"`
}

// DispatchOutcome is the result of one reminder attempt.
type DispatchOutcome string

const (
	DispatchDelivered          DispatchOutcome = "delivered"
	DispatchPermanentlyInvalid DispatchOutcome = "permanently_invalid"
	DispatchTransientFailure   DispatchOutcome = "transient_failure"
	DispatchSkipped            DispatchOutcome = "skipped"
)

// ReminderDispatch is one attempt to notify one subscriber. It is never persisted.
type ReminderDispatch struct {
	UserID  uuid.UUID
	Outcome DispatchOutcome
	Err     error
	Removed bool // Subscription was deleted after a permanently-invalid outcome.
}

// ReminderReport summarises one reminder run. It is diagnostic only.
type ReminderReport struct {
	Success              bool         `json:"success"`
	Date                 CalendarDate `json:"date"`
	TotalSubscribers     int          `json:"totalSubscribers"`
	UsersTrained         int          `json:"usersTrained"`
	UsersNotTrained      int          `json:"usersNotTrained"`
	NotificationsSent    int          `json:"notificationsSent"`
	SubscriptionsRemoved int          `json:"subscriptionsRemoved"`
	DeliveryFailures     int          `json:"deliveryFailures"`
	Skipped              int          `json:"skipped"`
}

// Tally folds dispatch results into the report counters.
func (r *ReminderReport) Tally(dispatches []ReminderDispatch) {
	for _, d := range dispatches {
		switch d.Outcome {
		case DispatchDelivered:
			r.NotificationsSent++
		case DispatchPermanentlyInvalid:
			if d.Removed {
				r.SubscriptionsRemoved++
			}
		case DispatchTransientFailure:
			r.DeliveryFailures++
		case DispatchSkipped:
			r.Skipped++
		}
	}
}
