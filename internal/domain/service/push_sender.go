// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate collaborators that don't naturally fit within a single entity.
package service

import (
	"context"
	"fmt"
	"time"

	"ignite/internal/domain/entity"
	"ignite/internal/errors"
)

// Urgency values understood by push services.
const (
	UrgencyVeryLow = "very-low"
	UrgencyLow     = "low"
	UrgencyNormal  = "normal"
	UrgencyHigh    = "high"
)

// PushOptions are the delivery hints sent with every push.
type PushOptions struct {
	TTL     time.Duration
	Urgency string
}

// PushSender delivers an opaque payload to a single push endpoint.
//
// Send returns nil when the push service accepted the message, an error
// satisfying IsSubscriptionGone when the endpoint is permanently invalid,
// and any other error for transient failures.
type PushSender interface {
	Send(ctx context.Context, endpoint entity.PushEndpoint, payload []byte, opts PushOptions) error
}

// ErrSubscriptionGone marks an endpoint the push service no longer knows.
var ErrSubscriptionGone = errors.New("push subscription gone")

// PushStatusError carries the HTTP status a push service answered with.
type PushStatusError struct {
	StatusCode int
	Body       string
}

func (e *PushStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("push service responded with status %d", e.StatusCode)
	}

	return fmt.Sprintf("push service responded with status %d: %s", e.StatusCode, e.Body)
}

// Is treats 404 and 410 as ErrSubscriptionGone.
func (e *PushStatusError) Is(target error) bool {
	return target == ErrSubscriptionGone && isGoneStatus(e.StatusCode)
}

func isGoneStatus(code int) bool {
	return code == 404 || code == 410
}

// IsSubscriptionGone reports whether err means the endpoint should be deleted.
func IsSubscriptionGone(err error) bool {
	return err != nil && errors.Is(err, ErrSubscriptionGone)
}
