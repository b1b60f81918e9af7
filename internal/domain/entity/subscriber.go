// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PushKeys are the client's encryption keys from PushSubscription.toJSON().
type PushKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushEndpoint addresses one browser for push delivery. It is stored as an opaque blob and never edited in place.
type PushEndpoint struct {
	Endpoint       string   `json:"endpoint,omitempty"`       // Push service URL (web push).
	ExpirationTime *int64   `json:"expirationTime,omitempty"` // Optional expiry reported by the browser, epoch millis.
	Keys           PushKeys `json:"keys"`                     // Encryption keys for the payload.
	FCMToken       string   `json:"fcmToken,omitempty"`       // Registration token when the client subscribed through FCM.
}

// IsWebPush reports whether the endpoint is a standard VAPID web push subscription.
func (e PushEndpoint) IsWebPush() bool {
	return e.Endpoint != ""
}

// IsFCM reports whether the endpoint is a Firebase registration token.
func (e PushEndpoint) IsFCM() bool {
	return e.Endpoint == "" && e.FCMToken != ""
}

// ShortName returns a log-safe prefix of the endpoint.
func (e PushEndpoint) ShortName() string {
	name := e.Endpoint
	if name == "" {
		name = e.FCMToken
	}

	return name[:min(40, len(name))]
}

// Valid reports whether the endpoint carries enough information to be addressed.
func (e PushEndpoint) Valid() bool {
	if e.IsFCM() {
		return true
	}

	return strings.HasPrefix(e.Endpoint, "https://") && e.Keys.P256dh != "" && e.Keys.Auth != ""
}

// Subscriber represents one device registered for reminder delivery. There is at most one per user.
type Subscriber struct {
	UserID    uuid.UUID    `json:"user_id"`    // The account that owns the subscription.
	Endpoint  PushEndpoint `json:"endpoint"`   // Where reminders are delivered.
	CreatedAt time.Time    `json:"created_at"` // Timestamp of the first registration.
	UpdatedAt time.Time    `json:"updated_at"` // Timestamp of the last upsert.
}
