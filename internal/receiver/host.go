package receiver

import "context"

// Host is the notification host the handlers run against.
type Host interface {
	// ShowNotification displays a system notification.
	ShowNotification(ctx context.Context, title string, opts NotificationOptions) error

	// Origin is the scheme://host[:port] the worker is registered under.
	Origin() string

	// MatchWindows lists open window clients, including ones the worker does not control.
	MatchWindows(ctx context.Context) ([]WindowClient, error)

	// OpenWindow opens a new window or tab at url.
	OpenWindow(ctx context.Context, url string) error
}

// WindowClient is an open application window.
type WindowClient interface {
	URL() string
	Focus(ctx context.Context) error
}

// Navigable is implemented by window clients that support in-place navigation.
type Navigable interface {
	Navigate(ctx context.Context, url string) error
}

// Lifetime keeps the worker alive until task completes. WaitUntil returns the task's error.
type Lifetime interface {
	WaitUntil(ctx context.Context, task func(ctx context.Context) error) error
}

// DisplayedNotification is the notification the user clicked.
type DisplayedNotification interface {
	Close()
	Data() NotificationData
}

// PushEvent is a delivered push message. Data is nil when the message carried no payload.
type PushEvent struct {
	Data     []byte
	Lifetime Lifetime
}

// ClickEvent is a click on a displayed notification.
type ClickEvent struct {
	Notification DisplayedNotification
	Lifetime     Lifetime
}
