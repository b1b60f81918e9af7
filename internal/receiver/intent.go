// Package receiver models the browser service worker that renders reminders and routes clicks.
//
// The two handlers are pure with respect to the browser: every platform call goes
// through Host, so the same decisions drive the served sw.js and the tests.
package receiver

// NotificationData is the metadata attached to a displayed notification.
type NotificationData struct {
	URL string `json:"url"`
}

// NotificationOptions mirrors the options accepted by showNotification.
type NotificationOptions struct {
	Body     string           `json:"body"`
	Icon     string           `json:"icon"`
	Badge    string           `json:"badge"`
	Vibrate  []int            `json:"vibrate"`
	Tag      string           `json:"tag"`
	Renotify bool             `json:"renotify"`
	Data     NotificationData `json:"data"`
}

// DisplayIntent is what the push handler asks the host to show.
type DisplayIntent struct {
	Title   string
	Options NotificationOptions
	// Fallback is true when the payload was absent or not a JSON object.
	Fallback bool
}

// NavigationAction is how a click was resolved.
type NavigationAction string

const (
	ActionFocus NavigationAction = "focus"
	ActionOpen  NavigationAction = "open"
)

// NavigationIntent is how the click handler resolved the target window.
type NavigationIntent struct {
	Action NavigationAction
	URL    string
	// Navigated is true when a focused window was first moved to URL.
	Navigated bool
}
