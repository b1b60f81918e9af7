package receiver

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"ignite/internal/errors"
)

// Defaults used when a push carries no usable payload.
const (
	DefaultTitle = "Gym Ignite 🔥"
	DefaultBody  = "Bora treinar? A chama não pode apagar!"
	DefaultURL   = "/"
	DefaultIcon  = "/icon-192.png"
	DefaultTag   = "gym-ignite-notif"
)

// DefaultVibrate is the vibration pattern in milliseconds.
var DefaultVibrate = []int{200, 100, 200}

// Appearance controls how every reminder is rendered.
type Appearance struct {
	Title   string
	Body    string
	URL     string
	Icon    string
	Badge   string
	Tag     string
	Vibrate []int
}

// DefaultAppearance returns the Gym Ignite defaults.
func DefaultAppearance() Appearance {
	return Appearance{
		Title:   DefaultTitle,
		Body:    DefaultBody,
		URL:     DefaultURL,
		Icon:    DefaultIcon,
		Badge:   DefaultIcon,
		Tag:     DefaultTag,
		Vibrate: append([]int(nil), DefaultVibrate...),
	}
}

// Handler implements the push and notification-click handlers.
type Handler struct {
	host       Host
	appearance Appearance
	logger     *slog.Logger
}

// NewHandler creates a handler bound to host.
func NewHandler(host Host, appearance Appearance, logger *slog.Logger) *Handler {
	return &Handler{
		host:       host,
		appearance: appearance,
		logger:     logger,
	}
}

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
	// Data carries the fields when the message came through FCM
	Data json.RawMessage `json:"data"`
}

func (p pushPayload) blank() bool {
	return strings.TrimSpace(p.Title) == "" && strings.TrimSpace(p.Body) == "" && strings.TrimSpace(p.URL) == ""
}

// unwrap reads the fields from the nested data object when the top level has none.
func (p pushPayload) unwrap() pushPayload {
	if !p.blank() {
		return p
	}

	var inner pushPayload
	data := bytes.TrimSpace(p.Data)
	if len(data) == 0 || data[0] != '{' || json.Unmarshal(data, &inner) != nil {
		return p
	}

	return inner
}

// BuildDisplayIntent turns raw push data into what should be shown. It never fails.
func (h *Handler) BuildDisplayIntent(data []byte) DisplayIntent {
	a := h.appearance

	var payload pushPayload
	fallback := false

	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		fallback = true
	case trimmed[0] != '{' || json.Unmarshal(trimmed, &payload) != nil:
		// Not the expected shape: keep the raw text as the body.
		fallback = true
		payload = pushPayload{Body: string(data)}
	default:
		payload = payload.unwrap()
	}

	title := firstNonBlank(payload.Title, a.Title)
	target := firstNonBlank(payload.URL, a.URL)

	return DisplayIntent{
		Title: title,
		Options: NotificationOptions{
			Body:     firstNonBlank(payload.Body, a.Body),
			Icon:     a.Icon,
			Badge:    a.Badge,
			Vibrate:  append([]int(nil), a.Vibrate...),
			Tag:      a.Tag,
			Renotify: true,
			Data:     NotificationData{URL: target},
		},
		Fallback: fallback,
	}
}

// OnPush shows the notification for ev, keeping the worker alive until the host has displayed it.
func (h *Handler) OnPush(ctx context.Context, ev PushEvent) DisplayIntent {
	intent := h.BuildDisplayIntent(ev.Data)

	err := ev.Lifetime.WaitUntil(ctx, func(ctx context.Context) error {
		return h.host.ShowNotification(ctx, intent.Title, intent.Options)
	})
	if err != nil {
		h.logger.Warn("Failed to show notification", slog.Any("error", err))
	}

	return intent
}

// OnNotificationClick closes the notification and focuses a same-origin window or opens a new one.
func (h *Handler) OnNotificationClick(ctx context.Context, ev ClickEvent) NavigationIntent {
	ev.Notification.Close()

	target := firstNonBlank(ev.Notification.Data().URL, DefaultURL)
	intent := NavigationIntent{Action: ActionOpen, URL: target}

	err := ev.Lifetime.WaitUntil(ctx, func(ctx context.Context) error {
		resolved, err := h.resolveWindow(ctx, target)
		intent = resolved

		return err
	})
	if err != nil {
		h.logger.Warn("Failed to route notification click",
			slog.String("url", target),
			slog.String("action", string(intent.Action)),
			slog.Any("error", err),
		)
	}

	return intent
}

func (h *Handler) resolveWindow(ctx context.Context, target string) (NavigationIntent, error) {
	windows, err := h.host.MatchWindows(ctx)
	if err != nil {
		h.logger.Warn("Failed to enumerate windows, opening a new one", slog.Any("error", err))
		windows = nil
	}

	origin := h.host.Origin()
	for _, client := range windows {
		if !sameOrigin(client.URL(), origin) {
			continue
		}

		intent := NavigationIntent{Action: ActionFocus, URL: target}
		if nav, ok := client.(Navigable); ok {
			if navErr := nav.Navigate(ctx, target); navErr == nil {
				intent.Navigated = true
			} else {
				h.logger.Debug("In-place navigation failed, focusing only", slog.Any("error", navErr))
			}
		}

		if focusErr := client.Focus(ctx); focusErr != nil {
			// A window that cannot be focused must not leave the click unanswered.
			h.logger.Debug("Focus failed, trying next window", slog.Any("error", focusErr))

			continue
		}

		return intent, nil
	}

	if err := h.host.OpenWindow(ctx, target); err != nil {
		return NavigationIntent{Action: ActionOpen, URL: target}, errors.Wrap(err, "open window")
	}

	return NavigationIntent{Action: ActionOpen, URL: target}, nil
}

func sameOrigin(rawURL, origin string) bool {
	if origin == "" {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}

	o, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return strings.EqualFold(u.Scheme, o.Scheme) && strings.EqualFold(u.Host, o.Host)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
