package push

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"ignite/internal/domain/entity"
	"ignite/internal/domain/service"
	"ignite/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client the sender needs
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseSender struct {
	client messagingClient
	// linkOrigin resolves relative reminder URLs, FCM only accepts absolute https links
	linkOrigin *url.URL
}

// FirebaseConfig configures the FCM sender
type FirebaseConfig struct {
	ProjectID       string
	CredentialsPath string
	// LinkOrigin is the https origin of the web app, e.g. https://gymignite.app
	LinkOrigin string
}

// NewFirebaseSender creates an FCM sender for subscriptions registered with a Firebase token
func NewFirebaseSender(ctx context.Context, cfg FirebaseConfig, opts ...option.ClientOption) (service.PushSender, error) {
	linkOrigin, err := parseLinkOrigin(cfg.LinkOrigin)
	if err != nil {
		return nil, err
	}

	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseSender(client, linkOrigin), nil
}

func newFirebaseSender(client messagingClient, linkOrigin *url.URL) *firebaseSender {
	return &firebaseSender{client: client, linkOrigin: linkOrigin}
}

func parseLinkOrigin(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, nil
	}

	origin, err := url.Parse(raw)
	if err != nil || origin.Scheme != "https" || origin.Host == "" {
		return nil, errors.Errorf("firebase link origin %q must be an absolute https URL", raw)
	}

	return origin, nil
}

// clickLink returns the absolute https link for target, or "" when none can be built.
func (s *firebaseSender) clickLink(target string) string {
	if target == "" {
		return ""
	}

	ref, err := url.Parse(target)
	if err != nil {
		return ""
	}
	if !ref.IsAbs() && s.linkOrigin != nil {
		ref = s.linkOrigin.ResolveReference(ref)
	}
	if ref.Scheme != "https" || ref.Host == "" {
		return ""
	}

	return ref.String()
}

// Send delivers payload as FCM web push data so the same service worker can render it
func (s *firebaseSender) Send(ctx context.Context, endpoint entity.PushEndpoint, payload []byte, opts service.PushOptions) error {
	if !endpoint.IsFCM() {
		return errors.New("endpoint is not an FCM registration token")
	}

	var notification entity.NotificationPayload
	if err := json.Unmarshal(payload, &notification); err != nil {
		return errors.Wrap(err, "fcm payload must be a notification JSON object")
	}

	message := &messaging.Message{
		Token: endpoint.FCMToken,
		Webpush: &messaging.WebpushConfig{
			Headers: map[string]string{
				"TTL":     strconv.Itoa(int(opts.TTL / time.Second)),
				"Urgency": opts.Urgency,
			},
			Data: map[string]string{
				"title": notification.Title,
				"body":  notification.Body,
				"url":   notification.URL,
			},
		},
	}
	if link := s.clickLink(notification.URL); link != "" {
		message.Webpush.FCMOptions = &messaging.WebpushFCMOptions{Link: link}
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		// INVALID_ARGUMENT also covers bad message fields, only UNREGISTERED is about the token
		if messaging.IsUnregistered(err) {
			return errors.Join(service.ErrSubscriptionGone, err)
		}

		return errors.Wrap(err, "failed to send fcm notification")
	}

	return nil
}
