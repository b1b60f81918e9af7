// Package push implements the push delivery channels used by the reminder scheduler.
package push

import (
	"context"
	"io"
	"net/http"
	"time"

	"ignite/internal/domain/entity"
	"ignite/internal/domain/service"
	"ignite/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
)

const (
	defaultPushHTTPTimeout = 30 * time.Second
	maxErrorBodyBytes      = 512
)

// WebPushConfig holds the VAPID application server identity.
type WebPushConfig struct {
	PublicKey  string
	PrivateKey string
	Subscriber string // mailto address or https URL; webpush-go adds "mailto:" when missing
}

type webPushSender struct {
	cfg    WebPushConfig
	client webpush.HTTPClient
}

// NewWebPushSender creates a VAPID web push sender. A nil client uses a default http.Client.
func NewWebPushSender(cfg WebPushConfig, client webpush.HTTPClient) (service.PushSender, error) {
	if cfg.PublicKey == "" || cfg.PrivateKey == "" {
		return nil, errors.New("vapid public and private keys are required")
	}

	if client == nil {
		client = &http.Client{Timeout: defaultPushHTTPTimeout}
	}

	return &webPushSender{
		cfg:    cfg,
		client: client,
	}, nil
}

// Send encrypts payload for the subscription and posts it to the push service.
func (s *webPushSender) Send(ctx context.Context, endpoint entity.PushEndpoint, payload []byte, opts service.PushOptions) error {
	if !endpoint.IsWebPush() {
		return errors.New("endpoint is not a web push subscription")
	}

	sub := &webpush.Subscription{
		Endpoint: endpoint.Endpoint,
		Keys: webpush.Keys{
			P256dh: endpoint.Keys.P256dh,
			Auth:   endpoint.Keys.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, sub, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.cfg.Subscriber,
		VAPIDPublicKey:  s.cfg.PublicKey,
		VAPIDPrivateKey: s.cfg.PrivateKey,
		TTL:             int(opts.TTL / time.Second),
		Urgency:         webpush.Urgency(opts.Urgency),
	})
	if err != nil {
		return errors.Wrap(err, "send web push")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	return &service.PushStatusError{StatusCode: resp.StatusCode, Body: string(body)}
}
