package push

import (
	"context"
	"log/slog"

	"ignite/config"
	"ignite/internal/domain/service"
	"ignite/internal/errors"

	"go.uber.org/fx"
)

// Params holds dependencies for the push channel, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New builds the delivery channel from whichever credentials are configured.
// It returns a nil sender when none are, so the scheduler reports a configuration error.
func New(params Params) (service.PushSender, error) {
	cfg := params.Config

	var webPush, fcm service.PushSender

	if cfg.VAPID != nil && cfg.VAPID.PublicKey != "" && cfg.VAPID.PrivateKey != "" {
		sender, err := NewWebPushSender(WebPushConfig{
			PublicKey:  cfg.VAPID.PublicKey,
			PrivateKey: cfg.VAPID.PrivateKey,
			Subscriber: cfg.VAPID.Subscriber,
		}, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create web push sender")
		}
		webPush = sender
	}

	if cfg.Firebase != nil && cfg.Firebase.CredentialsPath != "" {
		sender, err := NewFirebaseSender(params.Ctx, FirebaseConfig{
			ProjectID:       cfg.Firebase.ProjectID,
			CredentialsPath: cfg.Firebase.CredentialsPath,
			LinkOrigin:      cfg.Firebase.LinkOrigin,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firebase sender")
		}
		fcm = sender
	}

	if webPush == nil && fcm == nil {
		params.Logger.Warn("No push channel configured, reminder runs will fail until VAPID keys or Firebase credentials are set")

		return nil, nil
	}

	params.Logger.Info("Push channels ready",
		slog.Bool("web_push", webPush != nil),
		slog.Bool("fcm", fcm != nil),
	)

	return NewRouter(webPush, fcm), nil
}
