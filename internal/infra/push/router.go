package push

import (
	"context"

	"ignite/internal/domain/entity"
	"ignite/internal/domain/service"
	"ignite/internal/errors"
)

// ErrChannelUnavailable is returned for endpoints whose channel has no credentials.
var ErrChannelUnavailable = errors.New("push channel not configured for endpoint")

type router struct {
	webPush  service.PushSender
	firebase service.PushSender
}

// NewRouter picks the delivery channel from the endpoint shape. Either sender may be nil.
func NewRouter(webPush, firebase service.PushSender) service.PushSender {
	return &router{
		webPush:  webPush,
		firebase: firebase,
	}
}

func (r *router) Send(ctx context.Context, endpoint entity.PushEndpoint, payload []byte, opts service.PushOptions) error {
	switch {
	case endpoint.IsWebPush() && r.webPush != nil:
		return r.webPush.Send(ctx, endpoint, payload, opts)
	case endpoint.IsFCM() && r.firebase != nil:
		return r.firebase.Send(ctx, endpoint, payload, opts)
	default:
		return errors.Wrapf(ErrChannelUnavailable, "endpoint %s", endpoint.ShortName())
	}
}
