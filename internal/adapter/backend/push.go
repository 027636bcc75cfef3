package backend

import (
	"context"
	"fmt"

	"crypto-wallet-client/config"
	"crypto-wallet-client/internal/core/domain"
	"crypto-wallet-client/pkg/apperror"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// PushClient implements ports.PushSubscriber over the backend's per-user
// websocket endpoint. The secure variant (wss) is used whenever the REST base
// URL is https.
type PushClient struct {
	cfg config.BackendConfig
	log zerolog.Logger
}

// NewPushClient creates a push-channel subscriber for the given backend.
func NewPushClient(cfg config.BackendConfig, log zerolog.Logger) *PushClient {
	return &PushClient{
		cfg: cfg,
		log: log.With().Str("component", "push_client").Logger(),
	}
}

// Subscribe dials /user/ws/{userID} and yields typed server events until the
// connection drops or ctx is canceled, at which point the channel closes.
func (p *PushClient) Subscribe(ctx context.Context, userID int64) (<-chan domain.ServerEvent, error) {
	wsURL, err := p.cfg.WebsocketURL(userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, apperror.NetworkError(fmt.Errorf("dialing push channel: %w", err))
	}

	p.log.Info().Int64("user_id", userID).Str("url", wsURL).Msg("push channel open")

	events := make(chan domain.ServerEvent, 1)
	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	go func() {
		defer close(events)
		defer close(done)
		defer conn.Close()
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					p.log.Warn().Err(err).Int64("user_id", userID).Msg("push channel closed")
				}
				return
			}
			ev := domain.ParseServerEvent(string(msg))
			if ev.Type == domain.EventUnknown {
				p.log.Debug().Str("payload", ev.Raw).Msg("ignoring unknown push payload")
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
