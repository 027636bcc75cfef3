package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crypto-wallet-client/config"
	"crypto-wallet-client/internal/core/domain"
	"crypto-wallet-client/pkg/apperror"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startPushServer runs a websocket endpoint that sends each payload in order
// and then closes the connection.
func startPushServer(t *testing.T, wantPath string, payloads []string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		for _, p := range payloads {
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(p)))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func recvEvent(t *testing.T, events <-chan domain.ServerEvent) (domain.ServerEvent, bool) {
	t.Helper()
	select {
	case ev, ok := <-events:
		return ev, ok
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for push event")
		return domain.ServerEvent{}, false
	}
}

func TestPushClient_Subscribe_DeliversBalanceSignals(t *testing.T) {
	srv := startPushServer(t, "/user/ws/7", []string{
		"update_balance",
		"something_else",
		"update_balance",
	})

	client := NewPushClient(config.BackendConfig{BaseURL: srv.URL}, zerolog.Nop())
	events, err := client.Subscribe(context.Background(), 7)
	require.NoError(t, err)

	ev, ok := recvEvent(t, events)
	require.True(t, ok)
	assert.Equal(t, domain.EventBalanceUpdated, ev.Type)
	assert.Equal(t, "update_balance", ev.Raw)

	// The unrecognized payload is dropped, not surfaced.
	ev, ok = recvEvent(t, events)
	require.True(t, ok)
	assert.Equal(t, domain.EventBalanceUpdated, ev.Type)

	// Server hangup closes the channel.
	_, ok = recvEvent(t, events)
	assert.False(t, ok)
}

func TestPushClient_Subscribe_ContextCancelClosesChannel(t *testing.T) {
	upgrader := websocket.Upgrader{}
	hold := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		<-hold
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(hold) })

	client := NewPushClient(config.BackendConfig{BaseURL: srv.URL}, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	events, err := client.Subscribe(ctx, 7)
	require.NoError(t, err)

	cancel()

	_, ok := recvEvent(t, events)
	assert.False(t, ok)
}

func TestPushClient_Subscribe_DialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewPushClient(config.BackendConfig{BaseURL: srv.URL}, zerolog.Nop())
	_, err := client.Subscribe(context.Background(), 7)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NET_001", appErr.Code)
}
