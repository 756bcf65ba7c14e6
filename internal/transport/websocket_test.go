package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/region-mirror/internal/logger"
	"github.com/MKhiriev/region-mirror/models"
)

var upgrader = websocket.Upgrader{}

// newTestRegion starts a websocket server that feeds every decoded request
// envelope to handle. handle may write responses and notifies on conn.
func newTestRegion(t *testing.T, handle func(conn *websocket.Conn, env models.Envelope)) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			var env models.Envelope
			if err := conn.ReadJSON(&env); err != nil {
				return
			}
			handle(conn, env)
		}
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialTest(t *testing.T, url string) Transport {
	t.Helper()

	tr, err := Dial(context.Background(), WebsocketConfig{
		URL:            url,
		Session:        models.Session{Cookie: "sessionid=test"},
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })

	return tr
}

func TestWebsocket_CallRoundTrip(t *testing.T) {
	url := newTestRegion(t, func(conn *websocket.Conn, env models.Envelope) {
		assert.Equal(t, models.MessageRequest, env.Type)
		assert.Equal(t, "machine.get", env.Method)

		_ = conn.WriteJSON(models.Envelope{
			Type:      models.MessageResponse,
			RequestID: env.RequestID,
			Result:    json.RawMessage(`{"system_id":"abc"}`),
		})
	})

	tr := dialTest(t, url)

	result, err := tr.Call(context.Background(), "machine.get", map[string]any{"system_id": "abc"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"system_id":"abc"}`, string(result))
}

func TestWebsocket_CallServerError(t *testing.T) {
	url := newTestRegion(t, func(conn *websocket.Conn, env models.Envelope) {
		_ = conn.WriteJSON(models.Envelope{
			Type:      models.MessageResponse,
			RequestID: env.RequestID,
			Error:     "no such machine",
		})
	})

	tr := dialTest(t, url)

	_, err := tr.Call(context.Background(), "machine.get", nil)
	require.Error(t, err)

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, "no such machine", srvErr.Message)
}

func TestWebsocket_NotifyDeliveredInOrder(t *testing.T) {
	// Сервер шлёт два notify перед ответом — порядок должен сохраниться.
	url := newTestRegion(t, func(conn *websocket.Conn, env models.Envelope) {
		_ = conn.WriteJSON(models.Envelope{
			Type:   models.MessageNotify,
			Name:   "machine",
			Action: models.ActionCreate,
			Data:   json.RawMessage(`{"system_id":"m1"}`),
		})
		_ = conn.WriteJSON(models.Envelope{
			Type:   models.MessageNotify,
			Name:   "machine",
			Action: models.ActionDelete,
			Data:   json.RawMessage(`"m1"`),
		})
		_ = conn.WriteJSON(models.Envelope{
			Type:      models.MessageResponse,
			RequestID: env.RequestID,
			Result:    json.RawMessage(`[]`),
		})
	})

	tr := dialTest(t, url)

	var mu sync.Mutex
	var actions []string
	tr.RegisterNotifier("machine", func(n models.Notification) {
		mu.Lock()
		actions = append(actions, n.Action)
		mu.Unlock()
	})

	// The response is dispatched after both notifies on the same read
	// loop, so once Call returns the notifier has seen them.
	_, err := tr.Call(context.Background(), "machine.list", nil)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{models.ActionCreate, models.ActionDelete}, actions)
}

func TestWebsocket_NotifyOtherChannelIgnored(t *testing.T) {
	url := newTestRegion(t, func(conn *websocket.Conn, env models.Envelope) {
		_ = conn.WriteJSON(models.Envelope{
			Type:   models.MessageNotify,
			Name:   "device",
			Action: models.ActionCreate,
			Data:   json.RawMessage(`{"system_id":"d1"}`),
		})
		_ = conn.WriteJSON(models.Envelope{
			Type:      models.MessageResponse,
			RequestID: env.RequestID,
			Result:    json.RawMessage(`[]`),
		})
	})

	tr := dialTest(t, url)

	called := false
	tr.RegisterNotifier("machine", func(models.Notification) { called = true })

	_, err := tr.Call(context.Background(), "machine.list", nil)
	require.NoError(t, err)
	assert.False(t, called)
}

func TestWebsocket_CallAfterClose(t *testing.T) {
	url := newTestRegion(t, func(conn *websocket.Conn, env models.Envelope) {})

	tr := dialTest(t, url)
	require.NoError(t, tr.Close())

	_, err := tr.Call(context.Background(), "machine.list", nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWebsocket_CallContextCancelled(t *testing.T) {
	// Сервер молчит — вызов должен завершиться по контексту.
	url := newTestRegion(t, func(conn *websocket.Conn, env models.Envelope) {})

	tr := dialTest(t, url)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := tr.Call(ctx, "machine.list", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWebsocket_UnregisterHandler(t *testing.T) {
	url := newTestRegion(t, func(conn *websocket.Conn, env models.Envelope) {})

	tr := dialTest(t, url)

	id := tr.RegisterHandler(EventOpen, func() {})
	tr.UnregisterHandler(EventOpen, id)
	// повторное удаление — no-op
	tr.UnregisterHandler(EventOpen, id)
}

func TestWebsocket_DialFailure(t *testing.T) {
	_, err := Dial(context.Background(), WebsocketConfig{
		URL: "ws://127.0.0.1:1/ws",
	}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial region websocket")
}
