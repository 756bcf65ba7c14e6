package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/region-mirror/internal/logger"
	"github.com/MKhiriev/region-mirror/models"
)

const redialDelay = 2 * time.Second

// WebsocketConfig holds the settings needed to dial the region's websocket
// endpoint.
type WebsocketConfig struct {
	// URL is the websocket endpoint (ws:// or wss://).
	URL string
	// Session is the authenticated HTTP session obtained via Login.
	Session models.Session
	// RequestTimeout bounds each Call round-trip. Zero means no timeout
	// beyond the caller's context.
	RequestTimeout time.Duration
}

type callResult struct {
	result []byte
	err    error
}

type wsTransport struct {
	cfg WebsocketConfig
	log *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// writeMu serializes writes; gorilla allows one concurrent writer.
	writeMu sync.Mutex

	mu        sync.Mutex
	conn      *websocket.Conn
	pending   map[string]chan callResult
	notifiers map[string][]NotifyFunc
	handlers  map[string]map[int64]EventFunc
	nextID    int64
	closed    bool
}

// Dial opens the websocket connection to the region and starts the read
// loop. The connection is redialed automatically after a loss, with
// [EventClose] and [EventOpen] fired around every cycle.
func Dial(ctx context.Context, cfg WebsocketConfig, log *logger.Logger) (Transport, error) {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	t := &wsTransport{
		cfg:       cfg,
		log:       log,
		ctx:       runCtx,
		cancel:    cancel,
		pending:   make(map[string]chan callResult),
		notifiers: make(map[string][]NotifyFunc),
		handlers:  make(map[string]map[int64]EventFunc),
	}

	conn, err := t.dial(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("dial region websocket: %w", err)
	}
	t.conn = conn

	t.wg.Add(1)
	go t.run(conn)

	return t, nil
}

func (t *wsTransport) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	if t.cfg.Session.Cookie != "" {
		header.Set("Cookie", t.cfg.Session.Cookie)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, t.cfg.URL, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s (status %d): %w", t.cfg.URL, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("dial %s: %w", t.cfg.URL, err)
	}
	return conn, nil
}

// Call implements Transport.
func (t *wsTransport) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if t.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.RequestTimeout)
		defer cancel()
	}

	id := uuid.NewString()
	ch := make(chan callResult, 1)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil, ErrClosed
	}
	conn := t.conn
	if conn == nil {
		t.mu.Unlock()
		return nil, ErrNotConnected
	}
	t.pending[id] = ch
	t.mu.Unlock()

	env := models.Envelope{
		Type:      models.MessageRequest,
		RequestID: id,
		Method:    method,
		Params:    params,
	}
	if err := t.writeJSON(conn, env); err != nil {
		t.dropPending(id)
		return nil, fmt.Errorf("write %s request: %w", method, err)
	}

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, res.err
		}
		return res.result, nil
	case <-ctx.Done():
		t.dropPending(id)
		return nil, fmt.Errorf("call %s: %w", method, ctx.Err())
	}
}

func (t *wsTransport) writeJSON(conn *websocket.Conn, env models.Envelope) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return conn.WriteJSON(env)
}

func (t *wsTransport) dropPending(id string) {
	t.mu.Lock()
	delete(t.pending, id)
	t.mu.Unlock()
}

// RegisterNotifier implements Transport.
func (t *wsTransport) RegisterNotifier(name string, fn NotifyFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notifiers[name] = append(t.notifiers[name], fn)
}

// RegisterHandler implements Transport.
func (t *wsTransport) RegisterHandler(event string, fn EventFunc) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	id := t.nextID
	if t.handlers[event] == nil {
		t.handlers[event] = make(map[int64]EventFunc)
	}
	t.handlers[event][id] = fn
	return id
}

// UnregisterHandler implements Transport.
func (t *wsTransport) UnregisterHandler(event string, id int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.handlers[event], id)
}

// Close implements Transport.
func (t *wsTransport) Close() error {
	t.cancel()

	t.mu.Lock()
	t.closed = true
	conn := t.conn
	t.conn = nil
	t.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	t.wg.Wait()
	t.failPending(ErrClosed)
	return nil
}

func (t *wsTransport) run(conn *websocket.Conn) {
	defer t.wg.Done()

	for {
		err := t.readLoop(conn)
		_ = conn.Close()
		t.failPending(err)
		t.emit(EventClose)

		if t.ctx.Err() != nil {
			return
		}
		t.log.Warn().Err(err).Msg("region connection lost, redialing")

		conn = t.redial()
		if conn == nil {
			return
		}

		t.mu.Lock()
		t.conn = conn
		t.mu.Unlock()
		t.emit(EventOpen)
	}
}

func (t *wsTransport) readLoop(conn *websocket.Conn) error {
	for {
		var env models.Envelope
		if err := conn.ReadJSON(&env); err != nil {
			return err
		}
		t.dispatch(env)
	}
}

func (t *wsTransport) redial() *websocket.Conn {
	for {
		conn, err := t.dial(t.ctx)
		if err == nil {
			return conn
		}

		select {
		case <-t.ctx.Done():
			return nil
		case <-time.After(redialDelay):
		}
	}
}

func (t *wsTransport) dispatch(env models.Envelope) {
	switch env.Type {
	case models.MessageResponse:
		t.mu.Lock()
		ch, ok := t.pending[env.RequestID]
		delete(t.pending, env.RequestID)
		t.mu.Unlock()

		if !ok {
			t.log.Debug().Str("request_id", env.RequestID).Msg("response for unknown request")
			return
		}

		res := callResult{result: env.Result}
		if env.Error != "" {
			res.err = &ServerError{Method: env.Method, Message: env.Error}
		}
		ch <- res

	case models.MessageNotify:
		t.mu.Lock()
		fns := make([]NotifyFunc, len(t.notifiers[env.Name]))
		copy(fns, t.notifiers[env.Name])
		t.mu.Unlock()

		// Delivered synchronously on the read goroutine so that arrival
		// order is preserved per channel.
		n := models.Notification{Action: env.Action, Data: env.Data}
		for _, fn := range fns {
			fn(n)
		}

	default:
		t.log.Warn().Int("type", int(env.Type)).Msg("unexpected message type")
	}
}

func (t *wsTransport) failPending(err error) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]chan callResult)
	t.mu.Unlock()

	for _, ch := range pending {
		ch <- callResult{err: fmt.Errorf("connection lost: %w", err)}
	}
}

// emit runs event handlers on their own goroutines: an open handler may issue
// calls, which must not block the read loop.
func (t *wsTransport) emit(event string) {
	t.mu.Lock()
	fns := make([]EventFunc, 0, len(t.handlers[event]))
	for _, fn := range t.handlers[event] {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		go fn()
	}
}
