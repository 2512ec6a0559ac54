package hostmodules

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"embervm/internal/registry"
	"embervm/internal/value"
)

// wsConn wraps a client WebSocket connection as the payload of a User
// object. Modeled on the reference network package's WebSocketConn: a
// background reader goroutine feeds a buffered channel so net.recv can
// block with a timeout instead of calling into gorilla directly from the
// native call (which would tie up the fiber on a blocking read with no
// way to cancel it).
type wsConn struct {
	conn     *websocket.Conn
	mu       sync.Mutex
	closed   bool
	messages chan []byte
}

func dialWebSocket(url string) (*wsConn, error) {
	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	ws := &wsConn{conn: conn, messages: make(chan []byte, 64)}
	go ws.readLoop()
	return ws, nil
}

func (w *wsConn) readLoop() {
	defer close(w.messages)
	for {
		_, msg, err := w.conn.ReadMessage()
		if err != nil {
			w.mu.Lock()
			w.closed = true
			w.mu.Unlock()
			return
		}
		select {
		case w.messages <- msg:
		default:
			<-w.messages
			w.messages <- msg
		}
	}
}

func (w *wsConn) send(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errClosed
	}
	return w.conn.WriteMessage(websocket.TextMessage, []byte(text))
}

func (w *wsConn) recv(timeout time.Duration) (string, bool) {
	select {
	case msg, ok := <-w.messages:
		if !ok {
			return "", false
		}
		return string(msg), true
	case <-time.After(timeout):
		return "", false
	}
}

func (w *wsConn) close() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return w.conn.Close()
}

var errClosed = &closedError{}

type closedError struct{}

func (*closedError) Error() string { return "websocket connection is closed" }

const defaultRecvTimeout = 5 * time.Second

// RegisterNet registers the "net" module: dial/send/recv/close over a
// client WebSocket connection, built on gorilla/websocket.
func RegisterNet(h *registry.Host) *value.Script {
	net := h.NewModule("net")

	registry.AddFunction(net, "dial", func(fiber *value.Fiber) bool {
		url, ok := registry.GetArgValue(fiber, 1, value.KindString)
		if !ok {
			return false
		}
		ws, err := dialWebSocket(value.AsObject(url).(*value.String).Go())
		if err != nil {
			return value.Failf(fiber, "net.dial failed: $", err.Error())
		}
		registry.ReturnValue(fiber, value.FromObject(value.NewUser(ws)))
		return true
	}, 1)

	registry.AddFunction(net, "send", func(fiber *value.Fiber) bool {
		ws, ok := netHandle(fiber, 1)
		if !ok {
			return false
		}
		text, ok := registry.GetArgValue(fiber, 2, value.KindString)
		if !ok {
			return false
		}
		if err := ws.send(value.AsObject(text).(*value.String).Go()); err != nil {
			return value.Failf(fiber, "net.send failed: $", err.Error())
		}
		registry.ReturnNull(fiber)
		return true
	}, 2)

	registry.AddFunction(net, "recv", func(fiber *value.Fiber) bool {
		ws, ok := netHandle(fiber, 1)
		if !ok {
			return false
		}
		msg, ok := ws.recv(defaultRecvTimeout)
		if !ok {
			return value.Failf(fiber, "net.recv timed out or connection closed.")
		}
		registry.ReturnValue(fiber, value.FromObject(value.NewString(msg)))
		return true
	}, 1)

	registry.AddFunction(net, "close", func(fiber *value.Fiber) bool {
		ws, ok := netHandle(fiber, 1)
		if !ok {
			return false
		}
		ws.close()
		registry.ReturnNull(fiber)
		return true
	}, 1)

	return net
}

func netHandle(fiber *value.Fiber, i int) (*wsConn, bool) {
	v, ok := registry.GetArgValue(fiber, i, value.KindUser)
	if !ok {
		return nil, false
	}
	ws, ok := value.AsObject(v).(*value.User).Ptr.(*wsConn)
	if !ok {
		return nil, value.Failf(fiber, "Expected a net handle at argument $.", i)
	}
	return ws, true
}
