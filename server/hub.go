package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/render"
	"github.com/katalvlaran/lvwalk/session"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = pongWait * 9 / 10
	sendBuffer   = 32
	maxMessage   = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 16 * 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Message types pushed to clients.
const (
	MsgHello = "hello"
	MsgView  = "view"
	MsgError = "error"
)

// ViewMessage is the frame pushed after every change.
type ViewMessage struct {
	Type     string `json:"type"`
	ClientID string `json:"client_id,omitempty"`
	session.View
	Frame render.Frame `json:"frame"`
}

// ErrorMessage reports a rejected intent back to its sender only.
type ErrorMessage struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Error  string `json:"error"`
}

// Intent is a pointer or control event sent by a client.
type Intent struct {
	Action string      `json:"action"`
	X      float64     `json:"x,omitempty"`
	Y      float64     `json:"y,omitempty"`
	Node   core.NodeID `json:"node,omitempty"`
}

// Intent actions.
const (
	ActCanvasClick     = "canvas_click"
	ActNodeClick       = "node_click"
	ActNodeDoubleClick = "node_double_click"
	ActSetStart        = "set_start"
)

// client is one websocket connection with its single writer goroutine.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (cl *client) close() {
	cl.once.Do(func() { close(cl.send) })
}

// Hub fans Views out to websocket clients and feeds their intents to the
// session.
type Hub struct {
	sess    *session.Session
	logger  *slog.Logger
	metrics *httpMetrics

	mu      sync.Mutex
	clients map[string]*client
	closed  bool

	unsubscribe func()
}

func newHub(sess *session.Session, logger *slog.Logger, m *httpMetrics) *Hub {
	h := &Hub{
		sess:    sess,
		logger:  logger,
		metrics: m,
		clients: make(map[string]*client),
	}
	h.unsubscribe = sess.Subscribe(h.broadcast)

	return h
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Close disconnects every client and detaches from the session.
func (h *Hub) Close() {
	h.unsubscribe()
	h.mu.Lock()
	h.closed = true
	for id := range h.clients {
		h.removeLocked(id)
	}
	h.mu.Unlock()
}

func viewMessage(v session.View, clientID string, kind string) ViewMessage {
	return ViewMessage{
		Type:     kind,
		ClientID: clientID,
		View:     v,
		Frame:    render.FromPlayback(v.Graph, v.Playback),
	}
}

// broadcast is the session subscriber. Slow clients are dropped rather than
// allowed to block the session.
func (h *Hub) broadcast(v session.View) {
	payload, err := json.Marshal(viewMessage(v, "", MsgView))
	if err != nil {
		h.logger.Error("encode view", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, cl := range h.clients {
		select {
		case cl.send <- payload:
		default:
			h.logger.Warn("dropping slow websocket client", "client_id", id)
			h.removeLocked(id)
		}
	}
}

// serve upgrades the request and runs the client until it disconnects.
func (h *Hub) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	cl := &client{id: uuid.New().String(), conn: conn, send: make(chan []byte, sendBuffer)}

	hello, err := json.Marshal(viewMessage(h.sess.View(), cl.id, MsgHello))
	if err != nil {
		h.logger.Error("encode hello", "error", err)
		conn.Close()
		return
	}
	cl.send <- hello

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[cl.id] = cl
	h.metrics.wsClients.Inc()
	h.mu.Unlock()
	h.logger.Info("websocket client connected", "client_id", cl.id)

	go h.writeLoop(cl)
	h.readLoop(cl)
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	h.removeLocked(id)
	h.mu.Unlock()
}

func (h *Hub) removeLocked(id string) {
	cl, ok := h.clients[id]
	if !ok {
		return
	}
	delete(h.clients, id)
	cl.close()
	h.metrics.wsClients.Dec()
}

// readLoop decodes intents until the connection fails.
func (h *Hub) readLoop(cl *client) {
	defer func() {
		h.remove(cl.id)
		cl.conn.Close()
		h.logger.Info("websocket client disconnected", "client_id", cl.id)
	}()

	cl.conn.SetReadLimit(maxMessage)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var in Intent
		if err := cl.conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", "client_id", cl.id, "error", err)
			}
			return
		}
		if err := h.apply(in); err != nil {
			h.reply(cl, ErrorMessage{Type: MsgError, Action: in.Action, Error: err.Error()})
		}
	}
}

// apply routes one intent to the session.
func (h *Hub) apply(in Intent) error {
	switch in.Action {
	case ActCanvasClick:
		_, err := h.sess.CanvasClicked(in.X, in.Y)
		return err
	case ActNodeClick:
		_, _, err := h.sess.NodeClicked(in.Node)
		return err
	case ActNodeDoubleClick:
		return h.sess.NodeDoubleClicked(in.Node)
	case ActSetStart:
		return h.sess.SetStart(in.Node)
	default:
		return runAction(h.sess, in.Action)
	}
}

func (h *Hub) reply(cl *client, msg ErrorMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[cl.id]; !ok {
		return
	}
	select {
	case cl.send <- payload:
	default:
	}
}

// writeLoop is the only goroutine that writes to cl.conn.
func (h *Hub) writeLoop(cl *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.logger.Debug("websocket write failed", "client_id", cl.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
