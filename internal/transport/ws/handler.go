// Package ws streams keystrokes from a browser into a typing tracker.
package ws

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/typing"
)

const (
	writeWait      = 10 * time.Second
	idleWait       = 5 * time.Minute
	maxMessageSize = 4096
)

// Client message types.
const (
	MsgStart = "start"
	MsgKey   = "key"
	MsgPaste = "paste"
	MsgStop  = "stop"
)

// Server message types.
const (
	MsgStarted = "started"
	MsgMetrics = "metrics"
	MsgError   = "error"
)

// ClientMessage is one event from the browser. Key uses the tracker's key
// names ("Backspace", "Delete" or the typed character).
type ClientMessage struct {
	Type    string `json:"type"`
	Key     string `json:"key,omitempty"`
	TextLen int    `json:"text_len,omitempty"`
	Chars   int    `json:"chars,omitempty"`
	Text    string `json:"text,omitempty"` // stop only; analysed when set
}

// ServerMessage is a reply. Keys and pastes are not acknowledged.
type ServerMessage struct {
	Type     string                `json:"type"`
	Metrics  *typing.TypingMetrics `json:"metrics,omitempty"`
	Analysis *persona.Analysis     `json:"analysis,omitempty"`
	Error    string                `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler serves GET /v1/ws/typing. Each connection owns one tracker and
// may capture any number of answers in sequence.
type Handler struct {
	clock  typing.Clock
	logger *zap.Logger
}

// NewHandler creates the handler. A nil clock uses time.Now.
func NewHandler(clock typing.Clock, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{clock: clock, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	tracker := typing.NewTracker(h.clock)
	h.logger.Debug("typing capture connected", zap.String("remote", r.RemoteAddr))

	for {
		conn.SetReadDeadline(time.Now().Add(idleWait))
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read", zap.Error(err))
			}
			return
		}

		reply, ok := handle(tracker, msg)
		if !ok {
			continue
		}
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(reply); err != nil {
			h.logger.Warn("websocket write", zap.Error(err))
			return
		}
	}
}

// handle applies msg to the tracker and returns the reply, if any.
func handle(t *typing.Tracker, msg ClientMessage) (ServerMessage, bool) {
	switch msg.Type {
	case MsgStart:
		t.Start()
		return ServerMessage{Type: MsgStarted}, true
	case MsgKey:
		t.TrackKeypress(msg.Key, msg.TextLen)
		return ServerMessage{}, false
	case MsgPaste:
		t.TrackPaste(msg.Chars)
		return ServerMessage{}, false
	case MsgStop:
		m, err := t.Stop()
		if errors.Is(err, typing.ErrNotRunning) {
			return ServerMessage{Type: MsgError, Error: "capture not started"}, true
		}
		reply := ServerMessage{Type: MsgMetrics, Metrics: m}
		if strings.TrimSpace(msg.Text) != "" {
			reply.Analysis = persona.Analyze(msg.Text, m)
		}
		return reply, true
	}
	return ServerMessage{Type: MsgError, Error: "unknown message type " + msg.Type}, true
}
