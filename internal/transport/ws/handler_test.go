package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/typing"
)

// steppingClock advances by step on every read.
func steppingClock(step time.Duration) typing.Clock {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func dial(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg ClientMessage) ServerMessage {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
	var reply ServerMessage
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestCapture(t *testing.T) {
	conn := dial(t, NewHandler(steppingClock(100*time.Millisecond), nil))

	assert.Equal(t, MsgStarted, roundTrip(t, conn, ClientMessage{Type: MsgStart}).Type)

	for _, k := range []string{"o", "l", "x", typing.KeyBackspace, "á"} {
		require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgKey, Key: k}))
	}
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgPaste, Chars: 5}))

	reply := roundTrip(t, conn, ClientMessage{Type: MsgStop, Text: "olá mundo"})
	require.Equal(t, MsgMetrics, reply.Type)
	require.NotNil(t, reply.Metrics)
	assert.Equal(t, 9, reply.Metrics.CharacterCount)
	assert.Equal(t, 1, reply.Metrics.BackspaceCount)
	assert.Equal(t, 1, reply.Metrics.PasteCount())
	assert.Equal(t, int64(700), reply.Metrics.TotalTimeMs)
	require.NotNil(t, reply.Analysis)

	// the same connection can capture another answer
	assert.Equal(t, MsgStarted, roundTrip(t, conn, ClientMessage{Type: MsgStart}).Type)
	reply = roundTrip(t, conn, ClientMessage{Type: MsgStop})
	assert.Equal(t, 0, reply.Metrics.CharacterCount)
	assert.Nil(t, reply.Analysis)
}

func TestStopWithoutStart(t *testing.T) {
	conn := dial(t, NewHandler(nil, nil))

	reply := roundTrip(t, conn, ClientMessage{Type: MsgStop})
	assert.Equal(t, MsgError, reply.Type)

	reply = roundTrip(t, conn, ClientMessage{Type: "bogus"})
	assert.Equal(t, MsgError, reply.Type)
	assert.Contains(t, reply.Error, "bogus")
}
