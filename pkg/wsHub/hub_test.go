package ws

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*ConnectionHub, *httptest.Server) {
	t.Helper()

	hub := NewConnHub(logger.New(io.Discard, "ws-test", logger.LevelError))
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn := NewConn(context.Background(), uuid.New(), c)
		_ = hub.Add(conn)
		_ = conn.Listen(func(map[string]any) error { return nil })
		_ = hub.Delete(conn.ID())
	}))
	t.Cleanup(srv.Close)

	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestHub_Broadcast(t *testing.T) {
	hub, srv := newTestHub(t)

	first := dial(t, srv)
	second := dial(t, srv)

	require.Eventually(t, func() bool { return hub.Len() == 2 }, time.Second, 10*time.Millisecond)

	sent := hub.Broadcast(map[string]any{"workout_type": "RUN"})
	assert.Equal(t, 2, sent)

	for _, c := range []*websocket.Conn{first, second} {
		require.NoError(t, c.SetReadDeadline(time.Now().Add(time.Second)))
		var got map[string]any
		require.NoError(t, c.ReadJSON(&got))
		assert.Equal(t, "RUN", got["workout_type"])
	}
}

func TestHub_DeleteUnknown(t *testing.T) {
	hub := NewConnHub(logger.New(io.Discard, "ws-test", logger.LevelError))

	assert.ErrorIs(t, hub.Delete(uuid.New()), ErrConnIsNotFound)
	assert.ErrorIs(t, hub.Add(nil), ErrEmptyConn)
}

func TestHub_Close(t *testing.T) {
	hub, srv := newTestHub(t)
	dial(t, srv)

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Zero(t, hub.Len())
}

// stalledConn never drains its queue, like a subscriber that stopped reading
func stalledConn(buffer int) *Conn {
	ctx, cancel := context.WithCancel(context.Background())
	return &Conn{
		id:      uuid.New(),
		send:    make(chan any, buffer),
		doneCtx: ctx,
		cancel:  cancel,
	}
}

func TestConn_Send(t *testing.T) {
	c := stalledConn(1)

	require.NoError(t, c.Send("first"))
	assert.ErrorIs(t, c.Send("second"), ErrSendQueueFull)

	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.Send("third"), ErrConnClosed)
}

func TestConn_WriteLoopClosesUnhealthy(t *testing.T) {
	c := stalledConn(1)
	go c.writeLoop(time.Millisecond)

	require.Eventually(t, func() bool { return c.doneCtx.Err() != nil }, time.Second, 5*time.Millisecond)
	assert.Error(t, c.health())
}

func TestHub_BroadcastDoesNotWaitForSlowSubscriber(t *testing.T) {
	hub, srv := newTestHub(t)
	client := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	slow := stalledConn(1)
	require.NoError(t, slow.Send("backlog"))
	require.NoError(t, hub.Add(slow))

	start := time.Now()
	sent := hub.Broadcast(map[string]any{"workout_type": "WLK"})
	assert.Less(t, time.Since(start), writeWait)

	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, hub.Len())
	assert.ErrorIs(t, slow.Send("x"), ErrConnClosed)

	require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
	var got map[string]any
	require.NoError(t, client.ReadJSON(&got))
	assert.Equal(t, "WLK", got["workout_type"])
}
