package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/internal/domain/entity"
)

func newTestServer(t *testing.T, m *Manager, channel string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(channel, conn)
		if !m.Join(client) {
			conn.Close()
			return
		}
		go client.ReadPump(m)
		go client.WritePump()
	}))
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestManager_NotifyReachesUserChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	srv := newTestServer(t, m, "user-1")
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	require.Eventually(t, func() bool { return m.Connected("user-1") }, time.Second, 10*time.Millisecond)

	m.Notify("user-1", entity.Event{Type: entity.EventBookingStatus, Payload: map[string]string{"id": "BK-1"}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got entity.Event
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, entity.EventBookingStatus, got.Type)
	assert.False(t, got.At.IsZero())
}

func TestManager_PingGetsPong(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	srv := newTestServer(t, m, AdminChannel)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(WSMessage{Type: MessageTypePing}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply WSMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, MessageTypePong, reply.Type)
}

func TestManager_UnregistersOnClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	srv := newTestServer(t, m, "user-2")
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return m.Connected("user-2") }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return !m.Connected("user-2") }, 2*time.Second, 10*time.Millisecond)

	m.Notify("user-2", entity.Event{Type: entity.EventBookingCreated})
}

func TestManager_JoinAfterStopDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager()
	m.Start(ctx)
	cancel()

	select {
	case <-m.done:
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not stop")
	}

	joined := make(chan bool, 1)
	go func() { joined <- m.Join(NewClient("user-3", nil)) }()

	select {
	case ok := <-joined:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Join blocked after the manager stopped")
	}
	assert.False(t, m.Connected("user-3"))
}
