package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"skillio/internal/domain/entity"
	"skillio/pkg/logger"
)

// AdminChannel is the channel every authenticated admin session joins.
const AdminChannel = "admin"

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// Client is one websocket connection. A channel is a user id or AdminChannel.
type Client struct {
	Channel string
	Conn    *websocket.Conn
	Send    chan []byte
}

func NewClient(channel string, conn *websocket.Conn) *Client {
	return &Client{
		Channel: channel,
		Conn:    conn,
		Send:    make(chan []byte, sendBuffer),
	}
}

// Manager fans marketplace events out to connected customers, taskers and admins.
type Manager struct {
	clients    map[string]map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				if m.clients[client.Channel] == nil {
					m.clients[client.Channel] = make(map[*Client]struct{})
				}
				m.clients[client.Channel][client] = struct{}{}
				m.mutex.Unlock()
				logger.Debug("websocket client registered on %s", client.Channel)

			case client := <-m.Unregister:
				m.remove(client)
				logger.Debug("websocket client unregistered from %s", client.Channel)

			case <-ctx.Done():
				close(m.done)
				m.mutex.Lock()
				for _, set := range m.clients {
					for client := range set {
						close(client.Send)
					}
				}
				m.clients = make(map[string]map[*Client]struct{})
				m.mutex.Unlock()
				return
			}
		}
	}()
}

func (m *Manager) remove(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	set, ok := m.clients[client.Channel]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	close(client.Send)
	if len(set) == 0 {
		delete(m.clients, client.Channel)
	}
}

// Connected reports whether the channel has at least one live connection.
func (m *Manager) Connected(channel string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients[channel]) > 0
}

func (m *Manager) send(channel string, message []byte) {
	m.mutex.RLock()
	var slow []*Client
	for client := range m.clients[channel] {
		select {
		case client.Send <- message:
		default:
			slow = append(slow, client)
		}
	}
	m.mutex.RUnlock()

	for _, client := range slow {
		logger.Warn("dropping slow websocket client on %s", channel)
		m.remove(client)
	}
}

func encodeEvent(event entity.Event) ([]byte, bool) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to encode websocket event %s: %v", event.Type, err)
		return nil, false
	}
	return data, true
}

// Notify pushes an event to every connection of one user.
func (m *Manager) Notify(userID string, event entity.Event) {
	if userID == "" {
		return
	}
	if data, ok := encodeEvent(event); ok {
		m.send(userID, data)
	}
}

func (m *Manager) NotifyAdmins(event entity.Event) {
	if data, ok := encodeEvent(event); ok {
		m.send(AdminChannel, data)
	}
}

// Join hands the client to the running manager. It reports false once the manager has
// stopped, in which case the caller still owns the connection.
func (m *Manager) Join(client *Client) bool {
	select {
	case m.Register <- client:
		return true
	case <-m.done:
		return false
	}
}

func (c *Client) ReadPump(m *Manager) {
	defer func() {
		select {
		case m.Unregister <- c:
		case <-m.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(4096)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket read error on %s: %v", c.Channel, err)
			}
			return
		}
		c.handleIncoming(message)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn("websocket write error on %s: %v", c.Channel, err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
