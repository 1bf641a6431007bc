package websocket

import (
	"encoding/json"
	"time"

	"skillio/pkg/logger"
)

const (
	MessageTypePing = "ping"
	MessageTypePong = "pong"
)

// WSMessage is the envelope clients send. Server pushes use entity.Event.
type WSMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

func (c *Client) handleIncoming(raw []byte) {
	var msg WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Debug("ignoring malformed websocket message on %s: %v", c.Channel, err)
		return
	}

	switch msg.Type {
	case MessageTypePing:
		reply, _ := json.Marshal(WSMessage{
			Type:      MessageTypePong,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		select {
		case c.Send <- reply:
		default:
		}
	default:
		logger.Debug("ignoring websocket message type %q on %s", msg.Type, c.Channel)
	}
}
