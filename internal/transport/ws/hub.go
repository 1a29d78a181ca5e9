package ws

import (
	"encoding/json"
	"sync"

	"intakeflow/internal/logger"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgQuestionAsked    MessageType = "question_asked"
	MsgAnswerReceived   MessageType = "answer_received"
	MsgAnalysisUpdated  MessageType = "analysis_updated"
	MsgSessionResolved  MessageType = "session_resolved"
	MsgSessionExhausted MessageType = "session_exhausted"
	MsgError            MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages observer connections per intake session. Observers are
// read-only: an advisor dashboard watching the conversation progress. All
// mutation goes through the REST API.
type Hub struct {
	// session id -> connections
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents one observer WebSocket connection
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast to a session's observers
type BroadcastMessage struct {
	SessionID string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.SessionID] == nil {
				h.conns[conn.SessionID] = make(map[*Connection]bool)
			}
			h.conns[conn.SessionID][conn] = true
			h.mu.Unlock()
			logger.Log.WithField("session", conn.SessionID).Debug("observer connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if observers, ok := h.conns[conn.SessionID]; ok && observers[conn] {
				delete(observers, conn)
				close(conn.Send)
				if len(observers) == 0 {
					delete(h.conns, conn.SessionID)
				}
			}
			h.mu.Unlock()
			logger.Log.WithField("session", conn.SessionID).Debug("observer disconnected")

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.SessionID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToSession sends a message to all observers of a session
// (implements service.Broadcaster)
func (h *Hub) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// DisconnectSession drops all observer connections of a session (implements
// service.Broadcaster). Used on session reset.
func (h *Hub) DisconnectSession(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[sessionID] {
		close(conn.Send)
	}
	delete(h.conns, sessionID)
}
