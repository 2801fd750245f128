package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ChatHub fans chat-widget messages out to every connection subscribed to a
// session. One visitor can hold the same session open in several tabs.
type ChatHub struct {
	clients    map[string]map[*websocket.Conn]bool // sessionID -> set of clients
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	repo       *repository.ChatRepository
}

type Subscription struct {
	Conn      *websocket.Conn
	SessionID string
}

type BroadcastMessage struct {
	SessionID string
	Message   *entity.UserChat
}

func NewChatHub(repo *repository.ChatRepository) *ChatHub {
	return &ChatHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastMessage),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		repo:       repo,
	}
}

func (h *ChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.SessionID] == nil {
				h.clients[sub.SessionID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.SessionID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.SessionID][sub.Conn]; ok {
				delete(h.clients[sub.SessionID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.SessionID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.SessionID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish hands a stored message to the broadcast loop. Safe to call from
// any request handler once Run is going.
func (h *ChatHub) Publish(sessionID string, msg *entity.UserChat) {
	h.broadcast <- BroadcastMessage{SessionID: sessionID, Message: msg}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/chat/:sessionId
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	sessionID := c.Param("sessionId")

	user, err := h.repo.FindUserBySession(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, SessionID: sessionID}
	h.register <- sub

	go h.listenMessages(sub, user.ID)
}

func (h *ChatHub) listenMessages(sub Subscription, userID uint) {
	defer func() { h.unregister <- sub }()

	for {
		_, msgData, err := sub.Conn.ReadMessage()
		if err != nil {
			log.Printf("ws read error: %v", err)
			break
		}

		var payload struct {
			Message string `json:"message"`
			IsBot   bool   `json:"is_bot"`
		}
		if err := json.Unmarshal(msgData, &payload); err != nil {
			log.Printf("invalid payload: %v", err)
			continue
		}
		if payload.Message == "" {
			continue
		}

		chat := entity.UserChat{
			UserID:    userID,
			SessionID: sub.SessionID,
			Message:   payload.Message,
			IsBot:     payload.IsBot,
		}
		if err := h.repo.Append(&chat); err != nil {
			log.Printf("ws store error: %v", err)
			continue
		}

		h.Publish(sub.SessionID, &chat)
	}
}
