package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"logic-looper-backend/internal/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	redisService *services.RedisService
	hub          *WebSocketHub
}

type WebSocketHub struct {
	clients    map[string]*websocket.Conn
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
}

type Client struct {
	UserID string
	Conn   *websocket.Conn
}

type Message struct {
	Type   string      `json:"type"`
	UserID string      `json:"user_id,omitempty"`
	Data   interface{} `json:"data"`
}

func NewWebSocketHandler(redisService *services.RedisService) *WebSocketHandler {
	hub := &WebSocketHub{
		clients:    make(map[string]*websocket.Conn),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 100),
	}

	go hub.run()

	return &WebSocketHandler{
		redisService: redisService,
		hub:          hub,
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	userID := c.GetString("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade to WebSocket: %v", err)
		return
	}

	client := &Client{
		UserID: userID,
		Conn:   conn,
	}

	h.hub.register <- client

	defer func() {
		h.hub.unregister <- client
		conn.Close()
	}()

	h.sendStats(client)

	for {
		var msg Message
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		h.handleMessage(client, &msg)
	}
}

func (h *WebSocketHandler) handleMessage(client *Client, msg *Message) {
	switch msg.Type {
	case "PING":
		h.sendPong(client)
	case "GET_STATS":
		h.sendStats(client)
	}
}

func (h *WebSocketHandler) sendStats(client *Client) {
	stats, err := h.redisService.GetStats(client.UserID)
	if err != nil {
		log.Printf("Failed to get stats for WS: %v", err)
		return
	}

	msg := Message{
		Type: "STATS_UPDATE",
		Data: gin.H{
			"puzzles_solved": stats.PuzzlesSolved,
			"streak_count":   stats.StreakCount,
			"total_points":   stats.TotalPoints,
			"last_played":    stats.LastPlayed,
		},
	}

	client.Conn.WriteJSON(msg)
}

func (h *WebSocketHandler) sendPong(client *Client) {
	msg := Message{
		Type: "PONG",
		Data: gin.H{
			"timestamp": time.Now().Unix(),
		},
	}

	client.Conn.WriteJSON(msg)
}

func (hub *WebSocketHub) run() {
	for {
		select {
		case client := <-hub.register:
			hub.clients[client.UserID] = client.Conn
			log.Printf("Client registered: %s", client.UserID)

		case client := <-hub.unregister:
			if _, ok := hub.clients[client.UserID]; ok {
				delete(hub.clients, client.UserID)
				log.Printf("Client unregistered: %s", client.UserID)
			}

		case message := <-hub.broadcast:
			hub.broadcastMessage(message)
		}
	}
}

func (hub *WebSocketHub) broadcastMessage(message *Message) {
	if message.UserID != "" {
		if conn, ok := hub.clients[message.UserID]; ok {
			conn.WriteJSON(message)
		}
	} else {
		for _, conn := range hub.clients {
			conn.WriteJSON(message)
		}
	}
}

// BroadcastScoresSynced notifies the syncing user's other sessions that
// their stats moved.
func (h *WebSocketHandler) BroadcastScoresSynced(userID string, puzzlesSolved, totalPoints, streak int) {
	msg := &Message{
		Type:   "SCORES_SYNCED",
		UserID: userID,
		Data: gin.H{
			"puzzles_solved": puzzlesSolved,
			"total_points":   totalPoints,
			"streak_count":   streak,
			"timestamp":      time.Now().Unix(),
		},
	}

	h.hub.broadcast <- msg
}

// BroadcastLeaderboardChanged tells every connected client which boards
// need a refresh.
func (h *WebSocketHandler) BroadcastLeaderboardChanged(timeframes []string) {
	msg := &Message{
		Type: "LEADERBOARD_CHANGED",
		Data: gin.H{
			"timeframes": timeframes,
			"timestamp":  time.Now().Unix(),
		},
	}

	h.hub.broadcast <- msg
}
