package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"turfbook/internal/handler/middleware"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	historyReplaySize = 50
	writeWait         = 10 * time.Second
	sendBufferSize    = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS policy is enforced by the HTTP middleware before upgrade
		return true
	},
}

type outboundMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type inboundMessage struct {
	Body string `json:"body"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// ChatHub is a single broadcast room: every authenticated user shares one
// community channel, messages are persisted and replayed to newcomers.
type ChatHub struct {
	mu          sync.Mutex
	clients     map[*client]struct{}
	chatCmds    commands.ChatCommands
	chatQueries queries.ChatQueries
	userQueries queries.UserQueries
}

func NewChatHub(chatCmds commands.ChatCommands, chatQueries queries.ChatQueries, userQueries queries.UserQueries) *ChatHub {
	return &ChatHub{
		clients:     make(map[*client]struct{}),
		chatCmds:    chatCmds,
		chatQueries: chatQueries,
		userQueries: userQueries,
	}
}

func (h *ChatHub) Handle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	userView, err := h.userQueries.GetAuthorizedUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not found",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	h.register(cl)

	go cl.writeLoop()
	h.replayHistory(c.Request.Context(), cl)
	h.readLoop(cl, userID, userView.Email)
}

func (h *ChatHub) register(cl *client) {
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
}

func (h *ChatHub) unregister(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()
	cl.conn.Close()
}

func (h *ChatHub) replayHistory(ctx context.Context, cl *client) {
	history, err := h.chatQueries.Recent(ctx, historyReplaySize)
	if err != nil {
		slog.Warn("failed to load chat history", "error", err.Error())
		return
	}
	for _, msg := range history {
		payload, err := json.Marshal(outboundMessage{
			ID:        msg.ID,
			UserID:    msg.UserID,
			UserEmail: msg.UserEmail,
			Body:      msg.Body,
			CreatedAt: msg.CreatedAt,
		})
		if err != nil {
			continue
		}
		select {
		case cl.send <- payload:
		default:
			return
		}
	}
}

func (h *ChatHub) readLoop(cl *client, userID uuid.UUID, userEmail string) {
	defer h.unregister(cl)

	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			return
		}

		var in inboundMessage
		if err := json.Unmarshal(raw, &in); err != nil || in.Body == "" {
			continue
		}

		msgID, err := h.chatCmds.PostMessage(context.Background(), userID, in.Body)
		if err != nil {
			slog.Warn("failed to persist chat message", "user_id", userID, "error", err.Error())
			continue
		}

		payload, err := json.Marshal(outboundMessage{
			ID:        msgID,
			UserID:    userID,
			UserEmail: userEmail,
			Body:      in.Body,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			continue
		}
		h.broadcast(payload)
	}
}

// broadcast drops slow consumers instead of blocking the room.
func (h *ChatHub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for cl := range h.clients {
		select {
		case cl.send <- payload:
		default:
			delete(h.clients, cl)
			close(cl.send)
			cl.conn.Close()
		}
	}
}

func (cl *client) writeLoop() {
	for payload := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
	_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
