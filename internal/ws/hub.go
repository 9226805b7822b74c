package ws

import (
	"context"

	"yolearn/internal/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type delivery struct {
	userID  uuid.UUID
	message []byte
}

// Hub tracks live connections per user. All state is owned by Run.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	deliver    chan delivery
	register   chan *Client
	unregister chan *Client
	count      chan chan int
	done       chan struct{}
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		deliver:    make(chan delivery, 1024),
		register:   make(chan *Client),
		unregister: make(chan *Client, 128),
		count:      make(chan chan int),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves the hub until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, set := range h.clients {
				for c := range set {
					h.drop(c)
				}
			}
			return

		case c := <-h.register:
			if c == nil {
				continue
			}
			set, ok := h.clients[c.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[c.userID] = set
			}
			set[c] = struct{}{}
			observability.WebSocketConnections.Inc()
			h.logger.Debug("[WS] connected", zap.String("user_id", c.userID.String()), zap.Int("user_clients", len(set)))

		case c := <-h.unregister:
			if c == nil {
				continue
			}
			h.drop(c)
			h.logger.Debug("[WS] disconnected", zap.String("user_id", c.userID.String()))

		case d := <-h.deliver:
			for c := range h.clients[d.userID] {
				select {
				case c.send <- d.message:
				default:
					h.logger.Warn("[WS] slow client dropped", zap.String("user_id", d.userID.String()))
					h.drop(c)
				}
			}

		case reply := <-h.count:
			n := 0
			for _, set := range h.clients {
				n += len(set)
			}
			reply <- n
		}
	}
}

func (h *Hub) drop(c *Client) {
	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	close(c.send)
	observability.WebSocketConnections.Dec()
}

// Register blocks until Run takes c. Once the hub has stopped, c.send is
// closed instead.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		close(c.send)
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Deliver queues message for every connection of userID. Messages are
// dropped when the hub is saturated or stopped.
func (h *Hub) Deliver(userID uuid.UUID, message []byte) {
	select {
	case h.deliver <- delivery{userID: userID, message: message}:
	case <-h.done:
	default:
		h.logger.Warn("[WS] delivery dropped", zap.String("reason", "buffer_full"))
	}
}

// ClientCount returns the number of live connections, or 0 once stopped.
func (h *Hub) ClientCount() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}
