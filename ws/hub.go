package ws

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Hub holds connections and subscribes to Redis channels for cross-instance
// delivery. Each user may hold several connections at once.
type Hub struct {
	rdb        *redis.Client
	clients    map[int]map[*Client]bool // userID -> set of clients
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
}

type Message struct {
	TargetUser int
	Payload    []byte
}

// NewHub starts the hub loop. rdb may be nil; the hub then delivers to
// local connections only.
func NewHub(rdb *redis.Client) *Hub {
	h := &Hub{
		rdb:        rdb,
		clients:    make(map[int]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	if h.rdb != nil {
		// subscribe to per-user channels so events published by any
		// instance reach clients connected here
		pubsub := h.rdb.PSubscribe(context.Background(), "user:*")
		ch := pubsub.Channel()
		go func() {
			for msg := range ch {
				id, err := strconv.Atoi(strings.TrimPrefix(msg.Channel, "user:"))
				if err != nil {
					continue
				}
				h.broadcast <- &Message{TargetUser: id, Payload: []byte(msg.Payload)}
			}
		}()
	}

	for {
		select {
		case c := <-h.register:
			if _, ok := h.clients[c.userID]; !ok {
				h.clients[c.userID] = make(map[*Client]bool)
			}
			h.clients[c.userID][c] = true
			log.Printf("ws client registered: user %d", c.userID)
		case c := <-h.unregister:
			if conns, ok := h.clients[c.userID]; ok {
				if _, exists := conns[c]; exists {
					delete(conns, c)
					close(c.send)
				}
				if len(conns) == 0 {
					delete(h.clients, c.userID)
				}
			}
		case m := <-h.broadcast:
			conns, ok := h.clients[m.TargetUser]
			if !ok {
				continue
			}
			for c := range conns {
				select {
				case c.send <- m.Payload:
				default:
					close(c.send)
					delete(conns, c)
				}
			}
		}
	}
}

func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// NotifyUser enqueues a payload for every active connection of a user.
// With Redis available the payload goes through pub/sub so other instances
// deliver it too; the local subscription loops it back to this instance.
func (h *Hub) NotifyUser(userID int, payload []byte) {
	if h.rdb != nil {
		ch := fmt.Sprintf("user:%d", userID)
		if err := h.rdb.Publish(context.Background(), ch, payload).Err(); err == nil {
			return
		}
		log.Printf("ws publish failed for user %d, delivering locally", userID)
	}
	h.broadcast <- &Message{TargetUser: userID, Payload: payload}
}
