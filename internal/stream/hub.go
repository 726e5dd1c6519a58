package stream

import (
	"context"
	"log"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub fans newly created alerts out to websocket subscribers, keyed by the
// alert's owning user. With a Redis client it also publishes every broadcast
// and forwards publishes from other processes; with a nil client it works
// purely in-process.
type Hub struct {
	redis   *redis.Client
	clients map[int]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	ID     string
	UserID int
	Send   chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[int]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(userID int) *Client {
	client := &Client{
		ID:     uuid.NewString(),
		UserID: userID,
		Send:   make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = map[*Client]struct{}{}
	}
	h.clients[userID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if userClients, ok := h.clients[client.UserID]; ok {
		delete(userClients, client)
		if len(userClients) == 0 {
			delete(h.clients, client.UserID)
		}
	}
	close(client.Send)
}

func (h *Hub) Broadcast(userID int, payload []byte) {
	// Sends stay under the read lock: Unregister mutates the map and closes
	// Send under the write lock, so an unlocked send could hit a closed
	// channel or race the map iteration.
	h.mu.RLock()
	for client := range h.clients[userID] {
		select {
		case client.Send <- payload:
		default:
		}
	}
	h.mu.RUnlock()

	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(userID), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "alerts:*:feed")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		userID, ok := userIDFromChannel(msg.Channel)
		if !ok {
			continue
		}
		h.mu.RLock()
		for client := range h.clients[userID] {
			select {
			case client.Send <- []byte(msg.Payload):
			default:
			}
		}
		h.mu.RUnlock()
	}
}

func redisChannel(userID int) string {
	return "alerts:" + strconv.Itoa(userID) + ":feed"
}

func userIDFromChannel(ch string) (int, bool) {
	// alerts:{userID}:feed
	const prefix = "alerts:"
	const suffix = ":feed"
	if len(ch) <= len(prefix)+len(suffix) {
		return 0, false
	}
	id, err := strconv.Atoi(ch[len(prefix) : len(ch)-len(suffix)])
	if err != nil {
		return 0, false
	}
	return id, true
}
