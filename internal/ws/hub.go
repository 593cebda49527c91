package ws

import (
	"context"
	"log"
	"sync"
)

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	unregister chan *Client
	done       chan struct{}
	closed     bool
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves unregistrations and broadcasts until ctx is done, then closes
// every client's send buffer so their write pumps hang up. Clients that
// register afterwards are closed straight away.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return ctx.Err()

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.drop(client)

		case message := <-h.broadcast:
			h.mutex.RLock()
			clientsSnapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				clientsSnapshot = append(clientsSnapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range clientsSnapshot {
				select {
				case client.send <- message:
				default:
					h.logger.Printf("[WS] slow client dropped")
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()
	h.logger.Printf("[WS] disconnected total_clients=%d", total)
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mutex.Unlock()
}

func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	if h.closed {
		h.mutex.Unlock()
		close(client.send)
		return
	}
	h.clients[client] = true
	total := len(h.clients)
	h.mutex.Unlock()
	h.logger.Printf("[WS] connected total_clients=%d", total)
}

// Unregister hands client back to Run. After shutdown every client is
// already closed, so it returns without waiting.
func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast queues message for every client. When the queue is full the
// message is dropped; frames are superseded by the next one anyway.
func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
