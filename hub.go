package main

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents a websocket connection with its assigned connection id
type Client struct {
	conn    *websocket.Conn
	connID  string
	writeMu sync.Mutex // Serialize writes to WebSocket (required by gorilla/websocket)
}

// WebSocket hub tracking connections by connection id. Game state is never
// held here; the hub only knows how to reach a connection.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	done       chan struct{}
	wg         sync.WaitGroup
	logger     *AppLogger
}

func newHub(logger *AppLogger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client, 64),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// stop signals the hub goroutine to exit and waits for it to finish
func (h *Hub) stop() {
	close(h.done)
	h.wg.Wait()
}

// sendTo delivers a message to a single connection. A missing connection
// id is not an error: the player reconnects under a fresh id and simply
// misses pushes until then.
func (h *Hub) sendTo(connID string, message []byte) {
	h.mu.RLock()
	client, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	h.logger.LogWS("OUT", connID, string(message))

	// Serialize writes to each connection
	client.writeMu.Lock()
	err := client.conn.WriteMessage(websocket.TextMessage, message)
	client.writeMu.Unlock()

	if err != nil {
		log.Printf("WebSocket write error to %s: %v", connID, err)
	}
}

func (h *Hub) run() {
	h.wg.Add(1)
	defer h.wg.Done()
	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.connID] = client
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("WebSocket client connected (%s). Total: %d", client.connID, total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.connID]; ok {
				delete(h.clients, client.connID)
				client.conn.Close()
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("WebSocket client disconnected (%s). Total: %d", client.connID, total)
			h.logger.Debug("hub.unregister", "Connection %s closed", client.connID)
		}
	}
}
