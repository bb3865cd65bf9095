package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Hub fans schedule updates out to connected dashboard clients. Clients
// subscribe per congress day so a dashboard tab only sees the day it is
// editing.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Day  string
}

type broadcastMsg struct {
	Day  string
	Data []byte
}

// Update is the payload pushed to dashboards when the program changes.
type Update struct {
	Action  string `json:"action"` // moved, assigned, cleared
	EventID string `json:"eventId"`
	Room    int    `json:"room,omitempty"`
	Block   string `json:"block,omitempty"`
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for _, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
			}
			h.rooms = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Day] == nil {
				h.rooms[c.Day] = make(map[*Client]bool)
			}
			h.rooms[c.Day][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Day]; conns != nil {
				if conns[c] {
					delete(conns, c)
					close(c.Send)
				}
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Day] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Day], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast pushes an update to every client watching the given day.
func (h *Hub) Broadcast(day string, update Update) {
	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("live: marshal update: %v", err)
		return
	}
	h.broadcast <- broadcastMsg{Day: day, Data: data}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ScheduleSocket upgrades a dashboard connection and keeps it subscribed
// to one day's updates until it closes.
func ScheduleSocket(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		day := ps.ByName("day")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 256),
			Day:  day,
		}

		hub.register <- client
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
	}()
	for {
		// Dashboard clients never send anything meaningful; reads only
		// surface disconnects.
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
