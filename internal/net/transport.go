package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"SketchBoard/internal/state"
)

// Path is where the hub accepts websocket connections.
const Path = "/ws"

const writeWait = 5 * time.Second

// MessageType tags what a Message carries.
type MessageType string

const MessageOp MessageType = "op"

// Message is what boards exchange over the wire.
type Message struct {
	Type MessageType `json:"type"`
	Op   *state.Op   `json:"op,omitempty"`
}

// OpMessage wraps op for sending.
func OpMessage(op state.Op) Message {
	return Message{Type: MessageOp, Op: &op}
}

// Peer is one connected client of the host.
type Peer struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (p *Peer) write(data []byte) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return p.conn.WriteMessage(websocket.TextMessage, data)
}

func (p *Peer) addr() string {
	return p.conn.RemoteAddr().String()
}

// Hub is run by the HOST. It relays every message a client sends to all
// other clients and hands it to OnMessage for the host's own board.
type Hub struct {
	upgrader websocket.Upgrader
	peers    map[*Peer]bool
	mu       sync.RWMutex

	// OnMessage is called from connection goroutines.
	OnMessage func(Message)
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			// Boards on the LAN connect directly, not from a browser page.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers: make(map[*Peer]bool),
	}
}

func (h *Hub) add(p *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p] = true
	log.Printf("[HOST] Added connection: %s", p.addr())
}

func (h *Hub) remove(p *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.peers, p)
	log.Printf("[HOST] Removed connection: %s", p.addr())
}

func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Send delivers msg to every connected client.
func (h *Hub) Send(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", msg.Type, err)
	}
	h.broadcast(data, nil)
	return nil
}

// broadcast never holds mu while writing.
func (h *Hub) broadcast(data []byte, exclude *Peer) {
	for _, p := range h.snapshot(exclude) {
		if err := p.write(data); err != nil {
			log.Printf("[HOST] Error sending to %s: %v", p.addr(), err)
		}
	}
}

func (h *Hub) snapshot(exclude *Peer) []*Peer {
	h.mu.RLock()
	defer h.mu.RUnlock()
	peers := make([]*Peer, 0, len(h.peers))
	for p := range h.peers {
		if p != exclude {
			peers = append(peers, p)
		}
	}
	return peers
}

// ServeHTTP upgrades the request and serves the connection until it drops.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[HOST] Upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	p := &Peer{conn: conn}
	h.add(p)
	defer conn.Close()
	defer h.remove(p)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("[HOST] Client %s disconnected: %v", p.addr(), err)
			return
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[HOST] Bad message from %s: %v", p.addr(), err)
			continue
		}
		if msg.Type != MessageOp || msg.Op == nil {
			log.Printf("[HOST] Ignoring '%s' from %s", msg.Type, p.addr())
			continue
		}

		log.Printf("[HOST] Received %s from %s", msg.Op.Type, p.addr())
		if h.OnMessage != nil {
			h.OnMessage(msg)
		}
		h.broadcast(data, p) // Relay to OTHERS
	}
}

// Close drops every client connection.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for p := range h.peers {
		p.conn.Close()
	}
}

// Server serves a hub on a TCP port.
type Server struct {
	Hub  *Hub
	http *http.Server
	ln   net.Listener
}

// Listen binds the port; use ":0" style port 0 for an ephemeral one.
func Listen(hub *Hub, port int) (*Server, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", port, err)
	}
	mux := http.NewServeMux()
	mux.Handle(Path, hub)
	return &Server{
		Hub:  hub,
		http: &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second},
		ln:   ln,
	}, nil
}

// Port is the bound TCP port.
func (s *Server) Port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Serve blocks until Shutdown.
func (s *Server) Serve() error {
	log.Printf("[HOST] Host server listening on port %d", s.Port())
	err := s.http.Serve(s.ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.Hub.Close()
	return s.http.Shutdown(ctx)
}

// Client is a board connected to a host.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// Dial connects to a host at addr ("ip:port").
func Dial(ctx context.Context, addr string) (*Client, error) {
	url := "ws://" + addr + Path
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	return &Client{conn: conn}, nil
}

// LocalAddr is this client's end of the connection.
func (c *Client) LocalAddr() string {
	return c.conn.LocalAddr().String()
}

func (c *Client) Send(msg Message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("send %s message: %w", msg.Type, err)
	}
	return nil
}

// Listen hands each op message to handle until the connection fails.
func (c *Client) Listen(handle func(Message)) error {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("Bad message from host: %v", err)
			continue
		}
		if msg.Type != MessageOp || msg.Op == nil {
			continue
		}
		handle(msg)
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}
