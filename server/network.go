package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"tight-lines/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:    2048,
	WriteBufferSize:   8192,
	EnableCompression: true,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Client represents a connected WebSocket client
type Client struct {
	ID        string
	Conn      *websocket.Conn
	Send      chan []byte
	World     *World
	Player    *Player
	closeOnce sync.Once
}

// NewClient creates a new client
func NewClient(id string, conn *websocket.Conn, world *World) *Client {
	return &Client{
		ID:    id,
		Conn:  conn,
		Send:  make(chan []byte, WriteChannelSize),
		World: world,
	}
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() { close(c.Send) })
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		c.World.Disconnect(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(ReadTimeout * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(ReadTimeout * time.Second))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.HandleMessage(msg)
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(time.Duration(PingInterval) * time.Millisecond)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(WriteTimeout * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// JSON goes out as text frames, the binary codec as binary frames
			frame := websocket.BinaryMessage
			if len(message) > 0 && message[0] == '{' {
				frame = websocket.TextMessage
			}
			if err := c.Conn.WriteMessage(frame, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(WriteTimeout * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// HandleMessage processes incoming client messages
func (c *Client) HandleMessage(msg ClientMessage) {
	if msg.Type != "join" && msg.Type != "ping" && c.Player == nil {
		c.SendError(ErrUnknownPlayer)
		return
	}

	switch msg.Type {
	case "join":
		c.HandleJoin(msg)
	case "input":
		c.HandleInput(msg)
	case "market":
		c.HandleMarket(msg)
	case "sell":
		c.act(func(s *game.Session) ([]game.Event, error) { return s.Sell() })
	case "buy":
		kind, err := game.ParseUpgradeKind(msg.Upgrade)
		if err != nil {
			c.SendError(err)
			return
		}
		c.act(func(s *game.Session) ([]game.Event, error) { return s.Buy(kind) })
	case "layout":
		if msg.Water == nil {
			return
		}
		water := *msg.Water
		c.act(func(s *game.Session) ([]game.Event, error) {
			s.SetWater(water)
			return nil, nil
		})
	case "ping":
		c.SendMessage(ServerMessage{Type: "pong"})
	default:
		log.Printf("Unknown message type: %s", msg.Type)
	}
}

// HandleJoin processes a join message
func (c *Client) HandleJoin(msg ClientMessage) {
	if c.Player != nil {
		return
	}

	name := strings.TrimSpace(msg.Name)
	if len(name) > MaxPlayerNameLen {
		name = name[:MaxPlayerNameLen]
	}
	if name == "" {
		name = "Angler"
	}

	habitat := game.Habitat(msg.Habitat)
	if habitat == "" {
		habitat = DefaultHabitat
	}

	player, err := c.World.Join(c.ID, name, habitat, c)
	if err != nil {
		log.Printf("Join failed for %s: %v", name, err)
		c.SendError(err)
		return
	}
	c.Player = player

	layout := DefaultLayout()
	c.SendMessage(ServerMessage{
		Type: "welcome",
		Payload: WelcomePayload{
			ID:      c.ID,
			Name:    name,
			Habitat: habitat,
			Water:   layout.Water,
			DockX:   layout.DockX,
			DockY:   layout.StartY,
			SandY:   layout.SandY,
		},
	})

	log.Printf("Player %s (%s) joined %s water", name, c.ID, habitat)
}

// HandleInput processes an input message
func (c *Client) HandleInput(msg ClientMessage) {
	in := game.Input{Action: msg.Action}
	for i, name := range msg.Lanes {
		if i >= MaxLanesPerInput {
			break
		}
		lane, err := game.ParseLane(name)
		if err != nil {
			log.Printf("Dropping input from %s: %v", c.ID, err)
			continue
		}
		in.Lanes = append(in.Lanes, lane)
	}

	input := PlayerInput{
		PlayerID:  c.ID,
		Input:     in,
		Seq:       msg.Seq,
		Timestamp: time.Now(),
	}

	// Try to send to input queue (non-blocking)
	select {
	case c.World.InputQueue <- input:
	default:
		// Queue full, drop input
		log.Printf("Input queue full, dropping input from %s", c.ID)
	}
}

// HandleMarket opens or closes the market
func (c *Client) HandleMarket(msg ClientMessage) {
	c.act(func(s *game.Session) ([]game.Event, error) {
		if msg.Open {
			return nil, s.EnterMarket()
		}
		s.LeaveMarket()
		return nil, nil
	})
}

func (c *Client) act(fn func(*game.Session) ([]game.Event, error)) {
	if err := c.World.Act(c.ID, fn); err != nil {
		c.SendError(err)
	}
}

// SendError reports a rejection. Known rejections keep their reason code.
func (c *Client) SendError(err error) {
	reason := "invalid-request"
	for _, known := range []error{
		game.ErrInsufficientFunds, game.ErrMaxLevel, game.ErrNotInMarket, game.ErrBusy, ErrUnknownPlayer,
	} {
		if errors.Is(err, known) {
			reason = known.Error()
			break
		}
	}
	c.SendMessage(ServerMessage{Type: "error", Payload: ErrorPayload{Reason: reason}})
}

// SendMessage queues a message for the write pump
func (c *Client) SendMessage(msg ServerMessage) {
	// Try binary encoding first
	data, err := EncodeBinaryMessage(msg)
	if err != nil {
		log.Printf("Error encoding binary message: %v", err)
		return
	}

	if data == nil {
		// Fallback to JSON for unsupported message types
		jsonData, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling message: %v", err)
			return
		}
		data = jsonData
	}

	select {
	case c.Send <- data:
	default:
		// Channel full, client too slow; the read pump cleans up
		log.Printf("Client %s send channel full, closing connection", c.ID)
		c.Conn.Close()
	}
}

// HandleWebSocket upgrades HTTP connection to WebSocket
func HandleWebSocket(world *World) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("WebSocket upgrade error: %v", err)
			return
		}

		client := NewClient(uuid.NewString(), conn, world)

		// Start read and write pumps
		go client.WritePump()
		go client.ReadPump()
	}
}
