package main

import (
	"tight-lines/internal/game"
)

// Player is one angler connected to the world
type Player struct {
	ID      string
	Name    string
	Session *game.Session
	Pending game.Input // merged input since the last tick
	LastSeq uint32
	Client  *Client
}

// NewPlayer creates a player fishing in session
func NewPlayer(id, name string, session *game.Session, client *Client) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Session: session,
		Client:  client,
	}
}

// Queue merges one input message into the pending tick input. Presses are
// edge events, so an action seen anywhere in the tick counts once.
func (p *Player) Queue(in game.Input, seq uint32) {
	p.Pending.Action = p.Pending.Action || in.Action
	p.Pending.Lanes = append(p.Pending.Lanes, in.Lanes...)
	if seq > p.LastSeq {
		p.LastSeq = seq
	}
}

// TakeInput returns and clears the pending input
func (p *Player) TakeInput() game.Input {
	in := p.Pending
	p.Pending = game.Input{}
	return in
}

// Send delivers a message if the player is still connected
func (p *Player) Send(msg ServerMessage) {
	if p.Client != nil {
		p.Client.SendMessage(msg)
	}
}
