package main

import (
	"github.com/gdamore/tcell/v2"

	"tight-lines/internal/game"
)

type command int

const (
	cmdNone command = iota
	cmdAction
	cmdLane
	cmdMarket
	cmdLeaveMarket
	cmdSell
	cmdBuy
	cmdQuit
)

// keyCommand is one key press resolved against the current phase
type keyCommand struct {
	cmd     command
	lane    game.Lane
	upgrade game.UpgradeKind
}

var arrowLanes = map[tcell.Key]game.Lane{
	tcell.KeyLeft:  game.LaneLeft,
	tcell.KeyUp:    game.LaneUp,
	tcell.KeyDown:  game.LaneDown,
	tcell.KeyRight: game.LaneRight,
}

var upgradeKeys = map[rune]game.UpgradeKind{
	'1': game.UpgradeLine,
	'2': game.UpgradeBait,
	'3': game.UpgradeRod,
}

// translateKey maps a key press onto a command. The same letter can mean
// different things per phase: 's' is the down lane while reeling and sell in
// the market.
func translateKey(ev *tcell.EventKey, phase game.Phase) keyCommand {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return keyCommand{cmd: cmdQuit}
	case tcell.KeyEscape:
		if phase == game.PhaseMarket {
			return keyCommand{cmd: cmdLeaveMarket}
		}
		return keyCommand{cmd: cmdQuit}
	case tcell.KeyEnter:
		return keyCommand{cmd: cmdAction}
	}

	if lane, ok := arrowLanes[ev.Key()]; ok {
		if phase == game.PhaseReeling {
			return keyCommand{cmd: cmdLane, lane: lane}
		}
		return keyCommand{}
	}

	if ev.Key() != tcell.KeyRune {
		return keyCommand{}
	}

	r := ev.Rune()
	switch phase {
	case game.PhaseMarket:
		switch r {
		case 's', 'S':
			return keyCommand{cmd: cmdSell}
		case 'm', 'M':
			return keyCommand{cmd: cmdLeaveMarket}
		case 'q', 'Q':
			return keyCommand{cmd: cmdQuit}
		}
		if kind, ok := upgradeKeys[r]; ok {
			return keyCommand{cmd: cmdBuy, upgrade: kind}
		}
		return keyCommand{}
	case game.PhaseReeling:
		if lane, err := game.ParseLane(string(r)); err == nil {
			return keyCommand{cmd: cmdLane, lane: lane}
		}
	}

	switch r {
	case ' ':
		return keyCommand{cmd: cmdAction}
	case 'm', 'M':
		return keyCommand{cmd: cmdMarket}
	case 'q', 'Q':
		return keyCommand{cmd: cmdQuit}
	}
	return keyCommand{}
}

// inputBuffer collects key commands between ticks into one game.Input
type inputBuffer struct {
	action bool
	lanes  []game.Lane
}

func (b *inputBuffer) add(kc keyCommand) {
	switch kc.cmd {
	case cmdAction:
		b.action = true
	case cmdLane:
		b.lanes = append(b.lanes, kc.lane)
	}
}

// take returns the buffered input and clears the buffer. Repeated action
// presses within one tick collapse into a single press.
func (b *inputBuffer) take() game.Input {
	in := game.Input{Action: b.action, Lanes: b.lanes}
	b.action = false
	b.lanes = nil
	return in
}
