// Package model is the authoritative, non-search reference board the server layer uses
// to validate and apply player actions over the wire. It is deliberately simpler than
// pkg/board's bit-packed Bitboard: a plain 64-slot map, no Zobrist hash, no incremental
// delta/undo, no move generation or search. The two representations must agree on
// legality; pkg/board is authoritative for search, pkg/model is authoritative for the
// network/lobby server.
package model

import (
	"fmt"
	"strings"
)

// Team mirrors board.Team without importing pkg/board: the public model is an
// independent reference implementation on purpose, not a thin wrapper over the
// bitboard.
type Team uint8

const (
	White Team = iota
	Black
)

func (t Team) Opponent() Team {
	if t == White {
		return Black
	}
	return White
}

func (t Team) String() string {
	if t == White {
		return "white"
	}
	return "black"
}

// Bot is a stack of 1..12 same-colored units.
type Bot struct {
	Team   Team
	Height int
}

// GameState is the 64-slot authoritative board plus whose turn it is: a plain struct
// with accessor methods, no generics.
type GameState struct {
	slots [64]*Bot
	turn  Team
}

// New returns the Boombots standard starting position, matching pkg/board.New's layout:
// 12 lone robots per side on their two home ranks (squares whose (x mod 3) != 2 on
// ranks 0-1 for White and 6-7 for Black).
func New() *GameState {
	g := &GameState{turn: White}
	for _, sq := range homeRankSquares(0) {
		g.slots[sq] = &Bot{Team: White, Height: 1}
	}
	for _, sq := range homeRankSquares(1) {
		g.slots[sq] = &Bot{Team: White, Height: 1}
	}
	for _, sq := range homeRankSquares(6) {
		g.slots[sq] = &Bot{Team: Black, Height: 1}
	}
	for _, sq := range homeRankSquares(7) {
		g.slots[sq] = &Bot{Team: Black, Height: 1}
	}
	return g
}

// homeRankSquares returns the 6 occupied squares of rank y in the standard starting
// layout: every file except 2 and 5.
func homeRankSquares(y int) []int {
	var out []int
	for x := 0; x < 8; x++ {
		if x == 2 || x == 5 {
			continue
		}
		out = append(out, y*8+x)
	}
	return out
}

// Empty returns a board with no bots, White to move. Used by tests to build arbitrary
// scenarios without replaying New()'s layout.
func Empty() *GameState {
	return &GameState{turn: White}
}

// Turn returns the team to move.
func (g *GameState) Turn() Team {
	return g.turn
}

// At returns the bot occupying square sq (0..63), or nil if empty.
func (g *GameState) At(sq int) *Bot {
	return g.slots[sq]
}

// Place sets sq to hold a bot of the given team and height directly, bypassing Apply's
// rules. Used only by test/scenario construction.
func (g *GameState) Place(sq int, team Team, height int) {
	g.slots[sq] = &Bot{Team: team, Height: height}
}

// Action is a move, stack, or explosion request, expressed here as flat square indices
// for the core's convenience (the wire encoding uses (x,y) pairs instead).
type Action struct {
	Source int
	Target int
	Robots int
}

func (a Action) isExplosion() bool {
	return a.Robots == 0
}

// Valid reports whether a is legal to Apply against g:
//   - Source must hold a bot belonging to the side to move.
//   - An explosion (Robots == 0) is always valid given that.
//   - A move/stack (Robots > 0) requires: target is not occupied by the opponent;
//     movement is purely horizontal or vertical (one axis zero); the Manhattan step
//     count |dx|+|dy| is in 1..source stack height; Robots does not exceed the source
//     stack height; and if target is occupied, it must be own team. Stacking that would
//     push target's height above 12 is rejected here rather than clamped at Apply time.
func (g *GameState) Valid(a Action) bool {
	bot := g.slots[a.Source]
	if bot == nil || bot.Team != g.turn {
		return false
	}
	if a.isExplosion() {
		return true
	}

	if a.Robots <= 0 || a.Robots > bot.Height {
		return false
	}
	if a.Target < 0 || a.Target >= 64 {
		return false
	}

	target := g.slots[a.Target]
	if target != nil {
		if target.Team != g.turn {
			return false // stacking onto an opponent is never legal
		}
		if target.Height+a.Robots > 12 {
			return false // reject stack overflow rather than clamp
		}
	}

	sx, sy := a.Source%8, a.Source/8
	tx, ty := a.Target%8, a.Target/8
	dx, dy := tx-sx, ty-sy
	if dx != 0 && dy != 0 {
		return false // diagonal movement is illegal
	}
	dist := abs(dx) + abs(dy)
	return dist >= 1 && dist <= bot.Height
}

// Apply mutates g per a (caller must have checked Valid(a) first; behavior on an
// invalid action is undefined) and toggles the turn.
func (g *GameState) Apply(a Action) {
	if a.isExplosion() {
		g.applyBoom(a.Source)
	} else {
		g.applyMove(a)
	}
	g.turn = g.turn.Opponent()
}

func (g *GameState) applyMove(a Action) {
	source := g.slots[a.Source]
	remaining := source.Height - a.Robots
	if remaining > 0 {
		source.Height = remaining
	} else {
		g.slots[a.Source] = nil
	}

	if target := g.slots[a.Target]; target != nil {
		target.Height += a.Robots // merge: Valid already confirmed same team and no overflow
	} else {
		g.slots[a.Target] = &Bot{Team: source.Team, Height: a.Robots}
	}
}

// applyBoom performs a breadth-first search of 8-adjacent occupied squares starting at
// source, removing every bot reached regardless of team — the chain-reaction explosion
// of a boom.
func (g *GameState) applyBoom(source int) {
	visited := make(map[int]bool)
	queue := []int{source}
	visited[source] = true

	for len(queue) > 0 {
		sq := queue[0]
		queue = queue[1:]
		g.slots[sq] = nil

		x, y := sq%8, sq/8
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 0 || nx > 7 || ny < 0 || ny > 7 {
					continue
				}
				nsq := ny*8 + nx
				if visited[nsq] || g.slots[nsq] == nil {
					continue
				}
				visited[nsq] = true
				queue = append(queue, nsq)
			}
		}
	}
}

// RobotCount returns the total unit count for team across every stack.
func (g *GameState) RobotCount(team Team) int {
	total := 0
	for _, bot := range g.slots {
		if bot != nil && bot.Team == team {
			total += bot.Height
		}
	}
	return total
}

func (g *GameState) String() string {
	var sb strings.Builder
	for y := 7; y >= 0; y-- {
		for x := 0; x < 8; x++ {
			bot := g.slots[y*8+x]
			switch {
			case bot == nil:
				sb.WriteString(" . ")
			case bot.Team == White:
				sb.WriteString(fmt.Sprintf("W%-2d", bot.Height))
			default:
				sb.WriteString(fmt.Sprintf("B%-2d", bot.Height))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
