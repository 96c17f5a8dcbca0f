// Package wire is the marshal/unmarshal boundary for the external lobby/game-pool
// server layer: JSON event structs and a thin ReadEvent/WriteEvent pair over a websocket
// connection. No matchmaking, auth, or broadcast logic lives here - that remains the
// server's job.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
)

// EventType discriminates the event taxonomy carried in an Envelope.
type EventType string

const (
	EventHandshake          EventType = "handshake"
	EventSendChallenge      EventType = "sendChallenge"
	EventAcceptChallenge    EventType = "acceptChallenge"
	EventChallengeBroadcast EventType = "challengeBroadcast"
	EventLobbyUserBroadcast EventType = "lobbyUserBroadcast"
	EventGameBroadcast      EventType = "gameBroadcast"
	EventGameAction         EventType = "gameAction"
	EventQuit               EventType = "quit"
)

// Envelope is the wire frame every event is carried in: a string type tag plus its
// raw JSON payload.
type Envelope struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// User identifies a lobby participant.
type User struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// SendChallenge is the client->server payload for EventSendChallenge.
type SendChallenge struct {
	Source *uint32 `json:"source,omitempty"`
	Target uint32  `json:"target"`
}

// AcceptChallenge is the client->server payload for EventAcceptChallenge.
type AcceptChallenge struct {
	ID     uint32  `json:"id"`
	Target *uint32 `json:"target,omitempty"`
}

// ChallengeBroadcast is the server->client payload for EventChallengeBroadcast.
type ChallengeBroadcast struct {
	ID       uint32 `json:"id"`
	Source   User   `json:"source"`
	Target   User   `json:"target"`
	Accepted bool   `json:"accepted"`
}

// LobbyUserBroadcast is the server->client payload for EventLobbyUserBroadcast.
type LobbyUserBroadcast struct {
	SelfID uint32 `json:"selfId"`
	Users  []User `json:"users"`
}

// Pos is the wire position encoding: (x,y) each 0..7.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bot mirrors pkg/model.Bot for wire transport.
type Bot struct {
	Team   string `json:"team"`
	Height int    `json:"height"`
}

// GameState is the wire encoding of pkg/model.GameState: a length-64 array of optional
// bots plus the turn.
type GameState struct {
	Slots [64]*Bot `json:"slots"`
	Turn  string   `json:"turn"`
}

// GameBroadcast is the server->client payload for EventGameBroadcast.
type GameBroadcast struct {
	GameID uint32    `json:"gameId"`
	White  User      `json:"white"`
	Black  User      `json:"black"`
	State  GameState `json:"gamestate"`
}

// GameAction is the both-directions payload for EventGameAction: a move, stack, or
// explosion request in wire (x,y) coordinates.
type GameAction struct {
	Source Pos `json:"source"`
	Target Pos `json:"target"`
	Robots int `json:"robots"`
}

// Handshake is the client->server payload for EventHandshake: a user-chosen display
// name.
type Handshake struct {
	Name string `json:"name"`
}

// Encode wraps a typed payload into an Envelope for WriteEvent.
func Encode(t EventType, payload any) (Envelope, error) {
	if payload == nil {
		return Envelope{Type: t}, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("wire: encode %v: %w", t, err)
	}
	return Envelope{Type: t, Data: data}, nil
}

// Decode unmarshals env's Data into out, a pointer to one of this file's payload types.
func Decode(env Envelope, out any) error {
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("wire: decode %v: %w", env.Type, err)
	}
	return nil
}

// ReadEvent reads one JSON Envelope from conn.
func ReadEvent(conn *websocket.Conn) (Envelope, error) {
	var env Envelope
	if err := conn.ReadJSON(&env); err != nil {
		return Envelope{}, fmt.Errorf("wire: read: %w", err)
	}
	return env, nil
}

// WriteEvent writes env to conn as JSON.
func WriteEvent(conn *websocket.Conn, env Envelope) error {
	if err := conn.WriteJSON(env); err != nil {
		return fmt.Errorf("wire: write: %w", err)
	}
	return nil
}
