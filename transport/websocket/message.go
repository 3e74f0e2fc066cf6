package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	actionNewGame = "game:new"
	actionState   = "game:state"
	actionTurn    = "game:turn"
	actionRestart = "game:restart"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID string `json:"game_id"`
	Cell   *int   `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Game   *entity.Game `json:"game,omitempty"`
	Action string       `json:"action,omitempty"`
	Error  string       `json:"error,omitempty"`
}
