package entity

import "time"

type Result string

const (
	ResultOngoing Result = "ongoing"
	ResultWin     Result = "win"
	ResultDraw    Result = "draw"
)

type TurnState string

const (
	TurnHuman    TurnState = "human"
	TurnComputer TurnState = "computer"
	TurnFinished TurnState = "finished"
)

// NoMove - value of Game.ComputerMove before the computer has played.
const NoMove = -1

// Outcome - derived from the board, never stored on its own.
type Outcome struct {
	Result Result `json:"result"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Result == ResultWin || that.Result == ResultDraw
}

func (that Outcome) String() string {
	switch that.Result {
	case ResultWin:
		return string(that.Winner) + " wins"
	case ResultDraw:
		return "draw"
	default:
		return string(ResultOngoing)
	}
}

// Game - snapshot handed to the UI after every change.
type Game struct {
	ID           string    `json:"id"`
	Board        Board     `json:"board"`
	State        TurnState `json:"state"`
	Outcome      Outcome   `json:"outcome"`
	ComputerMove int       `json:"computer_move"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewGame(id string, now time.Time) *Game {
	return &Game{
		ID:           id,
		State:        TurnHuman,
		Outcome:      Outcome{Result: ResultOngoing},
		ComputerMove: NoMove,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (that *Game) IsFinished() bool {
	return that.State == TurnFinished
}

func (that *Game) IsHumanTurn() bool {
	return that.State == TurnHuman
}
