package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: a fixed clock
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

	// When: a new game is created
	game := NewGame("123", now)

	// Then: the human moves first on an empty board
	expectedGame := &Game{
		ID:           "123",
		State:        TurnHuman,
		Outcome:      Outcome{Result: ResultOngoing},
		ComputerMove: NoMove,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	require.Equal(t, expectedGame, game)
	assert.True(t, game.IsHumanTurn())
	assert.False(t, game.IsFinished())
	assert.Len(t, EmptyCells(game.Board), BoardSize)
}

func TestGame_JSON(t *testing.T) {
	// Given: a game with a few marks
	game := NewGame("abc", time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC))
	game.Board[4] = X
	game.Board[0] = O
	game.ComputerMove = 0

	// When: it is encoded for the UI
	raw, err := json.Marshal(game)
	require.NoError(t, err)

	// Then: the board is a flat list of marks with "" for empty cells
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, []any{"O", "", "", "", "X", "", "", "", ""}, decoded["board"])
	assert.Equal(t, "human", decoded["state"])
	assert.Equal(t, map[string]any{"result": "ongoing"}, decoded["outcome"])
	assert.InDelta(t, 0, decoded["computer_move"], 0)
}
