package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove - umbrella for every rejected move; the game state is left untouched.
	ErrInvalidMove = errors.New("invalid move")

	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)

	ErrNoLegalMove  = errors.New("no legal move available")
	ErrGameNotFound = errors.New("game not found")
	ErrCorruptGame  = errors.New("game state is corrupt")
)
