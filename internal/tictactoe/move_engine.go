package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	scoreHumanWin    = -1
	scoreComputerWin = 1
	scoreDraw        = 0
)

type MoveEngine interface {
	BestMove(board entity.Board) (int, error)
}

type minimaxEngine struct{}

// NewMinimaxEngine - exhaustive minimax for the computer (O) against the human (X).
func NewMinimaxEngine() MoveEngine {
	return &minimaxEngine{}
}

// BestMove - scans the empty cells in ascending order and keeps the first one with the
// strictly highest score, so ties go to the lowest index.
func (that *minimaxEngine) BestMove(board entity.Board) (int, error) {
	cells := entity.EmptyCells(board)
	if len(cells) == 0 {
		return entity.NoMove, apperror.ErrNoLegalMove
	}

	bestScore := math.MinInt
	bestCell := entity.NoMove

	for _, cell := range cells {
		board[cell] = entity.ComputerMark
		cellScore := score(board, false)
		board[cell] = entity.Empty

		if cellScore > bestScore {
			bestScore = cellScore
			bestCell = cell
		}
	}

	return bestCell, nil
}

// score - value of the position for the computer; maximizing means the computer is to move.
// The board is rescanned for empty cells at every node, which is fine for nine cells.
func score(board entity.Board, maximizing bool) int {
	switch {
	case entity.HasWin(board, entity.HumanMark):
		return scoreHumanWin
	case entity.HasWin(board, entity.ComputerMark):
		return scoreComputerWin
	case entity.IsFull(board):
		return scoreDraw
	}

	mark := entity.ComputerMark
	best := math.MinInt
	if !maximizing {
		mark = mark.Opponent()
		best = math.MaxInt
	}

	for _, cell := range entity.EmptyCells(board) {
		board[cell] = mark
		cellScore := score(board, !maximizing)
		board[cell] = entity.Empty

		if maximizing {
			best = max(best, cellScore)
		} else {
			best = min(best, cellScore)
		}
	}

	return best
}
