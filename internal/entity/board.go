package entity

import (
	"errors"
	"fmt"
)

type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

const (
	HumanMark    = X
	ComputerMark = O
)

const BoardSize = 9

var (
	ErrUnknownMark  = errors.New("unknown mark")
	ErrMarkBalance  = errors.New("mark counts are out of balance")
	ErrDoubleWinner = errors.New("both marks have a winning line")

	// WinCombos - rows, columns and diagonals in row-major cell indexes.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board - 3x3 grid stored row-major. It is a value type: passing it around copies it.
type Board [BoardSize]Mark

func (that Mark) IsValid() bool {
	return that == Empty || that == X || that == O
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// EmptyCells - indexes of all empty cells in ascending order.
func EmptyCells(board Board) []int {
	cells := make([]int, 0, BoardSize)
	for i, mark := range board {
		if mark == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func HasWin(board Board, mark Mark) bool {
	if mark == Empty {
		return false
	}

	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

func IsFull(board Board) bool {
	for _, mark := range board {
		if mark == Empty {
			return false
		}
	}

	return true
}

// DetermineOutcome - X win is checked before O win, then the draw.
func DetermineOutcome(board Board) Outcome {
	switch {
	case HasWin(board, X):
		return Outcome{Result: ResultWin, Winner: X}
	case HasWin(board, O):
		return Outcome{Result: ResultWin, Winner: O}
	case IsFull(board):
		return Outcome{Result: ResultDraw}
	default:
		return Outcome{Result: ResultOngoing}
	}
}

func (that Board) Count(mark Mark) int {
	var count int
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// Validate - checks that the board could have been reached with X moving first.
func (that Board) Validate() error {
	for i, mark := range that {
		if !mark.IsValid() {
			return fmt.Errorf("%w: %q at cell %d", ErrUnknownMark, mark, i)
		}
	}

	if diff := that.Count(X) - that.Count(O); diff < 0 || diff > 1 {
		return fmt.Errorf("%w: X=%d O=%d", ErrMarkBalance, that.Count(X), that.Count(O))
	}

	if HasWin(that, X) && HasWin(that, O) {
		return ErrDoubleWinner
	}

	return nil
}

func (that Board) String() string {
	out := make([]byte, 0, BoardSize+2)
	for i, mark := range that {
		if i > 0 && i%3 == 0 {
			out = append(out, '/')
		}

		if mark == Empty {
			out = append(out, '.')
			continue
		}

		out = append(out, mark[0])
	}

	return string(out)
}
