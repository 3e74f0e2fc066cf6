package tictactoe

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var ErrEngineMove = errors.New("engine chose an unavailable cell")

// GameController - owns the board of a single game and drives the turn state machine:
// human move, then the computer reply in the same call, until the game is finished.
type GameController struct {
	mu sync.Mutex

	engine MoveEngine
	game   entity.Game
	now    func() time.Time
}

func NewGameController(engine MoveEngine, id string) *GameController {
	return &GameController{
		engine: engine,
		game:   *entity.NewGame(id, time.Now()),
		now:    time.Now,
	}
}

// Restore - rebuilds a controller from a stored snapshot. The outcome is recomputed from the board.
func Restore(engine MoveEngine, game entity.Game) (*GameController, error) {
	if err := game.Board.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptGame, err)
	}

	game.Outcome = entity.DetermineOutcome(game.Board)

	switch {
	case game.Outcome.IsTerminal():
		game.State = entity.TurnFinished
	case game.Board.Count(entity.HumanMark) != game.Board.Count(entity.ComputerMark):
		// the computer always answers within the same call, so a live game never waits on it
		return nil, fmt.Errorf("%w: computer reply missing on board %s", apperror.ErrCorruptGame, game.Board)
	default:
		game.State = entity.TurnHuman
	}

	return &GameController{
		engine: engine,
		game:   game,
		now:    time.Now,
	}, nil
}

// ApplyHumanMove - places X at cell and, unless that ends the game, lets the engine place O.
// A rejected move leaves the game untouched.
func (that *GameController) ApplyHumanMove(cell int) (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.validateHumanMove(cell); err != nil {
		return that.game, err
	}

	previous := that.game

	that.game.Board[cell] = entity.HumanMark
	that.game.ComputerMove = entity.NoMove
	that.game.UpdatedAt = that.now()

	if that.settle() {
		return that.game, nil
	}

	that.game.State = entity.TurnComputer

	computerCell, err := that.engine.BestMove(that.game.Board)
	if err != nil {
		that.game = previous
		return that.game, fmt.Errorf("computer turn: %w", err)
	}

	if !entity.IsValidCell(computerCell) || that.game.Board[computerCell] != entity.Empty {
		that.game = previous
		return that.game, fmt.Errorf("%w: %d", ErrEngineMove, computerCell)
	}

	that.game.Board[computerCell] = entity.ComputerMark
	that.game.ComputerMove = computerCell

	if !that.settle() {
		that.game.State = entity.TurnHuman
	}

	return that.game, nil
}

// Restart - clears the board; valid from any state.
func (that *GameController) Restart() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game.Board = entity.Board{}
	that.game.State = entity.TurnHuman
	that.game.Outcome = entity.Outcome{Result: entity.ResultOngoing}
	that.game.ComputerMove = entity.NoMove
	that.game.UpdatedAt = that.now()

	return that.game
}

func (that *GameController) Snapshot() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game
}

func (that *GameController) Outcome() entity.Outcome {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.DetermineOutcome(that.game.Board)
}

func (that *GameController) validateHumanMove(cell int) error {
	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !that.game.IsHumanTurn() {
		return apperror.ErrNotYourTurn
	}

	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.game.Board[cell] != entity.Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// settle - recomputes the outcome and freezes the game when it is terminal.
func (that *GameController) settle() bool {
	that.game.Outcome = entity.DetermineOutcome(that.game.Board)
	if !that.game.Outcome.IsTerminal() {
		return false
	}

	that.game.State = entity.TurnFinished

	return true
}
