package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

type GameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	HumanMove(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
}

type gameRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, fn repository.UpdateFunc) (*entity.Game, error)
}

type gameUseCase struct {
	logger *slog.Logger

	gameRepo gameRepo
	engine   tictactoe.MoveEngine
	now      func() time.Time
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepo, engine tictactoe.MoveEngine) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "gameUseCase"),
		gameRepo: gameRepo,
		engine:   engine,
		now:      time.Now,
	}
}

func (that *gameUseCase) NewGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), that.now())

	if err := that.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// HumanMove - applies the human mark and the computer reply as one stored update.
func (that *gameUseCase) HumanMove(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "HumanMove", "gameID", gameID, "cell", cell)

	game, err := that.gameRepo.Update(ctx, gameID, func(game *entity.Game) error {
		controller, err := tictactoe.Restore(that.engine, *game)
		if err != nil {
			return fmt.Errorf("failed to restore game: %w", err)
		}

		next, err := controller.ApplyHumanMove(cell)
		if err != nil {
			return err
		}

		*game = next

		return nil
	})
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidMove) || errors.Is(err, apperror.ErrGameNotFound) {
			log.Warn("move rejected", "error", err)
		} else {
			log.Error("move failed", "error", err)
		}

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.ComputerMove != entity.NoMove {
		log.Debug("computer replied", "computerCell", game.ComputerMove)
	}

	if game.IsFinished() {
		log.Info("game finished", "outcome", game.Outcome.String(), "board", game.Board.String())
	}

	return game, nil
}

func (that *gameUseCase) Restart(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.Update(ctx, gameID, func(game *entity.Game) error {
		controller, err := tictactoe.Restore(that.engine, *game)
		if err != nil {
			// a corrupt session is still restartable; start over from a clean board
			that.logger.Warn("restarting corrupt game", "gameID", gameID, "error", err)
			controller = tictactoe.NewGameController(that.engine, game.ID)
		}

		createdAt := game.CreatedAt
		*game = controller.Restart()
		game.CreatedAt = createdAt

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	that.logger.Info("game restarted", "gameID", gameID)

	return game, nil
}
