package repository

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var (
	ErrGameExists     = errors.New("game already exists")
	ErrUpdateConflict = errors.New("game was modified concurrently")
)

// UpdateFunc - mutates the stored game in place. Returning an error aborts the update.
type UpdateFunc func(game *entity.Game) error

// GameRepository - session store for running games. Entries expire after the configured TTL;
// an expired game is reported as apperror.ErrGameNotFound.
type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, fn UpdateFunc) (*entity.Game, error)
}

func gameKey(id string) string {
	return "game:" + id
}
