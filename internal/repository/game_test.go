package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var errRejected = errors.New("rejected")

type repoFactory func(t *testing.T) (context.Context, GameRepository)

// testGameRepository - behaviour shared by every GameRepository implementation.
func testGameRepository(t *testing.T, newRepo repoFactory) {
	t.Run("Create and GetByID", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: a new game
		game := entity.NewGame("123", time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC))

		// When: it is stored and read back
		require.NoError(t, repo.Create(ctx, game))
		stored, err := repo.GetByID(ctx, game.ID)

		// Then: the snapshot round-trips
		require.NoError(t, err)
		assert.Equal(t, game.ID, stored.ID)
		assert.Equal(t, game.Board, stored.Board)
		assert.Equal(t, game.State, stored.State)
		assert.Equal(t, game.ComputerMove, stored.ComputerMove)
		assert.True(t, game.CreatedAt.Equal(stored.CreatedAt))
	})

	t.Run("Create refuses duplicates", func(t *testing.T) {
		ctx, repo := newRepo(t)
		game := entity.NewGame("123", time.Now())
		require.NoError(t, repo.Create(ctx, game))

		err := repo.Create(ctx, game)

		require.ErrorIs(t, err, ErrGameExists)
	})

	t.Run("GetByID on a missing game", func(t *testing.T) {
		ctx, repo := newRepo(t)

		game, err := repo.GetByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})

	t.Run("Update stores the mutation", func(t *testing.T) {
		ctx, repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, entity.NewGame("123", time.Now())))

		// When: a cell is marked through Update
		updated, err := repo.Update(ctx, "123", func(game *entity.Game) error {
			game.Board[4] = entity.X
			return nil
		})

		// Then: both the returned and the stored game carry the mark
		require.NoError(t, err)
		assert.Equal(t, entity.X, updated.Board[4])

		stored, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.X, stored.Board[4])
	})

	t.Run("Update aborted by the callback keeps the old game", func(t *testing.T) {
		ctx, repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, entity.NewGame("123", time.Now())))

		_, err := repo.Update(ctx, "123", func(game *entity.Game) error {
			game.Board[0] = entity.X
			return errRejected
		})

		require.ErrorIs(t, err, errRejected)

		stored, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.Empty, stored.Board[0])
	})

	t.Run("Update on a missing game", func(t *testing.T) {
		ctx, repo := newRepo(t)

		_, err := repo.Update(ctx, "9999999", func(*entity.Game) error { return nil })

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Concurrent updates are not lost", func(t *testing.T) {
		ctx, repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, entity.NewGame("123", time.Now())))

		// When: every cell is marked by its own goroutine
		var (
			wg        sync.WaitGroup
			succeeded atomic.Int32
		)
		errs := make(chan error, entity.BoardSize)
		for cell := range entity.BoardSize {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Update(ctx, "123", func(game *entity.Game) error {
					game.Board[cell] = entity.X
					return nil
				})
				switch {
				case err == nil:
					succeeded.Add(1)
				case !errors.Is(err, ErrUpdateConflict):
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		// Then: every successful write is visible, none overwrote another
		stored, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Positive(t, succeeded.Load())
		assert.Equal(t, int(succeeded.Load()), stored.Board.Count(entity.X))
	})
}
