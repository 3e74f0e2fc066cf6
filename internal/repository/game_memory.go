package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type memoryEntry struct {
	game      entity.Game
	expiresAt time.Time
}

type memoryGameRepository struct {
	mu sync.Mutex

	games map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryGameRepository - in-process store for a single server. A zero ttl keeps games forever.
func NewMemoryGameRepository(ttl time.Duration) GameRepository {
	return &memoryGameRepository{
		games: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (that *memoryGameRepository) Create(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lookup(game.ID); ok {
		return fmt.Errorf("%w: %s", ErrGameExists, game.ID)
	}

	that.store(*game)

	return nil
}

func (that *memoryGameRepository) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.lookup(id)
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	game := entry.game

	return &game, nil
}

// Update - fn runs under the store lock, so moves on the same game never interleave.
func (that *memoryGameRepository) Update(_ context.Context, id string, fn UpdateFunc) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.lookup(id)
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	game := entry.game
	if err := fn(&game); err != nil {
		return nil, err
	}

	that.store(game)

	return &game, nil
}

// lookup - caller holds the lock. Expired entries are dropped on the way.
func (that *memoryGameRepository) lookup(id string) (memoryEntry, bool) {
	entry, ok := that.games[id]
	if !ok {
		return memoryEntry{}, false
	}

	if !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt) {
		delete(that.games, id)
		return memoryEntry{}, false
	}

	return entry, true
}

func (that *memoryGameRepository) store(game entity.Game) {
	entry := memoryEntry{game: game}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.games[game.ID] = entry
}
