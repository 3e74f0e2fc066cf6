package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/testing/suite"
)

func TestRedisGameRepository(t *testing.T) {
	testGameRepository(t, func(t *testing.T) (context.Context, GameRepository) {
		ctx, st := suite.New(t)
		return ctx, NewRedisGameRepository(st.Storage, time.Minute)
	})
}

func TestRedisGameRepository_TTL(t *testing.T) {
	ctx, st := suite.New(t)
	repo := NewRedisGameRepository(st.Storage, time.Minute)

	// Given: a stored game
	require.NoError(t, repo.Create(ctx, entity.NewGame("123", time.Now())))

	// When: reading its TTL from redis
	ttl, err := st.Storage.TTL(ctx, gameKey("123")).Result()

	// Then: the session expires within the configured TTL
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, time.Minute)
}
