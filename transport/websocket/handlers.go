package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var (
	ErrGameIDRequired = errors.New("game_id is required")
	ErrCellRequired   = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, _ *RequestPayload) (*entity.Game, error) {
	return that.uGame.NewGame(ctx)
}

func (that *Server) handleState(ctx context.Context, req *RequestPayload) (*entity.Game, error) {
	if req.GameID == "" {
		return nil, ErrGameIDRequired
	}

	return that.uGame.GetGame(ctx, req.GameID)
}

func (that *Server) handleTurn(ctx context.Context, req *RequestPayload) (*entity.Game, error) {
	if req.GameID == "" {
		return nil, ErrGameIDRequired
	}

	if req.Cell == nil {
		return nil, ErrCellRequired
	}

	return that.uGame.HumanMove(ctx, req.GameID, *req.Cell)
}

func (that *Server) handleRestart(ctx context.Context, req *RequestPayload) (*entity.Game, error) {
	if req.GameID == "" {
		return nil, ErrGameIDRequired
	}

	return that.uGame.Restart(ctx, req.GameID)
}
