package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/pkg/httpserver"
)

const readLimit = 4096

var ErrUnknownAction = errors.New("unknown action")

type uGame interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	HumanMove(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, req *RequestPayload) (*entity.Game, error)

// Config - AllowedOrigins are the browser origins accepted in the handshake,
// e.g. http://localhost:3000 or "*"; empty means same-origin only.
type Config struct {
	AllowedOrigins []string
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	originPatterns []string

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame, cfg Config) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,

		originPatterns: originHosts(cfg.AllowedOrigins),
	}

	server.handlers = map[string]handlerFunc{
		actionNewGame: server.handleNewGame,
		actionState:   server.handleState,
		actionTurn:    server.handleTurn,
		actionRestart: server.handleRestart,
	}

	return server
}

// Start - starts WebSocket server on /ws.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	return httpserver.Run(ctx, port, mux)
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: that.originPatterns,
	})
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}
	defer conn.CloseNow()

	conn.SetReadLimit(readLimit)

	log.Info("WebSocket connection established")

	err = that.handleMessages(r.Context(), conn)

	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		log.Info("WebSocket connection closed")
	default:
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until the connection closes.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		var response Message

		var msg Message
		if err = json.Unmarshal(data, &msg); err != nil {
			response = errorMessage("", fmt.Errorf("failed to unmarshal message: %w", err))
		} else {
			response = that.dispatch(ctx, &msg)
		}

		if response.Action == actionError {
			log.Warn("request failed", "action", msg.Action, "payload", string(response.Payload))
		}

		if err := wsjson.Write(ctx, conn, response); err != nil {
			return fmt.Errorf("failed to send response: %w", err)
		}
	}
}

func (that *Server) dispatch(ctx context.Context, msg *Message) Message {
	handler, ok := that.handlers[msg.Action]
	if !ok {
		return errorMessage(msg.Action, fmt.Errorf("%w: %q", ErrUnknownAction, msg.Action))
	}

	var req RequestPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return errorMessage(msg.Action, fmt.Errorf("failed to unmarshal payload: %w", err))
		}
	}

	game, err := handler(ctx, &req)
	if err != nil {
		return errorMessage(msg.Action, err)
	}

	return newMessage(msg.Action, ResponsePayload{Game: game})
}

func newMessage(action string, payload ResponsePayload) Message {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{Action: actionError, Payload: json.RawMessage(`{"error":"failed to marshal response"}`)}
	}

	return Message{Action: action, Payload: raw}
}

func errorMessage(action string, err error) Message {
	return newMessage(actionError, ResponsePayload{Action: action, Error: err.Error()})
}

// originHosts - the handshake matches patterns against the Origin host, so scheme://host entries are reduced to host.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, origin := range origins {
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			hosts = append(hosts, u.Host)
			continue
		}

		hosts = append(hosts, origin)
	}

	return hosts
}
