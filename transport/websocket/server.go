package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/rocketscienceinc/chess-backend/internal/apperror"
	"github.com/rocketscienceinc/chess-backend/internal/chess"
	"github.com/rocketscienceinc/chess-backend/internal/dto"
	"github.com/rocketscienceinc/chess-backend/internal/entity"
)

const (
	messageTimeout = 10 * time.Second
	closeTimeout   = time.Second
)

type gameService interface {
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	AttemptMove(ctx context.Context, gameID string, start, end entity.Coordinate) (chess.Outcome, error)
}

type Server struct {
	logger *slog.Logger
	games  gameService
}

func New(logger *slog.Logger, games gameService) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		games:  games,
	}
}

// Register - mounts /ws/games/:gameId on router. ctx bounds the lifetime of every connection.
func (that *Server) Register(ctx context.Context, router fiber.Router) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})

	router.Get("/ws/games/:gameId", websocket.New(func(conn *websocket.Conn) {
		that.handleConnection(ctx, conn)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))
}

func (that *Server) handleConnection(ctx context.Context, conn *websocket.Conn) {
	gameID := conn.Params("gameId")
	log := that.logger.With("method", "handleConnection", "game_id", gameID)

	log.Info("WebSocket connection established")

	stop := context.AfterFunc(ctx, func() {
		that.goingAway(conn)
	})
	defer stop()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			log.Debug("connection closed", "error", err)
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		msgCtx, cancel := context.WithTimeout(ctx, messageTimeout)
		response := that.process(msgCtx, gameID, data)
		cancel()

		if err = conn.WriteJSON(response); err != nil {
			log.Error("failed to send response", "error", err)
			return
		}
	}
}

// goingAway - tells the client the server is leaving and unblocks the pending read.
// Close on a hijacked fasthttp connection is ignored while the handler runs.
func (that *Server) goingAway(conn *websocket.Conn) {
	deadline := time.Now().Add(closeTimeout)
	message := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")

	if err := conn.WriteControl(websocket.CloseMessage, message, deadline); err != nil {
		that.logger.Debug("failed to send close frame", "error", err)
	}

	_ = conn.SetReadDeadline(time.Now())
}

// process - handles one client message and returns the reply.
func (that *Server) process(ctx context.Context, gameID string, data []byte) Message {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return errorMessage("malformed message")
	}

	switch msg.Action {
	case actionMove:
		return that.handleMove(ctx, gameID, msg.Payload)
	case actionState:
		return that.handleState(ctx, gameID)
	default:
		return errorMessage("unknown action: " + msg.Action)
	}
}

func (that *Server) handleMove(ctx context.Context, gameID string, payload json.RawMessage) Message {
	var req dto.MoveRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorMessage("malformed payload")
	}

	start, end, err := req.Coordinates()
	if err != nil {
		return errorMessage(err.Error())
	}

	outcome, err := that.games.AttemptMove(ctx, gameID, start, end)
	if err != nil {
		return that.serviceError(err)
	}

	return newMessage(actionMove, dto.MoveResponse{Message: outcome.String()})
}

func (that *Server) handleState(ctx context.Context, gameID string) Message {
	game, err := that.games.GetGameByID(ctx, gameID)
	if err != nil {
		return that.serviceError(err)
	}

	return newMessage(actionState, dto.NewGameResponse(game))
}

func (that *Server) serviceError(err error) Message {
	switch {
	case errors.Is(err, apperror.ErrOutOfRange):
		return errorMessage(apperror.ErrOutOfRange.Error())
	case errors.Is(err, apperror.ErrGameNotFound):
		return errorMessage(apperror.ErrGameNotFound.Error())
	default:
		that.logger.Error("message failed", "error", err)
		return errorMessage("Internal Server Error")
	}
}

func errorMessage(text string) Message {
	return newMessage(actionError, dto.ErrorResponse{Error: text})
}
