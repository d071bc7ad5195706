package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/sweeper/internal/command"
	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/mines"
)

// GameHandler serves games over websockets. Every connection plays its own
// game, which is dropped when the connection closes.
type GameHandler struct {
	logger    *slog.Logger
	upgrader  *websocket.Upgrader
	defaults  game.Params
	newSource func() mines.PositionSource
}

func NewGameHandler(
	logger *slog.Logger,
	ws *config.WebSocket,
	defaults game.Params,
	newSource func() mines.PositionSource,
) *GameHandler {
	handler := &GameHandler{
		logger:    logger,
		upgrader:  ws.Upgrader(),
		defaults:  defaults,
		newSource: newSource,
	}

	return handler
}

func (g GameHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	respond(w, g.logger, http.StatusOK, NewGameDTO(g.defaults))
}

func (g GameHandler) Connect(w http.ResponseWriter, r *http.Request) {
	params, err := ParseNewGameDTO(r.URL.Query(), g.defaults)
	if err != nil {
		respondError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	state, err := game.New(params, g.newSource())
	if err != nil {
		respondError(w, g.logger, http.StatusInternalServerError, err)
		g.logger.Error("unable to generate a new game", slog.Any("error", err))
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	stop := context.AfterFunc(r.Context(), func() { conn.Close() })
	defer stop()

	g.logger.Debug("established WS connection", slog.String("params", params.String()))

	err = g.runGameLoop(conn, state)
	if err != nil && !websocket.IsCloseError(err,
		websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		g.logger.Warn("error in ws loop", slog.Any("error", err))
		return
	}
	g.logger.Debug("closed WS connection",
		slog.String("params", params.String()),
		slog.String("status", state.Status().String()),
	)
}

var errQuit = errors.New("quit")

// maxMessageSize bounds a single command message. A few hundred commands fit.
const maxMessageSize = 4096

// runGameLoop reads text messages of newline separated commands. Commands of
// one message run in order until one fails or the game ends; the resulting
// view is written back after every message.
func (g GameHandler) runGameLoop(conn *websocket.Conn, state *game.Game) error {
	conn.SetReadLimit(maxMessageSize)

	if err := conn.WriteJSON(state.View()); err != nil {
		return fmt.Errorf("unable to write json: %w", err)
	}

	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "text commands only"))
		}

		err = execute(state, string(buf))
		if errors.Is(err, errQuit) {
			return conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
		}
		if err != nil {
			if err := conn.WriteJSON(newErrorResponse(err)); err != nil {
				return fmt.Errorf("unable to write json: %w", err)
			}
		}

		if err := conn.WriteJSON(state.View()); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func execute(state *game.Game, message string) error {
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd, err := command.Parse(line, 0)
		if err != nil {
			return err
		}
		if cmd.Kind == command.Quit {
			return errQuit
		}
		if err := command.Apply(state, cmd); err != nil {
			return err
		}
		if state.Status().Over() {
			return nil
		}
	}
	return nil
}
