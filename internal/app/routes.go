package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/handlers"
)

func (a *App) router(ws *config.WebSocket) *mux.Router {
	game := handlers.NewGameHandler(a.logger, ws, a.defaults, a.newSource)

	router := mux.NewRouter()
	router.Methods(http.MethodGet).Path("/status").HandlerFunc(handlers.Status)

	gameRouter := router.PathPrefix("/game").Subrouter()
	gameRouter.Methods(http.MethodGet).Path("/defaults").HandlerFunc(game.Defaults)
	gameRouter.Methods(http.MethodGet).Path("/connect").HandlerFunc(game.Connect)

	return router
}
