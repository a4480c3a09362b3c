package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the endpoints, the request logger, panic recovery, CORS for
// the given origins and the session check on the game-changing endpoints.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(h.requestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", common.SessionTokenHeaderName, common.RequestIDHeaderName},
		ExposedHeaders: []string{common.RequestIDHeaderName},
		MaxAge:         300,
	}))

	r.Get("/ping", h.ping)
	r.Get("/static/img/{sport}_icon.svg", h.sportIcon)

	r.Post("/login/", h.login)
	r.Post("/register/", h.register)
	r.Post("/read_games/", h.readGames)
	r.Post("/search_games/", h.searchGames)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Post("/update_game/", h.updateGame)
		r.Post("/create_game/", h.createGame)
		r.Post("/join_game/", h.joinGame)
		r.Post("/withdraw_game/", h.withdrawGame)
		r.Post("/delete_user/", h.deleteUser)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
	})

	return r
}
