package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sporttogether/internal/api"
	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/server/services"
)

const (
	msgJoined        = "You have joined the game."
	msgAlreadyJoined = "You have already joined this game."
	msgGameGone      = "That game no longer exists."
	msgLeft          = "You have left the game."
	msgNotInGame     = "You are not part of this game."
)

// readGamesRequest accepts either query shape of /read_games/.
type readGamesRequest struct {
	UserID  string   `json:"user_id"`
	GameIDs []string `json:"game_ids"`
}

// gameFieldsRequest is the body of /create_game/ and /update_game/: the event
// form fields plus the ids the client attaches. numPlayers arrives as form
// text.
type gameFieldsRequest struct {
	GameID     string `json:"game_id"`
	OwnerID    string `json:"game_owner_id"`
	UserID     string `json:"user_id"`
	Type       string `json:"type"`
	Location   string `json:"location"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	NumPlayers string `json:"numPlayers"`
}

func (req gameFieldsRequest) numPlayers() (*int, error) {
	v := strings.TrimSpace(req.NumPlayers)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("field %q must be a whole number", "numPlayers")
	}
	return &n, nil
}

func (h *Handler) readGames(w http.ResponseWriter, r *http.Request) {
	var req readGamesRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	switch {
	case req.GameIDs != nil:
		games, err := h.games.ReadByIDs(r.Context(), req.GameIDs)
		if err != nil {
			h.serverErrorResponse(w, r, err)
			return
		}
		h.respond(w, r, http.StatusOK, gameRecords(games))

	case req.UserID != "":
		ug, err := h.games.ReadForUser(r.Context(), req.UserID)
		if err != nil {
			h.serverErrorResponse(w, r, err)
			return
		}
		h.respond(w, r, http.StatusOK, api.UserGames{
			GamesOwned:    gameRecords(ug.Owned),
			GamesJoined:   gameRecords(ug.Joined),
			OrphanedGames: gameRecords(ug.Orphaned),
		})

	default:
		h.badRequestResponse(w, r, errors.New("either user_id or game_ids is required"))
	}
}

func (h *Handler) searchGames(w http.ResponseWriter, r *http.Request) {
	var req api.SearchGamesRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	games, err := h.games.Search(r.Context(), req.Location, req.Type)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			h.badRequestResponse(w, r, errors.New(validationDetail(err)))
			return
		}
		h.serverErrorResponse(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, api.SearchGamesResponse{Message: gameRecords(games)})
}

func (h *Handler) updateGame(w http.ResponseWriter, r *http.Request) {
	var req gameFieldsRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	n, err := req.numPlayers()
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	userID := userIDFromContext(r.Context())
	game, err := h.games.Update(r.Context(), userID, services.GameUpdate{
		GameID:     req.GameID,
		Type:       req.Type,
		Location:   req.Location,
		Date:       req.Date,
		Time:       req.Time,
		NumPlayers: n,
	})
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorUnauthorized):
		h.errorResponse(w, r, http.StatusForbidden, "only the owner can change a game")
		return
	case errors.Is(err, common.ErrorNotFound):
		h.errorResponse(w, r, http.StatusNotFound, msgGameGone)
		return
	case errors.Is(err, common.ErrorValidation):
		h.badRequestResponse(w, r, errors.New(validationDetail(err)))
		return
	default:
		h.serverErrorResponse(w, r, err)
		return
	}

	var info api.GameInfo
	if game != nil {
		rec := gameRecord(game)
		info.Record = &rec
		h.logger.Info(r.Context(), "game updated", "game_id", game.ID, "owner", userID)
	}
	h.respond(w, r, http.StatusOK, api.UpdateGameResponse{GameInfo: info})
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	var req gameFieldsRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if !h.sameUser(w, r, req.UserID) {
		return
	}
	n, err := req.numPlayers()
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	g := services.NewGame{Type: req.Type, Location: req.Location, Date: req.Date, Time: req.Time}
	if n != nil {
		g.NumPlayers = *n
	}

	userID := userIDFromContext(r.Context())
	id, err := h.games.Create(r.Context(), userID, g)
	switch {
	case err == nil:
		h.logger.Info(r.Context(), "game created", "game_id", id, "owner", userID)
		h.respond(w, r, http.StatusOK, api.StatusResponse{Success: true, Message: id})
	case errors.Is(err, common.ErrorValidation):
		h.respond(w, r, http.StatusOK, api.StatusResponse{Message: validationDetail(err)})
	case errors.Is(err, common.ErrorUnauthorized):
		h.errorResponse(w, r, http.StatusUnauthorized, "unknown user")
	default:
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) joinGame(w http.ResponseWriter, r *http.Request) {
	var req api.JoinGameRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if !h.sameUser(w, r, req.UserID) {
		return
	}
	if strings.TrimSpace(req.GameID) == "" {
		h.badRequestResponse(w, r, errors.New("game_id is required"))
		return
	}

	userID := userIDFromContext(r.Context())
	err := h.games.Join(r.Context(), req.GameID, userID)
	switch {
	case err == nil:
		h.logger.Info(r.Context(), "game joined", "game_id", req.GameID, "user_id", userID)
		h.respond(w, r, http.StatusOK, api.StatusResponse{Success: true, Message: msgJoined})
	case errors.Is(err, common.ErrorConflict):
		h.respond(w, r, http.StatusOK, api.StatusResponse{Message: msgAlreadyJoined})
	case errors.Is(err, common.ErrorNotFound):
		h.respond(w, r, http.StatusOK, api.StatusResponse{Message: msgGameGone})
	case errors.Is(err, common.ErrorUnauthorized):
		h.errorResponse(w, r, http.StatusUnauthorized, "unknown user")
	default:
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) withdrawGame(w http.ResponseWriter, r *http.Request) {
	var req api.JoinGameRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if !h.sameUser(w, r, req.UserID) {
		return
	}
	if strings.TrimSpace(req.GameID) == "" {
		h.badRequestResponse(w, r, errors.New("game_id is required"))
		return
	}

	userID := userIDFromContext(r.Context())
	err := h.games.Withdraw(r.Context(), req.GameID, userID)
	switch {
	case err == nil:
		h.logger.Info(r.Context(), "game left", "game_id", req.GameID, "user_id", userID)
		h.respond(w, r, http.StatusOK, api.StatusResponse{Success: true, Message: msgLeft})
	case errors.Is(err, common.ErrorConflict):
		h.respond(w, r, http.StatusOK, api.StatusResponse{Message: msgNotInGame})
	case errors.Is(err, common.ErrorNotFound):
		h.respond(w, r, http.StatusOK, api.StatusResponse{Message: msgGameGone})
	default:
		h.serverErrorResponse(w, r, err)
	}
}

// sameUser rejects a body user_id that differs from the session's user.
// An absent user_id is fine.
func (h *Handler) sameUser(w http.ResponseWriter, r *http.Request, bodyUserID string) bool {
	if bodyUserID == "" || bodyUserID == userIDFromContext(r.Context()) {
		return true
	}
	h.errorResponse(w, r, http.StatusForbidden, "user_id does not match the session")
	return false
}
