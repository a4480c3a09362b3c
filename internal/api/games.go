package api

import (
	"bytes"
	"encoding/json"
)

// GameRecord is one scheduled pickup game.
type GameRecord struct {
	GameID             string   `json:"game_id"`
	Type               string   `json:"type"`
	Date               string   `json:"date"`
	Time               string   `json:"time"`
	Location           string   `json:"location"`
	NumPlayers         int      `json:"num_players,omitempty"`
	OwnerID            string   `json:"game_owner_id"`
	OwnerFirstName     string   `json:"game_owner_first_name"`
	Attendees          []string `json:"game_attendees,omitempty"`
	AttendeeFirstNames []string `json:"game_attendees_first_names,omitempty"`

	// HTMLVersion is a server-rendered fragment some deployments still send.
	// The client never renders it.
	HTMLVersion string `json:"html_version,omitempty"`
}

// ReadGamesByUserRequest asks /read_games/ for everything a user owns or joined.
type ReadGamesByUserRequest struct {
	UserID string `json:"user_id"`
}

// ReadGamesByIDsRequest asks /read_games/ for specific games. The response is
// a bare JSON array of GameRecord.
type ReadGamesByIDsRequest struct {
	GameIDs []string `json:"game_ids"`
}

// UserGames is the /read_games/ response for a user_id query.
type UserGames struct {
	GamesOwned    []GameRecord `json:"games_owned"`
	GamesJoined   []GameRecord `json:"games_joined"`
	OrphanedGames []GameRecord `json:"orphaned_games"`
}

type SearchGamesRequest struct {
	Location string `json:"location"`
	Type     string `json:"type,omitempty"`
}

type SearchGamesResponse struct {
	Message []GameRecord `json:"message"`
}

// GameInfo is either a GameRecord or the literal false, which the server
// sends when an update changed nothing.
type GameInfo struct {
	Record *GameRecord
}

func (g GameInfo) MarshalJSON() ([]byte, error) {
	if g.Record == nil {
		return []byte("false"), nil
	}
	return json.Marshal(g.Record)
}

func (g *GameInfo) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("false")) || bytes.Equal(trimmed, []byte("null")) {
		g.Record = nil
		return nil
	}
	var rec GameRecord
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return err
	}
	g.Record = &rec
	return nil
}

type UpdateGameResponse struct {
	GameInfo GameInfo `json:"game_info"`
}

// JoinGameRequest is the body of /join_game/ and /withdraw_game/.
type JoinGameRequest struct {
	GameID string `json:"game_id"`
	UserID string `json:"user_id"`
}
