package httpapi

import (
	"github.com/dmitrijs2005/sporttogether/internal/api"
	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/server/models"
	"github.com/dmitrijs2005/sporttogether/internal/server/services"
)

func gameRecord(g *models.Game) api.GameRecord {
	return api.GameRecord{
		GameID:             g.ID,
		Type:               g.Type,
		Date:               g.Date,
		Time:               g.Time,
		Location:           g.Location,
		NumPlayers:         g.NumPlayers,
		OwnerID:            g.OwnerID,
		OwnerFirstName:     g.OwnerFirstName,
		Attendees:          g.AttendeeIDs(),
		AttendeeFirstNames: g.AttendeeFirstNames(),
	}
}

// gameRecords never returns nil so an empty list encodes as [].
func gameRecords(games []models.Game) []api.GameRecord {
	out := make([]api.GameRecord, 0, len(games))
	for i := range games {
		out = append(out, gameRecord(&games[i]))
	}
	return out
}

// sessionFields is the login message the client stores key by key.
func sessionFields(s *services.Session) map[string]any {
	fields := map[string]any{
		"user_id":        s.UserID,
		"first_name":     s.FirstName,
		"university":     s.University,
		"games_owned":    nonNil(s.GamesOwned),
		"games_joined":   nonNil(s.GamesJoined),
		"orphaned_games": nonNil(s.OrphanedGames),
		"session_token":  s.SessionToken,
	}
	for _, sport := range common.SupportedSports {
		fields[sport] = s.Interests[sport]
	}
	return fields
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
