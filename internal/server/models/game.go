package models

import "time"

// Attendee is a user who joined a game.
type Attendee struct {
	UserID    string
	FirstName string
}

// Game is a scheduled pickup game. OwnerID is empty once the owner has left,
// which makes the game orphaned for everyone still attending.
type Game struct {
	ID             string
	Type           string
	Location       string
	Date           string
	Time           string
	NumPlayers     int
	OwnerID        string
	OwnerFirstName string
	Attendees      []Attendee
	CreatedAt      time.Time
}

// AttendeeIDs returns the user ids of the attendees in join order.
func (g *Game) AttendeeIDs() []string {
	out := make([]string, 0, len(g.Attendees))
	for _, a := range g.Attendees {
		out = append(out, a.UserID)
	}
	return out
}

// AttendeeFirstNames returns the first names of the attendees in join order.
func (g *Game) AttendeeFirstNames() []string {
	out := make([]string, 0, len(g.Attendees))
	for _, a := range g.Attendees {
		out = append(out, a.FirstName)
	}
	return out
}
