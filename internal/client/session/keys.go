package session

const (
	KeyFirstName     = "first_name"
	KeyGamesJoined   = "games_joined"
	KeyGamesOwned    = "games_owned"
	KeyOrphanedGames = "orphaned_games"
	KeyUserID        = "user_id"
	KeySessionToken  = "session_token"
	KeyUniversity    = "university"
	KeySoccer        = "soccer"
	KeyRunning       = "running"
	KeyFrisbee       = "frisbee"
	KeyBasketball    = "basketball"
)

// Keys lists every key a session is made of.
var Keys = []string{
	KeyFirstName, KeyGamesJoined, KeyGamesOwned, KeyOrphanedGames,
	KeyUserID, KeySessionToken, KeyUniversity,
	KeySoccer, KeyRunning, KeyFrisbee, KeyBasketball,
}

const listSeparator = ","
