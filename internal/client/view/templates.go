package view

import "html/template"

const cardTemplate = `<div class="game-card" data-game-id="{{.GameID}}">
<img class="sport-icon" src="{{icon .Type}}" alt="{{label .Type}}">
<p class="game-when">{{.Time}}, {{.Date}} @{{.Location}}</p>
<p class="game-owner">{{.OwnerFirstName}} [Owner]</p>
<p class="game-attendees">{{attendees .}}</p>
</div>`

const tableTemplate = `<div class="table-responsive"><table class="games-table" id="{{.ID}}_table">
<tr><th>Game ID</th><th>Sport</th><th>Location</th><th>Time</th><th>Date</th><th>Players</th><th>Edit</th></tr>
{{range .Records}}<tr data-game-id="{{.GameID}}"><td>{{.GameID}}</td><td>{{label .Type}}</td><td>{{.Location}}</td><td>{{.Time}}</td><td>{{.Date}}</td><td>{{attendees .}}</td><td>edit {{.GameID}}</td></tr>
{{end}}</table></div>`

const navTemplate = `<p class="navbar-user">Logged in as {{.}}</p>
<a class="navbar-logout" href="/logout/">Log out</a>`

const editFormTemplate = `<form id="game_to_be_changed_form" data-game-id="{{.GameID}}" data-owner-id="{{.OwnerID}}">
<input type="hidden" name="game_id" value="{{.GameID}}">
<input type="hidden" name="game_owner_id" value="{{.OwnerID}}">
<label for="game_to_be_changed_type">Sport:</label>
<input type="text" name="type" id="game_to_be_changed_type" value="{{.Type}}" disabled>
<label for="game_to_be_changed_time">Time:</label>
<input type="text" name="time" id="game_to_be_changed_time" value="{{.Time}}">
<label for="game_to_be_changed_date">Date:</label>
<input type="text" name="date" id="game_to_be_changed_date" value="{{.Date}}">
<label for="game_to_be_changed_location">Location:</label>
<input type="text" name="location" id="game_to_be_changed_location" value="{{.Location}}">
<button type="submit">Save Changes</button>
</form>`

func parseTemplates(funcs template.FuncMap) *template.Template {
	t := template.New("view").Funcs(funcs)
	template.Must(t.New("card").Parse(cardTemplate))
	template.Must(t.New("table").Parse(tableTemplate))
	template.Must(t.New("nav").Parse(navTemplate))
	template.Must(t.New("edit").Parse(editFormTemplate))
	return t
}
