package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/sporttogether/internal/api"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Renderer struct {
	policy Policy
	tmpl   *template.Template
}

func NewRenderer(policy Policy) *Renderer {
	r := &Renderer{policy: policy.withDefaults()}
	r.tmpl = parseTemplates(template.FuncMap{
		"icon":      r.IconURL,
		"label":     SportLabel,
		"attendees": r.Attendees,
	})
	return r
}

func (r *Renderer) Policy() Policy { return r.policy }

// IconURL resolves the sport icon of a game type.
func (r *Renderer) IconURL(sport string) string {
	base := strings.TrimRight(r.policy.IconBaseURL, "/")
	return base + "/static/img/" + url.PathEscape(strings.ToLower(sport)) + "_icon.svg"
}

// Attendees returns the joined attendee names of g, or the placeholder when
// nobody has joined.
func (r *Renderer) Attendees(g api.GameRecord) string {
	names := g.AttendeeFirstNames
	if len(names) == 0 {
		names = g.Attendees
	}
	var kept []string
	for _, n := range names {
		if strings.TrimSpace(n) != "" {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return r.policy.Placeholder
	}
	return strings.Join(kept, r.policy.Separator)
}

// SportLabel is the display name of a game type.
func SportLabel(sport string) string {
	return cases.Title(language.English).String(sport)
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderGameList appends one card per record to the container, in input
// order.
func (r *Renderer) RenderGameList(doc *Document, containerID string, records []api.GameRecord) error {
	cards := make([]template.HTML, 0, len(records))
	for _, rec := range records {
		card, err := r.execute("card", rec)
		if err != nil {
			return err
		}
		cards = append(cards, card)
	}
	for _, card := range cards {
		doc.Append(containerID, card)
	}
	return nil
}

// RenderTable replaces the container with a table of records. Any
// server-rendered html_version is ignored.
func (r *Renderer) RenderTable(doc *Document, containerID string, records []api.GameRecord) error {
	table, err := r.execute("table", struct {
		ID      string
		Records []api.GameRecord
	}{containerID, records})
	if err != nil {
		return err
	}
	doc.Reset(containerID)
	doc.Append(containerID, table)
	return nil
}

func (r *Renderer) RenderNavBar(doc *Document, firstName string) error {
	nav, err := r.execute("nav", firstName)
	if err != nil {
		return err
	}
	doc.Reset(NavBar)
	doc.Append(NavBar, nav)
	doc.Show(NavBar)
	return nil
}

// RenderEditForm shows the edit form of game in the GameEdit container.
func (r *Renderer) RenderEditForm(doc *Document, game api.GameRecord) error {
	f, err := r.execute("edit", game)
	if err != nil {
		return err
	}
	doc.Reset(GameEdit)
	doc.Append(GameEdit, f)
	doc.Show(GameEdit)
	return nil
}

// RenderMessage replaces a container with one escaped paragraph.
func (r *Renderer) RenderMessage(doc *Document, containerID, msg string) {
	doc.Reset(containerID)
	doc.Append(containerID, template.HTML("<p>"+template.HTMLEscapeString(msg)+"</p>"))
}
