package view

import (
	"bytes"
	"html/template"
	"io"
	"strings"
	"sync"
)

// Container IDs shared by the renderer and the page controllers.
const (
	NavBar          = "navbar_contents"
	LoggedIn        = "logged_in_contents"
	OwnedGames      = "user_owned_games"
	JoinedGames     = "user_joined_games"
	AllLocalGames   = "all_local_games"
	ExploreGames    = "explore_games"
	GameEdit        = "game_to_be_changed"
	StatusBanner    = "status_banner"
	defaultDocTitle = "Sport Together"
)

type container struct {
	ID        string
	Fragments []template.HTML
	Hidden    bool
}

// Document is an ordered set of named containers. It is safe for concurrent
// use.
type Document struct {
	mu         sync.Mutex
	title      string
	order      []string
	containers map[string]*container
}

// NewDocument creates a document with the given containers, all visible and
// empty, in that order.
func NewDocument(title string, ids ...string) *Document {
	if title == "" {
		title = defaultDocTitle
	}
	d := &Document{title: title, containers: map[string]*container{}}
	for _, id := range ids {
		d.get(id)
	}
	return d
}

// DefaultDocument has the containers of the app page.
func DefaultDocument() *Document {
	return NewDocument(defaultDocTitle,
		StatusBanner, NavBar, GameEdit, LoggedIn, OwnedGames, JoinedGames, ExploreGames, AllLocalGames)
}

func (d *Document) get(id string) *container {
	c, ok := d.containers[id]
	if !ok {
		c = &container{ID: id}
		d.containers[id] = c
		d.order = append(d.order, id)
	}
	return c
}

// Reset empties one container, or every container when no id is given.
func (d *Document) Reset(ids ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(ids) == 0 {
		ids = d.order
	}
	for _, id := range ids {
		d.get(id).Fragments = nil
	}
}

func (d *Document) Append(id string, fragment template.HTML) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c := d.get(id)
	c.Fragments = append(c.Fragments, fragment)
}

func (d *Document) Prepend(id string, fragment template.HTML) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c := d.get(id)
	c.Fragments = append([]template.HTML{fragment}, c.Fragments...)
}

func (d *Document) Show(id string) { d.setHidden(id, false) }

func (d *Document) Hide(id string) { d.setHidden(id, true) }

func (d *Document) setHidden(id string, hidden bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.get(id).Hidden = hidden
}

func (d *Document) Visible(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.containers[id]
	return ok && !c.Hidden
}

// Contents returns the markup of one container.
func (d *Document) Contents(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.containers[id]
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, f := range c.Fragments {
		b.WriteString(string(f))
	}
	return b.String()
}

// Len returns the number of fragments in a container.
func (d *Document) Len(id string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.containers[id]; ok {
		return len(c.Fragments)
	}
	return 0
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
{{range .Containers}}<div id="{{.ID}}"{{if .Hidden}} hidden{{end}}>{{range .Fragments}}{{.}}{{end}}</div>
{{end}}</body>
</html>
`))

// WriteTo writes the whole document as an HTML page.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	d.mu.Lock()
	data := struct {
		Title      string
		Containers []container
	}{Title: d.title}
	for _, id := range d.order {
		c := d.containers[id]
		data.Containers = append(data.Containers, container{
			ID:        c.ID,
			Fragments: append([]template.HTML(nil), c.Fragments...),
			Hidden:    c.Hidden,
		})
	}
	d.mu.Unlock()

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}
