package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sporttogether/internal/client/form"
	"github.com/dmitrijs2005/sporttogether/internal/client/view"
)

// gameFieldPrompts labels the game form fields in the create and edit
// prompts.
var gameFieldPrompts = map[string]string{
	"type":       "Sport (soccer, running, frisbee, basketball, tennis)",
	"location":   "Location",
	"date":       "Date (YYYY-MM-DD)",
	"time":       "Time (HH:MM)",
	"numPlayers": "Number of players",
}

func (a *App) MyGames(ctx context.Context) error {
	if err := a.pages.MyGames(ctx); err != nil {
		return err
	}
	doc := a.pages.Document()
	printlnFn(fmt.Sprintf("Your games: %d owned, %d joined", doc.Len(view.OwnedGames), doc.Len(view.JoinedGames)))
	return a.writeDocument(ctx)
}

func (a *App) LocalGames(ctx context.Context) error {
	if err := a.pages.LocalGames(ctx); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Local games: %d", a.pages.Document().Len(view.AllLocalGames)))
	return a.writeDocument(ctx)
}

// Create prompts for the event fields and creates a game.
func (a *App) Create(ctx context.Context) error {
	f := form.New(form.EventForm,
		&form.Field{Name: "type"},
		&form.Field{Name: "location"},
		&form.Field{Name: "date"},
		&form.Field{Name: "time"},
		&form.Field{Name: "numPlayers", Pattern: `[0-9]+`},
	)
	for _, fld := range f.Fields {
		v, err := getSimpleText(a.reader, gameFieldPrompts[fld.Name], os.Stdout)
		if err != nil {
			return err
		}
		fld.Value = v
	}

	if err := a.pages.CreateEvent(ctx, f); err != nil {
		return err
	}
	printlnFn("Game created")
	return a.writeDocument(ctx)
}

// Edit opens a game for editing, prompts for new values and saves them.
func (a *App) Edit(ctx context.Context, gameID string) error {
	f, err := a.pages.EditGame(ctx, gameID)
	if err != nil {
		return err
	}
	for _, fld := range f.Fields {
		if fld.Disabled {
			continue
		}
		v, err := getTextWithDefault(a.reader, gameFieldPrompts[fld.Name], fld.Value, os.Stdout)
		if err != nil {
			return err
		}
		fld.Value = v
	}

	if err := a.pages.SaveGame(ctx, f); err != nil {
		return err
	}
	printlnFn("Game saved")
	return a.writeDocument(ctx)
}

func (a *App) Join(ctx context.Context, gameID string) error {
	if err := a.pages.JoinGame(ctx, gameID); err != nil {
		return err
	}
	return a.writeDocument(ctx)
}

func (a *App) Leave(ctx context.Context, gameID string) error {
	if err := a.pages.LeaveGame(ctx, gameID); err != nil {
		return err
	}
	return a.writeDocument(ctx)
}

// Show writes the current page and prints where it went.
func (a *App) Show(ctx context.Context) error {
	if err := a.writeDocument(ctx); err != nil {
		return err
	}
	printlnFn("Page written to", a.outputPath())
	return nil
}
