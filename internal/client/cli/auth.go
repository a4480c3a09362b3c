package cli

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sporttogether/internal/client/form"
	"github.com/dmitrijs2005/sporttogether/internal/client/pages"
)

// Interactive input helpers, swapped out in tests.
var getSimpleText = GetSimpleText
var getTextWithDefault = GetTextWithDefault
var getPassword = GetPassword
var getChoices = GetChoices

var interestSports = []string{"soccer", "running", "frisbee", "basketball"}

// Register prompts for the registration fields and submits them.
func (a *App) Register(ctx context.Context) error {
	f := form.New(form.RegistrationForm)
	for _, p := range []struct{ name, prompt string }{
		{"first_name", "Enter first name"},
		{"last_name", "Enter last name"},
		{"email_address", "Enter email"},
		{"university", "Enter university"},
	} {
		v, err := getSimpleText(a.reader, p.prompt, os.Stdout)
		if err != nil {
			return err
		}
		f.Set(p.name, v)
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	f.Set("password", string(password))

	sports, err := getChoices(a.reader, "Sports you play (comma-separated: soccer, running, frisbee, basketball)", os.Stdout)
	if err != nil {
		return err
	}
	for _, s := range interestSports {
		f.Set(s, strconv.FormatBool(sports[s]))
	}

	return a.pages.Register(ctx, f)
}

// Login prompts for credentials, logs in and shows the user's games.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	f := form.New(form.LoginForm,
		&form.Field{Name: "email_address", Value: email, Required: true},
		&form.Field{Name: "password", Value: string(password), Required: true},
	)
	if err := a.pages.Login(ctx, f); err != nil {
		return err
	}
	printlnFn("Login successful")

	if a.currentPage() == pages.HomePath {
		return a.MyGames(ctx)
	}
	return a.writeDocument(ctx)
}

// DeleteAccount asks for confirmation, then deletes the account and logs
// out.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Type yes to delete your account", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
		printlnFn("Account kept")
		return nil
	}
	if err := a.pages.DeleteAccount(ctx); err != nil {
		return err
	}
	return a.writeDocument(ctx)
}

// Logout clears the session and the rendered page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.pages.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return a.writeDocument(ctx)
}
