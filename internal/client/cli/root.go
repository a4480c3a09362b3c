package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.cache != nil {
		if us, err := a.cache.Load(context.Background()); err == nil && us.FirstName != "" {
			s = us.FirstName + " "
		}
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the REPL until the user exits, with the connectivity watcher in
// the background.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Sport Together CLI (type 'help' for commands)")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
