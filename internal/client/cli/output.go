package cli

import (
	"context"
	"os"
	"path/filepath"
)

func (a *App) outputPath() string {
	if a.config == nil {
		return ""
	}
	return a.config.OutputPath
}

// writeDocument renders the page to the output file. It writes to a
// temporary file first so a browser never sees a half-written page.
func (a *App) writeDocument(ctx context.Context) error {
	path := a.outputPath()
	if path == "" {
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".sporttogether-*.html")
	if err != nil {
		a.logger.Error(ctx, "failed to write page", "error", err)
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := a.pages.Document().WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
