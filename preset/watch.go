package preset

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/camrig"
)

// Watch loads path, reports the result to fn, then reloads and reports again
// every time the file is written or replaced. It blocks until ctx is done.
//
// The parent directory is watched rather than the file so that editors which
// save by renaming a temporary file are picked up.
func Watch(ctx context.Context, path string, fn func(Preset, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch preset: %w", err)
	}
	defer w.Close()

	name := filepath.Clean(path)
	if err := w.Add(filepath.Dir(name)); err != nil {
		return fmt.Errorf("watch preset %s: %w", path, err)
	}

	fn(Load(path))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			camrig.Logger().Debug("camrig: preset changed",
				slog.String("path", path), slog.String("op", ev.Op.String()))
			fn(Load(path))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			camrig.Logger().Warn("camrig: preset watch error", slog.Any("err", err))
		}
	}
}
