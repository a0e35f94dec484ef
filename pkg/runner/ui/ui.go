package ui

import (
	"context"
	"errors"
	"io"
	"os"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/clipboard"
	"tableflip.dev/freewrite/pkg/logging"
	"tableflip.dev/freewrite/pkg/store"
	teaui "tableflip.dev/freewrite/pkg/tui/app"
	"tableflip.dev/freewrite/pkg/tui/theme"
)

// UI opens the full-screen editor.
type UI struct {
	Settings    *store.Settings
	Persistence store.Persistence
	// Clipboard defaults to the system clipboard.
	Clipboard clipboard.Clipboard
	// Out is probed for the terminal background; defaults to os.Stdout.
	Out io.Writer
}

func (u *UI) Do(ctx context.Context) error {
	if u.Settings == nil || u.Persistence == nil {
		return errors.New("can not open editor, no persistence")
	}

	log, closer, err := logging.NewFile(u.Settings.LogFile, u.Settings.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	defaults := u.Settings.Prefs
	if !u.Settings.ThemeSet {
		defaults.Theme = theme.Detect(u.out())
	}

	decider := teaui.NewDecider()
	notifier := teaui.NewNotifier(16)
	session, err := app.Open(ctx, app.Options{
		Store:    u.Persistence,
		Confirm:  decider.Confirm,
		Notify:   notifier.Notify,
		Logger:   log,
		Debounce: u.Settings.Debounce,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}
	log.Info(ctx, "editor started", "path", u.Persistence.BasePath(), "entry", session.Current().ID)

	clip := u.Clipboard
	if clip == nil {
		clip = clipboard.Default()
	}
	err = teaui.Run(ctx, teaui.Options{
		Session:       session,
		Decider:       decider,
		Notifications: notifier.C(),
		Watcher:       u.Persistence,
		Clipboard:     clip,
		Logger:        log,
	})
	if errors.Is(err, teaui.ErrNotTerminal) {
		// Run never got as far as closing the session.
		_ = session.Close()
	}
	if err != nil {
		log.Error(ctx, "editor exited", "err", err)
		return err
	}
	log.Info(ctx, "editor closed")
	return nil
}

func (u *UI) out() io.Writer {
	if u.Out != nil {
		return u.Out
	}
	return os.Stdout
}
