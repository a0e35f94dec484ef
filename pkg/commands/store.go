package commands

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/logging"
	"tableflip.dev/freewrite/pkg/snake"
	"tableflip.dev/freewrite/pkg/store"
)

func loadStore() (*store.Settings, store.Persistence, error) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(settings)
	if err != nil {
		return nil, nil, err
	}
	return settings, p, nil
}

// loadService opens the store for a one-shot command. The returned closer
// releases the log file.
func loadService() (*app.Service, io.Closer, error) {
	settings, p, err := loadStore()
	if err != nil {
		return nil, nil, err
	}
	log, closer, err := logging.NewFile(settings.LogFile, settings.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return &app.Service{
		Store:    p,
		Logger:   log.With("cmd", "cli"),
		Defaults: settings.Prefs,
	}, closer, nil
}

func interactive(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	return ok && isatty.IsTerminal(in.Fd())
}

// entryID returns the id given on the command line, or asks the user to pick
// one when attached to a terminal.
func entryID(cmd *cobra.Command, svc *app.Service, args []string, label string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !interactive(cmd) {
		return "", errors.New("an entry id is required")
	}
	entries, err := svc.Entries(cmd.Context())
	if err != nil {
		return "", err
	}
	e, err := snake.SelectEntry(cmd.InOrStdin(), cmd.OutOrStdout(), label, entries)
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

func confirmer(cmd *cobra.Command) func(string) (bool, error) {
	if !interactive(cmd) {
		return nil
	}
	return func(label string) (bool, error) {
		return snake.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), label)
	}
}
