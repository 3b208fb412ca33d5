package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/infoloom/infoloom/api/internal/prefs"
)

type cliOptions struct {
	prefsFile string
	apiURL    string
	noColor   bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "infoloom",
		Short: "Browse UCs and manage local preferences",
		Long: `infoloom talks to the infoloom API and keeps favorites and the theme
in a local preferences file.

Available subcommands:
  favorites - list, toggle or check favorited UC slugs
  theme     - show or change the theme preference
  ucs       - list UCs, marking favorites
  dates     - list evaluation dates`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.prefsFile, "prefs", "", "preferences file (default: <user config dir>/infoloom/prefs.json)")
	root.PersistentFlags().StringVar(&opts.apiURL, "api", "http://localhost:8080", "infoloom API base URL")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newFavoritesCmd(opts),
		newThemeCmd(opts),
		newUCsCmd(opts),
		newDatesCmd(opts),
	)
	return root
}

func (o *cliOptions) storage() (prefs.Storage, error) {
	path := o.prefsFile
	if path == "" {
		var err error
		if path, err = prefs.DefaultFilePath(); err != nil {
			return nil, err
		}
	}
	return prefs.NewFileStorage(path), nil
}

func (o *cliOptions) favorites() (*prefs.Favorites, error) {
	storage, err := o.storage()
	if err != nil {
		return nil, err
	}
	return prefs.NewFavorites(storage)
}

func (o *cliOptions) httpClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}
