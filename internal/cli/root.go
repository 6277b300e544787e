// Package cli wires configuration, storage and the remote client into the
// beezer commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beezer-app/beezer/internal/config"
)

// overrides are flag values applied on top of the loaded config.
type overrides struct {
	artist string
	lang   string
	apiURL string
	dbPath string
	store  string
}

func (o overrides) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("artist") {
		cfg.ArtistName = o.artist
	}
	if flags.Changed("lang") {
		cfg.Language = o.lang
	}
	if flags.Changed("api-url") {
		cfg.APIBaseURL = o.apiURL
	}
	if flags.Changed("db") {
		cfg.Store.Path = o.dbPath
	}
	if flags.Changed("store") {
		cfg.Store.Backend = o.store
	}
}

// NewRootCmd builds the command tree. Running the root command starts the TUI.
func NewRootCmd() *cobra.Command {
	var o overrides

	root := &cobra.Command{
		Use:           "beezer",
		Short:         "Artist info and top track previews from Deezer, cached locally.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, o)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.artist, "artist", config.DefaultArtist, "artist name to search")
	pf.StringVar(&o.lang, "lang", config.DefaultLanguage, "message language (es, en)")
	pf.StringVar(&o.apiURL, "api-url", config.DefaultAPIBaseURL, "Deezer API base URL")
	pf.StringVar(&o.dbPath, "db", "", "sqlite cache file")
	pf.StringVar(&o.store, "store", "sqlite", "cache backend (sqlite, redis)")

	root.AddCommand(newShowCmd(&o), newServeCmd(&o))
	return root
}

func loadConfig(cmd *cobra.Command, o overrides) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	o.apply(cmd, cfg)
	return cfg, nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
