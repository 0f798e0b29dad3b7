// Package cmd wires configuration, logging, backends, and the picker
// into the cardpick command line interface.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahoban/cardpick/internal/backends"
	_ "github.com/ahoban/cardpick/internal/backends/custom"
	_ "github.com/ahoban/cardpick/internal/backends/khard"
	_ "github.com/ahoban/cardpick/internal/backends/pycarddav"
	_ "github.com/ahoban/cardpick/internal/backends/pycardsyncer"
	_ "github.com/ahoban/cardpick/internal/backends/sqlitedb"
	_ "github.com/ahoban/cardpick/internal/backends/vdirsyncer"
	"github.com/ahoban/cardpick/internal/config"
	"github.com/ahoban/cardpick/internal/logging"
	"github.com/ahoban/cardpick/internal/session"
	"github.com/ahoban/cardpick/internal/tui"
)

var (
	refreshCount int
	fillerName   string
	syncerName   string
	configPath   string
)

var rootCmd = &cobra.Command{
	Use:   "cardpick",
	Short: "Pick contacts from your address book and print them mail-ready",
	Long: `cardpick lists your contacts through khard, pycarddav, a local
SQLite database, or any command you configure, lets you filter and pick
them interactively, and prints the selection as "Name" <email> entries
joined by commas.

Pass -r to re-fetch the contact list before picking, and -rr to sync
with the server first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, log, err := buildSession()
		if err != nil {
			return err
		}

		level := session.LevelFromCount(refreshCount)
		out, err := sess.Run(cmd.Context(), level)
		if err != nil {
			if errors.Is(err, session.ErrCanceled) {
				return nil
			}
			log.Error().Err(err).Msg("pick failed")
			return err
		}

		if out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

// buildSession loads the config and assembles the session with its
// resolved backends and the interactive picker.
func buildSession() (*session.Session, *logging.Log, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log := logging.New(cfg.Log.Path)

	bcfg := backends.Config{
		DatabasePath: cfg.Contacts.DatabasePath,
		FillCommand:  cfg.Contacts.Command,
		SyncCommand:  cfg.Sync.Command,
		SyncOutput:   log.Writer(),
		Logger:       log.Logger,
	}

	mgr, err := backends.NewManager(bcfg, pickName(fillerName, cfg.Contacts.Filler), pickName(syncerName, cfg.Sync.Syncer))
	if err != nil {
		return nil, nil, err
	}

	return session.New(mgr.Filler(), mgr.Syncer(), tui.Picker{}, log.Logger), log, nil
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// pickName prefers the flag over the config file value
func pickName(flag, cfg string) string {
	if flag != "" {
		return flag
	}
	return cfg
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().CountVarP(&refreshCount, "refresh", "r", "re-fetch contacts; twice to sync with the server first")
	rootCmd.Flags().StringVar(&fillerName, "filler", "", "contact fill strategy (khard, pycarddav, sqlitedb, custom)")
	rootCmd.Flags().StringVar(&syncerName, "syncer", "", "server sync strategy (vdirsyncer, pycardsyncer, custom)")
}
