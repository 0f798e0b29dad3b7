package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ahoban/cardpick/internal/backends"
	"github.com/ahoban/cardpick/internal/logging"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the registered fill and sync strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := logging.Nop()
		bcfg := backends.Config{
			DatabasePath: cfg.Contacts.DatabasePath,
			FillCommand:  cfg.Contacts.Command,
			SyncCommand:  cfg.Sync.Command,
			SyncOutput:   log.Writer(),
			Logger:       log.Logger,
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Fillers:")
		for _, name := range sorted(backends.ListFillers()) {
			f, err := backends.CreateFiller(name, bcfg)
			if err != nil {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", mark(f.Available()), name)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Syncers:")
		for _, name := range sorted(backends.ListSyncers()) {
			s, err := backends.CreateSyncer(name, bcfg)
			if err != nil {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", mark(s.Available()), name)
		}

		return nil
	},
}

func sorted(names []string) []string {
	sort.Strings(names)
	return names
}

func mark(available bool) string {
	if available {
		return color.GreenString("✓")
	}
	return color.RedString("✗")
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
