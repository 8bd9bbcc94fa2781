package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/menusign/internal/config"
	"github.com/example/menusign/internal/settings"
	"github.com/spf13/cobra"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or change the runtime settings store",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [key]",
		Short: "Print one setting, or all known settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			store, err := settings.Open(cmd.Context(), cfg.SettingsBackend, cfg.SettingsDSN)
			if err != nil {
				return err
			}
			defer store.Close()

			keys := settings.Keys
			if len(args) == 1 {
				keys = []string{args[0]}
			}
			for _, k := range keys {
				v, err := store.Get(cmd.Context(), k)
				switch {
				case errors.Is(err, settings.ErrNotFound):
					fmt.Printf("%s\t(unset)\n", k)
				case err != nil:
					return err
				default:
					fmt.Printf("%s\t%s\n", k, v)
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a setting; the controller picks it up on its next tick",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			known := false
			for _, k := range settings.Keys {
				if k == key {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("unknown key %q (known: %s)", key, strings.Join(settings.Keys, ", "))
			}

			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			store, err := settings.Open(cmd.Context(), cfg.SettingsBackend, cfg.SettingsDSN)
			if err != nil {
				return err
			}
			defer store.Close()

			return store.Set(cmd.Context(), key, args[1])
		},
	})

	return cmd
}
