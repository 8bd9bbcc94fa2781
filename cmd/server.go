package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/menusign/internal/config"
	"github.com/example/menusign/internal/display"
	"github.com/example/menusign/internal/menu"
	"github.com/example/menusign/internal/novae"
	"github.com/example/menusign/internal/settings"
	"github.com/example/menusign/internal/web"
	"github.com/spf13/cobra"
)

// displayPeriod is how often the external sign is expected to poll for the
// menu message.
const displayPeriod = 25 * time.Millisecond

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Run the menu controller + status page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			store, err := settings.Open(ctx, cfg.SettingsBackend, cfg.SettingsDSN)
			if err != nil {
				return err
			}
			defer store.Close()

			table := menu.DefaultTable()
			if cfg.RestaurantsFile != "" {
				table, err = menu.LoadTable(cfg.RestaurantsFile)
				if err != nil {
					return err
				}
			}

			client := novae.New(novae.Options{
				BaseURL:     cfg.NovaeBaseURL,
				Key:         cfg.NovaeKey,
				Lang:        cfg.NovaeLang,
				InsecureTLS: cfg.NovaeTLSInsecure,
			})

			task := menu.NewTask(store, client, table)
			task.SetInterval(cfg.PollInterval)
			go func() { _ = task.Run(ctx) }()

			reg := display.NewRegistry()
			reg.Add(display.Message{
				Name:       "menu",
				Period:     displayPeriod,
				Priority:   1,
				Repeatable: true,
				Fn:         task.MenuString,
			})

			ws := &web.Server{Menu: task, Display: reg}
			return web.Start(ctx, cfg.ListenAddr, ws.Routes())
		},
	}
}
