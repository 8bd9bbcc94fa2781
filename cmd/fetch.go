package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/menusign/internal/config"
	"github.com/example/menusign/internal/menu"
	"github.com/example/menusign/internal/novae"
	"github.com/example/menusign/internal/textnorm"
	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	var (
		restaurant int
		date       string
		normMode   string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch one day's lunch menu and print the distilled line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			if date == "" {
				date = time.Now().Format("2006-01-02")
			} else if _, err := time.Parse("2006-01-02", date); err != nil {
				return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
			}

			table := menu.DefaultTable()
			if cfg.RestaurantsFile != "" {
				table, err = menu.LoadTable(cfg.RestaurantsFile)
				if err != nil {
					return err
				}
			}
			code := table.Sanitize(restaurant)

			client := novae.New(novae.Options{
				BaseURL:     cfg.NovaeBaseURL,
				Key:         cfg.NovaeKey,
				Lang:        cfg.NovaeLang,
				InsecureTLS: cfg.NovaeTLSInsecure,
			})

			titles, err := client.LunchTitles(cmd.Context(), table.ID(code), date)
			if err != nil {
				return err
			}

			dishes := menu.Distill(titles, textnorm.GetNormalizer(normMode))
			if len(dishes) == 0 {
				fmt.Printf("no lunch dishes for R%d on %s\n", code, date)
				return nil
			}
			fmt.Printf("R%d menu for %s: %s\n", code, date, strings.Join(dishes, " | "))
			return nil
		},
	}

	cmd.Flags().IntVar(&restaurant, "restaurant", 3, "restaurant code")
	cmd.Flags().StringVar(&date, "date", "", "menu date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&normMode, "normalizer", "french_table", "title normalizer: french_table, unicode or none")
	return cmd
}
