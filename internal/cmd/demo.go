package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/navrail/navrail/internal/config"
	"github.com/navrail/navrail/internal/dispatch"
	"github.com/navrail/navrail/internal/gateway"
	"github.com/navrail/navrail/internal/stream"
	"github.com/navrail/navrail/internal/tui"
)

var demoStart string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive host simulator",
	Long: `Demo runs a terminal simulation of the host runtime: it renders the
current screen's navigation bar, number keys fire qualified button
presses into the shared stream, and text input drives internal
navigation through the gateway.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, translator, err := loadConfig()
		if err != nil {
			return err
		}
		if len(cfg.Screens) == 0 {
			return fmt.Errorf("no screens configured; add a screens section to the config file")
		}

		channel := tui.NewHostChannel()

		registry, err := cfg.BuildRegistry(channel, translator, logger)
		if err != nil {
			return err
		}

		presses := stream.New()
		dispatcher := dispatch.New(presses, dispatch.WithLogger(logger))

		gw := gateway.New(channel, gateway.WithLogger(logger))
		gw.SetNavigator(gateway.NewNavigator(registry))

		start := demoStart
		if start == "" {
			start = cfg.ScreenNames()[0]
		}

		model := tui.New(registry, presses, dispatcher, gw, channel, start)
		p := tea.NewProgram(model, tea.WithAltScreen())

		// Hot-reload: rebuild the registry when the config file is
		// rewritten and hand it to the running simulator.
		if path := viper.ConfigFileUsed(); path != "" {
			stop, werr := config.Watch(path, func() {
				if err := viper.ReadInConfig(); err != nil {
					logger.Warn("config reload failed", "error", err)
					return
				}
				next, err := config.Load()
				if err != nil {
					logger.Warn("config reload failed", "error", err)
					return
				}
				reloaded, err := next.BuildRegistry(channel, translator, logger)
				if err != nil {
					logger.Warn("config reload failed", "error", err)
					return
				}
				p.Send(tui.ReloadMsg{Registry: reloaded})
			})
			if werr != nil {
				logger.Warn("config watch unavailable", "error", werr)
			} else {
				defer stop()
			}
		}

		final, err := p.Run()
		if err != nil {
			return err
		}

		if m, ok := final.(*tui.Model); ok {
			if result, finished := m.Result(); finished {
				fmt.Fprintf(cmd.OutOrStdout(), "flow finished with payload: %s\n", result)
			}
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoStart, "start", "", "screen to open first (default: first by name)")
	rootCmd.AddCommand(demoCmd)
}
