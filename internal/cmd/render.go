package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navrail/navrail/internal/host"
	"github.com/navrail/navrail/internal/payload"
)

var (
	renderPayload string
	renderLocale  string
)

var renderCmd = &cobra.Command{
	Use:   "render <screen>",
	Short: "Print a screen's localized navigation bar as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, translator, err := loadConfig()
		if err != nil {
			return err
		}
		if renderLocale != "" {
			translator.SetLocales(renderLocale, cfg.DefaultLocale)
		}

		registry, err := cfg.BuildRegistry(host.NewRecorder(), translator, logger)
		if err != nil {
			return err
		}

		name := args[0]
		d, ok := registry.Get(name)
		if !ok {
			return fmt.Errorf("unknown screen %q", name)
		}

		p, err := payload.Unmarshal(renderPayload)
		if err != nil {
			return fmt.Errorf("parse --payload: %w", err)
		}

		bar := d.BuildLocalizedBar(p)
		out, err := json.MarshalIndent(bar, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderPayload, "payload", "", "JSON payload used for dynamic titles")
	renderCmd.Flags().StringVar(&renderLocale, "locale", "", "locale for title keys")
	rootCmd.AddCommand(renderCmd)
}
