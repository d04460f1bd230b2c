package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/navrail/navrail/internal/host"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List registered screens and their routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, translator, err := loadConfig()
		if err != nil {
			return err
		}

		registry, err := cfg.BuildRegistry(host.NewRecorder(), translator, logger)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SCREEN\tROUTE\tTITLE\tBUTTONS")
		for _, name := range registry.Names() {
			d, _ := registry.Get(name)
			bar := d.BuildBar(nil)
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", name, d.Route(), bar.Title, len(bar.Buttons))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
