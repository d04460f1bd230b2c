// Package cmd wires the navrail command line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/navrail/navrail/internal/config"
	"github.com/navrail/navrail/internal/logging"
	"github.com/navrail/navrail/internal/title"
)

var rootCmd = &cobra.Command{
	Use:   "navrail",
	Short: "Screen registration and navigation-bar routing",
	Long: `Navrail manages a registry of screens, derives route-qualified
navigation bars from declarative templates, and routes button-press
events from a shared stream back to the screen that owns them.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/navrail/navrail.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("navrail")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/navrail")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("NAVRAIL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadConfig reads the validated configuration and builds the shared
// logger and title translator from it.
func loadConfig() (*config.Config, *logging.Logger, *title.Translator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	logger := logging.New(os.Stderr, cfg.Logging.Level)

	translator := title.NewTranslator(language.Make(cfg.DefaultLocale))
	for _, path := range cfg.Messages {
		if err := translator.LoadMessageFile(path); err != nil {
			return nil, nil, nil, fmt.Errorf("load messages %s: %w", path, err)
		}
	}
	translator.SetLocales(cfg.DefaultLocale)

	return cfg, logger, translator, nil
}
