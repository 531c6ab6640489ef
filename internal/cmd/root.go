// Package cmd implements the dishboard command line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/config"
	"github.com/tablefork/dishboard/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "dishboard",
	Short: "Terminal admin dashboard for a restaurant ordering API",
	Long: `Dishboard is a terminal dashboard for restaurant staff: manage the
menu catalog, place quick orders, and track order status through its
lifecycle. All data lives behind the restaurant's HTTP API; dishboard
only presents and synchronizes it.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/dishboard/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "base URL of the restaurant API")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DISHBOARD")
	// Replace dots with underscores for nested keys in env vars
	// e.g., DISHBOARD_API_BASE_URL for api.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadEnvironment builds the client and logger every subcommand needs.
func loadEnvironment() (*config.Config, *api.Client, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logging.NewLogger(cfg.Logging.LogFile(), cfg.Logging.Level)
	if err != nil {
		return nil, nil, nil, err
	}

	client := api.New(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout()),
		api.WithLogger(log.With("component", "api")),
	)
	return cfg, client, log, nil
}
