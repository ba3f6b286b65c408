package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pareto-plot",
		Short: "Find the Pareto front of two design-study columns",
		Long: "pareto-plot loads design-study results (csv, tsv, xlsx, json, jsonl, yaml),\n" +
			"resolves an optimization direction per column from an axis policy and\n" +
			"reports which design points are non-dominated.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if err := initConfig(cmd.Root(), configPath); err != nil {
				return err
			}
			if err := initLogger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			log.Debug().
				Str("config", viper.ConfigFileUsed()).
				Msg("Loaded configuration")
			return nil
		},
	}

	// logging flags
	rootCmd.PersistentFlags().Bool("with-caller", false, "Log caller")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal, panic, disabled)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (json, text)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file (default: stderr)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose output")

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.pareto-plot/config.yaml)")
	rootCmd.PersistentFlags().String("policy", "", "Axis policy YAML file (default: built-in study policy)")

	rootCmd.AddCommand(newFrontCommand())
	rootCmd.AddCommand(newColumnsCommand())
	rootCmd.AddCommand(newProfileCommand())
	rootCmd.AddCommand(newPolicyCommand())

	return rootCmd
}

func initConfig(rootCmd *cobra.Command, configPath string) error {
	// Load the variables from the environment
	viper.SetEnvPrefix("pareto")

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.pareto-plot")
		viper.AddConfigPath("/etc/pareto-plot")

		xdgConfigPath, err := os.UserConfigDir()
		if err == nil {
			viper.AddConfigPath(xdgConfigPath + "/pareto-plot")
		}
	}

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; ignore error
	} else if err != nil {
		return err
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return err
	}

	return nil
}

// bindSettings binds a command's local flags to viper and decodes the merged
// flag, environment and config values into s.
func bindSettings(cmd *cobra.Command, s interface{}) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.Unmarshal(s)
}
