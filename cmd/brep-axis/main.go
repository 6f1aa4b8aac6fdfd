// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the brep-axis CLI. It classifies
// BREP surfaces into canonical primitives and derives reference axis
// lines for the rotational ones.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/brep-axis/internal/tolerance"
	"github.com/pdiddy/brep-axis/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the brep-axis CLI.
var rootCmd = &cobra.Command{
	Use:   "brep-axis",
	Short: "Classify BREP surfaces and derive machine-identifiable axes",
	Long: `brep-axis fits exported BREP surfaces to canonical primitives (plane,
cylinder, cone) and, for the rotational kinds, derives the reference axis
segment clipped to each surface's own parametric footprint.

Surfaces come from scene YAML files; derived axis lines can be committed
to a SQLite store for downstream annotation, drilling/turning setup, or
fixture alignment tooling.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./brep-axis.yaml or ~/.config/brep-axis/config.yaml)")
	rootCmd.PersistentFlags().Float64("tolerance", 0, "distance tolerance in model units (0 = configured default)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("brep-axis")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "brep-axis"))
		}
	}

	viper.SetDefault("tolerance.distance", tolerance.DefaultDistance)
	viper.SetDefault("tolerance.angle_deg", tolerance.DefaultAngleDeg)
	viper.SetDefault("batch.workers", 1)
	viper.SetDefault("batch.progress_every", 100)
	viper.SetDefault("store.db_path", "axes.db")

	viper.SetEnvPrefix("BREP_AXIS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// toleranceContext builds the tolerance context from configuration,
// letting the --tolerance flag override the configured distance.
func toleranceContext(cmd *cobra.Command) tolerance.Context {
	cfg := types.ToleranceConfig{
		Distance: viper.GetFloat64("tolerance.distance"),
		AngleDeg: viper.GetFloat64("tolerance.angle_deg"),
	}
	if d, _ := cmd.Flags().GetFloat64("tolerance"); d > 0 {
		cfg.Distance = d
	}
	return tolerance.New(cfg)
}

// storeConfig builds the store configuration, letting --db override the
// configured path.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	cfg := types.StoreConfig{DBPath: viper.GetString("store.db_path")}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
