// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/brep-axis/internal/batch"
	"github.com/pdiddy/brep-axis/internal/surf"
	"github.com/pdiddy/brep-axis/pkg/types"
)

// loadScene reads a scene file into batch inputs, preserving file order.
func loadScene(path string) ([]batch.Input, error) {
	named, err := surf.Load(path)
	if err != nil {
		return nil, err
	}
	inputs := make([]batch.Input, len(named))
	for i, n := range named {
		inputs[i] = batch.Input{Name: n.Name, Surface: n.Surface}
	}
	return inputs, nil
}

// pickSurface selects one surface from the scene by --name or --index.
// With neither flag set, a single-surface scene selects itself.
func pickSurface(cmd *cobra.Command, inputs []batch.Input) (batch.Input, error) {
	name, _ := cmd.Flags().GetString("name")
	if name != "" {
		for _, in := range inputs {
			if in.Name == name {
				return in, nil
			}
		}
		return batch.Input{}, fmt.Errorf("no surface named %q in scene", name)
	}

	index, _ := cmd.Flags().GetInt("index")
	if index < 0 {
		if len(inputs) == 1 {
			return inputs[0], nil
		}
		return batch.Input{}, fmt.Errorf("scene has %d surfaces: select one with --index or --name", len(inputs))
	}
	if index >= len(inputs) {
		return batch.Input{}, fmt.Errorf("index %d out of range, scene has %d surfaces", index, len(inputs))
	}
	return inputs[index], nil
}

// batchConfig builds the batch configuration. The min-diameter flag
// default encodes each command's policy, so the flag value wins
// outright; workers and progress cadence fall back to viper.
func batchConfig(cmd *cobra.Command) types.BatchConfig {
	cfg := types.BatchConfig{
		ProgressEvery: viper.GetInt("batch.progress_every"),
	}
	cfg.MinDiameter, _ = cmd.Flags().GetFloat64("min-diameter")
	cfg.Workers, _ = cmd.Flags().GetInt("workers")
	if cfg.Workers == 0 {
		cfg.Workers = viper.GetInt("batch.workers")
	}
	return cfg
}

// selectFlags registers the single-surface selection flags.
func selectFlags(cmd *cobra.Command) {
	cmd.Flags().Int("index", -1, "select the surface at this scene position")
	cmd.Flags().String("name", "", "select the surface with this scene name")
}
