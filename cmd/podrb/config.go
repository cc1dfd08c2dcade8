package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reducedbasis/interp"
	"github.com/katalvlaran/reducedbasis/pod"
)

// Interpolator names accepted in config and flags.
const (
	interpLinear = "linear"
	interpRBF    = "rbf"
)

// Config is the model configuration. File values are overridden by flags
// that were set explicitly.
type Config struct {
	Truncate     int     `yaml:"truncate"`     // 0 ⇒ full rank
	Smoothness   float64 `yaml:"smoothness"`   // 0 ⇒ exact interpolation
	Interpolator string  `yaml:"interpolator"` // linear | rbf
	Kernel       string  `yaml:"kernel"`       // RBF kernel name
	Shape        float64 `yaml:"shape"`        // RBF ε, 0 ⇒ derived from nodes
	Metric       string  `yaml:"metric"`       // LOO metric name
}

func defaultConfig() Config {
	return Config{
		Interpolator: interpRBF,
		Kernel:       interp.Multiquadric.String(),
		Metric:       "euclidean",
	}
}

// loadConfig reads path over the defaults; an empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// addModelFlags registers the flags that can override model settings.
func addModelFlags(cmd *cobra.Command) {
	d := defaultConfig()
	cmd.Flags().Int("truncate", d.Truncate, "Number of POD modes to keep (0 = full rank)")
	cmd.Flags().Float64("smoothness", d.Smoothness, "Interpolator smoothing strength (0 = exact)")
	cmd.Flags().String("interpolator", d.Interpolator, "Coefficient interpolator (linear|rbf)")
	cmd.Flags().String("kernel", d.Kernel, "RBF kernel (multiquadric|inverse|gaussian|linear|cubic|quintic|thin_plate)")
	cmd.Flags().Float64("shape", d.Shape, "RBF shape parameter (0 = derived from node spread)")
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cmd *cobra.Command, cfg *Config) error {
	f := cmd.Flags()
	var err error
	if f.Changed("truncate") {
		if cfg.Truncate, err = f.GetInt("truncate"); err != nil {
			return err
		}
	}
	if f.Changed("smoothness") {
		if cfg.Smoothness, err = f.GetFloat64("smoothness"); err != nil {
			return err
		}
	}
	if f.Changed("interpolator") {
		if cfg.Interpolator, err = f.GetString("interpolator"); err != nil {
			return err
		}
	}
	if f.Changed("kernel") {
		if cfg.Kernel, err = f.GetString("kernel"); err != nil {
			return err
		}
	}
	if f.Changed("shape") {
		if cfg.Shape, err = f.GetFloat64("shape"); err != nil {
			return err
		}
	}
	if f.Changed("metric") {
		if cfg.Metric, err = f.GetString("metric"); err != nil {
			return err
		}
	}

	return nil
}

// factory resolves the configured interpolation strategy.
func (c Config) factory() (interp.Factory, error) {
	switch c.Interpolator {
	case interpLinear:
		return interp.NewLinear, nil
	case interpRBF:
		k, err := interp.KernelByName(c.Kernel)
		if err != nil {
			return nil, err
		}
		if !nonNegativeFinite(c.Shape) {
			return nil, fmt.Errorf("config: shape must be non-negative, got %g", c.Shape)
		}
		var opts []interp.RBFOption
		if c.Shape > 0 {
			opts = append(opts, interp.WithShape(c.Shape))
		}
		return interp.NewRBF(k, opts...), nil
	default:
		return nil, fmt.Errorf("config: unknown interpolator %q", c.Interpolator)
	}
}

// generateOptions maps the config onto pod.Generate options.
func (c Config) generateOptions() ([]pod.GenerateOption, error) {
	if !nonNegativeFinite(c.Smoothness) {
		return nil, fmt.Errorf("config: smoothness must be non-negative, got %g", c.Smoothness)
	}
	opts := []pod.GenerateOption{pod.WithSmoothness(c.Smoothness)}
	if c.Truncate != 0 {
		opts = append(opts, pod.WithTruncate(c.Truncate))
	}

	return opts, nil
}

func nonNegativeFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
