package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reducedbasis/dataset"
	"github.com/katalvlaran/reducedbasis/pod"
)

type prediction struct {
	Point []float64 `yaml:"point"`
	Value []float64 `yaml:"value"`
}

type predictReport struct {
	Truncate    int          `yaml:"truncate"`
	Predictions []prediction `yaml:"predictions"`
}

type looReport struct {
	Metric string    `yaml:"metric"`
	Errors []float64 `yaml:"errors"`
}

type spectrumReport struct {
	Rank           int       `yaml:"rank"`
	SingularValues []float64 `yaml:"singular_values"`
}

func newPredictCmd(a *app) *cobra.Command {
	var at []string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Fit the POD model and approximate snapshots at new points",
		Long:  "Fit the reduced basis to --data and print one approximated snapshot per --at point (comma-separated coordinates).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(at) == 0 {
				return fmt.Errorf("predict: at least one --at point is required")
			}
			query := make([][]float64, 0, len(at))
			for _, s := range at {
				p, err := dataset.ParsePoint(s)
				if err != nil {
					return err
				}
				query = append(query, p)
			}

			b, err := a.fit(cmd)
			if err != nil {
				return err
			}
			r, _ := b.Truncate()
			report := predictReport{Truncate: r}
			for _, p := range query {
				v, err := b.EvaluatePoint(p)
				if err != nil {
					return fmt.Errorf("predict %v: %w", p, err)
				}
				report.Predictions = append(report.Predictions, prediction{Point: p, Value: v})
			}

			return writeYAML(cmd.OutOrStdout(), report)
		},
	}
	addModelFlags(cmd)
	cmd.Flags().StringArrayVar(&at, "at", nil, "Query point as comma-separated coordinates (repeatable)")

	return cmd
}

func newLOOCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loo",
		Short: "Leave-one-out reconstruction error per training point",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			metric, err := pod.MetricByName(cfg.Metric)
			if err != nil {
				return err
			}
			points, snaps, err := a.load()
			if err != nil {
				return err
			}

			errs, err := pod.LOOError(points, snaps, pod.WithMetric(metric), pod.WithLOOLogger(a.log))
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), looReport{Metric: cfg.Metric, Errors: errs})
		},
	}
	cmd.Flags().String("metric", defaultConfig().Metric, "Error metric (euclidean|manhattan|max)")

	return cmd
}

func newSpectrumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spectrum",
		Short: "Singular values of the weighted snapshot matrix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, snaps, err := a.load()
			if err != nil {
				return err
			}
			sv, err := pod.Spectrum(snaps)
			if err != nil {
				return err
			}
			a.log.Debug().Int("points", points.Size()).Int("rank", len(sv)).Msg("spectrum computed")

			return writeYAML(cmd.OutOrStdout(), spectrumReport{Rank: len(sv), SingularValues: sv})
		},
	}
}

// fit loads config and data and generates the model.
func (a *app) fit(cmd *cobra.Command) (*pod.Builder, error) {
	cfg, err := a.config(cmd)
	if err != nil {
		return nil, err
	}
	factory, err := cfg.factory()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.generateOptions()
	if err != nil {
		return nil, err
	}
	points, snaps, err := a.load()
	if err != nil {
		return nil, err
	}

	b := pod.NewBuilder(pod.WithLogger(a.log))
	if err = b.Generate(points, snaps, factory, opts...); err != nil {
		return nil, err
	}
	r, _ := b.Truncate()
	a.log.Info().Int("truncate", r).Str("interpolator", cfg.Interpolator).Msg("model fitted")

	return b, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
