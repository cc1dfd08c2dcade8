package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/reducedbasis/dataset"
	"github.com/katalvlaran/reducedbasis/parametric"
)

const rootLongDesc = `podrb builds a weighted Proper Orthogonal Decomposition surrogate over a
family of snapshots and evaluates it at unseen parametric points.

  podrb predict   Fit the model and print approximations at --at points
  podrb loo       Print leave-one-out relative reconstruction errors
  podrb spectrum  Print the singular values of the weighted snapshot matrix`

// app carries the state shared by every subcommand.
type app struct {
	log      zerolog.Logger
	cfgPath  string
	dataPath string
	debug    bool
}

func newRootCmd(log zerolog.Logger) *cobra.Command {
	a := &app{log: log}

	cmd := &cobra.Command{
		Use:           "podrb",
		Short:         "Weighted POD reduced-basis surrogate",
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := zerolog.InfoLevel
			if a.debug {
				level = zerolog.DebugLevel
			}
			a.log = a.log.Level(level)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML model configuration file")
	cmd.PersistentFlags().StringVar(&a.dataPath, "data", "", "YAML dataset with points, snapshots and optional weights")
	cmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable debug logging")
	_ = cmd.MarkPersistentFlagRequired("data")

	cmd.AddCommand(newPredictCmd(a), newLOOCmd(a), newSpectrumCmd(a))

	return cmd
}

// config loads the configuration file and applies explicit flags.
func (a *app) config(cmd *cobra.Command) (Config, error) {
	cfg, err := loadConfig(a.cfgPath)
	if err != nil {
		return cfg, err
	}

	return cfg, applyFlags(cmd, &cfg)
}

// load reads the dataset and builds its containers.
func (a *app) load() (*parametric.Points, *parametric.Snapshots, error) {
	ds, err := dataset.Load(a.dataPath)
	if err != nil {
		return nil, nil, err
	}
	points, err := ds.Points()
	if err != nil {
		return nil, nil, err
	}
	snaps, err := ds.Snapshots()
	if err != nil {
		return nil, nil, err
	}
	a.log.Info().Int("points", points.Size()).Int("dim", snaps.Dim()).Str("data", a.dataPath).Msg("dataset loaded")

	return points, snaps, nil
}
