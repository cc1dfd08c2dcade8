// Command podrb fits a weighted POD surrogate to a YAML dataset, predicts
// snapshots at new parametric points and reports leave-one-out errors.
//
//	podrb predict  --data d.yaml --at 0.5 --at 1.5
//	podrb loo      --data d.yaml --metric max
//	podrb spectrum --data d.yaml
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	if err := newRootCmd(log).Execute(); err != nil {
		log.Error().Err(err).Msg("podrb failed")
		os.Exit(1)
	}
}
