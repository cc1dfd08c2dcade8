// Package dataset decodes YAML training documents into parametric containers.
//
// Document shape:
//
//	points:              # N rows of d_p coordinates
//	  - [0.0]
//	  - [1.0]
//	snapshots:           # N rows of d_s values, aligned with points
//	  - [1.0, 0.0, 2.0]
//	  - [0.5, 1.0, 2.5]
//	weights: [1, 1, 2]   # optional, length d_s; omitted ⇒ all ones
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reducedbasis/parametric"
)

var (
	// ErrSizeMismatch indicates a different number of points and snapshots.
	ErrSizeMismatch = errors.New("dataset: points and snapshots differ in size")

	// ErrBadPoint indicates an unparsable point literal.
	ErrBadPoint = errors.New("dataset: malformed point")
)

// Dataset is the decoded document.
type Dataset struct {
	PointRows    [][]float64 `yaml:"points"`
	SnapshotRows [][]float64 `yaml:"snapshots"`
	Weights      []float64   `yaml:"weights,omitempty"`
}

// Decode reads one YAML document from r.
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if len(ds.PointRows) != len(ds.SnapshotRows) {
		return nil, fmt.Errorf("dataset: %d points, %d snapshots: %w", len(ds.PointRows), len(ds.SnapshotRows), ErrSizeMismatch)
	}

	return &ds, nil
}

// Load opens path and decodes it.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Points builds the parametric point set.
func (d *Dataset) Points() (*parametric.Points, error) {
	return parametric.NewPoints(d.PointRows)
}

// Snapshots builds the snapshot set with the document's weights.
func (d *Dataset) Snapshots() (*parametric.Snapshots, error) {
	return parametric.NewSnapshots(d.SnapshotRows, d.Weights)
}

// ParsePoint parses comma-separated coordinates, e.g. "0.5, 1.25".
func ParsePoint(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadPoint, s, err)
		}
		out = append(out, v)
	}

	return out, nil
}
