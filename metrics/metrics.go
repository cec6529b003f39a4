// Package metrics builds the metrics document the pipeline UI reads back
// from a step.
package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/animus-labs/stepkit"
)

// DefaultPath is where the pipeline UI looks for the metrics document.
const DefaultPath = "/mlpipeline-metrics.json"

// Format controls how the UI renders a metric value.
type Format string

const (
	FormatRaw        Format = "RAW"
	FormatPercentage Format = "PERCENTAGE"
)

// metric names follow the UI's contract.
var nameRe = regexp.MustCompile(`^[a-z]([-a-z0-9]{0,62}[a-z0-9])?$`)

// Metric is one named value.
type Metric struct {
	Name        string  `json:"name"`
	NumberValue float64 `json:"numberValue"`
	Format      Format  `json:"format,omitempty"`
}

// New validates and builds a metric. The name must be lowercase alphanumeric
// with dashes, at most 64 characters; an unknown format token fails with
// stepkit.ErrInvalidEnumValue.
func New(name string, value float64, format Format) (Metric, error) {
	if !nameRe.MatchString(name) {
		return Metric{}, fmt.Errorf("metric name must match %s: %q", nameRe.String(), name)
	}
	switch Format(strings.TrimSpace(string(format))) {
	case "", FormatRaw, FormatPercentage:
	default:
		return Metric{}, fmt.Errorf("%w: unrecognized metric format: %q", stepkit.ErrInvalidEnumValue, format)
	}
	return Metric{Name: name, NumberValue: value, Format: format}, nil
}

// Metrics is the document the pipeline UI reads back.
type Metrics struct {
	Metrics []Metric `json:"metrics"`
}

// Collect assembles a metrics document.
func Collect(metrics ...Metric) Metrics {
	return Metrics{Metrics: metrics}
}

// Write serializes the document as JSON.
func (m Metrics) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode metrics: %w", err)
	}
	return nil
}

// WriteFile writes the document to path, or to DefaultPath when path is
// empty.
func (m Metrics) WriteFile(path string) error {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer f.Close()
	if err := m.Write(f); err != nil {
		return err
	}
	return f.Close()
}
