// Package vis builds the visualization-metadata document the pipeline UI
// reads back from a step, covering the UI's built-in renderers plus custom
// web apps.
package vis

import (
	"fmt"
	"strings"

	"github.com/animus-labs/stepkit"
)

// OutputType names a visualization the pipeline UI can render.
type OutputType string

const (
	TypeConfusionMatrix OutputType = "confusion_matrix"
	TypeMarkdown        OutputType = "markdown"
	TypeROC             OutputType = "roc"
	TypeTable           OutputType = "table"
	TypeTensorboard     OutputType = "tensorboard"
	TypeWebApp          OutputType = "web-app"
)

// Storage names where the UI loads an output's source from. Empty means the
// source is a URI the UI resolves by scheme.
type Storage string

const (
	StorageInline Storage = "inline"
	StorageMinio  Storage = "minio"
	StorageS3     Storage = "s3"
	StorageGCS    Storage = "gcs"
	StorageHTTP   Storage = "http"
	StorageHTTPS  Storage = "https"
)

// ParseStorage validates a storage token. Empty is allowed.
func ParseStorage(s string) (Storage, error) {
	switch Storage(strings.TrimSpace(s)) {
	case "", StorageInline, StorageMinio, StorageS3, StorageGCS, StorageHTTP, StorageHTTPS:
		return Storage(strings.TrimSpace(s)), nil
	}
	return "", fmt.Errorf("%w: unrecognized storage: %q", stepkit.ErrInvalidEnumValue, s)
}

// ColumnSchema describes one column of a csv-backed output.
type ColumnSchema struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Output is one entry of the UI metadata document.
type Output struct {
	Type    OutputType     `json:"type"`
	Storage Storage        `json:"storage,omitempty"`
	Format  string         `json:"format,omitempty"`
	Source  string         `json:"source"`
	Header  []string       `json:"header,omitempty"`
	Labels  []string       `json:"labels,omitempty"`
	Schema  []ColumnSchema `json:"schema,omitempty"`
}

// UIMetadata is the document the pipeline UI reads back.
type UIMetadata struct {
	Version int      `json:"version"`
	Outputs []Output `json:"outputs"`
}

// New assembles a version-1 UI metadata document.
func New(outputs ...Output) UIMetadata {
	return UIMetadata{Version: 1, Outputs: outputs}
}
