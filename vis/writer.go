package vis

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DefaultPath is where the pipeline UI looks for the metadata document.
const DefaultPath = "/mlpipeline-ui-metadata.json"

// Write serializes the document as JSON.
func (m UIMetadata) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode ui metadata: %w", err)
	}
	return nil
}

// WriteFile writes the document to path, or to DefaultPath when path is
// empty.
func (m UIMetadata) WriteFile(path string) error {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ui metadata file: %w", err)
	}
	defer f.Close()
	if err := m.Write(f); err != nil {
		return err
	}
	return f.Close()
}
