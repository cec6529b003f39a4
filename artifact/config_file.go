package artifact

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// repositoryFile mirrors the artifact-repository section of the
// orchestrator's controller configmap.
type repositoryFile struct {
	S3 *s3Repository `yaml:"s3"`
}

type s3Repository struct {
	Bucket    string `yaml:"bucket"`
	KeyPrefix string `yaml:"keyPrefix"`
	Endpoint  string `yaml:"endpoint"`
	Insecure  bool   `yaml:"insecure"`
}

// LoadLocationConfig parses the orchestrator's artifact-repository YAML into
// a LocationConfig, so authoring code derives the repository convention from
// the same document the cluster uses. An insecure s3 repository maps to the
// minio scheme, a secure one to s3.
func LoadLocationConfig(path string) (LocationConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return LocationConfig{}, fmt.Errorf("read artifact repository config: %w", err)
	}
	return ParseLocationConfig(raw)
}

// ParseLocationConfig parses artifact-repository YAML bytes.
func ParseLocationConfig(raw []byte) (LocationConfig, error) {
	var file repositoryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return LocationConfig{}, fmt.Errorf("parse artifact repository config: %w", err)
	}
	if file.S3 == nil {
		return LocationConfig{}, fmt.Errorf("artifact repository config has no s3 section")
	}
	if strings.TrimSpace(file.S3.Bucket) == "" {
		return LocationConfig{}, fmt.Errorf("artifact repository config s3.bucket is required")
	}
	scheme := "s3"
	if file.S3.Insecure {
		scheme = "minio"
	}
	return NewLocationConfig(scheme, file.S3.Bucket, file.S3.KeyPrefix)
}
