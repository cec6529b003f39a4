package objectstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/animus-labs/stepkit/internal/platform/env"
)

// Config carries the endpoint and credentials for the S3-compatible store
// backing the artifact repository. The bucket and key of any object always
// come from the resolved artifact location, never from here.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

func ConfigFromEnv() (Config, error) {
	useSSL, err := env.Bool("STEPKIT_MINIO_USE_SSL", false)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Endpoint:  env.String("STEPKIT_MINIO_ENDPOINT", "minio-service.kubeflow:9000"),
		AccessKey: env.String("STEPKIT_MINIO_ACCESS_KEY", "minio"),
		SecretKey: env.String("STEPKIT_MINIO_SECRET_KEY", "minio123"),
		Region:    env.String("STEPKIT_MINIO_REGION", "us-east-1"),
		UseSSL:    useSSL,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return errors.New("endpoint is required")
	}
	if strings.TrimSpace(c.AccessKey) == "" {
		return errors.New("access key is required")
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.New("secret key is required")
	}
	if strings.Contains(c.Endpoint, "://") {
		return fmt.Errorf("endpoint must not include scheme: %q", c.Endpoint)
	}
	return nil
}
