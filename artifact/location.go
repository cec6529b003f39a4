// Package artifact bridges authoring-time artifact-repository configuration
// to runtime URI resolution. The authoring half injects a fixed environment
// contract into a step via a transform; the runtime half reads that contract
// back and derives storage URIs without any call to the orchestrator.
package artifact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/animus-labs/stepkit/step"
	"github.com/animus-labs/stepkit/transform"
)

// Environment contract between the authoring-time transform and the runtime
// resolver. The workflow and pod variables carry orchestrator template
// placeholders that the orchestrator substitutes at submission time.
const (
	EnvScheme       = "WORKFLOW_ARTIFACT_SCHEME"
	EnvBucket       = "WORKFLOW_ARTIFACT_BUCKET"
	EnvKeyPrefix    = "WORKFLOW_ARTIFACT_KEY_PREFIX"
	EnvWorkflowName = "WORKFLOW_NAME"
	EnvPodName      = "POD_NAME"
)

// Template placeholders the orchestrator substitutes when it schedules the
// step. They are never resolved by this system.
const (
	workflowNameTemplate = "{{workflow.name}}"
	podNameTemplate      = "{{pod.name}}"
)

// LocationConfig describes the orchestrator's artifact-repository convention.
// Immutable after construction.
type LocationConfig struct {
	scheme    string
	bucket    string
	keyPrefix string
}

// NewLocationConfig validates the repository convention. A non-empty
// keyPrefix is normalized to end with exactly one path separator.
func NewLocationConfig(scheme, bucket, keyPrefix string) (LocationConfig, error) {
	scheme = strings.TrimSpace(scheme)
	bucket = strings.TrimSpace(bucket)
	keyPrefix = strings.TrimSpace(keyPrefix)
	if scheme == "" {
		return LocationConfig{}, errors.New("artifact location scheme is required")
	}
	if strings.Contains(scheme, "://") {
		return LocationConfig{}, fmt.Errorf("scheme must not include separator: %q", scheme)
	}
	if bucket == "" {
		return LocationConfig{}, errors.New("artifact location bucket is required")
	}
	if keyPrefix != "" {
		keyPrefix = strings.TrimRight(keyPrefix, "/") + "/"
	}
	return LocationConfig{scheme: scheme, bucket: bucket, keyPrefix: keyPrefix}, nil
}

func (c LocationConfig) Scheme() string    { return c.scheme }
func (c LocationConfig) Bucket() string    { return c.bucket }
func (c LocationConfig) KeyPrefix() string { return c.keyPrefix }

// SetEnvs returns the transform that injects the environment contract into a
// step spec. It composes with any builder output and is typically applied
// exactly once per step.
func (c LocationConfig) SetEnvs() transform.Transform {
	scheme, bucket, keyPrefix := c.scheme, c.bucket, c.keyPrefix
	return transform.New("set artifact location envs", func(s *step.Spec) {
		s.SetEnv(EnvScheme, scheme)
		s.SetEnv(EnvBucket, bucket)
		s.SetEnv(EnvKeyPrefix, keyPrefix)
		s.SetEnv(EnvWorkflowName, workflowNameTemplate)
		s.SetEnv(EnvPodName, podNameTemplate)
	})
}
