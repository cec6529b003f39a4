package artifact

import (
	"fmt"
	"strings"
	"sync"

	"github.com/animus-labs/stepkit"
	"github.com/animus-labs/stepkit/internal/platform/env"
)

// Location is the runtime view of the environment contract: everything needed
// to derive the storage URI of one of the current step's artifacts.
type Location struct {
	Scheme       string
	Bucket       string
	KeyPrefix    string
	WorkflowName string
	PodName      string
}

// LocationFromEnv reads the contract injected by LocationConfig.SetEnvs. Any
// missing required variable fails with stepkit.ErrUnresolvedArtifactLocation,
// which means the location transform was never applied to this step. The key
// prefix may be empty and is therefore read without a presence check.
func LocationFromEnv() (Location, error) {
	loc := Location{KeyPrefix: env.String(EnvKeyPrefix, "")}
	for _, v := range []struct {
		key string
		dst *string
	}{
		{EnvScheme, &loc.Scheme},
		{EnvBucket, &loc.Bucket},
		{EnvWorkflowName, &loc.WorkflowName},
		{EnvPodName, &loc.PodName},
	} {
		value, err := env.Require(v.key)
		if err != nil {
			return Location{}, fmt.Errorf("%w: %v", stepkit.ErrUnresolvedArtifactLocation, err)
		}
		*v.dst = value
	}
	if loc.KeyPrefix != "" {
		loc.KeyPrefix = strings.TrimRight(loc.KeyPrefix, "/") + "/"
	}
	return loc, nil
}

// Key returns the object key the orchestrator uses when it persists the named
// artifact: keyPrefix + workflowName + "/" + podName + "/" + name.
func (l Location) Key(name string) string {
	return l.KeyPrefix + l.WorkflowName + "/" + l.PodName + "/" + name
}

// URI returns the full storage URI for the named artifact. The join must stay
// byte-compatible with the orchestrator's repository layout.
func (l Location) URI(name string) string {
	return l.Scheme + "://" + l.Bucket + "/" + l.Key(name)
}

// Reference is a lazy handle to one of the current step's output artifacts,
// keyed by the name the step author chose. Resolution reads the environment
// contract on first use and caches it.
type Reference struct {
	Name string

	once sync.Once
	loc  Location
	err  error
}

// NewReference returns a handle for the named artifact.
func NewReference(name string) *Reference {
	return &Reference{Name: name}
}

func (r *Reference) resolve() (Location, error) {
	r.once.Do(func() {
		r.loc, r.err = LocationFromEnv()
	})
	return r.loc, r.err
}

// Source returns the artifact's full storage URI.
func (r *Reference) Source() (string, error) {
	loc, err := r.resolve()
	if err != nil {
		return "", err
	}
	return loc.URI(r.Name), nil
}

// Scheme returns the storage backend identifier of the artifact repository.
func (r *Reference) Scheme() (string, error) {
	loc, err := r.resolve()
	if err != nil {
		return "", err
	}
	return loc.Scheme, nil
}

// Bucket returns the repository bucket holding the artifact.
func (r *Reference) Bucket() (string, error) {
	loc, err := r.resolve()
	if err != nil {
		return "", err
	}
	return loc.Bucket, nil
}

// Key returns the artifact's object key inside the bucket.
func (r *Reference) Key() (string, error) {
	loc, err := r.resolve()
	if err != nil {
		return "", err
	}
	return loc.Key(r.Name), nil
}
