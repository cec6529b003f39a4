package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/animus-labs/stepkit"
	"github.com/animus-labs/stepkit/step"
)

// ResourceSpec is one side of a resource requirement: a request/limit pair
// for a single resource kind. The zero value means "leave unchanged".
type ResourceSpec struct {
	Request string
	Limit   string
}

// Res returns a ResourceSpec applying value to both request and limit.
func Res(value string) ResourceSpec {
	return ResourceSpec{Request: value, Limit: value}
}

// ResRange returns a ResourceSpec with distinct request and limit.
func ResRange(request, limit string) ResourceSpec {
	return ResourceSpec{Request: request, Limit: limit}
}

func (r ResourceSpec) isZero() bool {
	return strings.TrimSpace(r.Request) == "" && strings.TrimSpace(r.Limit) == ""
}

// Builder accumulates primitive mutations as an ordered log. Every method
// validates its arguments immediately; the first validation error sticks to
// the builder, later calls become no-ops, and Build surfaces it. Application
// order is the order the methods were called, which is what decides collision
// winners. A Builder is not safe for concurrent use.
type Builder struct {
	transforms []Transform
	err        error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Err returns the first validation error recorded on the chain, if any.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *Builder) append(t Transform) *Builder {
	if b.err == nil {
		b.transforms = append(b.transforms, t)
	}
	return b
}

// SetResources records resource requests and limits for cpu and memory. Each
// side is either a single value applied to both request and limit (Res) or an
// explicit pair (ResRange); a zero ResourceSpec leaves that resource
// untouched. Malformed quantities or request > limit fail with
// stepkit.ErrInvalidResourceSpec.
func (b *Builder) SetResources(cpu, memory ResourceSpec) *Builder {
	if b.err != nil {
		return b
	}
	for _, r := range []struct {
		name string
		spec ResourceSpec
	}{{"cpu", cpu}, {"memory", memory}} {
		if r.spec.isZero() {
			continue
		}
		request := strings.TrimSpace(r.spec.Request)
		limit := strings.TrimSpace(r.spec.Limit)
		if request == "" || limit == "" {
			return b.fail(fmt.Errorf("%w: %s requires both request and limit", stepkit.ErrInvalidResourceSpec, r.name))
		}
		if err := validateQuantityPair(r.name, request, limit); err != nil {
			return b.fail(fmt.Errorf("%w: %v", stepkit.ErrInvalidResourceSpec, err))
		}
	}

	cpuReq, cpuLim := strings.TrimSpace(cpu.Request), strings.TrimSpace(cpu.Limit)
	memReq, memLim := strings.TrimSpace(memory.Request), strings.TrimSpace(memory.Limit)
	return b.append(New("set resources", func(s *step.Spec) {
		if cpuReq != "" {
			s.Resources.Requests.CPU = cpuReq
			s.Resources.Limits.CPU = cpuLim
		}
		if memReq != "" {
			s.Resources.Requests.Memory = memReq
			s.Resources.Limits.Memory = memLim
		}
	}))
}

// SetImagePullPolicy records the image pull policy. An unrecognized token
// fails with stepkit.ErrInvalidEnumValue.
func (b *Builder) SetImagePullPolicy(policy string) *Builder {
	if b.err != nil {
		return b
	}
	parsed, err := step.ParsePullPolicy(policy)
	if err != nil {
		return b.fail(fmt.Errorf("%w: %v", stepkit.ErrInvalidEnumValue, err))
	}
	return b.append(New("set image pull policy", func(s *step.Spec) {
		s.ImagePullPolicy = parsed
	}))
}

// SetEnvVars records literal environment variables from vars, merged in
// sorted key order for determinism. On name collision the later call wins,
// including over secret-sourced entries recorded earlier.
func (b *Builder) SetEnvVars(vars map[string]string) *Builder {
	if b.err != nil {
		return b
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		if strings.TrimSpace(name) == "" {
			return b.fail(fmt.Errorf("env var name is required"))
		}
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]step.EnvVar, 0, len(names))
	for _, name := range names {
		entries = append(entries, step.EnvVar{Name: name, Value: vars[name]})
	}
	return b.append(New("set env vars", func(s *step.Spec) {
		for _, e := range entries {
			s.SetEnv(e.Name, e.Value)
		}
	}))
}

// SetEnvVar records a single literal environment variable. Use this where the
// relative order of individual variables matters.
func (b *Builder) SetEnvVar(name, value string) *Builder {
	if b.err != nil {
		return b
	}
	if strings.TrimSpace(name) == "" {
		return b.fail(fmt.Errorf("env var name is required"))
	}
	return b.append(New("set env var", func(s *step.Spec) {
		s.SetEnv(name, value)
	}))
}

// SetEnvVarFromSecret records a secret-sourced environment variable. A
// literal entry of the same name recorded earlier is removed at apply time;
// a later SetEnvVars/SetEnvVar for the name removes this one in turn.
func (b *Builder) SetEnvVarFromSecret(name, secretName, secretKey string) *Builder {
	if b.err != nil {
		return b
	}
	if strings.TrimSpace(name) == "" {
		return b.fail(fmt.Errorf("env var name is required"))
	}
	if strings.TrimSpace(secretName) == "" {
		return b.fail(fmt.Errorf("secret name is required for env var %q", name))
	}
	if strings.TrimSpace(secretKey) == "" {
		return b.fail(fmt.Errorf("secret key is required for env var %q", name))
	}
	return b.append(New("set env var from secret", func(s *step.Spec) {
		s.SetSecretEnv(name, secretName, secretKey)
	}))
}

// SetAnnotations records annotations, merged in sorted key order; later
// values win on key collision.
func (b *Builder) SetAnnotations(annotations map[string]string) *Builder {
	if b.err != nil {
		return b
	}
	keys := make([]string, 0, len(annotations))
	for key := range annotations {
		if strings.TrimSpace(key) == "" {
			return b.fail(fmt.Errorf("annotation key is required"))
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([][2]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, [2]string{key, annotations[key]})
	}
	return b.append(New("set annotations", func(s *step.Spec) {
		for _, p := range pairs {
			s.SetAnnotation(p[0], p[1])
		}
	}))
}

// Add appends an externally built transform to the log, for example the
// artifact location transform.
func (b *Builder) Add(t Transform) *Builder {
	return b.append(t)
}

// Build composes the accumulated log into one reusable Transform. It returns
// the first validation error recorded on the chain, if any.
func (b *Builder) Build() (Transform, error) {
	if b.err != nil {
		return Transform{}, b.err
	}
	return Compose("builder", b.transforms...), nil
}
