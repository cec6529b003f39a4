// Package step holds the mutable specification of a single container pipeline
// step: the subset of fields this system is allowed to shape before the spec
// is handed to the orchestrator.
package step

import (
	"errors"
	"fmt"
	"strings"
)

// PullPolicy controls when the step's container image is pulled.
type PullPolicy string

const (
	PullAlways       PullPolicy = "Always"
	PullIfNotPresent PullPolicy = "IfNotPresent"
	PullNever        PullPolicy = "Never"
)

// ParsePullPolicy validates a pull policy token.
func ParsePullPolicy(s string) (PullPolicy, error) {
	switch PullPolicy(strings.TrimSpace(s)) {
	case PullAlways:
		return PullAlways, nil
	case PullIfNotPresent:
		return PullIfNotPresent, nil
	case PullNever:
		return PullNever, nil
	}
	return "", fmt.Errorf("unrecognized image pull policy: %q", s)
}

// EnvVar is a literal environment variable.
type EnvVar struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// SecretEnvVar is an environment variable sourced from a secret key.
type SecretEnvVar struct {
	Name       string `json:"name" yaml:"name"`
	SecretName string `json:"secretName" yaml:"secretName"`
	SecretKey  string `json:"secretKey" yaml:"secretKey"`
}

// ResourceList names the cpu and memory quantities for one side of a
// resource requirement.
type ResourceList struct {
	CPU    string `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	Memory string `json:"memory,omitempty" yaml:"memory,omitempty"`
}

// Resources holds the step's resource requests and limits.
type Resources struct {
	Requests ResourceList `json:"requests,omitempty" yaml:"requests,omitempty"`
	Limits   ResourceList `json:"limits,omitempty" yaml:"limits,omitempty"`
}

// Spec is the declarative configuration of one pipeline step. It is created
// once per step at authoring time, mutated only through its methods, and
// never changed after submission.
type Spec struct {
	Name            string            `json:"name,omitempty" yaml:"name,omitempty"`
	Image           string            `json:"image,omitempty" yaml:"image,omitempty"`
	Resources       Resources         `json:"resources,omitempty" yaml:"resources,omitempty"`
	Env             []EnvVar          `json:"env,omitempty" yaml:"env,omitempty"`
	EnvFromSecret   []SecretEnvVar    `json:"envFromSecret,omitempty" yaml:"envFromSecret,omitempty"`
	Annotations     map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	ImagePullPolicy PullPolicy        `json:"imagePullPolicy,omitempty" yaml:"imagePullPolicy,omitempty"`
}

// SetEnv sets a literal environment variable, replacing any existing literal
// entry of the same name in place and removing any secret-sourced entry of
// that name. Literal and secret sources for one name are mutually exclusive;
// the last write wins.
func (s *Spec) SetEnv(name, value string) {
	s.removeSecretEnv(name)
	for i := range s.Env {
		if s.Env[i].Name == name {
			s.Env[i].Value = value
			return
		}
	}
	s.Env = append(s.Env, EnvVar{Name: name, Value: value})
}

// SetSecretEnv sets a secret-sourced environment variable, replacing any
// existing secret entry of the same name in place and removing any literal
// entry of that name.
func (s *Spec) SetSecretEnv(name, secretName, secretKey string) {
	s.removeEnv(name)
	for i := range s.EnvFromSecret {
		if s.EnvFromSecret[i].Name == name {
			s.EnvFromSecret[i].SecretName = secretName
			s.EnvFromSecret[i].SecretKey = secretKey
			return
		}
	}
	s.EnvFromSecret = append(s.EnvFromSecret, SecretEnvVar{
		Name:       name,
		SecretName: secretName,
		SecretKey:  secretKey,
	})
}

// SetAnnotation sets one annotation, overwriting an existing value.
func (s *Spec) SetAnnotation(key, value string) {
	if s.Annotations == nil {
		s.Annotations = map[string]string{}
	}
	s.Annotations[key] = value
}

// LookupEnv returns the literal value of name, if one is set.
func (s *Spec) LookupEnv(name string) (string, bool) {
	for _, e := range s.Env {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// LookupSecretEnv returns the secret source of name, if one is set.
func (s *Spec) LookupSecretEnv(name string) (SecretEnvVar, bool) {
	for _, e := range s.EnvFromSecret {
		if e.Name == name {
			return e, true
		}
	}
	return SecretEnvVar{}, false
}

func (s *Spec) removeEnv(name string) {
	for i := range s.Env {
		if s.Env[i].Name == name {
			s.Env = append(s.Env[:i], s.Env[i+1:]...)
			return
		}
	}
}

func (s *Spec) removeSecretEnv(name string) {
	for i := range s.EnvFromSecret {
		if s.EnvFromSecret[i].Name == name {
			s.EnvFromSecret = append(s.EnvFromSecret[:i], s.EnvFromSecret[i+1:]...)
			return
		}
	}
}

// Validate checks the single-source invariant: a variable name must not be
// declared by both the literal and the secret-sourced collections, nor twice
// within either.
func (s *Spec) Validate() error {
	seen := make(map[string]struct{}, len(s.Env)+len(s.EnvFromSecret))
	for _, e := range s.Env {
		if strings.TrimSpace(e.Name) == "" {
			return errors.New("env var name is required")
		}
		if _, ok := seen[e.Name]; ok {
			return fmt.Errorf("env var declared twice: %q", e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	for _, e := range s.EnvFromSecret {
		if strings.TrimSpace(e.Name) == "" {
			return errors.New("secret env var name is required")
		}
		if _, ok := seen[e.Name]; ok {
			return fmt.Errorf("env var declared twice: %q", e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	return nil
}
