package transform

import (
	"errors"
	"reflect"
	"testing"

	"github.com/animus-labs/stepkit"
	"github.com/animus-labs/stepkit/step"
)

func TestLastCallWinsAcrossEnvKinds(t *testing.T) {
	composed, err := NewBuilder().
		SetEnvVar("TOKEN", "plain-1").
		SetEnvVarFromSecret("TOKEN", "creds", "token").
		SetEnvVar("TOKEN", "plain-2").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec := step.Spec{}
	composed.Apply(&spec)

	if _, ok := spec.LookupSecretEnv("TOKEN"); ok {
		t.Fatalf("expected secret source to be removed by later literal set")
	}
	value, ok := spec.LookupEnv("TOKEN")
	if !ok || value != "plain-2" {
		t.Fatalf("expected TOKEN=plain-2, got %q (present=%v)", value, ok)
	}
	if err := spec.Validate(); err != nil {
		t.Fatalf("spec declares TOKEN twice: %v", err)
	}
}

func TestSecretWinsWhenAppliedLast(t *testing.T) {
	composed, err := NewBuilder().
		SetEnvVars(map[string]string{"TOKEN": "plain"}).
		SetEnvVarFromSecret("TOKEN", "creds", "token").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec := step.Spec{}
	composed.Apply(&spec)

	if _, ok := spec.LookupEnv("TOKEN"); ok {
		t.Fatalf("expected literal source to be removed by later secret set")
	}
	secret, ok := spec.LookupSecretEnv("TOKEN")
	if !ok || secret.SecretName != "creds" || secret.SecretKey != "token" {
		t.Fatalf("unexpected secret source: %+v (present=%v)", secret, ok)
	}
}

func TestDoubleApplicationConverges(t *testing.T) {
	composed, err := NewBuilder().
		SetResources(Res("1"), ResRange("512Mi", "1Gi")).
		SetImagePullPolicy("Always").
		SetEnvVars(map[string]string{"A": "1", "B": "2"}).
		SetEnvVarFromSecret("TOKEN", "creds", "token").
		SetAnnotations(map[string]string{"a": "1"}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	once := step.Spec{Name: "s", Image: "img"}
	composed.Apply(&once)

	twice := step.Spec{Name: "s", Image: "img"}
	composed.Apply(&twice)
	composed.Apply(&twice)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected convergent application, got\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestSetResourcesInvertedFails(t *testing.T) {
	b := NewBuilder().SetResources(ResRange("2", "1"), ResourceSpec{})
	if !errors.Is(b.Err(), stepkit.ErrInvalidResourceSpec) {
		t.Fatalf("expected ErrInvalidResourceSpec, got %v", b.Err())
	}
	if _, err := b.Build(); !errors.Is(err, stepkit.ErrInvalidResourceSpec) {
		t.Fatalf("expected Build to surface the error, got %v", err)
	}
}

func TestSetResourcesSetsExactValues(t *testing.T) {
	composed, err := NewBuilder().
		SetResources(ResRange("500m", "1"), ResRange("512Mi", "1G")).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec := step.Spec{}
	composed.Apply(&spec)

	want := step.Resources{
		Requests: step.ResourceList{CPU: "500m", Memory: "512Mi"},
		Limits:   step.ResourceList{CPU: "1", Memory: "1G"},
	}
	if !reflect.DeepEqual(spec.Resources, want) {
		t.Fatalf("expected resources %+v, got %+v", want, spec.Resources)
	}
}

func TestSetResourcesMalformedFails(t *testing.T) {
	b := NewBuilder().SetResources(Res("half a core"), ResourceSpec{})
	if !errors.Is(b.Err(), stepkit.ErrInvalidResourceSpec) {
		t.Fatalf("expected ErrInvalidResourceSpec, got %v", b.Err())
	}
}

func TestSetImagePullPolicy(t *testing.T) {
	b := NewBuilder().SetImagePullPolicy("Sometimes")
	if !errors.Is(b.Err(), stepkit.ErrInvalidEnumValue) {
		t.Fatalf("expected ErrInvalidEnumValue, got %v", b.Err())
	}

	composed, err := NewBuilder().SetImagePullPolicy("Always").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spec := step.Spec{}
	composed.Apply(&spec)
	if spec.ImagePullPolicy != step.PullAlways {
		t.Fatalf("expected pull policy Always, got %q", spec.ImagePullPolicy)
	}
}

func TestAnnotationOrderDecidesWinner(t *testing.T) {
	composed, err := NewBuilder().
		SetAnnotations(map[string]string{"a": "1"}).
		SetAnnotations(map[string]string{"a": "2"}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec := step.Spec{}
	composed.Apply(&spec)
	if got := spec.Annotations["a"]; got != "2" {
		t.Fatalf("expected annotation a=2, got %q", got)
	}
}

func TestBuilderStopsAfterFirstError(t *testing.T) {
	b := NewBuilder().
		SetImagePullPolicy("Sometimes").
		SetEnvVar("A", "1")
	composed, err := b.Build()
	if !errors.Is(err, stepkit.ErrInvalidEnumValue) {
		t.Fatalf("expected first error to stick, got %v", err)
	}
	spec := step.Spec{}
	composed.Apply(&spec)
	if len(spec.Env) != 0 {
		t.Fatalf("expected no mutations after a failed chain, got %v", spec.Env)
	}
}

func TestComposedTransformIsReusable(t *testing.T) {
	composed, err := NewBuilder().SetEnvVar("A", "1").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := step.Spec{Name: "one"}
	second := step.Spec{Name: "two"}
	composed.Apply(&first)
	composed.Apply(&second)

	for _, spec := range []step.Spec{first, second} {
		if value, ok := spec.LookupEnv("A"); !ok || value != "1" {
			t.Fatalf("expected A=1 on %s, got %q (present=%v)", spec.Name, value, ok)
		}
	}
}
