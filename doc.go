// Package stepkit shapes the declarative configuration of container pipeline
// steps and resolves the storage URIs of the artifacts those steps produce.
//
// Authoring code composes ordered mutations with transform.Builder and applies
// them to step.Spec values before submission. At step runtime, the artifact
// package reads the environment contract injected at authoring time and turns
// artifact names back into storage URIs. The vis and metrics packages build the
// JSON documents the pipeline UI reads back.
package stepkit
