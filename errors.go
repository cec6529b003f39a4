package stepkit

import "errors"

// Shared error taxonomy. Subpackages wrap these with call-site context so
// callers can branch with errors.Is.
var (
	// ErrInvalidResourceSpec reports a malformed resource quantity or a
	// request that exceeds its limit.
	ErrInvalidResourceSpec = errors.New("invalid_resource_spec")

	// ErrInvalidEnumValue reports an unrecognized policy, storage, or format
	// token.
	ErrInvalidEnumValue = errors.New("invalid_enum_value")

	// ErrUnresolvedArtifactLocation reports that the artifact environment
	// contract is missing at step runtime, i.e. the location transform was
	// never applied to the step.
	ErrUnresolvedArtifactLocation = errors.New("unresolved_artifact_location")
)
