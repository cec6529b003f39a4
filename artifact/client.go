package artifact

import (
	"context"
	"errors"
	"io"

	"github.com/animus-labs/stepkit/internal/platform/objectstore"
)

// ObjectInfo describes a stored artifact object.
type ObjectInfo = objectstore.ObjectInfo

// Client pairs the resolved artifact location with an S3-compatible object
// store so a step can read back one of its own artifacts by name. The bucket
// and key always come from the resolved location; only the endpoint and
// credentials come from client configuration.
type Client struct {
	store objectstore.Store
	loc   Location
}

// NewClient resolves the artifact location from the environment contract and
// connects to the store configured by the STEPKIT_MINIO_* variables.
func NewClient() (*Client, error) {
	loc, err := LocationFromEnv()
	if err != nil {
		return nil, err
	}
	cfg, err := objectstore.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	store, err := objectstore.NewMinioStore(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{store: store, loc: loc}, nil
}

// NewClientWithStore wires an explicit store and location, for callers that
// already hold both (and for tests).
func NewClientWithStore(store objectstore.Store, loc Location) (*Client, error) {
	if store == nil {
		return nil, errors.New("object store is required")
	}
	return &Client{store: store, loc: loc}, nil
}

// Location returns the resolved artifact location the client operates under.
func (c *Client) Location() Location {
	return c.loc
}

// Stat returns object metadata for the named artifact of the current step.
func (c *Client) Stat(ctx context.Context, name string) (ObjectInfo, error) {
	return c.store.Stat(ctx, c.loc.Bucket, c.loc.Key(name))
}

// Fetch opens the named artifact of the current step for reading. The caller
// owns the returned reader.
func (c *Client) Fetch(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error) {
	return c.store.Get(ctx, c.loc.Bucket, c.loc.Key(name))
}
