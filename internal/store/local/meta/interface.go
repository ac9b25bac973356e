package meta

import "context"

// Repository is the local key/value metadata store. The remote profile is
// mirrored into it as individual keys rather than a table of its own.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
