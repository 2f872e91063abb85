package domain

import "context"

// Collection is the remote contract for one resource type on the backend.
type Collection[T any] interface {
	// List retrieves a page of the unfiltered listing
	List(ctx context.Context, q ListQuery) (*Page[T], error)

	// Search retrieves a page filtered by name
	Search(ctx context.Context, q ListQuery) (*Page[T], error)

	// ByCategory retrieves a page filtered by category id
	ByCategory(ctx context.Context, q ListQuery) (*Page[T], error)

	// Get retrieves one item
	Get(ctx context.Context, id string) (*T, error)

	// Create sends a validated draft, as multipart when an image path is set
	Create(ctx context.Context, fields map[string]any, imagePath string) (*T, error)

	// Update replaces an item
	Update(ctx context.Context, id string, fields map[string]any) (*T, error)

	// Delete removes an item; a missing id is ErrNotFound
	Delete(ctx context.Context, id string) error
}

// PageStore persists the current page of each listing screen by key.
type PageStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// TokenSource exposes the current bearer token; empty means signed out.
type TokenSource interface {
	Token() string
}
