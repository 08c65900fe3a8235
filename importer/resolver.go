package importer

import (
	"context"
	"errors"
	"log/slog"
)

// Resolver turns difficulty and tag names into backend identifiers.
type Resolver struct {
	backend Backend
}

func NewResolver(backend Backend) *Resolver {
	return &Resolver{backend: backend}
}

// DifficultyID returns ErrNotFound when no difficulty has the given name.
func (r *Resolver) DifficultyID(ctx context.Context, name string) (int64, error) {
	return r.backend.FetchDifficultyID(ctx, name)
}

// TagIDs looks up every name independently. Unknown names are dropped.
func (r *Resolver) TagIDs(ctx context.Context, names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := r.backend.FetchTagID(ctx, name)
		if errors.Is(err, ErrNotFound) {
			slog.Debug("Unknown tag", "tag", name)
			continue
		} else if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
