package history

import (
	"context"

	"github.com/orgball2608/motivate-ai/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=mocks/mock.go
type Client interface {
	// Record stores a successful upload and notifies the operator.
	Record(ctx context.Context, pub domain.Publication) error

	// Recent returns the latest publications, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Publication, error)

	// Stats counts publications per platform.
	Stats(ctx context.Context) (map[domain.Platform]int, error)
}

// Noop is used when no database is configured.
type Noop struct{}

var _ Client = Noop{}

func (Noop) Record(context.Context, domain.Publication) error { return nil }

func (Noop) Recent(context.Context, int) ([]domain.Publication, error) { return nil, nil }

func (Noop) Stats(context.Context) (map[domain.Platform]int, error) {
	return map[domain.Platform]int{}, nil
}
