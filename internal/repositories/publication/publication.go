package publication

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/motivate-ai/internal/domain"
)

var ErrAlreadyExists = errors.New("publication already exists")

//go:generate go run go.uber.org/mock/mockgen -source=publication.go -destination=mocks/mock.go
type Repository interface {
	// Create stores one published video. A repeated platform/external id pair returns ErrAlreadyExists.
	Create(ctx context.Context, pub domain.Publication) error

	// GetRecent returns the latest publications, newest first.
	GetRecent(ctx context.Context, limit int) ([]*domain.Publication, error)

	// CountByPlatform counts stored publications per platform.
	CountByPlatform(ctx context.Context) (map[domain.Platform]int, error)

	// CleanupOldRecords deletes publications older than the given age.
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
