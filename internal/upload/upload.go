package upload

import (
	"context"

	"github.com/orgball2608/motivate-ai/internal/domain"
)

// Presenter opens the consent surface for the user. It is called once per
// Authenticate with an empty URL when no consent surface is needed.
type Presenter func(authURL string)

//go:generate go run go.uber.org/mock/mockgen -source=upload.go -destination=mocks/mock.go
type Client interface {
	// Authenticate runs the platform's consent handshake and returns the resulting credentials.
	Authenticate(ctx context.Context, platform domain.Platform, present Presenter) (*domain.Credentials, error)

	// Upload publishes the asset on one platform.
	Upload(ctx context.Context, platform domain.Platform, accessToken string, asset domain.VideoAsset) (*domain.UploadResult, error)

	// UploadToAllConnected publishes on every connected platform concurrently.
	// One platform failing never prevents the others.
	UploadToAllConnected(ctx context.Context, connections domain.Connections, asset domain.VideoAsset) *domain.UploadReport
}
