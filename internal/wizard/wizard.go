package wizard

import (
	"context"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/session"
)

// ConnectResult carries the consent URL to open, empty when none is needed.
type ConnectResult struct {
	AuthURL string       `json:"authUrl"`
	View    session.View `json:"session"`
}

//go:generate go run go.uber.org/mock/mockgen -source=wizard.go -destination=mocks/mock.go
type Client interface {
	Snapshot(ctx context.Context) (session.View, error)

	Connect(ctx context.Context, platform domain.Platform) (*ConnectResult, error)

	SelectTone(ctx context.Context, tone domain.Tone) (session.View, error)
	SelectVoice(ctx context.Context, voice domain.VoiceOption) (session.View, error)
	GenerateScript(ctx context.Context) (session.View, error)

	GenerateMetadata(ctx context.Context) (session.View, error)
	EditMetadata(ctx context.Context, title, description string) (session.View, error)

	TogglePlayback(ctx context.Context) (session.View, error)
	Preview(ctx context.Context) (*domain.PreviewData, error)

	AttachVideo(ctx context.Context, name string, data []byte) (session.View, error)
	Upload(ctx context.Context, platform domain.Platform) (session.View, error)
	UploadAll(ctx context.Context) (session.View, error)

	// Next advances when the current step's precondition holds and is a no-op otherwise.
	Next(ctx context.Context) (view session.View, advanced bool, err error)

	// Restart clears the session from the upload or complete step.
	Restart(ctx context.Context) (session.View, error)
}
