package generation

import (
	"context"

	"github.com/orgball2608/motivate-ai/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=generation.go -destination=mocks/mock.go
type Client interface {
	// GenerateScript writes a short motivational script and a one-line quote for the tone.
	GenerateScript(ctx context.Context, tone domain.Tone) (domain.ScriptDraft, error)

	// GenerateSpeech narrates the script and returns base64 encoded audio.
	GenerateSpeech(ctx context.Context, script string, voice domain.VoiceOption) (string, error)

	// GenerateMetadata derives a title and description from the script.
	GenerateMetadata(ctx context.Context, script string) (title string, description string, err error)

	// GenerateThumbnail returns an image reference (data URI) illustrating the quote.
	GenerateThumbnail(ctx context.Context, quote string) (string, error)
}
