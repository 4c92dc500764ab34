package uploadimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/upload"
	"github.com/orgball2608/motivate-ai/pkg/errors"
)

const (
	simulatedAuthDelay   = 1500 * time.Millisecond
	simulatedUploadDelay = 2 * time.Second
)

// simulated stands in for a platform when no OAuth app is configured.
type simulated struct {
	platform    domain.Platform
	username    string
	authDelay   time.Duration
	uploadDelay time.Duration
}

func newSimulated(platform domain.Platform, username string) *simulated {
	return &simulated{
		platform:    platform,
		username:    username,
		authDelay:   simulatedAuthDelay,
		uploadDelay: simulatedUploadDelay,
	}
}

func (s *simulated) authenticate(ctx context.Context, present upload.Presenter) (*domain.Credentials, error) {
	present("")

	if err := sleep(ctx, s.authDelay); err != nil {
		return nil, errors.AuthCancelled("authorization was cancelled")
	}

	return &domain.Credentials{
		AccessToken:  fmt.Sprintf("simulated-%s-token", s.platform),
		RefreshToken: fmt.Sprintf("simulated-%s-refresh", s.platform),
		Username:     s.username,
		Expiry:       time.Now().Add(time.Hour),
	}, nil
}

func (s *simulated) publish(ctx context.Context, accessToken string, asset domain.VideoAsset) (*domain.UploadResult, error) {
	if accessToken == "" {
		return nil, errors.Upload("account is not connected", nil)
	}
	if err := sleep(ctx, s.uploadDelay); err != nil {
		return nil, errors.Upload("upload interrupted", err)
	}

	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:11]
	if s.platform == domain.Instagram {
		return &domain.UploadResult{ID: id, URL: "https://www.instagram.com/p/" + id + "/"}, nil
	}
	return &domain.UploadResult{ID: id, URL: "https://www.youtube.com/watch?v=" + id}, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
