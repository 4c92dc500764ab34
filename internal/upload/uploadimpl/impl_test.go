package uploadimpl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/upload"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"github.com/orgball2608/motivate-ai/pkg/logger"
)

type fakePublisher struct {
	username string
	err      error
}

func (f *fakePublisher) authenticate(ctx context.Context, present upload.Presenter) (*domain.Credentials, error) {
	present("")
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Credentials{AccessToken: "tok", Username: f.username}, nil
}

func (f *fakePublisher) publish(ctx context.Context, accessToken string, asset domain.VideoAsset) (*domain.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.UploadResult{ID: "id-" + accessToken, URL: "https://example.test/" + accessToken}, nil
}

func connectedBoth() domain.Connections {
	var c domain.Connections
	c = c.With(domain.YouTube, domain.NewConnection(domain.Credentials{AccessToken: "yt", Username: "a"}))
	c = c.With(domain.Instagram, domain.NewConnection(domain.Credentials{AccessToken: "ig", Username: "b"}))
	return c
}

func TestUploadToAllConnectedIsolatesFailures(t *testing.T) {
	u := &UploadImpl{
		publishers: map[domain.Platform]publisher{
			domain.YouTube:   &fakePublisher{},
			domain.Instagram: &fakePublisher{err: fmt.Errorf("graph api down")},
		},
		logger: logger.Nop(),
	}

	report := u.UploadToAllConnected(context.Background(), connectedBoth(), domain.VideoAsset{Title: "t"})

	if res, ok := report.Results[domain.YouTube]; !ok || res.ID != "id-yt" {
		t.Fatalf("expected youtube result, got %+v", report.Results)
	}
	err, ok := report.Failures[domain.Instagram]
	if !ok {
		t.Fatalf("expected instagram failure, got %+v", report.Failures)
	}
	if !errors.Is(err, errors.ErrUpload) {
		t.Fatalf("expected upload error, got %v", err)
	}
}

func TestUploadToAllConnectedSkipsDisconnected(t *testing.T) {
	u := &UploadImpl{
		publishers: map[domain.Platform]publisher{
			domain.YouTube:   &fakePublisher{},
			domain.Instagram: &fakePublisher{},
		},
		logger: logger.Nop(),
	}

	var c domain.Connections
	c = c.With(domain.Instagram, domain.NewConnection(domain.Credentials{AccessToken: "ig"}))

	report := u.UploadToAllConnected(context.Background(), c, domain.VideoAsset{})
	if len(report.Results) != 1 || len(report.Failures) != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
	if _, ok := report.Results[domain.YouTube]; ok {
		t.Fatal("disconnected platform must not be uploaded")
	}
}

func TestSimulatedMode(t *testing.T) {
	u := New(Opts{Config: &config.Config{}, Logger: logger.Nop()})
	for _, p := range u.publishers {
		s := p.(*simulated)
		s.authDelay = time.Millisecond
		s.uploadDelay = time.Millisecond
	}

	presented := false
	creds, err := u.Authenticate(context.Background(), domain.Instagram, func(string) { presented = true })
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if !presented {
		t.Fatal("expected presenter to be called")
	}
	if creds.Username != "DailyMotivation" {
		t.Fatalf("unexpected username %q", creds.Username)
	}

	res, err := u.Upload(context.Background(), domain.YouTube, "token", domain.VideoAsset{Title: "t"})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if res.ID == "" || res.URL != "https://www.youtube.com/watch?v="+res.ID {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSimulatedAuthCancelled(t *testing.T) {
	s := newSimulated(domain.YouTube, "MotivationalChannel")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.authenticate(ctx, func(string) {})
	if !errors.IsCancelled(err) {
		t.Fatalf("expected cancelled error, got %v", err)
	}
}

func TestUnsupportedPlatform(t *testing.T) {
	u := &UploadImpl{publishers: map[domain.Platform]publisher{}, logger: logger.Nop()}
	if _, err := u.Upload(context.Background(), domain.Platform("tiktok"), "t", domain.VideoAsset{}); !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
