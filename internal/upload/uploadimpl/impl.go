package uploadimpl

import (
	"context"
	"sync"
	"time"

	"github.com/orgball2608/motivate-ai/internal/authflow"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/upload"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// MediaHost exposes video bytes at a public URL until released.
type MediaHost interface {
	Publish(name string, data []byte) (url string, release func())
}

// publisher is one platform's handshake and publish implementation.
type publisher interface {
	authenticate(ctx context.Context, present upload.Presenter) (*domain.Credentials, error)
	publish(ctx context.Context, accessToken string, asset domain.VideoAsset) (*domain.UploadResult, error)
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Broker *authflow.Broker
	Media  MediaHost
}

type UploadImpl struct {
	publishers map[domain.Platform]publisher
	logger     logger.Logger
}

var _ upload.Client = (*UploadImpl)(nil)

func New(opts Opts) *UploadImpl {
	log := opts.Logger.WithComponent("Upload")

	if !opts.Config.LiveUploads() {
		log.Info("Upload gateway running in simulated mode")
		return &UploadImpl{
			publishers: map[domain.Platform]publisher{
				domain.YouTube:   newSimulated(domain.YouTube, "MotivationalChannel"),
				domain.Instagram: newSimulated(domain.Instagram, "DailyMotivation"),
			},
			logger: log,
		}
	}

	return &UploadImpl{
		publishers: map[domain.Platform]publisher{
			domain.YouTube:   newYouTube(opts.Config, opts.Broker, log),
			domain.Instagram: newInstagram(opts.Config, opts.Broker, opts.Media, log),
		},
		logger: log,
	}
}

func (u *UploadImpl) publisher(p domain.Platform) (publisher, error) {
	pub, ok := u.publishers[p]
	if !ok {
		return nil, errors.InvalidInput("unsupported platform: " + p.String())
	}
	return pub, nil
}

func (u *UploadImpl) Authenticate(ctx context.Context, platform domain.Platform, present upload.Presenter) (*domain.Credentials, error) {
	pub, err := u.publisher(platform)
	if err != nil {
		return nil, err
	}
	if present == nil {
		present = func(string) {}
	}

	creds, err := pub.authenticate(ctx, present)
	if err != nil {
		u.logger.Warn("Authentication failed", "platform", platform, "error", err)
		return nil, err
	}

	u.logger.Info("Account connected", "platform", platform, "username", creds.Username)
	return creds, nil
}

func (u *UploadImpl) Upload(ctx context.Context, platform domain.Platform, accessToken string, asset domain.VideoAsset) (*domain.UploadResult, error) {
	pub, err := u.publisher(platform)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := pub.publish(ctx, accessToken, asset)
	if err != nil {
		u.logger.Error("Upload failed", "platform", platform, "error", err)
		if errors.GetCode(err) == "" {
			err = errors.Upload("upload to "+platform.String()+" failed", err)
		}
		return nil, err
	}

	u.logger.Info("Upload finished",
		"platform", platform,
		"id", res.ID,
		"url", res.URL,
		"took", time.Since(start).Round(time.Millisecond).String())
	return res, nil
}

func (u *UploadImpl) UploadToAllConnected(ctx context.Context, connections domain.Connections, asset domain.VideoAsset) *domain.UploadReport {
	report := domain.NewUploadReport()

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	for _, platform := range connections.Connected() {
		token := connections.Get(platform).AccessToken
		g.Go(func() error {
			res, err := u.Upload(ctx, platform, token, asset)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures[platform] = err
				return nil
			}
			report.Results[platform] = *res
			return nil
		})
	}
	_ = g.Wait()

	return report
}
