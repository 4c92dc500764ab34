package uploadimpl

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/orgball2608/motivate-ai/internal/authflow"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/upload"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	youtubeCategoryPeopleBlogs = "22"
	youtubeLanguage            = "en"
)

var youtubeTags = []string{"motivation", "inspiration", "daily motivation", "mindset"}

type youtubePublisher struct {
	flow       *oauthFlow
	endpoint   string
	httpClient *http.Client
	logger     logger.Logger
}

func newYouTube(cfg *config.Config, broker *authflow.Broker, log logger.Logger) *youtubePublisher {
	return &youtubePublisher{
		flow: &oauthFlow{
			platform: domain.YouTube,
			conf: &oauth2.Config{
				ClientID:     cfg.YouTube.ClientID,
				ClientSecret: cfg.YouTube.ClientSecret,
				RedirectURL:  cfg.CallbackURL(domain.YouTube.String()),
				Endpoint:     google.Endpoint,
				Scopes:       []string{youtube.YoutubeUploadScope, youtube.YoutubeForceSslScope},
			},
			authParams: []oauth2.AuthCodeOption{
				oauth2.AccessTypeOffline,
				oauth2.SetAuthURLParam("prompt", "consent"),
			},
			broker: broker,
		},
		logger: log.WithComponent("YouTube"),
	}
}

func (y *youtubePublisher) service(ctx context.Context, accessToken string) (*youtube.Service, error) {
	opts := []option.ClientOption{option.WithHTTPClient(bearerClient(y.httpClient, accessToken))}
	if y.endpoint != "" {
		opts = append(opts, option.WithEndpoint(y.endpoint))
	}
	return youtube.NewService(ctx, opts...)
}

func (y *youtubePublisher) authenticate(ctx context.Context, present upload.Presenter) (*domain.Credentials, error) {
	tok, err := y.flow.run(ctx, present)
	if err != nil {
		return nil, err
	}

	svc, err := y.service(ctx, tok.AccessToken)
	if err != nil {
		return nil, errors.Auth("youtube service", err)
	}

	resp, err := svc.Channels.List([]string{"snippet"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return nil, errors.Auth("failed to read youtube channel", err)
	}

	username := "YouTube channel"
	if len(resp.Items) > 0 && resp.Items[0].Snippet != nil {
		username = resp.Items[0].Snippet.Title
	}

	return &domain.Credentials{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Username:     username,
		Expiry:       tok.Expiry,
	}, nil
}

func (y *youtubePublisher) publish(ctx context.Context, accessToken string, asset domain.VideoAsset) (*domain.UploadResult, error) {
	if len(asset.Video) == 0 {
		return nil, errors.Upload("no video attached", nil)
	}

	svc, err := y.service(ctx, accessToken)
	if err != nil {
		return nil, errors.Upload("youtube service", err)
	}

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:                asset.Title,
			Description:          asset.Description,
			Tags:                 youtubeTags,
			CategoryId:           youtubeCategoryPeopleBlogs,
			DefaultLanguage:      youtubeLanguage,
			DefaultAudioLanguage: youtubeLanguage,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           "public",
			SelfDeclaredMadeForKids: false,
			ForceSendFields:         []string{"SelfDeclaredMadeForKids"},
		},
	}

	uploaded, err := svc.Videos.Insert([]string{"snippet", "status"}, video).
		Media(bytes.NewReader(asset.Video)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Upload("youtube rejected the video", err)
	}

	if mimeType, data, ok := decodeDataURI(asset.Thumbnail); ok && mimeType != "image/svg+xml" {
		_, err := svc.Thumbnails.Set(uploaded.Id).Media(bytes.NewReader(data)).Context(ctx).Do()
		if err != nil {
			y.logger.Warn("Failed to set thumbnail", "videoID", uploaded.Id, "error", err)
		}
	}

	return &domain.UploadResult{
		ID:  uploaded.Id,
		URL: "https://www.youtube.com/watch?v=" + uploaded.Id,
	}, nil
}

func decodeDataURI(s string) (string, []byte, bool) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, false
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	return strings.TrimSuffix(meta, ";base64"), data, true
}
