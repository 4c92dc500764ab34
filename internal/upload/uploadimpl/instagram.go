package uploadimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/orgball2608/motivate-ai/internal/authflow"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/upload"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"github.com/orgball2608/motivate-ai/pkg/retry"
	"golang.org/x/oauth2"
)

const instagramHashtags = "#motivation #inspiration #daily #mindset"

var instagramEndpoint = oauth2.Endpoint{
	AuthURL:   "https://www.instagram.com/oauth/authorize",
	TokenURL:  "https://api.instagram.com/oauth/access_token",
	AuthStyle: oauth2.AuthStyleInParams,
}

type instagramPublisher struct {
	flow       *oauthFlow
	graphURL   string
	media      MediaHost
	httpClient *http.Client
	poll       retry.Config
	logger     logger.Logger
}

func newInstagram(cfg *config.Config, broker *authflow.Broker, media MediaHost, log logger.Logger) *instagramPublisher {
	return &instagramPublisher{
		flow: &oauthFlow{
			platform: domain.Instagram,
			conf: &oauth2.Config{
				ClientID:     cfg.Instagram.ClientID,
				ClientSecret: cfg.Instagram.ClientSecret,
				RedirectURL:  cfg.CallbackURL(domain.Instagram.String()),
				Endpoint:     instagramEndpoint,
				Scopes:       []string{"instagram_business_basic", "instagram_business_content_publish"},
			},
			broker: broker,
		},
		graphURL:   strings.TrimRight(cfg.Instagram.GraphBaseURL, "/"),
		media:      media,
		httpClient: &http.Client{Timeout: time.Minute},
		poll: retry.Config{
			MaxRetries:      30,
			InitialInterval: 2 * time.Second,
			MaxInterval:     15 * time.Second,
			Multiplier:      1.5,
		},
		logger: log.WithComponent("Instagram"),
	}
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// call performs a Graph API request and decodes the JSON body into out.
func (ig *instagramPublisher) call(ctx context.Context, method, path string, params url.Values, out any) error {
	endpoint := ig.graphURL + "/" + strings.TrimLeft(path, "/")

	var body io.Reader
	if method == http.MethodGet {
		endpoint += "?" + params.Encode()
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := ig.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 300 {
		var ge graphError
		if json.Unmarshal(raw, &ge) == nil && ge.Error.Message != "" {
			return fmt.Errorf("graph api %s: %s (code %d)", path, ge.Error.Message, ge.Error.Code)
		}
		return fmt.Errorf("graph api %s: HTTP %d", path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (ig *instagramPublisher) authenticate(ctx context.Context, present upload.Presenter) (*domain.Credentials, error) {
	tok, err := ig.flow.run(ctx, present)
	if err != nil {
		return nil, err
	}

	var me struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	err = ig.call(ctx, http.MethodGet, "me", url.Values{
		"fields":       {"id,username"},
		"access_token": {tok.AccessToken},
	}, &me)
	if err != nil {
		return nil, errors.Auth("failed to read instagram profile", err)
	}

	return &domain.Credentials{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Username:     me.Username,
		Expiry:       tok.Expiry,
	}, nil
}

// Caption joins title, description and the fixed hashtag line.
func Caption(asset domain.VideoAsset) string {
	return asset.Title + "\n\n" + asset.Description + "\n\n" + instagramHashtags
}

func (ig *instagramPublisher) publish(ctx context.Context, accessToken string, asset domain.VideoAsset) (*domain.UploadResult, error) {
	if len(asset.Video) == 0 {
		return nil, errors.Upload("no video attached", nil)
	}

	videoURL, release := ig.media.Publish(asset.VideoName, asset.Video)
	defer release()

	var container struct {
		ID string `json:"id"`
	}
	err := ig.call(ctx, http.MethodPost, "me/media", url.Values{
		"media_type":   {"REELS"},
		"video_url":    {videoURL},
		"caption":      {Caption(asset)},
		"access_token": {accessToken},
	}, &container)
	if err != nil {
		return nil, errors.Upload("failed to create instagram media container", err)
	}

	if err := ig.waitForContainer(ctx, container.ID, accessToken); err != nil {
		return nil, errors.Upload("instagram could not process the video", err)
	}

	var published struct {
		ID string `json:"id"`
	}
	err = ig.call(ctx, http.MethodPost, "me/media_publish", url.Values{
		"creation_id":  {container.ID},
		"access_token": {accessToken},
	}, &published)
	if err != nil {
		return nil, errors.Upload("failed to publish instagram media", err)
	}

	return &domain.UploadResult{
		ID:  published.ID,
		URL: ig.permalink(ctx, published.ID, accessToken),
	}, nil
}

// waitForContainer polls until Instagram finishes ingesting the video.
func (ig *instagramPublisher) waitForContainer(ctx context.Context, containerID, accessToken string) error {
	return retry.Do(ctx, ig.logger, "instagram container status", func() error {
		var status struct {
			StatusCode string `json:"status_code"`
			Status     string `json:"status"`
		}
		err := ig.call(ctx, http.MethodGet, containerID, url.Values{
			"fields":       {"status_code,status"},
			"access_token": {accessToken},
		}, &status)
		if err != nil {
			return err
		}

		switch status.StatusCode {
		case "FINISHED", "PUBLISHED":
			return nil
		case "ERROR", "EXPIRED":
			return retry.Permanent(fmt.Errorf("container %s: %s", status.StatusCode, status.Status))
		}
		return fmt.Errorf("container still %s", status.StatusCode)
	}, ig.poll)
}

func (ig *instagramPublisher) permalink(ctx context.Context, mediaID, accessToken string) string {
	var media struct {
		Permalink string `json:"permalink"`
	}
	err := ig.call(ctx, http.MethodGet, mediaID, url.Values{
		"fields":       {"permalink"},
		"access_token": {accessToken},
	}, &media)
	if err != nil || media.Permalink == "" {
		return "https://www.instagram.com/p/" + mediaID + "/"
	}
	return media.Permalink
}
