package wizardimpl

import (
	"context"
	"time"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/session"
	"github.com/orgball2608/motivate-ai/pkg/errors"
)

const historyTimeout = 10 * time.Second

func (c *Controller) AttachVideo(ctx context.Context, name string, data []byte) (session.View, error) {
	return c.exec(ctx, func() error {
		if c.state.Step != session.Upload {
			return wrongStep("attaching a video", session.Upload)
		}
		if len(data) == 0 {
			return errors.InvalidInput("video is empty")
		}
		if name == "" {
			name = "motivation.mp4"
		}
		c.state.Attachment = &session.Attachment{Name: name, Data: data}
		return nil
	})
}

// Upload publishes on one platform. Starting from error retries.
func (c *Controller) Upload(ctx context.Context, platform domain.Platform) (session.View, error) {
	return c.exec(ctx, func() error {
		if c.state.Step != session.Upload {
			return wrongStep("uploading", session.Upload)
		}
		if !c.state.Connections.Get(platform).Connected {
			return errors.InvalidInput(platform.String() + " is not connected")
		}
		if !c.state.Statuses[platform].CanStart() {
			return nil
		}
		c.startUploads([]domain.Platform{platform})
		return nil
	})
}

func (c *Controller) UploadAll(ctx context.Context) (session.View, error) {
	return c.exec(ctx, func() error {
		if c.state.Step != session.Upload {
			return wrongStep("uploading", session.Upload)
		}

		var platforms []domain.Platform
		for _, p := range c.state.Connections.Connected() {
			if c.state.Statuses[p].CanStart() {
				platforms = append(platforms, p)
			}
		}
		if len(platforms) > 0 {
			c.startUploads(platforms)
		}
		return nil
	})
}

func (c *Controller) startUploads(platforms []domain.Platform) {
	asset := c.state.Asset()
	tokens := make(map[domain.Platform]token, len(platforms))

	var subset domain.Connections
	for _, p := range platforms {
		c.state.Statuses[p] = domain.StatusUploading
		delete(c.state.Errors.Upload, p)
		delete(c.state.Results, p)
		tokens[p] = c.begin("upload:" + p.String())
		subset = subset.With(p, c.state.Connections.Get(p))
	}

	ctx, cancel := c.taskContext(c.timeouts.Upload)

	go func() {
		defer cancel()

		var report *domain.UploadReport
		if len(platforms) == 1 {
			p := platforms[0]
			report = domain.NewUploadReport()
			res, err := c.up.Upload(ctx, p, subset.Get(p).AccessToken, asset)
			switch {
			case err != nil:
				report.Failures[p] = err
			case res != nil:
				report.Results[p] = *res
			}
		} else {
			report = c.up.UploadToAllConnected(ctx, subset, asset)
		}

		c.post(func() { c.applyUploads(tokens, asset.Title, report) })
	}()
}

func (c *Controller) applyUploads(tokens map[domain.Platform]token, title string, report *domain.UploadReport) {
	if report == nil {
		report = domain.NewUploadReport()
	}

	for p, tok := range tokens {
		if !c.current(tok) {
			c.discard(tok)
			continue
		}

		if res, ok := report.Results[p]; ok {
			c.state.Statuses[p] = domain.StatusUploaded
			c.state.Results[p] = res
			c.record(p, res, title)
			continue
		}

		err := report.Failures[p]
		if err == nil {
			err = errors.Upload("no result reported for "+p.String(), nil)
		}
		c.state.Statuses[p] = domain.StatusError
		c.state.Errors.Upload[p] = userMessage(err)
		c.logger.Warn("Upload failed", "platform", p, "error", err)
	}

	if c.state.CompleteIfDone() {
		c.logger.Info("All connected platforms uploaded, wizard complete")
	}
}

// record stores the publication without blocking the loop.
func (c *Controller) record(p domain.Platform, res domain.UploadResult, title string) {
	var username string
	if u := c.state.Connections.Get(p).Username; u != nil {
		username = *u
	}

	pub := domain.Publication{
		Platform:    p,
		ExternalID:  res.ID,
		URL:         res.URL,
		Title:       title,
		Username:    username,
		PublishedAt: time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		if err := c.history.Record(ctx, pub); err != nil {
			c.logger.Warn("Failed to record publication", "platform", p, "error", err)
		}
	}()
}
