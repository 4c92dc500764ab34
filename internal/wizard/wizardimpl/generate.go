package wizardimpl

import (
	"context"
	"strings"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/session"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func (c *Controller) SelectTone(ctx context.Context, tone domain.Tone) (session.View, error) {
	return c.exec(ctx, func() error {
		if c.state.Step != session.ScriptAndVoice {
			return wrongStep("choosing a tone", session.ScriptAndVoice)
		}
		c.state.Tone = tone
		return nil
	})
}

func (c *Controller) SelectVoice(ctx context.Context, voice domain.VoiceOption) (session.View, error) {
	return c.exec(ctx, func() error {
		if c.state.Step != session.ScriptAndVoice {
			return wrongStep("choosing a voice", session.ScriptAndVoice)
		}
		c.state.Voice = voice
		return nil
	})
}

func (c *Controller) GenerateScript(ctx context.Context) (session.View, error) {
	return c.exec(ctx, func() error {
		if c.state.Step != session.ScriptAndVoice {
			return wrongStep("script generation", session.ScriptAndVoice)
		}
		c.startScript()
		return nil
	})
}

// startScript runs script then speech; the bundle lands only if both succeed.
func (c *Controller) startScript() {
	tone, voice := c.state.Tone, c.state.Voice
	c.state.ClearScript()
	c.state.GeneratingScript = true

	tok := c.begin(taskScript)
	ctx, cancel := c.taskContext(c.timeouts.Generation)

	go func() {
		defer cancel()

		bundle, err := c.scriptBundle(ctx, tone, voice)

		c.post(func() {
			if !c.current(tok) {
				c.discard(tok)
				return
			}
			c.state.GeneratingScript = false
			if err != nil {
				c.state.Errors.Script = userMessage(err)
				c.logger.Warn("Script generation failed", "tone", tone, "error", err)
				return
			}
			c.state.Video.ScriptBundle = bundle
		})
	}()
}

func (c *Controller) scriptBundle(ctx context.Context, tone domain.Tone, voice domain.VoiceOption) (domain.ScriptBundle, error) {
	draft, err := c.gen.GenerateScript(ctx, tone)
	if err != nil {
		return domain.ScriptBundle{}, err
	}

	audio, err := c.gen.GenerateSpeech(ctx, draft.Script, voice)
	if err != nil {
		return domain.ScriptBundle{}, err
	}

	return domain.ScriptBundle{
		Script:      draft.Script,
		Quote:       draft.Quote,
		AudioBase64: audio,
	}, nil
}

func (c *Controller) GenerateMetadata(ctx context.Context) (session.View, error) {
	return c.exec(ctx, func() error {
		if c.state.Step != session.Metadata {
			return wrongStep("metadata generation", session.Metadata)
		}
		c.startMetadata()
		return nil
	})
}

// startMetadata runs text metadata and thumbnail concurrently and joins them.
func (c *Controller) startMetadata() {
	script, quote := c.state.Video.Script, c.state.Video.Quote
	c.state.ClearMetadata()
	c.state.GeneratingMetadata = true

	tok := c.begin(taskMetadata)
	ctx, cancel := c.taskContext(c.timeouts.Generation)

	go func() {
		defer cancel()

		bundle, err := c.metadataBundle(ctx, script, quote)

		c.post(func() {
			if !c.current(tok) {
				c.discard(tok)
				return
			}
			c.state.GeneratingMetadata = false
			if err != nil {
				c.state.Errors.Metadata = userMessage(err)
				c.logger.Warn("Metadata generation failed", "error", err)
				return
			}
			c.state.Video.MetadataBundle = bundle
		})
	}()
}

func (c *Controller) metadataBundle(ctx context.Context, script, quote string) (domain.MetadataBundle, error) {
	var bundle domain.MetadataBundle

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		title, description, err := c.gen.GenerateMetadata(gctx, script)
		if err != nil {
			return err
		}
		bundle.Title, bundle.Description = title, description
		return nil
	})
	g.Go(func() error {
		thumbnail, err := c.gen.GenerateThumbnail(gctx, quote)
		if err != nil {
			return err
		}
		bundle.ThumbnailURL = thumbnail
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.MetadataBundle{}, err
	}
	return bundle, nil
}

func (c *Controller) EditMetadata(ctx context.Context, title, description string) (session.View, error) {
	return c.exec(ctx, func() error {
		if c.state.Step != session.Metadata {
			return wrongStep("editing metadata", session.Metadata)
		}
		if c.state.GeneratingMetadata {
			return errors.WrongStep("metadata is still being generated")
		}
		c.state.Video.Title = strings.TrimSpace(title)
		c.state.Video.Description = strings.TrimSpace(description)
		return nil
	})
}
