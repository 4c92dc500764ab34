package generationimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/pkg/errors"
)

const scriptPrompt = `Generate a premium, cinematic motivational script for a 30-60 second video.
The desired tone is: %q.
The script should be between 100-150 words.
Structure it like a short story: start with a relatable struggle, build towards a moment of realization, and end with a strong call to action.
Use vivid imagery and metaphors. The language must be eloquent and inspiring.
Conclude with a profound quote from a philosopher, leader, or great thinker that matches the tone.

Return JSON with two keys: "script" and "quote".
"script" is the main body of the speech. "quote" is the final quote including the author.`

const metadataPrompt = `Based on the following motivational script, generate metadata for a video posted on YouTube and Instagram.

Script: %q

Title: compelling, SEO-optimized, short and catchy, under 60 characters, title case.
Description: 3-4 engaging sentences that hook the viewer, summarize the message and ask to subscribe or follow.
End the description with 5-7 relevant hashtags such as #DailyMotivation #Mindset #Inspiration #YTShorts.

Return JSON with "title" and "description" keys.`

type scriptResponse struct {
	Script string `json:"script"`
	Quote  string `json:"quote"`
}

type metadataResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (g *GenerationImpl) GenerateScript(ctx context.Context, tone domain.Tone) (domain.ScriptDraft, error) {
	if err := g.ready(); err != nil {
		return domain.ScriptDraft{}, err
	}

	var resp scriptResponse
	if err := g.generateJSON(ctx, g.cfg.Gemini.ScriptModel, fmt.Sprintf(scriptPrompt, tone), &resp, "script", "quote"); err != nil {
		g.logger.Error("Script generation failed", "tone", tone, "error", err)
		return domain.ScriptDraft{}, errors.Generation("could not generate script", err)
	}

	draft := domain.ScriptDraft{
		Script: strings.TrimSpace(resp.Script),
		Quote:  strings.TrimSpace(resp.Quote),
	}
	if draft.Script == "" || draft.Quote == "" {
		return domain.ScriptDraft{}, errors.Generation("could not generate script", errors.New("response is missing script or quote"))
	}

	g.logger.Info("Script generated", "tone", tone, "words", len(strings.Fields(draft.Script)))
	return draft, nil
}

func (g *GenerationImpl) GenerateMetadata(ctx context.Context, script string) (string, string, error) {
	if err := g.ready(); err != nil {
		return "", "", err
	}

	var resp metadataResponse
	if err := g.generateJSON(ctx, g.cfg.Gemini.MetadataModel, fmt.Sprintf(metadataPrompt, script), &resp, "title", "description"); err != nil {
		g.logger.Error("Metadata generation failed", "error", err)
		return "", "", errors.Generation("could not generate metadata", err)
	}

	title, description := strings.TrimSpace(resp.Title), strings.TrimSpace(resp.Description)
	if title == "" || description == "" {
		return "", "", errors.Generation("could not generate metadata", errors.New("response is missing title or description"))
	}
	if len([]rune(title)) >= 60 {
		g.logger.Warn("Generated title exceeds advisory length", "length", len([]rune(title)))
	}

	return title, description, nil
}
