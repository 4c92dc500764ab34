package generationimpl

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"github.com/orgball2608/motivate-ai/pkg/formatter"
	"google.golang.org/genai"
)

const thumbnailPrompt = `Create a premium, modern, visually striking thumbnail for a motivational video.
It must feature the quote: %q.
Minimalist and professional aesthetic, bold elegant typography, cinematic color grading,
a deep textured background such as dark marble or a subtle abstract gradient. Avoid stock photo cliches.`

const maxPlaceholderQuote = 50

func (g *GenerationImpl) GenerateThumbnail(ctx context.Context, quote string) (string, error) {
	if err := g.ready(); err != nil {
		return "", err
	}

	switch strings.ToLower(g.cfg.Thumbnail.Provider) {
	case config.ThumbnailImagen:
		return g.imagenThumbnail(ctx, quote)
	case config.ThumbnailPollinations:
		return g.pollinationsThumbnail(ctx, quote)
	default:
		return PlaceholderThumbnail(quote), nil
	}
}

func (g *GenerationImpl) imagenThumbnail(ctx context.Context, quote string) (string, error) {
	resp, err := g.genai.Models.GenerateImages(ctx, g.cfg.Gemini.ImageModel, fmt.Sprintf(thumbnailPrompt, quote), &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "16:9",
		OutputMIMEType: "image/png",
	})
	if err != nil {
		g.logger.Error("Thumbnail generation failed", "error", err)
		return "", errors.Generation("could not generate thumbnail", err)
	}

	if resp == nil || len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil ||
		len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return "", errors.Generation("could not generate thumbnail", errors.New("response has no image payload"))
	}

	img := resp.GeneratedImages[0].Image
	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return dataURI(mimeType, img.ImageBytes), nil
}

func (g *GenerationImpl) pollinationsThumbnail(ctx context.Context, quote string) (string, error) {
	imageURL := fmt.Sprintf("%s/prompt/%s?width=1280&height=720&nologo=true",
		strings.TrimRight(g.cfg.Thumbnail.PollinationsBase, "/"),
		url.PathEscape(fmt.Sprintf(thumbnailPrompt, quote)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", errors.Generation("could not generate thumbnail", err)
	}
	req.Header.Set("User-Agent", "motivate-ai/1.0")

	resp, err := g.http.Do(req)
	if err != nil {
		g.logger.Error("Pollinations request failed", "error", err)
		return "", errors.Generation("could not generate thumbnail", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Generation("could not generate thumbnail", fmt.Errorf("pollinations returned HTTP %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Generation("could not generate thumbnail", err)
	}
	if len(data) == 0 {
		return "", errors.Generation("could not generate thumbnail", errors.New("empty image body"))
	}

	mimeType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/jpeg"
	}
	return dataURI(mimeType, data), nil
}

// PlaceholderThumbnail renders the quote on a 400x225 gradient card.
func PlaceholderThumbnail(quote string) string {
	text := formatter.Truncate(quote, maxPlaceholderQuote)

	svg := `<svg width="400" height="225" xmlns="http://www.w3.org/2000/svg">` +
		`<defs><linearGradient id="grad" x1="0%" y1="0%" x2="100%" y2="100%">` +
		`<stop offset="0%" style="stop-color:#4F46E5;stop-opacity:1"/>` +
		`<stop offset="100%" style="stop-color:#7C3AED;stop-opacity:1"/>` +
		`</linearGradient></defs>` +
		`<rect width="100%" height="100%" fill="url(#grad)"/>` +
		`<text x="50%" y="50%" font-family="Arial, sans-serif" font-size="16" font-weight="bold" ` +
		`text-anchor="middle" dominant-baseline="middle" fill="white">` + html.EscapeString(text) + `</text></svg>`

	return dataURI("image/svg+xml", []byte(svg))
}

func dataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
