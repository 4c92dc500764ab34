package wizardimpl

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/session"
)

const defaultSubtitleIntervalMs = 3000

var backgroundVideos = []string{
	"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
}

var sentenceEnd = regexp.MustCompile(`[.!?]+\s`)

func randomBackground() string {
	return backgroundVideos[rand.IntN(len(backgroundVideos))]
}

func (c *Controller) TogglePlayback(ctx context.Context) (session.View, error) {
	return c.exec(ctx, func() error {
		if c.state.Step != session.Preview {
			return wrongStep("playback", session.Preview)
		}
		c.state.Playing = !c.state.Playing
		return nil
	})
}

func (c *Controller) Preview(ctx context.Context) (*domain.PreviewData, error) {
	var data *domain.PreviewData
	_, err := c.exec(ctx, func() error {
		if c.state.Step < session.Preview {
			return wrongStep("preview", session.Preview)
		}
		data = buildPreview(c.state.Video.ScriptBundle, c.state.BackgroundVideo)
		return nil
	})
	return data, err
}

func buildPreview(bundle domain.ScriptBundle, background string) *domain.PreviewData {
	subtitles := Subtitles(bundle.Script)

	interval := int64(defaultSubtitleIntervalMs)
	if ms := wavDurationMs(bundle.AudioBase64); ms > 0 && len(subtitles) > 0 {
		interval = ms / int64(len(subtitles))
	}

	return &domain.PreviewData{
		Subtitles:          subtitles,
		BackgroundVideoURL: background,
		AudioDataURI:       "data:audio/wav;base64," + bundle.AudioBase64,
		SubtitleIntervalMs: interval,
	}
}

// Subtitles splits a script into trimmed sentences.
func Subtitles(script string) []string {
	var out []string
	for _, s := range sentenceEnd.Split(script, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// wavDurationMs reads the byte rate from a canonical 44 byte WAV header.
func wavDurationMs(audioBase64 string) int64 {
	raw, err := base64.StdEncoding.DecodeString(audioBase64)
	if err != nil || len(raw) < 44 || string(raw[:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return 0
	}
	byteRate := binary.LittleEndian.Uint32(raw[28:32])
	if byteRate == 0 {
		return 0
	}
	return int64(len(raw)-44) * 1000 / int64(byteRate)
}
