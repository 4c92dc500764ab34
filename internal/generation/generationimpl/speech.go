package generationimpl

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"mime"
	"strconv"
	"strings"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"google.golang.org/genai"
)

const defaultSampleRate = 24000

// VoiceName maps a voice option to the provider's prebuilt voice.
func VoiceName(v domain.VoiceOption) string {
	if v == domain.VoiceFemale {
		return "Puck"
	}
	return "Kore"
}

func (g *GenerationImpl) GenerateSpeech(ctx context.Context, script string, voice domain.VoiceOption) (string, error) {
	if err := g.ready(); err != nil {
		return "", err
	}

	resp, err := g.genai.Models.GenerateContent(ctx, g.cfg.Gemini.SpeechModel,
		genai.Text("Say with a confident and inspiring tone: "+script),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: VoiceName(voice)},
				},
			},
		},
	)
	if err != nil {
		g.logger.Error("Speech generation failed", "voice", voice, "error", err)
		return "", errors.Generation("failed to generate audio from text", err)
	}

	blob := firstInlineData(resp)
	if blob == nil {
		return "", errors.Generation("failed to generate audio from text", errors.New("response has no audio payload"))
	}

	audio := blob.Data
	if isRawPCM(blob.MIMEType) {
		audio = wrapWAV(audio, sampleRate(blob.MIMEType))
	}

	g.logger.Info("Speech generated", "voice", voice, "mime", blob.MIMEType, "bytes", len(audio))
	return base64.StdEncoding.EncodeToString(audio), nil
}

func firstInlineData(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData
		}
	}
	return nil
}

func isRawPCM(mimeType string) bool {
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return false
	}
	mt = strings.ToLower(mt)
	return mt == "audio/l16" || mt == "audio/pcm"
}

func sampleRate(mimeType string) int {
	_, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return defaultSampleRate
	}
	if rate, err := strconv.Atoi(params["rate"]); err == nil && rate > 0 {
		return rate
	}
	return defaultSampleRate
}

// wrapWAV prefixes 16-bit mono little-endian PCM with a RIFF header.
func wrapWAV(pcm []byte, rate int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	blockAlign := channels * bitsPerSample / 8
	byteRate := rate * blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(rate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}
