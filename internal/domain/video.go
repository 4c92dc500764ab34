package domain

import (
	"strings"

	"github.com/orgball2608/motivate-ai/pkg/errors"
)

type Tone string

const (
	Discipline Tone = "Discipline"
	Ambition   Tone = "Ambition"
	Peace      Tone = "Peace"
	Confidence Tone = "Confidence"
)

func Tones() []Tone {
	return []Tone{Discipline, Ambition, Peace, Confidence}
}

func ParseTone(s string) (Tone, error) {
	for _, t := range Tones() {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", errors.InvalidInput("unknown tone: " + s)
}

type VoiceOption string

const (
	VoiceMale   VoiceOption = "male"
	VoiceFemale VoiceOption = "female"
)

func ParseVoice(s string) (VoiceOption, error) {
	switch VoiceOption(strings.ToLower(strings.TrimSpace(s))) {
	case VoiceMale:
		return VoiceMale, nil
	case VoiceFemale:
		return VoiceFemale, nil
	}
	return "", errors.InvalidInput("unknown voice: " + s)
}

// ScriptDraft is the text half of a script bundle.
type ScriptDraft struct {
	Script string
	Quote  string
}

type ScriptBundle struct {
	Script      string `json:"script"`
	Quote       string `json:"quote"`
	AudioBase64 string `json:"audioBase64"`
}

func (b ScriptBundle) Complete() bool {
	return b.Script != "" && b.Quote != "" && b.AudioBase64 != ""
}

type MetadataBundle struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (m MetadataBundle) Complete() bool {
	return m.Title != "" && m.Description != "" && m.ThumbnailURL != ""
}

type VideoData struct {
	ScriptBundle
	MetadataBundle
}

// VideoAsset is everything a platform needs to publish one video.
type VideoAsset struct {
	Title       string
	Description string
	VideoName   string
	Video       []byte
	Thumbnail   string
}

// PreviewData drives the client-side preview player.
type PreviewData struct {
	Subtitles          []string `json:"subtitles"`
	BackgroundVideoURL string   `json:"backgroundVideoUrl"`
	AudioDataURI       string   `json:"audioDataUri"`
	SubtitleIntervalMs int64    `json:"subtitleIntervalMs"`
}
