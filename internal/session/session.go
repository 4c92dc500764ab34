// Package session holds the wizard's in-progress state: connected accounts,
// the video draft and per-step status. It is not safe for concurrent use;
// the wizard controller is its only owner.
package session

import (
	"github.com/orgball2608/motivate-ai/internal/domain"
)

type Step int

const (
	ConnectAccounts Step = iota + 1
	ScriptAndVoice
	Metadata
	Preview
	Upload
	Complete
)

func (s Step) String() string {
	switch s {
	case ConnectAccounts:
		return "connect_accounts"
	case ScriptAndVoice:
		return "script_and_voice"
	case Metadata:
		return "metadata"
	case Preview:
		return "preview"
	case Upload:
		return "upload"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Attachment is the rendered video the user hands over for publishing.
type Attachment struct {
	Name string
	Data []byte
}

type Errors struct {
	Connect  map[domain.Platform]string
	Script   string
	Metadata string
	Upload   map[domain.Platform]string
}

type State struct {
	Step        Step
	Connections domain.Connections
	Connecting  map[domain.Platform]string // platform -> pending consent URL

	Tone  domain.Tone
	Voice domain.VoiceOption
	Video domain.VideoData

	GeneratingScript   bool
	GeneratingMetadata bool

	Playing         bool
	BackgroundVideo string

	Attachment *Attachment
	Statuses   map[domain.Platform]domain.UploadStatus
	Results    map[domain.Platform]domain.UploadResult

	Errors Errors
}

func New() *State {
	return &State{
		Step:       ConnectAccounts,
		Connecting: make(map[domain.Platform]string),
		Tone:       domain.Discipline,
		Voice:      domain.VoiceMale,
		Statuses: map[domain.Platform]domain.UploadStatus{
			domain.YouTube:   domain.StatusIdle,
			domain.Instagram: domain.StatusIdle,
		},
		Results: make(map[domain.Platform]domain.UploadResult),
		Errors: Errors{
			Connect: make(map[domain.Platform]string),
			Upload:  make(map[domain.Platform]string),
		},
	}
}

// CanAdvance reports whether the forward edge out of the current step is open.
func (s *State) CanAdvance() bool {
	switch s.Step {
	case ConnectAccounts:
		return s.Connections.AnyConnected()
	case ScriptAndVoice:
		return s.Video.ScriptBundle.Complete()
	case Metadata:
		return s.Video.MetadataBundle.Complete()
	case Preview:
		return !s.Playing
	}
	return false
}

// Advance moves one step forward when allowed. Upload to Complete is not
// reachable here; it happens once every connected platform is uploaded.
func (s *State) Advance() bool {
	if !s.CanAdvance() {
		return false
	}
	s.Step++
	if s.Step == Preview {
		s.Playing = false
	}
	return true
}

// AllUploaded is true once every connected platform reports uploaded.
func (s *State) AllUploaded() bool {
	connected := s.Connections.Connected()
	if len(connected) == 0 {
		return false
	}
	for _, p := range connected {
		if s.Statuses[p] != domain.StatusUploaded {
			return false
		}
	}
	return true
}

// CompleteIfDone moves Upload to Complete once everything is published.
func (s *State) CompleteIfDone() bool {
	if s.Step == Upload && s.AllUploaded() {
		s.Step = Complete
		return true
	}
	return false
}

func (s *State) CanRestart() bool {
	return s.Step == Upload || s.Step == Complete
}

func (s *State) Connect(p domain.Platform, creds domain.Credentials) {
	s.Connections = s.Connections.With(p, domain.NewConnection(creds))
	delete(s.Connecting, p)
	delete(s.Errors.Connect, p)
}

func (s *State) ClearScript() {
	s.Video.ScriptBundle = domain.ScriptBundle{}
	s.Errors.Script = ""
}

func (s *State) ClearMetadata() {
	s.Video.MetadataBundle = domain.MetadataBundle{}
	s.Errors.Metadata = ""
}

// Asset assembles the publish input from the draft and the attachment.
func (s *State) Asset() domain.VideoAsset {
	asset := domain.VideoAsset{
		Title:       s.Video.Title,
		Description: s.Video.Description,
		Thumbnail:   s.Video.ThumbnailURL,
	}
	if s.Attachment != nil {
		asset.VideoName = s.Attachment.Name
		asset.Video = s.Attachment.Data
	}
	return asset
}
