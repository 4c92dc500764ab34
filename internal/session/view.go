package session

import "github.com/orgball2608/motivate-ai/internal/domain"

// ConnectionView is an AccountConnection without its tokens.
type ConnectionView struct {
	Connected  bool    `json:"connected"`
	Username   *string `json:"username"`
	Connecting bool    `json:"connecting"`
	Error      string  `json:"error,omitempty"`
}

type UploadView struct {
	Status domain.UploadStatus  `json:"status"`
	Result *domain.UploadResult `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// View is the read-only snapshot handed to clients.
type View struct {
	Step       int    `json:"step"`
	StepName   string `json:"stepName"`
	CanAdvance bool   `json:"canAdvance"`
	CanRestart bool   `json:"canRestart"`

	Connections map[domain.Platform]ConnectionView `json:"connections"`

	Tone  domain.Tone        `json:"tone"`
	Voice domain.VoiceOption `json:"voice"`

	Script        domain.ScriptBundle   `json:"script"`
	Metadata      domain.MetadataBundle `json:"metadata"`
	ScriptError   string                `json:"scriptError,omitempty"`
	MetadataError string                `json:"metadataError,omitempty"`

	GeneratingScript   bool `json:"generatingScript"`
	GeneratingMetadata bool `json:"generatingMetadata"`
	Playing            bool `json:"playing"`

	VideoAttached bool                           `json:"videoAttached"`
	Uploads       map[domain.Platform]UploadView `json:"uploads"`
	AllUploaded   bool                           `json:"allUploaded"`
}

func (s *State) View() View {
	v := View{
		Step:               int(s.Step),
		StepName:           s.Step.String(),
		CanAdvance:         s.CanAdvance(),
		CanRestart:         s.CanRestart(),
		Connections:        make(map[domain.Platform]ConnectionView, 2),
		Tone:               s.Tone,
		Voice:              s.Voice,
		Script:             s.Video.ScriptBundle,
		Metadata:           s.Video.MetadataBundle,
		ScriptError:        s.Errors.Script,
		MetadataError:      s.Errors.Metadata,
		GeneratingScript:   s.GeneratingScript,
		GeneratingMetadata: s.GeneratingMetadata,
		Playing:            s.Playing,
		VideoAttached:      s.Attachment != nil,
		Uploads:            make(map[domain.Platform]UploadView, 2),
		AllUploaded:        s.AllUploaded(),
	}

	for _, p := range domain.Platforms() {
		conn := s.Connections.Get(p)
		_, connecting := s.Connecting[p]
		v.Connections[p] = ConnectionView{
			Connected:  conn.Connected,
			Username:   conn.Username,
			Connecting: connecting,
			Error:      s.Errors.Connect[p],
		}

		uv := UploadView{Status: s.Statuses[p], Error: s.Errors.Upload[p]}
		if res, ok := s.Results[p]; ok {
			uv.Result = &res
		}
		v.Uploads[p] = uv
	}

	return v
}
