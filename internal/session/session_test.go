package session

import (
	"testing"

	"github.com/orgball2608/motivate-ai/internal/domain"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	if s.Step != ConnectAccounts {
		t.Fatalf("step = %v", s.Step)
	}
	if s.Tone != domain.Discipline || s.Voice != domain.VoiceMale {
		t.Fatalf("unexpected defaults %v/%v", s.Tone, s.Voice)
	}
	for _, p := range domain.Platforms() {
		if s.Connections.Get(p).Connected {
			t.Fatalf("%s should start disconnected", p)
		}
		if s.Statuses[p] != domain.StatusIdle {
			t.Fatalf("%s status = %v", p, s.Statuses[p])
		}
	}
}

func TestAdvanceGuards(t *testing.T) {
	s := New()

	if s.Advance() {
		t.Fatal("step 1 must not advance without a connection")
	}
	s.Connect(domain.YouTube, domain.Credentials{AccessToken: "t", Username: "chan"})
	if !s.Advance() || s.Step != ScriptAndVoice {
		t.Fatalf("expected step 2, got %v", s.Step)
	}

	s.Video.Script, s.Video.Quote = "script", "quote"
	if s.Advance() {
		t.Fatal("step 2 must not advance without audio")
	}
	s.Video.AudioBase64 = "UklGRg=="
	if !s.Advance() || s.Step != Metadata {
		t.Fatalf("expected step 3, got %v", s.Step)
	}

	s.Video.Title, s.Video.Description = "title", "description"
	if s.Advance() {
		t.Fatal("step 3 must not advance without thumbnail")
	}
	s.Video.ThumbnailURL = "data:image/png;base64,AA=="
	if !s.Advance() || s.Step != Preview {
		t.Fatalf("expected step 4, got %v", s.Step)
	}

	s.Playing = true
	if s.Advance() {
		t.Fatal("step 4 must not advance while playing")
	}
	s.Playing = false
	if !s.Advance() || s.Step != Upload {
		t.Fatalf("expected step 5, got %v", s.Step)
	}

	if s.Advance() {
		t.Fatal("upload step must not advance through Next")
	}
}

func TestCompleteRequiresEveryConnectedPlatform(t *testing.T) {
	s := New()
	s.Step = Upload
	s.Connect(domain.YouTube, domain.Credentials{AccessToken: "a"})
	s.Connect(domain.Instagram, domain.Credentials{AccessToken: "b"})

	s.Statuses[domain.YouTube] = domain.StatusUploaded
	s.Statuses[domain.Instagram] = domain.StatusError
	if s.CompleteIfDone() {
		t.Fatal("must not complete with a failed platform")
	}

	s.Statuses[domain.Instagram] = domain.StatusUploaded
	if !s.CompleteIfDone() || s.Step != Complete {
		t.Fatalf("expected complete, got %v", s.Step)
	}
}

func TestDisconnectedPlatformIsVacuous(t *testing.T) {
	s := New()
	s.Step = Upload
	s.Connect(domain.Instagram, domain.Credentials{AccessToken: "b"})
	s.Statuses[domain.Instagram] = domain.StatusUploaded

	if !s.AllUploaded() {
		t.Fatal("disconnected youtube must not block completion")
	}
}

func TestViewHidesTokens(t *testing.T) {
	s := New()
	s.Connect(domain.YouTube, domain.Credentials{AccessToken: "secret", Username: "chan"})
	s.Results[domain.YouTube] = domain.UploadResult{ID: "1", URL: "u"}

	v := s.View()
	yt := v.Connections[domain.YouTube]
	if !yt.Connected || yt.Username == nil || *yt.Username != "chan" {
		t.Fatalf("unexpected connection view %+v", yt)
	}
	if v.Uploads[domain.YouTube].Result == nil {
		t.Fatal("expected upload result in view")
	}
	if v.StepName != "connect_accounts" || !v.CanAdvance {
		t.Fatalf("unexpected view %+v", v)
	}
}

func TestAssetUsesAttachment(t *testing.T) {
	s := New()
	s.Video.Title = "T"
	s.Attachment = &Attachment{Name: "clip.mp4", Data: []byte("v")}

	a := s.Asset()
	if a.Title != "T" || a.VideoName != "clip.mp4" || string(a.Video) != "v" {
		t.Fatalf("unexpected asset %+v", a)
	}
}
