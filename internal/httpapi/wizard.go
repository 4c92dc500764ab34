package httpapi

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/session"
	"github.com/orgball2608/motivate-ai/pkg/errors"
)

const maxVideoBytes = 512 << 20

type nextResponse struct {
	Session  session.View `json:"session"`
	Advanced bool         `json:"advanced"`
}

func (s *Server) respondView(w http.ResponseWriter, view session.View, err error) {
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, view)
}

func pathPlatform(r *http.Request) (domain.Platform, error) {
	raw, ok := mux.Vars(r)["platform"]
	if !ok || raw == "" {
		return "", errMissingPlatform
	}
	return domain.ParsePlatform(raw)
}

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) {
	view, err := s.wizard.Snapshot(r.Context())
	s.respondView(w, view, err)
}

func (s *Server) connect(w http.ResponseWriter, r *http.Request) {
	platform, err := pathPlatform(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	res, err := s.wizard.Connect(r.Context(), platform)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, res)
}

func (s *Server) selectTone(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tone string `json:"tone"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, err)
		return
	}
	tone, err := domain.ParseTone(body.Tone)
	if err != nil {
		s.respondError(w, err)
		return
	}

	view, err := s.wizard.SelectTone(r.Context(), tone)
	s.respondView(w, view, err)
}

func (s *Server) selectVoice(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Voice string `json:"voice"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, err)
		return
	}
	voice, err := domain.ParseVoice(body.Voice)
	if err != nil {
		s.respondError(w, err)
		return
	}

	view, err := s.wizard.SelectVoice(r.Context(), voice)
	s.respondView(w, view, err)
}

func (s *Server) generateScript(w http.ResponseWriter, r *http.Request) {
	view, err := s.wizard.GenerateScript(r.Context())
	s.respondView(w, view, err)
}

func (s *Server) generateMetadata(w http.ResponseWriter, r *http.Request) {
	view, err := s.wizard.GenerateMetadata(r.Context())
	s.respondView(w, view, err)
}

func (s *Server) editMetadata(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, err)
		return
	}

	view, err := s.wizard.EditMetadata(r.Context(), body.Title, body.Description)
	s.respondView(w, view, err)
}

func (s *Server) togglePlayback(w http.ResponseWriter, r *http.Request) {
	view, err := s.wizard.TogglePlayback(r.Context())
	s.respondView(w, view, err)
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	data, err := s.wizard.Preview(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, data)
}

func (s *Server) attachVideo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxVideoBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.respondError(w, errors.InvalidInput("expected a multipart form with a video file"))
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		s.respondError(w, errors.InvalidInput("video file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, errors.InvalidInput("could not read the video file"))
		return
	}

	view, err := s.wizard.AttachVideo(r.Context(), header.Filename, data)
	s.respondView(w, view, err)
}

func (s *Server) uploadAll(w http.ResponseWriter, r *http.Request) {
	view, err := s.wizard.UploadAll(r.Context())
	s.respondView(w, view, err)
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	platform, err := pathPlatform(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	view, err := s.wizard.Upload(r.Context(), platform)
	s.respondView(w, view, err)
}

func (s *Server) next(w http.ResponseWriter, r *http.Request) {
	view, advanced, err := s.wizard.Next(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, nextResponse{Session: view, Advanced: advanced})
}

func (s *Server) restart(w http.ResponseWriter, r *http.Request) {
	view, err := s.wizard.Restart(r.Context())
	s.respondView(w, view, err)
}
