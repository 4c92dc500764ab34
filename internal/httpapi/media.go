package httpapi

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/orgball2608/motivate-ai/pkg/errors"
)

func (s *Server) serveMedia(w http.ResponseWriter, r *http.Request) {
	item, ok := s.media.Get(mux.Vars(r)["token"])
	if !ok {
		s.respondError(w, errors.NotFound("media not found or expired"))
		return
	}

	w.Header().Set("Content-Type", item.ContentType)
	http.ServeContent(w, r, item.Name, item.ModTime, bytes.NewReader(item.Data))
}
