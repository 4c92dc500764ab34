package httpapi

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/orgball2608/motivate-ai/internal/authflow"
)

var callbackPage = template.Must(template.New("callback").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>MotivateAI</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4rem;">
<h2>{{.Title}}</h2>
<p>{{.Detail}}</p>
<p>You can close this window.</p>
<script>setTimeout(function () { window.close(); }, 1500);</script>
</body>
</html>
`))

type callbackView struct {
	Title  string
	Detail string
}

// authCallback is the OAuth redirect target; it hands the outcome to the waiting handshake.
func (s *Server) authCallback(w http.ResponseWriter, r *http.Request) {
	platform, err := pathPlatform(r)
	if err != nil {
		s.renderCallback(w, http.StatusBadRequest, callbackView{Title: "Unknown platform", Detail: err.Error()})
		return
	}

	q := r.URL.Query()
	outcome := authflow.Outcome{
		Code:             q.Get("code"),
		Error:            q.Get("error"),
		ErrorDescription: q.Get("error_description"),
	}

	if err := s.handshakes.Complete(platform, q.Get("state"), outcome); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, authflow.ErrUnknownState) {
			status = http.StatusBadRequest
		}
		s.logger.Warn("OAuth callback rejected", "platform", platform, "error", err)
		s.renderCallback(w, status, callbackView{
			Title:  "This sign-in link has expired",
			Detail: "Start the connection again from the wizard.",
		})
		return
	}

	view := callbackView{Title: "Account connected", Detail: "Return to the wizard to continue."}
	if outcome.Error != "" {
		view = callbackView{Title: "Connection cancelled", Detail: "No account was connected."}
	}
	s.renderCallback(w, http.StatusOK, view)
}

func (s *Server) renderCallback(w http.ResponseWriter, status int, view callbackView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := callbackPage.Execute(w, view); err != nil {
		s.logger.Error("Failed to render callback page", "error", err)
	}
}
