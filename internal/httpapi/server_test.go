package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/motivate-ai/internal/authflow"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/mediahost"
	"github.com/orgball2608/motivate-ai/internal/ratelimit"
	"github.com/orgball2608/motivate-ai/internal/session"
	"github.com/orgball2608/motivate-ai/internal/wizard"
	mock_wizard "github.com/orgball2608/motivate-ai/internal/wizard/mocks"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/mock/gomock"
)

type harness struct {
	handler http.Handler
	wiz     *mock_wizard.MockClient
	broker  *authflow.Broker
	media   *mediahost.Store
}

func newHarness(t *testing.T, burst int) *harness {
	t.Helper()
	return newHarnessWithProxy(t, burst, false)
}

func newHarnessWithProxy(t *testing.T, burst int, trustProxy bool) *harness {
	t.Helper()
	wiz := mock_wizard.NewMockClient(gomock.NewController(t))
	broker := authflow.NewBroker(time.Minute, logger.Nop())
	media := mediahost.NewStore("http://localhost:8080", time.Hour, logger.Nop())

	s := NewServer(wiz, broker, media, ratelimit.NewInMemoryLimiter(1, time.Hour, burst), logger.Nop(), []string{"http://localhost:5173"}, trustProxy)
	return &harness{handler: s.Handler(), wiz: wiz, broker: broker, media: media}
}

func (h *harness) do(method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestHealthz(t *testing.T) {
	h := newHarness(t, 5)

	rec := h.do(http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestSnapshot(t *testing.T) {
	h := newHarness(t, 5)

	h.wiz.EXPECT().Snapshot(gomock.Any()).Return(session.View{Step: 2, StepName: "script_and_voice"}, nil)

	rec := h.do(http.MethodGet, "/api/v1/wizard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var view session.View
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Step != 2 || view.StepName != "script_and_voice" {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestSelectToneValidatesInput(t *testing.T) {
	h := newHarness(t, 5)

	rec := h.do(http.MethodPost, "/api/v1/wizard/tone", `{"tone":"Rage"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != errors.CodeInvalidInput {
		t.Fatalf("code = %q", body.Code)
	}

	h.wiz.EXPECT().SelectTone(gomock.Any(), domain.Peace).Return(session.View{Tone: domain.Peace}, nil)
	rec = h.do(http.MethodPost, "/api/v1/wizard/tone", `{"tone":"peace"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestErrorCodesMapToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"wrong step", errors.WrongStep("not now"), http.StatusConflict},
		{"configuration", errors.Configuration("GEMINI_API_KEY is not set"), http.StatusServiceUnavailable},
		{"generation", errors.Generation("failed", nil), http.StatusBadGateway},
		{"auth", errors.Auth("denied", nil), http.StatusUnauthorized},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 5)
			h.wiz.EXPECT().GenerateScript(gomock.Any()).Return(session.View{}, tt.err)

			rec := h.do(http.MethodPost, "/api/v1/wizard/script", "")
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	h := newHarness(t, 5)
	h.wiz.EXPECT().Restart(gomock.Any()).Return(session.View{}, errors.New("pq: password authentication failed"))

	rec := h.do(http.MethodPost, "/api/v1/wizard/restart", "")
	body := decodeError(t, rec)
	if strings.Contains(body.Error, "password") || body.Code != "internal" {
		t.Fatalf("leaked internal error %+v", body)
	}
}

func TestGenerationIsRateLimited(t *testing.T) {
	h := newHarness(t, 1)
	h.wiz.EXPECT().GenerateMetadata(gomock.Any()).Return(session.View{}, nil).Times(1)

	if rec := h.do(http.MethodPost, "/api/v1/wizard/metadata", ""); rec.Code != http.StatusOK {
		t.Fatalf("first call status = %d", rec.Code)
	}
	rec := h.do(http.MethodPost, "/api/v1/wizard/metadata", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second call status = %d", rec.Code)
	}
}

func TestForwardedForDoesNotBypassLimit(t *testing.T) {
	h := newHarness(t, 1)
	h.wiz.EXPECT().GenerateScript(gomock.Any()).Return(session.View{}, nil).Times(1)

	accepted := 0
	for _, ip := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3", "203.0.113.4"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/script", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		h.handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			accepted++
		}
	}
	if accepted != 1 {
		t.Fatalf("accepted %d requests from one peer with burst 1", accepted)
	}
}

func TestTrustedProxyKeysByForwardedFor(t *testing.T) {
	h := newHarnessWithProxy(t, 1, true)
	h.wiz.EXPECT().GenerateScript(gomock.Any()).Return(session.View{}, nil).Times(2)

	for _, ip := range []string{"203.0.113.1", "203.0.113.2"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/script", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		h.handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("client %s status = %d", ip, rec.Code)
		}
	}
}

func TestEditMetadataIsNotRateLimited(t *testing.T) {
	h := newHarness(t, 1)
	h.wiz.EXPECT().EditMetadata(gomock.Any(), "Title", "Desc").Return(session.View{}, nil).Times(3)

	for i := 0; i < 3; i++ {
		if rec := h.do(http.MethodPut, "/api/v1/wizard/metadata", `{"title":"Title","description":"Desc"}`); rec.Code != http.StatusOK {
			t.Fatalf("call %d status = %d", i, rec.Code)
		}
	}
}

func TestConnectReturnsAuthURL(t *testing.T) {
	h := newHarness(t, 5)
	h.wiz.EXPECT().Connect(gomock.Any(), domain.Instagram).Return(&wizard.ConnectResult{AuthURL: "https://www.instagram.com/oauth/authorize?state=x"}, nil)

	rec := h.do(http.MethodPost, "/api/v1/wizard/connect/instagram", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res wizard.ConnectResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(res.AuthURL, "https://www.instagram.com/oauth/authorize") {
		t.Fatalf("auth url = %q", res.AuthURL)
	}
}

func TestUnknownPlatform(t *testing.T) {
	h := newHarness(t, 5)

	rec := h.do(http.MethodPost, "/api/v1/wizard/upload/tiktok", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestNextReportsAdvance(t *testing.T) {
	h := newHarness(t, 5)
	h.wiz.EXPECT().Next(gomock.Any()).Return(session.View{Step: 1}, false, nil)

	rec := h.do(http.MethodPost, "/api/v1/wizard/next", "")
	var res nextResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Advanced || res.Session.Step != 1 {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestAttachVideo(t *testing.T) {
	h := newHarness(t, 5)
	h.wiz.EXPECT().AttachVideo(gomock.Any(), "clip.mp4", []byte("mp4 bytes")).Return(session.View{VideoAttached: true}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("video", "clip.mp4")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write([]byte("mp4 bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/video", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
}

func TestAttachVideoRequiresFile(t *testing.T) {
	h := newHarness(t, 5)

	rec := h.do(http.MethodPost, "/api/v1/wizard/video", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAuthCallbackCompletesHandshake(t *testing.T) {
	h := newHarness(t, 5)
	hs := h.broker.Begin(domain.YouTube)

	rec := h.do(http.MethodGet, "/auth/youtube/callback?state="+hs.State+"&code=abc", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Account connected") {
		t.Fatalf("got %d %s", rec.Code, rec.Body.String())
	}

	code, err := hs.Wait(context.Background())
	if err != nil || code != "abc" {
		t.Fatalf("Wait = %q, %v", code, err)
	}
}

func TestAuthCallbackDenied(t *testing.T) {
	h := newHarness(t, 5)
	hs := h.broker.Begin(domain.Instagram)

	rec := h.do(http.MethodGet, "/auth/instagram/callback?state="+hs.State+"&error=access_denied", "")
	if !strings.Contains(rec.Body.String(), "Connection cancelled") {
		t.Fatalf("unexpected page %s", rec.Body.String())
	}

	if _, err := hs.Wait(context.Background()); !errors.IsCancelled(err) {
		t.Fatalf("expected cancelled, got %v", err)
	}
}

func TestAuthCallbackUnknownState(t *testing.T) {
	h := newHarness(t, 5)

	rec := h.do(http.MethodGet, "/auth/youtube/callback?state=nope&code=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestServeMedia(t *testing.T) {
	h := newHarness(t, 5)
	url, release := h.media.Publish("clip.mp4", []byte("0123456789"))

	path := strings.TrimPrefix(url, "http://localhost:8080")
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Range", "bytes=2-5")
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusPartialContent || rec.Body.String() != "2345" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "video/mp4" {
		t.Fatalf("content type = %q", ct)
	}

	release()
	rec = h.do(http.MethodGet, path, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("withdrawn media status = %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != "not_found" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newHarness(t, 5)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/wizard/next", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow origin = %q", got)
	}
}
