package telegramimpl

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/logger"
)

type botServer struct {
	mu   sync.Mutex
	sent []url.Values
}

func (b *botServer) handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Motivate","username":"motivate_bot"}}`)
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		b.sent = append(b.sent, r.PostForm)
		n := len(b.sent)
		b.mu.Unlock()
		fmt.Fprintf(w, `{"ok":true,"result":{"message_id":%d,"date":0,"chat":{"id":1,"type":"private"}}}`, n)
	default:
		fmt.Fprint(w, `{"ok":false,"error_code":404,"description":"Not Found"}`)
	}
}

func newTestBot(t *testing.T, cfg *config.Config) (*TelegramImpl, *botServer) {
	t.Helper()
	bs := &botServer{}
	srv := httptest.NewServer(http.HandlerFunc(bs.handler))
	t.Cleanup(srv.Close)

	cfg.Telegram.Token = "123:abc"
	tg, err := NewWithEndpoint(Opts{Config: cfg, Logger: logger.Nop(), HTTPClient: srv.Client()}, srv.URL+"/bot%s/%s")
	if err != nil {
		t.Fatalf("NewWithEndpoint: %v", err)
	}
	return tg, bs
}

func TestSendMessage(t *testing.T) {
	tg, bs := newTestBot(t, &config.Config{})

	id, err := tg.SendMessage(42, "hello")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if id != 1 {
		t.Fatalf("message id = %d", id)
	}
	if got := bs.sent[0].Get("chat_id"); got != "42" {
		t.Fatalf("chat_id = %q", got)
	}
	if got := bs.sent[0].Get("text"); got != "hello" {
		t.Fatalf("text = %q", got)
	}
}

func TestNotifyChannelUsesMarkdown(t *testing.T) {
	cfg := &config.Config{}
	cfg.Telegram.Channel = "motivation"
	tg, bs := newTestBot(t, cfg)

	tg.NotifyChannel(`New video\!`)

	if len(bs.sent) != 1 {
		t.Fatalf("sent %d messages", len(bs.sent))
	}
	if got := bs.sent[0].Get("chat_id"); got != "@motivation" {
		t.Fatalf("chat_id = %q", got)
	}
	if got := bs.sent[0].Get("parse_mode"); got != "MarkdownV2" {
		t.Fatalf("parse_mode = %q", got)
	}
}

func TestNotifySkipsUnsetTargets(t *testing.T) {
	tg, bs := newTestBot(t, &config.Config{})

	tg.NotifyOperator("ping")
	tg.NotifyChannel("ping")

	if len(bs.sent) != 0 {
		t.Fatalf("expected no messages, got %d", len(bs.sent))
	}
}

func TestNotifyOperator(t *testing.T) {
	cfg := &config.Config{}
	cfg.Telegram.User = 7
	tg, bs := newTestBot(t, cfg)

	tg.NotifyOperator("uploaded")

	if len(bs.sent) != 1 || bs.sent[0].Get("chat_id") != "7" {
		t.Fatalf("unexpected messages %v", bs.sent)
	}
}

func TestAuthorizeRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "<html>bad gateway</html>", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Motivate","username":"motivate_bot"}}`)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Telegram.Token = "123:abc"
	tg, err := NewWithEndpoint(Opts{Config: cfg, Logger: logger.Nop(), HTTPClient: srv.Client()}, srv.URL+"/bot%s/%s")
	if err != nil {
		t.Fatalf("NewWithEndpoint: %v", err)
	}
	if tg.TgBot.Self.UserName != "motivate_bot" || calls.Load() != 2 {
		t.Fatalf("user=%q calls=%d", tg.TgBot.Self.UserName, calls.Load())
	}
}

func TestAuthorizeDoesNotRetryRejectedToken(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Telegram.Token = "bad"
	if _, err := NewWithEndpoint(Opts{Config: cfg, Logger: logger.Nop(), HTTPClient: srv.Client()}, srv.URL+"/bot%s/%s"); err == nil {
		t.Fatal("expected an error for a rejected token")
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("rejected token was tried %d times", n)
	}
}
