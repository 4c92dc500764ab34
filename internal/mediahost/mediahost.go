// Package mediahost keeps attached videos in memory and exposes them at
// short-lived public URLs, which is how Instagram ingests media.
package mediahost

import (
	"mime"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/fx"
)

const defaultTTL = time.Hour

type Item struct {
	Name        string
	ContentType string
	Data        []byte
	ModTime     time.Time
	expires     time.Time
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type Store struct {
	mu      sync.Mutex
	items   map[string]Item
	baseURL string
	ttl     time.Duration
	now     func() time.Time
	logger  logger.Logger
}

func New(opts Opts) *Store {
	return NewStore(opts.Config.App.PublicURL, defaultTTL, opts.Logger)
}

func NewStore(baseURL string, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		items:   make(map[string]Item),
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
		now:     time.Now,
		logger:  log.WithComponent("MediaHost"),
	}
}

// Publish stores data and returns its public URL plus a func that withdraws it.
func (s *Store) Publish(name string, data []byte) (string, func()) {
	token := uuid.NewString()
	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "video/mp4"
	}

	now := s.now()
	s.mu.Lock()
	s.evictLocked(now)
	s.items[token] = Item{
		Name:        name,
		ContentType: ct,
		Data:        data,
		ModTime:     now,
		expires:     now.Add(s.ttl),
	}
	s.mu.Unlock()

	s.logger.Debug("Media published", "token", token, "name", name, "bytes", len(data))
	return s.baseURL + "/media/" + token, func() { s.withdraw(token) }
}

func (s *Store) Get(token string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[token]
	if !ok || s.now().After(item.expires) {
		return Item{}, false
	}
	return item, true
}

func (s *Store) withdraw(token string) {
	s.mu.Lock()
	delete(s.items, token)
	s.mu.Unlock()
}

func (s *Store) evictLocked(now time.Time) {
	for token, item := range s.items {
		if now.After(item.expires) {
			delete(s.items, token)
		}
	}
}
