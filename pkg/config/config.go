package config

import (
	"log"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	UploadModeSimulated = "simulated"
	UploadModeLive      = "live"

	ThumbnailImagen       = "imagen"
	ThumbnailPollinations = "pollinations"
	ThumbnailPlaceholder  = "placeholder"
)

type Config struct {
	App struct {
		Env            string `env:"APP_ENV" env-default:"development"`
		Port           int    `env:"APP_PORT" env-default:"8080"`
		PublicURL      string `env:"APP_PUBLIC_URL" env-default:"http://localhost:8080"`
		AllowedOrigins string `env:"ALLOWED_ORIGINS" env-default:"http://localhost:5173"`
		// Only enable behind a reverse proxy that overwrites X-Forwarded-For.
		TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" env-default:"false"`
		SentryUrl      string `env:"SENTRY_URL"`
	}
	Gemini struct {
		APIKey        string `env:"GEMINI_API_KEY"`
		BaseURL       string `env:"GEMINI_BASE_URL"`
		ScriptModel   string `env:"GEMINI_SCRIPT_MODEL" env-default:"gemini-1.5-pro"`
		SpeechModel   string `env:"GEMINI_SPEECH_MODEL" env-default:"gemini-2.5-flash-preview-tts"`
		MetadataModel string `env:"GEMINI_METADATA_MODEL" env-default:"gemini-1.5-flash"`
		ImageModel    string `env:"GEMINI_IMAGE_MODEL" env-default:"imagen-3.0-generate-002"`
	}
	Thumbnail struct {
		Provider         string `env:"THUMBNAIL_PROVIDER" env-default:"placeholder"`
		PollinationsBase string `env:"POLLINATIONS_BASE_URL" env-default:"https://image.pollinations.ai"`
	}
	Upload struct {
		Mode              string        `env:"UPLOAD_MODE" env-default:"simulated"`
		GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" env-default:"0s"`
		UploadTimeout     time.Duration `env:"UPLOAD_TIMEOUT" env-default:"0s"`
		AuthTimeout       time.Duration `env:"AUTH_TIMEOUT" env-default:"10m"`
	}
	YouTube struct {
		ClientID     string `env:"YOUTUBE_CLIENT_ID"`
		ClientSecret string `env:"YOUTUBE_CLIENT_SECRET"`
	}
	Instagram struct {
		ClientID     string `env:"INSTAGRAM_CLIENT_ID"`
		ClientSecret string `env:"INSTAGRAM_CLIENT_SECRET"`
		GraphBaseURL string `env:"INSTAGRAM_GRAPH_URL" env-default:"https://graph.instagram.com/v18.0"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`

		MaxConns        int32         `env:"POSTGRES_MAX_CONNS" env-default:"4"`
		MaxConnIdleTime time.Duration `env:"POSTGRES_MAX_CONN_IDLE" env-default:"5m"`
	}
	Telegram struct {
		User    int64  `env:"TELEGRAM_USER"`
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel string `env:"TELEGRAM_CHANNEL"`
	}
	History struct {
		Retention string `env:"HISTORY_RETENTION" env-default:"720h"`
		Timezone  string `env:"HISTORY_TIMEZONE" env-default:"UTC"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"10"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"1m"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"3"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the connection URL lib/pq uses for migrations.
func (c *Config) GetDSN() string {
	return c.GetPoolURL()
}

// GetPoolURL returns the postgres URL with credentials escaped.
func (c *Config) GetPoolURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Postgres.User, c.Postgres.Pass),
		Host:     net.JoinHostPort(c.Postgres.Host, strconv.Itoa(c.Postgres.Port)),
		Path:     "/" + c.Postgres.Name,
		RawQuery: url.Values{"sslmode": {c.Postgres.SslMode}}.Encode(),
	}
	return u.String()
}

func (c *Config) HistoryEnabled() bool {
	return c.Postgres.Host != ""
}

func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != ""
}

func (c *Config) LiveUploads() bool {
	return strings.EqualFold(c.Upload.Mode, UploadModeLive)
}

func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.App.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// CallbackURL is the OAuth redirect registered for a platform.
func (c *Config) CallbackURL(platform string) string {
	return strings.TrimRight(c.App.PublicURL, "/") + "/auth/" + platform + "/callback"
}
