package pressroom

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPostsPerPage = 5
	defaultUploadFolder = "static/uploads"
	fallbackSecret      = "fallback-secret"
)

// Config holds every setting the site needs. It is loaded once at startup and
// handed to New by value; handlers never read the environment themselves.
type Config struct {
	// Display parameters from the params file.
	BlogName    string
	TagLine     string
	AboutText   string
	SiteURL     string
	Author      string
	FacebookURL string
	TwitterURL  string
	GithubURL   string

	PostsPerPage int
	UploadFolder string

	// Secrets and process settings from the environment.
	AdminUsername     string        `env:"ADMIN_USERNAME"`
	AdminPassword     string        `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"` // bcrypt, takes precedence over AdminPassword
	MailUser          string        `env:"GMAIL_USER"`
	MailPass          string        `env:"GMAIL_PASS"`
	MailServer        string        `env:"MAIL_SERVER" envDefault:"smtp.gmail.com"`
	MailPort          int           `env:"MAIL_PORT" envDefault:"465"`
	SessionSecret     string        `env:"SECRET_KEY" envDefault:"fallback-secret"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	CookieSecure      bool          `env:"COOKIE_SECURE"`
	DatabasePath      string        `env:"DATABASE_PATH" envDefault:"data/blog.db"`
	StaticDir         string        `env:"STATIC_DIR" envDefault:"static"`
	Addr              string        `env:"ADDR" envDefault:":5000"`
	Env               string        `env:"APP_ENV" envDefault:"development"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig merges .env, the JSON params file at path and the process
// environment into a Config. An empty path skips the params file.
func LoadConfig(path string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	v := viper.New()
	v.SetDefault("params.no_of_posts", defaultPostsPerPage)
	v.SetDefault("params.upload_folder", defaultUploadFolder)
	_ = v.BindEnv("params.no_of_posts", "POSTS_PER_PAGE")
	_ = v.BindEnv("params.upload_folder", "UPLOAD_FOLDER")
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading params file %s: %w", path, err)
		}
	}

	cfg.BlogName = v.GetString("params.blog_name")
	cfg.TagLine = v.GetString("params.tag_line")
	cfg.AboutText = v.GetString("params.about_text")
	cfg.SiteURL = strings.TrimSuffix(v.GetString("params.site_url"), "/")
	cfg.Author = v.GetString("params.author")
	cfg.FacebookURL = v.GetString("params.fb_url")
	cfg.TwitterURL = v.GetString("params.tw_url")
	cfg.GithubURL = v.GetString("params.gh_url")
	cfg.PostsPerPage = v.GetInt("params.no_of_posts")
	cfg.UploadFolder = v.GetString("params.upload_folder")

	cfg.setDefaults()

	if cfg.IsProduction() && cfg.UsesFallbackSecret() {
		return Config{}, errors.New("SECRET_KEY must be set in production")
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.BlogName == "" {
		c.BlogName = "Blog"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:5000"
	}
	if c.PostsPerPage < 1 {
		c.PostsPerPage = defaultPostsPerPage
	}
	if c.UploadFolder == "" {
		c.UploadFolder = defaultUploadFolder
	}
	if c.SessionSecret == "" {
		c.SessionSecret = fallbackSecret
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 12 * time.Hour
	}
	if c.MailPort == 0 {
		c.MailPort = 465
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/blog.db"
	}
	if c.Addr == "" {
		c.Addr = ":5000"
	}
}

func (c Config) validate() error {
	if c.AdminUsername == "" {
		return errors.New("ADMIN_USERNAME is required")
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	return nil
}

// MailEnabled reports whether contact notifications should be sent.
func (c Config) MailEnabled() bool {
	return c.MailUser != "" && c.MailPass != ""
}

// UsesFallbackSecret reports whether sessions are signed with the built-in key.
func (c Config) UsesFallbackSecret() bool {
	return c.SessionSecret == fallbackSecret
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
