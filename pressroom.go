// Package pressroom is a small personal-blog CMS built with Go, Echo and templ.
// It serves paginated posts, search, an about page and a contact form, and
// gives a single administrator a dashboard to write posts and upload images.
//
// Pages are provided through the ViewFuncs struct, so a site can replace any
// of them; the views package ships a default set.
package pressroom

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pressroom/pressroom/mail"
)

// ViewFuncs holds the components the handlers render. Every page receives the
// Site value built for the current request.
type ViewFuncs struct {
	Home        func(site Site, page PostPage) templ.Component
	Post        func(site Site, post Post) templ.Component
	About       func(site Site) templ.Component
	Contact     func(site Site) templ.Component
	Login       func(site Site, showError bool) templ.Component
	Dashboard   func(site Site, posts []Post) templ.Component
	EditPost    func(site Site, post *Post, id string) templ.Component // post is nil when creating
	Upload      func(site Site, files []UploadedImage) templ.Component
	Search      func(site Site, q string, results []Post) templ.Component
	NotFound    func(site Site) templ.Component
	ServerError func(site Site) templ.Component
}

// Notifier delivers contact-form notifications.
type Notifier interface {
	Send(ctx context.Context, msg mail.Message) error
}

// App wires the store, the admin gate, handlers, middleware and views.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Views  ViewFuncs

	logger       *zap.Logger
	auth         *Authenticator
	notifier     Notifier
	loginLimiter *LoginLimiter
	now          func() time.Time
	ownsStore    bool
}

// Option configures additional App behavior.
type Option func(*App)

// WithStore makes the App use an already opened store. The caller keeps
// ownership and closes it.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.Store = s
	}
}

// WithNotifier replaces the SMTP sender used for contact notifications.
func WithNotifier(n Notifier) Option {
	return func(a *App) {
		a.notifier = n
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithClock replaces the clock used for session age and the footer year.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// New creates an App from cfg and views. Nothing is opened until Setup.
func New(cfg Config, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Echo:   e,
		Views:  views,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Setup validates the configuration, opens the store when none was given and
// registers middleware and routes. The schema is expected to be migrated.
func (a *App) Setup(ctx context.Context) error {
	if err := a.Config.validate(); err != nil {
		return fmt.Errorf("pressroom: %w", err)
	}
	if a.Config.UsesFallbackSecret() {
		a.logger.Warn("SECRET_KEY is not set, sessions are signed with the fallback key")
	}

	if a.Store == nil {
		db, err := OpenDB(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("pressroom: open database: %w", err)
		}
		store, err := NewStore(db, WithStoreClock(a.now))
		if err != nil {
			_ = db.Close()
			return fmt.Errorf("pressroom: init store: %w", err)
		}
		a.Store = store
		a.ownsStore = true
	}
	if err := a.Store.Ping(ctx); err != nil {
		return fmt.Errorf("pressroom: ping database: %w", err)
	}

	if a.notifier == nil && a.Config.MailEnabled() {
		a.notifier = mail.New(mail.Config{
			Host: a.Config.MailServer,
			Port: a.Config.MailPort,
			User: a.Config.MailUser,
			Pass: a.Config.MailPass,
		})
	}

	a.auth = NewAuthenticator(a.Config, a.now)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.loginLimiter.now = a.now

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

// Start serves HTTP on the configured address until the server is shut down.
func (a *App) Start() error {
	a.logger.Info("server starting", zap.String("addr", a.Config.Addr))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo
	csrf := a.csrfMiddleware()
	admin := []echo.MiddlewareFunc{a.auth.RequireAdmin, csrf}

	e.Static("/static", a.Config.StaticDir)
	e.Static("/uploads", a.Config.UploadFolder)

	e.GET("/", a.handleHome)
	e.GET("/post/:slug", a.handlePost)
	e.GET("/about", a.handleAbout)
	e.GET("/search", a.handleSearch)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/sitemap.xml", a.handleSitemap)

	e.GET("/contact", a.handleContact, csrf)
	e.POST("/contact", a.handleContactSubmit, contactRateLimit(), csrf)

	e.GET("/login", a.handleLogin, csrf)
	e.POST("/login", a.handleLoginSubmit, csrf)
	e.GET("/logout", a.handleLogout)

	e.GET("/dashboard", a.handleDashboard, admin...)
	e.GET("/edit/:id", a.handleEdit, admin...)
	e.POST("/edit/:id", a.handleEditSubmit, admin...)
	e.POST("/delete/:id", a.handleDelete, admin...)
	e.GET("/upload", a.handleUploadForm, admin...)
	e.POST("/upload", a.handleUpload, admin...)
}

// Close releases the store if the App opened it.
func (a *App) Close() error {
	if a.Store != nil && a.ownsStore {
		return a.Store.Close()
	}
	return nil
}
