package pressroom

import (
	"crypto/subtle"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionName      = "pressroom_session"
	sessionUserKey   = "user"
	sessionIssuedKey = "issued_at"
)

func init() {
	gob.Register(Flash{})
}

// Authenticator is the admin gate. A session counts as the admin only while
// its stored user equals the configured admin username and it is younger
// than the configured TTL.
type Authenticator struct {
	username     string
	password     string
	passwordHash string
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthenticator builds the gate from cfg. A nil now uses time.Now.
func NewAuthenticator(cfg Config, now func() time.Time) *Authenticator {
	if now == nil {
		now = time.Now
	}
	return &Authenticator{
		username:     cfg.AdminUsername,
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
		ttl:          cfg.SessionTTL,
		now:          now,
	}
}

// CheckCredentials reports whether username and password match the admin
// account exactly. Both comparisons always run.
func (a *Authenticator) CheckCredentials(username, password string) bool {
	if a.username == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	var passOK bool
	if a.passwordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	}
	return userOK && passOK
}

// IsAdminLoggedIn checks the session identity of the current request.
func (a *Authenticator) IsAdminLoggedIn(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil || a.username == "" {
		return false
	}
	user, ok := sess.Values[sessionUserKey].(string)
	if !ok || subtle.ConstantTimeCompare([]byte(user), []byte(a.username)) != 1 {
		return false
	}
	issued, ok := sess.Values[sessionIssuedKey].(int64)
	if !ok {
		return false
	}
	return a.now().Sub(time.Unix(issued, 0)) < a.ttl
}

// Login records username as the session identity.
func (a *Authenticator) Login(c echo.Context, username string) error {
	// A cookie signed with an old key decodes with an error but still yields
	// a fresh session, which is what a login wants.
	sess, _ := session.Get(sessionName, c)
	if sess == nil {
		return echo.ErrInternalServerError
	}
	sess.Values[sessionUserKey] = username
	sess.Values[sessionIssuedKey] = a.now().Unix()
	return sess.Save(c.Request(), c.Response())
}

// Logout drops the session identity and leaves a notice for the login page.
func (a *Authenticator) Logout(c echo.Context) error {
	sess, _ := session.Get(sessionName, c)
	if sess == nil {
		return echo.ErrInternalServerError
	}
	delete(sess.Values, sessionUserKey)
	delete(sess.Values, sessionIssuedKey)
	sess.AddFlash(Flash{Category: "info", Message: "Logged out."})
	return sess.Save(c.Request(), c.Response())
}

// RequireAdmin redirects every request without an admin session to the login
// page, whatever its method.
func (a *Authenticator) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !a.IsAdminLoggedIn(c) {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

func newSessionStore(cfg Config) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(cfg.SessionTTL / time.Second),
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.CookieSecure,
	}
	return store
}

func addFlash(c echo.Context, category, message string) error {
	sess, _ := session.Get(sessionName, c)
	if sess == nil {
		return echo.ErrInternalServerError
	}
	sess.AddFlash(Flash{Category: category, Message: message})
	return sess.Save(c.Request(), c.Response())
}

// popFlashes returns pending notices. The session is only rewritten when
// there was something to consume.
func popFlashes(c echo.Context) []Flash {
	sess, err := session.Get(sessionName, c)
	if err != nil || sess == nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if fl, ok := f.(Flash); ok {
			flashes = append(flashes, fl)
		}
	}
	_ = sess.Save(c.Request(), c.Response())
	return flashes
}
