package pressroom

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// site collects the values every page can read. Pending flashes are consumed,
// so it must run before the response is written.
func (a *App) site(c echo.Context) Site {
	s := Site{
		Name:        a.Config.BlogName,
		TagLine:     a.Config.TagLine,
		About:       a.Config.AboutText,
		URL:         a.Config.SiteURL,
		Author:      a.Config.Author,
		FacebookURL: a.Config.FacebookURL,
		TwitterURL:  a.Config.TwitterURL,
		GithubURL:   a.Config.GithubURL,
		Year:        a.now().Year(),
		CSRFToken:   csrfToken(c),
		Flashes:     popFlashes(c),
	}
	if a.auth != nil {
		s.Admin = a.auth.IsAdminLoggedIn(c)
	}
	return s
}

// redirectWithFlash stores a notice and sends the client to path.
func redirectWithFlash(c echo.Context, path, category, message string) error {
	if err := addFlash(c, category, message); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, path)
}
