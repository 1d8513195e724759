package pressroom

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	total, err := a.Store.CountPosts(ctx)
	if err != nil {
		return err
	}
	p := Paginate(total, a.Config.PostsPerPage, parsePage(c.QueryParam("page")))
	posts, err := a.Store.ListPostsPage(ctx, p.Offset, p.Limit)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(a.site(c), PostPage{
		Posts:    posts,
		Page:     p.Page,
		LastPage: p.LastPage,
		Total:    total,
		Prev:     p.PrevURL(),
		Next:     p.NextURL(),
	}))
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Store.GetPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return Render(c, a.Views.Post(a.site(c), post))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(a.site(c)))
}

func (a *App) handleSearch(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	var results []Post
	if q != "" {
		var err error
		results, err = a.Store.SearchPosts(c.Request().Context(), q)
		if err != nil {
			return err
		}
	}
	return Render(c, a.Views.Search(a.site(c), q, results))
}

func (a *App) handleLogin(c echo.Context) error {
	return Render(c, a.Views.Login(a.site(c), false))
}

func (a *App) handleLoginSubmit(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	username := c.FormValue("username")
	if a.auth.CheckCredentials(username, c.FormValue("password")) {
		if err := a.auth.Login(c, username); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	a.loginLimiter.Record(ip)
	a.logger.Info("failed admin login", zap.String("ip", ip))
	return Render(c, a.Views.Login(a.site(c), true))
}

func (a *App) handleLogout(c echo.Context) error {
	if err := a.auth.Logout(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Store.ListPostsPage(c.Request().Context(), 0, feedSize)
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Store.ListAllPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}
