package pressroom

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// newPostID is the edit route id that means "create a post".
const newPostID = "0"

func (a *App) handleDashboard(c echo.Context) error {
	posts, err := a.Store.ListAllPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Dashboard(a.site(c), posts))
}

func (a *App) handleEdit(c echo.Context) error {
	id := c.Param("id")
	post, err := a.editTarget(c, id)
	if err != nil {
		return err
	}
	return Render(c, a.Views.EditPost(a.site(c), post, id))
}

func (a *App) handleEditSubmit(c echo.Context) error {
	id := c.Param("id")
	post, err := a.editTarget(c, id)
	if err != nil {
		return err
	}

	f := trimmedForm(c.FormValue, "title", "slug", "content", "tagline", "img_file")
	ctx := c.Request().Context()
	if post == nil {
		err = a.Store.CreatePost(ctx, &Post{
			Title:     f["title"],
			Slug:      f["slug"],
			Content:   f["content"],
			Tagline:   f["tagline"],
			ImageFile: f["img_file"],
		})
	} else {
		post.Title = f["title"]
		post.Slug = f["slug"]
		post.Content = f["content"]
		post.Tagline = f["tagline"]
		post.ImageFile = f["img_file"]
		err = a.Store.UpdatePost(ctx, *post)
	}
	if err != nil {
		return err
	}
	return redirectWithFlash(c, "/dashboard", "success", "Post saved successfully!")
}

func (a *App) handleDelete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := a.Store.DeletePost(c.Request().Context(), id); err != nil {
		return err
	}
	return redirectWithFlash(c, "/dashboard", "info", "Post deleted successfully!")
}

// editTarget resolves the post behind an edit id. It returns nil for a new
// post and ErrNotFound for ids that name no post.
func (a *App) editTarget(c echo.Context, id string) (*Post, error) {
	if id == newPostID {
		return nil, nil
	}
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	post, err := a.Store.GetPost(c.Request().Context(), n)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func parseID(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint(n), nil
}
