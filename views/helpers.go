package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	g "github.com/maragudk/gomponents"

	"github.com/pressroom/pressroom"
	"github.com/pressroom/pressroom/markdown"
)

// component adapts a gomponents node to the templ.Component the app renders.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// imageURL resolves a post's img_file. Bare names live in the upload folder;
// absolute paths and http(s) URLs are used as given.
func imageURL(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.Contains(name, "/") || strings.Contains(name, ":") {
		return markdown.SafeURL(name)
	}
	return "/uploads/" + pressroom.PathEscape(name)
}

// pageTitle builds the <title> text.
func pageTitle(site pressroom.Site, title string) string {
	if title == "" {
		return site.Name
	}
	return title + " | " + site.Name
}

func flashClass(category string) string {
	switch category {
	case "success", "error", "info":
		return "flash flash-" + category
	default:
		return "flash flash-info"
	}
}

// humanSize formats a byte count for the upload listing.
func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return strconv.FormatFloat(float64(n)/(1<<20), 'f', 1, 64) + " MB"
	case n >= 1<<10:
		return strconv.FormatFloat(float64(n)/(1<<10), 'f', 1, 64) + " KB"
	default:
		return strconv.FormatInt(n, 10) + " B"
	}
}

func postDescription(p pressroom.Post) string {
	if p.Tagline != "" {
		return p.Tagline
	}
	return markdown.Excerpt(p.Content, 160)
}
