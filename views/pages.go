package views

import (
	"strconv"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/pressroom/pressroom"
	"github.com/pressroom/pressroom/markdown"
)

func HomePage(site pressroom.Site, page pressroom.PostPage) g.Node {
	meta := PageMeta{
		Description: site.TagLine,
		URL:         pressroom.BuildURL(site.URL),
		OGType:      "website",
		JSONLD:      pressroom.WebsiteJsonLD(site),
	}
	if page.Page > 1 {
		meta.Title = "Page " + strconv.Itoa(page.Page)
	}
	return layout(site, meta,
		masthead(site.Name, site.TagLine),
		g.If(len(page.Posts) == 0, P(g.Text("No posts yet."))),
		postList(page.Posts),
		Nav(Class("pager"),
			pagerLink(page.Prev, "← Newer posts"),
			Span(Class("meta"), g.Textf("Page %d of %d", page.Page, page.LastPage)),
			pagerLink(page.Next, "Older posts →"),
		),
	)
}

func pagerLink(href, label string) g.Node {
	if href == "" {
		return Span()
	}
	return A(Href(href), g.Text(label))
}

func postList(posts []pressroom.Post) g.Node {
	items := make([]g.Node, 0, len(posts))
	for _, p := range posts {
		items = append(items, Article(Class("post-preview"),
			H2(A(Href(p.Link()), g.Text(p.Title))),
			g.If(p.Tagline != "", P(g.Text(p.Tagline))),
			P(Class("meta"), g.Text("Posted on "+pressroom.FormatDate(p.CreatedAt))),
		))
	}
	return g.Group(items)
}

func PostView(site pressroom.Site, post pressroom.Post) g.Node {
	img := imageURL(post.ImageFile)
	return layout(site, PageMeta{
		Title:       post.Title,
		Description: postDescription(post),
		URL:         pressroom.BuildURL(site.URL, "post", post.Slug),
		OGType:      "article",
		Image:       img,
		JSONLD:      pressroom.BlogPostingJsonLD(post, site),
	},
		Article(
			masthead(post.Title, post.Tagline),
			P(Class("meta"), g.Text("Posted on "+pressroom.FormatDate(post.CreatedAt))),
			g.If(img != "", Img(Class("cover"), Src(img), Alt(post.Title))),
			Div(Class("post-body"), g.Raw(markdown.ToHTML(post.Content))),
		),
	)
}

func AboutPage(site pressroom.Site) g.Node {
	return layout(site, PageMeta{Title: "About", URL: pressroom.BuildURL(site.URL, "about")},
		masthead("About", ""),
		Div(Class("post-body"), g.Raw(markdown.ToHTML(site.About))),
	)
}

func ContactPage(site pressroom.Site) g.Node {
	return layout(site, PageMeta{Title: "Contact", URL: pressroom.BuildURL(site.URL, "contact")},
		masthead("Contact", "Have a question or want to say hello?"),
		Form(Class("stack"), Method("post"), Action("/contact"),
			csrfField(site.CSRFToken),
			Label(For("name"), g.Text("Name")),
			Input(Type("text"), ID("name"), Name("name"), Required()),
			Label(For("email"), g.Text("Email")),
			Input(Type("email"), ID("email"), Name("email")),
			Label(For("phone"), g.Text("Phone")),
			Input(Type("text"), ID("phone"), Name("phone")),
			Label(For("msg"), g.Text("Message")),
			Textarea(ID("msg"), Name("msg"), g.Attr("rows", "6")),
			P(Button(Type("submit"), g.Text("Send"))),
		),
	)
}

func SearchPage(site pressroom.Site, q string, results []pressroom.Post) g.Node {
	return layout(site, PageMeta{Title: "Search"},
		masthead("Search", ""),
		Form(Method("get"), Action("/search"),
			Input(Type("search"), Name("q"), Value(q), Placeholder("Search posts")),
			Button(Type("submit"), g.Text("Search")),
		),
		g.If(q != "", P(Class("meta"), g.Textf("%d result(s) for “%s”", len(results), q))),
		postList(results),
	)
}

func NotFoundPage(site pressroom.Site) g.Node {
	return layout(site, PageMeta{Title: "Page not found"},
		masthead("Page not found", "The page you were looking for does not exist."),
		P(A(Href("/"), g.Text("Back to the home page"))),
	)
}

func ServerErrorPage(site pressroom.Site) g.Node {
	return layout(site, PageMeta{Title: "Something went wrong"},
		masthead("Something went wrong", "The server could not complete your request."),
		P(A(Href("/"), g.Text("Back to the home page"))),
	)
}
