package views

import (
	"strconv"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/pressroom/pressroom"
	"github.com/pressroom/pressroom/markdown"
)

const stylesheet = `
body{margin:0;font-family:Georgia,serif;color:#222;background:#fafaf7;line-height:1.6}
a{color:#1f4e79}
.container{max-width:760px;margin:0 auto;padding:0 1rem}
.nav{display:flex;justify-content:space-between;align-items:center;padding:1rem 0;border-bottom:1px solid #ddd}
.nav a{margin-left:1rem;text-decoration:none}
.brand a{margin-left:0;font-weight:bold;font-size:1.2rem}
.masthead{padding:2rem 0 1rem}
.masthead p{color:#666;margin:0}
.post-preview{padding:1rem 0;border-bottom:1px solid #eee}
.post-preview h2{margin:0}
.meta{color:#888;font-size:.9rem}
.pager{display:flex;justify-content:space-between;padding:1.5rem 0}
.flash{padding:.6rem 1rem;margin:1rem 0;border-radius:4px}
.flash-success{background:#e6f4ea}
.flash-error{background:#fce8e6}
.flash-info{background:#e8f0fe}
.cover{max-width:100%;height:auto}
form.stack label{display:block;margin-top:.8rem}
form.stack input[type=text],form.stack input[type=email],form.stack input[type=password],form.stack textarea{width:100%;box-sizing:border-box;padding:.4rem}
table{width:100%;border-collapse:collapse}
td,th{padding:.4rem;border-bottom:1px solid #eee;text-align:left}
.inline{display:inline}
footer{margin:3rem 0 1rem;color:#888;font-size:.9rem;text-align:center}
`

func layout(site pressroom.Site, meta PageMeta, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(pageTitle(site, meta.Title))),
				g.If(meta.Description != "", Meta(Name("description"), Content(meta.Description))),
				g.If(meta.URL != "", Link(Rel("canonical"), Href(meta.URL))),
				Meta(g.Attr("property", "og:site_name"), Content(site.Name)),
				Meta(g.Attr("property", "og:title"), Content(pageTitle(site, meta.Title))),
				g.If(meta.OGType != "", Meta(g.Attr("property", "og:type"), Content(meta.OGType))),
				g.If(meta.Image != "", Meta(g.Attr("property", "og:image"), Content(meta.Image))),
				Link(Rel("alternate"), Type("application/rss+xml"), Title(site.Name), Href("/feed.xml")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				StyleEl(g.Raw(stylesheet)),
				g.If(meta.JSONLD != "", Script(Type("application/ld+json"), g.Raw(meta.JSONLD))),
			),
			Body(
				Div(Class("container"),
					navbar(site),
					Main(
						flashList(site.Flashes),
						g.Group(children),
					),
					footerComponent(site),
				),
			),
		),
	)
}

func navbar(site pressroom.Site) g.Node {
	return Nav(Class("nav"),
		Div(Class("brand"), A(Href("/"), g.Text(site.Name))),
		Div(
			A(Href("/"), g.Text("Home")),
			A(Href("/about"), g.Text("About")),
			A(Href("/contact"), g.Text("Contact")),
			A(Href("/search"), g.Text("Search")),
			g.If(site.Admin, A(Href("/dashboard"), g.Text("Dashboard"))),
			g.If(site.Admin, A(Href("/logout"), g.Text("Logout"))),
		),
	)
}

func flashList(flashes []pressroom.Flash) g.Node {
	nodes := make([]g.Node, 0, len(flashes))
	for _, f := range flashes {
		nodes = append(nodes, Div(Class(flashClass(f.Category)), g.Attr("role", "status"), g.Text(f.Message)))
	}
	return g.Group(nodes)
}

func footerComponent(site pressroom.Site) g.Node {
	var social []g.Node
	for _, l := range []struct{ label, url string }{
		{"Facebook", site.FacebookURL},
		{"Twitter", site.TwitterURL},
		{"GitHub", site.GithubURL},
	} {
		if u := markdown.SafeURL(l.url); u != "" {
			social = append(social, A(Href(u), Rel("noopener"), g.Text(l.label)), g.Text(" "))
		}
	}
	return Footer(
		g.If(len(social) > 0, P(g.Group(social))),
		P(g.Text("© "+strconv.Itoa(site.Year)+" "+site.Name)),
	)
}

func masthead(title, subtitle string) g.Node {
	return Header(Class("masthead"),
		H1(g.Text(title)),
		g.If(subtitle != "", P(g.Text(subtitle))),
	)
}

func csrfField(token string) g.Node {
	return Input(Type("hidden"), Name("_csrf"), Value(token))
}
