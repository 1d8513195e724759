package views

import (
	"strconv"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/pressroom/pressroom"
)

func LoginPage(site pressroom.Site, showError bool) g.Node {
	return layout(site, PageMeta{Title: "Log in"},
		masthead("Log in", ""),
		g.If(showError, Div(Class(flashClass("error")), g.Attr("role", "alert"), g.Text("Invalid username or password"))),
		Form(Class("stack"), Method("post"), Action("/login"),
			csrfField(site.CSRFToken),
			Label(For("username"), g.Text("Username")),
			Input(Type("text"), ID("username"), Name("username"), g.Attr("autocomplete", "username"), Required()),
			Label(For("password"), g.Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), g.Attr("autocomplete", "current-password"), Required()),
			P(Button(Type("submit"), g.Text("Log in"))),
		),
	)
}

func DashboardPage(site pressroom.Site, posts []pressroom.Post) g.Node {
	rows := make([]g.Node, 0, len(posts))
	for _, p := range posts {
		id := strconv.FormatUint(uint64(p.ID), 10)
		rows = append(rows, Tr(
			Td(g.Text(id)),
			Td(A(Href(p.Link()), g.Text(p.Title))),
			Td(g.Text(pressroom.FormatDate(p.CreatedAt))),
			Td(
				A(Href("/edit/"+id), g.Text("Edit")),
				g.Text(" "),
				Form(Class("inline"), Method("post"), Action("/delete/"+id),
					csrfField(site.CSRFToken),
					Button(Type("submit"), g.Text("Delete")),
				),
			),
		))
	}
	return layout(site, PageMeta{Title: "Dashboard"},
		masthead("Dashboard", ""),
		P(
			A(Href("/edit/0"), g.Text("New post")),
			g.Text(" · "),
			A(Href("/upload"), g.Text("Upload image")),
			g.Text(" · "),
			A(Href("/logout"), g.Text("Log out")),
		),
		g.If(len(posts) == 0, P(g.Text("No posts yet."))),
		g.If(len(posts) > 0, Table(
			THead(Tr(Th(g.Text("#")), Th(g.Text("Title")), Th(g.Text("Date")), Th())),
			TBody(g.Group(rows)),
		)),
	)
}

// EditPage renders the post form. A nil post means a new one.
func EditPage(site pressroom.Site, post *pressroom.Post, id string) g.Node {
	var p pressroom.Post
	heading := "New post"
	if post != nil {
		p = *post
		heading = "Edit post"
	}
	return layout(site, PageMeta{Title: heading},
		masthead(heading, ""),
		Form(Class("stack"), Method("post"), Action("/edit/"+id),
			csrfField(site.CSRFToken),
			Label(For("title"), g.Text("Title")),
			Input(Type("text"), ID("title"), Name("title"), Value(p.Title), Required()),
			Label(For("slug"), g.Text("Slug")),
			Input(Type("text"), ID("slug"), Name("slug"), Value(p.Slug), Required()),
			Label(For("tagline"), g.Text("Tagline")),
			Input(Type("text"), ID("tagline"), Name("tagline"), Value(p.Tagline)),
			Label(For("img_file"), g.Text("Image file")),
			Input(Type("text"), ID("img_file"), Name("img_file"), Value(p.ImageFile)),
			Label(For("content"), g.Text("Content (Markdown)")),
			Textarea(ID("content"), Name("content"), g.Attr("rows", "16"), g.Text(p.Content)),
			P(Button(Type("submit"), g.Text("Save"))),
		),
	)
}

func UploadPage(site pressroom.Site, files []pressroom.UploadedImage) g.Node {
	rows := make([]g.Node, 0, len(files))
	for _, f := range files {
		dims := ""
		if f.Width > 0 {
			dims = strconv.Itoa(f.Width) + "×" + strconv.Itoa(f.Height)
		}
		rows = append(rows, Tr(
			Td(A(Href(f.URL), g.Text(f.Filename))),
			Td(g.Text(dims)),
			Td(g.Text(humanSize(f.Size))),
		))
	}
	return layout(site, PageMeta{Title: "Upload"},
		masthead("Upload image", ""),
		Form(Method("post"), Action("/upload"), g.Attr("enctype", "multipart/form-data"),
			csrfField(site.CSRFToken),
			Input(Type("file"), Name("file1"), g.Attr("accept", ".png,.jpg,.jpeg,.gif,.webp")),
			Button(Type("submit"), g.Text("Upload")),
		),
		g.If(len(files) > 0, Table(
			THead(Tr(Th(g.Text("File")), Th(g.Text("Size (px)")), Th(g.Text("Bytes")))),
			TBody(g.Group(rows)),
		)),
	)
}
