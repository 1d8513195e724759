// Package views is the default look of a pressroom site, written with
// gomponents and exposed to the app as templ components.
package views

import (
	"github.com/a-h/templ"

	"github.com/pressroom/pressroom"
)

// Default returns the built-in page set.
func Default() pressroom.ViewFuncs {
	return pressroom.ViewFuncs{
		Home: func(site pressroom.Site, page pressroom.PostPage) templ.Component {
			return component(HomePage(site, page))
		},
		Post: func(site pressroom.Site, post pressroom.Post) templ.Component {
			return component(PostView(site, post))
		},
		About: func(site pressroom.Site) templ.Component {
			return component(AboutPage(site))
		},
		Contact: func(site pressroom.Site) templ.Component {
			return component(ContactPage(site))
		},
		Login: func(site pressroom.Site, showError bool) templ.Component {
			return component(LoginPage(site, showError))
		},
		Dashboard: func(site pressroom.Site, posts []pressroom.Post) templ.Component {
			return component(DashboardPage(site, posts))
		},
		EditPost: func(site pressroom.Site, post *pressroom.Post, id string) templ.Component {
			return component(EditPage(site, post, id))
		},
		Upload: func(site pressroom.Site, files []pressroom.UploadedImage) templ.Component {
			return component(UploadPage(site, files))
		},
		Search: func(site pressroom.Site, q string, results []pressroom.Post) templ.Component {
			return component(SearchPage(site, q, results))
		},
		NotFound: func(site pressroom.Site) templ.Component {
			return component(NotFoundPage(site))
		},
		ServerError: func(site pressroom.Site) templ.Component {
			return component(ServerErrorPage(site))
		},
	}
}
