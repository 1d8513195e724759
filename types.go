package pressroom

import "time"

// Post is a blog entry. Slug is the public URL key and is unique per store.
type Post struct {
	ID        uint      `gorm:"column:sr_no;primaryKey;autoIncrement"`
	Title     string    `gorm:"column:title;not null"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex"`
	Content   string    `gorm:"column:content"`
	Tagline   string    `gorm:"column:tagline"`
	CreatedAt time.Time `gorm:"column:created_at"`
	ImageFile string    `gorm:"column:img_file"`
}

func (Post) TableName() string { return "posts" }

// Link is the public URL of the post.
func (p Post) Link() string {
	return "/post/" + PathEscape(p.Slug)
}

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	ID        uint      `gorm:"column:sr_no;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone_no"`
	Message   string    `gorm:"column:msg"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (ContactMessage) TableName() string { return "contacts" }

// PostPage is one page of the public listing.
type PostPage struct {
	Posts    []Post
	Page     int
	LastPage int
	Total    int64
	Prev     string // empty on the first page
	Next     string // empty on the last page
}

// Site carries the values every page template can read.
type Site struct {
	Name        string
	TagLine     string
	About       string
	URL         string
	Author      string
	FacebookURL string
	TwitterURL  string
	GithubURL   string
	Year        int
	Admin       bool
	CSRFToken   string
	Flashes     []Flash
}

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string // success, info or error
	Message  string
}

// UploadedImage describes a file found in the upload folder.
type UploadedImage struct {
	Filename string
	URL      string
	Size     int64
	Width    int
	Height   int
}
