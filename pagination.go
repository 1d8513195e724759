package pressroom

import (
	"strconv"
)

// Pagination is the outcome of clamping a requested page against the total.
type Pagination struct {
	Page     int
	LastPage int
	Offset   int
	Limit    int
}

// Paginate computes the last page as max(1, ceil(total/perPage)) and clamps
// requested into [1, LastPage].
func Paginate(total int64, perPage, requested int) Pagination {
	if perPage < 1 {
		perPage = defaultPostsPerPage
	}
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	page := requested
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}
	return Pagination{
		Page:     page,
		LastPage: last,
		Offset:   (page - 1) * perPage,
		Limit:    perPage,
	}
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }

func (p Pagination) HasNext() bool { return p.Page < p.LastPage }

// PrevURL is the listing URL of the previous page, or "" on the first page.
func (p Pagination) PrevURL() string {
	if !p.HasPrev() {
		return ""
	}
	return pageURL(p.Page - 1)
}

// NextURL is the listing URL of the next page, or "" on the last page.
func (p Pagination) NextURL() string {
	if !p.HasNext() {
		return ""
	}
	return pageURL(p.Page + 1)
}

func pageURL(n int) string {
	return "/?page=" + strconv.Itoa(n)
}

// parsePage reads a page query value; anything that is not an integer means 1.
func parsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
