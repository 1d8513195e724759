package pressroom

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		perPage   int
		requested int
		page      int
		last      int
		offset    int
		prev      string
		next      string
	}{
		{"empty store", 0, 5, 1, 1, 1, 0, "", ""},
		{"first of three", 12, 5, 1, 1, 3, 0, "", "/?page=2"},
		{"middle", 12, 5, 2, 2, 3, 5, "/?page=1", "/?page=3"},
		{"last page", 12, 5, 3, 3, 3, 10, "/?page=2", ""},
		{"zero clamps to first", 12, 5, 0, 1, 3, 0, "", "/?page=2"},
		{"negative clamps to first", 12, 5, -4, 1, 3, 0, "", "/?page=2"},
		{"beyond clamps to last", 12, 5, 99, 3, 3, 10, "/?page=2", ""},
		{"exact multiple", 10, 5, 2, 2, 2, 5, "/?page=1", ""},
		{"bad page size falls back", 12, 0, 3, 3, 3, 10, "/?page=2", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, tt.perPage, tt.requested)
			if p.Page != tt.page || p.LastPage != tt.last || p.Offset != tt.offset {
				t.Errorf("got page=%d last=%d offset=%d, want page=%d last=%d offset=%d",
					p.Page, p.LastPage, p.Offset, tt.page, tt.last, tt.offset)
			}
			if p.PrevURL() != tt.prev {
				t.Errorf("PrevURL = %q, want %q", p.PrevURL(), tt.prev)
			}
			if p.NextURL() != tt.next {
				t.Errorf("NextURL = %q, want %q", p.NextURL(), tt.next)
			}
		})
	}
}

func TestParsePage(t *testing.T) {
	tests := map[string]int{
		"":    1,
		"abc": 1,
		"2.5": 1,
		"3":   3,
		"-1":  -1,
		"0":   0,
	}
	for raw, want := range tests {
		if got := parsePage(raw); got != want {
			t.Errorf("parsePage(%q) = %d, want %d", raw, got, want)
		}
	}
}
