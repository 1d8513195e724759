package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestToHTMLHeadingsAndEmphasis(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"# Title", `<h1 id="title">Title</h1>`},
		{"**bold**", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"`code`", "<code>code</code>"},
		{"- one\n- two", "<li>one</li>"},
	}
	for _, tt := range tests {
		got := ToHTML(tt.input)
		if !strings.Contains(got, tt.contains) {
			t.Errorf("ToHTML(%q) = %q, want it to contain %q", tt.input, got, tt.contains)
		}
	}
}

func TestToHTMLStripsScripts(t *testing.T) {
	got := ToHTML("hello <script>alert(1)</script> <img src=x onerror=alert(1)>")
	if strings.Contains(got, "<script") {
		t.Errorf("script tag survived: %q", got)
	}
	if strings.Contains(got, "onerror") {
		t.Errorf("event handler survived: %q", got)
	}
}

func TestToHTMLKeepsSafeInlineHTML(t *testing.T) {
	got := ToHTML(`<p>An <em>inline</em> paragraph</p>`)
	if !strings.Contains(got, "<em>inline</em>") {
		t.Errorf("inline HTML was dropped: %q", got)
	}
}

func TestToHTMLJavascriptLink(t *testing.T) {
	got := ToHTML("[click](javascript:alert(1))")
	if strings.Contains(got, "javascript:") {
		t.Errorf("javascript URL survived: %q", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("Hello **world**").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "<strong>world</strong>") {
		t.Errorf("got %q", buf.String())
	}
}

func TestExcerpt(t *testing.T) {
	got := Excerpt("# Heading\n\nSome **long** text here", 12)
	if got != "Heading Some…" {
		t.Errorf("Excerpt = %q, want %q", got, "Heading Some…")
	}
	if got := Excerpt("short", 50); got != "short" {
		t.Errorf("Excerpt = %q, want %q", got, "short")
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/uploads/a.png", "/uploads/a.png"},
		{"https://example.com", "https://example.com"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"javascript:alert(1)", ""},
		{"data:text/html,hi", ""},
		{"relative.png", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
