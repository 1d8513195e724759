package mail

import (
	"context"
	"strings"
	"testing"
)

func TestBuildHeaders(t *testing.T) {
	body := string(Build("blog@example.com", Message{
		ReplyTo: "ann@example.com",
		To:      []string{"blog@example.com"},
		Subject: "New Message from Ann",
		Text:    "Name: Ann\n\nMessage:\nhi",
	}))

	for _, want := range []string{
		"From: blog@example.com\r\n",
		"To: blog@example.com\r\n",
		"Reply-To: ann@example.com\r\n",
		"Subject: New Message from Ann\r\n",
		"\r\n\r\nName: Ann\r\n\r\nMessage:\r\nhi",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("message missing %q:\n%s", want, body)
		}
	}
}

func TestBuildStripsHeaderInjection(t *testing.T) {
	body := string(Build("blog@example.com", Message{
		ReplyTo: "x@example.com\r\nBcc: victim@example.com",
		To:      []string{"blog@example.com"},
		Subject: "hi\nBcc: victim@example.com",
	}))
	if strings.Contains(body, "\r\nBcc:") || strings.Contains(body, "\nBcc:") {
		t.Fatalf("header injection survived:\n%s", body)
	}
}

func TestBuildOmitsEmptyReplyTo(t *testing.T) {
	body := string(Build("blog@example.com", Message{To: []string{"a@example.com"}, Subject: "s"}))
	if strings.Contains(body, "Reply-To") {
		t.Errorf("unexpected Reply-To header:\n%s", body)
	}
}

func TestSendWithoutRecipients(t *testing.T) {
	s := New(Config{Host: "localhost", User: "u", Pass: "p"})
	if err := s.Send(context.Background(), Message{Subject: "s"}); err == nil {
		t.Fatal("expected error for message without recipients")
	}
}
