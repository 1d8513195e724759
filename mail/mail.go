// Package mail sends plain-text notification emails over SMTP.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Config holds SMTP account settings.
type Config struct {
	Host string
	Port int
	User string
	Pass string
}

// Message is a single email to send.
type Message struct {
	From    string
	ReplyTo string
	To      []string
	Subject string
	Text    string
}

// Sender delivers messages through one SMTP account.
type Sender struct {
	cfg Config
}

func New(cfg Config) *Sender {
	if cfg.Port == 0 {
		cfg.Port = 465
	}
	return &Sender{cfg: cfg}
}

// Send delivers msg. Port 465 uses implicit TLS; any other port goes through
// smtp.SendMail, which upgrades with STARTTLS when the server offers it.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("mail: no recipients")
	}
	from := msg.From
	if from == "" {
		from = s.cfg.User
	}
	body := Build(from, msg)
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)

	if s.cfg.Port != 465 {
		return smtp.SendMail(addr, auth, from, msg.To, body)
	}
	return s.sendTLS(ctx, addr, auth, from, msg.To, body)
}

func (s *Sender) sendTLS(ctx context.Context, addr string, auth smtp.Auth, from string, to []string, body []byte) error {
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: 15 * time.Second},
		Config:    &tls.Config{ServerName: s.cfg.Host},
	}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("mail: dial %s: %w", addr, err)
	}
	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("mail: handshake: %w", err)
	}
	defer c.Close()

	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("mail: auth: %w", err)
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// Build renders msg as an RFC 5322 message with CRLF line endings.
func Build(from string, msg Message) []byte {
	var b bytes.Buffer
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", stripCRLF(msg.ReplyTo))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", stripCRLF(msg.Subject)))
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	text := strings.ReplaceAll(msg.Text, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(text, "\n", "\r\n"))
	return b.Bytes()
}

// stripCRLF keeps user-supplied header values on one line.
func stripCRLF(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
