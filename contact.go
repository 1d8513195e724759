package pressroom

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pressroom/pressroom/mail"
)

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact(a.site(c)))
}

// handleContactSubmit stores the message first; the notification is best
// effort and its failure never reaches the visitor.
func (a *App) handleContactSubmit(c echo.Context) error {
	f := trimmedForm(c.FormValue, "name", "email", "phone", "msg")
	msg := ContactMessage{
		Name:    f["name"],
		Email:   f["email"],
		Phone:   f["phone"],
		Message: f["msg"],
	}
	ctx := c.Request().Context()
	if err := a.Store.CreateContact(ctx, &msg); err != nil {
		return err
	}

	if a.notifier != nil && a.Config.MailEnabled() {
		if err := a.notifier.Send(ctx, contactNotification(a.Config.MailUser, msg)); err != nil {
			a.logger.Warn("mail send failed", zap.Uint("contact_id", msg.ID), zap.Error(err))
		}
	}

	return redirectWithFlash(c, "/contact", "success", "Thanks! Your message has been sent.")
}

// contactNotification addresses the site owner about msg. Replies go to the
// visitor when they left an address.
func contactNotification(owner string, msg ContactMessage) mail.Message {
	return mail.Message{
		From:    owner,
		ReplyTo: msg.Email,
		To:      []string{owner},
		Subject: "New Message from " + msg.Name,
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s",
			msg.Name, msg.Email, msg.Phone, msg.Message),
	}
}
