// Package email sends ticket notifications over SMTP using gomail.
package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"jellyfix/internal/shared/config"
	"jellyfix/internal/shared/i18n"
	"jellyfix/internal/shared/logger"
)

// sendTimeout bounds a single delivery attempt so a dead SMTP host
// cannot hold background work forever.
const sendTimeout = 30 * time.Second

// TicketNotifier sends a localized email when a ticket is created.
// Delivery is strictly best-effort: every failure is logged and
// swallowed, and an unconfigured SMTP account turns Notify into a no-op.
type TicketNotifier struct {
	cfg     config.EmailConfig
	texts   i18n.Bundle
	dialer  *gomail.Dialer
	send    func(m ...*gomail.Message) error
	timeout time.Duration
	logger  logger.Interface
}

func NewTicketNotifier(cfg config.EmailConfig, texts i18n.Bundle, log logger.Interface) *TicketNotifier {
	// gomail picks implicit TLS when the port is 465 and upgrades via
	// STARTTLS on every other port.
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &TicketNotifier{
		cfg:     cfg,
		texts:   texts,
		dialer:  dialer,
		send:    dialer.DialAndSend,
		timeout: sendTimeout,
		logger:  log,
	}
}

// NotifyTicketCreated formats and sends the new-ticket email. It never
// returns an error; the ticket is already committed and its creation
// must not be affected by mail problems.
func (n *TicketNotifier) NotifyTicketCreated(ticketID uint, itemName, issueType, message, user string) {
	if !n.cfg.Enabled() {
		n.logger.Infow("email not configured, skipping notification", "ticket_id", ticketID)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.FromAddress)
	m.SetHeader("To", n.cfg.ToAddress)
	m.SetHeader("Subject", fmt.Sprintf(n.texts.EmailSubject, ticketID, itemName))
	m.SetBody("text/html", n.buildBody(itemName, issueType, message, user))

	n.logger.Debugw("connecting to SMTP server",
		"host", n.cfg.SMTPHost,
		"port", n.cfg.SMTPPort,
	)

	done := make(chan error, 1)
	go func() {
		done <- n.send(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			n.logger.Errorw("failed to send ticket notification",
				"ticket_id", ticketID,
				"error", err,
			)
			return
		}
		n.logger.Infow("ticket notification sent", "ticket_id", ticketID)
	case <-time.After(n.timeout):
		// The send goroutine is abandoned and may still deliver after
		// this point.
		n.logger.Warnw("ticket notification timed out, abandoned attempt may still deliver",
			"ticket_id", ticketID,
			"timeout", n.timeout,
		)
	}
}

func (n *TicketNotifier) buildBody(itemName, issueType, message, user string) string {
	return fmt.Sprintf(`
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <div style="background-color: #00a4dc; color: white; padding: 10px;">
      <h2 style="margin:0;">%s</h2>
    </div>
    <div style="padding: 20px; border: 1px solid #ddd;">
      <p><strong>👤 %s :</strong> %s</p>
      <p><strong>🎬 %s :</strong> %s</p>
      <p><strong>⚠️ %s :</strong> %s</p>
      <p><strong>💬 %s :</strong><br>"%s"</p>
      <hr>
      <p>%s</p>
    </div>
  </body>
</html>`,
		n.texts.EmailTitle,
		n.texts.EmailUser, user,
		n.texts.EmailMedia, itemName,
		n.texts.EmailIssue, issueType,
		n.texts.EmailMsg, message,
		n.texts.EmailFooter,
	)
}
