package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds relay settings for outbound mail.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	AdminEmail  string
	FrontendURL string
}

// SMTPNotifier delivers storefront emails through an SMTP relay.
type SMTPNotifier struct {
	cfg    SMTPConfig
	send   func(m *gomail.Message) error
	logger *slog.Logger
}

// NewSMTPNotifier creates SMTPNotifier with the provided relay settings.
func NewSMTPNotifier(cfg SMTPConfig, logger *slog.Logger) *SMTPNotifier {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPNotifier{
		cfg:    cfg,
		send:   func(m *gomail.Message) error { return dialer.DialAndSend(m) },
		logger: logger,
	}
}

func (n *SMTPNotifier) SendOrderOTP(ctx context.Context, email, code string) error {
	body := fmt.Sprintf(`<h2>Order verification code</h2>
<p>You have requested to place an order. Use the following code to confirm it:</p>
<h1 style="letter-spacing:5px">%s</h1>
<p><strong>This code expires in 10 minutes.</strong></p>
<p>If you didn't request it, ignore this email.</p>`, code)
	return n.deliver(email, "Verify your order", body)
}

func (n *SMTPNotifier) SendVerificationEmail(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/auth/verify?token=%s", strings.TrimRight(n.cfg.FrontendURL, "/"), token)
	body := fmt.Sprintf(`<h2>Verify your email</h2>
<p>Thanks for signing up. Confirm your address by following the link below:</p>
<p><a href="%s">%s</a></p>
<p>The link is valid for 24 hours.</p>`, link, link)
	return n.deliver(email, "Verify your email address", body)
}

func (n *SMTPNotifier) SendOrderNotification(ctx context.Context, notification OrderNotification, c Customer) error {
	var sb strings.Builder
	sb.WriteString("<h2>New order placed</h2><ul>")
	for _, item := range notification.Items {
		fmt.Fprintf(&sb, "<li>%s &times; %d @ %.2f</li>", item.Name, item.Quantity, item.Price)
	}
	fmt.Fprintf(&sb, "</ul><p>Declared total: %.2f</p>", notification.Total)
	fmt.Fprintf(&sb, "<p>Customer: %s &lt;%s&gt; %s</p>", c.Name, c.Email, c.Phone)
	fmt.Fprintf(&sb, "<p>Placed at: %s</p>", notification.OrderDate.Format("2006-01-02 15:04:05 MST"))
	return n.deliver(n.cfg.AdminEmail, "New order notification", sb.String())
}

func (n *SMTPNotifier) deliver(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := n.send(m); err != nil {
		n.logger.Error("smtp delivery failed", slog.String("to", to), slog.String("error", err.Error()))
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
