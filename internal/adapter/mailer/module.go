package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/lodgemart/lodgemart/internal/config"
)

// Module exposes the notifier implementation to the fx graph.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) Notifier {
	if p.Config.SMTPHost == "" {
		p.Logger.Warn("smtp host not configured, emails will only be logged")
		return NewLogNotifier(p.Logger)
	}
	return NewSMTPNotifier(SMTPConfig{
		Host:        p.Config.SMTPHost,
		Port:        p.Config.SMTPPort,
		Username:    p.Config.SMTPUsername,
		Password:    p.Config.SMTPPassword,
		From:        p.Config.EmailFrom,
		AdminEmail:  p.Config.AdminEmail,
		FrontendURL: p.Config.FrontendURL,
	}, p.Logger)
}
