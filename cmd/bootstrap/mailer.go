package bootstrap

import (
	"context"
	"log/slog"

	"eventlink/internal/notification"
	"eventlink/internal/pkg/config"
	"eventlink/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config, logger *slog.Logger) (commands.AccessCodeNotifier, error) {
	return notification.NewMailer(context.Background(), cfg.Mail, logger)
}
