package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"kollegebot/internal/service"
)

// Interaction creates middleware that creates the user record on first
// contact and logs every inbound event
func Interaction(users *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if err := users.EnsureExists(sender.ID); err != nil {
				logger.Error("failed to ensure user exists",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
			}

			interaction := c.Text()
			if callback := c.Callback(); callback != nil {
				interaction = callback.Data
			}

			logger.Info("user interaction",
				zap.Int64("user_id", sender.ID),
				zap.String("username", sender.Username),
				zap.String("interaction", interaction),
			)

			return next(c)
		}
	}
}
