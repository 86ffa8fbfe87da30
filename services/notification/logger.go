package notification

import (
	"context"

	"priisme/models"

	"go.uber.org/zap"
)

// LogNotificationService writes notices to the structured log instead of a
// push channel. Used in development and as the fallback when Firebase is not
// configured.
type LogNotificationService struct {
	logger *zap.Logger
}

func NewLogNotificationService(logger *zap.Logger) *LogNotificationService {
	return &LogNotificationService{logger: logger}
}

func (s *LogNotificationService) Notify(_ context.Context, userID string, n models.Notification) error {
	fields := []zap.Field{
		zap.String("user", userID),
		zap.String("title", n.Title),
		zap.String("description", n.Description),
	}
	if n.Variant == models.VariantDestructive {
		s.logger.Warn("notification", fields...)
	} else {
		s.logger.Info("notification", fields...)
	}
	return nil
}
