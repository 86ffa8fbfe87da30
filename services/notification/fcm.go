package notification

import (
	"context"
	"fmt"

	userRepo "priisme/database/repository/user"
	"priisme/models"
	"priisme/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// FCMNotificationService is the production implementation. It looks up the
// identity's device token and sends a push through Firebase Cloud Messaging.
type FCMNotificationService struct {
	users  userRepo.UserRepository
	logger *zap.Logger
}

// NewFCMNotificationService builds the FCM-backed notifier.
func NewFCMNotificationService(users userRepo.UserRepository, logger *zap.Logger) (*FCMNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &FCMNotificationService{users: users, logger: logger}, nil
}

// Notify sends a push to the user's registered device. A missing token or a
// send failure is logged and reported back, but callers treat the whole
// surface as fire-and-forget.
func (s *FCMNotificationService) Notify(ctx context.Context, userID string, n models.Notification) error {
	if utils.FCMClient == nil {
		s.logger.Debug("fcm client not initialized, dropping notification",
			zap.String("user", userID), zap.String("title", n.Title))
		return nil
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("notification lookup failed", zap.String("user", userID), zap.Error(err))
		return fmt.Errorf("could not find device record for user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		s.logger.Debug("user has no device token", zap.String("user", userID))
		return fmt.Errorf("user %s has no FCM token", userID)
	}

	data := map[string]string{"variant": string(n.Variant)}
	for k, v := range n.Data {
		data[k] = v
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Description,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		s.logger.Warn("fcm send failed", zap.String("user", userID), zap.Error(err))
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
