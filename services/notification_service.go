package services

import (
	"context"
	"errors"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService sends push notifications through Firebase Cloud
// Messaging. The client may be nil (no credentials configured), in which
// case sends report an error the caller is expected to log and swallow.
type NotificationService struct {
	FCMClient *messaging.Client
	Logger    *zap.Logger
}

func NewNotificationService(client *messaging.Client, logger *zap.Logger) *NotificationService {
	return &NotificationService{FCMClient: client, Logger: logger}
}

func (s *NotificationService) SendPush(token, title, body string, data map[string]string) error {
	if s.FCMClient == nil {
		return errors.New("push disabled: no FCM client configured")
	}
	if token == "" {
		return errors.New("device token is empty")
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  data,
		Token: token,
	}

	id, err := s.FCMClient.Send(context.Background(), message)
	if err != nil {
		return err
	}
	s.Logger.Debug("push notification sent", zap.String("message_id", id))
	return nil
}
