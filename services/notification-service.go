package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mdmasudrana9/mpms-dashboard-service/logging"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

const notificationFeedLimit = 100

// NotificationService keeps the user-visible message feed the gateway and
// handlers emit into. The feed lives in process memory for the service's
// lifetime; the newest notification comes first and the feed is capped so
// it cannot grow without bound. It satisfies gateway.Notifier.
type NotificationService struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// Notify appends a message to the feed.
func (s *NotificationService) Notify(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := models.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		CreatedAt: time.Now(),
	}
	s.notifications = append([]models.Notification{n}, s.notifications...)
	if len(s.notifications) > notificationFeedLimit {
		s.notifications = s.notifications[:notificationFeedLimit]
	}

	logging.Logger.Infof("Event ID: NOTIFICATION_EMITTED, Description: %s", message)
}

// GetAll returns the feed, newest first.
func (s *NotificationService) GetAll() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// MarkRead flags one notification as read. It reports whether the
// notification exists.
func (s *NotificationService) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return true
		}
	}
	return false
}
