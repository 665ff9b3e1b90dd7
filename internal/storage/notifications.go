package storage

import (
	"github.com/rajputarjun2947-afk/Vocano/internal/events"
	"github.com/rajputarjun2947-afk/Vocano/internal/kvstore"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
)

func (s *Store) Notifications(userID string) []models.Notification {
	return kvstore.Load[models.Notification](s.kv, notificationsKey(userID))
}

func (s *Store) AddNotification(n models.Notification) {
	kvstore.Prepend(s.kv, notificationsKey(n.UserID), n)
	s.publish(events.TopicNotifications)
}

func (s *Store) MarkNotificationRead(userID, notificationID string) {
	items := s.Notifications(userID)
	for i := range items {
		if items[i].ID == notificationID {
			items[i].Read = true
			kvstore.Save(s.kv, notificationsKey(userID), items)
			s.publish(events.TopicNotifications)
			return
		}
	}
}
