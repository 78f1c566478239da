package repositories

import "KidSafe/models"

type AlertRepository interface {
	FindByID(id string) (models.Alert, error)
	// FindByParentID returns alerts newest first.
	FindByParentID(parentID string, unreadOnly bool) ([]models.Alert, error)
	Save(alert models.Alert) error
	MarkAllRead(parentID string) error
}
