package repositories

import "KidSafe/models"

type ChildSessionRepository interface {
	FindByID(id string) (models.ChildSession, error)
	Save(session models.ChildSession) error
}
