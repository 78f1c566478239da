package repositories

import "KidSafe/models"

type ChildRepository interface {
	FindByID(id string) (models.Child, error)
	FindByParentID(parentID string) ([]models.Child, error)
	Save(child models.Child) error
	Delete(child models.Child) error
}
