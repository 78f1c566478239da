package repositories

import "KidSafe/models"

type ParentRepository interface {
	FindByID(id string) (models.Parent, error)
	FindByEmail(email string) (models.Parent, error)
	CountByEmail(email string, count *int64) error
	Save(parent models.Parent) error
	DeleteByID(id string) error
}
