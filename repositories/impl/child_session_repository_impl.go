package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type ChildSessionRepositoryImpl struct {
	DB *gorm.DB
}

func NewChildSessionRepository(db *gorm.DB) repositories.ChildSessionRepository {
	return &ChildSessionRepositoryImpl{DB: db}
}

func (r *ChildSessionRepositoryImpl) FindByID(id string) (models.ChildSession, error) {
	var session models.ChildSession
	if err := r.DB.Where("id = ?", id).First(&session).Error; err != nil {
		return models.ChildSession{}, err
	}
	return session, nil
}

func (r *ChildSessionRepositoryImpl) Save(session models.ChildSession) error {
	return r.DB.Save(&session).Error
}
