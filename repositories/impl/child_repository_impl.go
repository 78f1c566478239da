package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type ChildRepositoryImpl struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) repositories.ChildRepository {
	return &ChildRepositoryImpl{DB: db}
}

func (r *ChildRepositoryImpl) FindByID(id string) (models.Child, error) {
	var child models.Child
	if err := r.DB.Where("id = ?", id).First(&child).Error; err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) FindByParentID(parentID string) ([]models.Child, error) {
	var children []models.Child
	if err := r.DB.Where("parent_id = ?", parentID).Order("created_at asc").Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (r *ChildRepositoryImpl) Save(child models.Child) error {
	return r.DB.Save(&child).Error
}

func (r *ChildRepositoryImpl) Delete(child models.Child) error {
	return r.DB.Delete(&child).Error
}
