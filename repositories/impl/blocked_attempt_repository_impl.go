package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type BlockedAttemptRepositoryImpl struct {
	DB *gorm.DB
}

func NewBlockedAttemptRepository(db *gorm.DB) repositories.BlockedAttemptRepository {
	return &BlockedAttemptRepositoryImpl{DB: db}
}

func (r *BlockedAttemptRepositoryImpl) FindByChildID(childID string, limit int) ([]models.BlockedAttempt, error) {
	var attempts []models.BlockedAttempt
	q := r.DB.Where("child_id = ?", childID).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *BlockedAttemptRepositoryImpl) Create(attempt models.BlockedAttempt) error {
	return r.DB.Create(&attempt).Error
}
