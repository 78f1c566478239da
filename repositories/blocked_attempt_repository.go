package repositories

import "KidSafe/models"

type BlockedAttemptRepository interface {
	FindByChildID(childID string, limit int) ([]models.BlockedAttempt, error)
	Create(attempt models.BlockedAttempt) error
}
