// store/gorm.go
package store

import (
	"gorm.io/gorm"

	"herodle/models"
)

// GormCollectionStore backs the repository with Postgres, for deployments
// that want collections to outlive the process. Selected with
// COLLECTION_BACKEND=postgres; the orchestrator's contract is unchanged.
type GormCollectionStore struct {
	db *gorm.DB
}

func NewGormCollectionStore(db *gorm.DB) *GormCollectionStore {
	return &GormCollectionStore{db: db}
}

func (s *GormCollectionStore) Append(userKey string, card models.CardInstance) error {
	var count int64
	if err := s.db.Model(&models.CardInstance{}).Where("user_key = ?", userKey).Count(&count).Error; err != nil {
		return err
	}

	card.UserKey = userKey
	card.Position = int(count)
	return s.db.Create(&card).Error
}

func (s *GormCollectionStore) Snapshot(userKey string) ([]models.CardInstance, error) {
	var cards []models.CardInstance
	err := s.db.Where("user_key = ?", userKey).Order("position ASC").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}
