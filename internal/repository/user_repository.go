package repository

import (
	"github.com/hamzahq/turath/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Upsert(user *model.User) error
	FindByExternalID(externalID string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Upsert inserts the user or, when a record with the same external id already
// exists, refreshes its email and username. Atomic: concurrent first syncs of
// the same identity cannot produce duplicates.
func (r *userRepository) Upsert(user *model.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "username", "updated_at"}),
	}).Create(user).Error
}

func (r *userRepository) FindByExternalID(externalID string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("external_id = ?", externalID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
