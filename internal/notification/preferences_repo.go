package notification

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=preferences_repo.go -destination=mock/preferences_repo_mock.go -package=mock
type PreferencesRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*Preferences, error)
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
	DeleteByUserID(ctx context.Context, userID int64) error
	Save(ctx context.Context, p *Preferences) error
}

type preferencesRepository struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) FindByUserID(ctx context.Context, userID int64) (*Preferences, error) {
	var p Preferences
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *preferencesRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Preferences{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *preferencesRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&Preferences{}).Error
}

func (r *preferencesRepository) Save(ctx context.Context, p *Preferences) error {
	return r.db.WithContext(ctx).Save(p).Error
}
