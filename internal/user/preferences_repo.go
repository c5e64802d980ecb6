package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=preferences_repo.go -destination=mock/preferences_repo_mock.go -package=mock
type PreferencesRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*Preferences, error)
	FindAvailableForMatching(ctx context.Context) ([]Preferences, error)
	FindAvailableExcluding(ctx context.Context, userID int64) ([]Preferences, error)
	FindByPreferredIndustry(ctx context.Context, industry string) ([]Preferences, error)
	FindByPreferredExperienceLevel(ctx context.Context, level ExperienceLevel) ([]Preferences, error)
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
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

func (r *preferencesRepository) FindAvailableForMatching(ctx context.Context) ([]Preferences, error) {
	var items []Preferences
	err := r.db.WithContext(ctx).Where("is_available_for_matching = ?", true).Find(&items).Error
	return items, err
}

func (r *preferencesRepository) FindAvailableExcluding(ctx context.Context, userID int64) ([]Preferences, error) {
	var items []Preferences
	err := r.db.WithContext(ctx).
		Where("is_available_for_matching = ? AND user_id <> ?", true, userID).
		Find(&items).Error
	return items, err
}

func (r *preferencesRepository) FindByPreferredIndustry(ctx context.Context, industry string) ([]Preferences, error) {
	var items []Preferences
	err := r.db.WithContext(ctx).
		Where("is_available_for_matching = ? AND preferred_industries LIKE ?", true, "%"+industry+"%").
		Find(&items).Error
	return items, err
}

func (r *preferencesRepository) FindByPreferredExperienceLevel(ctx context.Context, level ExperienceLevel) ([]Preferences, error) {
	var items []Preferences
	err := r.db.WithContext(ctx).
		Where("is_available_for_matching = ? AND preferred_experience_level = ?", true, level).
		Find(&items).Error
	return items, err
}

func (r *preferencesRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Preferences{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *preferencesRepository) Save(ctx context.Context, p *Preferences) error {
	return r.db.WithContext(ctx).Save(p).Error
}
