package user

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*PreferenceProfile, error)
	FindByExperienceLevel(ctx context.Context, level ProfileLevel) ([]PreferenceProfile, error)
	FindByCommunicationStyle(ctx context.Context, style CommunicationStyle) ([]PreferenceProfile, error)
	FindOutdated(ctx context.Context, threshold time.Time) ([]PreferenceProfile, error)
	FindByUserIDs(ctx context.Context, userIDs []int64) ([]PreferenceProfile, error)
	CountByExperienceLevel(ctx context.Context, level ProfileLevel) (int64, error)
	Save(ctx context.Context, p *PreferenceProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID int64) (*PreferenceProfile, error) {
	var p PreferenceProfile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) FindByExperienceLevel(ctx context.Context, level ProfileLevel) ([]PreferenceProfile, error) {
	var items []PreferenceProfile
	err := r.db.WithContext(ctx).Where("experience_level = ?", level).Find(&items).Error
	return items, err
}

func (r *profileRepository) FindByCommunicationStyle(ctx context.Context, style CommunicationStyle) ([]PreferenceProfile, error) {
	var items []PreferenceProfile
	err := r.db.WithContext(ctx).Where("communication_style = ?", style).Find(&items).Error
	return items, err
}

func (r *profileRepository) FindOutdated(ctx context.Context, threshold time.Time) ([]PreferenceProfile, error) {
	var items []PreferenceProfile
	err := r.db.WithContext(ctx).Where("last_updated < ?", threshold).Find(&items).Error
	return items, err
}

func (r *profileRepository) FindByUserIDs(ctx context.Context, userIDs []int64) ([]PreferenceProfile, error) {
	items := make([]PreferenceProfile, 0)
	if len(userIDs) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&items).Error
	return items, err
}

func (r *profileRepository) CountByExperienceLevel(ctx context.Context, level ProfileLevel) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PreferenceProfile{}).Where("experience_level = ?", level).Count(&count).Error
	return count, err
}

func (r *profileRepository) Save(ctx context.Context, p *PreferenceProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}
