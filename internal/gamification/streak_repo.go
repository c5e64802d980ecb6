package gamification

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=streak_repo.go -destination=mock/streak_repo_mock.go -package=mock
type StreakRepository interface {
	WithTx(tx *gorm.DB) StreakRepository
	FindByUser(ctx context.Context, userID int64) ([]UserStreak, error)
	FindByUserAndType(ctx context.Context, userID int64, t StreakType) (*UserStreak, error)
	FindActive(ctx context.Context, userID int64) ([]UserStreak, error)
	FindByBestAtLeast(ctx context.Context, minCount int) ([]UserStreak, error)
	FindTopByType(ctx context.Context, t StreakType, limit int) ([]UserStreak, error)
	CountActive(ctx context.Context, userID int64) (int64, error)
	Save(ctx context.Context, s *UserStreak) error
}

type streakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) StreakRepository {
	return &streakRepository{db: db}
}

func (r *streakRepository) WithTx(tx *gorm.DB) StreakRepository {
	return &streakRepository{db: tx}
}

func (r *streakRepository) FindByUser(ctx context.Context, userID int64) ([]UserStreak, error) {
	var items []UserStreak
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

func (r *streakRepository) FindByUserAndType(ctx context.Context, userID int64, t StreakType) (*UserStreak, error) {
	var s UserStreak
	if err := r.db.WithContext(ctx).First(&s, "user_id = ? AND streak_type = ?", userID, t).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *streakRepository) FindActive(ctx context.Context, userID int64) ([]UserStreak, error) {
	var items []UserStreak
	err := r.db.WithContext(ctx).Where("user_id = ? AND current_count > 0", userID).Find(&items).Error
	return items, err
}

func (r *streakRepository) FindByBestAtLeast(ctx context.Context, minCount int) ([]UserStreak, error) {
	var items []UserStreak
	err := r.db.WithContext(ctx).Where("best_count >= ?", minCount).Find(&items).Error
	return items, err
}

func (r *streakRepository) FindTopByType(ctx context.Context, t StreakType, limit int) ([]UserStreak, error) {
	var items []UserStreak
	err := r.db.WithContext(ctx).
		Where("streak_type = ?", t).
		Order("current_count DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *streakRepository) CountActive(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserStreak{}).
		Where("user_id = ? AND current_count > 0", userID).
		Count(&count).Error
	return count, err
}

func (r *streakRepository) Save(ctx context.Context, s *UserStreak) error {
	return r.db.WithContext(ctx).Save(s).Error
}
