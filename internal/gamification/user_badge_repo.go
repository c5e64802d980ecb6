package gamification

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_badge_repo.go -destination=mock/user_badge_repo_mock.go -package=mock
type UserBadgeRepository interface {
	WithTx(tx *gorm.DB) UserBadgeRepository
	Create(ctx context.Context, ub *UserBadge) error
	FindByUser(ctx context.Context, userID int64) ([]UserBadge, error)
	FindByUserWithBadge(ctx context.Context, userID int64) ([]UserBadge, error)
	FindDisplayedWithBadge(ctx context.Context, userID int64) ([]UserBadge, error)
	FindByUserAndBadge(ctx context.Context, userID, badgeID int64) (*UserBadge, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	FindUnnotified(ctx context.Context, userID int64) ([]UserBadge, error)
	ExistsByUserAndBadge(ctx context.Context, userID, badgeID int64) (bool, error)
	MarkNotified(ctx context.Context, userID int64) (int64, error)
}

type userBadgeRepository struct {
	db *gorm.DB
}

func NewUserBadgeRepository(db *gorm.DB) UserBadgeRepository {
	return &userBadgeRepository{db: db}
}

func (r *userBadgeRepository) WithTx(tx *gorm.DB) UserBadgeRepository {
	return &userBadgeRepository{db: tx}
}

func (r *userBadgeRepository) Create(ctx context.Context, ub *UserBadge) error {
	return r.db.WithContext(ctx).Omit("Badge").Create(ub).Error
}

func (r *userBadgeRepository) FindByUser(ctx context.Context, userID int64) ([]UserBadge, error) {
	var items []UserBadge
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// FindByUserWithBadge returns the user's badges newest first, badge loaded.
func (r *userBadgeRepository) FindByUserWithBadge(ctx context.Context, userID int64) ([]UserBadge, error) {
	var items []UserBadge
	err := r.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&items).Error
	return items, err
}

func (r *userBadgeRepository) FindDisplayedWithBadge(ctx context.Context, userID int64) ([]UserBadge, error) {
	var items []UserBadge
	err := r.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ? AND is_displayed = ?", userID, true).
		Order("earned_at DESC").
		Find(&items).Error
	return items, err
}

func (r *userBadgeRepository) FindByUserAndBadge(ctx context.Context, userID, badgeID int64) (*UserBadge, error) {
	var ub UserBadge
	if err := r.db.WithContext(ctx).First(&ub, "user_id = ? AND badge_id = ?", userID, badgeID).Error; err != nil {
		return nil, err
	}
	return &ub, nil
}

func (r *userBadgeRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserBadge{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userBadgeRepository) FindUnnotified(ctx context.Context, userID int64) ([]UserBadge, error) {
	var items []UserBadge
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND notification_sent = ?", userID, false).
		Find(&items).Error
	return items, err
}

func (r *userBadgeRepository) ExistsByUserAndBadge(ctx context.Context, userID, badgeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserBadge{}).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Count(&count).Error
	return count > 0, err
}

func (r *userBadgeRepository) MarkNotified(ctx context.Context, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&UserBadge{}).
		Where("user_id = ? AND notification_sent = ?", userID, false).
		Update("notification_sent", true)
	return res.RowsAffected, res.Error
}
