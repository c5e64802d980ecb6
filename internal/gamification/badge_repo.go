package gamification

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=badge_repo.go -destination=mock/badge_repo_mock.go -package=mock
type BadgeRepository interface {
	FindByID(ctx context.Context, id int64) (*Badge, error)
	FindActive(ctx context.Context) ([]Badge, error)
	FindByType(ctx context.Context, t BadgeType) ([]Badge, error)
	FindByCategory(ctx context.Context, c BadgeCategory) ([]Badge, error)
	FindActiveByType(ctx context.Context, t BadgeType) ([]Badge, error)
	FindActiveByCategory(ctx context.Context, c BadgeCategory) ([]Badge, error)
	FindActiveByRarity(ctx context.Context, rarity int) ([]Badge, error)
	FindAllActiveByRarity(ctx context.Context) ([]Badge, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) FindByID(ctx context.Context, id int64) (*Badge, error) {
	var b Badge
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *badgeRepository) FindActive(ctx context.Context) ([]Badge, error) {
	var badges []Badge
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id ASC").Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) FindByType(ctx context.Context, t BadgeType) ([]Badge, error) {
	var badges []Badge
	err := r.db.WithContext(ctx).Where("badge_type = ?", t).Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) FindByCategory(ctx context.Context, c BadgeCategory) ([]Badge, error) {
	var badges []Badge
	err := r.db.WithContext(ctx).Where("badge_category = ?", c).Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) FindActiveByType(ctx context.Context, t BadgeType) ([]Badge, error) {
	var badges []Badge
	err := r.db.WithContext(ctx).Where("is_active = ? AND badge_type = ?", true, t).Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) FindActiveByCategory(ctx context.Context, c BadgeCategory) ([]Badge, error) {
	var badges []Badge
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND badge_category = ?", true, c).
		Order("required_count ASC").
		Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) FindActiveByRarity(ctx context.Context, rarity int) ([]Badge, error) {
	var badges []Badge
	err := r.db.WithContext(ctx).Where("is_active = ? AND rarity_level = ?", true, rarity).Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) FindAllActiveByRarity(ctx context.Context) ([]Badge, error) {
	var badges []Badge
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("rarity_level DESC, name ASC").
		Find(&badges).Error
	return badges, err
}
