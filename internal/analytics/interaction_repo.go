package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=interaction_repo.go -destination=mock/interaction_repo_mock.go -package=mock
type InteractionRepository interface {
	Create(ctx context.Context, interaction *Interaction) error
	FindByUser(ctx context.Context, userID int64) ([]Interaction, error)
	FindByUserAndType(ctx context.Context, userID int64, interactionType InteractionType) ([]Interaction, error)
	FindByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]Interaction, error)
	FindRecent(ctx context.Context, userID int64, since time.Time) ([]Interaction, error)
	TopInteractionValues(ctx context.Context, userID int64, interactionType InteractionType, limit int) ([]ValueCount, error)
	FindBetweenUsers(ctx context.Context, userID, targetUserID int64) ([]Interaction, error)
	CountSince(ctx context.Context, userID int64, interactionType InteractionType, since time.Time) (int64, error)
	CountAllBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *interactionRepository) FindByUser(ctx context.Context, userID int64) ([]Interaction, error) {
	var out []Interaction
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *interactionRepository) FindByUserAndType(ctx context.Context, userID int64, interactionType InteractionType) ([]Interaction, error) {
	var out []Interaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND interaction_type = ?", userID, interactionType).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *interactionRepository) FindByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]Interaction, error) {
	var out []Interaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, from, to).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *interactionRepository) FindRecent(ctx context.Context, userID int64, since time.Time) ([]Interaction, error) {
	var out []Interaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *interactionRepository) TopInteractionValues(ctx context.Context, userID int64, interactionType InteractionType, limit int) ([]ValueCount, error) {
	var out []ValueCount
	err := r.db.WithContext(ctx).Model(&Interaction{}).
		Select("interaction_value AS value, COUNT(*) AS total").
		Where("user_id = ? AND interaction_type = ?", userID, interactionType).
		Group("interaction_value").
		Order("total DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *interactionRepository) FindBetweenUsers(ctx context.Context, userID, targetUserID int64) ([]Interaction, error) {
	var out []Interaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND target_user_id = ?", userID, targetUserID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *interactionRepository) CountSince(ctx context.Context, userID int64, interactionType InteractionType, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Interaction{}).
		Where("user_id = ? AND interaction_type = ? AND created_at >= ?", userID, interactionType, since).
		Count(&count).Error
	return count, err
}

func (r *interactionRepository) CountAllBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Interaction{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}
