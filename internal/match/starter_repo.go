package match

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=starter_repo.go -destination=mock/starter_repo_mock.go -package=mock
type StarterRepository interface {
	FindActive(ctx context.Context) ([]ConversationStarter, error)
	FindByContextType(ctx context.Context, contextType ContextType) ([]ConversationStarter, error)
	FindByCategory(ctx context.Context, category string) ([]ConversationStarter, error)
	FindByTags(ctx context.Context, tag1, tag2, tag3 string) ([]ConversationStarter, error)
	FindTopByDifficulty(ctx context.Context, maxLevel, limit int) ([]ConversationStarter, error)
	FindRandom(ctx context.Context, n int) ([]ConversationStarter, error)
	FindTopByContextType(ctx context.Context, contextType ContextType, limit int) ([]ConversationStarter, error)
	IncrementUsage(ctx context.Context, ids []int64) error
}

type starterRepository struct {
	db *gorm.DB
}

func NewStarterRepository(db *gorm.DB) StarterRepository {
	return &starterRepository{db: db}
}

func (r *starterRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("is_active = ?", true)
}

func (r *starterRepository) FindActive(ctx context.Context) ([]ConversationStarter, error) {
	var out []ConversationStarter
	err := r.active(ctx).Find(&out).Error
	return out, err
}

func (r *starterRepository) FindByContextType(ctx context.Context, contextType ContextType) ([]ConversationStarter, error) {
	var out []ConversationStarter
	err := r.active(ctx).Where("context_type = ?", contextType).Find(&out).Error
	return out, err
}

func (r *starterRepository) FindByCategory(ctx context.Context, category string) ([]ConversationStarter, error) {
	var out []ConversationStarter
	err := r.active(ctx).Where("category = ?", category).Find(&out).Error
	return out, err
}

func (r *starterRepository) FindByTags(ctx context.Context, tag1, tag2, tag3 string) ([]ConversationStarter, error) {
	var out []ConversationStarter
	err := r.active(ctx).
		Where("tags LIKE ? OR tags LIKE ? OR tags LIKE ?", "%"+tag1+"%", "%"+tag2+"%", "%"+tag3+"%").
		Order("success_rate DESC, usage_count ASC").
		Find(&out).Error
	return out, err
}

func (r *starterRepository) FindTopByDifficulty(ctx context.Context, maxLevel, limit int) ([]ConversationStarter, error) {
	var out []ConversationStarter
	err := r.active(ctx).
		Where("difficulty_level <= ?", maxLevel).
		Order("success_rate DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *starterRepository) FindRandom(ctx context.Context, n int) ([]ConversationStarter, error) {
	var out []ConversationStarter
	err := r.active(ctx).Order("RANDOM()").Limit(n).Find(&out).Error
	return out, err
}

func (r *starterRepository) FindTopByContextType(ctx context.Context, contextType ContextType, limit int) ([]ConversationStarter, error) {
	var out []ConversationStarter
	err := r.active(ctx).
		Where("context_type = ?", contextType).
		Order("success_rate DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *starterRepository) IncrementUsage(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&ConversationStarter{}).
		Where("id IN ?", ids).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}
