package match

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=chat_repo.go -destination=mock/chat_repo_mock.go -package=mock
type ChatRepository interface {
	WithTx(tx *gorm.DB) ChatRepository
	Create(ctx context.Context, c *ChatHistory) error
	FindByMatch(ctx context.Context, matchID int64) ([]ChatHistory, error)
	FindByMatchBetween(ctx context.Context, matchID int64, from, to time.Time) ([]ChatHistory, error)
	FindTextByMatch(ctx context.Context, matchID int64) ([]ChatHistory, error)
	FindSystemByMatch(ctx context.Context, matchID int64) ([]ChatHistory, error)
	FindByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]ChatHistory, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) WithTx(tx *gorm.DB) ChatRepository {
	return &chatRepository{db: tx}
}

func (r *chatRepository) Create(ctx context.Context, c *ChatHistory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *chatRepository) FindByMatch(ctx context.Context, matchID int64) ([]ChatHistory, error) {
	var out []ChatHistory
	err := r.db.WithContext(ctx).Where("match_id = ?", matchID).Order("timestamp ASC").Find(&out).Error
	return out, err
}

func (r *chatRepository) FindByMatchBetween(ctx context.Context, matchID int64, from, to time.Time) ([]ChatHistory, error) {
	var out []ChatHistory
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND timestamp BETWEEN ? AND ?", matchID, from, to).
		Order("timestamp ASC").
		Find(&out).Error
	return out, err
}

func (r *chatRepository) FindTextByMatch(ctx context.Context, matchID int64) ([]ChatHistory, error) {
	var out []ChatHistory
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND message_type = ?", matchID, ChatText).
		Order("timestamp ASC").
		Find(&out).Error
	return out, err
}

func (r *chatRepository) FindSystemByMatch(ctx context.Context, matchID int64) ([]ChatHistory, error) {
	var out []ChatHistory
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND is_system_message = ?", matchID, true).
		Order("timestamp ASC").
		Find(&out).Error
	return out, err
}

func (r *chatRepository) FindByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]ChatHistory, error) {
	var out []ChatHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp BETWEEN ? AND ?", userID, from, to).
		Order("timestamp DESC").
		Find(&out).Error
	return out, err
}
