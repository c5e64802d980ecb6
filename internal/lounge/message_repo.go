package lounge

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=message_repo.go -destination=mock/message_repo_mock.go -package=mock
type MessageRepository interface {
	WithTx(tx *gorm.DB) MessageRepository
	Create(ctx context.Context, m *Message) error
	FindByLounge(ctx context.Context, loungeID int64) ([]Message, error)
	FindSince(ctx context.Context, loungeID int64, since time.Time) ([]Message, error)
	FindRecent(ctx context.Context, loungeID int64, limit int) ([]Message, error)
	FindByUser(ctx context.Context, userID int64) ([]Message, error)
	FindTextMessages(ctx context.Context, loungeID int64) ([]Message, error)
	FindSystemMessages(ctx context.Context, loungeID int64) ([]Message, error)
	FindReplies(ctx context.Context, messageID int64) ([]Message, error)
	CountByLounge(ctx context.Context, loungeID int64) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) WithTx(tx *gorm.DB) MessageRepository {
	return &messageRepository{db: tx}
}

func (r *messageRepository) Create(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepository) visible(ctx context.Context, loungeID int64) *gorm.DB {
	return r.db.WithContext(ctx).Where("lounge_id = ? AND is_deleted = ?", loungeID, false)
}

func (r *messageRepository) FindByLounge(ctx context.Context, loungeID int64) ([]Message, error) {
	var out []Message
	err := r.visible(ctx, loungeID).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *messageRepository) FindSince(ctx context.Context, loungeID int64, since time.Time) ([]Message, error) {
	var out []Message
	err := r.visible(ctx, loungeID).Where("created_at > ?", since).Order("created_at ASC").Find(&out).Error
	return out, err
}

// FindRecent returns the newest messages first.
func (r *messageRepository) FindRecent(ctx context.Context, loungeID int64, limit int) ([]Message, error) {
	var out []Message
	err := r.visible(ctx, loungeID).Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *messageRepository) FindByUser(ctx context.Context, userID int64) ([]Message, error) {
	var out []Message
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *messageRepository) FindTextMessages(ctx context.Context, loungeID int64) ([]Message, error) {
	var out []Message
	err := r.visible(ctx, loungeID).Where("message_type = ?", MessageText).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *messageRepository) FindSystemMessages(ctx context.Context, loungeID int64) ([]Message, error) {
	var out []Message
	err := r.visible(ctx, loungeID).Where("message_type <> ?", MessageText).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *messageRepository) FindReplies(ctx context.Context, messageID int64) ([]Message, error) {
	var out []Message
	err := r.db.WithContext(ctx).
		Where("reply_to_message_id = ? AND is_deleted = ?", messageID, false).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *messageRepository) CountByLounge(ctx context.Context, loungeID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Message{}).
		Where("lounge_id = ? AND is_deleted = ?", loungeID, false).
		Count(&count).Error
	return count, err
}

func (r *messageRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Message{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return count, err
}
