package notification

import (
	"context"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/pagination"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id int64) (*Notification, error)
	FindByUser(ctx context.Context, userID int64, page pagination.Page) ([]Notification, int64, error)
	FindUnread(ctx context.Context, userID int64) ([]Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	FindByType(ctx context.Context, userID int64, t Type) ([]Notification, error)
	FindByPriority(ctx context.Context, userID int64, p Priority) ([]Notification, error)
	FindRecent(ctx context.Context, userID int64, since time.Time) ([]Notification, error)
	FindByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]Notification, error)
	FindHighPriorityUnread(ctx context.Context, userID int64) ([]Notification, error)
	MarkAsRead(ctx context.Context, id, userID int64, readAt time.Time) (int64, error)
	MarkAllAsRead(ctx context.Context, userID int64, readAt time.Time) (int64, error)
	DeleteExpiredNotifications(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Notification, error) {
	var n Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) FindByUser(ctx context.Context, userID int64, page pagination.Page) ([]Notification, int64, error) {
	var (
		items []Notification
		total int64
	)

	q := r.db.WithContext(ctx).Model(&Notification{}).
		Where("user_id = ?", userID).
		Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").Scopes(page.Scope()).Find(&items).Error
	return items, total, err
}

func (r *repository) FindUnread(ctx context.Context, userID int64) ([]Notification, error) {
	var items []Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *repository) FindByType(ctx context.Context, userID int64, t Type) ([]Notification, error) {
	var items []Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, t).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByPriority(ctx context.Context, userID int64, p Priority) ([]Notification, error) {
	var items []Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND priority = ?", userID, p).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindRecent(ctx context.Context, userID int64, since time.Time) ([]Notification, error) {
	var items []Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]Notification, error) {
	var items []Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, from, to).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindHighPriorityUnread(ctx context.Context, userID int64) ([]Notification, error) {
	var items []Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ? AND priority IN ?", userID, false, []Priority{PriorityHigh, PriorityUrgent}).
		Order("priority DESC, created_at DESC").
		Find(&items).Error
	return items, err
}

// MarkAsRead flags one notification owned by userID. The returned count is 0
// when the id does not exist or belongs to someone else.
func (r *repository) MarkAsRead(ctx context.Context, id, userID int64, readAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_read": true, "read_at": readAt})
	return res.RowsAffected, res.Error
}

func (r *repository) MarkAllAsRead(ctx context.Context, userID int64, readAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{"is_read": true, "read_at": readAt})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteExpiredNotifications(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Delete(&Notification{})
	return res.RowsAffected, res.Error
}
