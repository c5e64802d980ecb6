package match

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=match_repo.go -destination=mock/match_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, m *Match) error
	Update(ctx context.Context, m *Match) error
	FindByUser(ctx context.Context, userID int64) ([]Match, error)
	FindByUser1AndStatus(ctx context.Context, userID int64, status Status) ([]Match, error)
	FindByUser2AndStatus(ctx context.Context, userID int64, status Status) ([]Match, error)
	FindByUserAndStatus(ctx context.Context, userID int64, status Status) ([]Match, error)
	FindAvailableForUser(ctx context.Context, userID int64) ([]Match, error)
	FindScheduledBetween(ctx context.Context, from, to time.Time) ([]Match, error)
	FindActiveByID(ctx context.Context, id int64) (*Match, error)
	FindMatchedUserIDs(ctx context.Context, userID int64) ([]int64, error)
	ExistsBetween(ctx context.Context, user1ID, user2ID int64, statuses ...Status) (bool, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByUser1(ctx context.Context, userID int64, from, to time.Time) (int64, error)
	CountByUser2(ctx context.Context, userID int64, from, to time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) Update(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) FindByUser(ctx context.Context, userID int64) ([]Match, error) {
	var out []Match
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND is_active = ?", userID, userID, true).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindByUser1AndStatus(ctx context.Context, userID int64, status Status) ([]Match, error) {
	var out []Match
	err := r.db.WithContext(ctx).
		Where("user1_id = ? AND status = ? AND is_active = ?", userID, status, true).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindByUser2AndStatus(ctx context.Context, userID int64, status Status) ([]Match, error) {
	var out []Match
	err := r.db.WithContext(ctx).
		Where("user2_id = ? AND status = ? AND is_active = ?", userID, status, true).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindByUserAndStatus(ctx context.Context, userID int64, status Status) ([]Match, error) {
	var out []Match
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND status = ? AND is_active = ?", userID, userID, status, true).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// FindAvailableForUser lists open requests between other users.
func (r *repository) FindAvailableForUser(ctx context.Context, userID int64) ([]Match, error) {
	var out []Match
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_active = ? AND user1_id <> ? AND user2_id <> ?", StatusPending, true, userID, userID).
		Find(&out).Error
	return out, err
}

func (r *repository) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]Match, error) {
	var out []Match
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_time BETWEEN ? AND ? AND is_active = ?", StatusScheduled, from, to, true).
		Order("scheduled_time ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindActiveByID(ctx context.Context, id int64) (*Match, error) {
	var m Match
	if err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindMatchedUserIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT CASE WHEN user1_id = ? THEN user2_id ELSE user1_id END
		FROM matches
		WHERE (user1_id = ? OR user2_id = ?) AND is_active = true`,
		userID, userID, userID,
	).Scan(&ids).Error
	return ids, err
}

// ExistsBetween matches the pair in either direction. With no statuses it
// matches any active match.
func (r *repository) ExistsBetween(ctx context.Context, user1ID, user2ID int64, statuses ...Status) (bool, error) {
	q := r.db.WithContext(ctx).Model(&Match{}).
		Where("((user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)) AND is_active = ?",
			user1ID, user2ID, user2ID, user1ID, true)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Match{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *repository) CountByUser1(ctx context.Context, userID int64, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Match{}).
		Where("user1_id = ? AND created_at BETWEEN ? AND ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (r *repository) CountByUser2(ctx context.Context, userID int64, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Match{}).
		Where("user2_id = ? AND created_at BETWEEN ? AND ?", userID, from, to).
		Count(&count).Error
	return count, err
}
