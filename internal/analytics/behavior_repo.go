package analytics

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// ValueCount is one bucket of a grouped count.
type ValueCount struct {
	Value string `gorm:"column:value"`
	Total int64  `gorm:"column:total"`
}

//go:generate mockgen -source=behavior_repo.go -destination=mock/behavior_repo_mock.go -package=mock
type BehaviorRepository interface {
	Create(ctx context.Context, behavior *Behavior) error
	CreateBatch(ctx context.Context, behaviors []Behavior) error
	FindByUser(ctx context.Context, userID int64) ([]Behavior, error)
	FindByUserAndType(ctx context.Context, userID int64, behaviorType BehaviorType) ([]Behavior, error)
	FindByType(ctx context.Context, behaviorType BehaviorType) ([]Behavior, error)
	FindByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]Behavior, error)
	FindByTypeBetween(ctx context.Context, behaviorType BehaviorType, from, to time.Time) ([]Behavior, error)
	FindByUserAndTargetType(ctx context.Context, userID int64, targetType string) ([]Behavior, error)
	FindByUserAndTarget(ctx context.Context, userID, targetID int64, targetType string) ([]Behavior, error)
	FindRecent(ctx context.Context, userID int64, since time.Time) ([]Behavior, error)
	FindByUserAndTypes(ctx context.Context, userID int64, types []BehaviorType) ([]Behavior, error)
	CountByUserAndType(ctx context.Context, userID int64, behaviorType BehaviorType) (int64, error)
	CountByUserAndTypeSince(ctx context.Context, userID int64, behaviorType BehaviorType, since time.Time) (int64, error)
	Distribution(ctx context.Context, userID int64) ([]ValueCount, error)
	FindHighIntensity(ctx context.Context, userID int64, behaviorType BehaviorType, minIntensity float64) ([]Behavior, error)
	AverageDuration(ctx context.Context, userID int64, behaviorType BehaviorType) (*float64, error)
	FindBySession(ctx context.Context, userID int64, sessionID string) ([]Behavior, error)
	FindSessionIDs(ctx context.Context, userID int64) ([]string, error)
}

type behaviorRepository struct {
	db *gorm.DB
}

func NewBehaviorRepository(db *gorm.DB) BehaviorRepository {
	return &behaviorRepository{db: db}
}

func (r *behaviorRepository) Create(ctx context.Context, behavior *Behavior) error {
	return r.db.WithContext(ctx).Create(behavior).Error
}

func (r *behaviorRepository) CreateBatch(ctx context.Context, behaviors []Behavior) error {
	if len(behaviors) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(behaviors, 100).Error
}

func (r *behaviorRepository) find(ctx context.Context, query string, args ...any) ([]Behavior, error) {
	var out []Behavior
	err := r.db.WithContext(ctx).Where(query, args...).Order("timestamp DESC").Find(&out).Error
	return out, err
}

func (r *behaviorRepository) FindByUser(ctx context.Context, userID int64) ([]Behavior, error) {
	return r.find(ctx, "user_id = ?", userID)
}

func (r *behaviorRepository) FindByUserAndType(ctx context.Context, userID int64, behaviorType BehaviorType) ([]Behavior, error) {
	return r.find(ctx, "user_id = ? AND behavior_type = ?", userID, behaviorType)
}

func (r *behaviorRepository) FindByType(ctx context.Context, behaviorType BehaviorType) ([]Behavior, error) {
	return r.find(ctx, "behavior_type = ?", behaviorType)
}

func (r *behaviorRepository) FindByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]Behavior, error) {
	return r.find(ctx, "user_id = ? AND timestamp BETWEEN ? AND ?", userID, from, to)
}

func (r *behaviorRepository) FindByTypeBetween(ctx context.Context, behaviorType BehaviorType, from, to time.Time) ([]Behavior, error) {
	return r.find(ctx, "behavior_type = ? AND timestamp BETWEEN ? AND ?", behaviorType, from, to)
}

func (r *behaviorRepository) FindByUserAndTargetType(ctx context.Context, userID int64, targetType string) ([]Behavior, error) {
	return r.find(ctx, "user_id = ? AND target_type = ?", userID, targetType)
}

func (r *behaviorRepository) FindByUserAndTarget(ctx context.Context, userID, targetID int64, targetType string) ([]Behavior, error) {
	return r.find(ctx, "user_id = ? AND target_id = ? AND target_type = ?", userID, targetID, targetType)
}

func (r *behaviorRepository) FindRecent(ctx context.Context, userID int64, since time.Time) ([]Behavior, error) {
	return r.find(ctx, "user_id = ? AND timestamp >= ?", userID, since)
}

func (r *behaviorRepository) FindByUserAndTypes(ctx context.Context, userID int64, types []BehaviorType) ([]Behavior, error) {
	if len(types) == 0 {
		return []Behavior{}, nil
	}
	return r.find(ctx, "user_id = ? AND behavior_type IN ?", userID, types)
}

func (r *behaviorRepository) CountByUserAndType(ctx context.Context, userID int64, behaviorType BehaviorType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Behavior{}).
		Where("user_id = ? AND behavior_type = ?", userID, behaviorType).
		Count(&count).Error
	return count, err
}

func (r *behaviorRepository) CountByUserAndTypeSince(ctx context.Context, userID int64, behaviorType BehaviorType, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Behavior{}).
		Where("user_id = ? AND behavior_type = ? AND timestamp >= ?", userID, behaviorType, since).
		Count(&count).Error
	return count, err
}

func (r *behaviorRepository) Distribution(ctx context.Context, userID int64) ([]ValueCount, error) {
	var out []ValueCount
	err := r.db.WithContext(ctx).Model(&Behavior{}).
		Select("behavior_type AS value, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("behavior_type").
		Order("total DESC").
		Scan(&out).Error
	return out, err
}

func (r *behaviorRepository) FindHighIntensity(ctx context.Context, userID int64, behaviorType BehaviorType, minIntensity float64) ([]Behavior, error) {
	var out []Behavior
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND behavior_type = ? AND intensity_score >= ?", userID, behaviorType, minIntensity).
		Order("intensity_score DESC").
		Find(&out).Error
	return out, err
}

func (r *behaviorRepository) AverageDuration(ctx context.Context, userID int64, behaviorType BehaviorType) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&Behavior{}).
		Select("AVG(duration_seconds)").
		Where("user_id = ? AND behavior_type = ? AND duration_seconds IS NOT NULL", userID, behaviorType).
		Row().Scan(&avg)
	if err != nil || !avg.Valid {
		return nil, err
	}
	return &avg.Float64, nil
}

func (r *behaviorRepository) FindBySession(ctx context.Context, userID int64, sessionID string) ([]Behavior, error) {
	var out []Behavior
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("timestamp ASC").
		Find(&out).Error
	return out, err
}

// FindSessionIDs lists the user's sessions, most recently active first.
func (r *behaviorRepository) FindSessionIDs(ctx context.Context, userID int64) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&Behavior{}).
		Where("user_id = ? AND session_id IS NOT NULL AND session_id <> ''", userID).
		Group("session_id").
		Order("MAX(timestamp) DESC").
		Pluck("session_id", &ids).Error
	return ids, err
}
