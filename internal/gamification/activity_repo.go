package gamification

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const leaderboardQuery = `
WITH points AS (
	SELECT user_id, SUM(points_earned) AS total_points
	FROM activity_logs
	GROUP BY user_id
), badges AS (
	SELECT user_id, COUNT(*) AS total_badges
	FROM user_badges
	GROUP BY user_id
), streaks AS (
	SELECT DISTINCT ON (user_id) user_id, best_count, streak_type
	FROM user_streaks
	ORDER BY user_id, best_count DESC
)
SELECT
	u.id AS user_id,
	u.name AS user_name,
	u.email AS user_email,
	COALESCE(p.total_points, 0) AS total_points,
	COALESCE(b.total_badges, 0) AS total_badges,
	COALESCE(s.best_count, 0) AS longest_streak,
	COALESCE(s.streak_type, 'None') AS longest_streak_type,
	ROW_NUMBER() OVER (ORDER BY COALESCE(p.total_points, 0) DESC, u.id ASC) AS rank
FROM users u
LEFT JOIN points p ON p.user_id = u.id
LEFT JOIN badges b ON b.user_id = u.id
LEFT JOIN streaks s ON s.user_id = u.id
WHERE u.is_active = true
ORDER BY rank
LIMIT ?`

const userRankQuery = `
SELECT COUNT(*) + 1
FROM (
	SELECT u.id
	FROM users u
	LEFT JOIN activity_logs al ON al.user_id = u.id
	WHERE u.is_active = true
	GROUP BY u.id
	HAVING COALESCE(SUM(al.points_earned), 0) > (
		SELECT COALESCE(SUM(points_earned), 0) FROM activity_logs WHERE user_id = ?
	)
) ranked_users`

const topPerformersQuery = `
SELECT
	u.id AS user_id,
	u.name AS user_name,
	u.email AS user_email,
	SUM(al.points_earned) AS total_points,
	ROW_NUMBER() OVER (ORDER BY SUM(al.points_earned) DESC, u.id ASC) AS rank
FROM users u
JOIN activity_logs al ON al.user_id = u.id
WHERE u.is_active = true AND al.activity_type = ?
GROUP BY u.id, u.name, u.email
ORDER BY rank
LIMIT ?`

//go:generate mockgen -source=activity_repo.go -destination=mock/activity_repo_mock.go -package=mock
type ActivityRepository interface {
	WithTx(tx *gorm.DB) ActivityRepository
	Create(ctx context.Context, a *ActivityLog) error
	FindByUser(ctx context.Context, userID int64) ([]ActivityLog, error)
	FindByUserAndType(ctx context.Context, userID int64, t ActivityType) ([]ActivityLog, error)
	FindByUserSince(ctx context.Context, userID int64, since time.Time) ([]ActivityLog, error)
	FindByUserAndTypeSince(ctx context.Context, userID int64, t ActivityType, since time.Time) ([]ActivityLog, error)
	CountByUserAndType(ctx context.Context, userID int64, t ActivityType) (int64, error)
	CountsByUser(ctx context.Context, userID int64) (map[ActivityType]int64, error)
	TotalPointsByUser(ctx context.Context, userID int64) (int64, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error)
	UserRank(ctx context.Context, userID int64) (int, error)
	TopPerformersByCategory(ctx context.Context, t ActivityType, limit int) ([]LeaderboardRow, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) WithTx(tx *gorm.DB) ActivityRepository {
	return &activityRepository{db: tx}
}

func (r *activityRepository) Create(ctx context.Context, a *ActivityLog) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *activityRepository) FindByUser(ctx context.Context, userID int64) ([]ActivityLog, error) {
	var items []ActivityLog
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *activityRepository) FindByUserAndType(ctx context.Context, userID int64, t ActivityType) ([]ActivityLog, error) {
	var items []ActivityLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND activity_type = ?", userID, t).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *activityRepository) FindByUserSince(ctx context.Context, userID int64, since time.Time) ([]ActivityLog, error) {
	var items []ActivityLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *activityRepository) FindByUserAndTypeSince(ctx context.Context, userID int64, t ActivityType, since time.Time) ([]ActivityLog, error) {
	var items []ActivityLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND activity_type = ? AND created_at >= ?", userID, t, since).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *activityRepository) CountByUserAndType(ctx context.Context, userID int64, t ActivityType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ActivityLog{}).
		Where("user_id = ? AND activity_type = ?", userID, t).
		Count(&count).Error
	return count, err
}

// CountsByUser returns the number of logged activities per type.
func (r *activityRepository) CountsByUser(ctx context.Context, userID int64) (map[ActivityType]int64, error) {
	var rows []struct {
		ActivityType ActivityType
		Total        int64
	}
	err := r.db.WithContext(ctx).Model(&ActivityLog{}).
		Select("activity_type, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("activity_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[ActivityType]int64, len(rows))
	for _, row := range rows {
		counts[row.ActivityType] = row.Total
	}
	return counts, nil
}

func (r *activityRepository) TotalPointsByUser(ctx context.Context, userID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&ActivityLog{}).
		Select("COALESCE(SUM(points_earned), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	return total, err
}

func (r *activityRepository) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.WithContext(ctx).Raw(leaderboardQuery, limit).Scan(&rows).Error
	return rows, err
}

// UserRank is 1 + the number of active users with strictly more points.
func (r *activityRepository) UserRank(ctx context.Context, userID int64) (int, error) {
	var rank int
	err := r.db.WithContext(ctx).Raw(userRankQuery, userID).Scan(&rank).Error
	return rank, err
}

func (r *activityRepository) TopPerformersByCategory(ctx context.Context, t ActivityType, limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.WithContext(ctx).Raw(topPerformersQuery, t, limit).Scan(&rows).Error
	return rows, err
}
