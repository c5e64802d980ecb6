package analytics

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// UserScore is one row of a per-user aggregate ranking.
type UserScore struct {
	UserID int64   `gorm:"column:user_id"`
	Score  float64 `gorm:"column:score"`
}

//go:generate mockgen -source=user_day_repo.go -destination=mock/user_day_repo_mock.go -package=mock
type UserDayRepository interface {
	Save(ctx context.Context, day *UserDay) error
	FindByUserAndDate(ctx context.Context, userID int64, date time.Time) (*UserDay, error)
	FindByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]UserDay, error)
	FindByUser(ctx context.Context, userID int64) ([]UserDay, error)
	FindLast30ByUser(ctx context.Context, userID int64) ([]UserDay, error)
	FindSince(ctx context.Context, userID int64, since time.Time) ([]UserDay, error)
	SumSessionDuration(ctx context.Context, userID int64, from, to time.Time) (int64, error)
	SumMatchesCompleted(ctx context.Context, userID int64, from, to time.Time) (int64, error)
	AverageRatingReceived(ctx context.Context, userID int64, from, to time.Time) (*float64, error)
	FindActiveUserIDs(ctx context.Context, date time.Time) ([]int64, error)
	FindMostActive(ctx context.Context, from, to time.Time, limit int) ([]UserScore, error)
	FindTopEngaged(ctx context.Context, from, to time.Time, limit int) ([]UserScore, error)
}

type userDayRepository struct {
	db *gorm.DB
}

func NewUserDayRepository(db *gorm.DB) UserDayRepository {
	return &userDayRepository{db: db}
}

func (r *userDayRepository) Save(ctx context.Context, day *UserDay) error {
	return r.db.WithContext(ctx).Save(day).Error
}

func (r *userDayRepository) FindByUserAndDate(ctx context.Context, userID int64, date time.Time) (*UserDay, error) {
	var d UserDay
	if err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, Day(date)).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *userDayRepository) FindByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]UserDay, error) {
	var out []UserDay
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date BETWEEN ? AND ?", Day(from), Day(to)).
		Order("date DESC").
		Find(&out).Error
	return out, err
}

func (r *userDayRepository) FindByUser(ctx context.Context, userID int64) ([]UserDay, error) {
	var out []UserDay
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC").Find(&out).Error
	return out, err
}

func (r *userDayRepository) FindLast30ByUser(ctx context.Context, userID int64) ([]UserDay, error) {
	var out []UserDay
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC").Limit(30).Find(&out).Error
	return out, err
}

func (r *userDayRepository) FindSince(ctx context.Context, userID int64, since time.Time) ([]UserDay, error) {
	var out []UserDay
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, Day(since)).
		Order("date DESC").
		Find(&out).Error
	return out, err
}

func (r *userDayRepository) SumSessionDuration(ctx context.Context, userID int64, from, to time.Time) (int64, error) {
	return r.sum(ctx, "session_duration_minutes", userID, from, to)
}

func (r *userDayRepository) SumMatchesCompleted(ctx context.Context, userID int64, from, to time.Time) (int64, error) {
	return r.sum(ctx, "matches_completed", userID, from, to)
}

func (r *userDayRepository) sum(ctx context.Context, column string, userID int64, from, to time.Time) (int64, error) {
	var total sql.NullInt64
	err := r.db.WithContext(ctx).Model(&UserDay{}).
		Select("SUM("+column+")").
		Where("user_id = ?", userID).
		Where("date BETWEEN ? AND ?", Day(from), Day(to)).
		Row().Scan(&total)
	return total.Int64, err
}

// AverageRatingReceived skips days with no rating.
func (r *userDayRepository) AverageRatingReceived(ctx context.Context, userID int64, from, to time.Time) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&UserDay{}).
		Select("AVG(average_rating_received)").
		Where("user_id = ? AND average_rating_received > 0", userID).
		Where("date BETWEEN ? AND ?", Day(from), Day(to)).
		Row().Scan(&avg)
	if err != nil || !avg.Valid {
		return nil, err
	}
	return &avg.Float64, nil
}

func (r *userDayRepository) FindActiveUserIDs(ctx context.Context, date time.Time) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&UserDay{}).
		Distinct("user_id").
		Where("date = ? AND login_count > 0", Day(date)).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *userDayRepository) FindMostActive(ctx context.Context, from, to time.Time, limit int) ([]UserScore, error) {
	return r.rank(ctx, "SUM(actions_performed)", from, to, limit)
}

func (r *userDayRepository) FindTopEngaged(ctx context.Context, from, to time.Time, limit int) ([]UserScore, error) {
	return r.rank(ctx, "AVG(feature_usage_score)", from, to, limit)
}

func (r *userDayRepository) rank(ctx context.Context, aggregate string, from, to time.Time, limit int) ([]UserScore, error) {
	var out []UserScore
	err := r.db.WithContext(ctx).Model(&UserDay{}).
		Select("user_id, "+aggregate+" AS score").
		Where("date BETWEEN ? AND ?", Day(from), Day(to)).
		Group("user_id").
		Order("score DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
