package analytics

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=platform_repo.go -destination=mock/platform_repo_mock.go -package=mock
type PlatformRepository interface {
	Save(ctx context.Context, day *PlatformDay) error
	FindByDate(ctx context.Context, date time.Time) (*PlatformDay, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]PlatformDay, error)
	FindLast30(ctx context.Context) ([]PlatformDay, error)
	FindSince(ctx context.Context, since time.Time) ([]PlatformDay, error)
	AverageMatchSuccessRate(ctx context.Context, from, to time.Time) (*float64, error)
	AverageUserGrowthRate(ctx context.Context, from, to time.Time) (*float64, error)
	SumNewUsers(ctx context.Context, from, to time.Time) (int64, error)
	SumMatchesCreated(ctx context.Context, from, to time.Time) (int64, error)
	SumMeetingsCompleted(ctx context.Context, from, to time.Time) (int64, error)
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) Save(ctx context.Context, day *PlatformDay) error {
	return r.db.WithContext(ctx).Save(day).Error
}

func (r *platformRepository) FindByDate(ctx context.Context, date time.Time) (*PlatformDay, error) {
	var d PlatformDay
	if err := r.db.WithContext(ctx).Where("date = ?", Day(date)).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *platformRepository) FindBetween(ctx context.Context, from, to time.Time) ([]PlatformDay, error) {
	var out []PlatformDay
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", Day(from), Day(to)).
		Order("date DESC").
		Find(&out).Error
	return out, err
}

func (r *platformRepository) FindLast30(ctx context.Context) ([]PlatformDay, error) {
	var out []PlatformDay
	err := r.db.WithContext(ctx).Order("date DESC").Limit(30).Find(&out).Error
	return out, err
}

func (r *platformRepository) FindSince(ctx context.Context, since time.Time) ([]PlatformDay, error) {
	var out []PlatformDay
	err := r.db.WithContext(ctx).Where("date >= ?", Day(since)).Order("date DESC").Find(&out).Error
	return out, err
}

func (r *platformRepository) AverageMatchSuccessRate(ctx context.Context, from, to time.Time) (*float64, error) {
	return r.average(ctx, "match_success_rate", from, to)
}

func (r *platformRepository) AverageUserGrowthRate(ctx context.Context, from, to time.Time) (*float64, error) {
	return r.average(ctx, "user_growth_rate", from, to)
}

func (r *platformRepository) SumNewUsers(ctx context.Context, from, to time.Time) (int64, error) {
	return r.sum(ctx, "new_users_today", from, to)
}

func (r *platformRepository) SumMatchesCreated(ctx context.Context, from, to time.Time) (int64, error) {
	return r.sum(ctx, "matches_created_today", from, to)
}

func (r *platformRepository) SumMeetingsCompleted(ctx context.Context, from, to time.Time) (int64, error) {
	return r.sum(ctx, "meetings_completed_today", from, to)
}

// column is always one of the constants above, never caller input.
func (r *platformRepository) average(ctx context.Context, column string, from, to time.Time) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&PlatformDay{}).
		Select("AVG("+column+")").
		Where("date BETWEEN ? AND ?", Day(from), Day(to)).
		Row().Scan(&avg)
	if err != nil || !avg.Valid {
		return nil, err
	}
	return &avg.Float64, nil
}

func (r *platformRepository) sum(ctx context.Context, column string, from, to time.Time) (int64, error) {
	var total sql.NullInt64
	err := r.db.WithContext(ctx).Model(&PlatformDay{}).
		Select("SUM("+column+")").
		Where("date BETWEEN ? AND ?", Day(from), Day(to)).
		Row().Scan(&total)
	return total.Int64, err
}
