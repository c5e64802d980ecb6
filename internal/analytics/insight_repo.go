package analytics

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=insight_repo.go -destination=mock/insight_repo_mock.go -package=mock
type InsightRepository interface {
	Create(ctx context.Context, insight *Insight) error
	CreateBatch(ctx context.Context, insights []Insight) error
	Update(ctx context.Context, insight *Insight) error
	FindByID(ctx context.Context, id int64) (*Insight, error)
	FindByUser(ctx context.Context, userID int64) ([]Insight, error)
	FindUnread(ctx context.Context, userID int64) ([]Insight, error)
	FindRead(ctx context.Context, userID int64) ([]Insight, error)
	FindUnactioned(ctx context.Context, userID int64) ([]Insight, error)
	FindActioned(ctx context.Context, userID int64) ([]Insight, error)
	FindByUserAndType(ctx context.Context, userID int64, insightType InsightType) ([]Insight, error)
	FindByType(ctx context.Context, insightType InsightType) ([]Insight, error)
	FindByUserAndCategory(ctx context.Context, userID int64, category string) ([]Insight, error)
	FindByMinPriority(ctx context.Context, userID int64, priority int) ([]Insight, error)
	FindByMinConfidence(ctx context.Context, userID int64, confidence float64) ([]Insight, error)
	FindRecent(ctx context.Context, userID int64, since time.Time) ([]Insight, error)
	FindActive(ctx context.Context, userID int64, now time.Time) ([]Insight, error)
	FindExpired(ctx context.Context, userID int64, now time.Time) ([]Insight, error)
	FindWithFeedback(ctx context.Context, userID int64) ([]Insight, error)
	FindWithoutFeedback(ctx context.Context, userID int64) ([]Insight, error)
	FindByUserAndTypes(ctx context.Context, userID int64, types []InsightType) ([]Insight, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	CountActioned(ctx context.Context, userID int64) (int64, error)
	TypeDistribution(ctx context.Context, userID int64) ([]ValueCount, error)
	AverageConfidence(ctx context.Context, userID int64) (*float64, error)
	AverageFeedbackRating(ctx context.Context, userID int64) (*float64, error)
	FindByTag(ctx context.Context, userID int64, tag string) ([]Insight, error)
	FindByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]Insight, error)
}

type insightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) Create(ctx context.Context, insight *Insight) error {
	return r.db.WithContext(ctx).Create(insight).Error
}

func (r *insightRepository) CreateBatch(ctx context.Context, insights []Insight) error {
	if len(insights) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&insights).Error
}

func (r *insightRepository) Update(ctx context.Context, insight *Insight) error {
	return r.db.WithContext(ctx).Save(insight).Error
}

func (r *insightRepository) FindByID(ctx context.Context, id int64) (*Insight, error) {
	var in Insight
	if err := r.db.WithContext(ctx).First(&in, id).Error; err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *insightRepository) find(ctx context.Context, query string, args ...any) ([]Insight, error) {
	var out []Insight
	err := r.db.WithContext(ctx).Where(query, args...).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *insightRepository) FindByUser(ctx context.Context, userID int64) ([]Insight, error) {
	return r.find(ctx, "user_id = ?", userID)
}

func (r *insightRepository) FindUnread(ctx context.Context, userID int64) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND is_read = ?", userID, false)
}

func (r *insightRepository) FindRead(ctx context.Context, userID int64) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND is_read = ?", userID, true)
}

func (r *insightRepository) FindUnactioned(ctx context.Context, userID int64) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND is_actioned = ?", userID, false)
}

func (r *insightRepository) FindActioned(ctx context.Context, userID int64) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND is_actioned = ?", userID, true)
}

func (r *insightRepository) FindByUserAndType(ctx context.Context, userID int64, insightType InsightType) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND insight_type = ?", userID, insightType)
}

func (r *insightRepository) FindByType(ctx context.Context, insightType InsightType) ([]Insight, error) {
	return r.find(ctx, "insight_type = ?", insightType)
}

func (r *insightRepository) FindByUserAndCategory(ctx context.Context, userID int64, category string) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND category = ?", userID, category)
}

func (r *insightRepository) FindByMinPriority(ctx context.Context, userID int64, priority int) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND priority_level >= ?", userID, priority)
}

func (r *insightRepository) FindByMinConfidence(ctx context.Context, userID int64, confidence float64) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND confidence_score >= ?", userID, confidence)
}

func (r *insightRepository) FindRecent(ctx context.Context, userID int64, since time.Time) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND created_at >= ?", userID, since)
}

// FindActive returns the user's insights that have no expiry or expire after now.
func (r *insightRepository) FindActive(ctx context.Context, userID int64, now time.Time) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND (expires_at IS NULL OR expires_at > ?)", userID, now)
}

func (r *insightRepository) FindExpired(ctx context.Context, userID int64, now time.Time) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND expires_at <= ?", userID, now)
}

func (r *insightRepository) FindWithFeedback(ctx context.Context, userID int64) ([]Insight, error) {
	var out []Insight
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND feedback_rating IS NOT NULL", userID).
		Order("feedback_rating DESC").
		Find(&out).Error
	return out, err
}

func (r *insightRepository) FindWithoutFeedback(ctx context.Context, userID int64) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND feedback_rating IS NULL", userID)
}

func (r *insightRepository) FindByUserAndTypes(ctx context.Context, userID int64, types []InsightType) ([]Insight, error) {
	if len(types) == 0 {
		return []Insight{}, nil
	}
	return r.find(ctx, "user_id = ? AND insight_type IN ?", userID, types)
}

func (r *insightRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Insight{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *insightRepository) CountActioned(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Insight{}).
		Where("user_id = ? AND is_actioned = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *insightRepository) TypeDistribution(ctx context.Context, userID int64) ([]ValueCount, error) {
	var out []ValueCount
	err := r.db.WithContext(ctx).Model(&Insight{}).
		Select("insight_type AS value, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("insight_type").
		Order("total DESC").
		Scan(&out).Error
	return out, err
}

func (r *insightRepository) AverageConfidence(ctx context.Context, userID int64) (*float64, error) {
	return r.average(ctx, "confidence_score", userID)
}

func (r *insightRepository) AverageFeedbackRating(ctx context.Context, userID int64) (*float64, error) {
	return r.average(ctx, "feedback_rating", userID)
}

func (r *insightRepository) average(ctx context.Context, column string, userID int64) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&Insight{}).
		Select("AVG("+column+")").
		Where("user_id = ? AND "+column+" IS NOT NULL", userID).
		Row().Scan(&avg)
	if err != nil || !avg.Valid {
		return nil, err
	}
	return &avg.Float64, nil
}

func (r *insightRepository) FindByTag(ctx context.Context, userID int64, tag string) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND tags LIKE ?", userID, "%"+tag+"%")
}

func (r *insightRepository) FindByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]Insight, error) {
	return r.find(ctx, "user_id = ? AND created_at >= ? AND created_at <= ?", userID, from, to)
}
