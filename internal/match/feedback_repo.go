package match

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=feedback_repo.go -destination=mock/feedback_repo_mock.go -package=mock
type FeedbackRepository interface {
	WithTx(tx *gorm.DB) FeedbackRepository
	Save(ctx context.Context, f *Feedback) error
	FindByMatch(ctx context.Context, matchID int64) ([]Feedback, error)
	FindByUser(ctx context.Context, userID int64) ([]Feedback, error)
	FindByMatchAndUser(ctx context.Context, matchID, userID int64) (*Feedback, error)
	AverageQualityForMatch(ctx context.Context, matchID int64) (*float64, error)
	AverageQualityForUser(ctx context.Context, userID int64) (*float64, error)
	FindAllTags(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CountPositive(ctx context.Context) (int64, error)
	CountHighQuality(ctx context.Context, minRating int) (int64, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) WithTx(tx *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: tx}
}

func (r *feedbackRepository) Save(ctx context.Context, f *Feedback) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *feedbackRepository) FindByMatch(ctx context.Context, matchID int64) ([]Feedback, error) {
	var out []Feedback
	err := r.db.WithContext(ctx).Where("match_id = ?", matchID).Find(&out).Error
	return out, err
}

func (r *feedbackRepository) FindByUser(ctx context.Context, userID int64) ([]Feedback, error) {
	var out []Feedback
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *feedbackRepository) FindByMatchAndUser(ctx context.Context, matchID, userID int64) (*Feedback, error) {
	var f Feedback
	if err := r.db.WithContext(ctx).Where("match_id = ? AND user_id = ?", matchID, userID).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// AverageQualityForMatch is nil when the match has no feedback.
func (r *feedbackRepository) AverageQualityForMatch(ctx context.Context, matchID int64) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&Feedback{}).
		Select("AVG(quality_rating)").
		Where("match_id = ?", matchID).
		Scan(&avg).Error
	return nullableAverage(avg, err)
}

// AverageQualityForUser averages feedback left on any match the user took part in.
func (r *feedbackRepository) AverageQualityForUser(ctx context.Context, userID int64) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Table("match_feedback mf").
		Select("AVG(mf.quality_rating)").
		Joins("JOIN matches m ON m.id = mf.match_id").
		Where("m.user1_id = ? OR m.user2_id = ?", userID, userID).
		Scan(&avg).Error
	return nullableAverage(avg, err)
}

func nullableAverage(avg sql.NullFloat64, err error) (*float64, error) {
	if err != nil || !avg.Valid {
		return nil, err
	}
	return &avg.Float64, nil
}

func (r *feedbackRepository) FindAllTags(ctx context.Context) ([]string, error) {
	var tags []string
	err := r.db.WithContext(ctx).Model(&Feedback{}).
		Where("tags IS NOT NULL AND tags <> ''").
		Pluck("tags", &tags).Error
	return tags, err
}

func (r *feedbackRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Feedback{}).Count(&count).Error
	return count, err
}

func (r *feedbackRepository) CountPositive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Feedback{}).Where("would_meet_again = ?", true).Count(&count).Error
	return count, err
}

func (r *feedbackRepository) CountHighQuality(ctx context.Context, minRating int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Feedback{}).Where("quality_rating >= ?", minRating).Count(&count).Error
	return count, err
}
