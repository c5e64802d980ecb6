package lounge

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=lounge_repo.go -destination=mock/lounge_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *Lounge) error
	Update(ctx context.Context, l *Lounge) error
	FindActive(ctx context.Context) ([]Lounge, error)
	FindByTopic(ctx context.Context, topic string) ([]Lounge, error)
	FindByCategory(ctx context.Context, category string) ([]Lounge, error)
	FindByTag(ctx context.Context, tag string) ([]Lounge, error)
	FindByCreator(ctx context.Context, userID int64) ([]Lounge, error)
	FindByVisibility(ctx context.Context, v Visibility) ([]Lounge, error)
	FindFeatured(ctx context.Context) ([]Lounge, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Lounge, error)
	Search(ctx context.Context, term string) ([]Lounge, error)
	FindActiveSince(ctx context.Context, since time.Time) ([]Lounge, error)
	FindWithSpace(ctx context.Context) ([]Lounge, error)
	FindActiveByID(ctx context.Context, id int64) (*Lounge, error)
	ExistsActiveByTitle(ctx context.Context, title string) (bool, error)
	IncrementParticipants(ctx context.Context, id int64, at time.Time) (bool, error)
	DecrementParticipants(ctx context.Context, id int64, at time.Time) error
	Touch(ctx context.Context, id int64, at time.Time) error
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

func (r *repository) Create(ctx context.Context, l *Lounge) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) Update(ctx context.Context, l *Lounge) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("is_active = ?", true)
}

func (r *repository) FindActive(ctx context.Context) ([]Lounge, error) {
	var out []Lounge
	err := r.active(ctx).Order("last_activity DESC NULLS LAST").Find(&out).Error
	return out, err
}

func (r *repository) FindByTopic(ctx context.Context, topic string) ([]Lounge, error) {
	var out []Lounge
	err := r.active(ctx).Where("topic ILIKE ?", "%"+topic+"%").Find(&out).Error
	return out, err
}

func (r *repository) FindByCategory(ctx context.Context, category string) ([]Lounge, error) {
	var out []Lounge
	err := r.active(ctx).Where("category ILIKE ?", "%"+category+"%").Find(&out).Error
	return out, err
}

func (r *repository) FindByTag(ctx context.Context, tag string) ([]Lounge, error) {
	var out []Lounge
	err := r.active(ctx).Where("tags ILIKE ?", "%"+tag+"%").Find(&out).Error
	return out, err
}

func (r *repository) FindByCreator(ctx context.Context, userID int64) ([]Lounge, error) {
	var out []Lounge
	err := r.active(ctx).Where("created_by = ?", userID).Find(&out).Error
	return out, err
}

func (r *repository) FindByVisibility(ctx context.Context, v Visibility) ([]Lounge, error) {
	var out []Lounge
	err := r.active(ctx).Where("visibility = ?", v).Find(&out).Error
	return out, err
}

func (r *repository) FindFeatured(ctx context.Context) ([]Lounge, error) {
	var out []Lounge
	err := r.active(ctx).Where("is_featured = ?", true).Find(&out).Error
	return out, err
}

func (r *repository) FindByIDs(ctx context.Context, ids []int64) ([]Lounge, error) {
	if len(ids) == 0 {
		return []Lounge{}, nil
	}
	var out []Lounge
	err := r.active(ctx).Where("id IN ?", ids).Order("last_activity DESC NULLS LAST").Find(&out).Error
	return out, err
}

func (r *repository) Search(ctx context.Context, term string) ([]Lounge, error) {
	like := "%" + term + "%"
	var out []Lounge
	err := r.active(ctx).
		Where("title ILIKE ? OR description ILIKE ? OR topic ILIKE ?", like, like, like).
		Find(&out).Error
	return out, err
}

func (r *repository) FindActiveSince(ctx context.Context, since time.Time) ([]Lounge, error) {
	var out []Lounge
	err := r.active(ctx).Where("last_activity > ?", since).Order("last_activity DESC").Find(&out).Error
	return out, err
}

func (r *repository) FindWithSpace(ctx context.Context) ([]Lounge, error) {
	var out []Lounge
	err := r.active(ctx).
		Where("max_participants IS NULL OR current_participants < max_participants").
		Order("current_participants ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindActiveByID(ctx context.Context, id int64) (*Lounge, error) {
	var l Lounge
	if err := r.active(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) ExistsActiveByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Lounge{}).Where("title = ? AND is_active = ?", title, true).Count(&count).Error
	return count > 0, err
}

// IncrementParticipants takes a seat if one is free. It reports false when
// the lounge is full or gone.
func (r *repository) IncrementParticipants(ctx context.Context, id int64, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Lounge{}).
		Where("id = ? AND is_active = ?", id, true).
		Where("max_participants IS NULL OR current_participants < max_participants").
		Updates(map[string]any{
			"current_participants": gorm.Expr("current_participants + 1"),
			"last_activity":        at,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) DecrementParticipants(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&Lounge{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_participants": gorm.Expr("GREATEST(current_participants - 1, 0)"),
			"last_activity":        at,
		}).Error
}

func (r *repository) Touch(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&Lounge{}).Where("id = ?", id).Update("last_activity", at).Error
}
