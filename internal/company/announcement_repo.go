package company

import (
	"context"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=announcement_repo.go -destination=mock/announcement_repo_mock.go -package=mock
type AnnouncementRepository interface {
	Create(ctx context.Context, a *Announcement) error
	FindActiveByCompany(ctx context.Context, companyID int64) ([]Announcement, error)
	FindPinnedActive(ctx context.Context, companyID int64) ([]Announcement, error)
	FindByType(ctx context.Context, companyID int64, t AnnouncementType) ([]Announcement, error)
	FindByPriority(ctx context.Context, companyID int64, p Priority) ([]Announcement, error)
	FindByAuthor(ctx context.Context, authorUserID int64) ([]Announcement, error)
	FindPublished(ctx context.Context, companyID int64, now time.Time) ([]Announcement, error)
	CountActive(ctx context.Context, companyID int64) (int64, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepository) active(ctx context.Context, companyID int64) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(tenant.ActiveScope(companyID))
}

func (r *announcementRepository) FindActiveByCompany(ctx context.Context, companyID int64) ([]Announcement, error) {
	var out []Announcement
	err := r.active(ctx, companyID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *announcementRepository) FindPinnedActive(ctx context.Context, companyID int64) ([]Announcement, error) {
	var out []Announcement
	err := r.active(ctx, companyID).Where("is_pinned = ?", true).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *announcementRepository) FindByType(ctx context.Context, companyID int64, t AnnouncementType) ([]Announcement, error) {
	var out []Announcement
	err := r.active(ctx, companyID).Where("type = ?", t).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *announcementRepository) FindByPriority(ctx context.Context, companyID int64, p Priority) ([]Announcement, error) {
	var out []Announcement
	err := r.active(ctx, companyID).Where("priority = ?", p).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *announcementRepository) FindByAuthor(ctx context.Context, authorUserID int64) ([]Announcement, error) {
	var out []Announcement
	err := r.db.WithContext(ctx).Where("author_user_id = ?", authorUserID).Find(&out).Error
	return out, err
}

func (r *announcementRepository) FindPublished(ctx context.Context, companyID int64, now time.Time) ([]Announcement, error) {
	var out []Announcement
	err := r.active(ctx, companyID).
		Where("published_at <= ?", now).
		Order("is_pinned DESC, created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *announcementRepository) CountActive(ctx context.Context, companyID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Announcement{}).Scopes(tenant.ActiveScope(companyID)).Count(&count).Error
	return count, err
}
