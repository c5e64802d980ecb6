package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	FindByID(ctx context.Context, id int64) (*Company, error)
	FindByName(ctx context.Context, name string) (*Company, error)
	FindByNameActive(ctx context.Context, name string) (*Company, error)
	FindAllActive(ctx context.Context) ([]Company, error)
	FindBySubscriptionTier(ctx context.Context, tier SubscriptionTier) ([]Company, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	WithTx(tx *gorm.DB) Repository
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

func (r *repository) Create(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Company, error) {
	var company Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*Company, error) {
	var company Company
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) FindByNameActive(ctx context.Context, name string) (*Company, error) {
	var company Company
	if err := r.db.WithContext(ctx).Where("name = ? AND is_active = ?", name, true).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) FindAllActive(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&companies).Error
	return companies, err
}

func (r *repository) FindBySubscriptionTier(ctx context.Context, tier SubscriptionTier) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).Where("subscription_tier = ?", tier).Find(&companies).Error
	return companies, err
}

func (r *repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Company{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
