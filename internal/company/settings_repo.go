package company

import (
	"context"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type SettingsRepository interface {
	FindByCompanyID(ctx context.Context, companyID int64) (*Settings, error)
	ExistsByCompanyID(ctx context.Context, companyID int64) (bool, error)
	DeleteByCompanyID(ctx context.Context, companyID int64) error
	Save(ctx context.Context, settings *Settings) error
	WithTx(tx *gorm.DB) SettingsRepository
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) WithTx(tx *gorm.DB) SettingsRepository {
	return &settingsRepository{db: tx}
}

func (r *settingsRepository) FindByCompanyID(ctx context.Context, companyID int64) (*Settings, error) {
	var settings Settings
	if err := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) ExistsByCompanyID(ctx context.Context, companyID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Settings{}).Scopes(tenant.Scope(companyID)).Count(&count).Error
	return count > 0, err
}

func (r *settingsRepository) DeleteByCompanyID(ctx context.Context, companyID int64) error {
	return r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).Delete(&Settings{}).Error
}

func (r *settingsRepository) Save(ctx context.Context, settings *Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
