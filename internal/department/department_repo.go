package department

import (
	"context"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, dept *Department) error
	Update(ctx context.Context, dept *Department) error
	FindByIDAndCompany(ctx context.Context, companyID, id int64) (*Department, error)
	FindActiveByCompany(ctx context.Context, companyID int64) ([]Department, error)
	FindByCompany(ctx context.Context, companyID int64) ([]Department, error)
	FindByCompanyAndName(ctx context.Context, companyID int64, name string) (*Department, error)
	FindActiveChildren(ctx context.Context, parentID int64) ([]Department, error)
	FindByHeadUser(ctx context.Context, userID int64) ([]Department, error)
	FindRootDepartments(ctx context.Context, companyID int64) ([]Department, error)
	CountActiveByCompany(ctx context.Context, companyID int64) (int64, error)
	ExistsByCompanyAndName(ctx context.Context, companyID int64, name string) (bool, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id int64) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID int64) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.ActiveScope(companyID)).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByCompany(ctx context.Context, companyID int64) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).Find(&depts).Error
	return depts, err
}

func (r *repository) FindByCompanyAndName(ctx context.Context, companyID int64, name string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("name = ?", name).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) FindActiveChildren(ctx context.Context, parentID int64) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Where("parent_department_id = ? AND is_active = ?", parentID, true).
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByHeadUser(ctx context.Context, userID int64) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).Where("head_user_id = ?", userID).Find(&depts).Error
	return depts, err
}

func (r *repository) FindRootDepartments(ctx context.Context, companyID int64) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.ActiveScope(companyID)).
		Where("parent_department_id IS NULL").
		Find(&depts).Error
	return depts, err
}

func (r *repository) CountActiveByCompany(ctx context.Context, companyID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Department{}).Scopes(tenant.ActiveScope(companyID)).Count(&count).Error
	return count, err
}

func (r *repository) ExistsByCompanyAndName(ctx context.Context, companyID int64, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Department{}).
		Scopes(tenant.Scope(companyID)).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}
