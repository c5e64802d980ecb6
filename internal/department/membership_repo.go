package department

import (
	"context"

	"gorm.io/gorm"
)

// MemberCount is one row of CountActiveByDepartments.
type MemberCount struct {
	DepartmentID int64
	Total        int64
}

//go:generate mockgen -source=membership_repo.go -destination=mock/membership_repo_mock.go -package=mock
type MembershipRepository interface {
	WithTx(tx *gorm.DB) MembershipRepository
	Create(ctx context.Context, m *Membership) error
	Update(ctx context.Context, m *Membership) error
	FindActiveByUser(ctx context.Context, userID int64) ([]Membership, error)
	FindActiveByDepartment(ctx context.Context, departmentID int64) ([]Membership, error)
	FindActiveByUserAndDepartment(ctx context.Context, userID, departmentID int64) (*Membership, error)
	FindByDepartmentAndRole(ctx context.Context, departmentID int64, role Role) ([]Membership, error)
	FindByCompany(ctx context.Context, companyID int64) ([]Membership, error)
	CountActiveByDepartment(ctx context.Context, departmentID int64) (int64, error)
	CountActiveByDepartments(ctx context.Context, departmentIDs []int64) ([]MemberCount, error)
	ExistsByUserAndDepartment(ctx context.Context, userID, departmentID int64) (bool, error)
	DeactivateByDepartment(ctx context.Context, departmentID int64) (int64, error)
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) WithTx(tx *gorm.DB) MembershipRepository {
	return &membershipRepository{db: tx}
}

func (r *membershipRepository) Create(ctx context.Context, m *Membership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *membershipRepository) Update(ctx context.Context, m *Membership) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *membershipRepository) FindActiveByUser(ctx context.Context, userID int64) ([]Membership, error) {
	var out []Membership
	err := r.db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true).Find(&out).Error
	return out, err
}

func (r *membershipRepository) FindActiveByDepartment(ctx context.Context, departmentID int64) ([]Membership, error) {
	var out []Membership
	err := r.db.WithContext(ctx).Where("department_id = ? AND is_active = ?", departmentID, true).Find(&out).Error
	return out, err
}

func (r *membershipRepository) FindActiveByUserAndDepartment(ctx context.Context, userID, departmentID int64) (*Membership, error) {
	var m Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND department_id = ? AND is_active = ?", userID, departmentID, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *membershipRepository) FindByDepartmentAndRole(ctx context.Context, departmentID int64, role Role) ([]Membership, error) {
	var out []Membership
	err := r.db.WithContext(ctx).Where("department_id = ? AND role = ?", departmentID, role).Find(&out).Error
	return out, err
}

func (r *membershipRepository) FindByCompany(ctx context.Context, companyID int64) ([]Membership, error) {
	var out []Membership
	err := r.db.WithContext(ctx).
		Joins("JOIN departments d ON d.id = user_departments.department_id").
		Where("d.company_id = ? AND user_departments.is_active = ?", companyID, true).
		Find(&out).Error
	return out, err
}

func (r *membershipRepository) CountActiveByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Membership{}).
		Where("department_id = ? AND is_active = ?", departmentID, true).
		Count(&count).Error
	return count, err
}

func (r *membershipRepository) CountActiveByDepartments(ctx context.Context, departmentIDs []int64) ([]MemberCount, error) {
	if len(departmentIDs) == 0 {
		return []MemberCount{}, nil
	}
	var out []MemberCount
	err := r.db.WithContext(ctx).Model(&Membership{}).
		Select("department_id, COUNT(*) AS total").
		Where("department_id IN ? AND is_active = ?", departmentIDs, true).
		Group("department_id").
		Scan(&out).Error
	return out, err
}

func (r *membershipRepository) ExistsByUserAndDepartment(ctx context.Context, userID, departmentID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Membership{}).
		Where("user_id = ? AND department_id = ?", userID, departmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *membershipRepository) DeactivateByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Membership{}).
		Where("department_id = ? AND is_active = ?", departmentID, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
