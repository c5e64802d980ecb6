package user

import (
	"context"
	"strings"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/pagination"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/tenant"

	"gorm.io/gorm"
)

// SearchFilter narrows FindWithFilters. Empty fields match everything.
type SearchFilter struct {
	Query    string
	Industry string
	Skills   string
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailActive(ctx context.Context, email string) (*User, error)
	FindActiveByCompany(ctx context.Context, companyID int64) ([]User, error)
	FindByCompany(ctx context.Context, companyID int64) ([]User, error)
	FindAllActive(ctx context.Context) ([]User, error)
	FindActiveByIndustry(ctx context.Context, industry string) ([]User, error)
	FindActiveRegularUsers(ctx context.Context) ([]User, error)
	FindActivePaged(ctx context.Context, page pagination.Page) ([]User, int64, error)
	Search(ctx context.Context, query string, page pagination.Page) ([]User, int64, error)
	FindTop5ByName(ctx context.Context, name string) ([]User, error)
	FindWithFilters(ctx context.Context, filter SearchFilter, page pagination.Page) ([]User, int64, error)
	FindActiveExcept(ctx context.Context, userID int64) ([]User, error)
	FindActiveExcluding(ctx context.Context, ids []int64) ([]User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailActive(ctx context.Context, email string) (bool, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountActiveInCompanyBetween(ctx context.Context, companyID int64, from, to time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmailActive(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "email = ? AND is_active = ?", email, true).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID int64) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Scopes(tenant.ActiveScope(companyID)).Find(&users).Error
	return users, err
}

func (r *repository) FindByCompany(ctx context.Context, companyID int64) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).Find(&users).Error
	return users, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&users).Error
	return users, err
}

func (r *repository) FindActiveByIndustry(ctx context.Context, industry string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Where("industry = ? AND is_active = ?", industry, true).Find(&users).Error
	return users, err
}

func (r *repository) FindActiveRegularUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Where("is_active = ? AND role = ?", true, RoleUser).Find(&users).Error
	return users, err
}

func (r *repository) paged(q *gorm.DB, page pagination.Page) ([]User, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []User
	err := q.Order("id ASC").Scopes(page.Scope()).Find(&users).Error
	return users, total, err
}

func (r *repository) FindActivePaged(ctx context.Context, page pagination.Page) ([]User, int64, error) {
	q := r.db.WithContext(ctx).Model(&User{}).Where("is_active = ?", true)
	return r.paged(q, page)
}

// Search matches name or email case-insensitively, active or not.
func (r *repository) Search(ctx context.Context, query string, page pagination.Page) ([]User, int64, error) {
	like := "%" + query + "%"
	q := r.db.WithContext(ctx).Model(&User{}).Where("name ILIKE ? OR email ILIKE ?", like, like)
	return r.paged(q, page)
}

func (r *repository) FindTop5ByName(ctx context.Context, name string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? AND is_active = ?", "%"+name+"%", true).
		Order("id ASC").
		Limit(5).
		Find(&users).Error
	return users, err
}

func likeOrAll(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "%"
	}
	return "%" + s + "%"
}

func (r *repository) FindWithFilters(ctx context.Context, filter SearchFilter, page pagination.Page) ([]User, int64, error) {
	query := likeOrAll(filter.Query)
	industry := likeOrAll(filter.Industry)
	skills := likeOrAll(filter.Skills)

	q := r.db.WithContext(ctx).Model(&User{}).
		Where("is_active = ?", true).
		Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", query, query).
		Where("(? = '%' OR LOWER(industry) LIKE ?)", industry, industry).
		Where("(? = '%' OR LOWER(skills) LIKE ?)", skills, skills)
	return r.paged(q, page)
}

func (r *repository) FindActiveExcept(ctx context.Context, userID int64) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Where("is_active = ? AND id <> ?", true, userID).Find(&users).Error
	return users, err
}

func (r *repository) FindActiveExcluding(ctx context.Context, ids []int64) ([]User, error) {
	if len(ids) == 0 {
		return r.FindAllActive(ctx)
	}
	var users []User
	err := r.db.WithContext(ctx).Where("is_active = ? AND id NOT IN ?", true, ids).Find(&users).Error
	return users, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByEmailActive(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ? AND is_active = ?", email, true).Count(&count).Error
	return count > 0, err
}

func (r *repository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("created_at BETWEEN ? AND ?", from, to).Count(&count).Error
	return count, err
}

func (r *repository) CountActiveInCompanyBetween(ctx context.Context, companyID int64, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).
		Scopes(tenant.Scope(companyID)).
		Where("last_active_date BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return count, err
}
