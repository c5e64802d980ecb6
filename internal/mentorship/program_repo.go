package mentorship

import (
	"context"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=program_repo.go -destination=mock/program_repo_mock.go -package=mock
type ProgramRepository interface {
	WithTx(tx *gorm.DB) ProgramRepository
	Create(ctx context.Context, program *Program) error
	Update(ctx context.Context, program *Program) error
	FindByID(ctx context.Context, id int64) (*Program, error)
	FindActiveByCompany(ctx context.Context, companyID int64) ([]Program, error)
	FindByCompany(ctx context.Context, companyID int64) ([]Program, error)
	FindByType(ctx context.Context, companyID int64, programType ProgramType) ([]Program, error)
	FindActiveInWindow(ctx context.Context, companyID int64, startBefore, endAfter time.Time) ([]Program, error)
	FindCurrentlyActive(ctx context.Context, companyID int64, now time.Time) ([]Program, error)
	FindUpcoming(ctx context.Context, companyID int64, now time.Time) ([]Program, error)
	FindCompleted(ctx context.Context, companyID int64, now time.Time) ([]Program, error)
	CountActive(ctx context.Context, companyID int64) (int64, error)
	FindByMentorExperience(ctx context.Context, companyID int64, years int) ([]Program, error)
}

type programRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) WithTx(tx *gorm.DB) ProgramRepository {
	return &programRepository{db: tx}
}

func (r *programRepository) Create(ctx context.Context, program *Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepository) Update(ctx context.Context, program *Program) error {
	return r.db.WithContext(ctx).Save(program).Error
}

func (r *programRepository) FindByID(ctx context.Context, id int64) (*Program, error) {
	var p Program
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *programRepository) FindActiveByCompany(ctx context.Context, companyID int64) ([]Program, error) {
	var out []Program
	err := r.db.WithContext(ctx).
		Scopes(tenant.ActiveScope(companyID)).
		Order("start_date ASC NULLS LAST").
		Find(&out).Error
	return out, err
}

func (r *programRepository) FindByCompany(ctx context.Context, companyID int64) ([]Program, error) {
	var out []Program
	err := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *programRepository) FindByType(ctx context.Context, companyID int64, programType ProgramType) ([]Program, error) {
	var out []Program
	err := r.db.WithContext(ctx).
		Scopes(tenant.ActiveScope(companyID)).
		Where("program_type = ?", programType).
		Find(&out).Error
	return out, err
}

// FindActiveInWindow returns active programs that started before startBefore
// and end after endAfter.
func (r *programRepository) FindActiveInWindow(ctx context.Context, companyID int64, startBefore, endAfter time.Time) ([]Program, error) {
	var out []Program
	err := r.db.WithContext(ctx).
		Scopes(tenant.ActiveScope(companyID)).
		Where("start_date < ? AND end_date > ?", startBefore, endAfter).
		Find(&out).Error
	return out, err
}

// FindCurrentlyActive treats a missing end date as open ended.
func (r *programRepository) FindCurrentlyActive(ctx context.Context, companyID int64, now time.Time) ([]Program, error) {
	var out []Program
	err := r.db.WithContext(ctx).
		Scopes(tenant.ActiveScope(companyID)).
		Where("start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Find(&out).Error
	return out, err
}

func (r *programRepository) FindUpcoming(ctx context.Context, companyID int64, now time.Time) ([]Program, error) {
	var out []Program
	err := r.db.WithContext(ctx).
		Scopes(tenant.ActiveScope(companyID)).
		Where("start_date > ?", now).
		Order("start_date ASC").
		Find(&out).Error
	return out, err
}

func (r *programRepository) FindCompleted(ctx context.Context, companyID int64, now time.Time) ([]Program, error) {
	var out []Program
	err := r.db.WithContext(ctx).
		Scopes(tenant.ActiveScope(companyID)).
		Where("end_date < ?", now).
		Find(&out).Error
	return out, err
}

func (r *programRepository) CountActive(ctx context.Context, companyID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Program{}).Scopes(tenant.ActiveScope(companyID)).Count(&count).Error
	return count, err
}

// FindByMentorExperience lists the programs a mentor with the given years of
// experience qualifies for.
func (r *programRepository) FindByMentorExperience(ctx context.Context, companyID int64, years int) ([]Program, error) {
	var out []Program
	err := r.db.WithContext(ctx).
		Scopes(tenant.ActiveScope(companyID)).
		Where("min_mentor_experience_years <= ?", years).
		Find(&out).Error
	return out, err
}
