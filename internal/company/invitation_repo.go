package company

import (
	"context"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=invitation_repo.go -destination=mock/invitation_repo_mock.go -package=mock
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	Update(ctx context.Context, inv *Invitation) error
	FindByID(ctx context.Context, id int64) (*Invitation, error)
	FindByToken(ctx context.Context, token string) (*Invitation, error)
	FindByCompany(ctx context.Context, companyID int64) ([]Invitation, error)
	FindByCompanyAndStatus(ctx context.Context, companyID int64, status InvitationStatus) ([]Invitation, error)
	FindByEmailAndStatus(ctx context.Context, email string, status InvitationStatus) ([]Invitation, error)
	FindByInviter(ctx context.Context, userID int64) ([]Invitation, error)
	FindExpired(ctx context.Context, now time.Time) ([]Invitation, error)
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
	CountPending(ctx context.Context, companyID int64) (int64, error)
	ExistsByEmailCompanyStatus(ctx context.Context, email string, companyID int64, status InvitationStatus) (bool, error)
	DeleteByCompanyAndStatus(ctx context.Context, companyID int64, status InvitationStatus) error
	WithTx(tx *gorm.DB) InvitationRepository
}

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) WithTx(tx *gorm.DB) InvitationRepository {
	return &invitationRepository{db: tx}
}

func (r *invitationRepository) Create(ctx context.Context, inv *Invitation) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invitationRepository) Update(ctx context.Context, inv *Invitation) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *invitationRepository) FindByID(ctx context.Context, id int64) (*Invitation, error) {
	var inv Invitation
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepository) FindByToken(ctx context.Context, token string) (*Invitation, error) {
	var inv Invitation
	if err := r.db.WithContext(ctx).Where("invitation_token = ?", token).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepository) FindByCompany(ctx context.Context, companyID int64) ([]Invitation, error) {
	var out []Invitation
	err := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *invitationRepository) FindByCompanyAndStatus(ctx context.Context, companyID int64, status InvitationStatus) ([]Invitation, error) {
	var out []Invitation
	err := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *invitationRepository) FindByEmailAndStatus(ctx context.Context, email string, status InvitationStatus) ([]Invitation, error) {
	var out []Invitation
	err := r.db.WithContext(ctx).Where("email = ? AND status = ?", email, status).Find(&out).Error
	return out, err
}

func (r *invitationRepository) FindByInviter(ctx context.Context, userID int64) ([]Invitation, error) {
	var out []Invitation
	err := r.db.WithContext(ctx).Where("invited_by_user_id = ?", userID).Find(&out).Error
	return out, err
}

func (r *invitationRepository) FindExpired(ctx context.Context, now time.Time) ([]Invitation, error) {
	var out []Invitation
	err := r.db.WithContext(ctx).
		Where("expires_at < ? AND status = ?", now, InvitationPending).
		Find(&out).Error
	return out, err
}

// ExpirePending flips every PENDING invitation past its expiry to EXPIRED.
func (r *invitationRepository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Invitation{}).
		Where("expires_at < ? AND status = ?", now, InvitationPending).
		Update("status", InvitationExpired)
	return res.RowsAffected, res.Error
}

func (r *invitationRepository) CountPending(ctx context.Context, companyID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Invitation{}).Scopes(tenant.Scope(companyID)).
		Where("status = ?", InvitationPending).
		Count(&count).Error
	return count, err
}

func (r *invitationRepository) ExistsByEmailCompanyStatus(ctx context.Context, email string, companyID int64, status InvitationStatus) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Invitation{}).Scopes(tenant.Scope(companyID)).
		Where("email = ? AND status = ?", email, status).
		Count(&count).Error
	return count > 0, err
}

func (r *invitationRepository) DeleteByCompanyAndStatus(ctx context.Context, companyID int64, status InvitationStatus) error {
	return r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).
		Where("status = ?", status).
		Delete(&Invitation{}).Error
}
