package subscription

import (
	"context"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=subscription_repo.go -destination=mock/subscription_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Subscription) error
	Update(ctx context.Context, s *Subscription) error
	FindActiveByCompany(ctx context.Context, companyID int64) (*Subscription, error)
	FindLatestByCompany(ctx context.Context, companyID int64) (*Subscription, error)
	FindByCompany(ctx context.Context, companyID int64) ([]Subscription, error)
	FindByStatus(ctx context.Context, status Status) ([]Subscription, error)
	FindByPlanType(ctx context.Context, plan PlanType) ([]Subscription, error)
	FindByBillingCycle(ctx context.Context, cycle BillingCycle) ([]Subscription, error)
	FindNeedingRenewal(ctx context.Context, date time.Time) ([]Subscription, error)
	FindTrialsEnding(ctx context.Context, date time.Time) ([]Subscription, error)
	FindPastDue(ctx context.Context, now time.Time) ([]Subscription, error)
	FindByStripeSubscriptionID(ctx context.Context, id string) (*Subscription, error)
	FindByStripeCustomerID(ctx context.Context, id string) ([]Subscription, error)
	CountActiveByPlanType(ctx context.Context, plan PlanType) (int64, error)
	FindExpiringBetween(ctx context.Context, from, to time.Time) ([]Subscription, error)
	FindByMetadataLike(ctx context.Context, fragment string) ([]Subscription, error)
	MarkPastDue(ctx context.Context, now time.Time) (int64, error)
	EndCanceledAtPeriodEnd(ctx context.Context, now time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, s *Subscription) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *Subscription) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID int64) (*Subscription, error) {
	var s Subscription
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("status IN ?", liveStatuses).
		Order("created_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindLatestByCompany(ctx context.Context, companyID int64) (*Subscription, error) {
	var s Subscription
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByCompany(ctx context.Context, companyID int64) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindByStatus(ctx context.Context, status Status) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&out).Error
	return out, err
}

func (r *repository) FindByPlanType(ctx context.Context, plan PlanType) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).Where("plan_type = ?", plan).Find(&out).Error
	return out, err
}

func (r *repository) FindByBillingCycle(ctx context.Context, cycle BillingCycle) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).Where("billing_cycle = ?", cycle).Find(&out).Error
	return out, err
}

func (r *repository) FindNeedingRenewal(ctx context.Context, date time.Time) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).
		Where("current_period_end <= ? AND status IN ?", date, liveStatuses).
		Find(&out).Error
	return out, err
}

func (r *repository) FindTrialsEnding(ctx context.Context, date time.Time) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).
		Where("status = ? AND trial_end <= ?", StatusTrialing, date).
		Find(&out).Error
	return out, err
}

func (r *repository) FindPastDue(ctx context.Context, now time.Time) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).
		Where("status = ? AND current_period_end < ?", StatusPastDue, now).
		Find(&out).Error
	return out, err
}

func (r *repository) FindByStripeSubscriptionID(ctx context.Context, id string) (*Subscription, error) {
	var s Subscription
	if err := r.db.WithContext(ctx).Where("stripe_subscription_id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByStripeCustomerID(ctx context.Context, id string) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).Where("stripe_customer_id = ?", id).Find(&out).Error
	return out, err
}

func (r *repository) CountActiveByPlanType(ctx context.Context, plan PlanType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Subscription{}).
		Where("plan_type = ? AND status IN ?", plan, liveStatuses).
		Count(&count).Error
	return count, err
}

func (r *repository) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).
		Where("current_period_end BETWEEN ? AND ? AND status IN ?", from, to, liveStatuses).
		Find(&out).Error
	return out, err
}

func (r *repository) FindByMetadataLike(ctx context.Context, fragment string) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).Where("metadata LIKE ?", "%"+fragment+"%").Find(&out).Error
	return out, err
}

// MarkPastDue flips ACTIVE subscriptions whose period ended and which are not
// set to lapse.
func (r *repository) MarkPastDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Subscription{}).
		Where("status = ? AND current_period_end < ? AND cancel_at_period_end = ?", StatusActive, now, false).
		Update("status", StatusPastDue)
	return res.RowsAffected, res.Error
}

func (r *repository) EndCanceledAtPeriodEnd(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Subscription{}).
		Where("status IN ? AND current_period_end < ? AND cancel_at_period_end = ?", liveStatuses, now, true).
		Updates(map[string]any{
			"status":      StatusCanceled,
			"canceled_at": now,
			"ended_at":    now,
		})
	return res.RowsAffected, res.Error
}
