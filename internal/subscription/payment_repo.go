package subscription

import (
	"context"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payment_repo.go -destination=mock/payment_repo_mock.go -package=mock
type PaymentRepository interface {
	WithTx(tx *gorm.DB) PaymentRepository
	Create(ctx context.Context, p *Payment) error
	FindBySubscription(ctx context.Context, subscriptionID int64) ([]Payment, error)
	FindByCompany(ctx context.Context, companyID int64) ([]Payment, error)
	FindByStatus(ctx context.Context, status PaymentStatus) ([]Payment, error)
	FindByMethod(ctx context.Context, method PaymentMethod) ([]Payment, error)
	FindByStripePaymentIntent(ctx context.Context, id string) (*Payment, error)
	FindByStripeCharge(ctx context.Context, id string) (*Payment, error)
	FindSuccessful(ctx context.Context) ([]Payment, error)
	FindFailed(ctx context.Context) ([]Payment, error)
	FindCreatedBetween(ctx context.Context, from, to time.Time) ([]Payment, error)
	FindAmountBetween(ctx context.Context, min, max decimal.Decimal) ([]Payment, error)
	CountByStatus(ctx context.Context, status PaymentStatus) (int64, error)
	SumSuccessfulByCompany(ctx context.Context, companyID int64) (decimal.Decimal, error)
	FindByMetadataLike(ctx context.Context, fragment string) ([]Payment, error)
	FindRefundable(ctx context.Context) ([]Payment, error)
	FindByCurrency(ctx context.Context, currency string) ([]Payment, error)
	FindByProcessedDate(ctx context.Context, date time.Time) ([]Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) WithTx(tx *gorm.DB) PaymentRepository {
	return &paymentRepository{db: tx}
}

func (r *paymentRepository) Create(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentRepository) FindBySubscription(ctx context.Context, subscriptionID int64) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *paymentRepository) FindByCompany(ctx context.Context, companyID int64) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *paymentRepository) FindByStatus(ctx context.Context, status PaymentStatus) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&out).Error
	return out, err
}

func (r *paymentRepository) FindByMethod(ctx context.Context, method PaymentMethod) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).Where("payment_method = ?", method).Find(&out).Error
	return out, err
}

func (r *paymentRepository) FindByStripePaymentIntent(ctx context.Context, id string) (*Payment, error) {
	var p Payment
	if err := r.db.WithContext(ctx).Where("stripe_payment_intent_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) FindByStripeCharge(ctx context.Context, id string) (*Payment, error) {
	var p Payment
	if err := r.db.WithContext(ctx).Where("stripe_charge_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) FindSuccessful(ctx context.Context) ([]Payment, error) {
	return r.FindByStatus(ctx, PaymentSucceeded)
}

func (r *paymentRepository) FindFailed(ctx context.Context) ([]Payment, error) {
	return r.FindByStatus(ctx, PaymentFailed)
}

func (r *paymentRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).Where("created_at BETWEEN ? AND ?", from, to).Find(&out).Error
	return out, err
}

func (r *paymentRepository) FindAmountBetween(ctx context.Context, min, max decimal.Decimal) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).Where("amount BETWEEN ? AND ?", min, max).Find(&out).Error
	return out, err
}

func (r *paymentRepository) CountByStatus(ctx context.Context, status PaymentStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Payment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// SumSuccessfulByCompany is zero for a company that never paid.
func (r *paymentRepository) SumSuccessfulByCompany(ctx context.Context, companyID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("company_id = ? AND status = ?", companyID, PaymentSucceeded).
		Row().Scan(&total)
	return total, err
}

func (r *paymentRepository) FindByMetadataLike(ctx context.Context, fragment string) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).Where("metadata LIKE ?", "%"+fragment+"%").Find(&out).Error
	return out, err
}

func (r *paymentRepository) FindRefundable(ctx context.Context) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).
		Where("status = ? AND processed_at IS NOT NULL", PaymentSucceeded).
		Find(&out).Error
	return out, err
}

func (r *paymentRepository) FindByCurrency(ctx context.Context, currency string) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).Where("currency = ?", currency).Find(&out).Error
	return out, err
}

func (r *paymentRepository) FindByProcessedDate(ctx context.Context, date time.Time) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).Where("DATE(processed_at) = DATE(?)", date).Find(&out).Error
	return out, err
}
