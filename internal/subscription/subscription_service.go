package subscription

import (
	"context"
	"errors"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company"
	companyerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"
	subscriptionerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=subscription_service.go -destination=mock/subscription_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID int64, req CreateSubscriptionRequest) (SubscriptionDTO, error)
	Current(ctx context.Context, companyID int64) (SubscriptionDTO, error)
	History(ctx context.Context, companyID int64) ([]SubscriptionDTO, error)
	ChangePlan(ctx context.Context, companyID int64, plan PlanType) (SubscriptionDTO, error)
	Cancel(ctx context.Context, companyID int64, atPeriodEnd bool) (SubscriptionDTO, error)
	Reactivate(ctx context.Context, companyID int64) (SubscriptionDTO, error)
	Plans() []PlanDTO
	CanUpgrade(ctx context.Context, companyID int64, plan PlanType) (bool, error)
	Payments(ctx context.Context, companyID int64) (PaymentSummaryDTO, error)
	MarkPastDue(ctx context.Context, now time.Time) (int64, error)
	EndCanceled(ctx context.Context, now time.Time) (int64, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	payments  PaymentRepository
	companies company.Repository
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(db *gorm.DB, repo Repository, payments PaymentRepository, companies company.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("subscription.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("subscription.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		payments:  payments,
		companies: companies,
		logger:    l,
		now:       time.Now,
	}
}

// Create opens a subscription with a fourteen day trial and moves the
// company onto the plan's tier.
func (s *service) Create(ctx context.Context, companyID int64, req CreateSubscriptionRequest) (SubscriptionDTO, error) {
	if companyID <= 0 {
		return SubscriptionDTO{}, subscriptionerrors.ErrMissingCompany
	}
	plan, ok := req.PlanType.Details()
	if !ok {
		return SubscriptionDTO{}, subscriptionerrors.ErrUnknownPlan
	}
	cycle := req.BillingCycle
	if cycle == "" {
		cycle = CycleMonthly
	}

	c, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubscriptionDTO{}, companyerrors.ErrCompanyNotFound
		}
		return SubscriptionDTO{}, err
	}

	_, err = s.repo.FindActiveByCompany(ctx, companyID)
	switch {
	case err == nil:
		return SubscriptionDTO{}, subscriptionerrors.ErrSubscriptionExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return SubscriptionDTO{}, err
	}

	now := s.now()
	trialEnd := now.AddDate(0, 0, trialDays)
	sub := &Subscription{
		CompanyID:          companyID,
		PlanType:           req.PlanType,
		Status:             StatusTrialing,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   periodEnd(now, cycle),
		TrialStart:         &now,
		TrialEnd:           &trialEnd,
		Amount:             PlanAmount(plan, cycle),
		Currency:           defaultCurrency,
		BillingCycle:       cycle,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, sub); err != nil {
			return err
		}
		c.SubscriptionTier = company.SubscriptionTier(req.PlanType)
		return s.companies.WithTx(tx).Update(ctx, c)
	})
	if err != nil {
		return SubscriptionDTO{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("subscription created",
		zap.Int64("company_id", companyID),
		zap.String("plan", string(req.PlanType)),
		zap.String("cycle", string(cycle)),
	)
	return FromEntity(*sub, now), nil
}

func (s *service) Current(ctx context.Context, companyID int64) (SubscriptionDTO, error) {
	sub, err := s.repo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return SubscriptionDTO{}, mapRepositoryError(err)
	}
	return FromEntity(*sub, s.now()), nil
}

func (s *service) History(ctx context.Context, companyID int64) ([]SubscriptionDTO, error) {
	items, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]SubscriptionDTO, 0, len(items))
	for _, it := range items {
		out = append(out, FromEntity(it, now))
	}
	return out, nil
}

func (s *service) ChangePlan(ctx context.Context, companyID int64, planType PlanType) (SubscriptionDTO, error) {
	plan, ok := planType.Details()
	if !ok {
		return SubscriptionDTO{}, subscriptionerrors.ErrUnknownPlan
	}
	sub, err := s.repo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubscriptionDTO{}, subscriptionerrors.ErrSubscriptionInactive
		}
		return SubscriptionDTO{}, err
	}

	sub.PlanType = planType
	sub.Amount = PlanAmount(plan, sub.BillingCycle)
	if err := s.saveWithTier(ctx, sub, company.SubscriptionTier(planType)); err != nil {
		return SubscriptionDTO{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("subscription plan changed",
		zap.Int64("subscription_id", sub.ID),
		zap.String("plan", string(planType)),
	)
	return FromEntity(*sub, s.now()), nil
}

// Cancel either lapses the subscription when its period ends or ends it now,
// dropping the company to the free tier.
func (s *service) Cancel(ctx context.Context, companyID int64, atPeriodEnd bool) (SubscriptionDTO, error) {
	sub, err := s.repo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return SubscriptionDTO{}, mapRepositoryError(err)
	}

	now := s.now()
	if atPeriodEnd {
		sub.CancelAtPeriodEnd = true
		if err := s.repo.Update(ctx, sub); err != nil {
			return SubscriptionDTO{}, err
		}
		return FromEntity(*sub, now), nil
	}

	sub.Status = StatusCanceled
	sub.CanceledAt = &now
	sub.EndedAt = &now
	if err := s.saveWithTier(ctx, sub, company.TierFree); err != nil {
		return SubscriptionDTO{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("subscription canceled", zap.Int64("subscription_id", sub.ID))
	return FromEntity(*sub, now), nil
}

func (s *service) Reactivate(ctx context.Context, companyID int64) (SubscriptionDTO, error) {
	sub, err := s.repo.FindLatestByCompany(ctx, companyID)
	if err != nil {
		return SubscriptionDTO{}, mapRepositoryError(err)
	}
	if sub.Status != StatusCanceled {
		return SubscriptionDTO{}, subscriptionerrors.ErrNotCanceled
	}

	now := s.now()
	sub.Status = StatusActive
	sub.CancelAtPeriodEnd = false
	sub.CanceledAt = nil
	sub.EndedAt = nil
	sub.CurrentPeriodStart = now
	sub.CurrentPeriodEnd = periodEnd(now, sub.BillingCycle)
	if err := s.saveWithTier(ctx, sub, company.SubscriptionTier(sub.PlanType)); err != nil {
		return SubscriptionDTO{}, err
	}
	return FromEntity(*sub, now), nil
}

func (s *service) Plans() []PlanDTO {
	out := make([]PlanDTO, 0, len(planOrder))
	for _, p := range planOrder {
		out = append(out, PlanFromType(p))
	}
	return out
}

// CanUpgrade is true for any plan pricier than the current one, or any plan
// at all when the company has none.
func (s *service) CanUpgrade(ctx context.Context, companyID int64, planType PlanType) (bool, error) {
	target, ok := planType.Details()
	if !ok {
		return false, subscriptionerrors.ErrUnknownPlan
	}
	sub, err := s.repo.FindActiveByCompany(ctx, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	current, _ := sub.PlanType.Details()
	return target.Price > current.Price, nil
}

func (s *service) Payments(ctx context.Context, companyID int64) (PaymentSummaryDTO, error) {
	items, err := s.payments.FindByCompany(ctx, companyID)
	if err != nil {
		return PaymentSummaryDTO{}, err
	}
	total, err := s.payments.SumSuccessfulByCompany(ctx, companyID)
	if err != nil {
		return PaymentSummaryDTO{}, err
	}
	out := PaymentSummaryDTO{Payments: make([]PaymentDTO, 0, len(items)), TotalPaid: total}
	for _, p := range items {
		out.Payments = append(out.Payments, PaymentFromEntity(p))
	}
	return out, nil
}

func (s *service) MarkPastDue(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.repo.MarkPastDue(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		contextutil.GetLogger(ctx, s.logger).Info("subscriptions marked past due", zap.Int64("count", n))
	}
	return n, nil
}

func (s *service) EndCanceled(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.repo.EndCanceledAtPeriodEnd(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		contextutil.GetLogger(ctx, s.logger).Info("lapsed subscriptions ended", zap.Int64("count", n))
	}
	return n, nil
}

func (s *service) saveWithTier(ctx context.Context, sub *Subscription, tier company.SubscriptionTier) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Update(ctx, sub); err != nil {
			return err
		}
		companies := s.companies.WithTx(tx)
		c, err := companies.FindByID(ctx, sub.CompanyID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		c.SubscriptionTier = tier
		return companies.Update(ctx, c)
	})
}

func periodEnd(start time.Time, cycle BillingCycle) time.Time {
	if cycle == CycleYearly {
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0)
}
