package subscription

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	monthsPerYear   = 12
	trialDays       = 14
	yearlyDiscount  = "0.8"
	defaultCurrency = "USD"
)

var statusDisplay = map[Status]string{
	StatusActive:   "Active",
	StatusTrialing: "Trial",
	StatusPastDue:  "Past Due",
	StatusCanceled: "Canceled",
	StatusUnpaid:   "Unpaid",
}

var statusColor = map[Status]string{
	StatusActive:   "#28a745",
	StatusTrialing: "#17a2b8",
	StatusPastDue:  "#ffc107",
	StatusCanceled: "#6c757d",
	StatusUnpaid:   "#dc3545",
}

var paymentStatusDisplay = map[PaymentStatus]string{
	PaymentPending:    "Pending",
	PaymentProcessing: "Processing",
	PaymentSucceeded:  "Successful",
	PaymentFailed:     "Failed",
	PaymentCanceled:   "Canceled",
	PaymentRefunded:   "Refunded",
}

var paymentStatusColor = map[PaymentStatus]string{
	PaymentPending:    "#ffc107",
	PaymentProcessing: "#17a2b8",
	PaymentSucceeded:  "#28a745",
	PaymentFailed:     "#dc3545",
	PaymentCanceled:   "#6c757d",
	PaymentRefunded:   "#fd7e14",
}

type SubscriptionDTO struct {
	ID                  int64           `json:"id"`
	CompanyID           int64           `json:"company_id"`
	PlanType            PlanType        `json:"plan_type"`
	PlanDisplayName     string          `json:"plan_display_name"`
	MaxEmployees        int             `json:"max_employees"`
	HasAdvancedFeatures bool            `json:"has_advanced_features"`
	HasAnalytics        bool            `json:"has_analytics"`
	HasPrioritySupport  bool            `json:"has_priority_support"`
	Status              Status          `json:"status"`
	StatusDisplay       string          `json:"status_display"`
	StatusColor         string          `json:"status_color"`
	IsActive            bool            `json:"is_active"`
	IsTrialActive       bool            `json:"is_trial_active"`
	IsCanceled          bool            `json:"is_canceled"`
	IsPastDue           bool            `json:"is_past_due"`
	CurrentPeriodStart  time.Time       `json:"current_period_start"`
	CurrentPeriodEnd    time.Time       `json:"current_period_end"`
	NextBillingDate     *time.Time      `json:"next_billing_date,omitempty"`
	CancelAtPeriodEnd   bool            `json:"cancel_at_period_end"`
	CanceledAt          *time.Time      `json:"canceled_at,omitempty"`
	TrialEnd            *time.Time      `json:"trial_end,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	MonthlyAmount       decimal.Decimal `json:"monthly_amount"`
	AnnualAmount        decimal.Decimal `json:"annual_amount"`
	Currency            string          `json:"currency"`
	BillingCycle        BillingCycle    `json:"billing_cycle"`
	CreatedAt           time.Time       `json:"created_at"`
}

// FromEntity projects s as seen at now; trial state depends on the clock.
func FromEntity(s Subscription, now time.Time) SubscriptionDTO {
	plan, _ := s.PlanType.Details()
	canceled := s.Status == StatusCanceled || s.CancelAtPeriodEnd

	dto := SubscriptionDTO{
		ID:                  s.ID,
		CompanyID:           s.CompanyID,
		PlanType:            s.PlanType,
		PlanDisplayName:     plan.DisplayName,
		MaxEmployees:        plan.MaxEmployees,
		HasAdvancedFeatures: plan.HasAdvancedFeatures,
		HasAnalytics:        plan.HasAnalytics,
		HasPrioritySupport:  plan.HasPrioritySupport,
		Status:              s.Status,
		StatusDisplay:       statusDisplay[s.Status],
		StatusColor:         statusColor[s.Status],
		IsActive:            s.Live(),
		IsTrialActive:       s.TrialEnd != nil && now.Before(*s.TrialEnd),
		IsCanceled:          canceled,
		IsPastDue:           s.Status == StatusPastDue,
		CurrentPeriodStart:  s.CurrentPeriodStart,
		CurrentPeriodEnd:    s.CurrentPeriodEnd,
		CancelAtPeriodEnd:   s.CancelAtPeriodEnd,
		CanceledAt:          s.CanceledAt,
		TrialEnd:            s.TrialEnd,
		Amount:              s.Amount,
		MonthlyAmount:       MonthlyAmount(s.Amount, s.BillingCycle),
		AnnualAmount:        AnnualAmount(s.Amount, s.BillingCycle),
		Currency:            s.Currency,
		BillingCycle:        s.BillingCycle,
		CreatedAt:           s.CreatedAt,
	}
	// an immediately canceled subscription is never billed again
	if !canceled || s.CancelAtPeriodEnd {
		end := s.CurrentPeriodEnd
		dto.NextBillingDate = &end
	}
	return dto
}

// MonthlyAmount spreads a yearly charge over twelve months, rounding half up
// to cents.
func MonthlyAmount(amount decimal.Decimal, cycle BillingCycle) decimal.Decimal {
	if cycle != CycleYearly {
		return amount
	}
	return amount.DivRound(decimal.NewFromInt(monthsPerYear), 2)
}

func AnnualAmount(amount decimal.Decimal, cycle BillingCycle) decimal.Decimal {
	if cycle == CycleYearly {
		return amount
	}
	return amount.Mul(decimal.NewFromInt(monthsPerYear))
}

// PlanAmount is the charge per billing cycle; yearly billing gets 20% off.
func PlanAmount(plan Plan, cycle BillingCycle) decimal.Decimal {
	price := decimal.NewFromInt(plan.Price)
	if cycle == CycleYearly {
		return price.Mul(decimal.NewFromInt(monthsPerYear)).Mul(decimal.RequireFromString(yearlyDiscount)).Round(2)
	}
	return price
}

type PlanDTO struct {
	PlanType            PlanType        `json:"plan_type"`
	DisplayName         string          `json:"display_name"`
	MonthlyPrice        decimal.Decimal `json:"monthly_price"`
	YearlyPrice         decimal.Decimal `json:"yearly_price"`
	MaxEmployees        int             `json:"max_employees"`
	HasAdvancedFeatures bool            `json:"has_advanced_features"`
	HasAnalytics        bool            `json:"has_analytics"`
	HasPrioritySupport  bool            `json:"has_priority_support"`
}

func PlanFromType(p PlanType) PlanDTO {
	plan, _ := p.Details()
	return PlanDTO{
		PlanType:            p,
		DisplayName:         plan.DisplayName,
		MonthlyPrice:        PlanAmount(plan, CycleMonthly),
		YearlyPrice:         PlanAmount(plan, CycleYearly),
		MaxEmployees:        plan.MaxEmployees,
		HasAdvancedFeatures: plan.HasAdvancedFeatures,
		HasAnalytics:        plan.HasAnalytics,
		HasPrioritySupport:  plan.HasPrioritySupport,
	}
}

type PaymentDTO struct {
	ID             int64           `json:"id"`
	SubscriptionID int64           `json:"subscription_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         PaymentStatus   `json:"status"`
	StatusDisplay  string          `json:"status_display"`
	StatusColor    string          `json:"status_color"`
	PaymentMethod  PaymentMethod   `json:"payment_method,omitempty"`
	Description    string          `json:"description,omitempty"`
	FailureReason  string          `json:"failure_reason,omitempty"`
	IsRefundable   bool            `json:"is_refundable"`
	ProcessedAt    *time.Time      `json:"processed_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func PaymentFromEntity(p Payment) PaymentDTO {
	return PaymentDTO{
		ID:             p.ID,
		SubscriptionID: p.SubscriptionID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Status:         p.Status,
		StatusDisplay:  paymentStatusDisplay[p.Status],
		StatusColor:    paymentStatusColor[p.Status],
		PaymentMethod:  p.PaymentMethod,
		Description:    p.Description,
		FailureReason:  p.FailureReason,
		IsRefundable:   p.Refundable(),
		ProcessedAt:    p.ProcessedAt,
		CreatedAt:      p.CreatedAt,
	}
}

type PaymentSummaryDTO struct {
	Payments  []PaymentDTO    `json:"payments"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

type CreateSubscriptionRequest struct {
	PlanType     PlanType     `json:"plan_type" binding:"required,oneof=FREE BASIC PREMIUM ENTERPRISE"`
	BillingCycle BillingCycle `json:"billing_cycle" binding:"omitempty,oneof=MONTHLY YEARLY"`
}

type ChangePlanRequest struct {
	PlanType PlanType `json:"plan_type" binding:"required,oneof=FREE BASIC PREMIUM ENTERPRISE"`
}

type CancelRequest struct {
	AtPeriodEnd bool `json:"at_period_end"`
}
