package subscription

import (
	"time"

	"github.com/shopspring/decimal"
)

type PlanType string

const (
	PlanFree       PlanType = "FREE"
	PlanBasic      PlanType = "BASIC"
	PlanPremium    PlanType = "PREMIUM"
	PlanEnterprise PlanType = "ENTERPRISE"
)

// Plan is the catalogue entry behind a PlanType. Price is USD per month.
type Plan struct {
	DisplayName         string
	Price               int64
	MaxEmployees        int
	HasAdvancedFeatures bool
	HasAnalytics        bool
	HasPrioritySupport  bool
}

var planOrder = []PlanType{PlanFree, PlanBasic, PlanPremium, PlanEnterprise}

var plans = map[PlanType]Plan{
	PlanFree:       {DisplayName: "Free", Price: 0, MaxEmployees: 10},
	PlanBasic:      {DisplayName: "Basic", Price: 29, MaxEmployees: 50, HasAdvancedFeatures: true, HasAnalytics: true},
	PlanPremium:    {DisplayName: "Premium", Price: 79, MaxEmployees: 200, HasAdvancedFeatures: true, HasAnalytics: true, HasPrioritySupport: true},
	PlanEnterprise: {DisplayName: "Enterprise", Price: 199, MaxEmployees: 1000, HasAdvancedFeatures: true, HasAnalytics: true, HasPrioritySupport: true},
}

func (p PlanType) Details() (Plan, bool) {
	plan, ok := plans[p]
	return plan, ok
}

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusPastDue  Status = "PAST_DUE"
	StatusCanceled Status = "CANCELED"
	StatusUnpaid   Status = "UNPAID"
	StatusTrialing Status = "TRIALING"
)

// liveStatuses are the statuses that grant access to paid features.
var liveStatuses = []Status{StatusActive, StatusTrialing}

type BillingCycle string

const (
	CycleMonthly BillingCycle = "MONTHLY"
	CycleYearly  BillingCycle = "YEARLY"
)

type Subscription struct {
	ID                   int64           `gorm:"column:id;primaryKey;autoIncrement"`
	CompanyID            int64           `gorm:"column:company_id;not null;index"`
	PlanType             PlanType        `gorm:"column:plan_type;size:20;not null"`
	Status               Status          `gorm:"column:status;size:20;not null;default:ACTIVE"`
	CurrentPeriodStart   time.Time       `gorm:"column:current_period_start;not null"`
	CurrentPeriodEnd     time.Time       `gorm:"column:current_period_end;not null"`
	CancelAtPeriodEnd    bool            `gorm:"column:cancel_at_period_end;not null;default:false"`
	CanceledAt           *time.Time      `gorm:"column:canceled_at"`
	EndedAt              *time.Time      `gorm:"column:ended_at"`
	TrialStart           *time.Time      `gorm:"column:trial_start"`
	TrialEnd             *time.Time      `gorm:"column:trial_end"`
	Amount               decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Currency             string          `gorm:"column:currency;size:3;not null;default:USD"`
	BillingCycle         BillingCycle    `gorm:"column:billing_cycle;size:10;not null;default:MONTHLY"`
	StripeSubscriptionID *string         `gorm:"column:stripe_subscription_id"`
	StripeCustomerID     *string         `gorm:"column:stripe_customer_id"`
	PaymentMethodID      *string         `gorm:"column:payment_method_id"`
	Metadata             string          `gorm:"column:metadata;type:text"`
	CreatedAt            time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s Subscription) Live() bool {
	return s.Status == StatusActive || s.Status == StatusTrialing
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentSucceeded  PaymentStatus = "SUCCEEDED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentCanceled   PaymentStatus = "CANCELED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodDebitCard    PaymentMethod = "DEBIT_CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodWallet       PaymentMethod = "WALLET"
	MethodCrypto       PaymentMethod = "CRYPTO"
)

type Payment struct {
	ID                    int64           `gorm:"column:id;primaryKey;autoIncrement"`
	SubscriptionID        int64           `gorm:"column:subscription_id;not null;index"`
	CompanyID             int64           `gorm:"column:company_id;not null;index"`
	Amount                decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Currency              string          `gorm:"column:currency;size:3;not null;default:USD"`
	Status                PaymentStatus   `gorm:"column:status;size:20;not null;default:PENDING"`
	PaymentMethod         PaymentMethod   `gorm:"column:payment_method;size:20"`
	StripePaymentIntentID *string         `gorm:"column:stripe_payment_intent_id"`
	StripeChargeID        *string         `gorm:"column:stripe_charge_id"`
	Description           string          `gorm:"column:description"`
	FailureReason         string          `gorm:"column:failure_reason"`
	ProcessedAt           *time.Time      `gorm:"column:processed_at"`
	Metadata              string          `gorm:"column:metadata;type:text"`
	CreatedAt             time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p Payment) Refundable() bool {
	return p.Status == PaymentSucceeded && p.ProcessedAt != nil
}
