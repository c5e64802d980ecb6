package company

import "time"

type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "FREE"
	TierBasic      SubscriptionTier = "BASIC"
	TierPremium    SubscriptionTier = "PREMIUM"
	TierEnterprise SubscriptionTier = "ENTERPRISE"
)

type Company struct {
	ID               int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Name             string           `gorm:"column:name;size:150;not null"`
	AdminID          *int64           `gorm:"column:admin_id"`
	SubscriptionTier SubscriptionTier `gorm:"column:subscription_tier;size:20;not null;default:FREE"`
	IsActive         bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}

const (
	DefaultPrimaryColor   = "#007bff"
	DefaultSecondaryColor = "#6c757d"
)

type Settings struct {
	ID                        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CompanyID                 int64     `gorm:"column:company_id;not null;uniqueIndex"`
	LogoURL                   string    `gorm:"column:logo_url;size:500"`
	PrimaryColor              string    `gorm:"column:primary_color;size:20"`
	SecondaryColor            string    `gorm:"column:secondary_color;size:20"`
	AllowedDomains            string    `gorm:"column:allowed_domains;type:text"`
	RequireDomainVerification bool      `gorm:"column:require_domain_verification;not null"`
	AllowExternalMatching     bool      `gorm:"column:allow_external_matching;not null"`
	MaxEmployees              *int      `gorm:"column:max_employees"`
	EnableAnalytics           bool      `gorm:"column:enable_analytics;not null"`
	CompanyDescription        string    `gorm:"column:company_description;type:text"`
	WebsiteURL                string    `gorm:"column:website_url;size:500"`
	CreatedAt                 time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                 time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Settings) TableName() string {
	return "company_settings"
}

// DefaultSettings is what a company gets before it customises anything.
func DefaultSettings(companyID int64) Settings {
	return Settings{
		CompanyID:                 companyID,
		PrimaryColor:              DefaultPrimaryColor,
		SecondaryColor:            DefaultSecondaryColor,
		RequireDomainVerification: true,
		AllowExternalMatching:     false,
		EnableAnalytics:           true,
	}
}
