package company

import "time"

type CompanyDTO struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	AdminID          *int64           `json:"admin_id,omitempty"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier"`
	IsActive         bool             `json:"is_active"`
	EmployeeCount    int64            `json:"employee_count"`
	DepartmentCount  int64            `json:"department_count"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func CompanyFromEntity(c Company) CompanyDTO {
	return CompanyDTO{
		ID:               c.ID,
		Name:             c.Name,
		AdminID:          c.AdminID,
		SubscriptionTier: c.SubscriptionTier,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

type SettingsDTO struct {
	CompanyID                 int64  `json:"company_id"`
	LogoURL                   string `json:"logo_url,omitempty"`
	PrimaryColor              string `json:"primary_color"`
	SecondaryColor            string `json:"secondary_color"`
	AllowedDomains            string `json:"allowed_domains,omitempty"`
	RequireDomainVerification bool   `json:"require_domain_verification"`
	AllowExternalMatching     bool   `json:"allow_external_matching"`
	MaxEmployees              *int   `json:"max_employees,omitempty"`
	EnableAnalytics           bool   `json:"enable_analytics"`
	CompanyDescription        string `json:"company_description,omitempty"`
	WebsiteURL                string `json:"website_url,omitempty"`
}

func SettingsFromEntity(s Settings) SettingsDTO {
	return SettingsDTO{
		CompanyID:                 s.CompanyID,
		LogoURL:                   s.LogoURL,
		PrimaryColor:              s.PrimaryColor,
		SecondaryColor:            s.SecondaryColor,
		AllowedDomains:            s.AllowedDomains,
		RequireDomainVerification: s.RequireDomainVerification,
		AllowExternalMatching:     s.AllowExternalMatching,
		MaxEmployees:              s.MaxEmployees,
		EnableAnalytics:           s.EnableAnalytics,
		CompanyDescription:        s.CompanyDescription,
		WebsiteURL:                s.WebsiteURL,
	}
}

type AnnouncementDTO struct {
	ID                int64            `json:"id"`
	CompanyID         int64            `json:"company_id"`
	AuthorUserID      int64            `json:"author_user_id"`
	Title             string           `json:"title"`
	Content           string           `json:"content"`
	Type              AnnouncementType `json:"type"`
	Priority          Priority         `json:"priority"`
	TargetDepartments string           `json:"target_departments,omitempty"`
	IsPinned          bool             `json:"is_pinned"`
	IsActive          bool             `json:"is_active"`
	PublishedAt       *time.Time       `json:"published_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func AnnouncementFromEntity(a Announcement) AnnouncementDTO {
	return AnnouncementDTO{
		ID:                a.ID,
		CompanyID:         a.CompanyID,
		AuthorUserID:      a.AuthorUserID,
		Title:             a.Title,
		Content:           a.Content,
		Type:              a.Type,
		Priority:          a.Priority,
		TargetDepartments: a.TargetDepartments,
		IsPinned:          a.IsPinned,
		IsActive:          a.IsActive,
		PublishedAt:       a.PublishedAt,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

type InvitationDTO struct {
	ID              int64            `json:"id"`
	CompanyID       int64            `json:"company_id"`
	Email           string           `json:"email"`
	InvitedByUserID int64            `json:"invited_by_user_id"`
	DepartmentID    *int64           `json:"department_id,omitempty"`
	Status          InvitationStatus `json:"status"`
	Token           string           `json:"token,omitempty"`
	ExpiresAt       time.Time        `json:"expires_at"`
	AcceptedAt      *time.Time       `json:"accepted_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	IsExpired       bool             `json:"is_expired"`
}

// InvitationFromEntity leaves the token out; only the inviter gets it back.
func InvitationFromEntity(i Invitation, now time.Time) InvitationDTO {
	return InvitationDTO{
		ID:              i.ID,
		CompanyID:       i.CompanyID,
		Email:           i.Email,
		InvitedByUserID: i.InvitedByUserID,
		DepartmentID:    i.DepartmentID,
		Status:          i.Status,
		ExpiresAt:       i.ExpiresAt,
		AcceptedAt:      i.AcceptedAt,
		CreatedAt:       i.CreatedAt,
		IsExpired:       i.Status == InvitationPending && i.IsExpired(now),
	}
}

type UpdateCompanyRequest struct {
	Name             *string           `json:"name" binding:"omitempty,min=2,max=150"`
	SubscriptionTier *SubscriptionTier `json:"subscription_tier" binding:"omitempty,oneof=FREE BASIC PREMIUM ENTERPRISE"`
}

type UpdateSettingsRequest struct {
	LogoURL                   *string `json:"logo_url" binding:"omitempty,url"`
	PrimaryColor              *string `json:"primary_color" binding:"omitempty,hexcolor"`
	SecondaryColor            *string `json:"secondary_color" binding:"omitempty,hexcolor"`
	AllowedDomains            *string `json:"allowed_domains"`
	RequireDomainVerification *bool   `json:"require_domain_verification"`
	AllowExternalMatching     *bool   `json:"allow_external_matching"`
	MaxEmployees              *int    `json:"max_employees" binding:"omitempty,min=1"`
	EnableAnalytics           *bool   `json:"enable_analytics"`
	CompanyDescription        *string `json:"company_description"`
	WebsiteURL                *string `json:"website_url" binding:"omitempty,url"`
}

type CreateAnnouncementRequest struct {
	Title             string           `json:"title" binding:"required,min=5,max=200"`
	Content           string           `json:"content" binding:"required"`
	Type              AnnouncementType `json:"type" binding:"omitempty,oneof=GENERAL HR SOCIAL TECHNICAL URGENT"`
	Priority          Priority         `json:"priority" binding:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	TargetDepartments string           `json:"target_departments"`
	IsPinned          bool             `json:"is_pinned"`
	PublishAt         *time.Time       `json:"publish_at"`
}

type InviteRequest struct {
	Email        string `json:"email" binding:"required,email"`
	DepartmentID *int64 `json:"department_id" binding:"omitempty,gt=0"`
}

type AcceptInvitationRequest struct {
	Token string `json:"token" binding:"required"`
}

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,min=2,max=150"`
}
