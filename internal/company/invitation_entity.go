package company

import "time"

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "PENDING"
	InvitationAccepted  InvitationStatus = "ACCEPTED"
	InvitationExpired   InvitationStatus = "EXPIRED"
	InvitationCancelled InvitationStatus = "CANCELLED"
)

// InvitationTTL is how long an invitation token stays usable.
const InvitationTTL = 7 * 24 * time.Hour

type Invitation struct {
	ID              int64            `gorm:"column:id;primaryKey;autoIncrement"`
	CompanyID       int64            `gorm:"column:company_id;not null;index"`
	Email           string           `gorm:"column:email;size:255;not null"`
	InvitedByUserID int64            `gorm:"column:invited_by_user_id;not null"`
	DepartmentID    *int64           `gorm:"column:department_id"`
	Status          InvitationStatus `gorm:"column:status;size:20;not null;default:PENDING"`
	InvitationToken string           `gorm:"column:invitation_token;size:64;not null"`
	ExpiresAt       time.Time        `gorm:"column:expires_at;not null"`
	AcceptedAt      *time.Time       `gorm:"column:accepted_at"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Invitation) TableName() string {
	return "company_invitations"
}

func (i Invitation) IsExpired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}
