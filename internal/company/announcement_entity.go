package company

import "time"

type AnnouncementType string

const (
	AnnouncementGeneral   AnnouncementType = "GENERAL"
	AnnouncementHR        AnnouncementType = "HR"
	AnnouncementSocial    AnnouncementType = "SOCIAL"
	AnnouncementTechnical AnnouncementType = "TECHNICAL"
	AnnouncementUrgent    AnnouncementType = "URGENT"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

type Announcement struct {
	ID                int64            `gorm:"column:id;primaryKey;autoIncrement"`
	CompanyID         int64            `gorm:"column:company_id;not null;index"`
	AuthorUserID      int64            `gorm:"column:author_user_id;not null"`
	Title             string           `gorm:"column:title;size:200;not null"`
	Content           string           `gorm:"column:content;type:text;not null"`
	Type              AnnouncementType `gorm:"column:type;size:20;not null;default:GENERAL"`
	Priority          Priority         `gorm:"column:priority;size:20;not null;default:NORMAL"`
	TargetDepartments string           `gorm:"column:target_departments;type:text"` // JSON array of department IDs
	IsPinned          bool             `gorm:"column:is_pinned;not null;default:false"`
	IsActive          bool             `gorm:"column:is_active;not null;default:true"`
	PublishedAt       *time.Time       `gorm:"column:published_at"`
	CreatedAt         time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Announcement) TableName() string {
	return "company_announcements"
}
