package department

import "time"

type Department struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name               string    `gorm:"column:name;size:255;not null"`
	Description        string    `gorm:"column:description;type:text"`
	CompanyID          int64     `gorm:"column:company_id;not null;index"`
	HeadUserID         *int64    `gorm:"column:head_user_id"`
	ParentDepartmentID *int64    `gorm:"column:parent_department_id;index"`
	IsActive           bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Department) TableName() string {
	return "departments"
}

type Role string

const (
	RoleMember  Role = "MEMBER"
	RoleLead    Role = "LEAD"
	RoleManager Role = "MANAGER"
	RoleHead    Role = "HEAD"
)

// Membership places a user in a department.
type Membership struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       int64     `gorm:"column:user_id;not null;index"`
	DepartmentID int64     `gorm:"column:department_id;not null;index"`
	Role         Role      `gorm:"column:role;size:20;not null;default:MEMBER"`
	JobTitle     string    `gorm:"column:job_title;size:255"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Membership) TableName() string {
	return "user_departments"
}
