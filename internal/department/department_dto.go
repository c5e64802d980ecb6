package department

import "time"

type DepartmentDTO struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	CompanyID          int64           `json:"company_id"`
	HeadUserID         *int64          `json:"head_user_id,omitempty"`
	ParentDepartmentID *int64          `json:"parent_department_id,omitempty"`
	IsActive           bool            `json:"is_active"`
	MemberCount        int64           `json:"member_count"`
	Children           []DepartmentDTO `json:"children,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func FromEntity(d Department) DepartmentDTO {
	return DepartmentDTO{
		ID:                 d.ID,
		Name:               d.Name,
		Description:        d.Description,
		CompanyID:          d.CompanyID,
		HeadUserID:         d.HeadUserID,
		ParentDepartmentID: d.ParentDepartmentID,
		IsActive:           d.IsActive,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

type MemberDTO struct {
	UserID       int64     `json:"user_id"`
	DepartmentID int64     `json:"department_id"`
	Role         Role      `json:"role"`
	JobTitle     string    `json:"job_title,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
}

func MemberFromEntity(m Membership) MemberDTO {
	return MemberDTO{
		UserID:       m.UserID,
		DepartmentID: m.DepartmentID,
		Role:         m.Role,
		JobTitle:     m.JobTitle,
		JoinedAt:     m.CreatedAt,
	}
}

type CreateDepartmentRequest struct {
	Name               string `json:"name" binding:"required,max=255"`
	Description        string `json:"description"`
	HeadUserID         *int64 `json:"head_user_id" binding:"omitempty,gt=0"`
	ParentDepartmentID *int64 `json:"parent_department_id" binding:"omitempty,gt=0"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	HeadUserID  *int64  `json:"head_user_id" binding:"omitempty,gt=0"`
}

type AddMemberRequest struct {
	UserID   int64  `json:"user_id" binding:"required,gt=0"`
	Role     Role   `json:"role" binding:"omitempty,oneof=MEMBER LEAD MANAGER HEAD"`
	JobTitle string `json:"job_title"`
}
