package mentorship

import "time"

type ProgramType string

const (
	ProgramTechnicalSkills       ProgramType = "TECHNICAL_SKILLS"
	ProgramLeadershipDevelopment ProgramType = "LEADERSHIP_DEVELOPMENT"
	ProgramCareerGrowth          ProgramType = "CAREER_GROWTH"
	ProgramSoftSkills            ProgramType = "SOFT_SKILLS"
	ProgramIndustryKnowledge     ProgramType = "INDUSTRY_KNOWLEDGE"
	ProgramNetworking            ProgramType = "NETWORKING"
	ProgramGeneral               ProgramType = "GENERAL_MENTORSHIP"
)

type Program struct {
	ID                       int64       `gorm:"column:id;primaryKey;autoIncrement"`
	CompanyID                int64       `gorm:"column:company_id;not null;index"`
	ProgramName              string      `gorm:"column:program_name;size:150;not null"`
	Description              string      `gorm:"column:description;type:text"`
	ProgramType              ProgramType `gorm:"column:program_type;size:40;not null"`
	DurationWeeks            *int        `gorm:"column:duration_weeks"`
	MaxMenteesPerMentor      *int        `gorm:"column:max_mentees_per_mentor"`
	MinMentorExperienceYears *int        `gorm:"column:min_mentor_experience_years"`
	IsActive                 bool        `gorm:"column:is_active;not null;default:true"`
	StartDate                *time.Time  `gorm:"column:start_date"`
	EndDate                  *time.Time  `gorm:"column:end_date"`
	CreatedAt                time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Program) TableName() string {
	return "mentorship_programs"
}

type RelationshipStatus string

const (
	RelationshipPending    RelationshipStatus = "PENDING"
	RelationshipActive     RelationshipStatus = "ACTIVE"
	RelationshipCompleted  RelationshipStatus = "COMPLETED"
	RelationshipTerminated RelationshipStatus = "TERMINATED"
)

type Relationship struct {
	ID             int64              `gorm:"column:id;primaryKey;autoIncrement"`
	ProgramID      int64              `gorm:"column:program_id;not null;index"`
	MentorID       int64              `gorm:"column:mentor_id;not null;index"`
	MenteeID       int64              `gorm:"column:mentee_id;not null;index"`
	Status         RelationshipStatus `gorm:"column:status;size:20;not null;default:PENDING"`
	StartDate      *time.Time         `gorm:"column:start_date"`
	EndDate        *time.Time         `gorm:"column:end_date"`
	Goals          string             `gorm:"column:goals;type:text"`
	Notes          string             `gorm:"column:notes;type:text"`
	MentorRating   *int               `gorm:"column:mentor_rating"`
	MenteeRating   *int               `gorm:"column:mentee_rating"`
	MentorFeedback string             `gorm:"column:mentor_feedback;type:text"`
	MenteeFeedback string             `gorm:"column:mentee_feedback;type:text"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Relationship) TableName() string {
	return "mentorship_relationships"
}

func (r Relationship) Involves(userID int64) bool {
	return r.MentorID == userID || r.MenteeID == userID
}

// Open relationships count against a mentor's capacity.
func (r Relationship) Open() bool {
	return r.Status == RelationshipPending || r.Status == RelationshipActive
}

type SessionType string

const (
	SessionOneOnOne        SessionType = "ONE_ON_ONE"
	SessionGroup           SessionType = "GROUP_SESSION"
	SessionWorkshop        SessionType = "WORKSHOP"
	SessionPresentation    SessionType = "PRESENTATION"
	SessionCodeReview      SessionType = "CODE_REVIEW"
	SessionCareerGuidance  SessionType = "CAREER_GUIDANCE"
	SessionSkillAssessment SessionType = "SKILL_ASSESSMENT"
	SessionNetworking      SessionType = "NETWORKING"
)

type SessionStatus string

const (
	SessionScheduled  SessionStatus = "SCHEDULED"
	SessionInProgress SessionStatus = "IN_PROGRESS"
	SessionCompleted  SessionStatus = "COMPLETED"
	SessionCancelled  SessionStatus = "CANCELLED"
	SessionNoShow     SessionStatus = "NO_SHOW"
)

type Session struct {
	ID              int64         `gorm:"column:id;primaryKey;autoIncrement"`
	RelationshipID  int64         `gorm:"column:relationship_id;not null;index"`
	SessionDate     time.Time     `gorm:"column:session_date;not null"`
	DurationMinutes *int          `gorm:"column:duration_minutes"`
	SessionType     SessionType   `gorm:"column:session_type;size:30;not null;default:ONE_ON_ONE"`
	Title           string        `gorm:"column:title;size:200;not null"`
	Description     string        `gorm:"column:description;type:text"`
	Agenda          string        `gorm:"column:agenda;type:text"`
	Notes           string        `gorm:"column:notes;type:text"`
	ActionItems     string        `gorm:"column:action_items;type:text"`
	MentorNotes     string        `gorm:"column:mentor_notes;type:text"`
	MenteeNotes     string        `gorm:"column:mentee_notes;type:text"`
	Status          SessionStatus `gorm:"column:status;size:20;not null;default:SCHEDULED"`
	CreatedAt       time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

func (Session) TableName() string {
	return "mentorship_sessions"
}
