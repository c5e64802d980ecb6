package mentorship

import (
	"strings"
	"time"
)

// mentorsPerProgram sizes a program's seat count from its per-mentor cap.
const mentorsPerProgram = 10

func ProgramTypeDisplay(t ProgramType) string {
	return strings.ToLower(strings.ReplaceAll(string(t), "_", " "))
}

// ProgramStatusDisplay checks, in order: inactive, full, not yet started,
// already ended.
func ProgramStatusDisplay(p Program, full bool, now time.Time) string {
	switch {
	case !p.IsActive:
		return "Inactive"
	case full:
		return "Full"
	case p.StartDate != nil && now.Before(*p.StartDate):
		return "Upcoming"
	case p.EndDate != nil && now.After(*p.EndDate):
		return "Completed"
	default:
		return "Active"
	}
}

type ProgramDTO struct {
	ID                       int64       `json:"id"`
	CompanyID                int64       `json:"company_id"`
	ProgramName              string      `json:"program_name"`
	Description              string      `json:"description,omitempty"`
	ProgramType              ProgramType `json:"program_type"`
	ProgramTypeDisplay       string      `json:"program_type_display"`
	DurationWeeks            *int        `json:"duration_weeks,omitempty"`
	MaxMenteesPerMentor      *int        `json:"max_mentees_per_mentor,omitempty"`
	MinMentorExperienceYears *int        `json:"min_mentor_experience_years,omitempty"`
	IsActive                 bool        `json:"is_active"`
	StartDate                *time.Time  `json:"start_date,omitempty"`
	EndDate                  *time.Time  `json:"end_date,omitempty"`
	CurrentParticipants      int         `json:"current_participants"`
	MaxParticipants          *int        `json:"max_participants,omitempty"`
	IsFull                   bool        `json:"is_full"`
	StatusDisplay            string      `json:"status_display"`
	CreatedAt                time.Time   `json:"created_at"`
	UpdatedAt                time.Time   `json:"updated_at"`
}

// ProgramFromEntity decorates p with its participant count as seen at now.
// A program without a per-mentor cap has no seat limit and is never full.
func ProgramFromEntity(p Program, participants int, now time.Time) ProgramDTO {
	var maxParticipants *int
	if p.MaxMenteesPerMentor != nil {
		seats := *p.MaxMenteesPerMentor * mentorsPerProgram
		maxParticipants = &seats
	}
	full := maxParticipants != nil && participants >= *maxParticipants

	return ProgramDTO{
		ID:                       p.ID,
		CompanyID:                p.CompanyID,
		ProgramName:              p.ProgramName,
		Description:              p.Description,
		ProgramType:              p.ProgramType,
		ProgramTypeDisplay:       ProgramTypeDisplay(p.ProgramType),
		DurationWeeks:            p.DurationWeeks,
		MaxMenteesPerMentor:      p.MaxMenteesPerMentor,
		MinMentorExperienceYears: p.MinMentorExperienceYears,
		IsActive:                 p.IsActive,
		StartDate:                p.StartDate,
		EndDate:                  p.EndDate,
		CurrentParticipants:      participants,
		MaxParticipants:          maxParticipants,
		IsFull:                   full,
		StatusDisplay:            ProgramStatusDisplay(p, full, now),
		CreatedAt:                p.CreatedAt,
		UpdatedAt:                p.UpdatedAt,
	}
}

type RelationshipDTO struct {
	ID             int64              `json:"id"`
	ProgramID      int64              `json:"program_id"`
	MentorID       int64              `json:"mentor_id"`
	MenteeID       int64              `json:"mentee_id"`
	Status         RelationshipStatus `json:"status"`
	StartDate      *time.Time         `json:"start_date,omitempty"`
	EndDate        *time.Time         `json:"end_date,omitempty"`
	Goals          string             `json:"goals,omitempty"`
	MentorRating   *int               `json:"mentor_rating,omitempty"`
	MenteeRating   *int               `json:"mentee_rating,omitempty"`
	MentorFeedback string             `json:"mentor_feedback,omitempty"`
	MenteeFeedback string             `json:"mentee_feedback,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

func RelationshipFromEntity(r Relationship) RelationshipDTO {
	return RelationshipDTO{
		ID:             r.ID,
		ProgramID:      r.ProgramID,
		MentorID:       r.MentorID,
		MenteeID:       r.MenteeID,
		Status:         r.Status,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Goals:          r.Goals,
		MentorRating:   r.MentorRating,
		MenteeRating:   r.MenteeRating,
		MentorFeedback: r.MentorFeedback,
		MenteeFeedback: r.MenteeFeedback,
		CreatedAt:      r.CreatedAt,
	}
}

type SessionDTO struct {
	ID              int64         `json:"id"`
	RelationshipID  int64         `json:"relationship_id"`
	SessionDate     time.Time     `json:"session_date"`
	DurationMinutes *int          `json:"duration_minutes,omitempty"`
	SessionType     SessionType   `json:"session_type"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Agenda          string        `json:"agenda,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	ActionItems     string        `json:"action_items,omitempty"`
	MentorNotes     string        `json:"mentor_notes,omitempty"`
	MenteeNotes     string        `json:"mentee_notes,omitempty"`
	Status          SessionStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

func SessionFromEntity(s Session) SessionDTO {
	return SessionDTO{
		ID:              s.ID,
		RelationshipID:  s.RelationshipID,
		SessionDate:     s.SessionDate,
		DurationMinutes: s.DurationMinutes,
		SessionType:     s.SessionType,
		Title:           s.Title,
		Description:     s.Description,
		Agenda:          s.Agenda,
		Notes:           s.Notes,
		ActionItems:     s.ActionItems,
		MentorNotes:     s.MentorNotes,
		MenteeNotes:     s.MenteeNotes,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
	}
}

type CreateProgramRequest struct {
	ProgramName              string      `json:"program_name" binding:"required,max=150"`
	Description              string      `json:"description"`
	ProgramType              ProgramType `json:"program_type" binding:"required,oneof=TECHNICAL_SKILLS LEADERSHIP_DEVELOPMENT CAREER_GROWTH SOFT_SKILLS INDUSTRY_KNOWLEDGE NETWORKING GENERAL_MENTORSHIP"`
	DurationWeeks            *int        `json:"duration_weeks" binding:"omitempty,min=1,max=104"`
	MaxMenteesPerMentor      *int        `json:"max_mentees_per_mentor" binding:"omitempty,min=1,max=20"`
	MinMentorExperienceYears *int        `json:"min_mentor_experience_years" binding:"omitempty,min=0"`
	StartDate                *time.Time  `json:"start_date"`
	EndDate                  *time.Time  `json:"end_date"`
}

type CreateRelationshipRequest struct {
	ProgramID int64  `json:"program_id" binding:"required,gt=0"`
	MentorID  int64  `json:"mentor_id" binding:"required,gt=0"`
	Goals     string `json:"goals" binding:"max=2000"`
}

type RelationshipStatusRequest struct {
	Status RelationshipStatus `json:"status" binding:"required,oneof=ACTIVE COMPLETED TERMINATED"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"max=2000"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
}

type CreateSessionRequest struct {
	SessionDate     time.Time   `json:"session_date" binding:"required"`
	SessionType     SessionType `json:"session_type" binding:"omitempty,oneof=ONE_ON_ONE GROUP_SESSION WORKSHOP PRESENTATION CODE_REVIEW CAREER_GUIDANCE SKILL_ASSESSMENT NETWORKING"`
	Title           string      `json:"title" binding:"required,max=200"`
	Description     string      `json:"description"`
	Agenda          string      `json:"agenda"`
	DurationMinutes *int        `json:"duration_minutes" binding:"omitempty,min=15,max=480"`
}

type SessionStatusRequest struct {
	Status SessionStatus `json:"status" binding:"required,oneof=IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
	Notes  string        `json:"notes"`
}

type SummaryDTO struct {
	ActiveAsMentor       int64        `json:"active_as_mentor"`
	ActiveAsMentee       int64        `json:"active_as_mentee"`
	CompletedAsMentor    int64        `json:"completed_sessions_as_mentor"`
	CompletedAsMentee    int64        `json:"completed_sessions_as_mentee"`
	AverageMentorMinutes *float64     `json:"average_mentor_session_minutes,omitempty"`
	AverageMenteeMinutes *float64     `json:"average_mentee_session_minutes,omitempty"`
	Upcoming             []SessionDTO `json:"upcoming_sessions"`
}
