package match

import (
	"encoding/json"
	"math"
	"time"
)

type MatchDTO struct {
	ID                 int64      `json:"id"`
	User1ID            int64      `json:"user1_id"`
	User2ID            int64      `json:"user2_id"`
	User1Name          string     `json:"user1_name,omitempty"`
	User2Name          string     `json:"user2_name,omitempty"`
	User1Email         string     `json:"user1_email,omitempty"`
	User2Email         string     `json:"user2_email,omitempty"`
	MatchType          Type       `json:"match_type"`
	Status             Status     `json:"status"`
	MatchTime          *time.Time `json:"match_time,omitempty"`
	ScheduledTime      *time.Time `json:"scheduled_time,omitempty"`
	DurationMinutes    int        `json:"duration_minutes"`
	CompatibilityScore *float64   `json:"compatibility_score,omitempty"`
	MatchReason        string     `json:"match_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromEntity(m Match) MatchDTO {
	return MatchDTO{
		ID:                 m.ID,
		User1ID:            m.User1ID,
		User2ID:            m.User2ID,
		MatchType:          m.MatchType,
		Status:             m.Status,
		MatchTime:          m.MatchTime,
		ScheduledTime:      m.ScheduledTime,
		DurationMinutes:    m.DurationMinutes,
		CompatibilityScore: m.CompatibilityScore,
		MatchReason:        m.MatchReason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

type FeedbackDTO struct {
	ID                     int64     `json:"id"`
	MatchID                int64     `json:"match_id"`
	UserID                 int64     `json:"user_id"`
	QualityRating          int       `json:"quality_rating"`
	ConversationRating     *int      `json:"conversation_rating,omitempty"`
	RelevanceRating        *int      `json:"relevance_rating,omitempty"`
	WouldMeetAgain         *bool     `json:"would_meet_again,omitempty"`
	FeedbackText           string    `json:"feedback_text,omitempty"`
	ImprovementSuggestions string    `json:"improvement_suggestions,omitempty"`
	Tags                   string    `json:"tags,omitempty"`
	AverageRating          float64   `json:"average_rating"`
	CreatedAt              time.Time `json:"created_at"`
}

func FeedbackFromEntity(f Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:                     f.ID,
		MatchID:                f.MatchID,
		UserID:                 f.UserID,
		QualityRating:          f.QualityRating,
		ConversationRating:     f.ConversationRating,
		RelevanceRating:        f.RelevanceRating,
		WouldMeetAgain:         f.WouldMeetAgain,
		FeedbackText:           f.FeedbackText,
		ImprovementSuggestions: f.ImprovementSuggestions,
		Tags:                   f.Tags,
		AverageRating:          averageRating(f),
		CreatedAt:              f.CreatedAt,
	}
}

// averageRating averages the ratings that were given, to one decimal.
func averageRating(f Feedback) float64 {
	sum, n := float64(f.QualityRating), 1.0
	for _, r := range []*int{f.ConversationRating, f.RelevanceRating} {
		if r != nil {
			sum += float64(*r)
			n++
		}
	}
	return math.Round(sum/n*10) / 10
}

type MeetingDTO struct {
	ID                   int64         `json:"id"`
	MatchID              int64         `json:"match_id"`
	OrganizerID          int64         `json:"organizer_id"`
	OrganizerName        string        `json:"organizer_name,omitempty"`
	ParticipantID        int64         `json:"participant_id"`
	ParticipantName      string        `json:"participant_name,omitempty"`
	MeetingTitle         string        `json:"meeting_title"`
	MeetingDescription   string        `json:"meeting_description,omitempty"`
	ScheduledStartTime   time.Time     `json:"scheduled_start_time"`
	ScheduledEndTime     time.Time     `json:"scheduled_end_time"`
	DurationMinutes      int           `json:"duration_minutes"`
	TimeZone             string        `json:"time_zone"`
	MeetingType          MeetingType   `json:"meeting_type,omitempty"`
	MeetingLocation      string        `json:"meeting_location,omitempty"`
	Status               MeetingStatus `json:"status"`
	ConversationStarters []string      `json:"conversation_starters"`
	MeetingNotes         string        `json:"meeting_notes,omitempty"`
}

func MeetingFromEntity(m Meeting) MeetingDTO {
	starters := []string{}
	if len(m.ConversationStarters) > 0 {
		_ = json.Unmarshal(m.ConversationStarters, &starters)
	}
	return MeetingDTO{
		ID:                   m.ID,
		MatchID:              m.MatchID,
		OrganizerID:          m.OrganizerID,
		ParticipantID:        m.ParticipantID,
		MeetingTitle:         m.MeetingTitle,
		MeetingDescription:   m.MeetingDescription,
		ScheduledStartTime:   m.ScheduledStartTime,
		ScheduledEndTime:     m.ScheduledEndTime,
		DurationMinutes:      int(m.ScheduledEndTime.Sub(m.ScheduledStartTime).Minutes()),
		TimeZone:             m.TimeZone,
		MeetingType:          m.MeetingType,
		MeetingLocation:      m.MeetingLocation,
		Status:               m.Status,
		ConversationStarters: starters,
		MeetingNotes:         m.MeetingNotes,
	}
}

type ConversationStarterDTO struct {
	ID              int64       `json:"id"`
	Template        string      `json:"template"`
	Category        string      `json:"category"`
	ContextType     ContextType `json:"context_type,omitempty"`
	DifficultyLevel int         `json:"difficulty_level"`
	SuccessRate     float64     `json:"success_rate"`
	UsageCount      int64       `json:"usage_count"`
}

func StarterFromEntity(s ConversationStarter) ConversationStarterDTO {
	return ConversationStarterDTO{
		ID:              s.ID,
		Template:        s.Template,
		Category:        s.Category,
		ContextType:     s.ContextType,
		DifficultyLevel: s.DifficultyLevel,
		SuccessRate:     s.SuccessRate,
		UsageCount:      s.UsageCount,
	}
}

type SmartMatchDTO struct {
	UserID               int64              `json:"user_id"`
	Name                 string             `json:"name"`
	Email                string             `json:"email"`
	Industry             string             `json:"industry,omitempty"`
	Skills               string             `json:"skills,omitempty"`
	Interests            string             `json:"interests,omitempty"`
	LinkedinURL          string             `json:"linkedin_url,omitempty"`
	CompatibilityScore   float64            `json:"compatibility_score"`
	CompatibilityFactors map[string]float64 `json:"compatibility_factors"`
	MatchReason          string             `json:"match_reason,omitempty"`
}

type TimeSlotDTO struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DisplayText string    `json:"display_text"`
	IsAvailable bool      `json:"is_available"`
}

type ChatMessageDTO struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	MessageType     ChatMessageType `json:"message_type"`
	Content         string          `json:"content"`
	Timestamp       time.Time       `json:"timestamp"`
	IsSystemMessage bool            `json:"is_system_message"`
}

func ChatFromEntity(c ChatHistory) ChatMessageDTO {
	return ChatMessageDTO{
		ID:              c.ID,
		UserID:          c.UserID,
		MessageType:     c.MessageType,
		Content:         c.Content,
		Timestamp:       c.Timestamp,
		IsSystemMessage: c.IsSystemMessage,
	}
}

type QualityStatsDTO struct {
	TotalFeedback      int64   `json:"total_feedback"`
	PositiveFeedback   int64   `json:"positive_feedback"`
	HighQualityMatches int64   `json:"high_quality_matches"`
	PositiveRate       float64 `json:"positive_rate"`
	HighQualityRate    float64 `json:"high_quality_rate"`
}

type CreateMatchRequest struct {
	TargetUserID    int64      `json:"target_user_id" binding:"required,min=1"`
	MatchType       Type       `json:"match_type" binding:"omitempty,oneof=COFFEE_CHAT MENTORSHIP NETWORKING TOPIC_DISCUSSION"`
	Message         string     `json:"message" binding:"max=500"`
	PreferredTime   *time.Time `json:"preferred_time"`
	DurationMinutes int        `json:"duration_minutes" binding:"omitempty,min=15,max=240"`
}

type RespondRequest struct {
	Status          Status     `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
	ScheduledTime   *time.Time `json:"scheduled_time"`
	DurationMinutes int        `json:"duration_minutes" binding:"omitempty,min=15,max=240"`
}

type FeedbackRequest struct {
	QualityRating          int      `json:"quality_rating" binding:"required,min=1,max=5"`
	ConversationRating     *int     `json:"conversation_rating" binding:"omitempty,min=1,max=5"`
	RelevanceRating        *int     `json:"relevance_rating" binding:"omitempty,min=1,max=5"`
	WouldMeetAgain         *bool    `json:"would_meet_again"`
	FeedbackText           string   `json:"feedback_text" binding:"max=2000"`
	ImprovementSuggestions string   `json:"improvement_suggestions" binding:"max=2000"`
	Tags                   []string `json:"tags" binding:"max=10,dive,max=50"`
}

type ScheduleMeetingRequest struct {
	StartTime   time.Time   `json:"start_time" binding:"required"`
	EndTime     time.Time   `json:"end_time" binding:"required,gtfield=StartTime"`
	MeetingType MeetingType `json:"meeting_type" binding:"omitempty,oneof=VIRTUAL IN_PERSON PHONE_CALL COFFEE_CHAT"`
	Location    string      `json:"location" binding:"max=500"`
}

type RescheduleRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
}

type MeetingNoteRequest struct {
	Notes string `json:"notes" binding:"max=4000"`
}
