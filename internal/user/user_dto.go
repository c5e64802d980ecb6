package user

import (
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/response"

	"gorm.io/datatypes"
)

type UserDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Industry    string    `json:"industry,omitempty"`
	Skills      string    `json:"skills,omitempty"`
	Interests   string    `json:"interests,omitempty"`
	Role        Role      `json:"role"`
	LinkedinURL string    `json:"linkedin_url,omitempty"`
	CompanyID   *int64    `json:"company_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func UserFromEntity(u User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Industry:    u.Industry,
		Skills:      u.Skills,
		Interests:   u.Interests,
		Role:        u.Role,
		LinkedinURL: u.LinkedinURL,
		CompanyID:   u.CompanyID,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func mapUsers(users []User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromEntity(u))
	}
	return out
}

// UserProfileDTO is what a user sees of their own account.
type UserProfileDTO struct {
	UserDTO
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
}

func ProfileFromEntity(u User) UserProfileDTO {
	return UserProfileDTO{UserDTO: UserFromEntity(u), LastActiveDate: u.LastActiveDate}
}

type SearchResultDTO struct {
	Query        string    `json:"query"`
	TotalResults int64     `json:"total_results"`
	TotalUsers   int64     `json:"total_users"`
	TotalPages   int       `json:"total_pages"`
	CurrentPage  int       `json:"current_page"`
	HasNext      bool      `json:"has_next"`
	HasPrevious  bool      `json:"has_previous"`
	Users        []UserDTO `json:"users"`
}

func NewSearchResult(query string, users []User, meta response.PaginationMeta) SearchResultDTO {
	return SearchResultDTO{
		Query:        query,
		TotalResults: meta.Total,
		TotalUsers:   meta.Total,
		TotalPages:   meta.TotalPages,
		CurrentPage:  meta.Page,
		HasNext:      meta.Page < meta.TotalPages,
		HasPrevious:  meta.Page > 1,
		Users:        mapUsers(users),
	}
}

type UserPreferencesDTO struct {
	PreferredIndustries      string          `json:"preferred_industries"`
	PreferredRoles           string          `json:"preferred_roles"`
	PreferredExperienceLevel ExperienceLevel `json:"preferred_experience_level,omitempty"`
	MaxMatchDistanceKm       *int            `json:"max_match_distance_km,omitempty"`
	PreferredChatDuration    int             `json:"preferred_chat_duration"`
	AvailabilityStartTime    string          `json:"availability_start_time,omitempty"`
	AvailabilityEndTime      string          `json:"availability_end_time,omitempty"`
	PreferredTimezone        string          `json:"preferred_timezone,omitempty"`
	IsAvailableForMatching   bool            `json:"is_available_for_matching"`
	AutoAcceptMatches        bool            `json:"auto_accept_matches"`
	NotificationPreferences  datatypes.JSON  `json:"notification_preferences,omitempty"`
}

func PreferencesFromEntity(p Preferences) UserPreferencesDTO {
	return UserPreferencesDTO{
		PreferredIndustries:      p.PreferredIndustries,
		PreferredRoles:           p.PreferredRoles,
		PreferredExperienceLevel: p.PreferredExperienceLevel,
		MaxMatchDistanceKm:       p.MaxMatchDistanceKm,
		PreferredChatDuration:    p.PreferredChatDuration,
		AvailabilityStartTime:    p.AvailabilityStartTime,
		AvailabilityEndTime:      p.AvailabilityEndTime,
		PreferredTimezone:        p.PreferredTimezone,
		IsAvailableForMatching:   p.IsAvailableForMatching,
		AutoAcceptMatches:        p.AutoAcceptMatches,
		NotificationPreferences:  p.NotificationPreferences,
	}
}

type UpdateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Industry    *string `json:"industry"`
	Skills      *string `json:"skills"`
	Interests   *string `json:"interests"`
	LinkedinURL *string `json:"linkedin_url" binding:"omitempty,url"`
}

type UpdatePreferencesRequest struct {
	PreferredIndustries      *string          `json:"preferred_industries"`
	PreferredRoles           *string          `json:"preferred_roles"`
	PreferredExperienceLevel *ExperienceLevel `json:"preferred_experience_level" binding:"omitempty,oneof=JUNIOR MID_LEVEL SENIOR EXECUTIVE"`
	MaxMatchDistanceKm       *int             `json:"max_match_distance_km" binding:"omitempty,min=0"`
	PreferredChatDuration    *int             `json:"preferred_chat_duration" binding:"omitempty,min=5,max=240"`
	AvailabilityStartTime    *string          `json:"availability_start_time" binding:"omitempty,datetime=15:04"`
	AvailabilityEndTime      *string          `json:"availability_end_time" binding:"omitempty,datetime=15:04"`
	PreferredTimezone        *string          `json:"preferred_timezone" binding:"omitempty,timezone"`
	IsAvailableForMatching   *bool            `json:"is_available_for_matching"`
	AutoAcceptMatches        *bool            `json:"auto_accept_matches"`
	NotificationPreferences  datatypes.JSON   `json:"notification_preferences"`
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
