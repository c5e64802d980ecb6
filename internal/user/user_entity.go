package user

import (
	"time"

	"gorm.io/datatypes"
)

type Role string

const (
	RoleUser           Role = "USER"
	RoleAdmin          Role = "ADMIN"
	RoleCorporateAdmin Role = "CORPORATE_ADMIN"
)

type User struct {
	ID             int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string     `gorm:"column:name;size:255;not null"`
	Email          string     `gorm:"column:email;size:255;not null"`
	PasswordHash   string     `gorm:"column:password_hash;not null"`
	Industry       string     `gorm:"column:industry;size:255"`
	Skills         string     `gorm:"column:skills;type:text"`
	Interests      string     `gorm:"column:interests;type:text"`
	Role           Role       `gorm:"column:role;size:30;not null;default:USER"`
	LinkedinURL    string     `gorm:"column:linkedin_url;size:500"`
	CompanyID      *int64     `gorm:"column:company_id;index"`
	IsActive       bool       `gorm:"column:is_active;not null;default:true"`
	LastActiveDate *time.Time `gorm:"column:last_active_date"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// ExperienceLevel is the seniority a user wants to be matched with.
type ExperienceLevel string

const (
	ExperienceJunior    ExperienceLevel = "JUNIOR"
	ExperienceMidLevel  ExperienceLevel = "MID_LEVEL"
	ExperienceSenior    ExperienceLevel = "SENIOR"
	ExperienceExecutive ExperienceLevel = "EXECUTIVE"
)

const DefaultChatDuration = 30

type Preferences struct {
	ID                       int64           `gorm:"column:id;primaryKey;autoIncrement"`
	UserID                   int64           `gorm:"column:user_id;not null;uniqueIndex"`
	PreferredIndustries      string          `gorm:"column:preferred_industries"`
	PreferredRoles           string          `gorm:"column:preferred_roles"`
	PreferredExperienceLevel ExperienceLevel `gorm:"column:preferred_experience_level;size:20"`
	MaxMatchDistanceKm       *int            `gorm:"column:max_match_distance_km"`
	PreferredChatDuration    int             `gorm:"column:preferred_chat_duration;default:30"`
	AvailabilityStartTime    string          `gorm:"column:availability_start_time;size:5"`
	AvailabilityEndTime      string          `gorm:"column:availability_end_time;size:5"`
	PreferredTimezone        string          `gorm:"column:preferred_timezone;size:64"`
	IsAvailableForMatching   bool            `gorm:"column:is_available_for_matching;not null;default:true"`
	AutoAcceptMatches        bool            `gorm:"column:auto_accept_matches;not null;default:false"`
	NotificationPreferences  datatypes.JSON  `gorm:"column:notification_preferences"`
	CreatedAt                time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Preferences) TableName() string {
	return "user_preferences"
}

func DefaultPreferences(userID int64) Preferences {
	return Preferences{
		UserID:                 userID,
		PreferredChatDuration:  DefaultChatDuration,
		IsAvailableForMatching: true,
	}
}

type CommunicationStyle string

const (
	StyleDirect        CommunicationStyle = "DIRECT"
	StyleCollaborative CommunicationStyle = "COLLABORATIVE"
	StyleAnalytical    CommunicationStyle = "ANALYTICAL"
	StyleExpressive    CommunicationStyle = "EXPRESSIVE"
	StyleSupportive    CommunicationStyle = "SUPPORTIVE"
)

type MeetingPreference string

const (
	MeetingVirtual      MeetingPreference = "VIRTUAL"
	MeetingInPerson     MeetingPreference = "IN_PERSON"
	MeetingHybrid       MeetingPreference = "HYBRID"
	MeetingNoPreference MeetingPreference = "NO_PREFERENCE"
)

// ProfileLevel is the experience bucket the matcher derives for a profile.
type ProfileLevel string

const (
	ProfileEntry     ProfileLevel = "ENTRY"
	ProfileMid       ProfileLevel = "MID"
	ProfileSenior    ProfileLevel = "SENIOR"
	ProfileExecutive ProfileLevel = "EXECUTIVE"
	ProfileExpert    ProfileLevel = "EXPERT"
)

// PreferenceProfile holds the vectors used by smart matching. Vector columns
// are JSON documents.
type PreferenceProfile struct {
	ID                  int64              `gorm:"column:id;primaryKey;autoIncrement"`
	UserID              int64              `gorm:"column:user_id;not null;uniqueIndex"`
	SkillVector         datatypes.JSON     `gorm:"column:skill_vector"`
	InterestVector      datatypes.JSON     `gorm:"column:interest_vector"`
	IndustryVector      datatypes.JSON     `gorm:"column:industry_vector"`
	CommunicationStyle  CommunicationStyle `gorm:"column:communication_style;size:20"`
	MeetingPreference   MeetingPreference  `gorm:"column:meeting_preference;size:20"`
	ExperienceLevel     ProfileLevel       `gorm:"column:experience_level;size:20"`
	PersonalityTraits   datatypes.JSON     `gorm:"column:personality_traits"`
	PreferredTopics     datatypes.JSON     `gorm:"column:preferred_topics"`
	AvailabilityPattern datatypes.JSON     `gorm:"column:availability_pattern"`
	MatchingRadius      int                `gorm:"column:matching_radius;default:100"`
	LastUpdated         time.Time          `gorm:"column:last_updated;not null"`
	CreatedAt           time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (PreferenceProfile) TableName() string {
	return "user_preference_profiles"
}
