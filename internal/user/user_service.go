package user

import (
	"context"
	"errors"
	"strings"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/pagination"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/response"
	usererrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const minSuggestionQuery = 2

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context, userID int64) (UserProfileDTO, error)
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (UserProfileDTO, error)
	SetStatus(ctx context.Context, userID int64, isActive bool) error
	CompanyMembers(ctx context.Context, companyID int64) ([]UserDTO, error)
	Search(ctx context.Context, filter SearchFilter, page pagination.Page) (SearchResultDTO, error)
	Suggestions(ctx context.Context, query string) ([]string, error)
	GetPreferences(ctx context.Context, userID int64) (UserPreferencesDTO, error)
	UpdatePreferences(ctx context.Context, userID int64, req UpdatePreferencesRequest) (UserPreferencesDTO, error)
}

type service struct {
	repo   Repository
	prefs  PreferencesRepository
	logger *zap.Logger
}

func NewService(repo Repository, prefs PreferencesRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, prefs: prefs, logger: l}
}

func (s *service) GetProfile(ctx context.Context, userID int64) (UserProfileDTO, error) {
	if userID <= 0 {
		return UserProfileDTO{}, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return UserProfileDTO{}, mapRepositoryError(err)
	}
	return ProfileFromEntity(*u), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (UserProfileDTO, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return UserProfileDTO{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Industry != nil {
		u.Industry = *req.Industry
	}
	if req.Skills != nil {
		u.Skills = *req.Skills
	}
	if req.Interests != nil {
		u.Interests = *req.Interests
	}
	if req.LinkedinURL != nil {
		u.LinkedinURL = *req.LinkedinURL
	}

	if err := s.repo.Update(ctx, u); err != nil {
		log.Error("failed to update profile", zap.Int64("user_id", userID), zap.Error(err))
		return UserProfileDTO{}, mapRepositoryError(err)
	}
	return ProfileFromEntity(*u), nil
}

func (s *service) SetStatus(ctx context.Context, userID int64, isActive bool) error {
	log := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if u.IsActive == isActive {
		return nil
	}

	u.IsActive = isActive
	if err := s.repo.Update(ctx, u); err != nil {
		log.Error("failed to update user status", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	log.Info("user status changed", zap.Int64("user_id", userID), zap.Bool("is_active", isActive))
	return nil
}

func (s *service) CompanyMembers(ctx context.Context, companyID int64) ([]UserDTO, error) {
	if companyID <= 0 {
		return nil, usererrors.ErrInvalidCompanyID
	}
	users, err := s.repo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapUsers(users), nil
}

// Search uses the filtered query when industry or skills are given, the
// name/email search for a bare query, and the active listing otherwise.
func (s *service) Search(ctx context.Context, filter SearchFilter, page pagination.Page) (SearchResultDTO, error) {
	filter.Query = strings.TrimSpace(filter.Query)

	var (
		users []User
		total int64
		err   error
	)
	switch {
	case filter.Industry != "" || filter.Skills != "":
		users, total, err = s.repo.FindWithFilters(ctx, filter, page)
	case filter.Query != "":
		users, total, err = s.repo.Search(ctx, filter.Query, page)
	default:
		users, total, err = s.repo.FindActivePaged(ctx, page)
	}
	if err != nil {
		return SearchResultDTO{}, err
	}

	return NewSearchResult(filter.Query, users, response.NewPaginationMeta(total, page.Page, page.Limit)), nil
}

func (s *service) Suggestions(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	out := make([]string, 0)
	if len(query) < minSuggestionQuery {
		return out, nil
	}

	users, err := s.repo.FindTop5ByName(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out, nil
}

func (s *service) GetPreferences(ctx context.Context, userID int64) (UserPreferencesDTO, error) {
	p, err := s.prefs.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PreferencesFromEntity(DefaultPreferences(userID)), nil
	}
	if err != nil {
		return UserPreferencesDTO{}, err
	}
	return PreferencesFromEntity(*p), nil
}

func (s *service) UpdatePreferences(ctx context.Context, userID int64, req UpdatePreferencesRequest) (UserPreferencesDTO, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	p, err := s.prefs.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		d := DefaultPreferences(userID)
		p = &d
	} else if err != nil {
		return UserPreferencesDTO{}, err
	}

	applyPreferences(p, req)

	if err := s.prefs.Save(ctx, p); err != nil {
		log.Error("failed to save preferences", zap.Int64("user_id", userID), zap.Error(err))
		return UserPreferencesDTO{}, mapRepositoryError(err)
	}
	return PreferencesFromEntity(*p), nil
}

func applyPreferences(p *Preferences, req UpdatePreferencesRequest) {
	if req.PreferredIndustries != nil {
		p.PreferredIndustries = *req.PreferredIndustries
	}
	if req.PreferredRoles != nil {
		p.PreferredRoles = *req.PreferredRoles
	}
	if req.PreferredExperienceLevel != nil {
		p.PreferredExperienceLevel = *req.PreferredExperienceLevel
	}
	if req.MaxMatchDistanceKm != nil {
		p.MaxMatchDistanceKm = req.MaxMatchDistanceKm
	}
	if req.PreferredChatDuration != nil {
		p.PreferredChatDuration = *req.PreferredChatDuration
	}
	if req.AvailabilityStartTime != nil {
		p.AvailabilityStartTime = *req.AvailabilityStartTime
	}
	if req.AvailabilityEndTime != nil {
		p.AvailabilityEndTime = *req.AvailabilityEndTime
	}
	if req.PreferredTimezone != nil {
		p.PreferredTimezone = *req.PreferredTimezone
	}
	if req.IsAvailableForMatching != nil {
		p.IsAvailableForMatching = *req.IsAvailableForMatching
	}
	if req.AutoAcceptMatches != nil {
		p.AutoAcceptMatches = *req.AutoAcceptMatches
	}
	if len(req.NotificationPreferences) > 0 {
		p.NotificationPreferences = req.NotificationPreferences
	}
}
