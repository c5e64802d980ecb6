package company

import (
	"context"
	"errors"
	"strings"
	"time"

	companyerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"
	usererrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DepartmentCounter reports how many active departments a company has.
type DepartmentCounter interface {
	CountActiveByCompany(ctx context.Context, companyID int64) (int64, error)
}

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, adminID int64, req CreateCompanyRequest) (CompanyDTO, error)
	Get(ctx context.Context, companyID int64) (CompanyDTO, error)
	ListActive(ctx context.Context) ([]CompanyDTO, error)
	Update(ctx context.Context, companyID int64, req UpdateCompanyRequest) (CompanyDTO, error)
	Deactivate(ctx context.Context, companyID int64) error
	GetSettings(ctx context.Context, companyID int64) (SettingsDTO, error)
	UpdateSettings(ctx context.Context, companyID int64, req UpdateSettingsRequest) (SettingsDTO, error)
	ListAnnouncements(ctx context.Context, companyID int64, now time.Time) ([]AnnouncementDTO, error)
	CreateAnnouncement(ctx context.Context, companyID, authorID int64, req CreateAnnouncementRequest) (AnnouncementDTO, error)
}

type service struct {
	db            *gorm.DB
	repo          Repository
	settings      SettingsRepository
	announcements AnnouncementRepository
	users         user.Repository
	departments   DepartmentCounter
	logger        *zap.Logger
	now           func() time.Time
}

func NewService(
	db *gorm.DB,
	repo Repository,
	settings SettingsRepository,
	announcements AnnouncementRepository,
	users user.Repository,
	departments DepartmentCounter,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		settings:      settings,
		announcements: announcements,
		users:         users,
		departments:   departments,
		logger:        l,
		now:           time.Now,
	}
}

func (s *service) Create(ctx context.Context, adminID int64, req CreateCompanyRequest) (CompanyDTO, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	name := strings.TrimSpace(req.Name)

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return CompanyDTO{}, err
	}
	if exists {
		return CompanyDTO{}, companyerrors.ErrCompanyAlreadyExists
	}

	admin, err := s.users.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyDTO{}, usererrors.ErrUserNotFound
		}
		return CompanyDTO{}, err
	}
	if admin.Role != user.RoleCorporateAdmin && admin.Role != user.RoleAdmin {
		return CompanyDTO{}, apperror.ErrForbidden
	}

	company := &Company{
		Name:             name,
		AdminID:          &admin.ID,
		SubscriptionTier: TierFree,
		IsActive:         true,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, company); err != nil {
			return err
		}
		defaults := DefaultSettings(company.ID)
		if err := s.settings.WithTx(tx).Save(ctx, &defaults); err != nil {
			return err
		}
		admin.CompanyID = &company.ID
		return s.users.WithTx(tx).Update(ctx, admin)
	})
	if err != nil {
		log.Error("failed to create company", zap.String("name", name), zap.Error(err))
		return CompanyDTO{}, mapRepositoryError(err, companyerrors.ErrCompanyNotFound)
	}

	log.Info("company created", zap.Int64("company_id", company.ID), zap.Int64("admin_id", adminID))
	dto := CompanyFromEntity(*company)
	dto.EmployeeCount = 1
	return dto, nil
}

func (s *service) Get(ctx context.Context, companyID int64) (CompanyDTO, error) {
	if companyID <= 0 {
		return CompanyDTO{}, companyerrors.ErrInvalidCompanyID
	}
	c, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return CompanyDTO{}, mapRepositoryError(err, companyerrors.ErrCompanyNotFound)
	}

	dto := CompanyFromEntity(*c)
	members, err := s.users.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return CompanyDTO{}, err
	}
	dto.EmployeeCount = int64(len(members))

	if s.departments != nil {
		dto.DepartmentCount, err = s.departments.CountActiveByCompany(ctx, companyID)
		if err != nil {
			return CompanyDTO{}, err
		}
	}
	return dto, nil
}

func (s *service) ListActive(ctx context.Context) ([]CompanyDTO, error) {
	companies, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CompanyDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, CompanyFromEntity(c))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, companyID int64, req UpdateCompanyRequest) (CompanyDTO, error) {
	c, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return CompanyDTO{}, mapRepositoryError(err, companyerrors.ErrCompanyNotFound)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != c.Name {
			exists, err := s.repo.ExistsByName(ctx, name)
			if err != nil {
				return CompanyDTO{}, err
			}
			if exists {
				return CompanyDTO{}, companyerrors.ErrCompanyAlreadyExists
			}
			c.Name = name
		}
	}
	if req.SubscriptionTier != nil {
		c.SubscriptionTier = *req.SubscriptionTier
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return CompanyDTO{}, mapRepositoryError(err, companyerrors.ErrCompanyNotFound)
	}
	return CompanyFromEntity(*c), nil
}

func (s *service) Deactivate(ctx context.Context, companyID int64) error {
	c, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return mapRepositoryError(err, companyerrors.ErrCompanyNotFound)
	}
	if !c.IsActive {
		return nil
	}
	c.IsActive = false
	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}
	contextutil.GetLogger(ctx, s.logger).Info("company deactivated", zap.Int64("company_id", companyID))
	return nil
}

func (s *service) GetSettings(ctx context.Context, companyID int64) (SettingsDTO, error) {
	st, err := s.settings.FindByCompanyID(ctx, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SettingsFromEntity(DefaultSettings(companyID)), nil
	}
	if err != nil {
		return SettingsDTO{}, err
	}
	return SettingsFromEntity(*st), nil
}

func (s *service) UpdateSettings(ctx context.Context, companyID int64, req UpdateSettingsRequest) (SettingsDTO, error) {
	st, err := s.settings.FindByCompanyID(ctx, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := DefaultSettings(companyID)
		st, err = &defaults, nil
	}
	if err != nil {
		return SettingsDTO{}, err
	}

	if req.LogoURL != nil {
		st.LogoURL = *req.LogoURL
	}
	if req.PrimaryColor != nil {
		st.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		st.SecondaryColor = *req.SecondaryColor
	}
	if req.AllowedDomains != nil {
		st.AllowedDomains = *req.AllowedDomains
	}
	if req.RequireDomainVerification != nil {
		st.RequireDomainVerification = *req.RequireDomainVerification
	}
	if req.AllowExternalMatching != nil {
		st.AllowExternalMatching = *req.AllowExternalMatching
	}
	if req.MaxEmployees != nil {
		st.MaxEmployees = req.MaxEmployees
	}
	if req.EnableAnalytics != nil {
		st.EnableAnalytics = *req.EnableAnalytics
	}
	if req.CompanyDescription != nil {
		st.CompanyDescription = *req.CompanyDescription
	}
	if req.WebsiteURL != nil {
		st.WebsiteURL = *req.WebsiteURL
	}

	if err := s.settings.Save(ctx, st); err != nil {
		return SettingsDTO{}, mapRepositoryError(err, companyerrors.ErrCompanyNotFound)
	}
	return SettingsFromEntity(*st), nil
}

func (s *service) ListAnnouncements(ctx context.Context, companyID int64, now time.Time) ([]AnnouncementDTO, error) {
	items, err := s.announcements.FindPublished(ctx, companyID, now)
	if err != nil {
		return nil, err
	}
	out := make([]AnnouncementDTO, 0, len(items))
	for _, a := range items {
		out = append(out, AnnouncementFromEntity(a))
	}
	return out, nil
}

func (s *service) CreateAnnouncement(ctx context.Context, companyID, authorID int64, req CreateAnnouncementRequest) (AnnouncementDTO, error) {
	a := &Announcement{
		CompanyID:         companyID,
		AuthorUserID:      authorID,
		Title:             strings.TrimSpace(req.Title),
		Content:           req.Content,
		Type:              req.Type,
		Priority:          req.Priority,
		TargetDepartments: req.TargetDepartments,
		IsPinned:          req.IsPinned,
		IsActive:          true,
		PublishedAt:       req.PublishAt,
	}
	if a.Type == "" {
		a.Type = AnnouncementGeneral
	}
	if a.Priority == "" {
		a.Priority = PriorityNormal
	}
	if a.PublishedAt == nil {
		now := s.now()
		a.PublishedAt = &now
	}

	if err := s.announcements.Create(ctx, a); err != nil {
		return AnnouncementDTO{}, err
	}
	return AnnouncementFromEntity(*a), nil
}
