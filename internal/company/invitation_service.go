package company

import (
	"context"
	"errors"
	"strings"
	"time"

	companyerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"
	usererrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=invitation_service.go -destination=mock/invitation_service_mock.go -package=mock
type InvitationService interface {
	Invite(ctx context.Context, companyID, inviterID int64, req InviteRequest) (InvitationDTO, error)
	ListForCompany(ctx context.Context, companyID int64, status InvitationStatus) ([]InvitationDTO, error)
	ListForUser(ctx context.Context, userID int64) ([]InvitationDTO, error)
	PendingCount(ctx context.Context, companyID int64) (int64, error)
	Accept(ctx context.Context, userID int64, token string, now time.Time) (InvitationDTO, error)
	Cancel(ctx context.Context, companyID, invitationID int64) error
	ExpireInvitations(ctx context.Context, now time.Time) (int64, error)
}

type invitationService struct {
	db          *gorm.DB
	invitations InvitationRepository
	users       user.Repository
	logger      *zap.Logger
	now         func() time.Time
	newToken    func() string
}

func NewInvitationService(db *gorm.DB, invitations InvitationRepository, users user.Repository, logger ...*zap.Logger) InvitationService {
	l := zap.L().Named("company.invitation")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.invitation")
	}
	return &invitationService{
		db:          db,
		invitations: invitations,
		users:       users,
		logger:      l,
		now:         time.Now,
		newToken:    uuid.NewString,
	}
}

func (s *invitationService) Invite(ctx context.Context, companyID, inviterID int64, req InviteRequest) (InvitationDTO, error) {
	if companyID <= 0 {
		return InvitationDTO{}, companyerrors.ErrInvalidCompanyID
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	pending, err := s.invitations.ExistsByEmailCompanyStatus(ctx, email, companyID, InvitationPending)
	if err != nil {
		return InvitationDTO{}, err
	}
	if pending {
		return InvitationDTO{}, companyerrors.ErrInvitationAlreadyPending
	}

	existing, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return InvitationDTO{}, err
	case existing.CompanyID != nil && *existing.CompanyID == companyID:
		return InvitationDTO{}, companyerrors.ErrAlreadyMember
	}

	now := s.now()
	inv := &Invitation{
		CompanyID:       companyID,
		Email:           email,
		InvitedByUserID: inviterID,
		DepartmentID:    req.DepartmentID,
		Status:          InvitationPending,
		InvitationToken: s.newToken(),
		ExpiresAt:       now.Add(InvitationTTL),
	}
	if err := s.invitations.Create(ctx, inv); err != nil {
		return InvitationDTO{}, mapRepositoryError(err, companyerrors.ErrInvitationNotFound)
	}

	contextutil.GetLogger(ctx, s.logger).Info("invitation issued",
		zap.Int64("company_id", companyID),
		zap.Int64("invitation_id", inv.ID),
	)
	dto := InvitationFromEntity(*inv, now)
	dto.Token = inv.InvitationToken
	return dto, nil
}

func (s *invitationService) ListForCompany(ctx context.Context, companyID int64, status InvitationStatus) ([]InvitationDTO, error) {
	var (
		items []Invitation
		err   error
	)
	if status == "" {
		items, err = s.invitations.FindByCompany(ctx, companyID)
	} else {
		items, err = s.invitations.FindByCompanyAndStatus(ctx, companyID, status)
	}
	if err != nil {
		return nil, err
	}
	return s.toDTOs(items), nil
}

// ListForUser returns the pending invitations addressed to the user's email.
func (s *invitationService) ListForUser(ctx context.Context, userID int64) ([]InvitationDTO, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, err
	}
	items, err := s.invitations.FindByEmailAndStatus(ctx, strings.ToLower(u.Email), InvitationPending)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(items), nil
}

func (s *invitationService) PendingCount(ctx context.Context, companyID int64) (int64, error) {
	return s.invitations.CountPending(ctx, companyID)
}

// Accept joins the user to the inviting company. An expired token is marked
// EXPIRED on the way out.
func (s *invitationService) Accept(ctx context.Context, userID int64, token string, now time.Time) (InvitationDTO, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	inv, err := s.invitations.FindByToken(ctx, token)
	if err != nil {
		return InvitationDTO{}, mapRepositoryError(err, companyerrors.ErrInvitationNotFound)
	}
	if inv.Status != InvitationPending {
		return InvitationDTO{}, companyerrors.ErrInvitationNotPending
	}
	if inv.IsExpired(now) {
		inv.Status = InvitationExpired
		if err := s.invitations.Update(ctx, inv); err != nil {
			log.Warn("failed to mark invitation expired", zap.Int64("invitation_id", inv.ID), zap.Error(err))
		}
		return InvitationDTO{}, companyerrors.ErrInvitationExpired
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvitationDTO{}, usererrors.ErrUserNotFound
		}
		return InvitationDTO{}, err
	}
	if !strings.EqualFold(u.Email, inv.Email) {
		return InvitationDTO{}, companyerrors.ErrInvitationEmailMismatch
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u.CompanyID = &inv.CompanyID
		if err := s.users.WithTx(tx).Update(ctx, u); err != nil {
			return err
		}
		inv.Status = InvitationAccepted
		inv.AcceptedAt = &now
		return s.invitations.WithTx(tx).Update(ctx, inv)
	})
	if err != nil {
		log.Error("failed to accept invitation", zap.Int64("invitation_id", inv.ID), zap.Error(err))
		return InvitationDTO{}, err
	}

	log.Info("invitation accepted", zap.Int64("invitation_id", inv.ID), zap.Int64("user_id", userID))
	return InvitationFromEntity(*inv, now), nil
}

func (s *invitationService) Cancel(ctx context.Context, companyID, invitationID int64) error {
	inv, err := s.invitations.FindByID(ctx, invitationID)
	if err != nil {
		return mapRepositoryError(err, companyerrors.ErrInvitationNotFound)
	}
	if inv.CompanyID != companyID {
		return companyerrors.ErrInvitationNotFound
	}
	if inv.Status != InvitationPending {
		return companyerrors.ErrInvitationNotPending
	}
	inv.Status = InvitationCancelled
	return s.invitations.Update(ctx, inv)
}

func (s *invitationService) ExpireInvitations(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.invitations.ExpirePending(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		contextutil.GetLogger(ctx, s.logger).Info("expired invitations", zap.Int64("count", n))
	}
	return n, nil
}

func (s *invitationService) toDTOs(items []Invitation) []InvitationDTO {
	now := s.now()
	out := make([]InvitationDTO, 0, len(items))
	for _, inv := range items {
		out = append(out, InvitationFromEntity(inv, now))
	}
	return out
}
