package lounge

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	loungeerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultMessageLimit = 50

// ActivityRecorder credits lounge activity towards streaks and badges.
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, userID int64, req gamification.RecordActivityRequest) (gamification.ActivityResultDTO, error)
}

//go:generate mockgen -source=lounge_service.go -destination=mock/lounge_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID int64, req CreateLoungeRequest) (LoungeDTO, error)
	Get(ctx context.Context, loungeID, userID int64) (LoungeDTO, error)
	List(ctx context.Context, userID int64, filter ListFilter) ([]LoungeDTO, error)
	Mine(ctx context.Context, userID int64) ([]LoungeDTO, error)
	Join(ctx context.Context, loungeID, userID int64) (LoungeDTO, error)
	Leave(ctx context.Context, loungeID, userID int64) error
	Participants(ctx context.Context, loungeID int64) ([]ParticipantDTO, error)
	Messages(ctx context.Context, loungeID, userID int64, since *time.Time, limit int) ([]MessageDTO, error)
	SendMessage(ctx context.Context, loungeID, userID int64, req SendMessageRequest) (MessageDTO, error)
	Close(ctx context.Context, loungeID, userID int64) error
}

type service struct {
	db           *gorm.DB
	repo         Repository
	participants ParticipantRepository
	messages     MessageRepository
	activity     ActivityRecorder
	logger       *zap.Logger
	now          func() time.Time
}

func NewService(db *gorm.DB, repo Repository, participants ParticipantRepository, messages MessageRepository, activity ActivityRecorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("lounge.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lounge.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		participants: participants,
		messages:     messages,
		activity:     activity,
		logger:       l,
		now:          time.Now,
	}
}

func (s *service) Create(ctx context.Context, userID int64, req CreateLoungeRequest) (LoungeDTO, error) {
	title := strings.TrimSpace(req.Title)
	taken, err := s.repo.ExistsActiveByTitle(ctx, title)
	if err != nil {
		return LoungeDTO{}, err
	}
	if taken {
		return LoungeDTO{}, loungeerrors.ErrTitleTaken
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = VisibilityPublic
	}
	now := s.now()
	l := &Lounge{
		Title:               title,
		Description:         req.Description,
		Topic:               strings.TrimSpace(req.Topic),
		Category:            req.Category,
		Tags:                JoinTags(req.Tags),
		CreatedBy:           userID,
		Visibility:          visibility,
		MaxParticipants:     req.MaxParticipants,
		CurrentParticipants: 1,
		IsActive:            true,
		LastActivity:        &now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
			return err
		}
		creator := &Participant{
			LoungeID:     l.ID,
			UserID:       userID,
			Role:         RoleCreator,
			JoinedAt:     now,
			LastActivity: &now,
			IsActive:     true,
		}
		if err := s.participants.WithTx(tx).Create(ctx, creator); err != nil {
			return err
		}
		return s.messages.WithTx(tx).Create(ctx, &Message{
			LoungeID:    l.ID,
			UserID:      userID,
			Content:     fmt.Sprintf("Lounge %q created", l.Title),
			MessageType: MessageSystem,
		})
	})
	if err != nil {
		return LoungeDTO{}, mapRepositoryError(err)
	}

	s.record(ctx, userID, gamification.ActivityLoungeCreated, l.ID)
	contextutil.GetLogger(ctx, s.logger).Info("lounge created",
		zap.Int64("lounge_id", l.ID),
		zap.Int64("user_id", userID),
	)

	dto := FromEntity(*l)
	dto.IsParticipant = true
	dto.UserRole = RoleCreator
	return dto, nil
}

func (s *service) Get(ctx context.Context, loungeID, userID int64) (LoungeDTO, error) {
	if loungeID <= 0 {
		return LoungeDTO{}, loungeerrors.ErrInvalidLoungeID
	}
	l, err := s.repo.FindActiveByID(ctx, loungeID)
	if err != nil {
		return LoungeDTO{}, mapRepositoryError(err)
	}
	dto := FromEntity(*l)

	p, err := s.participants.FindActiveByLoungeAndUser(ctx, loungeID, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return LoungeDTO{}, err
	default:
		dto.IsParticipant = true
		dto.UserRole = p.Role
	}
	return dto, nil
}

func (s *service) List(ctx context.Context, userID int64, filter ListFilter) ([]LoungeDTO, error) {
	var (
		items []Lounge
		err   error
	)
	switch {
	case filter.Query != "":
		items, err = s.repo.Search(ctx, filter.Query)
	case filter.Topic != "":
		items, err = s.repo.FindByTopic(ctx, filter.Topic)
	case filter.Category != "":
		items, err = s.repo.FindByCategory(ctx, filter.Category)
	case filter.Tag != "":
		items, err = s.repo.FindByTag(ctx, filter.Tag)
	case filter.Featured:
		items, err = s.repo.FindFeatured(ctx)
	case filter.WithSpace:
		items, err = s.repo.FindWithSpace(ctx)
	default:
		items, err = s.repo.FindActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	joined, err := s.participants.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles := make(map[int64]ParticipantRole, len(joined))
	for _, p := range joined {
		roles[p.LoungeID] = p.Role
	}

	out := make([]LoungeDTO, 0, len(items))
	for _, l := range items {
		role, member := roles[l.ID]
		// private lounges are listed only to their participants
		if l.Visibility == VisibilityPrivate && !member {
			continue
		}
		dto := FromEntity(l)
		dto.IsParticipant = member
		dto.UserRole = role
		out = append(out, dto)
	}
	return out, nil
}

func (s *service) Mine(ctx context.Context, userID int64) ([]LoungeDTO, error) {
	joined, err := s.participants.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(joined))
	roles := make(map[int64]ParticipantRole, len(joined))
	for _, p := range joined {
		ids = append(ids, p.LoungeID)
		roles[p.LoungeID] = p.Role
	}

	items, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]LoungeDTO, 0, len(items))
	for _, l := range items {
		dto := FromEntity(l)
		dto.IsParticipant = true
		dto.UserRole = roles[l.ID]
		out = append(out, dto)
	}
	return out, nil
}

// Join takes a seat with a conditional update so concurrent joins cannot
// overfill a capped lounge.
func (s *service) Join(ctx context.Context, loungeID, userID int64) (LoungeDTO, error) {
	if loungeID <= 0 {
		return LoungeDTO{}, loungeerrors.ErrInvalidLoungeID
	}
	l, err := s.repo.FindActiveByID(ctx, loungeID)
	if err != nil {
		return LoungeDTO{}, mapRepositoryError(err)
	}
	already, err := s.participants.ExistsActive(ctx, loungeID, userID)
	if err != nil {
		return LoungeDTO{}, err
	}
	if already {
		return LoungeDTO{}, loungeerrors.ErrAlreadyParticipant
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seated, err := s.repo.WithTx(tx).IncrementParticipants(ctx, loungeID, now)
		if err != nil {
			return err
		}
		if !seated {
			return loungeerrors.ErrLoungeFull
		}
		if err := s.participants.WithTx(tx).Create(ctx, &Participant{
			LoungeID:     loungeID,
			UserID:       userID,
			Role:         RoleMember,
			JoinedAt:     now,
			LastActivity: &now,
			IsActive:     true,
		}); err != nil {
			return err
		}
		return s.messages.WithTx(tx).Create(ctx, &Message{
			LoungeID:    loungeID,
			UserID:      userID,
			Content:     "joined the lounge",
			MessageType: MessageJoin,
		})
	})
	if err != nil {
		return LoungeDTO{}, mapRepositoryError(err)
	}

	s.record(ctx, userID, gamification.ActivityLoungeJoined, loungeID)
	contextutil.GetLogger(ctx, s.logger).Info("lounge joined",
		zap.Int64("lounge_id", loungeID),
		zap.Int64("user_id", userID),
	)

	l.CurrentParticipants++
	l.LastActivity = &now
	dto := FromEntity(*l)
	dto.IsParticipant = true
	dto.UserRole = RoleMember
	return dto, nil
}

func (s *service) Leave(ctx context.Context, loungeID, userID int64) error {
	p, err := s.participants.FindActiveByLoungeAndUser(ctx, loungeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loungeerrors.ErrNotParticipant
		}
		return err
	}
	if p.Role == RoleCreator {
		return loungeerrors.ErrCreatorCannotLeave
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p.IsActive = false
		p.LastActivity = &now
		if err := s.participants.WithTx(tx).Update(ctx, p); err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).DecrementParticipants(ctx, loungeID, now); err != nil {
			return err
		}
		return s.messages.WithTx(tx).Create(ctx, &Message{
			LoungeID:    loungeID,
			UserID:      userID,
			Content:     "left the lounge",
			MessageType: MessageLeave,
		})
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to leave lounge", zap.Int64("lounge_id", loungeID), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Participants(ctx context.Context, loungeID int64) ([]ParticipantDTO, error) {
	if _, err := s.repo.FindActiveByID(ctx, loungeID); err != nil {
		return nil, mapRepositoryError(err)
	}
	items, err := s.participants.FindActiveByLounge(ctx, loungeID)
	if err != nil {
		return nil, err
	}
	out := make([]ParticipantDTO, 0, len(items))
	for _, p := range items {
		out = append(out, ParticipantFromEntity(p))
	}
	return out, nil
}

// Messages returns messages oldest first. Non-public lounges are readable
// by participants only.
func (s *service) Messages(ctx context.Context, loungeID, userID int64, since *time.Time, limit int) ([]MessageDTO, error) {
	l, err := s.repo.FindActiveByID(ctx, loungeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if l.Visibility != VisibilityPublic {
		ok, err := s.participants.ExistsActive(ctx, loungeID, userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, loungeerrors.ErrNotParticipant
		}
	}

	var items []Message
	if since != nil {
		items, err = s.messages.FindSince(ctx, loungeID, *since)
	} else {
		if limit <= 0 {
			limit = DefaultMessageLimit
		}
		items, err = s.messages.FindRecent(ctx, loungeID, limit)
		slices.Reverse(items)
	}
	if err != nil {
		return nil, err
	}

	out := make([]MessageDTO, 0, len(items))
	for _, m := range items {
		out = append(out, MessageFromEntity(m))
	}
	return out, nil
}

func (s *service) SendMessage(ctx context.Context, loungeID, userID int64, req SendMessageRequest) (MessageDTO, error) {
	if _, err := s.repo.FindActiveByID(ctx, loungeID); err != nil {
		return MessageDTO{}, mapRepositoryError(err)
	}
	p, err := s.participants.FindActiveByLoungeAndUser(ctx, loungeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MessageDTO{}, loungeerrors.ErrNotParticipant
		}
		return MessageDTO{}, err
	}
	now := s.now()
	if p.IsMutedAt(now) {
		return MessageDTO{}, loungeerrors.ErrMuted
	}

	m := &Message{
		LoungeID:         loungeID,
		UserID:           userID,
		Content:          strings.TrimSpace(req.Content),
		MessageType:      MessageText,
		ReplyToMessageID: req.ReplyToMessageID,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.messages.WithTx(tx).Create(ctx, m); err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).Touch(ctx, loungeID, now); err != nil {
			return err
		}
		p.LastActivity = &now
		return s.participants.WithTx(tx).Update(ctx, p)
	})
	if err != nil {
		return MessageDTO{}, err
	}

	s.record(ctx, userID, gamification.ActivityLoungeMessageSent, loungeID)
	return MessageFromEntity(*m), nil
}

// Close deactivates the lounge and all of its participants.
func (s *service) Close(ctx context.Context, loungeID, userID int64) error {
	l, err := s.repo.FindActiveByID(ctx, loungeID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if l.CreatedBy != userID {
		return loungeerrors.ErrNotCreator
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.participants.WithTx(tx).DeactivateByLounge(ctx, loungeID); err != nil {
			return err
		}
		l.IsActive = false
		l.CurrentParticipants = 0
		return s.repo.WithTx(tx).Update(ctx, l)
	})
	if err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("lounge closed", zap.Int64("lounge_id", loungeID))
	return nil
}

func (s *service) record(ctx context.Context, userID int64, activity gamification.ActivityType, loungeID int64) {
	if s.activity == nil {
		return
	}
	id := loungeID
	if _, err := s.activity.RecordActivity(ctx, userID, gamification.RecordActivityRequest{
		ActivityType: activity,
		EntityID:     &id,
	}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("failed to record lounge activity",
			zap.String("activity", string(activity)),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}
