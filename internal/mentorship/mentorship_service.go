package mentorship

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	mentorshiperrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/mentorship/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"
	usererrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Notifier interface {
	Create(ctx context.Context, req notification.CreateNotificationRequest) (*notification.NotificationDTO, error)
}

//go:generate mockgen -source=mentorship_service.go -destination=mock/mentorship_service_mock.go -package=mock
type Service interface {
	ListPrograms(ctx context.Context, companyID int64, now time.Time) ([]ProgramDTO, error)
	GetProgram(ctx context.Context, companyID, programID int64) (ProgramDTO, error)
	CreateProgram(ctx context.Context, companyID int64, req CreateProgramRequest) (ProgramDTO, error)
	Relationships(ctx context.Context, userID int64) ([]RelationshipDTO, error)
	RequestMentorship(ctx context.Context, companyID, menteeID int64, req CreateRelationshipRequest) (RelationshipDTO, error)
	UpdateRelationshipStatus(ctx context.Context, relationshipID, userID int64, status RelationshipStatus) (RelationshipDTO, error)
	AddFeedback(ctx context.Context, relationshipID, userID int64, req FeedbackRequest) (RelationshipDTO, error)
	Sessions(ctx context.Context, relationshipID, userID int64) ([]SessionDTO, error)
	ScheduleSession(ctx context.Context, relationshipID, userID int64, req CreateSessionRequest) (SessionDTO, error)
	UpdateSessionStatus(ctx context.Context, sessionID, userID int64, req SessionStatusRequest) (SessionDTO, error)
	Summary(ctx context.Context, userID int64, now time.Time) (SummaryDTO, error)
}

type service struct {
	programs      ProgramRepository
	relationships RelationshipRepository
	sessions      SessionRepository
	users         user.Repository
	notifier      Notifier
	logger        *zap.Logger
	now           func() time.Time
}

func NewService(programs ProgramRepository, relationships RelationshipRepository, sessions SessionRepository, users user.Repository, notifier Notifier, logger ...*zap.Logger) Service {
	l := zap.L().Named("mentorship.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mentorship.service")
	}
	return &service{
		programs:      programs,
		relationships: relationships,
		sessions:      sessions,
		users:         users,
		notifier:      notifier,
		logger:        l,
		now:           time.Now,
	}
}

func (s *service) ListPrograms(ctx context.Context, companyID int64, now time.Time) ([]ProgramDTO, error) {
	programs, err := s.programs.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(programs))
	for _, p := range programs {
		ids = append(ids, p.ID)
	}
	counts, err := s.relationships.CountByProgram(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ProgramDTO, 0, len(programs))
	for _, p := range programs {
		out = append(out, ProgramFromEntity(p, counts[p.ID], now))
	}
	return out, nil
}

func (s *service) GetProgram(ctx context.Context, companyID, programID int64) (ProgramDTO, error) {
	p, err := s.companyProgram(ctx, companyID, programID)
	if err != nil {
		return ProgramDTO{}, err
	}
	counts, err := s.relationships.CountByProgram(ctx, []int64{p.ID})
	if err != nil {
		return ProgramDTO{}, err
	}
	return ProgramFromEntity(*p, counts[p.ID], s.now()), nil
}

func (s *service) CreateProgram(ctx context.Context, companyID int64, req CreateProgramRequest) (ProgramDTO, error) {
	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		return ProgramDTO{}, mentorshiperrors.ErrInvalidDateRange
	}

	p := &Program{
		CompanyID:                companyID,
		ProgramName:              strings.TrimSpace(req.ProgramName),
		Description:              req.Description,
		ProgramType:              req.ProgramType,
		DurationWeeks:            req.DurationWeeks,
		MaxMenteesPerMentor:      req.MaxMenteesPerMentor,
		MinMentorExperienceYears: req.MinMentorExperienceYears,
		IsActive:                 true,
		StartDate:                req.StartDate,
		EndDate:                  req.EndDate,
	}
	if err := s.programs.Create(ctx, p); err != nil {
		return ProgramDTO{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("mentorship program created",
		zap.Int64("program_id", p.ID),
		zap.Int64("company_id", companyID),
	)
	return ProgramFromEntity(*p, 0, s.now()), nil
}

func (s *service) Relationships(ctx context.Context, userID int64) ([]RelationshipDTO, error) {
	items, err := s.relationships.FindByMentorOrMentee(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]RelationshipDTO, 0, len(items))
	for _, r := range items {
		out = append(out, RelationshipFromEntity(r))
	}
	return out, nil
}

// RequestMentorship opens a pending pairing between the caller as mentee and
// a mentor from the same company. The mentor accepts by activating it.
func (s *service) RequestMentorship(ctx context.Context, companyID, menteeID int64, req CreateRelationshipRequest) (RelationshipDTO, error) {
	if req.MentorID == menteeID {
		return RelationshipDTO{}, mentorshiperrors.ErrSelfMentorship
	}

	p, err := s.companyProgram(ctx, companyID, req.ProgramID)
	if err != nil {
		return RelationshipDTO{}, err
	}
	now := s.now()
	if !p.IsActive || (p.EndDate != nil && now.After(*p.EndDate)) {
		return RelationshipDTO{}, mentorshiperrors.ErrProgramClosed
	}

	mentor, err := s.users.FindByID(ctx, req.MentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RelationshipDTO{}, usererrors.ErrUserNotFound
		}
		return RelationshipDTO{}, err
	}
	if !mentor.IsActive || mentor.CompanyID == nil || *mentor.CompanyID != companyID {
		return RelationshipDTO{}, usererrors.ErrUserNotFound
	}

	if p.MaxMenteesPerMentor != nil {
		open, err := s.relationships.CountOpenForMentorInProgram(ctx, p.ID, req.MentorID)
		if err != nil {
			return RelationshipDTO{}, err
		}
		if open >= int64(*p.MaxMenteesPerMentor) {
			return RelationshipDTO{}, mentorshiperrors.ErrMentorAtCapacity
		}
	}

	rel := &Relationship{
		ProgramID: p.ID,
		MentorID:  req.MentorID,
		MenteeID:  menteeID,
		Status:    RelationshipPending,
		Goals:     strings.TrimSpace(req.Goals),
	}
	if err := s.relationships.Create(ctx, rel); err != nil {
		return RelationshipDTO{}, mapRepositoryError(err, mentorshiperrors.ErrRelationshipNotFound)
	}

	s.notify(ctx, notification.CreateNotificationRequest{
		UserID:    req.MentorID,
		Title:     "New mentorship request",
		Message:   fmt.Sprintf("You have a new mentee request in %s", p.ProgramName),
		Type:      notification.TypeConnectionRequest,
		ActionURL: fmt.Sprintf("/mentorship/relationships/%d", rel.ID),
	})
	return RelationshipFromEntity(*rel), nil
}

var relationshipTransitions = map[RelationshipStatus][]RelationshipStatus{
	RelationshipPending: {RelationshipActive, RelationshipTerminated},
	RelationshipActive:  {RelationshipCompleted, RelationshipTerminated},
}

func (s *service) UpdateRelationshipStatus(ctx context.Context, relationshipID, userID int64, status RelationshipStatus) (RelationshipDTO, error) {
	rel, err := s.participantRelationship(ctx, relationshipID, userID)
	if err != nil {
		return RelationshipDTO{}, err
	}
	if !canTransition(relationshipTransitions[rel.Status], status) {
		return RelationshipDTO{}, mentorshiperrors.ErrInvalidTransition
	}
	// only the mentor accepts a request
	if status == RelationshipActive && rel.MentorID != userID {
		return RelationshipDTO{}, mentorshiperrors.ErrNotParticipant
	}

	now := s.now()
	rel.Status = status
	switch status {
	case RelationshipActive:
		rel.StartDate = &now
	case RelationshipCompleted, RelationshipTerminated:
		rel.EndDate = &now
	}
	if err := s.relationships.Update(ctx, rel); err != nil {
		return RelationshipDTO{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("mentorship status changed",
		zap.Int64("relationship_id", rel.ID),
		zap.String("status", string(status)),
	)
	return RelationshipFromEntity(*rel), nil
}

// AddFeedback stores the caller's side of the review: the mentor's words land
// in the mentor fields and the mentee's in the mentee fields.
func (s *service) AddFeedback(ctx context.Context, relationshipID, userID int64, req FeedbackRequest) (RelationshipDTO, error) {
	rel, err := s.participantRelationship(ctx, relationshipID, userID)
	if err != nil {
		return RelationshipDTO{}, err
	}
	if rel.Status == RelationshipPending {
		return RelationshipDTO{}, mentorshiperrors.ErrRelationshipNotActive
	}

	rating := req.Rating
	feedback := strings.TrimSpace(req.Feedback)
	if rel.MentorID == userID {
		rel.MentorFeedback, rel.MentorRating = feedback, &rating
	} else {
		rel.MenteeFeedback, rel.MenteeRating = feedback, &rating
	}
	if err := s.relationships.Update(ctx, rel); err != nil {
		return RelationshipDTO{}, err
	}
	return RelationshipFromEntity(*rel), nil
}

func (s *service) Sessions(ctx context.Context, relationshipID, userID int64) ([]SessionDTO, error) {
	if _, err := s.participantRelationship(ctx, relationshipID, userID); err != nil {
		return nil, err
	}
	items, err := s.sessions.FindByRelationship(ctx, relationshipID)
	if err != nil {
		return nil, err
	}
	out := make([]SessionDTO, 0, len(items))
	for _, it := range items {
		out = append(out, SessionFromEntity(it))
	}
	return out, nil
}

func (s *service) ScheduleSession(ctx context.Context, relationshipID, userID int64, req CreateSessionRequest) (SessionDTO, error) {
	rel, err := s.participantRelationship(ctx, relationshipID, userID)
	if err != nil {
		return SessionDTO{}, err
	}
	if rel.Status != RelationshipActive {
		return SessionDTO{}, mentorshiperrors.ErrRelationshipNotActive
	}
	if !req.SessionDate.After(s.now()) {
		return SessionDTO{}, mentorshiperrors.ErrSessionInPast
	}

	kind := req.SessionType
	if kind == "" {
		kind = SessionOneOnOne
	}
	session := &Session{
		RelationshipID:  rel.ID,
		SessionDate:     req.SessionDate,
		DurationMinutes: req.DurationMinutes,
		SessionType:     kind,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Agenda:          req.Agenda,
		Status:          SessionScheduled,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return SessionDTO{}, err
	}

	other := rel.MenteeID
	if userID == rel.MenteeID {
		other = rel.MentorID
	}
	s.notify(ctx, notification.CreateNotificationRequest{
		UserID:  other,
		Title:   "Mentorship session scheduled",
		Message: fmt.Sprintf("%s on %s", session.Title, session.SessionDate.UTC().Format("Jan 2, 2006 15:04 MST")),
		Type:    notification.TypeMeetingScheduled,
	})
	return SessionFromEntity(*session), nil
}

var sessionTransitions = map[SessionStatus][]SessionStatus{
	SessionScheduled:  {SessionInProgress, SessionCompleted, SessionCancelled, SessionNoShow},
	SessionInProgress: {SessionCompleted},
}

func (s *service) UpdateSessionStatus(ctx context.Context, sessionID, userID int64, req SessionStatusRequest) (SessionDTO, error) {
	if sessionID <= 0 {
		return SessionDTO{}, mentorshiperrors.ErrInvalidID
	}
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return SessionDTO{}, mapRepositoryError(err, mentorshiperrors.ErrSessionNotFound)
	}
	rel, err := s.participantRelationship(ctx, session.RelationshipID, userID)
	if err != nil {
		return SessionDTO{}, err
	}
	if !canTransition(sessionTransitions[session.Status], req.Status) {
		return SessionDTO{}, mentorshiperrors.ErrInvalidTransition
	}

	session.Status = req.Status
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		if rel.MentorID == userID {
			session.MentorNotes = notes
		} else {
			session.MenteeNotes = notes
		}
	}
	if err := s.sessions.Update(ctx, session); err != nil {
		return SessionDTO{}, err
	}
	return SessionFromEntity(*session), nil
}

func (s *service) Summary(ctx context.Context, userID int64, now time.Time) (SummaryDTO, error) {
	var (
		out SummaryDTO
		err error
	)
	if out.ActiveAsMentor, err = s.relationships.CountActiveForMentor(ctx, userID); err != nil {
		return SummaryDTO{}, err
	}
	if out.ActiveAsMentee, err = s.relationships.CountActiveForMentee(ctx, userID); err != nil {
		return SummaryDTO{}, err
	}
	if out.CompletedAsMentor, err = s.sessions.CountCompletedForMentor(ctx, userID); err != nil {
		return SummaryDTO{}, err
	}
	if out.CompletedAsMentee, err = s.sessions.CountCompletedForMentee(ctx, userID); err != nil {
		return SummaryDTO{}, err
	}
	if out.AverageMentorMinutes, err = s.sessions.AverageDurationForMentor(ctx, userID); err != nil {
		return SummaryDTO{}, err
	}
	if out.AverageMenteeMinutes, err = s.sessions.AverageDurationForMentee(ctx, userID); err != nil {
		return SummaryDTO{}, err
	}

	mentoring, err := s.sessions.FindUpcomingForMentor(ctx, userID, now)
	if err != nil {
		return SummaryDTO{}, err
	}
	learning, err := s.sessions.FindUpcomingForMentee(ctx, userID, now)
	if err != nil {
		return SummaryDTO{}, err
	}
	out.Upcoming = make([]SessionDTO, 0, len(mentoring)+len(learning))
	for _, it := range mentoring {
		out.Upcoming = append(out.Upcoming, SessionFromEntity(it))
	}
	for _, it := range learning {
		out.Upcoming = append(out.Upcoming, SessionFromEntity(it))
	}
	slices.SortFunc(out.Upcoming, func(a, b SessionDTO) int {
		return a.SessionDate.Compare(b.SessionDate)
	})
	return out, nil
}

func (s *service) companyProgram(ctx context.Context, companyID, programID int64) (*Program, error) {
	if programID <= 0 {
		return nil, mentorshiperrors.ErrInvalidID
	}
	p, err := s.programs.FindByID(ctx, programID)
	if err != nil {
		return nil, mapRepositoryError(err, mentorshiperrors.ErrProgramNotFound)
	}
	if p.CompanyID != companyID {
		return nil, mentorshiperrors.ErrProgramNotFound
	}
	return p, nil
}

func (s *service) participantRelationship(ctx context.Context, relationshipID, userID int64) (*Relationship, error) {
	if relationshipID <= 0 {
		return nil, mentorshiperrors.ErrInvalidID
	}
	rel, err := s.relationships.FindByID(ctx, relationshipID)
	if err != nil {
		return nil, mapRepositoryError(err, mentorshiperrors.ErrRelationshipNotFound)
	}
	if !rel.Involves(userID) {
		return nil, mentorshiperrors.ErrNotParticipant
	}
	return rel, nil
}

func (s *service) notify(ctx context.Context, req notification.CreateNotificationRequest) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.Create(ctx, req); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("failed to send mentorship notification",
			zap.Int64("user_id", req.UserID),
			zap.Error(err),
		)
	}
}

func canTransition[S ~string](allowed []S, to S) bool {
	return slices.Contains(allowed, to)
}
