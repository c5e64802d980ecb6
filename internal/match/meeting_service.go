package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	matcherrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"
	usererrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// conflictBuffer keeps meetings of the same user apart.
	conflictBuffer      = 30 * time.Minute
	DefaultUpcomingDays = 7
	DefaultSlotCount    = 5
	defaultTimeZone     = "UTC"
)

//go:generate mockgen -source=meeting_service.go -destination=mock/meeting_service_mock.go -package=mock
type MeetingService interface {
	Schedule(ctx context.Context, matchID, organizerID int64, req ScheduleMeetingRequest) (MeetingDTO, error)
	Reschedule(ctx context.Context, meetingID, userID int64, req RescheduleRequest) (MeetingDTO, error)
	Cancel(ctx context.Context, meetingID, userID int64, reason string) error
	Start(ctx context.Context, meetingID, userID int64) (MeetingDTO, error)
	Complete(ctx context.Context, meetingID, userID int64, notes string) (MeetingDTO, error)
	Upcoming(ctx context.Context, userID int64, days int) ([]MeetingDTO, error)
	ForMatch(ctx context.Context, matchID, userID int64) ([]MeetingDTO, error)
	SuggestTimes(ctx context.Context, matchID, userID int64, durationMinutes, count int) ([]TimeSlotDTO, error)
}

type meetingService struct {
	db       *gorm.DB
	matches  Repository
	meetings MeetingRepository
	starters StarterRepository
	users    user.Repository
	activity ActivityRecorder
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewMeetingService(db *gorm.DB, matches Repository, meetings MeetingRepository, starters StarterRepository, users user.Repository, activity ActivityRecorder, notifier Notifier, logger ...*zap.Logger) MeetingService {
	l := zap.L().Named("match.meeting")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("match.meeting")
	}
	return &meetingService{
		db:       db,
		matches:  matches,
		meetings: meetings,
		starters: starters,
		users:    users,
		activity: activity,
		notifier: notifier,
		logger:   l,
		now:      time.Now,
	}
}

func (s *meetingService) Schedule(ctx context.Context, matchID, organizerID int64, req ScheduleMeetingRequest) (MeetingDTO, error) {
	m, err := s.matches.FindActiveByID(ctx, matchID)
	if err != nil {
		return MeetingDTO{}, mapRepositoryError(err, matcherrors.ErrMatchNotFound)
	}
	if !m.Involves(organizerID) {
		return MeetingDTO{}, matcherrors.ErrNotMatchParticipant
	}
	if m.Status != StatusAccepted {
		return MeetingDTO{}, matcherrors.ErrMatchNotSchedulable
	}
	if !req.StartTime.After(s.now()) {
		return MeetingDTO{}, matcherrors.ErrStartInPast
	}

	participantID := m.Other(organizerID)
	organizer, err := s.user(ctx, organizerID)
	if err != nil {
		return MeetingDTO{}, err
	}
	participant, err := s.user(ctx, participantID)
	if err != nil {
		return MeetingDTO{}, err
	}
	if err := s.checkConflicts(ctx, 0, req.StartTime, req.EndTime, organizerID, participantID); err != nil {
		return MeetingDTO{}, err
	}

	meetingType := req.MeetingType
	if meetingType == "" {
		meetingType = MeetingVirtual
	}
	meeting := &Meeting{
		MatchID:              matchID,
		OrganizerID:          organizerID,
		ParticipantID:        participantID,
		MeetingTitle:         fmt.Sprintf("Coffee Chat: %s & %s", organizer.Name, participant.Name),
		MeetingDescription:   meetingDescription(*organizer, *participant),
		ScheduledStartTime:   req.StartTime,
		ScheduledEndTime:     req.EndTime,
		TimeZone:             defaultTimeZone,
		MeetingType:          meetingType,
		MeetingLocation:      req.Location,
		Status:               MeetingScheduled,
		ConversationStarters: s.starterTemplates(ctx, *organizer, *participant),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.meetings.WithTx(tx).Create(ctx, meeting); err != nil {
			return err
		}
		m.Status = StatusScheduled
		start := req.StartTime
		m.ScheduledTime = &start
		return s.matches.WithTx(tx).Update(ctx, m)
	})
	if err != nil {
		return MeetingDTO{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("meeting scheduled",
		zap.Int64("meeting_id", meeting.ID),
		zap.Int64("organizer_id", organizerID),
		zap.Int64("participant_id", participantID),
	)
	sendNotification(ctx, s.notifier, s.logger, notification.CreateNotificationRequest{
		UserID:    participantID,
		Title:     "Meeting scheduled",
		Message:   fmt.Sprintf("%s scheduled a coffee chat for %s", organizer.Name, req.StartTime.UTC().Format("Mon, Jan 2 15:04 MST")),
		Type:      notification.TypeMeetingScheduled,
		ActionURL: fmt.Sprintf("/meetings/%d", meeting.ID),
	})

	dto := MeetingFromEntity(*meeting)
	dto.OrganizerName, dto.ParticipantName = organizer.Name, participant.Name
	return dto, nil
}

func (s *meetingService) Reschedule(ctx context.Context, meetingID, userID int64, req RescheduleRequest) (MeetingDTO, error) {
	meeting, err := s.attendedMeeting(ctx, meetingID, userID)
	if err != nil {
		return MeetingDTO{}, err
	}
	if !meeting.Status.Open() || meeting.Status == MeetingInProgress {
		return MeetingDTO{}, matcherrors.ErrMeetingClosed
	}
	if !req.StartTime.After(s.now()) {
		return MeetingDTO{}, matcherrors.ErrStartInPast
	}
	if err := s.checkConflicts(ctx, meeting.ID, req.StartTime, req.EndTime, meeting.OrganizerID, meeting.ParticipantID); err != nil {
		return MeetingDTO{}, err
	}

	meeting.ScheduledStartTime = req.StartTime
	meeting.ScheduledEndTime = req.EndTime
	meeting.Status = MeetingRescheduled
	meeting.ReminderSent = false
	if err := s.meetings.Update(ctx, meeting); err != nil {
		return MeetingDTO{}, err
	}
	return MeetingFromEntity(*meeting), nil
}

// Cancel frees the slot and returns the match to ACCEPTED.
func (s *meetingService) Cancel(ctx context.Context, meetingID, userID int64, reason string) error {
	meeting, err := s.attendedMeeting(ctx, meetingID, userID)
	if err != nil {
		return err
	}
	if !meeting.Status.Open() {
		return matcherrors.ErrMeetingClosed
	}

	meeting.Status = MeetingCancelled
	meeting.MeetingNotes = reason
	return s.transition(ctx, meeting, StatusAccepted)
}

func (s *meetingService) Start(ctx context.Context, meetingID, userID int64) (MeetingDTO, error) {
	meeting, err := s.attendedMeeting(ctx, meetingID, userID)
	if err != nil {
		return MeetingDTO{}, err
	}
	if !meeting.Status.Open() || meeting.Status == MeetingInProgress {
		return MeetingDTO{}, matcherrors.ErrMeetingClosed
	}

	now := s.now()
	meeting.Status = MeetingInProgress
	meeting.ActualStartTime = &now
	if err := s.transition(ctx, meeting, StatusInProgress); err != nil {
		return MeetingDTO{}, err
	}
	return MeetingFromEntity(*meeting), nil
}

func (s *meetingService) Complete(ctx context.Context, meetingID, userID int64, notes string) (MeetingDTO, error) {
	meeting, err := s.attendedMeeting(ctx, meetingID, userID)
	if err != nil {
		return MeetingDTO{}, err
	}
	if !meeting.Status.Open() {
		return MeetingDTO{}, matcherrors.ErrMeetingClosed
	}

	now := s.now()
	meeting.Status = MeetingCompleted
	meeting.ActualEndTime = &now
	if notes != "" {
		meeting.MeetingNotes = notes
	}
	if err := s.transition(ctx, meeting, StatusCompleted); err != nil {
		return MeetingDTO{}, err
	}

	for _, uid := range []int64{meeting.OrganizerID, meeting.ParticipantID} {
		recordActivity(ctx, s.activity, s.logger, uid, gamification.ActivityCoffeeChatCompleted, meeting.MatchID)
		sendNotification(ctx, s.notifier, s.logger, notification.CreateNotificationRequest{
			UserID:    uid,
			Title:     "How was your coffee chat?",
			Message:   "Share quick feedback to improve your future matches.",
			Type:      notification.TypeFeedbackRequest,
			ActionURL: fmt.Sprintf("/matches/%d/feedback", meeting.MatchID),
		})
	}
	return MeetingFromEntity(*meeting), nil
}

func (s *meetingService) Upcoming(ctx context.Context, userID int64, days int) ([]MeetingDTO, error) {
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	now := s.now()
	items, err := s.meetings.FindUserMeetingsBetween(ctx, userID, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}
	out := make([]MeetingDTO, 0, len(items))
	for _, m := range items {
		if m.Status.Open() {
			out = append(out, MeetingFromEntity(m))
		}
	}
	return out, nil
}

func (s *meetingService) ForMatch(ctx context.Context, matchID, userID int64) ([]MeetingDTO, error) {
	m, err := s.matches.FindActiveByID(ctx, matchID)
	if err != nil {
		return nil, mapRepositoryError(err, matcherrors.ErrMatchNotFound)
	}
	if !m.Involves(userID) {
		return nil, matcherrors.ErrNotMatchParticipant
	}
	items, err := s.meetings.FindByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	out := make([]MeetingDTO, 0, len(items))
	for _, mt := range items {
		out = append(out, MeetingFromEntity(mt))
	}
	return out, nil
}

func (s *meetingService) SuggestTimes(ctx context.Context, matchID, userID int64, durationMinutes, count int) ([]TimeSlotDTO, error) {
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}
	if count <= 0 {
		count = DefaultSlotCount
	}
	m, err := s.matches.FindActiveByID(ctx, matchID)
	if err != nil {
		return nil, mapRepositoryError(err, matcherrors.ErrMatchNotFound)
	}
	if !m.Involves(userID) {
		return nil, matcherrors.ErrNotMatchParticipant
	}

	now := s.now()
	horizon := now.AddDate(0, 0, slotSearchDays+1)
	var busy []Meeting
	for _, uid := range []int64{m.User1ID, m.User2ID} {
		items, err := s.meetings.FindUserMeetingsBetween(ctx, uid, now, horizon)
		if err != nil {
			return nil, err
		}
		busy = append(busy, items...)
	}
	return SuggestSlots(now, busy, time.Duration(durationMinutes)*time.Minute, count), nil
}

// transition saves the meeting and moves its match to status in one transaction.
func (s *meetingService) transition(ctx context.Context, meeting *Meeting, status Status) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.meetings.WithTx(tx).Update(ctx, meeting); err != nil {
			return err
		}
		matches := s.matches.WithTx(tx)
		m, err := matches.FindActiveByID(ctx, meeting.MatchID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		m.Status = status
		return matches.Update(ctx, m)
	})
}

func (s *meetingService) checkConflicts(ctx context.Context, skipID int64, start, end time.Time, users ...int64) error {
	for _, uid := range users {
		items, err := s.meetings.FindUserMeetingsBetween(ctx, uid, start.Add(-conflictBuffer), end.Add(conflictBuffer))
		if err != nil {
			return err
		}
		for _, m := range items {
			if m.ID != skipID && m.Status.Open() {
				return matcherrors.ErrSchedulingConflict
			}
		}
	}
	return nil
}

func (s *meetingService) attendedMeeting(ctx context.Context, meetingID, userID int64) (*Meeting, error) {
	if meetingID <= 0 {
		return nil, matcherrors.ErrInvalidMeetingID
	}
	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		return nil, mapRepositoryError(err, matcherrors.ErrMeetingNotFound)
	}
	if meeting.OrganizerID != userID && meeting.ParticipantID != userID {
		return nil, matcherrors.ErrNotMatchParticipant
	}
	return meeting, nil
}

func (s *meetingService) user(ctx context.Context, id int64) (*user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *meetingService) starterTemplates(ctx context.Context, a, b user.User) []byte {
	picked, err := pickStarters(ctx, s.starters, s.logger, a, b, DefaultStarterLimit)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("failed to pick conversation starters", zap.Error(err))
		return []byte("[]")
	}
	templates := make([]string, 0, len(picked))
	for _, p := range picked {
		templates = append(templates, p.Template)
	}
	raw, _ := json.Marshal(templates)
	return raw
}

func meetingDescription(a, b user.User) string {
	line := func(u user.User) string {
		if u.Industry == "" {
			return "- " + u.Name
		}
		return fmt.Sprintf("- %s (%s)", u.Name, u.Industry)
	}
	return "Water Cooler Network Coffee Chat\n\nParticipants:\n" +
		line(a) + "\n" + line(b) + "\n\n" +
		"A chance to connect, share experiences and learn from each other."
}
