package match

import (
	"context"
	"fmt"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"

	"go.uber.org/zap"
)

// DefaultReminderLead is how far ahead of a meeting its reminder goes out.
const DefaultReminderLead = time.Hour

//go:generate mockgen -source=reminder_service.go -destination=mock/reminder_service_mock.go -package=mock
type ReminderService interface {
	DispatchReminders(ctx context.Context, now time.Time, lead time.Duration) (int, error)
}

type reminderService struct {
	meetings MeetingRepository
	notifier Notifier
	logger   *zap.Logger
}

func NewReminderService(meetings MeetingRepository, notifier Notifier, logger ...*zap.Logger) ReminderService {
	l := zap.L().Named("match.reminder")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("match.reminder")
	}
	return &reminderService{meetings: meetings, notifier: notifier, logger: l}
}

// DispatchReminders notifies both attendees of meetings starting within lead.
// A meeting is claimed before notifying, so concurrent workers never send
// the same reminder twice.
func (s *reminderService) DispatchReminders(ctx context.Context, now time.Time, lead time.Duration) (int, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	due, err := s.meetings.FindNeedingReminders(ctx, now, now.Add(lead))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, m := range due {
		claimed, err := s.meetings.MarkReminderSent(ctx, m.ID)
		if err != nil {
			log.Error("failed to mark reminder sent", zap.Int64("meeting_id", m.ID), zap.Error(err))
			continue
		}
		if claimed == 0 {
			continue
		}

		expires := m.ScheduledEndTime
		for _, uid := range []int64{m.OrganizerID, m.ParticipantID} {
			if _, err := s.notifier.Create(ctx, notification.CreateNotificationRequest{
				UserID:    uid,
				Title:     "Upcoming meeting",
				Message:   fmt.Sprintf("%s starts at %s", m.MeetingTitle, m.ScheduledStartTime.UTC().Format("15:04 MST")),
				Type:      notification.TypeMeetingReminder,
				Priority:  notification.PriorityHigh,
				ActionURL: fmt.Sprintf("/meetings/%d", m.ID),
				ExpiresAt: &expires,
			}); err != nil {
				log.Warn("failed to send meeting reminder", zap.Int64("meeting_id", m.ID), zap.Int64("user_id", uid), zap.Error(err))
			}
		}
		sent++
	}

	if sent > 0 {
		log.Info("meeting reminders dispatched", zap.Int("count", sent))
	}
	return sent, nil
}
