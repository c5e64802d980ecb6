package app

import (
	"context"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription"

	"go.uber.org/zap"
)

// Maintenance runs the periodic state sweeps. One failing job never stops the others.
type Maintenance struct {
	notifications notification.Service
	invitations   company.InvitationService
	subscriptions subscription.Service
	reminders     match.ReminderService
	analytics     analytics.Service
	reminderLead  time.Duration
	logger        *zap.Logger

	lastRollup time.Time
}

func NewMaintenance(
	notifications notification.Service,
	invitations company.InvitationService,
	subscriptions subscription.Service,
	reminders match.ReminderService,
	analyticsService analytics.Service,
	reminderLead time.Duration,
	logger ...*zap.Logger,
) *Maintenance {
	l := zap.L().Named("app.maintenance")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("app.maintenance")
	}
	return &Maintenance{
		notifications: notifications,
		invitations:   invitations,
		subscriptions: subscriptions,
		reminders:     reminders,
		analytics:     analyticsService,
		reminderLead:  reminderLead,
		logger:        l,
	}
}

// Run calls RunOnce every interval until ctx is done.
func (m *Maintenance) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.logger.Info("maintenance loop started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("maintenance loop stopped")
			return
		case now := <-ticker.C:
			m.RunOnce(ctx, now)
		}
	}
}

func (m *Maintenance) RunOnce(ctx context.Context, now time.Time) {
	m.count("purge expired notifications", func() (int64, error) {
		return m.notifications.PurgeExpired(ctx, now)
	})
	m.count("expire invitations", func() (int64, error) {
		return m.invitations.ExpireInvitations(ctx, now)
	})
	m.count("mark subscriptions past due", func() (int64, error) {
		return m.subscriptions.MarkPastDue(ctx, now)
	})
	m.count("end canceled subscriptions", func() (int64, error) {
		return m.subscriptions.EndCanceled(ctx, now)
	})
	m.count("dispatch meeting reminders", func() (int64, error) {
		n, err := m.reminders.DispatchReminders(ctx, now, m.reminderLead)
		return int64(n), err
	})

	// Yesterday's rollup runs once per calendar day.
	today := time.Time(analytics.Day(now))
	if !m.lastRollup.Equal(today) {
		if _, err := m.analytics.RollupDay(ctx, today.AddDate(0, 0, -1)); err != nil {
			m.logger.Error("analytics rollup failed", zap.Time("date", today.AddDate(0, 0, -1)), zap.Error(err))
			return
		}
		m.lastRollup = today
	}
}

func (m *Maintenance) count(job string, fn func() (int64, error)) {
	n, err := fn()
	if err != nil {
		m.logger.Error(job+" failed", zap.Error(err))
		return
	}
	if n > 0 {
		m.logger.Info(job, zap.Int64("affected", n))
	}
}
