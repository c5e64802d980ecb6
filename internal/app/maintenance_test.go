package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics"
	analyticsMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics/mock"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/app"
	companyMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/mock"
	matchMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match/mock"
	notificationMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification/mock"
	subscriptionMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription/mock"

	"go.uber.org/mock/gomock"
)

type maintenanceDeps struct {
	notifications *notificationMock.MockService
	invitations   *companyMock.MockInvitationService
	subscriptions *subscriptionMock.MockService
	reminders     *matchMock.MockReminderService
	analytics     *analyticsMock.MockService
}

func setupMaintenance(t *testing.T) (*app.Maintenance, *maintenanceDeps) {
	ctrl := gomock.NewController(t)
	d := &maintenanceDeps{
		notifications: notificationMock.NewMockService(ctrl),
		invitations:   companyMock.NewMockInvitationService(ctrl),
		subscriptions: subscriptionMock.NewMockService(ctrl),
		reminders:     matchMock.NewMockReminderService(ctrl),
		analytics:     analyticsMock.NewMockService(ctrl),
	}
	m := app.NewMaintenance(d.notifications, d.invitations, d.subscriptions, d.reminders, d.analytics, 15*time.Minute)
	return m, d
}

func (d *maintenanceDeps) expectSweeps(now time.Time) {
	d.notifications.EXPECT().PurgeExpired(gomock.Any(), now).Return(int64(3), nil)
	d.invitations.EXPECT().ExpireInvitations(gomock.Any(), now).Return(int64(0), nil)
	d.subscriptions.EXPECT().MarkPastDue(gomock.Any(), now).Return(int64(1), nil)
	d.subscriptions.EXPECT().EndCanceled(gomock.Any(), now).Return(int64(0), nil)
	d.reminders.EXPECT().DispatchReminders(gomock.Any(), now, 15*time.Minute).Return(2, nil)
}

func TestMaintenance_RunOnce(t *testing.T) {
	t.Run("rolls up yesterday once per day", func(t *testing.T) {
		m, d := setupMaintenance(t)
		first := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
		second := first.Add(time.Minute)
		yesterday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		d.expectSweeps(first)
		d.expectSweeps(second)
		d.analytics.EXPECT().RollupDay(gomock.Any(), yesterday).Return(&analytics.PlatformDay{}, nil).Times(1)

		m.RunOnce(context.Background(), first)
		m.RunOnce(context.Background(), second)
	})

	t.Run("a failing job does not stop the rest", func(t *testing.T) {
		m, d := setupMaintenance(t)
		now := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)

		d.notifications.EXPECT().PurgeExpired(gomock.Any(), now).Return(int64(0), errors.New("db down"))
		d.invitations.EXPECT().ExpireInvitations(gomock.Any(), now).Return(int64(0), nil)
		d.subscriptions.EXPECT().MarkPastDue(gomock.Any(), now).Return(int64(0), nil)
		d.subscriptions.EXPECT().EndCanceled(gomock.Any(), now).Return(int64(0), nil)
		d.reminders.EXPECT().DispatchReminders(gomock.Any(), now, 15*time.Minute).Return(0, nil)
		d.analytics.EXPECT().RollupDay(gomock.Any(), gomock.Any()).Return(&analytics.PlatformDay{}, nil)

		m.RunOnce(context.Background(), now)
	})

	t.Run("a failed rollup is retried on the next tick", func(t *testing.T) {
		m, d := setupMaintenance(t)
		first := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
		second := first.Add(time.Minute)

		d.expectSweeps(first)
		d.expectSweeps(second)
		gomock.InOrder(
			d.analytics.EXPECT().RollupDay(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")),
			d.analytics.EXPECT().RollupDay(gomock.Any(), gomock.Any()).Return(&analytics.PlatformDay{}, nil),
		)

		m.RunOnce(context.Background(), first)
		m.RunOnce(context.Background(), second)
	})
}
