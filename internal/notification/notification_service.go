package notification

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/events"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka"
	notificationerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/pagination"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/response"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	UnreadCountKeyPrefix = "notifications:unread:"
	unreadCountTTL       = time.Minute
)

func GetUnreadCountKey(userID int64) string {
	return UnreadCountKeyPrefix + strconv.FormatInt(userID, 10)
}

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateNotificationRequest) (*NotificationDTO, error)
	List(ctx context.Context, userID int64, page pagination.Page) ([]NotificationDTO, response.PaginationMeta, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, userID, id int64) error
	MarkAllAsRead(ctx context.Context, userID int64) (int64, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
	GetPreferences(ctx context.Context, userID int64) (PreferencesDTO, error)
	UpdatePreferences(ctx context.Context, userID int64, req UpdatePreferencesRequest) (PreferencesDTO, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	prefs  PreferencesRepository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *gorm.DB, repo Repository, prefs PreferencesRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, prefs, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	prefs PreferencesRepository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		prefs:  prefs,
		outbox: outboxRepo,
		rdb:    rdb,
		logger: l,
		now:    time.Now,
	}
}

func (s *service) preferencesFor(ctx context.Context, userID int64) (Preferences, error) {
	p, err := s.prefs.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultPreferences(userID), nil
	}
	if err != nil {
		return Preferences{}, err
	}
	return *p, nil
}

// deliveryChannels lists the out-of-band channels a new notification fans out to.
func deliveryChannels(p Preferences, t Type, at time.Time) []string {
	channels := make([]string, 0, 2)
	if p.IsNotificationEnabled(t, ChannelEmail) {
		channels = append(channels, string(ChannelEmail))
	}
	if p.IsNotificationEnabled(t, ChannelPush) && !p.InQuietHours(at) {
		channels = append(channels, string(ChannelPush))
	}
	return channels
}

// Create stores an in-app notification and queues its fan-out event. It
// returns nil without error when the user has muted this type in-app.
func (s *service) Create(ctx context.Context, req CreateNotificationRequest) (*NotificationDTO, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	if req.UserID <= 0 {
		return nil, notificationerrors.ErrInvalidUserID
	}
	if !req.Type.Valid() {
		return nil, notificationerrors.ErrInvalidType
	}
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}

	prefs, err := s.preferencesFor(ctx, req.UserID)
	if err != nil {
		log.Error("load notification preferences failed", zap.Int64("user_id", req.UserID), zap.Error(err))
		return nil, err
	}
	if !prefs.IsNotificationEnabled(req.Type, ChannelInApp) {
		log.Debug("notification suppressed by preferences",
			zap.Int64("user_id", req.UserID),
			zap.String("type", string(req.Type)),
		)
		return nil, nil
	}

	n := &Notification{
		UserID:    req.UserID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Priority:  req.Priority,
		ActionURL: req.ActionURL,
		ExpiresAt: req.ExpiresAt,
	}
	if len(req.Metadata) > 0 {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, err
		}
		n.Metadata = datatypes.JSON(raw)
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, n); err != nil {
			return err
		}
		if s.outbox == nil {
			return nil
		}

		event := events.NotificationCreatedEvent{
			EventType:      "notification_created",
			RequestID:      rid,
			NotificationID: n.ID,
			UserID:         n.UserID,
			Type:           string(n.Type),
			Priority:       string(n.Priority),
			Title:          n.Title,
			Channels:       deliveryChannels(prefs, n.Type, now),
			OccurredAt:     now.UTC(),
		}
		return kafka.Enqueue(ctx, s.outbox, tx, rid,
			"notification", strconv.FormatInt(n.ID, 10),
			event.EventType, events.NotificationCreatedTopic, event)
	})
	if err != nil {
		log.Error("create notification failed", zap.Int64("user_id", req.UserID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.invalidateUnread(ctx, req.UserID)

	log.Info("notification created",
		zap.Int64("notification_id", n.ID),
		zap.Int64("user_id", n.UserID),
		zap.String("type", string(n.Type)),
	)
	dto := mapToDTO(*n)
	return &dto, nil
}

func (s *service) List(ctx context.Context, userID int64, page pagination.Page) ([]NotificationDTO, response.PaginationMeta, error) {
	items, total, err := s.repo.FindByUser(ctx, userID, page)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}
	return mapToListDTO(items), response.NewPaginationMeta(total, page.Page, page.Limit), nil
}

func (s *service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	key := GetUnreadCountKey(userID)

	if s.rdb != nil {
		if n, err := s.rdb.Get(ctx, key).Int64(); err == nil {
			return n, nil
		}
	}

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, key, count, unreadCountTTL).Err(); err != nil {
			s.logger.Warn("cache unread count failed", zap.String("key", key), zap.Error(err))
		}
	}
	return count, nil
}

func (s *service) MarkAsRead(ctx context.Context, userID, id int64) error {
	if id <= 0 {
		return notificationerrors.ErrInvalidNotificationID
	}

	affected, err := s.repo.MarkAsRead(ctx, id, userID, s.now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return notificationerrors.ErrNotificationNotFound
	}

	s.invalidateUnread(ctx, userID)
	return nil
}

func (s *service) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	affected, err := s.repo.MarkAllAsRead(ctx, userID, s.now())
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		s.invalidateUnread(ctx, userID)
	}
	return affected, nil
}

func (s *service) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	deleted, err := s.repo.DeleteExpiredNotifications(ctx, now)
	if err != nil {
		s.logger.Error("purge expired notifications failed", zap.Error(err))
		return 0, err
	}
	if deleted > 0 {
		s.logger.Info("expired notifications purged", zap.Int64("deleted", deleted))
	}
	return deleted, nil
}

func (s *service) GetPreferences(ctx context.Context, userID int64) (PreferencesDTO, error) {
	p, err := s.preferencesFor(ctx, userID)
	if err != nil {
		return PreferencesDTO{}, err
	}
	return mapPreferencesToDTO(p), nil
}

func (s *service) UpdatePreferences(ctx context.Context, userID int64, req UpdatePreferencesRequest) (PreferencesDTO, error) {
	p, err := s.preferencesFor(ctx, userID)
	if err != nil {
		return PreferencesDTO{}, err
	}

	req.apply(&p)

	if err := validateQuietHours(p); err != nil {
		return PreferencesDTO{}, err
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return PreferencesDTO{}, notificationerrors.ErrInvalidTimezone.WithCause(err)
	}

	if err := s.prefs.Save(ctx, &p); err != nil {
		return PreferencesDTO{}, mapRepositoryError(err)
	}
	return mapPreferencesToDTO(p), nil
}

func validateQuietHours(p Preferences) error {
	if !p.QuietHoursEnabled {
		return nil
	}
	if _, err := time.Parse("15:04", p.QuietHoursStart); err != nil {
		return notificationerrors.ErrInvalidQuietHours
	}
	if _, err := time.Parse("15:04", p.QuietHoursEnd); err != nil {
		return notificationerrors.ErrInvalidQuietHours
	}
	return nil
}

func (s *service) invalidateUnread(ctx context.Context, userID int64) {
	if s.rdb == nil {
		return
	}
	key := GetUnreadCountKey(userID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate unread count cache", zap.String("key", key), zap.Error(err))
	}
}
