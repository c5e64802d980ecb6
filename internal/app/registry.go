package app

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/auth"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/department"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/mentorship"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/config"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services is the wired service graph shared by the api, worker and consumer.
type services struct {
	Auth         auth.Service
	User         user.Service
	Company      company.Service
	Invitations  company.InvitationService
	Department   department.Service
	Lounge       lounge.Service
	Match        match.Service
	Meetings     match.MeetingService
	Reminders    match.ReminderService
	Gamification gamification.Service
	Notification notification.Service
	Subscription subscription.Service
	Mentorship   mentorship.Service
	Analytics    analytics.Service
	OutboxRepo   kafka.OutboxRepository
}

func buildServices(db *gorm.DB, rdb *redis.Client, cfg config.Config, logger *zap.Logger) *services {
	// --- Repositories ---
	userRepo := user.NewRepository(db)
	userPrefsRepo := user.NewPreferencesRepository(db)
	companyRepo := company.NewRepository(db)
	departmentRepo := department.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	matchRepo := match.NewRepository(db)
	meetingRepo := match.NewMeetingRepository(db)
	starterRepo := match.NewStarterRepository(db)
	loungeMessageRepo := lounge.NewMessageRepository(db)

	// --- Services ---
	notificationService := notification.NewServiceWithOutbox(
		db, notification.NewRepository(db), notification.NewPreferencesRepository(db), outboxRepo, rdb, logger,
	)
	gamificationService := gamification.NewServiceWithOutbox(
		db,
		gamification.NewBadgeRepository(db),
		gamification.NewUserBadgeRepository(db),
		gamification.NewStreakRepository(db),
		gamification.NewActivityRepository(db),
		outboxRepo,
		rdb,
		cfg.LeaderboardCacheTTL,
		logger,
	)

	return &services{
		Auth:    auth.NewService(userRepo, gamificationService, cfg.JWTSecret, logger),
		User:    user.NewService(userRepo, userPrefsRepo, logger),
		Company: company.NewService(
			db, companyRepo, company.NewSettingsRepository(db), company.NewAnnouncementRepository(db),
			userRepo, departmentRepo, logger,
		),
		Invitations: company.NewInvitationService(db, company.NewInvitationRepository(db), userRepo, logger),
		Department:  department.NewService(db, departmentRepo, department.NewMembershipRepository(db), rdb, logger),
		Lounge:      lounge.NewService(
			db, lounge.NewRepository(db), lounge.NewParticipantRepository(db), loungeMessageRepo,
			gamificationService, logger,
		),
		Match: match.NewService(db, match.Deps{
			Repo:     matchRepo,
			Feedback: match.NewFeedbackRepository(db),
			Chat:     match.NewChatRepository(db),
			Starters: starterRepo,
			Users:    userRepo,
			Prefs:    userPrefsRepo,
			Activity: gamificationService,
			Notifier: notificationService,
		}, logger),
		Meetings: match.NewMeetingService(
			db, matchRepo, meetingRepo, starterRepo, userRepo, gamificationService, notificationService, logger,
		),
		Reminders:    match.NewReminderService(meetingRepo, notificationService, logger),
		Gamification: gamificationService,
		Notification: notificationService,
		Subscription: subscription.NewService(
			db, subscription.NewRepository(db), subscription.NewPaymentRepository(db), companyRepo, logger,
		),
		Mentorship: mentorship.NewService(
			mentorship.NewProgramRepository(db),
			mentorship.NewRelationshipRepository(db),
			mentorship.NewSessionRepository(db),
			userRepo,
			notificationService,
			logger,
		),
		Analytics: analytics.NewService(
			analytics.Repositories{
				Data:         analytics.NewDataRepository(db),
				Platform:     analytics.NewPlatformRepository(db),
				UserDays:     analytics.NewUserDayRepository(db),
				Behaviors:    analytics.NewBehaviorRepository(db),
				Interactions: analytics.NewInteractionRepository(db),
				Insights:     analytics.NewInsightRepository(db),
			},
			analytics.RollupSources{
				Users:    userRepo,
				Matches:  matchRepo,
				Meetings: meetingRepo,
				Messages: loungeMessageRepo,
			},
			userRepo,
			logger,
		),
		OutboxRepo: outboxRepo,
	}
}

func registerModules(router *gin.Engine, svc *services, rdb *redis.Client, cfg config.Config, logger *zap.Logger) {
	authChain := []gin.HandlerFunc{
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(logger),
		middleware.Idempotency(rdb),
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(svc.Auth, cfg.IsProduction(), logger)
	userHandler := user.NewHandler(svc.User, logger)
	companyHandler := company.NewHandler(svc.Company, svc.Invitations, logger)
	departmentHandler := department.NewHandler(svc.Department, logger)
	loungeHandler := lounge.NewHandler(svc.Lounge, logger)
	matchHandler := match.NewHandler(svc.Match, svc.Meetings, logger)
	gamificationHandler := gamification.NewHandler(svc.Gamification, logger)
	notificationHandler := notification.NewHandler(svc.Notification, logger)
	subscriptionHandler := subscription.NewHandler(svc.Subscription, logger)
	mentorshipHandler := mentorship.NewHandler(svc.Mentorship, logger)
	analyticsHandler := analytics.NewHandler(svc.Analytics, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, authChain...)
		company.RegisterRoutes(api, companyHandler, authChain...)
		department.RegisterRoutes(api, departmentHandler, authChain...)
		lounge.RegisterRoutes(api, loungeHandler, authChain...)
		match.RegisterRoutes(api, matchHandler, authChain...)
		gamification.RegisterRoutes(api, gamificationHandler, authChain...)
		notification.RegisterRoutes(api, notificationHandler, authChain...)
		subscription.RegisterRoutes(api, subscriptionHandler, authChain...)
		mentorship.RegisterRoutes(api, mentorshipHandler, authChain...)
		analytics.RegisterRoutes(api, analyticsHandler, authChain...)
	}
}
