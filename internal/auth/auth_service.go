package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	autherrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/auth/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// ActivityRecorder receives the LOGIN activity after a successful sign-in.
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, userID int64, req gamification.RecordActivityRequest) (gamification.ActivityResultDTO, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email string, password string) (AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, error)
}

type service struct {
	users    user.Repository
	activity ActivityRecorder
	secret   []byte
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(users user.Repository, activity ActivityRecorder, secret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		users:    users,
		activity: activity,
		secret:   []byte(secret),
		logger:   l,
		now:      time.Now,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return AuthResponse{}, err
	}
	if exists {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return AuthResponse{}, err
	}

	u := &user.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Industry:     req.Industry,
		Skills:       req.Skills,
		Interests:    req.Interests,
		LinkedinURL:  req.LinkedinURL,
		CompanyID:    req.CompanyID,
		Role:         user.RoleUser,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_users_email" {
			return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		log.Error("failed to create user", zap.Error(err))
		return AuthResponse{}, err
	}

	log.Info("user registered", zap.Int64("user_id", u.ID))
	return s.issue(u)
}

func (s *service) Login(ctx context.Context, email string, password string) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		return AuthResponse{}, autherrors.ErrAccountInactive
	}

	now := s.now()
	u.LastActiveDate = &now
	if err := s.users.Update(ctx, u); err != nil {
		log.Warn("failed to update last active date", zap.Int64("user_id", u.ID), zap.Error(err))
	}

	if s.activity != nil {
		if _, err := s.activity.RecordActivity(ctx, u.ID, gamification.RecordActivityRequest{
			ActivityType: gamification.ActivityLogin,
		}); err != nil {
			log.Warn("failed to record login activity", zap.Int64("user_id", u.ID), zap.Error(err))
		}
	}

	return s.issue(u)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (AuthResponse, error) {
	claims, err := s.parse(refreshToken)
	if err != nil || claims["typ"] != tokenTypeRefresh {
		return AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	id, ok := claims["user_id"].(float64)
	if !ok {
		return AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	u, err := s.users.FindByID(ctx, int64(id))
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if !u.IsActive {
		return AuthResponse{}, autherrors.ErrAccountInactive
	}
	return s.issue(u)
}

func (s *service) issue(u *user.User) (AuthResponse, error) {
	access, err := s.sign(u, tokenTypeAccess, AccessTokenTTL)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.sign(u, tokenTypeRefresh, RefreshTokenTTL)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	return AuthResponse{
		TokenPair: TokenPair{AccessToken: access, RefreshToken: refresh},
		User:      user.ProfileFromEntity(*u),
	}, nil
}

func (s *service) sign(u *user.User, typ string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    string(u.Role),
		"typ":     typ,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	if u.CompanyID != nil {
		claims["company_id"] = *u.CompanyID
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *service) parse(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return claims, nil
}
