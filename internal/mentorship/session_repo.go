package mentorship

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

const relationshipJoin = "JOIN mentorship_relationships ON mentorship_relationships.id = mentorship_sessions.relationship_id"

//go:generate mockgen -source=session_repo.go -destination=mock/session_repo_mock.go -package=mock
type SessionRepository interface {
	WithTx(tx *gorm.DB) SessionRepository
	Create(ctx context.Context, session *Session) error
	Update(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, id int64) (*Session, error)
	FindByRelationship(ctx context.Context, relationshipID int64) ([]Session, error)
	FindByStatus(ctx context.Context, status SessionStatus) ([]Session, error)
	FindByRelationshipAndStatus(ctx context.Context, relationshipID int64, status SessionStatus) ([]Session, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]Session, error)
	FindByRelationshipBetween(ctx context.Context, relationshipID int64, from, to time.Time) ([]Session, error)
	FindMentorSessionsBetween(ctx context.Context, mentorID int64, from, to time.Time) ([]Session, error)
	FindMenteeSessionsBetween(ctx context.Context, menteeID int64, from, to time.Time) ([]Session, error)
	FindProgramSessionsBetween(ctx context.Context, programID int64, from, to time.Time) ([]Session, error)
	FindUpcomingForMentor(ctx context.Context, mentorID int64, now time.Time) ([]Session, error)
	FindUpcomingForMentee(ctx context.Context, menteeID int64, now time.Time) ([]Session, error)
	CountCompletedForMentor(ctx context.Context, mentorID int64) (int64, error)
	CountCompletedForMentee(ctx context.Context, menteeID int64) (int64, error)
	AverageDurationForMentor(ctx context.Context, mentorID int64) (*float64, error)
	AverageDurationForMentee(ctx context.Context, menteeID int64) (*float64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) WithTx(tx *gorm.DB) SessionRepository {
	return &sessionRepository{db: tx}
}

func (r *sessionRepository) Create(ctx context.Context, session *Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) Update(ctx context.Context, session *Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepository) FindByID(ctx context.Context, id int64) (*Session, error) {
	var s Session
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByRelationship lists the newest session first.
func (r *sessionRepository) FindByRelationship(ctx context.Context, relationshipID int64) ([]Session, error) {
	var out []Session
	err := r.db.WithContext(ctx).
		Where("relationship_id = ?", relationshipID).
		Order("session_date DESC").
		Find(&out).Error
	return out, err
}

func (r *sessionRepository) FindByStatus(ctx context.Context, status SessionStatus) ([]Session, error) {
	var out []Session
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&out).Error
	return out, err
}

func (r *sessionRepository) FindByRelationshipAndStatus(ctx context.Context, relationshipID int64, status SessionStatus) ([]Session, error) {
	var out []Session
	err := r.db.WithContext(ctx).Where("relationship_id = ? AND status = ?", relationshipID, status).Find(&out).Error
	return out, err
}

func (r *sessionRepository) FindBetween(ctx context.Context, from, to time.Time) ([]Session, error) {
	var out []Session
	err := r.db.WithContext(ctx).Where("session_date BETWEEN ? AND ?", from, to).Find(&out).Error
	return out, err
}

func (r *sessionRepository) FindByRelationshipBetween(ctx context.Context, relationshipID int64, from, to time.Time) ([]Session, error) {
	var out []Session
	err := r.db.WithContext(ctx).
		Where("relationship_id = ? AND session_date BETWEEN ? AND ?", relationshipID, from, to).
		Find(&out).Error
	return out, err
}

func (r *sessionRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&Session{}).Select("mentorship_sessions.*").Joins(relationshipJoin)
}

func (r *sessionRepository) FindMentorSessionsBetween(ctx context.Context, mentorID int64, from, to time.Time) ([]Session, error) {
	var out []Session
	err := r.joined(ctx).
		Where("mentorship_relationships.mentor_id = ? AND mentorship_sessions.session_date BETWEEN ? AND ?", mentorID, from, to).
		Find(&out).Error
	return out, err
}

func (r *sessionRepository) FindMenteeSessionsBetween(ctx context.Context, menteeID int64, from, to time.Time) ([]Session, error) {
	var out []Session
	err := r.joined(ctx).
		Where("mentorship_relationships.mentee_id = ? AND mentorship_sessions.session_date BETWEEN ? AND ?", menteeID, from, to).
		Find(&out).Error
	return out, err
}

func (r *sessionRepository) FindProgramSessionsBetween(ctx context.Context, programID int64, from, to time.Time) ([]Session, error) {
	var out []Session
	err := r.joined(ctx).
		Where("mentorship_relationships.program_id = ? AND mentorship_sessions.session_date BETWEEN ? AND ?", programID, from, to).
		Find(&out).Error
	return out, err
}

func (r *sessionRepository) FindUpcomingForMentor(ctx context.Context, mentorID int64, now time.Time) ([]Session, error) {
	return r.upcoming(ctx, "mentorship_relationships.mentor_id = ?", mentorID, now)
}

func (r *sessionRepository) FindUpcomingForMentee(ctx context.Context, menteeID int64, now time.Time) ([]Session, error) {
	return r.upcoming(ctx, "mentorship_relationships.mentee_id = ?", menteeID, now)
}

func (r *sessionRepository) upcoming(ctx context.Context, userClause string, userID int64, now time.Time) ([]Session, error) {
	var out []Session
	err := r.joined(ctx).
		Where(userClause, userID).
		Where("mentorship_sessions.status = ? AND mentorship_sessions.session_date >= ?", SessionScheduled, now).
		Order("mentorship_sessions.session_date ASC").
		Find(&out).Error
	return out, err
}

func (r *sessionRepository) CountCompletedForMentor(ctx context.Context, mentorID int64) (int64, error) {
	return r.countCompleted(ctx, "mentorship_relationships.mentor_id = ?", mentorID)
}

func (r *sessionRepository) CountCompletedForMentee(ctx context.Context, menteeID int64) (int64, error) {
	return r.countCompleted(ctx, "mentorship_relationships.mentee_id = ?", menteeID)
}

func (r *sessionRepository) countCompleted(ctx context.Context, userClause string, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Session{}).
		Joins(relationshipJoin).
		Where(userClause, userID).
		Where("mentorship_sessions.status = ?", SessionCompleted).
		Count(&count).Error
	return count, err
}

// AverageDurationForMentor is nil when the mentor has no completed, timed
// sessions.
func (r *sessionRepository) AverageDurationForMentor(ctx context.Context, mentorID int64) (*float64, error) {
	return r.averageDuration(ctx, "mentorship_relationships.mentor_id = ?", mentorID)
}

func (r *sessionRepository) AverageDurationForMentee(ctx context.Context, menteeID int64) (*float64, error) {
	return r.averageDuration(ctx, "mentorship_relationships.mentee_id = ?", menteeID)
}

func (r *sessionRepository) averageDuration(ctx context.Context, userClause string, userID int64) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&Session{}).
		Select("AVG(mentorship_sessions.duration_minutes)").
		Joins(relationshipJoin).
		Where(userClause, userID).
		Where("mentorship_sessions.status = ? AND mentorship_sessions.duration_minutes IS NOT NULL", SessionCompleted).
		Row().Scan(&avg)
	if err != nil || !avg.Valid {
		return nil, err
	}
	return &avg.Float64, nil
}
