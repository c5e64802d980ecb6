package match

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=meeting_repo.go -destination=mock/meeting_repo_mock.go -package=mock
type MeetingRepository interface {
	WithTx(tx *gorm.DB) MeetingRepository
	Create(ctx context.Context, m *Meeting) error
	Update(ctx context.Context, m *Meeting) error
	FindByID(ctx context.Context, id int64) (*Meeting, error)
	FindByMatch(ctx context.Context, matchID int64) ([]Meeting, error)
	FindByOrganizer(ctx context.Context, userID int64) ([]Meeting, error)
	FindByParticipant(ctx context.Context, userID int64) ([]Meeting, error)
	FindUserMeetingsBetween(ctx context.Context, userID int64, from, to time.Time) ([]Meeting, error)
	FindByStatusBefore(ctx context.Context, status MeetingStatus, t time.Time) ([]Meeting, error)
	FindNeedingReminders(ctx context.Context, now, until time.Time) ([]Meeting, error)
	CountCompletedForUser(ctx context.Context, userID int64) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	MarkReminderSent(ctx context.Context, id int64) (int64, error)
}

type meetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) WithTx(tx *gorm.DB) MeetingRepository {
	return &meetingRepository{db: tx}
}

func (r *meetingRepository) Create(ctx context.Context, m *Meeting) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *meetingRepository) Update(ctx context.Context, m *Meeting) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *meetingRepository) FindByID(ctx context.Context, id int64) (*Meeting, error) {
	var m Meeting
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *meetingRepository) FindByMatch(ctx context.Context, matchID int64) ([]Meeting, error) {
	var out []Meeting
	err := r.db.WithContext(ctx).Where("match_id = ?", matchID).Order("scheduled_start_time DESC").Find(&out).Error
	return out, err
}

func (r *meetingRepository) FindByOrganizer(ctx context.Context, userID int64) ([]Meeting, error) {
	var out []Meeting
	err := r.db.WithContext(ctx).Where("organizer_id = ?", userID).Order("scheduled_start_time DESC").Find(&out).Error
	return out, err
}

func (r *meetingRepository) FindByParticipant(ctx context.Context, userID int64) ([]Meeting, error) {
	var out []Meeting
	err := r.db.WithContext(ctx).Where("participant_id = ?", userID).Order("scheduled_start_time DESC").Find(&out).Error
	return out, err
}

func (r *meetingRepository) FindUserMeetingsBetween(ctx context.Context, userID int64, from, to time.Time) ([]Meeting, error) {
	var out []Meeting
	err := r.db.WithContext(ctx).
		Where("(organizer_id = ? OR participant_id = ?) AND scheduled_start_time >= ? AND scheduled_start_time <= ?", userID, userID, from, to).
		Order("scheduled_start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *meetingRepository) FindByStatusBefore(ctx context.Context, status MeetingStatus, t time.Time) ([]Meeting, error) {
	var out []Meeting
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_start_time <= ?", status, t).
		Find(&out).Error
	return out, err
}

// FindNeedingReminders lists open meetings starting in [now, until] whose
// reminder has not gone out.
func (r *meetingRepository) FindNeedingReminders(ctx context.Context, now, until time.Time) ([]Meeting, error) {
	var out []Meeting
	err := r.db.WithContext(ctx).
		Where("reminder_sent = ? AND scheduled_start_time BETWEEN ? AND ?", false, now, until).
		Where("status IN ?", []MeetingStatus{MeetingScheduled, MeetingConfirmed, MeetingRescheduled}).
		Order("scheduled_start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *meetingRepository) CountCompletedForUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Meeting{}).
		Where("(organizer_id = ? OR participant_id = ?) AND status = ?", userID, userID, MeetingCompleted).
		Count(&count).Error
	return count, err
}

func (r *meetingRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Meeting{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return count, err
}

// MarkReminderSent returns 0 when another worker already flagged the meeting.
func (r *meetingRepository) MarkReminderSent(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Meeting{}).
		Where("id = ? AND reminder_sent = ?", id, false).
		Update("reminder_sent", true)
	return res.RowsAffected, res.Error
}
