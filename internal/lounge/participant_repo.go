package lounge

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=participant_repo.go -destination=mock/participant_repo_mock.go -package=mock
type ParticipantRepository interface {
	WithTx(tx *gorm.DB) ParticipantRepository
	Create(ctx context.Context, p *Participant) error
	Update(ctx context.Context, p *Participant) error
	FindActiveByLounge(ctx context.Context, loungeID int64) ([]Participant, error)
	FindActiveByUser(ctx context.Context, userID int64) ([]Participant, error)
	FindActiveByLoungeAndUser(ctx context.Context, loungeID, userID int64) (*Participant, error)
	ExistsActive(ctx context.Context, loungeID, userID int64) (bool, error)
	FindModerators(ctx context.Context, loungeID int64) ([]Participant, error)
	CountActive(ctx context.Context, loungeID int64) (int64, error)
	FindInactive(ctx context.Context, loungeID int64, since time.Time) ([]Participant, error)
	FindByLoungeAndRole(ctx context.Context, loungeID int64, role ParticipantRole) ([]Participant, error)
	DeactivateByLounge(ctx context.Context, loungeID int64) (int64, error)
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) WithTx(tx *gorm.DB) ParticipantRepository {
	return &participantRepository{db: tx}
}

func (r *participantRepository) Create(ctx context.Context, p *Participant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *participantRepository) Update(ctx context.Context, p *Participant) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *participantRepository) FindActiveByLounge(ctx context.Context, loungeID int64) ([]Participant, error) {
	var out []Participant
	err := r.db.WithContext(ctx).
		Where("lounge_id = ? AND is_active = ?", loungeID, true).
		Order("joined_at ASC").
		Find(&out).Error
	return out, err
}

func (r *participantRepository) FindActiveByUser(ctx context.Context, userID int64) ([]Participant, error) {
	var out []Participant
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("last_activity DESC NULLS LAST").
		Find(&out).Error
	return out, err
}

func (r *participantRepository) FindActiveByLoungeAndUser(ctx context.Context, loungeID, userID int64) (*Participant, error) {
	var p Participant
	err := r.db.WithContext(ctx).
		Where("lounge_id = ? AND user_id = ? AND is_active = ?", loungeID, userID, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) ExistsActive(ctx context.Context, loungeID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Participant{}).
		Where("lounge_id = ? AND user_id = ? AND is_active = ?", loungeID, userID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *participantRepository) FindModerators(ctx context.Context, loungeID int64) ([]Participant, error) {
	var out []Participant
	err := r.db.WithContext(ctx).
		Where("lounge_id = ? AND is_active = ? AND role IN ?", loungeID, true, []ParticipantRole{RoleCreator, RoleModerator}).
		Find(&out).Error
	return out, err
}

func (r *participantRepository) CountActive(ctx context.Context, loungeID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Participant{}).
		Where("lounge_id = ? AND is_active = ?", loungeID, true).
		Count(&count).Error
	return count, err
}

// FindInactive lists active participants whose last activity predates since.
func (r *participantRepository) FindInactive(ctx context.Context, loungeID int64, since time.Time) ([]Participant, error) {
	var out []Participant
	err := r.db.WithContext(ctx).
		Where("lounge_id = ? AND is_active = ?", loungeID, true).
		Where("last_activity IS NULL OR last_activity < ?", since).
		Find(&out).Error
	return out, err
}

func (r *participantRepository) FindByLoungeAndRole(ctx context.Context, loungeID int64, role ParticipantRole) ([]Participant, error) {
	var out []Participant
	err := r.db.WithContext(ctx).
		Where("lounge_id = ? AND role = ? AND is_active = ?", loungeID, role, true).
		Find(&out).Error
	return out, err
}

func (r *participantRepository) DeactivateByLounge(ctx context.Context, loungeID int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Participant{}).
		Where("lounge_id = ? AND is_active = ?", loungeID, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
