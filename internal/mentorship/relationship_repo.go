package mentorship

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=relationship_repo.go -destination=mock/relationship_repo_mock.go -package=mock
type RelationshipRepository interface {
	WithTx(tx *gorm.DB) RelationshipRepository
	Create(ctx context.Context, rel *Relationship) error
	Update(ctx context.Context, rel *Relationship) error
	FindByID(ctx context.Context, id int64) (*Relationship, error)
	FindByMentor(ctx context.Context, mentorID int64) ([]Relationship, error)
	FindByMentee(ctx context.Context, menteeID int64) ([]Relationship, error)
	FindByMentorOrMentee(ctx context.Context, userID int64) ([]Relationship, error)
	FindByProgram(ctx context.Context, programID int64) ([]Relationship, error)
	FindByStatus(ctx context.Context, status RelationshipStatus) ([]Relationship, error)
	FindByMentorAndStatus(ctx context.Context, mentorID int64, status RelationshipStatus) ([]Relationship, error)
	FindByMenteeAndStatus(ctx context.Context, menteeID int64, status RelationshipStatus) ([]Relationship, error)
	FindByProgramAndStatus(ctx context.Context, programID int64, status RelationshipStatus) ([]Relationship, error)
	FindActiveForMentor(ctx context.Context, mentorID int64) ([]Relationship, error)
	FindActiveForMentee(ctx context.Context, menteeID int64) ([]Relationship, error)
	FindActiveForProgram(ctx context.Context, programID int64) ([]Relationship, error)
	CountActiveForMentor(ctx context.Context, mentorID int64) (int64, error)
	CountActiveForMentee(ctx context.Context, menteeID int64) (int64, error)
	CountOpenForMentorInProgram(ctx context.Context, programID, mentorID int64) (int64, error)
	FindMentorBetween(ctx context.Context, mentorID int64, from, to time.Time) ([]Relationship, error)
	FindMenteeBetween(ctx context.Context, menteeID int64, from, to time.Time) ([]Relationship, error)
	FindProgramBetween(ctx context.Context, programID int64, from, to time.Time) ([]Relationship, error)
	CountByProgram(ctx context.Context, programIDs []int64) (map[int64]int, error)
}

type relationshipRepository struct {
	db *gorm.DB
}

func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (r *relationshipRepository) WithTx(tx *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: tx}
}

func (r *relationshipRepository) Create(ctx context.Context, rel *Relationship) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *relationshipRepository) Update(ctx context.Context, rel *Relationship) error {
	return r.db.WithContext(ctx).Save(rel).Error
}

func (r *relationshipRepository) FindByID(ctx context.Context, id int64) (*Relationship, error) {
	var rel Relationship
	if err := r.db.WithContext(ctx).First(&rel, id).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *relationshipRepository) find(ctx context.Context, query string, args ...any) ([]Relationship, error) {
	var out []Relationship
	err := r.db.WithContext(ctx).Where(query, args...).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *relationshipRepository) FindByMentor(ctx context.Context, mentorID int64) ([]Relationship, error) {
	return r.find(ctx, "mentor_id = ?", mentorID)
}

func (r *relationshipRepository) FindByMentee(ctx context.Context, menteeID int64) ([]Relationship, error) {
	return r.find(ctx, "mentee_id = ?", menteeID)
}

func (r *relationshipRepository) FindByMentorOrMentee(ctx context.Context, userID int64) ([]Relationship, error) {
	return r.find(ctx, "mentor_id = ? OR mentee_id = ?", userID, userID)
}

func (r *relationshipRepository) FindByProgram(ctx context.Context, programID int64) ([]Relationship, error) {
	return r.find(ctx, "program_id = ?", programID)
}

func (r *relationshipRepository) FindByStatus(ctx context.Context, status RelationshipStatus) ([]Relationship, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *relationshipRepository) FindByMentorAndStatus(ctx context.Context, mentorID int64, status RelationshipStatus) ([]Relationship, error) {
	return r.find(ctx, "mentor_id = ? AND status = ?", mentorID, status)
}

func (r *relationshipRepository) FindByMenteeAndStatus(ctx context.Context, menteeID int64, status RelationshipStatus) ([]Relationship, error) {
	return r.find(ctx, "mentee_id = ? AND status = ?", menteeID, status)
}

func (r *relationshipRepository) FindByProgramAndStatus(ctx context.Context, programID int64, status RelationshipStatus) ([]Relationship, error) {
	return r.find(ctx, "program_id = ? AND status = ?", programID, status)
}

func (r *relationshipRepository) FindActiveForMentor(ctx context.Context, mentorID int64) ([]Relationship, error) {
	return r.FindByMentorAndStatus(ctx, mentorID, RelationshipActive)
}

func (r *relationshipRepository) FindActiveForMentee(ctx context.Context, menteeID int64) ([]Relationship, error) {
	return r.FindByMenteeAndStatus(ctx, menteeID, RelationshipActive)
}

func (r *relationshipRepository) FindActiveForProgram(ctx context.Context, programID int64) ([]Relationship, error) {
	return r.FindByProgramAndStatus(ctx, programID, RelationshipActive)
}

func (r *relationshipRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Relationship{}).Where(query, args...).Count(&count).Error
	return count, err
}

func (r *relationshipRepository) CountActiveForMentor(ctx context.Context, mentorID int64) (int64, error) {
	return r.count(ctx, "mentor_id = ? AND status = ?", mentorID, RelationshipActive)
}

func (r *relationshipRepository) CountActiveForMentee(ctx context.Context, menteeID int64) (int64, error) {
	return r.count(ctx, "mentee_id = ? AND status = ?", menteeID, RelationshipActive)
}

// CountOpenForMentorInProgram counts pending and active pairings, the load a
// program's per-mentor cap applies to.
func (r *relationshipRepository) CountOpenForMentorInProgram(ctx context.Context, programID, mentorID int64) (int64, error) {
	return r.count(ctx, "program_id = ? AND mentor_id = ? AND status IN ?",
		programID, mentorID, []RelationshipStatus{RelationshipPending, RelationshipActive})
}

func (r *relationshipRepository) FindMentorBetween(ctx context.Context, mentorID int64, from, to time.Time) ([]Relationship, error) {
	return r.find(ctx, "mentor_id = ? AND start_date >= ? AND start_date <= ?", mentorID, from, to)
}

func (r *relationshipRepository) FindMenteeBetween(ctx context.Context, menteeID int64, from, to time.Time) ([]Relationship, error) {
	return r.find(ctx, "mentee_id = ? AND start_date >= ? AND start_date <= ?", menteeID, from, to)
}

func (r *relationshipRepository) FindProgramBetween(ctx context.Context, programID int64, from, to time.Time) ([]Relationship, error) {
	return r.find(ctx, "program_id = ? AND start_date >= ? AND start_date <= ?", programID, from, to)
}

// CountByProgram returns relationship counts keyed by program. Programs with
// none are absent from the map.
func (r *relationshipRepository) CountByProgram(ctx context.Context, programIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(programIDs))
	if len(programIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ProgramID int64
		Total     int
	}
	err := r.db.WithContext(ctx).Model(&Relationship{}).
		Select("program_id, COUNT(*) AS total").
		Where("program_id IN ?", programIDs).
		Group("program_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProgramID] = row.Total
	}
	return out, nil
}
