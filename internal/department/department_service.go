package department

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	departmenterrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/department/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const listCacheTTL = 30 * time.Minute

func GetListCacheKey(companyID int64) string {
	return fmt.Sprintf("departments:all:%d", companyID)
}

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, companyID int64) ([]DepartmentDTO, error)
	Tree(ctx context.Context, companyID int64) ([]DepartmentDTO, error)
	Get(ctx context.Context, companyID, id int64) (DepartmentDTO, error)
	Create(ctx context.Context, companyID int64, req CreateDepartmentRequest) (DepartmentDTO, error)
	Update(ctx context.Context, companyID, id int64, req UpdateDepartmentRequest) (DepartmentDTO, error)
	Delete(ctx context.Context, companyID, id int64) error
	Members(ctx context.Context, companyID, id int64) ([]MemberDTO, error)
	AddMember(ctx context.Context, companyID, id int64, req AddMemberRequest) (MemberDTO, error)
	RemoveMember(ctx context.Context, companyID, id, userID int64) error
	UserDepartments(ctx context.Context, userID int64) ([]MemberDTO, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	members MembershipRepository
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, members MembershipRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, members: members, rdb: rdb, logger: l}
}

func (s *service) List(ctx context.Context, companyID int64) ([]DepartmentDTO, error) {
	key := GetListCacheKey(companyID)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var out []DepartmentDTO
			if json.Unmarshal([]byte(cached), &out) == nil {
				return out, nil
			}
		}
	}

	depts, err := s.repo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(depts))
	for _, d := range depts {
		ids = append(ids, d.ID)
	}
	counts, err := s.members.CountActiveByDepartments(ctx, ids)
	if err != nil {
		return nil, err
	}
	byDept := make(map[int64]int64, len(counts))
	for _, c := range counts {
		byDept[c.DepartmentID] = c.Total
	}

	out := make([]DepartmentDTO, 0, len(depts))
	for _, d := range depts {
		dto := FromEntity(d)
		dto.MemberCount = byDept[d.ID]
		out = append(out, dto)
	}

	if s.rdb != nil {
		if body, err := json.Marshal(out); err == nil {
			if err := s.rdb.Set(ctx, key, string(body), listCacheTTL).Err(); err != nil {
				s.logger.Warn("cache departments failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return out, nil
}

// Tree nests the active departments under their parents. Departments whose
// parent is inactive surface as roots.
func (s *service) Tree(ctx context.Context, companyID int64) ([]DepartmentDTO, error) {
	flat, err := s.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	present := make(map[int64]bool, len(flat))
	children := make(map[int64][]DepartmentDTO)
	for _, d := range flat {
		present[d.ID] = true
	}
	var roots []DepartmentDTO
	for _, d := range flat {
		if d.ParentDepartmentID != nil && present[*d.ParentDepartmentID] {
			children[*d.ParentDepartmentID] = append(children[*d.ParentDepartmentID], d)
			continue
		}
		roots = append(roots, d)
	}

	var attach func(d DepartmentDTO) DepartmentDTO
	attach = func(d DepartmentDTO) DepartmentDTO {
		for _, c := range children[d.ID] {
			d.Children = append(d.Children, attach(c))
		}
		return d
	}
	out := make([]DepartmentDTO, 0, len(roots))
	for _, r := range roots {
		out = append(out, attach(r))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, companyID, id int64) (DepartmentDTO, error) {
	d, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return DepartmentDTO{}, mapRepositoryError(err)
	}

	dto := FromEntity(*d)
	if dto.MemberCount, err = s.members.CountActiveByDepartment(ctx, id); err != nil {
		return DepartmentDTO{}, err
	}

	subs, err := s.repo.FindActiveChildren(ctx, id)
	if err != nil {
		return DepartmentDTO{}, err
	}
	for _, c := range subs {
		dto.Children = append(dto.Children, FromEntity(c))
	}
	return dto, nil
}

func (s *service) Create(ctx context.Context, companyID int64, req CreateDepartmentRequest) (DepartmentDTO, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	name := strings.TrimSpace(req.Name)

	exists, err := s.repo.ExistsByCompanyAndName(ctx, companyID, name)
	if err != nil {
		return DepartmentDTO{}, err
	}
	if exists {
		return DepartmentDTO{}, departmenterrors.ErrDepartmentNameTaken
	}

	if req.ParentDepartmentID != nil {
		if _, err := s.repo.FindByIDAndCompany(ctx, companyID, *req.ParentDepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return DepartmentDTO{}, departmenterrors.ErrParentNotFound
			}
			return DepartmentDTO{}, err
		}
	}

	dept := &Department{
		Name:               name,
		Description:        req.Description,
		CompanyID:          companyID,
		HeadUserID:         req.HeadUserID,
		ParentDepartmentID: req.ParentDepartmentID,
		IsActive:           true,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, dept); err != nil {
			return err
		}
		if dept.HeadUserID == nil {
			return nil
		}
		return s.members.WithTx(tx).Create(ctx, &Membership{
			UserID:       *dept.HeadUserID,
			DepartmentID: dept.ID,
			Role:         RoleHead,
			IsActive:     true,
		})
	})
	if err != nil {
		log.Error("failed to create department", zap.Int64("company_id", companyID), zap.Error(err))
		return DepartmentDTO{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, companyID)
	dto := FromEntity(*dept)
	if dept.HeadUserID != nil {
		dto.MemberCount = 1
	}
	return dto, nil
}

func (s *service) Update(ctx context.Context, companyID, id int64, req UpdateDepartmentRequest) (DepartmentDTO, error) {
	d, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return DepartmentDTO{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != d.Name {
			exists, err := s.repo.ExistsByCompanyAndName(ctx, companyID, name)
			if err != nil {
				return DepartmentDTO{}, err
			}
			if exists {
				return DepartmentDTO{}, departmenterrors.ErrDepartmentNameTaken
			}
			d.Name = name
		}
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.HeadUserID != nil {
		d.HeadUserID = req.HeadUserID
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return DepartmentDTO{}, mapRepositoryError(err)
	}
	s.invalidate(ctx, companyID)
	return FromEntity(*d), nil
}

// Delete deactivates the department and its memberships.
func (s *service) Delete(ctx context.Context, companyID, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)

	d, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	subs, err := s.repo.FindActiveChildren(ctx, id)
	if err != nil {
		return err
	}
	if len(subs) > 0 {
		return departmenterrors.ErrHasSubDepartments
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err := s.members.WithTx(tx).DeactivateByDepartment(ctx, id)
		if err != nil {
			return err
		}
		log.Debug("memberships deactivated", zap.Int64("department_id", id), zap.Int64("count", removed))

		d.IsActive = false
		return s.repo.WithTx(tx).Update(ctx, d)
	})
	if err != nil {
		log.Error("failed to delete department", zap.Int64("department_id", id), zap.Error(err))
		return err
	}

	s.invalidate(ctx, companyID)
	return nil
}

func (s *service) Members(ctx context.Context, companyID, id int64) ([]MemberDTO, error) {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return nil, mapRepositoryError(err)
	}
	rows, err := s.members.FindActiveByDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapMembers(rows), nil
}

func (s *service) AddMember(ctx context.Context, companyID, id int64, req AddMemberRequest) (MemberDTO, error) {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return MemberDTO{}, mapRepositoryError(err)
	}

	_, err := s.members.FindActiveByUserAndDepartment(ctx, req.UserID, id)
	if err == nil {
		return MemberDTO{}, departmenterrors.ErrAlreadyMember
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return MemberDTO{}, err
	}

	role := req.Role
	if role == "" {
		role = RoleMember
	}
	m := &Membership{
		UserID:       req.UserID,
		DepartmentID: id,
		Role:         role,
		JobTitle:     req.JobTitle,
		IsActive:     true,
	}
	if err := s.members.Create(ctx, m); err != nil {
		return MemberDTO{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, companyID)
	return MemberFromEntity(*m), nil
}

func (s *service) RemoveMember(ctx context.Context, companyID, id, userID int64) error {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	m, err := s.members.FindActiveByUserAndDepartment(ctx, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrMemberNotFound
	}
	if err != nil {
		return err
	}

	m.IsActive = false
	if err := s.members.Update(ctx, m); err != nil {
		return err
	}
	s.invalidate(ctx, companyID)
	return nil
}

func (s *service) UserDepartments(ctx context.Context, userID int64) ([]MemberDTO, error) {
	rows, err := s.members.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapMembers(rows), nil
}

func (s *service) invalidate(ctx context.Context, companyID int64) {
	if s.rdb == nil {
		return
	}
	key := GetListCacheKey(companyID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate department cache", zap.String("key", key), zap.Error(err))
	}
}

func mapMembers(rows []Membership) []MemberDTO {
	out := make([]MemberDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, MemberFromEntity(m))
	}
	return out
}
