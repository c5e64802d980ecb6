package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/department"
	departmenterrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/department/errors"
	departmentMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/department/mock"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	members   *departmentMock.MockMembershipRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)
	rdb, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		sqlMock:   sqlMock,
		repo:      departmentMock.NewMockRepository(ctrl),
		members:   departmentMock.NewMockMembershipRepository(ctrl),
		redismock: redisMock,
	}
	deps.service = department.NewService(db, deps.repo, deps.members, rdb)

	t.Cleanup(func() {
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
	return deps
}

func int64Ptr(v int64) *int64 { return &v }

func TestDepartmentService_List(t *testing.T) {
	ctx := context.Background()
	cacheKey := department.GetListCacheKey(3)

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		body, _ := json.Marshal([]department.DepartmentDTO{{ID: 1, Name: "HR"}, {ID: 2, Name: "IT"}})
		deps.redismock.ExpectGet(cacheKey).SetVal(string(body))

		res, err := deps.service.List(ctx, 3)

		require.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "HR", res[0].Name)
	})

	t.Run("cache miss loads counts and caches", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).
			Return([]department.Department{{ID: 1, Name: "Finance", CompanyID: 3, IsActive: true}, {ID: 2, Name: "Ops", CompanyID: 3, IsActive: true}}, nil)
		deps.members.EXPECT().CountActiveByDepartments(ctx, []int64{1, 2}).
			Return([]department.MemberCount{{DepartmentID: 1, Total: 4}}, nil)

		expected := []department.DepartmentDTO{
			{ID: 1, Name: "Finance", CompanyID: 3, IsActive: true, MemberCount: 4},
			{ID: 2, Name: "Ops", CompanyID: 3, IsActive: true},
		}
		body, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(cacheKey, string(body), 30*time.Minute).SetVal("OK")

		res, err := deps.service.List(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, expected, res)
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(nil, errors.New("db connection error"))

		res, err := deps.service.List(ctx, 3)

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestDepartmentService_Tree(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	body, _ := json.Marshal([]department.DepartmentDTO{
		{ID: 1, Name: "Engineering"},
		{ID: 2, Name: "Platform", ParentDepartmentID: int64Ptr(1)},
		{ID: 3, Name: "Infra", ParentDepartmentID: int64Ptr(2)},
		{ID: 4, Name: "Orphan", ParentDepartmentID: int64Ptr(99)},
	})
	deps.redismock.ExpectGet(department.GetListCacheKey(3)).SetVal(string(body))

	res, err := deps.service.Tree(ctx, 3)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Engineering", res[0].Name)
	require.Len(t, res[0].Children, 1)
	require.Len(t, res[0].Children[0].Children, 1)
	assert.Equal(t, "Infra", res[0].Children[0].Children[0].Name)
	assert.Equal(t, "Orphan", res[1].Name)
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("head user joins as HEAD", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsByCompanyAndName(ctx, int64(3), "HR").Return(false, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, d *department.Department) error {
			assert.Equal(t, int64(3), d.CompanyID)
			d.ID = 10
			return nil
		})
		deps.members.EXPECT().WithTx(gomock.Any()).Return(deps.members)
		deps.members.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *department.Membership) error {
			assert.Equal(t, int64(10), m.DepartmentID)
			assert.Equal(t, int64(7), m.UserID)
			assert.Equal(t, department.RoleHead, m.Role)
			return nil
		})
		deps.sqlMock.ExpectCommit()
		deps.redismock.ExpectDel(department.GetListCacheKey(3)).SetVal(1)

		res, err := deps.service.Create(ctx, 3, department.CreateDepartmentRequest{Name: " HR ", HeadUserID: int64Ptr(7)})

		require.NoError(t, err)
		assert.Equal(t, int64(10), res.ID)
		assert.Equal(t, int64(1), res.MemberCount)
	})

	t.Run("name taken", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsByCompanyAndName(ctx, int64(3), "HR").Return(true, nil)

		_, err := deps.service.Create(ctx, 3, department.CreateDepartmentRequest{Name: "HR"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameTaken)
	})

	t.Run("parent from another company", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsByCompanyAndName(ctx, int64(3), "Platform").Return(false, nil)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, int64(3), int64(50)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, 3, department.CreateDepartmentRequest{Name: "Platform", ParentDepartmentID: int64Ptr(50)})

		assert.ErrorIs(t, err, departmenterrors.ErrParentNotFound)
	})

	t.Run("repo error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsByCompanyAndName(ctx, int64(3), "HR").Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error"))
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, 3, department.CreateDepartmentRequest{Name: "HR"})

		assert.Error(t, err)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates department and members", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, int64(3), int64(10)).
			Return(&department.Department{ID: 10, CompanyID: 3, IsActive: true}, nil)
		deps.repo.EXPECT().FindActiveChildren(ctx, int64(10)).Return(nil, nil)

		deps.sqlMock.ExpectBegin()
		deps.members.EXPECT().WithTx(gomock.Any()).Return(deps.members)
		deps.members.EXPECT().DeactivateByDepartment(ctx, int64(10)).Return(int64(5), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, d *department.Department) error {
			assert.False(t, d.IsActive)
			return nil
		})
		deps.sqlMock.ExpectCommit()
		deps.redismock.ExpectDel(department.GetListCacheKey(3)).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, 3, 10))
	})

	t.Run("has sub-departments", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, int64(3), int64(10)).Return(&department.Department{ID: 10}, nil)
		deps.repo.EXPECT().FindActiveChildren(ctx, int64(10)).Return([]department.Department{{ID: 11}}, nil)

		assert.ErrorIs(t, deps.service.Delete(ctx, 3, 10), departmenterrors.ErrHasSubDepartments)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, int64(3), int64(10)).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, 3, 10), departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_AddMember(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to MEMBER", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, int64(3), int64(10)).Return(&department.Department{ID: 10}, nil)
		deps.members.EXPECT().FindActiveByUserAndDepartment(ctx, int64(8), int64(10)).Return(nil, gorm.ErrRecordNotFound)
		deps.members.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(department.GetListCacheKey(3)).SetVal(1)

		res, err := deps.service.AddMember(ctx, 3, 10, department.AddMemberRequest{UserID: 8, JobTitle: "Analyst"})

		require.NoError(t, err)
		assert.Equal(t, department.RoleMember, res.Role)
		assert.Equal(t, "Analyst", res.JobTitle)
	})

	t.Run("already a member", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, int64(3), int64(10)).Return(&department.Department{ID: 10}, nil)
		deps.members.EXPECT().FindActiveByUserAndDepartment(ctx, int64(8), int64(10)).Return(&department.Membership{ID: 1}, nil)

		_, err := deps.service.AddMember(ctx, 3, 10, department.AddMemberRequest{UserID: 8})

		assert.ErrorIs(t, err, departmenterrors.ErrAlreadyMember)
	})
}

func TestDepartmentService_RemoveMember(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	deps.repo.EXPECT().FindByIDAndCompany(ctx, int64(3), int64(10)).Return(&department.Department{ID: 10}, nil)
	deps.members.EXPECT().FindActiveByUserAndDepartment(ctx, int64(8), int64(10)).Return(nil, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, deps.service.RemoveMember(ctx, 3, 10, 8), departmenterrors.ErrMemberNotFound)
}
