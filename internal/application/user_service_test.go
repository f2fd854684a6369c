package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/taskscout/taskscout/internal/api/middleware"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/internal/repository/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

func ptrString(s string) *string { return &s }

// --------------------- RegisterUser ---------------------

func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 1
		return nil
	})

	input := user.RegisterDTO{
		Username: "alice",
		Password: "supersecret",
		Email:    ptrString("alice@test.com"),
		Role:     user.RoleResidential,
	}
	u, err := svc.RegisterUser(input)
	assert.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "supersecret", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("supersecret")))
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("admin").Return(user.User{ID: 1}, nil)

	input := user.RegisterDTO{Username: "admin", Password: "supersecret", Role: user.RoleOrgAdmin}
	_, err := svc.RegisterUser(input)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterUser_UnknownRole(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	input := user.RegisterDTO{Username: "bob", Password: "supersecret", Role: user.Role("superuser")}
	_, err := svc.RegisterUser(input)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

// --------------------- LoginUser ---------------------

func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	usr := user.User{ID: 1, Username: "bob", Password: string(hashed), Role: user.RoleTechnician}

	mockUser.EXPECT().GetByUsername("bob").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u *user.User, expireDuration time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.LoginUser("bob", "supersecret")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetByUsername("bob").Return(user.User{ID: 1, Username: "bob", Password: string(hashed)}, nil)

	_, token, err := svc.LoginUser("bob", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLoginUser_UserNotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser("ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- UpdateUser ---------------------

func TestUpdateUser_RehashesPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetByID(uint(1)).Return(user.User{ID: 1, Password: string(hashed)}, nil)
	mockUser.EXPECT().Update(gomock.Any()).Return(nil)

	u, err := svc.UpdateUser(1, user.UpdateUserDTO{Password: ptrString("newpass99")})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpass99")))
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(99)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateUser(99, user.UpdateUserDTO{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// --------------------- Technicians ---------------------

func TestListTechnicians_FiltersByRole(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	staff := []user.User{
		{ID: 4, Username: "dispatch", Role: user.RoleMaintenanceAdmin, VendorID: uintPtr(3)},
		{ID: 7, Username: "tech1", Role: user.RoleTechnician, VendorID: uintPtr(3)},
		{ID: 8, Username: "tech2", Role: user.RoleTechnician, VendorID: uintPtr(3)},
	}
	mockUser.EXPECT().ListByVendor(uint(3)).Return(staff, nil)

	techs, err := svc.ListTechnicians(3)
	assert.NoError(t, err)
	assert.Len(t, techs, 2)
	for _, u := range techs {
		assert.Equal(t, user.RoleTechnician, u.Role)
	}
}

// --------------------- RemoveUser ---------------------

func TestRemoveUser_MissingIsNoOp(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(99)).Return(user.User{}, gorm.ErrRecordNotFound)

	assert.NoError(t, svc.RemoveUser(99))
}
