package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/haiminh-dev/ihk-case-api/internal/api/middleware"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/user"
	"github.com/haiminh-dev/ihk-case-api/internal/repository"
	"github.com/haiminh-dev/ihk-case-api/internal/repository/mock"
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

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	orig := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, email, role string, expireDuration time.Duration) (string, error) {
		assert.Equal(t, uint(1), userID)
		assert.Equal(t, "ADMIN", role)
		return "token-123", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = orig })

	mockUser.EXPECT().GetByEmail("admin@demo.com").Return(user.User{
		ID:       1,
		Email:    "admin@demo.com",
		Role:     user.RoleAdmin,
		Password: hashFor(t, "Admin123!"),
	}, nil)

	u, token, err := svc.Login("admin@demo.com", "Admin123!")
	assert.NoError(t, err)
	assert.Equal(t, "token-123", token)
	assert.Equal(t, uint(1), u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByEmail("admin@demo.com").Return(user.User{
		Password: hashFor(t, "Admin123!"),
	}, nil)

	_, _, err := svc.Login("admin@demo.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByEmail("nobody@demo.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("nobody@demo.com", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- CreateUser ---------------------
func TestCreateUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByEmail("staff@demo.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Save(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.RoleStaff, u.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
		u.ID = 2
		return nil
	})

	created, err := svc.CreateUser(user.CreateUserInput{
		Email:    "staff@demo.com",
		Name:     "Staff",
		Password: "secret1",
		Role:     "STAFF",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), created.ID)
}

func TestCreateUser_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByEmail("admin@demo.com").Return(user.User{ID: 1}, nil)

	_, err := svc.CreateUser(user.CreateUserInput{Email: "admin@demo.com", Password: "secret1", Role: "ADMIN"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateUser_LookupFailure(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByEmail("x@demo.com").Return(user.User{}, errors.New("db down"))

	_, err := svc.CreateUser(user.CreateUserInput{Email: "x@demo.com", Password: "secret1", Role: "VIEWER"})
	assert.EqualError(t, err, "db down")
}
