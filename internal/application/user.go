package application

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/haiminh-dev/ihk-case-api/internal/api/middleware"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/user"
	"github.com/haiminh-dev/ihk-case-api/internal/repository"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("email already taken")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Login(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetByEmail(email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Email, string(usr.Role), 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

func (s *UserService) CreateUser(input user.CreateUserInput) (user.User, error) {
	_, err := s.Repos.User.GetByEmail(input.Email)
	if err == nil {
		return user.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Email:    input.Email,
		Name:     input.Name,
		Role:     user.Role(input.Role),
		Password: string(hashed),
	}
	if err := s.Repos.User.Save(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.List()
}
