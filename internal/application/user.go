package application

import (
	"errors"
	"time"

	"github.com/taskscout/taskscout/internal/api/middleware"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrUnknownRole         = errors.New("unknown role")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) RegisterUser(input user.RegisterDTO) (*user.User, error) {
	if !input.Role.Valid() {
		return nil, ErrUnknownRole
	}
	_, err := s.Repos.User.GetByUsername(input.Username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err == nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashFailure
	}

	usr := user.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     input.Role,
		OrgID:    input.OrgID,
		VendorID: input.VendorID,
	}
	if err := s.Repos.User.Create(&usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(&usr, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.List()
}

func (s *UserService) ListTechnicians(vendorID uint) ([]user.User, error) {
	users, err := s.Repos.User.ListByVendor(vendorID)
	if err != nil {
		return nil, err
	}
	techs := users[:0]
	for _, u := range users {
		if u.Role == user.RoleTechnician {
			techs = append(techs, u)
		}
	}
	return techs, nil
}

func (s *UserService) UpdateUser(id uint, input user.UpdateUserDTO) (user.User, error) {
	usr, err := s.Repos.User.GetByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}

	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		usr.Password = string(hashed)
	}
	if input.Email != nil {
		usr.Email = input.Email
	}
	if input.FullName != nil {
		usr.FullName = input.FullName
	}

	if err := s.Repos.User.Update(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) RemoveUser(id uint) error {
	if _, err := s.Repos.User.GetByID(id); err != nil {
		return nil
	}
	return s.Repos.User.Delete(id)
}
