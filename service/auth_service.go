package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Domkr4t/SocialNetwork/entity"
	"github.com/Domkr4t/SocialNetwork/repository"
	"github.com/Domkr4t/SocialNetwork/response"
)

// AuthService handles registration and login/password authentication.
type AuthService struct {
	users repository.Repository[entity.User]
}

func NewAuthService(users repository.Repository[entity.User]) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user. A taken login yields UserAlreadyExists; the
// unique index on users.login backs this check against concurrent
// registrations of the same login.
func (s *AuthService) Register(req entity.RegisterRequest) response.Response[entity.UserView] {
	var count int64
	if err := s.users.GetAll().Where("login = ?", req.Login).Count(&count).Error; err != nil {
		return response.Internal[entity.UserView](err)
	}
	if count > 0 {
		return response.Fail[entity.UserView](response.UserAlreadyExists, "A user with this login already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return response.Internal[entity.UserView](err)
	}

	u := &entity.User{
		Login:      req.Login,
		Password:   string(hash),
		Surname:    req.Surname,
		Name:       req.Name,
		Middlename: req.Middlename,
	}
	if err := s.users.Create(u); err != nil {
		return response.Internal[entity.UserView](err)
	}

	view := entity.UserView{
		ID:         u.ID,
		Surname:    u.Surname,
		Name:       u.Name,
		Middlename: u.Middlename,
	}
	return response.OkData(view, fmt.Sprintf("User %s created.", u.Login))
}

// Authenticate returns the user's profile when login and password both
// match. Unknown login and wrong password yield the same UserNotFound so
// the outcome does not reveal which field was wrong.
func (s *AuthService) Authenticate(req entity.AuthRequest) response.Response[entity.UserView] {
	var u entity.User
	if err := s.users.GetAll().Where("login = ?", req.Login).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Fail[entity.UserView](response.UserNotFound, "Invalid login or password.")
		}
		return response.Internal[entity.UserView](err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return response.Fail[entity.UserView](response.UserNotFound, "Invalid login or password.")
	}

	view := entity.UserView{
		ID:         u.ID,
		Surname:    u.Surname,
		Name:       u.Name,
		Middlename: u.Middlename,
	}
	return response.OkData(view, "")
}
