package services

import (
	"strings"

	"github.com/google/uuid"

	"linkjobs/internal/domain"
	"linkjobs/internal/repos"
)

type AuthService struct {
	Users  *repos.UserRepo
	Hasher PasswordHasher
	// AdminCode grants the admin role when a matching code is supplied
	// at signup. Empty disables admin signup.
	AdminCode string
}

type SignupInput struct {
	Fullname  string `validate:"required,max=60"`
	Email     string `validate:"required,email,max=60"`
	Password  string `validate:"required,min=8,max=72"`
	AdminCode string `validate:"-"`
}

// Signup creates the account and binds it to sid (auto-login).
// Role is decided once, here; nothing ever changes it afterwards.
func (s *AuthService) Signup(sid string, in SignupInput) (*domain.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrValidation
	}

	role := domain.RoleUser
	if in.AdminCode != "" && s.AdminCode != "" && in.AdminCode == s.AdminCode {
		role = domain.RoleAdmin
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:       uuid.NewString(),
		Fullname: strings.TrimSpace(in.Fullname),
		Email:    strings.TrimSpace(in.Email),
		Hash:     hash,
		ImageRef: domain.DefaultImageRef,
		Role:     role,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, domain.ErrBadCredentials
	}
	if !s.Hasher.Verify(password, u.Hash) {
		return nil, domain.ErrBadCredentials
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
