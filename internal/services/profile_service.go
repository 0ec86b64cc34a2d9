package services

import (
	"strings"

	"linkjobs/internal/domain"
	"linkjobs/internal/repos"
)

// ProfileService reads and writes the caller's own record only; the
// principal is the session user, never an id from the request.
type ProfileService struct {
	Users *repos.UserRepo
}

func NewProfileService(users *repos.UserRepo) *ProfileService {
	return &ProfileService{Users: users}
}

type ProfileInput struct {
	Fullname      string `validate:"required,max=60"`
	Phone         string `validate:"omitempty,max=20"`
	Qualification string `validate:"omitempty,max=80"`
}

func (s *ProfileService) Get(principal *domain.User) (*domain.User, error) {
	if principal == nil {
		return nil, domain.ErrForbidden
	}
	return s.Users.ByID(principal.ID)
}

// Update writes the profile fields; imageRef and cvRef are storage keys
// from a completed upload, or empty to keep what is already there.
func (s *ProfileService) Update(principal *domain.User, in ProfileInput, imageRef, cvRef string) (*domain.User, error) {
	if principal == nil {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrValidation
	}
	return s.Users.UpdateProfile(principal.ID, repos.ProfileUpdate{
		Fullname:      strings.TrimSpace(in.Fullname),
		Phone:         strings.TrimSpace(in.Phone),
		Qualification: strings.TrimSpace(in.Qualification),
		ImageRef:      imageRef,
		CVRef:         cvRef,
	})
}
