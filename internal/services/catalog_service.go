package services

import (
	"github.com/google/uuid"

	"linkjobs/internal/domain"
	"linkjobs/internal/repos"
)

// CanPostJob is the single authorization rule of the catalog: only
// admins create listings.
func CanPostJob(u *domain.User) bool { return u.IsAdmin() }

type CatalogService struct {
	Jobs  *repos.JobRepo
	Saved *repos.SavedJobRepo
}

func NewCatalogService(jobs *repos.JobRepo, saved *repos.SavedJobRepo) *CatalogService {
	return &CatalogService{Jobs: jobs, Saved: saved}
}

type PostJobInput struct {
	Title          string `validate:"required,max=80"`
	Company        string `validate:"required,max=80"`
	Location       string `validate:"required,max=80"`
	EmploymentType string `validate:"required,max=40"`
	Experience     int    `validate:"gte=0"`
	Description    string `validate:"max=4000"`
}

func (s *CatalogService) ListJobsForHome() ([]domain.Job, error) {
	return s.Jobs.ListNewest()
}

func (s *CatalogService) GetJobDetail(id string) (*domain.Job, error) {
	return s.Jobs.ByID(id)
}

func (s *CatalogService) PostJob(principal *domain.User, in PostJobInput) (*domain.Job, error) {
	if !CanPostJob(principal) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrValidation
	}
	j := &domain.Job{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Company:        in.Company,
		Location:       in.Location,
		EmploymentType: in.EmploymentType,
		Experience:     in.Experience,
		Description:    in.Description,
		PostedBy:       principal.ID,
	}
	if err := s.Jobs.Create(j); err != nil {
		return nil, err
	}
	return j, nil
}

// SaveJob adds jobID to the caller's saved set. Saving twice leaves one
// association; an unknown job is ErrNotFound.
func (s *CatalogService) SaveJob(principal *domain.User, jobID string) error {
	if principal == nil {
		return domain.ErrForbidden
	}
	if _, err := s.Jobs.ByID(jobID); err != nil {
		return err
	}
	return s.Saved.Add(principal.ID, jobID)
}

// UnsaveJob removes jobID from the caller's saved set; removing a job
// that was never saved is not an error.
func (s *CatalogService) UnsaveJob(principal *domain.User, jobID string) error {
	if principal == nil {
		return domain.ErrForbidden
	}
	if _, err := s.Jobs.ByID(jobID); err != nil {
		return err
	}
	return s.Saved.Remove(principal.ID, jobID)
}

func (s *CatalogService) ListSaved(principal *domain.User) ([]domain.Job, error) {
	if principal == nil {
		return nil, domain.ErrForbidden
	}
	return s.Saved.List(principal.ID)
}
