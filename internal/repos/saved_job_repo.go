package repos

import (
	"github.com/jmoiron/sqlx"

	"linkjobs/internal/domain"
)

type SavedJobRepo struct{ db *sqlx.DB }

func NewSavedJobRepo(db *sqlx.DB) *SavedJobRepo { return &SavedJobRepo{db: db} }

// Add is idempotent: the (user, job) primary key absorbs duplicates.
func (r *SavedJobRepo) Add(userID, jobID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO saved_jobs(user_id, job_id, created_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(user_id, job_id) DO NOTHING
	`, userID, jobID)
	return err
}

// Remove is a no-op when the pair is absent.
func (r *SavedJobRepo) Remove(userID, jobID string) error {
	_, err := r.db.Exec(`DELETE FROM saved_jobs WHERE user_id=? AND job_id=?`, userID, jobID)
	return err
}

func (r *SavedJobRepo) List(userID string) ([]domain.Job, error) {
	var out []domain.Job
	err := r.db.Select(&out, `
	  SELECT j.id, j.title, j.company, j.location, j.employment_type,
	         j.experience, j.description, j.posted_by, j.created_at
	  FROM saved_jobs sj
	  JOIN jobs j ON j.id = sj.job_id
	  WHERE sj.user_id = ?
	  ORDER BY j.created_at DESC, j.id DESC
	`, userID)
	return out, err
}
