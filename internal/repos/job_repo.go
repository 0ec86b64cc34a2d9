package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"linkjobs/internal/domain"
)

type JobRepo struct{ db *sqlx.DB }

func NewJobRepo(db *sqlx.DB) *JobRepo { return &JobRepo{db: db} }

const jobCols = `id,title,company,location,employment_type,experience,description,posted_by,created_at`

func (r *JobRepo) Create(j *domain.Job) error {
	_, err := r.db.Exec(`INSERT INTO jobs(id,title,company,location,employment_type,experience,description,posted_by)
		VALUES(?,?,?,?,?,?,?,?)`,
		j.ID, j.Title, j.Company, j.Location, j.EmploymentType, j.Experience, j.Description, j.PostedBy)
	return err
}

func (r *JobRepo) ByID(id string) (*domain.Job, error) {
	var j domain.Job
	err := r.db.Get(&j, `SELECT `+jobCols+` FROM jobs WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// ListNewest returns all jobs most-recently-created first; equal
// timestamps tie-break on id, descending, so the order is stable.
func (r *JobRepo) ListNewest() ([]domain.Job, error) {
	var out []domain.Job
	err := r.db.Select(&out, `
	  SELECT `+jobCols+`
	  FROM jobs
	  ORDER BY created_at DESC, id DESC
	`)
	return out, err
}
