package repos

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"linkjobs/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id,fullname,email,password_hash,phone,qualification,image_ref,cv_ref,role,created_at`

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`INSERT INTO users(id,fullname,email,password_hash,phone,qualification,image_ref,cv_ref,role)
		VALUES(?,?,?,?,?,?,?,?,?)`,
		u.ID, u.Fullname, u.Email, u.Hash, u.Phone, u.Qualification, u.ImageRef, u.CVRef, u.Role)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrConflict
	}
	return err
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ProfileUpdate carries the writable profile fields. Empty ImageRef or
// CVRef keeps the value already on the row.
type ProfileUpdate struct {
	Fullname      string
	Phone         string
	Qualification string
	ImageRef      string
	CVRef         string
}

func (r *UserRepo) UpdateProfile(id string, p ProfileUpdate) (*domain.User, error) {
	res, err := r.DB.Exec(`UPDATE users SET
	    fullname=?, phone=?, qualification=?,
	    image_ref=CASE WHEN ?='' THEN image_ref ELSE ? END,
	    cv_ref=CASE WHEN ?='' THEN cv_ref ELSE ? END
	  WHERE id=?`,
		p.Fullname, p.Phone, p.Qualification,
		p.ImageRef, p.ImageRef, p.CVRef, p.CVRef, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound
	}
	return r.ByID(id)
}

func (r *UserRepo) BindSession(sid, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id,u.fullname,u.email,u.password_hash,u.phone,u.qualification,u.image_ref,u.cv_ref,u.role,u.created_at
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
