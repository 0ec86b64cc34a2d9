package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultImageRef is the sentinel avatar key used until a user uploads
// a photo of their own.
const DefaultImageRef = "default-avatar.png"

type User struct {
	ID            string `db:"id"`
	Fullname      string `db:"fullname"`
	Email         string `db:"email"`
	Hash          string `db:"password_hash"`
	Phone         string `db:"phone"`
	Qualification string `db:"qualification"`
	ImageRef      string `db:"image_ref"`
	CVRef         string `db:"cv_ref"`
	Role          string `db:"role"`
	CreatedAt     string `db:"created_at"`
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
