package domain

type Job struct {
	ID             string `db:"id"`
	Title          string `db:"title"`
	Company        string `db:"company"`
	Location       string `db:"location"`
	EmploymentType string `db:"employment_type"`
	Experience     int    `db:"experience"`
	Description    string `db:"description"`
	PostedBy       string `db:"posted_by"`
	CreatedAt      string `db:"created_at"`
}
