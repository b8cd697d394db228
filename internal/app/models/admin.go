package models

// Admin defines the administrator model based on the 'admin' table.
// Admins are seeded at bootstrap and cannot self-register.
type Admin struct {
	AdminID      int64  `json:"admin_id" db:"admin_id"`
	PasswordHash string `json:"-" db:"password"`
	Email        string `json:"email" db:"email"`
	Name         string `json:"name" db:"name"`
	Surname      string `json:"surname" db:"surname"`
}
