package models

// AdminUser is an operator account for the admin dashboard.
type AdminUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
