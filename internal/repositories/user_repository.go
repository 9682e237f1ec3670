package repositories

import (
	"database/sql"

	intconfig "tour-packages-backend/internal/config"
	"tour-packages-backend/internal/domain"
	"tour-packages-backend/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail returns the account plus its bcrypt hash for login checks.
func (r UserRepository) GetByEmail(email string) (models.AdminUser, string, error) {
	db := r.db()
	if db == nil {
		return models.AdminUser{}, "", domain.InternalError{Msg: "database not available"}
	}

	var (
		user models.AdminUser
		hash string
	)
	err := db.QueryRow(`
		SELECT id, name, email, password_hash, role
		FROM users
		WHERE email = ?
		LIMIT 1`, email,
	).Scan(&user.ID, &user.Name, &user.Email, &hash, &user.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.AdminUser{}, "", domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.AdminUser{}, "", err
	}
	return user, hash, nil
}
