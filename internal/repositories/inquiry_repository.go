package repositories

import (
	"database/sql"
	"strings"

	intconfig "tour-packages-backend/internal/config"
	intdb "tour-packages-backend/internal/db"
	"tour-packages-backend/internal/domain"
	"tour-packages-backend/internal/domain/models"
)

type InquiryRepository struct {
	DB *sql.DB
}

func (r InquiryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type InquiryFilter struct {
	Status    string
	PackageID int64
}

const inquirySelect = `
	SELECT i.id, i.name, i.email, COALESCE(i.phone,''), i.package_id, i.message, i.status,
	       i.travelers, COALESCE(i.preferred_date,''), i.created_at, i.updated_at,
	       COALESCE(p.title,''), COALESCE(p.destination,'')
	FROM inquiries i
	LEFT JOIN packages p ON p.id = i.package_id`

// Insert persists a new inquiry and returns the store-assigned id.
// Timestamps are assigned by the store, the source of truth for ordering.
func (r InquiryRepository) Insert(inq models.Inquiry) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not available"}
	}

	res, err := db.Exec(`
		INSERT INTO inquiries (name, email, phone, package_id, message, status, travelers, preferred_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		strings.TrimSpace(inq.Name),
		strings.ToLower(strings.TrimSpace(inq.Email)),
		intdb.NullIfEmpty(strings.TrimSpace(inq.Phone)),
		inq.PackageID,
		strings.TrimSpace(inq.Message),
		inq.Status,
		inq.Travelers,
		intdb.NullIfEmpty(strings.TrimSpace(inq.PreferredDate)),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r InquiryRepository) GetByID(id int64) (models.Inquiry, error) {
	db := r.db()
	if db == nil || id <= 0 {
		return models.Inquiry{}, domain.NotFoundError{Resource: "inquiry"}
	}

	row := db.QueryRow(inquirySelect+` WHERE i.id = ? LIMIT 1`, id)
	inq, err := scanInquiry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Inquiry{}, domain.NotFoundError{Resource: "inquiry", Err: err}
		}
		return models.Inquiry{}, err
	}
	return inq, nil
}

// List returns inquiries newest-first, optionally narrowed by status and/or
// package.
func (r InquiryRepository) List(f InquiryFilter) ([]models.Inquiry, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "inquiries") {
		return []models.Inquiry{}, nil
	}

	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, "i.status = ?")
		args = append(args, s)
	}
	if f.PackageID > 0 {
		where = append(where, "i.package_id = ?")
		args = append(args, f.PackageID)
	}

	rows, err := db.Query(
		inquirySelect+` WHERE `+strings.Join(where, " AND ")+` ORDER BY i.created_at DESC, i.id DESC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return out, err
		}
		out = append(out, inq)
	}
	return out, rows.Err()
}

// UpdateStatus sets the status of one inquiry. The caller validates the
// value against the allow-list; this only checks existence.
func (r InquiryRepository) UpdateStatus(id int64, status string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	var existing int64
	if err := db.QueryRow(`SELECT id FROM inquiries WHERE id = ? LIMIT 1`, id).Scan(&existing); err != nil {
		if err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "inquiry", Err: err}
		}
		return err
	}

	_, err := db.Exec(`UPDATE inquiries SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	return err
}

func (r InquiryRepository) Delete(id int64) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	res, err := db.Exec(`DELETE FROM inquiries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "inquiry"}
	}
	return nil
}

type inquiryScanner interface {
	Scan(dest ...any) error
}

func scanInquiry(row inquiryScanner) (models.Inquiry, error) {
	var inq models.Inquiry
	if err := row.Scan(
		&inq.ID,
		&inq.Name,
		&inq.Email,
		&inq.Phone,
		&inq.PackageID,
		&inq.Message,
		&inq.Status,
		&inq.Travelers,
		&inq.PreferredDate,
		&inq.CreatedAt,
		&inq.UpdatedAt,
		&inq.PackageTitle,
		&inq.PackageDestination,
	); err != nil {
		return inq, err
	}
	return inq, nil
}
