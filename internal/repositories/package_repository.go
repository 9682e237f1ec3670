package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	intconfig "tour-packages-backend/internal/config"
	intdb "tour-packages-backend/internal/db"
	"tour-packages-backend/internal/domain"
	"tour-packages-backend/internal/domain/models"
)

type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// PackageFilter narrows listings. Destination and Duration are
// case-insensitive substring matches; price bounds are inclusive.
type PackageFilter struct {
	Destination string
	Duration    string
	MinPrice    *float64
	MaxPrice    *float64
	Featured    *bool
}

const packageColumns = `id, title, destination, price, COALESCE(duration,''), COALESCE(images,'[]'), COALESCE(featured,0), created_at, updated_at`

// List returns packages newest-first with optional filters applied.
func (r PackageRepository) List(f PackageFilter) ([]models.TourPackage, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "packages") {
		return []models.TourPackage{}, nil
	}

	where := []string{"1=1"}
	args := []any{}

	if d := strings.TrimSpace(f.Destination); d != "" {
		where = append(where, "LOWER(destination) LIKE ?")
		args = append(args, "%"+strings.ToLower(d)+"%")
	}
	if d := strings.TrimSpace(f.Duration); d != "" {
		where = append(where, "LOWER(duration) LIKE ?")
		args = append(args, "%"+strings.ToLower(d)+"%")
	}
	if f.MinPrice != nil {
		where = append(where, "price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where = append(where, "price <= ?")
		args = append(args, *f.MaxPrice)
	}
	if f.Featured != nil {
		where = append(where, "featured = ?")
		args = append(args, *f.Featured)
	}

	rows, err := db.Query(
		`SELECT `+packageColumns+` FROM packages WHERE `+strings.Join(where, " AND ")+` ORDER BY created_at DESC, id DESC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TourPackage{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PackageRepository) GetByID(id int64) (models.TourPackage, error) {
	db := r.db()
	if db == nil || id <= 0 {
		return models.TourPackage{}, domain.NotFoundError{Resource: "package"}
	}

	row := db.QueryRow(`SELECT `+packageColumns+` FROM packages WHERE id = ? LIMIT 1`, id)
	p, err := scanPackage(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.TourPackage{}, domain.NotFoundError{Resource: "package", Err: err}
		}
		return models.TourPackage{}, err
	}
	return p, nil
}

func (r PackageRepository) Insert(p models.TourPackage) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not available"}
	}

	images, err := json.Marshal(p.Images)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
		INSERT INTO packages (title, destination, price, duration, images, featured, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		strings.TrimSpace(p.Title),
		strings.TrimSpace(p.Destination),
		p.Price,
		intdb.NullIfEmpty(strings.TrimSpace(p.Duration)),
		string(images),
		p.Featured,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PackageRepository) Update(id int64, p models.TourPackage) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	if _, err := r.GetByID(id); err != nil {
		return err
	}

	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		UPDATE packages
		SET title = ?, destination = ?, price = ?, duration = ?, images = ?, featured = ?, updated_at = NOW()
		WHERE id = ?`,
		strings.TrimSpace(p.Title),
		strings.TrimSpace(p.Destination),
		p.Price,
		intdb.NullIfEmpty(strings.TrimSpace(p.Duration)),
		string(images),
		p.Featured,
		id,
	)
	return err
}

// Delete removes a package. Existing inquiries keep their package reference
// and are listed with empty package fields afterwards; no cascade.
func (r PackageRepository) Delete(id int64) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	res, err := db.Exec(`DELETE FROM packages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}

// ListDestinations groups packages by exact destination value, with a count
// and one sample package per group (lowest id, the store's natural order).
func (r PackageRepository) ListDestinations() ([]models.DestinationInfo, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "packages") {
		return []models.DestinationInfo{}, nil
	}

	rows, err := db.Query(`SELECT destination, COUNT(*) FROM packages GROUP BY destination ORDER BY destination ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.DestinationInfo{}
	for rows.Next() {
		var info models.DestinationInfo
		if err := rows.Scan(&info.Name, &info.PackageCount); err != nil {
			return out, err
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}

	for i := range out {
		row := db.QueryRow(`SELECT `+packageColumns+` FROM packages WHERE destination = ? ORDER BY id ASC LIMIT 1`, out[i].Name)
		p, err := scanPackage(row)
		if err != nil {
			if err == sql.ErrNoRows {
				continue
			}
			return out, err
		}
		out[i].SamplePackage = &p
	}
	return out, nil
}

// Stats aggregates packages whose destination contains the given value
// (case-insensitive). A destination with no matches is a not-found, never a
// zero-filled result.
func (r PackageRepository) Stats(destination string) (models.DestinationStats, error) {
	var stats models.DestinationStats

	db := r.db()
	if db == nil || !intdb.HasTable(db, "packages") {
		return stats, domain.NotFoundError{Resource: "destination"}
	}

	like := "%" + strings.ToLower(strings.TrimSpace(destination)) + "%"
	err := db.QueryRow(`
		SELECT COUNT(*), COALESCE(AVG(price),0), COALESCE(MIN(price),0), COALESCE(MAX(price),0)
		FROM packages
		WHERE LOWER(destination) LIKE ?`, like,
	).Scan(&stats.TotalPackages, &stats.AvgPrice, &stats.MinPrice, &stats.MaxPrice)
	if err != nil {
		return stats, err
	}
	if stats.TotalPackages == 0 {
		return models.DestinationStats{}, domain.NotFoundError{Resource: "destination"}
	}

	rows, err := db.Query(`
		SELECT DISTINCT COALESCE(duration,'')
		FROM packages
		WHERE LOWER(destination) LIKE ?
		ORDER BY 1 ASC`, like)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	stats.Durations = []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return stats, err
		}
		if strings.TrimSpace(d) != "" {
			stats.Durations = append(stats.Durations, d)
		}
	}
	return stats, rows.Err()
}

type packageScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row packageScanner) (models.TourPackage, error) {
	var (
		p      models.TourPackage
		images string
	)
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Destination,
		&p.Price,
		&p.Duration,
		&images,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return p, err
	}

	p.Images = []string{}
	if strings.TrimSpace(images) != "" {
		if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
			// tolerate legacy rows holding a single bare URL
			p.Images = []string{images}
		}
	}
	return p, nil
}
