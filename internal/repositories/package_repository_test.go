package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"tour-packages-backend/internal/domain"
)

func packageColumnsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "destination", "price", "duration", "images", "featured", "created_at", "updated_at",
	})
}

func expectPackagesTable(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("information_schema\\.tables").WithArgs("packages").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("packages"))
}

func TestPackageListFilterBuilding(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	expectPackagesTable(mock)
	mock.ExpectQuery("FROM packages WHERE").
		WithArgs("%goa%", "%days%", 5000.0, 20000.0).
		WillReturnRows(packageColumnsRows().AddRow(
			int64(3), "Goa Getaway", "Goa", 12500.0, "5 days",
			`["https://img.example.com/goa-1.jpg"]`, true, now, now,
		))

	minPrice, maxPrice := 5000.0, 20000.0
	repo := PackageRepository{DB: db}
	out, err := repo.List(PackageFilter{
		Destination: "Goa",
		Duration:    "days",
		MinPrice:    &minPrice,
		MaxPrice:    &maxPrice,
	})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 package, got %d", len(out))
	}
	if out[0].Title != "Goa Getaway" || !out[0].Featured {
		t.Fatalf("unexpected package: %+v", out[0])
	}
	if len(out[0].Images) != 1 || out[0].Images[0] != "https://img.example.com/goa-1.jpg" {
		t.Fatalf("images not decoded: %+v", out[0].Images)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPackageFeaturedFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	expectPackagesTable(mock)
	mock.ExpectQuery("featured = ").
		WithArgs(true).
		WillReturnRows(packageColumnsRows().AddRow(
			int64(2), "Kerala Backwaters", "Kerala", 18000.0, "7 days", "[]", true, now, now,
		))

	featured := true
	repo := PackageRepository{DB: db}
	out, err := repo.List(PackageFilter{Featured: &featured})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 1 || !out[0].Featured {
		t.Fatalf("expected one featured package, got %+v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPackageListEmptyWhenTableMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("packages").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	repo := PackageRepository{DB: db}
	out, err := repo.List(PackageFilter{})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d", len(out))
	}
}

func TestPackageStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectPackagesTable(mock)
	mock.ExpectQuery("AVG").
		WithArgs("%goa%").
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg", "min", "max"}).
			AddRow(3, 15000.0, 9000.0, 21000.0))
	mock.ExpectQuery("SELECT DISTINCT").
		WithArgs("%goa%").
		WillReturnRows(sqlmock.NewRows([]string{"duration"}).
			AddRow("5 days").AddRow("7 days"))

	repo := PackageRepository{DB: db}
	stats, err := repo.Stats("Goa")
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if stats.TotalPackages != 3 || stats.AvgPrice != 15000.0 || stats.MinPrice != 9000.0 || stats.MaxPrice != 21000.0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(stats.Durations) != 2 || stats.Durations[0] != "5 days" {
		t.Fatalf("unexpected durations: %+v", stats.Durations)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPackageStatsNoMatchIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectPackagesTable(mock)
	mock.ExpectQuery("AVG").
		WithArgs("%nowhere%").
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg", "min", "max"}).
			AddRow(0, 0.0, 0.0, 0.0))

	repo := PackageRepository{DB: db}
	if _, err := repo.Stats("Nowhere"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found for empty destination, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPackageDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM packages").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := PackageRepository{DB: db}
	if err := repo.Delete(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestPackageListDestinations(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	expectPackagesTable(mock)
	mock.ExpectQuery("GROUP BY destination").
		WillReturnRows(sqlmock.NewRows([]string{"destination", "count"}).
			AddRow("Goa", 2).AddRow("Kerala", 1))
	mock.ExpectQuery("FROM packages WHERE destination").
		WithArgs("Goa").
		WillReturnRows(packageColumnsRows().AddRow(
			int64(1), "Goa Getaway", "Goa", 12500.0, "5 days", "[]", false, now, now,
		))
	mock.ExpectQuery("FROM packages WHERE destination").
		WithArgs("Kerala").
		WillReturnRows(packageColumnsRows().AddRow(
			int64(2), "Kerala Backwaters", "Kerala", 18000.0, "7 days", "[]", true, now, now,
		))

	repo := PackageRepository{DB: db}
	out, err := repo.ListDestinations()
	if err != nil {
		t.Fatalf("list destinations error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(out))
	}
	if out[0].Name != "Goa" || out[0].PackageCount != 2 {
		t.Fatalf("unexpected destination: %+v", out[0])
	}
	if out[0].SamplePackage == nil || out[0].SamplePackage.Title != "Goa Getaway" {
		t.Fatalf("sample package missing: %+v", out[0].SamplePackage)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
