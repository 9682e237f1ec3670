package services

import (
	"strings"
	"testing"

	"tour-packages-backend/internal/domain"
	"tour-packages-backend/internal/domain/models"
)

func TestDocsServiceGenerateBrochure(t *testing.T) {
	loader := func(id int64) (models.TourPackage, error) {
		return models.TourPackage{
			ID:          id,
			Title:       "Kerala Backwaters",
			Destination: "Kerala",
			Price:       18000,
			Duration:    "7 days",
			Images:      []string{"https://img.example.com/kerala-1.jpg"},
			Featured:    true,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateBrochure(2)
	if err != nil {
		t.Fatalf("GenerateBrochure returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateBrochure returned empty data")
	}
	if !strings.HasPrefix(filename, "brochure-2-") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceUnknownPackage(t *testing.T) {
	svc := DocsService{Loader: func(int64) (models.TourPackage, error) {
		return models.TourPackage{}, domain.NotFoundError{Resource: "package"}
	}}

	if _, _, err := svc.GenerateBrochure(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
