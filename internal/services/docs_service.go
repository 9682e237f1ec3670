package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"tour-packages-backend/internal/domain/models"
	"tour-packages-backend/internal/repositories"
	"tour-packages-backend/internal/utils"
)

// DocsService renders downloadable package brochures.
type DocsService struct {
	PackageRepo repositories.PackageRepository
	RequestID   string
	Loader      func(int64) (models.TourPackage, error)
}

func (s DocsService) GenerateBrochure(packageID int64) ([]byte, string, error) {
	pkg, err := s.loadPackage(packageID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_brochure", fmt.Sprintf("package_id=%d", packageID))
	return buildBrochurePDF(pkg)
}

func (s DocsService) loadPackage(id int64) (models.TourPackage, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.PackageRepo.GetByID(id)
}

func buildBrochurePDF(p models.TourPackage) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Tour Package Brochure", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, safe(p.Title, "Tour Package"))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Destination : %s", safe(p.Destination, "-")),
		fmt.Sprintf("Duration    : %s", safe(p.Duration, "-")),
		fmt.Sprintf("Price       : %.2f", p.Price),
		fmt.Sprintf("Package ID  : #%d", p.ID),
	}
	if p.Featured {
		lines = append(lines, "Featured    : yes")
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if len(p.Images) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Gallery: "+strings.Join(p.Images, ", "), "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Send an inquiry through the website to book this package. Our team replies within 24 hours.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("brochure-%d-%s.pdf", p.ID, safeFilenamePart(p.Destination))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}

func safeFilenamePart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ' || r == '-' || r == '_':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "package"
	}
	return string(out)
}
