package services

import (
	"context"
	"fmt"
	"strings"

	"tour-packages-backend/internal/cache"
	"tour-packages-backend/internal/domain"
	"tour-packages-backend/internal/domain/models"
	"tour-packages-backend/internal/repositories"
	"tour-packages-backend/internal/utils"
)

// PackageService covers the admin-facing package lifecycle. Writes
// invalidate the destination-stats cache since aggregates change.
type PackageService struct {
	PackageRepo repositories.PackageRepository
	StatsCache  *cache.StatsCache
	RequestID   string
}

func (s PackageService) Create(ctx context.Context, p models.TourPackage) (models.TourPackage, error) {
	if err := validatePackage(&p); err != nil {
		return models.TourPackage{}, err
	}

	id, err := s.PackageRepo.Insert(p)
	if err != nil {
		return models.TourPackage{}, err
	}

	utils.LogEvent(s.RequestID, "package", "created", fmt.Sprintf("package_id=%d", id))
	s.StatsCache.Invalidate(ctx)
	return s.PackageRepo.GetByID(id)
}

func (s PackageService) Update(ctx context.Context, id int64, p models.TourPackage) (models.TourPackage, error) {
	if err := validatePackage(&p); err != nil {
		return models.TourPackage{}, err
	}

	if err := s.PackageRepo.Update(id, p); err != nil {
		return models.TourPackage{}, err
	}

	utils.LogEvent(s.RequestID, "package", "updated", fmt.Sprintf("package_id=%d", id))
	s.StatsCache.Invalidate(ctx)
	return s.PackageRepo.GetByID(id)
}

func (s PackageService) Delete(ctx context.Context, id int64) error {
	if err := s.PackageRepo.Delete(id); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "package", "deleted", fmt.Sprintf("package_id=%d", id))
	s.StatsCache.Invalidate(ctx)
	return nil
}

func validatePackage(p *models.TourPackage) error {
	p.Title = utils.NormalizeSpace(p.Title)
	p.Destination = utils.NormalizeSpace(p.Destination)
	p.Duration = strings.TrimSpace(p.Duration)

	if p.Title == "" {
		return domain.ValidationError{Field: "title", Msg: "is required"}
	}
	if p.Destination == "" {
		return domain.ValidationError{Field: "destination", Msg: "is required"}
	}
	if p.Price < 0 {
		return domain.ValidationError{Field: "price", Msg: "must not be negative"}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return nil
}
