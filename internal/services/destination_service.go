package services

import (
	"context"
	"fmt"

	"tour-packages-backend/internal/cache"
	"tour-packages-backend/internal/domain/models"
	"tour-packages-backend/internal/repositories"
	"tour-packages-backend/internal/utils"
)

// DestinationService is the read-only catalog facade: destination groupings,
// filtered package listings, aggregate stats. Stats go through the optional
// Redis cache when one is configured.
type DestinationService struct {
	PackageRepo repositories.PackageRepository
	StatsCache  *cache.StatsCache
	RequestID   string

	LoadStats func(string) (models.DestinationStats, error)
}

func (s DestinationService) ListDestinations() ([]models.DestinationInfo, error) {
	return s.PackageRepo.ListDestinations()
}

// PackagesByDestination lists packages whose destination contains the given
// value, with optional price/duration filters on top.
func (s DestinationService) PackagesByDestination(destination string, f repositories.PackageFilter) ([]models.TourPackage, error) {
	f.Destination = destination
	return s.PackageRepo.List(f)
}

// Stats serves destination aggregates, read-through cached. Cache failures
// fall back to the store; a store hit repopulates the cache best-effort.
func (s DestinationService) Stats(ctx context.Context, destination string) (models.DestinationStats, error) {
	if stats, ok := s.StatsCache.Get(ctx, destination); ok {
		utils.LogEvent(s.RequestID, "destination", "stats_cache_hit", fmt.Sprintf("destination=%s", destination))
		return stats, nil
	}

	stats, err := s.loadStats(destination)
	if err != nil {
		return models.DestinationStats{}, err
	}

	s.StatsCache.Set(ctx, destination, stats)
	return stats, nil
}

func (s DestinationService) loadStats(destination string) (models.DestinationStats, error) {
	if s.LoadStats != nil {
		return s.LoadStats(destination)
	}
	return s.PackageRepo.Stats(destination)
}
