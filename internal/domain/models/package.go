package models

import "time"

// TourPackage is a sellable tour product. Identifier is store-assigned and
// immutable; price never goes negative (enforced on write).
type TourPackage struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	Images      []string  `json:"images"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DestinationInfo is a derived view over packages grouped by destination.
// It is computed on demand and never persisted.
type DestinationInfo struct {
	Name          string       `json:"name"`
	PackageCount  int          `json:"packageCount"`
	SamplePackage *TourPackage `json:"samplePackage"`
}

type DestinationStats struct {
	TotalPackages int      `json:"totalPackages"`
	AvgPrice      float64  `json:"avgPrice"`
	MinPrice      float64  `json:"minPrice"`
	MaxPrice      float64  `json:"maxPrice"`
	Durations     []string `json:"durations"`
}
