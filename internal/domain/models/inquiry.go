package models

import (
	"strings"
	"time"
)

// Inquiry lifecycle. "pending" survives as an input alias of StatusNew for
// older clients and is normalized on write.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusBooked    = "booked"
	StatusClosed    = "closed"
)

// Inquiry is a customer request about one package. PackageTitle and
// PackageDestination are denormalized from the packages table on read and
// stay empty when the package has since been deleted.
type Inquiry struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	PackageID          int64     `json:"packageId"`
	Message            string    `json:"message"`
	Status             string    `json:"status"`
	Travelers          int       `json:"travelers"`
	PreferredDate      string    `json:"preferredDate,omitempty"`
	PackageTitle       string    `json:"packageTitle,omitempty"`
	PackageDestination string    `json:"packageDestination,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// NormalizeStatus maps an incoming status value onto the canonical set.
// The second return is false for values outside the allow-list.
func NormalizeStatus(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case StatusNew, "pending":
		return StatusNew, true
	case StatusContacted:
		return StatusContacted, true
	case StatusBooked:
		return StatusBooked, true
	case StatusClosed:
		return StatusClosed, true
	default:
		return "", false
	}
}
