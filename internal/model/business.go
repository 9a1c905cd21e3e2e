package model

import "time"

type BusinessStatus string

const (
	BusinessAvailable BusinessStatus = "available"
	BusinessReserved  BusinessStatus = "reserved"
	BusinessSold      BusinessStatus = "sold"
)

func (s BusinessStatus) Valid() bool {
	switch s {
	case BusinessAvailable, BusinessReserved, BusinessSold:
		return true
	}
	return false
}

// Business is a turnkey e-commerce business offered for sale.
type Business struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	Category       string         `json:"category"`
	Description    string         `json:"description"`
	Price          int64          `json:"price"`
	MonthlyRevenue int64          `json:"monthly_revenue"`
	ImageKey       string         `json:"image_key"`
	ImageURL       string         `json:"image_url,omitempty"`
	Status         BusinessStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
