package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID       uuid.UUID
	Code     string
	Name     string
	Currency string
	Price    decimal.Decimal

	DiscountTiers []DiscountTier
	Images        []ProductImage
}

// DiscountTier is a bulk discount granted from MinQuantity units on.
type DiscountTier struct {
	MinQuantity     int
	DiscountPercent decimal.Decimal
	Active          bool
	StartsAt        *time.Time
	EndsAt          *time.Time
}

// ValidAt reports whether the tier is active and now falls inside its optional window.
func (t DiscountTier) ValidAt(now time.Time) bool {
	if !t.Active {
		return false
	}
	if t.StartsAt != nil && now.Before(*t.StartsAt) {
		return false
	}
	if t.EndsAt != nil && now.After(*t.EndsAt) {
		return false
	}
	return true
}

type ProductImage struct {
	URL        string
	UploadedAt time.Time
}

// RepresentativeImage returns the earliest uploaded image url.
func (p Product) RepresentativeImage() (string, bool) {
	var (
		url   string
		first time.Time
		found bool
	)
	for _, img := range p.Images {
		if !found || img.UploadedAt.Before(first) {
			url, first, found = img.URL, img.UploadedAt, true
		}
	}
	return url, found
}
