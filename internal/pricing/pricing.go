// Package pricing turns a product snapshot and a requested quantity into frozen line prices.
package pricing

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for discounted prices and totals.
// It matches the NUMERIC(18, 4) order columns, so stored rows reproduce the computed values.
const Scale = 4

var hundred = decimal.NewFromInt(100)

type Line struct {
	UnitPrice             decimal.Decimal
	DiscountPercent       decimal.Decimal
	UnitPriceWithDiscount decimal.Decimal
	LineTotal             decimal.Decimal
}

// BestTier picks the qualifying tier with the highest discount percentage.
// Tiers may overlap, so the largest MinQuantity does not necessarily win.
// On equal percentages the earlier tier is kept.
func BestTier(tiers []entities.DiscountTier, quantity int, now time.Time) (entities.DiscountTier, bool) {
	var (
		best  entities.DiscountTier
		found bool
	)
	for _, t := range tiers {
		if t.MinQuantity > quantity || !t.ValidAt(now) {
			continue
		}
		if !found || t.DiscountPercent.GreaterThan(best.DiscountPercent) {
			best, found = t, true
		}
	}
	return best, found
}

// Price is deterministic for the same product snapshot, quantity and instant.
func Price(p entities.Product, quantity int, now time.Time) Line {
	pct := decimal.Zero
	if tier, ok := BestTier(p.DiscountTiers, quantity, now); ok {
		pct = tier.DiscountPercent
	}

	discounted := p.Price.Mul(decimal.NewFromInt(1).Sub(pct.Div(hundred))).Round(Scale)

	return Line{
		UnitPrice:             p.Price,
		DiscountPercent:       pct,
		UnitPriceWithDiscount: discounted,
		LineTotal:             LineTotal(discounted, quantity),
	}
}

// LineTotal multiplies an already rounded discounted unit price by quantity.
func LineTotal(unitPriceWithDiscount decimal.Decimal, quantity int) decimal.Decimal {
	return unitPriceWithDiscount.Round(Scale).Mul(decimal.NewFromInt(int64(quantity)))
}
