package entities

import "github.com/google/uuid"

type Cart struct {
	ID      uuid.UUID
	BuyerID uuid.UUID
	Items   []CartItem
}

type CartItem struct {
	ProductID uuid.UUID
	Quantity  int

	// Product is nil when the referenced product could not be resolved.
	Product *Product
}
