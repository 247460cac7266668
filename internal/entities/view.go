package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the externally visible shape of an order, shared by the HTTP API and notifications.
type OrderView struct {
	ID      uuid.UUID `json:"id"`
	Number  string    `json:"number"`
	BuyerID uuid.UUID `json:"buyer_id"`
	Status  Status    `json:"status"`

	Currency      string           `json:"currency"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	DiscountTotal decimal.Decimal  `json:"discount_total"`
	Total         decimal.Decimal  `json:"total"`
	OriginalTotal *decimal.Decimal `json:"original_total,omitempty"`

	UserNotes          string `json:"user_notes,omitempty"`
	AdminNotes         string `json:"admin_notes,omitempty"`
	RejectionReason    string `json:"rejection_reason,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
	ModificationReason string `json:"modification_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Approved  *StampView `json:"approved,omitempty"`
	Rejected  *StampView `json:"rejected,omitempty"`
	Confirmed *StampView `json:"confirmed,omitempty"`
	Ready     *StampView `json:"ready,omitempty"`
	Completed *StampView `json:"completed,omitempty"`
	Cancelled *StampView `json:"cancelled,omitempty"`
	Modified  *StampView `json:"modified,omitempty"`

	Items []OrderItemView `json:"items"`
}

type StampView struct {
	By uuid.UUID `json:"by"`
	At time.Time `json:"at"`
}

type OrderItemView struct {
	ProductID             uuid.UUID       `json:"product_id"`
	ProductCode           string          `json:"product_code"`
	ProductName           string          `json:"product_name"`
	ImageURL              string          `json:"image_url,omitempty"`
	Quantity              int             `json:"quantity"`
	OriginalQuantity      *int            `json:"original_quantity,omitempty"`
	UnitPrice             decimal.Decimal `json:"unit_price"`
	DiscountPercent       decimal.Decimal `json:"discount_percent"`
	UnitPriceWithDiscount decimal.Decimal `json:"unit_price_with_discount"`
	LineTotal             decimal.Decimal `json:"line_total"`
}
