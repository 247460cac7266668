package entities

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPendingApproval     Status = "pending_approval"
	StatusApproved            Status = "approved"
	StatusRejected            Status = "rejected"
	StatusModificationPending Status = "modification_pending"
	StatusConfirmed           Status = "confirmed"
	StatusReadyForPickup      Status = "ready_for_pickup"
	StatusCompleted           Status = "completed"
	StatusCancelled           Status = "cancelled"
)

var Statuses = []Status{
	StatusPendingApproval,
	StatusApproved,
	StatusRejected,
	StatusModificationPending,
	StatusConfirmed,
	StatusReadyForPickup,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// Stamp records who fired a transition and when (UTC).
type Stamp struct {
	By uuid.UUID
	At time.Time
}

type OrderItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID

	// frozen at checkout
	ProductCode string
	ProductName string

	Quantity              int
	UnitPrice             decimal.Decimal
	DiscountPercent       decimal.Decimal
	UnitPriceWithDiscount decimal.Decimal
	LineTotal             decimal.Decimal
	OriginalQuantity      *int
}

type Order struct {
	ID      uuid.UUID
	Number  string
	BuyerID uuid.UUID
	Status  Status

	Currency      string
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	Total         decimal.Decimal
	OriginalTotal *decimal.Decimal

	UserNotes          string
	AdminNotes         string
	RejectionReason    string
	CancellationReason string
	ModificationReason string

	CreatedAt time.Time
	UpdatedAt time.Time

	Approved  *Stamp
	Rejected  *Stamp
	Confirmed *Stamp
	Ready     *Stamp
	Completed *Stamp
	Cancelled *Stamp
	Modified  *Stamp

	// Version is bumped by the store on every successful update.
	Version int

	Items []OrderItem
}

// Clone returns a copy that shares no mutable state with o.
func (o Order) Clone() Order {
	c := o
	c.Items = make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		if it.OriginalQuantity != nil {
			q := *it.OriginalQuantity
			it.OriginalQuantity = &q
		}
		c.Items[i] = it
	}
	if o.OriginalTotal != nil {
		t := *o.OriginalTotal
		c.OriginalTotal = &t
	}
	for _, s := range []**Stamp{&c.Approved, &c.Rejected, &c.Confirmed, &c.Ready, &c.Completed, &c.Cancelled, &c.Modified} {
		if *s != nil {
			v := **s
			*s = &v
		}
	}
	return c
}

// RecalculateTotals derives subtotal, total and discount total from the items.
func (o *Order) RecalculateTotals() {
	subtotal := decimal.Zero
	total := decimal.Zero
	for _, it := range o.Items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		total = total.Add(it.LineTotal)
	}
	o.Subtotal = subtotal
	o.Total = total
	o.DiscountTotal = subtotal.Sub(total)
}

func (o Order) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(o.Items))
	for _, it := range o.Items {
		if !slices.Contains(ids, it.ProductID) {
			ids = append(ids, it.ProductID)
		}
	}
	return ids
}

type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByTotal     SortField = "total"
	SortByNumber    SortField = "number"
	SortByStatus    SortField = "status"
)

type OrderFilter struct {
	Status      *Status
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	// Search matches the order number and item product code/name.
	Search string

	BuyerID   uuid.UUID
	AllBuyers bool

	Page     int
	PageSize int
	SortBy   SortField
	SortAsc  bool
}

type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

// QuantityChange asks to set the quantity of the order line holding ProductID.
type QuantityChange struct {
	ProductID uuid.UUID
	Quantity  int
}
