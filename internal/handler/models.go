package handler

import (
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/google/uuid"
)

// CreateOrderRequest checks out the caller's cart
type CreateOrderRequest struct {
	UserNotes string `json:"user_notes" validate:"max=2000"`
}

// NoteRequest carries an optional note for a transition
type NoteRequest struct {
	Note string `json:"note" validate:"max=2000"`
}

// ReasonRequest carries the mandatory reason of a transition
type ReasonRequest struct {
	Reason string `json:"reason" validate:"required,max=2000"`
}

// ModifyRequest changes line quantities before approval
type ModifyRequest struct {
	Items  []ItemChange `json:"items" validate:"required,min=1,dive"`
	Reason string       `json:"reason" validate:"required,max=2000"`
}

// ItemChange sets the quantity of one order line, zero removes it
type ItemChange struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  *int   `json:"quantity" validate:"required,gte=0"`
}

func (r ModifyRequest) Changes() []entities.QuantityChange {
	changes := make([]entities.QuantityChange, 0, len(r.Items))
	for _, it := range r.Items {
		changes = append(changes, entities.QuantityChange{
			ProductID: uuid.MustParse(it.ProductID),
			Quantity:  *it.Quantity,
		})
	}
	return changes
}

// ListOrdersQuery holds the raw query parameters of the order listing
type ListOrdersQuery struct {
	Status   string `validate:"omitempty"`
	From     string `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To       string `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Search   string `validate:"max=200"`
	BuyerID  string `validate:"omitempty,uuid"`
	All      string `validate:"omitempty,boolean"`
	Page     string `validate:"omitempty,numeric"`
	PageSize string `validate:"omitempty,numeric"`
	Sort     string `validate:"omitempty,oneof=created_at total number status"`
	Order    string `validate:"omitempty,oneof=asc desc"`
}

// Filter converts a validated query into an order filter.
func (q ListOrdersQuery) Filter() entities.OrderFilter {
	f := entities.OrderFilter{
		Search:  q.Search,
		SortBy:  entities.SortField(q.Sort),
		SortAsc: q.Order == "asc",
	}
	if q.Status != "" {
		status := entities.Status(q.Status)
		f.Status = &status
	}
	if t, err := time.Parse(time.RFC3339, q.From); err == nil {
		f.CreatedFrom = &t
	}
	if t, err := time.Parse(time.RFC3339, q.To); err == nil {
		f.CreatedTo = &t
	}
	if id, err := uuid.Parse(q.BuyerID); err == nil {
		f.BuyerID = id
	}
	f.AllBuyers, _ = strconv.ParseBool(q.All)
	f.Page, _ = strconv.Atoi(q.Page)
	f.PageSize, _ = strconv.Atoi(q.PageSize)
	return f
}

// OrdersPage is one page of orders visible to the caller
type OrdersPage struct {
	Items    []entities.OrderView `json:"items"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// CheckoutMessage is a checkout request consumed from Kafka
type CheckoutMessage struct {
	BuyerID   string `json:"buyer_id" validate:"required,uuid"`
	UserNotes string `json:"user_notes" validate:"max=2000"`
}
