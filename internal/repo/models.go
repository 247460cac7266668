package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "number", "buyer_id", "status", "currency",
	"subtotal", "discount_total", "total", "original_total",
	"user_notes", "admin_notes", "rejection_reason", "cancellation_reason", "modification_reason",
	"created_at", "updated_at",
	"approved_by", "approved_at", "rejected_by", "rejected_at",
	"confirmed_by", "confirmed_at", "ready_by", "ready_at",
	"completed_by", "completed_at", "cancelled_by", "cancelled_at",
	"modified_by", "modified_at",
	"version",
}

type Order struct {
	ID       uuid.UUID `db:"id"`
	Number   string    `db:"number"`
	BuyerID  uuid.UUID `db:"buyer_id"`
	Status   string    `db:"status"`
	Currency string    `db:"currency"`

	Subtotal      decimal.Decimal     `db:"subtotal"`
	DiscountTotal decimal.Decimal     `db:"discount_total"`
	Total         decimal.Decimal     `db:"total"`
	OriginalTotal decimal.NullDecimal `db:"original_total"`

	UserNotes          sql.NullString `db:"user_notes"`
	AdminNotes         sql.NullString `db:"admin_notes"`
	RejectionReason    sql.NullString `db:"rejection_reason"`
	CancellationReason sql.NullString `db:"cancellation_reason"`
	ModificationReason sql.NullString `db:"modification_reason"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	ApprovedBy  uuid.NullUUID `db:"approved_by"`
	ApprovedAt  sql.NullTime  `db:"approved_at"`
	RejectedBy  uuid.NullUUID `db:"rejected_by"`
	RejectedAt  sql.NullTime  `db:"rejected_at"`
	ConfirmedBy uuid.NullUUID `db:"confirmed_by"`
	ConfirmedAt sql.NullTime  `db:"confirmed_at"`
	ReadyBy     uuid.NullUUID `db:"ready_by"`
	ReadyAt     sql.NullTime  `db:"ready_at"`
	CompletedBy uuid.NullUUID `db:"completed_by"`
	CompletedAt sql.NullTime  `db:"completed_at"`
	CancelledBy uuid.NullUUID `db:"cancelled_by"`
	CancelledAt sql.NullTime  `db:"cancelled_at"`
	ModifiedBy  uuid.NullUUID `db:"modified_by"`
	ModifiedAt  sql.NullTime  `db:"modified_at"`

	Version int `db:"version"`
}

type OrderItem struct {
	ID                    uuid.UUID       `db:"id"`
	OrderID               uuid.UUID       `db:"order_id"`
	Position              int             `db:"position"`
	ProductID             uuid.UUID       `db:"product_id"`
	ProductCode           string          `db:"product_code"`
	ProductName           string          `db:"product_name"`
	Quantity              int             `db:"quantity"`
	OriginalQuantity      sql.NullInt32   `db:"original_quantity"`
	UnitPrice             decimal.Decimal `db:"unit_price"`
	DiscountPercent       decimal.Decimal `db:"discount_percent"`
	UnitPriceWithDiscount decimal.Decimal `db:"unit_price_with_discount"`
	LineTotal             decimal.Decimal `db:"line_total"`
}

type Product struct {
	ID       uuid.UUID       `db:"id"`
	Code     string          `db:"code"`
	Name     string          `db:"name"`
	Currency string          `db:"currency"`
	Price    decimal.Decimal `db:"price"`
}

type DiscountTier struct {
	ProductID       uuid.UUID       `db:"product_id"`
	MinQuantity     int             `db:"min_quantity"`
	DiscountPercent decimal.Decimal `db:"discount_percent"`
	Active          bool            `db:"active"`
	StartsAt        sql.NullTime    `db:"starts_at"`
	EndsAt          sql.NullTime    `db:"ends_at"`
}

type ProductImage struct {
	ProductID  uuid.UUID `db:"product_id"`
	URL        string    `db:"url"`
	UploadedAt time.Time `db:"uploaded_at"`
}

type Cart struct {
	ID      uuid.UUID `db:"id"`
	BuyerID uuid.UUID `db:"buyer_id"`
}

type CartItem struct {
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:                 o.ID,
		Number:             o.Number,
		BuyerID:            o.BuyerID,
		Status:             entities.Status(o.Status),
		Currency:           o.Currency,
		Subtotal:           o.Subtotal,
		DiscountTotal:      o.DiscountTotal,
		Total:              o.Total,
		UserNotes:          nullStringToString(o.UserNotes),
		AdminNotes:         nullStringToString(o.AdminNotes),
		RejectionReason:    nullStringToString(o.RejectionReason),
		CancellationReason: nullStringToString(o.CancellationReason),
		ModificationReason: nullStringToString(o.ModificationReason),
		CreatedAt:          o.CreatedAt.UTC(),
		UpdatedAt:          o.UpdatedAt.UTC(),
		Approved:           stampToEntity(o.ApprovedBy, o.ApprovedAt),
		Rejected:           stampToEntity(o.RejectedBy, o.RejectedAt),
		Confirmed:          stampToEntity(o.ConfirmedBy, o.ConfirmedAt),
		Ready:              stampToEntity(o.ReadyBy, o.ReadyAt),
		Completed:          stampToEntity(o.CompletedBy, o.CompletedAt),
		Cancelled:          stampToEntity(o.CancelledBy, o.CancelledAt),
		Modified:           stampToEntity(o.ModifiedBy, o.ModifiedAt),
		Version:            o.Version,
		Items:              make([]entities.OrderItem, 0, len(items)),
	}
	if o.OriginalTotal.Valid {
		total := o.OriginalTotal.Decimal
		order.OriginalTotal = &total
	}

	for _, it := range items {
		order.Items = append(order.Items, OrderItemToEntity(it))
	}
	return order
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	item := entities.OrderItem{
		ID:                    i.ID,
		ProductID:             i.ProductID,
		ProductCode:           i.ProductCode,
		ProductName:           i.ProductName,
		Quantity:              i.Quantity,
		UnitPrice:             i.UnitPrice,
		DiscountPercent:       i.DiscountPercent,
		UnitPriceWithDiscount: i.UnitPriceWithDiscount,
		LineTotal:             i.LineTotal,
	}
	if i.OriginalQuantity.Valid {
		q := int(i.OriginalQuantity.Int32)
		item.OriginalQuantity = &q
	}
	return item
}

// orderValues maps every mutable order column. Identity columns are added by the caller.
func orderValues(o entities.Order) map[string]any {
	values := map[string]any{
		"status":              o.Status.String(),
		"currency":            o.Currency,
		"subtotal":            o.Subtotal,
		"discount_total":      o.DiscountTotal,
		"total":               o.Total,
		"original_total":      nullDecimal(o.OriginalTotal),
		"user_notes":          nullString(o.UserNotes),
		"admin_notes":         nullString(o.AdminNotes),
		"rejection_reason":    nullString(o.RejectionReason),
		"cancellation_reason": nullString(o.CancellationReason),
		"modification_reason": nullString(o.ModificationReason),
		"updated_at":          o.UpdatedAt,
	}

	stamps := map[string]*entities.Stamp{
		"approved":  o.Approved,
		"rejected":  o.Rejected,
		"confirmed": o.Confirmed,
		"ready":     o.Ready,
		"completed": o.Completed,
		"cancelled": o.Cancelled,
		"modified":  o.Modified,
	}
	for prefix, st := range stamps {
		by, at := nullStamp(st)
		values[prefix+"_by"] = by
		values[prefix+"_at"] = at
	}
	return values
}

func ProductToEntity(p Product, tiers []DiscountTier, images []ProductImage) entities.Product {
	product := entities.Product{
		ID:       p.ID,
		Code:     p.Code,
		Name:     p.Name,
		Currency: p.Currency,
		Price:    p.Price,
	}

	for _, t := range tiers {
		product.DiscountTiers = append(product.DiscountTiers, entities.DiscountTier{
			MinQuantity:     t.MinQuantity,
			DiscountPercent: t.DiscountPercent,
			Active:          t.Active,
			StartsAt:        nullTimeToPtr(t.StartsAt),
			EndsAt:          nullTimeToPtr(t.EndsAt),
		})
	}
	for _, img := range images {
		product.Images = append(product.Images, entities.ProductImage{
			URL:        img.URL,
			UploadedAt: img.UploadedAt.UTC(),
		})
	}
	return product
}

func stampToEntity(by uuid.NullUUID, at sql.NullTime) *entities.Stamp {
	if !by.Valid || !at.Valid {
		return nil
	}
	return &entities.Stamp{By: by.UUID, At: at.Time.UTC()}
}

func nullStamp(st *entities.Stamp) (uuid.NullUUID, sql.NullTime) {
	if st == nil {
		return uuid.NullUUID{}, sql.NullTime{}
	}
	return uuid.NullUUID{UUID: st.By, Valid: true}, sql.NullTime{Time: st.At, Valid: true}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt32(i *int) sql.NullInt32 {
	if i == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*i), Valid: true}
}

func nullTimeToPtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
