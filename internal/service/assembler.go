package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/pricing"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const imageLookupConcurrency = 8

// CreateFromCart turns the buyer's cart into a priced order awaiting approval and empties the cart.
func (s *orderService) CreateFromCart(ctx context.Context, actor entities.Actor, userNotes string) (entities.OrderView, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// the cart stays locked until commit, so nothing added meanwhile is cleared unordered
		cart, err := s.carts.GetDetailedCartForBuyer(ctx, actor.ID)
		if errors.Is(err, entities.ErrCartNotFound) {
			return fmt.Errorf("%w: cart is empty", entities.ErrValidation)
		}
		if err != nil {
			return fmt.Errorf("failed to get cart: %w", err)
		}

		order, err = s.assemble(actor, cart, userNotes)
		if err != nil {
			return err
		}

		if err := s.orders.Add(ctx, order); err != nil {
			return fmt.Errorf("failed to add order: %w", err)
		}
		if err := s.carts.ClearCart(ctx, cart.ID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.OrderView{}, err
	}

	s.logger.DebugContext(ctx, "order created",
		slog.String("order_id", order.ID.String()),
		slog.String("number", order.Number),
		slog.String("buyer_id", order.BuyerID.String()),
		slog.String("total", order.Total.String()),
	)

	view := s.ToExternalView(ctx, order)
	s.notify(ctx, true, view)
	return view, nil
}

// assemble prices every cart line at the current instant.
func (s *orderService) assemble(actor entities.Actor, cart entities.Cart, userNotes string) (entities.Order, error) {
	currency, err := checkCart(cart)
	if err != nil {
		return entities.Order{}, err
	}

	now := s.now()
	order := entities.Order{
		ID:        s.newID(),
		Number:    orderNumber(now),
		BuyerID:   actor.ID,
		Status:    entities.StatusPendingApproval,
		Currency:  currency,
		UserNotes: setOrEmpty(userNotes),
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
		Items:     make([]entities.OrderItem, 0, len(cart.Items)),
	}

	for _, ci := range cart.Items {
		line := pricing.Price(*ci.Product, ci.Quantity, now)
		order.Items = append(order.Items, entities.OrderItem{
			ID:                    s.newID(),
			ProductID:             ci.Product.ID,
			ProductCode:           ci.Product.Code,
			ProductName:           ci.Product.Name,
			Quantity:              ci.Quantity,
			UnitPrice:             line.UnitPrice,
			DiscountPercent:       line.DiscountPercent,
			UnitPriceWithDiscount: line.UnitPriceWithDiscount,
			LineTotal:             line.LineTotal,
		})
	}
	order.RecalculateTotals()
	return order, nil
}

// checkCart validates the cart before any pricing and returns its single currency.
func checkCart(cart entities.Cart) (string, error) {
	if len(cart.Items) == 0 {
		return "", fmt.Errorf("%w: cart is empty", entities.ErrValidation)
	}

	var currency string
	for i, ci := range cart.Items {
		if ci.Product == nil {
			return "", fmt.Errorf("%w: product %s not found", entities.ErrValidation, ci.ProductID)
		}
		if ci.Quantity <= 0 {
			return "", fmt.Errorf("%w: quantity for product %s must be positive", entities.ErrValidation, ci.ProductID)
		}
		if i == 0 {
			currency = ci.Product.Currency
			continue
		}
		if ci.Product.Currency != currency {
			return "", fmt.Errorf("%w: cart mixes currencies %s and %s", entities.ErrValidation, currency, ci.Product.Currency)
		}
	}
	return currency, nil
}

// orderNumber is derived from the UTC creation time with millisecond precision.
// It is not guaranteed to be unique.
func orderNumber(now time.Time) string {
	now = now.UTC()
	return fmt.Sprintf("ORD-%s%03d", now.Format("20060102150405"), now.Nanosecond()/int(time.Millisecond))
}

// ToExternalView projects the order for display, joining a representative image per product.
// Image lookups are best effort and never reprice anything.
func (s *orderService) ToExternalView(ctx context.Context, o entities.Order) entities.OrderView {
	ids := o.ProductIDs()
	urls := make([]string, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imageLookupConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			urls[i] = s.representativeImage(gctx, id)
			return nil
		})
	}
	_ = g.Wait()

	images := make(map[uuid.UUID]string, len(ids))
	for i, id := range ids {
		images[id] = urls[i]
	}

	view := entities.OrderView{
		ID:                 o.ID,
		Number:             o.Number,
		BuyerID:            o.BuyerID,
		Status:             o.Status,
		Currency:           o.Currency,
		Subtotal:           o.Subtotal,
		DiscountTotal:      o.DiscountTotal,
		Total:              o.Total,
		OriginalTotal:      o.OriginalTotal,
		UserNotes:          o.UserNotes,
		AdminNotes:         o.AdminNotes,
		RejectionReason:    o.RejectionReason,
		CancellationReason: o.CancellationReason,
		ModificationReason: o.ModificationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		Approved:           stampView(o.Approved),
		Rejected:           stampView(o.Rejected),
		Confirmed:          stampView(o.Confirmed),
		Ready:              stampView(o.Ready),
		Completed:          stampView(o.Completed),
		Cancelled:          stampView(o.Cancelled),
		Modified:           stampView(o.Modified),
		Items:              make([]entities.OrderItemView, 0, len(o.Items)),
	}

	for _, it := range o.Items {
		view.Items = append(view.Items, entities.OrderItemView{
			ProductID:             it.ProductID,
			ProductCode:           it.ProductCode,
			ProductName:           it.ProductName,
			ImageURL:              images[it.ProductID],
			Quantity:              it.Quantity,
			OriginalQuantity:      it.OriginalQuantity,
			UnitPrice:             it.UnitPrice,
			DiscountPercent:       it.DiscountPercent,
			UnitPriceWithDiscount: it.UnitPriceWithDiscount,
			LineTotal:             it.LineTotal,
		})
	}
	return view
}

func (s *orderService) representativeImage(ctx context.Context, productID uuid.UUID) string {
	if url, ok := s.cache.Get(productID); ok {
		return url
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil && !errors.Is(err, entities.ErrProductNotFound) {
		s.logger.WarnContext(ctx, "failed to resolve product image",
			slog.Any("error", err),
			slog.String("product_id", productID.String()),
		)
		return ""
	}

	url, _ := product.RepresentativeImage()
	s.cache.Set(productID, url)
	return url
}

func stampView(st *entities.Stamp) *entities.StampView {
	if st == nil {
		return nil
	}
	return &entities.StampView{By: st.By, At: st.At}
}

func setOrEmpty(note string) string {
	var s string
	setIfPresent(&s, note)
	return s
}
