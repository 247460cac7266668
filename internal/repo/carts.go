package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// GetDetailedCartForBuyer returns the buyer's cart with products resolved.
// Items whose product no longer exists keep a nil Product.
// Inside a transaction the cart row is locked FOR UPDATE, which also blocks new cart_items until commit.
func (r *postgresRepo) GetDetailedCartForBuyer(ctx context.Context, buyerID uuid.UUID) (entities.Cart, error) {
	query, args := cartForBuyerQuery(r.qb, buyerID)

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	query, args = r.qb.Select("product_id", "quantity").
		From("cart_items").
		Where("cart_id = ?", cart.ID).
		OrderBy("added_at", "product_id").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to select cart items: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := r.productsByIDs(ctx, ids)
	if err != nil {
		return entities.Cart{}, err
	}

	result := entities.Cart{
		ID:      cart.ID,
		BuyerID: cart.BuyerID,
		Items:   make([]entities.CartItem, 0, len(items)),
	}
	for _, it := range items {
		ci := entities.CartItem{ProductID: it.ProductID, Quantity: it.Quantity}
		if p, ok := products[it.ProductID]; ok {
			ci.Product = &p
		}
		result.Items = append(result.Items, ci)
	}
	return result, nil
}

func (r *postgresRepo) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	query, args := r.qb.Delete("cart_items").Where("cart_id = ?", cartID).MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func cartForBuyerQuery(qb sq.StatementBuilderType, buyerID uuid.UUID) (string, []any) {
	return qb.Select("id", "buyer_id").
		From("carts").
		Where("buyer_id = ?", buyerID).
		Suffix("FOR UPDATE").
		MustSql()
}
