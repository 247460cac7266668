package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/google/uuid"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	products, err := r.productsByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return entities.Product{}, err
	}

	product, ok := products[id]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return product, nil
}

// productsByIDs loads products with their discount tiers and images. Unknown ids are skipped.
func (r *postgresRepo) productsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.Product, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]entities.Product{}, nil
	}
	in := sq.Eq{"product_id": idStrings(ids)}

	query, args := r.qb.Select("id", "code", "name", "currency", "price").
		From("products").
		Where(sq.Eq{"id": idStrings(ids)}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	if len(products) == 0 {
		return map[uuid.UUID]entities.Product{}, nil
	}

	query, args = r.qb.Select("product_id", "min_quantity", "discount_percent", "active", "starts_at", "ends_at").
		From("product_discount_tiers").
		Where(in).
		OrderBy("product_id", "min_quantity", "id").
		MustSql()

	var tiers []DiscountTier
	if err := r.selectContext(ctx, &tiers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select discount tiers: %w", err)
	}
	tiersMap := make(map[uuid.UUID][]DiscountTier, len(products))
	for _, t := range tiers {
		tiersMap[t.ProductID] = append(tiersMap[t.ProductID], t)
	}

	query, args = r.qb.Select("product_id", "url", "uploaded_at").
		From("product_images").
		Where(in).
		OrderBy("product_id", "uploaded_at", "id").
		MustSql()

	var images []ProductImage
	if err := r.selectContext(ctx, &images, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select product images: %w", err)
	}
	imagesMap := make(map[uuid.UUID][]ProductImage, len(products))
	for _, img := range images {
		imagesMap[img.ProductID] = append(imagesMap[img.ProductID], img)
	}

	result := make(map[uuid.UUID]entities.Product, len(products))
	for _, p := range products {
		result[p.ID] = ProductToEntity(p, tiersMap[p.ID], imagesMap[p.ID])
	}
	return result, nil
}
