package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/google/uuid"

	sq "github.com/Masterminds/squirrel"
)

var itemColumns = []string{
	"id", "order_id", "position", "product_id", "product_code", "product_name",
	"quantity", "original_quantity", "unit_price", "discount_percent",
	"unit_price_with_discount", "line_total",
}

var sortColumns = map[entities.SortField]string{
	entities.SortByCreatedAt: "created_at",
	entities.SortByTotal:     "total",
	entities.SortByNumber:    "number",
	entities.SortByStatus:    "status",
}

func (r *postgresRepo) Add(ctx context.Context, o entities.Order) error {
	values := orderValues(o)
	values["id"] = o.ID
	values["number"] = o.Number
	values["buyer_id"] = o.BuyerID
	values["created_at"] = o.CreatedAt
	values["version"] = o.Version

	query, args := r.qb.Insert("orders").SetMap(values).MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return r.insertItems(ctx, o.ID, o.Items)
}

// Update writes o only if the stored version still equals o.Version, then bumps it.
func (r *postgresRepo) Update(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		SetMap(orderValues(o)).
		Set("version", sq.Expr("version + 1")).
		Where("id = ?", o.ID).
		Where("version = ?", o.Version).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: order %s was changed concurrently", entities.ErrConflict, o.ID)
	}

	query, args = r.qb.Delete("order_items").Where("order_id = ?", o.ID).MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	return r.insertItems(ctx, o.ID, o.Items)
}

func (r *postgresRepo) insertItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for pos, it := range items {
		q = q.Values(
			it.ID,
			orderID,
			pos,
			it.ProductID,
			it.ProductCode,
			it.ProductName,
			it.Quantity,
			nullInt32(it.OriginalQuantity),
			it.UnitPrice,
			it.DiscountPercent,
			it.UnitPriceWithDiscount,
			it.LineTotal,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetDetailedByID(ctx context.Context, id uuid.UUID) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where("id = ?", id).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrder(ctx, []uuid.UUID{id})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[id]), nil
}

func (r *postgresRepo) List(ctx context.Context, f entities.OrderFilter) (entities.Page[entities.Order], error) {
	countQ, pageQ := r.listQueries(f)

	query, args := countQ.MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return entities.Page[entities.Order]{}, fmt.Errorf("failed to count orders: %w", err)
	}

	page := entities.Page[entities.Order]{
		Items:    []entities.Order{},
		Total:    total,
		Page:     f.Page,
		PageSize: f.PageSize,
	}
	if total == 0 {
		return page, nil
	}

	query, args = pageQ.MustSql()
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return entities.Page[entities.Order]{}, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return page, nil
	}

	ids := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := r.itemsByOrder(ctx, ids)
	if err != nil {
		return entities.Page[entities.Order]{}, err
	}

	page.Items = make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		page.Items = append(page.Items, OrderToEntity(o, items[o.ID]))
	}
	return page, nil
}

// listQueries builds the count and page queries for an already normalized filter.
func (r *postgresRepo) listQueries(f entities.OrderFilter) (sq.SelectBuilder, sq.SelectBuilder) {
	where := sq.And{}
	if !f.AllBuyers {
		where = append(where, sq.Eq{"buyer_id": f.BuyerID.String()})
	}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": f.Status.String()})
	}
	if f.CreatedFrom != nil {
		where = append(where, sq.GtOrEq{"created_at": *f.CreatedFrom})
	}
	if f.CreatedTo != nil {
		where = append(where, sq.LtOrEq{"created_at": *f.CreatedTo})
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + likeEscaper.Replace(s) + "%"
		where = append(where, sq.Or{
			sq.ILike{"number": pattern},
			sq.Expr(
				"EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id AND (oi.product_code ILIKE ? OR oi.product_name ILIKE ?))",
				pattern, pattern,
			),
		})
	}

	count := r.qb.Select("COUNT(*)").From("orders").Where(where)

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = sortColumns[entities.SortByCreatedAt]
	}
	dir := "DESC"
	if f.SortAsc {
		dir = "ASC"
	}

	page := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy(column+" "+dir, "id "+dir).
		Limit(uint64(f.PageSize)).
		Offset(uint64((f.Page - 1) * f.PageSize))

	return count, page
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *postgresRepo) itemsByOrder(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItem, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": idStrings(orderIDs)}).
		OrderBy("order_id", "position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	byOrder := make(map[uuid.UUID][]OrderItem, len(orderIDs))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	return byOrder, nil
}
