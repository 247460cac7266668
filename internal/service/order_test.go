package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	mocks "github.com/SergeyBogomolovv/storefront-order-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/cache"
	txMocks "github.com/SergeyBogomolovv/storefront-order-service/pkg/trm/mocks"
	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

type fixture struct {
	orders   *mocks.MockOrderRepo
	carts    *mocks.MockCartRepo
	products *mocks.MockProductRepo
	notifier *mocks.MockNotifier
	tx       *txMocks.MockManager
	svc      *orderService
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		orders:   mocks.NewMockOrderRepo(t),
		carts:    mocks.NewMockCartRepo(t),
		products: mocks.NewMockProductRepo(t),
		notifier: mocks.NewMockNotifier(t),
		tx:       txMocks.NewMockManager(t),
	}

	f.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	f.products.EXPECT().
		GetByID(mock.Anything, mock.Anything).
		Return(entities.Product{}, entities.ErrProductNotFound).Maybe()

	f.build(cache.NewLRUCache[uuid.UUID, string](16, time.Minute))
	return f
}

// withProducts swaps in a product repo without the default not-found expectation.
func (f *fixture) withProducts(t *testing.T, c Cache) *mocks.MockProductRepo {
	f.products = mocks.NewMockProductRepo(t)
	f.build(c)
	return f.products
}

func (f *fixture) build(c Cache) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewOrderService(logger, f.tx, f.orders, f.carts, f.products, f.notifier,
		c, WithClock(func() time.Time { return fixedNow }))
}

// stored wires GetDetailedByID/Update to an in-memory copy of o.
func (f *fixture) stored(o entities.Order) *entities.Order {
	current := o.Clone()
	f.orders.EXPECT().
		GetDetailedByID(mock.Anything, o.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (entities.Order, error) {
			return current.Clone(), nil
		}).Maybe()
	f.orders.EXPECT().
		Update(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, upd entities.Order) error {
			if upd.Version != current.Version {
				return entities.ErrConflict
			}
			current = upd.Clone()
			current.Version++
			return nil
		}).Maybe()
	return &current
}

func droppedNotifications(t *testing.T, event string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, notificationsDropped.WithLabelValues(event).Write(&m))
	return m.GetCounter().GetValue()
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func lineItem(productID uuid.UUID, qty int, price int64) entities.OrderItem {
	p := dec(price)
	return entities.OrderItem{
		ID:                    uuid.New(),
		ProductID:             productID,
		ProductCode:           "SKU-" + productID.String()[:4],
		ProductName:           "Product",
		Quantity:              qty,
		UnitPrice:             p,
		DiscountPercent:       decimal.Zero,
		UnitPriceWithDiscount: p,
		LineTotal:             p.Mul(dec(int64(qty))),
	}
}

func newOrder(buyer uuid.UUID, status entities.Status, items ...entities.OrderItem) entities.Order {
	o := entities.Order{
		ID:        uuid.New(),
		Number:    "ORD-20250101000000000",
		BuyerID:   buyer,
		Status:    status,
		Currency:  "USD",
		CreatedAt: fixedNow.Add(-time.Hour),
		UpdatedAt: fixedNow.Add(-time.Hour),
		Version:   1,
		Items:     items,
	}
	o.RecalculateTotals()
	return o
}

func buyerActor(id uuid.UUID) entities.Actor {
	return entities.Actor{ID: id, Role: entities.RoleBuyer}
}

func adminActor() entities.Actor {
	return entities.Actor{ID: uuid.New(), Role: entities.RoleAdmin}
}

func TestOrderService_GetOrder(t *testing.T) {
	buyer := uuid.New()
	order := newOrder(buyer, entities.StatusApproved, lineItem(uuid.New(), 2, 10))

	testCases := []struct {
		name    string
		actor   entities.Actor
		repoErr error
		wantErr error
	}{
		{name: "owner", actor: buyerActor(buyer)},
		{name: "admin", actor: adminActor()},
		{name: "other buyer", actor: buyerActor(uuid.New()), wantErr: entities.ErrForbidden},
		{name: "not found", actor: buyerActor(buyer), repoErr: entities.ErrOrderNotFound, wantErr: entities.ErrOrderNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.orders.EXPECT().
				GetDetailedByID(mock.Anything, order.ID).
				Return(order, tc.repoErr).Once()

			got, err := f.svc.GetOrder(context.Background(), tc.actor, order.ID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.ID, got.ID)
			assert.Len(t, got.Items, 1)
		})
	}
}

func TestOrderService_GetOrder_RetriesTransientFailure(t *testing.T) {
	buyer := uuid.New()
	order := newOrder(buyer, entities.StatusApproved, lineItem(uuid.New(), 2, 10))

	f := newFixture(t)
	f.orders.EXPECT().
		GetDetailedByID(mock.Anything, order.ID).
		Return(entities.Order{}, errors.New("connection reset")).Once()
	f.orders.EXPECT().
		GetDetailedByID(mock.Anything, order.ID).
		Return(order, nil).Once()

	got, err := f.svc.GetOrder(context.Background(), buyerActor(buyer), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Number, got.Number)
}

func TestOrderService_ListOrders(t *testing.T) {
	buyer := uuid.New()
	admin := adminActor()
	completed := entities.StatusCompleted
	bogus := entities.Status("shipped")

	testCases := []struct {
		name       string
		actor      entities.Actor
		filter     entities.OrderFilter
		wantFilter entities.OrderFilter
		wantErr    error
	}{
		{
			name:   "buyer cannot list all buyers",
			actor:  buyerActor(buyer),
			filter: entities.OrderFilter{AllBuyers: true, BuyerID: uuid.New()},
			wantFilter: entities.OrderFilter{
				BuyerID: buyer, Page: 1, PageSize: 20, SortBy: entities.SortByCreatedAt,
			},
		},
		{
			name:   "admin lists all buyers",
			actor:  admin,
			filter: entities.OrderFilter{AllBuyers: true, Status: &completed, Page: 3, PageSize: 500, SortBy: entities.SortByTotal, SortAsc: true},
			wantFilter: entities.OrderFilter{
				AllBuyers: true, Status: &completed, Page: 3, PageSize: 100, SortBy: entities.SortByTotal, SortAsc: true,
			},
		},
		{
			name:   "admin without flag sees own orders",
			actor:  admin,
			filter: entities.OrderFilter{},
			wantFilter: entities.OrderFilter{
				BuyerID: admin.ID, Page: 1, PageSize: 20, SortBy: entities.SortByCreatedAt,
			},
		},
		{
			name:    "unknown sort field",
			actor:   admin,
			filter:  entities.OrderFilter{SortBy: "price"},
			wantErr: entities.ErrValidation,
		},
		{
			name:    "unknown status",
			actor:   admin,
			filter:  entities.OrderFilter{Status: &bogus},
			wantErr: entities.ErrValidation,
		},
		{
			name:   "last allowed page",
			actor:  buyerActor(buyer),
			filter: entities.OrderFilter{Page: maxPage, PageSize: 100},
			wantFilter: entities.OrderFilter{
				BuyerID: buyer, Page: maxPage, PageSize: 100, SortBy: entities.SortByCreatedAt,
			},
		},
		{
			name:    "page beyond limit",
			actor:   buyerActor(buyer),
			filter:  entities.OrderFilter{Page: maxPage + 1},
			wantErr: entities.ErrValidation,
		},
		{
			name:    "overflowing page",
			actor:   admin,
			filter:  entities.OrderFilter{Page: math.MaxInt, PageSize: 100},
			wantErr: entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			order := newOrder(buyer, entities.StatusPendingApproval, lineItem(uuid.New(), 1, 5))

			if tc.wantErr == nil {
				f.orders.EXPECT().
					List(mock.Anything, tc.wantFilter).
					Return(entities.Page[entities.Order]{Items: []entities.Order{order}, Total: 41, Page: tc.wantFilter.Page, PageSize: tc.wantFilter.PageSize}, nil).
					Once()
			}

			got, err := f.svc.ListOrders(context.Background(), tc.actor, tc.filter)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 41, got.Total)
			require.Len(t, got.Items, 1)
			assert.Equal(t, order.ID, got.Items[0].ID)
		})
	}
}
