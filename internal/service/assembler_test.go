package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/cache"
	txMocks "github.com/SergeyBogomolovv/storefront-order-service/pkg/trm/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func product(price int64, currency string, tiers ...entities.DiscountTier) *entities.Product {
	id := uuid.New()
	return &entities.Product{
		ID:            id,
		Code:          "SKU-" + id.String()[:6],
		Name:          "Widget",
		Currency:      currency,
		Price:         dec(price),
		DiscountTiers: tiers,
	}
}

func tier(minQty int, pct int64) entities.DiscountTier {
	return entities.DiscountTier{MinQuantity: minQty, DiscountPercent: dec(pct), Active: true}
}

func cartOf(buyer uuid.UUID, items ...entities.CartItem) entities.Cart {
	return entities.Cart{ID: uuid.New(), BuyerID: buyer, Items: items}
}

func cartItem(p *entities.Product, qty int) entities.CartItem {
	ci := entities.CartItem{Quantity: qty, Product: p}
	if p != nil {
		ci.ProductID = p.ID
	} else {
		ci.ProductID = uuid.New()
	}
	return ci
}

func TestOrderService_CreateFromCart(t *testing.T) {
	buyer := uuid.New()
	widget := product(100, "USD", tier(5, 10))

	f := newFixture(t)
	cart := cartOf(buyer, cartItem(widget, 5))
	f.carts.EXPECT().GetDetailedCartForBuyer(mock.Anything, buyer).Return(cart, nil).Once()

	var added entities.Order
	f.orders.EXPECT().
		Add(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) error {
			added = o
			return nil
		}).Once()
	f.carts.EXPECT().ClearCart(mock.Anything, cart.ID).Return(nil).Once()
	f.notifier.EXPECT().
		NotifyCreated(mock.Anything, mock.MatchedBy(func(v entities.OrderView) bool {
			return v.Status == entities.StatusPendingApproval
		})).
		Return(nil).Once()

	view, err := f.svc.CreateFromCart(context.Background(), buyerActor(buyer), " leave at the door ")
	require.NoError(t, err)

	assert.True(t, dec(450).Equal(view.Total), "total %s", view.Total)
	assert.True(t, dec(500).Equal(view.Subtotal), "subtotal %s", view.Subtotal)
	assert.True(t, dec(50).Equal(view.DiscountTotal), "discount %s", view.DiscountTotal)
	assert.Equal(t, "USD", view.Currency)
	assert.Equal(t, "leave at the door", view.UserNotes)
	assert.Equal(t, entities.StatusPendingApproval, view.Status)
	assert.Equal(t, fixedNow, view.CreatedAt)
	assert.Equal(t, "ORD-20250314092653589", view.Number)

	require.Len(t, view.Items, 1)
	item := view.Items[0]
	assert.Equal(t, widget.ID, item.ProductID)
	assert.Equal(t, widget.Code, item.ProductCode)
	assert.Equal(t, 5, item.Quantity)
	assert.True(t, dec(10).Equal(item.DiscountPercent))
	assert.True(t, dec(90).Equal(item.UnitPriceWithDiscount))
	assert.True(t, dec(450).Equal(item.LineTotal))
	assert.Nil(t, item.OriginalQuantity)

	assert.Equal(t, view.ID, added.ID)
	assert.Equal(t, buyer, added.BuyerID)
	assert.Equal(t, 1, added.Version)
	assert.Nil(t, added.OriginalTotal)
}

func TestOrderService_CreateFromCart_MultipleLines(t *testing.T) {
	buyer := uuid.New()
	a := product(100, "EUR", tier(5, 10), tier(10, 20))
	b := product(40, "EUR")
	c := product(15, "EUR", entities.DiscountTier{MinQuantity: 1, DiscountPercent: dec(50), Active: false})

	f := newFixture(t)
	cart := cartOf(buyer, cartItem(a, 10), cartItem(b, 3), cartItem(c, 2))
	f.carts.EXPECT().GetDetailedCartForBuyer(mock.Anything, buyer).Return(cart, nil).Once()
	f.orders.EXPECT().Add(mock.Anything, mock.Anything).Return(nil).Once()
	f.carts.EXPECT().ClearCart(mock.Anything, cart.ID).Return(nil).Once()
	f.notifier.EXPECT().NotifyCreated(mock.Anything, mock.Anything).Return(nil).Once()

	view, err := f.svc.CreateFromCart(context.Background(), buyerActor(buyer), "")
	require.NoError(t, err)

	// 10*80 + 3*40 + 2*15
	assert.True(t, dec(950).Equal(view.Total), "total %s", view.Total)
	assert.True(t, dec(1150).Equal(view.Subtotal), "subtotal %s", view.Subtotal)
	assert.True(t, dec(200).Equal(view.DiscountTotal), "discount %s", view.DiscountTotal)
	require.Len(t, view.Items, 3)
	assert.True(t, decimal.Zero.Equal(view.Items[2].DiscountPercent))
	assert.Empty(t, view.UserNotes)
}

func TestOrderService_CreateFromCart_InvalidCart(t *testing.T) {
	buyer := uuid.New()

	testCases := []struct {
		name    string
		cart    entities.Cart
		repoErr error
	}{
		{name: "cart not found", repoErr: entities.ErrCartNotFound},
		{name: "empty cart", cart: cartOf(buyer)},
		{name: "unresolved product", cart: cartOf(buyer, cartItem(product(10, "USD"), 1), cartItem(nil, 2))},
		{name: "mixed currencies", cart: cartOf(buyer, cartItem(product(10, "USD"), 1), cartItem(product(10, "EUR"), 1))},
		{name: "non-positive quantity", cart: cartOf(buyer, cartItem(product(10, "USD"), 0))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.carts.EXPECT().GetDetailedCartForBuyer(mock.Anything, buyer).Return(tc.cart, tc.repoErr).Once()

			_, err := f.svc.CreateFromCart(context.Background(), buyerActor(buyer), "")
			assert.ErrorIs(t, err, entities.ErrValidation)
		})
	}
}

func TestOrderService_CreateFromCart_PersistenceFailure(t *testing.T) {
	buyer := uuid.New()
	dbErr := errors.New("db error")

	t.Run("add fails", func(t *testing.T) {
		f := newFixture(t)
		cart := cartOf(buyer, cartItem(product(10, "USD"), 1))
		f.carts.EXPECT().GetDetailedCartForBuyer(mock.Anything, buyer).Return(cart, nil).Once()
		f.orders.EXPECT().Add(mock.Anything, mock.Anything).Return(dbErr).Once()

		_, err := f.svc.CreateFromCart(context.Background(), buyerActor(buyer), "")
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("clear fails", func(t *testing.T) {
		f := newFixture(t)
		cart := cartOf(buyer, cartItem(product(10, "USD"), 1))
		f.carts.EXPECT().GetDetailedCartForBuyer(mock.Anything, buyer).Return(cart, nil).Once()
		f.orders.EXPECT().Add(mock.Anything, mock.Anything).Return(nil).Once()
		f.carts.EXPECT().ClearCart(mock.Anything, cart.ID).Return(dbErr).Once()

		_, err := f.svc.CreateFromCart(context.Background(), buyerActor(buyer), "")
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("cart lookup fails", func(t *testing.T) {
		f := newFixture(t)
		f.carts.EXPECT().GetDetailedCartForBuyer(mock.Anything, buyer).Return(entities.Cart{}, dbErr).Once()

		_, err := f.svc.CreateFromCart(context.Background(), buyerActor(buyer), "")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, entities.ErrValidation)
	})
}

func TestOrderService_CreateFromCart_NotifyFailure(t *testing.T) {
	buyer := uuid.New()

	f := newFixture(t)
	cart := cartOf(buyer, cartItem(product(10, "USD"), 1))
	f.carts.EXPECT().GetDetailedCartForBuyer(mock.Anything, buyer).Return(cart, nil).Once()
	f.orders.EXPECT().Add(mock.Anything, mock.Anything).Return(nil).Once()
	f.carts.EXPECT().ClearCart(mock.Anything, cart.ID).Return(nil).Once()
	f.notifier.EXPECT().NotifyCreated(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	dropped := droppedNotifications(t, eventCreated)

	view, err := f.svc.CreateFromCart(context.Background(), buyerActor(buyer), "")
	require.NoError(t, err)
	assert.True(t, dec(10).Equal(view.Total))
	assert.Equal(t, dropped+1, droppedNotifications(t, eventCreated))
}

type txMarker struct{}

func TestOrderService_CreateFromCart_ReadsCartInTransaction(t *testing.T) {
	buyer := uuid.New()
	inTx := mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Value(txMarker{}) != nil
	})

	f := newFixture(t)
	f.tx = txMocks.NewMockManager(t)
	f.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(context.WithValue(ctx, txMarker{}, true))
		}).Once()
	f.build(cache.NewLRUCache[uuid.UUID, string](16, time.Minute))

	cart := cartOf(buyer, cartItem(product(10, "USD"), 2))
	f.carts.EXPECT().GetDetailedCartForBuyer(inTx, buyer).Return(cart, nil).Once()
	f.orders.EXPECT().Add(inTx, mock.Anything).Return(nil).Once()
	f.carts.EXPECT().ClearCart(inTx, cart.ID).Return(nil).Once()
	f.notifier.EXPECT().NotifyCreated(mock.Anything, mock.Anything).Return(nil).Once()

	view, err := f.svc.CreateFromCart(context.Background(), buyerActor(buyer), "")
	require.NoError(t, err)
	assert.True(t, dec(20).Equal(view.Total), "total %s", view.Total)
}

func TestOrderNumber(t *testing.T) {
	testCases := []struct {
		now  time.Time
		want string
	}{
		{now: time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.UTC), want: "ORD-20250102030405006"},
		{now: time.Date(2025, 12, 31, 23, 59, 59, 999_999_999, time.UTC), want: "ORD-20251231235959999"},
		{now: time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("UTC+3", 3*60*60)), want: "ORD-20250102000405000"},
	}

	pattern := regexp.MustCompile(`^ORD-\d{17}$`)
	for _, tc := range testCases {
		got := orderNumber(tc.now)
		assert.Equal(t, tc.want, got)
		assert.Regexp(t, pattern, got)
	}
}

func TestOrderService_ToExternalView_Images(t *testing.T) {
	withImages := product(10, "USD")
	withImages.Images = []entities.ProductImage{
		{URL: "https://cdn/late.png", UploadedAt: fixedNow},
		{URL: "https://cdn/first.png", UploadedAt: fixedNow.Add(-48 * time.Hour)},
		{URL: "https://cdn/middle.png", UploadedAt: fixedNow.Add(-24 * time.Hour)},
	}
	noImages := product(20, "USD")
	missing := uuid.New()
	broken := uuid.New()

	f := newFixture(t)
	products := f.withProducts(t, cache.NewLRUCache[uuid.UUID, string](16, time.Minute))
	products.EXPECT().GetByID(mock.Anything, withImages.ID).Return(*withImages, nil).Once()
	products.EXPECT().GetByID(mock.Anything, noImages.ID).Return(*noImages, nil).Once()
	products.EXPECT().GetByID(mock.Anything, missing).Return(entities.Product{}, entities.ErrProductNotFound).Once()
	products.EXPECT().GetByID(mock.Anything, broken).Return(entities.Product{}, errors.New("timeout")).Twice()

	order := newOrder(uuid.New(), entities.StatusApproved,
		lineItem(withImages.ID, 1, 10),
		lineItem(noImages.ID, 1, 20),
		lineItem(missing, 1, 5),
		lineItem(broken, 1, 5),
	)

	for range 2 {
		view := f.svc.ToExternalView(context.Background(), order)
		require.Len(t, view.Items, 4)
		assert.Equal(t, "https://cdn/first.png", view.Items[0].ImageURL)
		assert.Empty(t, view.Items[1].ImageURL)
		assert.Empty(t, view.Items[2].ImageURL)
		assert.Empty(t, view.Items[3].ImageURL)
		assert.True(t, order.Total.Equal(view.Total))
	}
}
