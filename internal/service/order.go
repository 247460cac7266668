package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"
	"github.com/google/uuid"
)

type OrderRepo interface {
	Add(ctx context.Context, o entities.Order) error
	// Update fails with entities.ErrConflict when o.Version is stale.
	Update(ctx context.Context, o entities.Order) error
	GetDetailedByID(ctx context.Context, id uuid.UUID) (entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) (entities.Page[entities.Order], error)
}

type CartRepo interface {
	GetDetailedCartForBuyer(ctx context.Context, buyerID uuid.UUID) (entities.Cart, error)
	ClearCart(ctx context.Context, cartID uuid.UUID) error
}

type ProductRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (entities.Product, error)
}

type Notifier interface {
	NotifyCreated(ctx context.Context, order entities.OrderView) error
	NotifyUpdated(ctx context.Context, order entities.OrderView) error
}

// Cache holds representative image urls by product id. An empty url means the product has none.
type Cache interface {
	Get(productID uuid.UUID) (string, bool)
	Set(productID uuid.UUID, url string)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// keeps (page-1)*page_size far below the bigint OFFSET limit
	maxPage = 100_000
)

var loadRetry = utils.RetryConfig{
	InitialDelay: 50 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	carts     CartRepo
	products  ProductRepo
	notifier  Notifier
	cache     Cache

	clock func() time.Time
	newID func() uuid.UUID
}

type Option func(*orderService)

func WithClock(clock func() time.Time) Option {
	return func(s *orderService) {
		s.clock = clock
	}
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	carts CartRepo,
	products ProductRepo,
	notifier Notifier,
	cache Cache,
	opts ...Option,
) *orderService {
	s := &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		carts:     carts,
		products:  products,
		notifier:  notifier,
		cache:     cache,
		clock:     time.Now,
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *orderService) GetOrder(ctx context.Context, actor entities.Actor, orderID uuid.UUID) (entities.OrderView, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return entities.OrderView{}, err
	}
	if !actor.IsAdmin() && actor.ID != order.BuyerID {
		return entities.OrderView{}, fmt.Errorf("%w: order belongs to another buyer", entities.ErrForbidden)
	}
	return s.ToExternalView(ctx, order), nil
}

func (s *orderService) ListOrders(ctx context.Context, actor entities.Actor, filter entities.OrderFilter) (entities.Page[entities.OrderView], error) {
	filter, err := normalizeFilter(actor, filter)
	if err != nil {
		return entities.Page[entities.OrderView]{}, err
	}

	page, err := s.orders.List(ctx, filter)
	if err != nil {
		return entities.Page[entities.OrderView]{}, fmt.Errorf("failed to list orders: %w", err)
	}

	views := make([]entities.OrderView, 0, len(page.Items))
	for _, o := range page.Items {
		views = append(views, s.ToExternalView(ctx, o))
	}

	return entities.Page[entities.OrderView]{
		Items:    views,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// normalizeFilter scopes non-admins to their own orders and fills paging defaults.
func normalizeFilter(actor entities.Actor, f entities.OrderFilter) (entities.OrderFilter, error) {
	if !actor.IsAdmin() {
		f.AllBuyers = false
		f.BuyerID = actor.ID
	} else if !f.AllBuyers && f.BuyerID == uuid.Nil {
		f.BuyerID = actor.ID
	}

	if f.Status != nil && !f.Status.Valid() {
		return f, fmt.Errorf("%w: unknown status %q", entities.ErrValidation, *f.Status)
	}
	if f.CreatedFrom != nil && f.CreatedTo != nil && f.CreatedFrom.After(*f.CreatedTo) {
		return f, fmt.Errorf("%w: created_from is after created_to", entities.ErrValidation)
	}

	switch f.SortBy {
	case "":
		f.SortBy = entities.SortByCreatedAt
	case entities.SortByCreatedAt, entities.SortByTotal, entities.SortByNumber, entities.SortByStatus:
	default:
		return f, fmt.Errorf("%w: unknown sort field %q", entities.ErrValidation, f.SortBy)
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > maxPage {
		return f, fmt.Errorf("%w: page must not exceed %d", entities.ErrValidation, maxPage)
	}
	if f.PageSize <= 0 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	return f, nil
}

func (s *orderService) load(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetDetailedByID(ctx, orderID)
		return err
	}

	err := utils.Retry(ctx, loadRetry, fn, entities.ErrOrderNotFound)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, err
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load order: %w", err)
	}
	return order, nil
}

func (s *orderService) now() time.Time {
	return s.clock().UTC()
}

// notify failures are logged, never returned: the transition is already committed.
func (s *orderService) notify(ctx context.Context, created bool, view entities.OrderView) {
	var err error
	event := eventUpdated
	if created {
		event = eventCreated
		err = s.notifier.NotifyCreated(ctx, view)
	} else {
		err = s.notifier.NotifyUpdated(ctx, view)
	}
	if err != nil {
		notificationsDropped.WithLabelValues(event).Inc()
		s.logger.ErrorContext(ctx, "failed to notify",
			slog.Any("error", err),
			slog.String("event", event),
			slog.String("order_id", view.ID.String()),
			slog.String("status", view.Status.String()),
		)
	}
}
