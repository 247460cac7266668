package service

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type operationFunc func(s *orderService, actor entities.Actor, orderID uuid.UUID) (entities.OrderView, error)

func operations(productID uuid.UUID) map[Operation]operationFunc {
	ctx := context.Background()
	return map[Operation]operationFunc{
		OpApprove: func(s *orderService, a entities.Actor, id uuid.UUID) (entities.OrderView, error) {
			return s.Approve(ctx, a, id, "")
		},
		OpReject: func(s *orderService, a entities.Actor, id uuid.UUID) (entities.OrderView, error) {
			return s.Reject(ctx, a, id, "out of stock")
		},
		OpConfirm: func(s *orderService, a entities.Actor, id uuid.UUID) (entities.OrderView, error) {
			return s.Confirm(ctx, a, id, "")
		},
		OpCancel: func(s *orderService, a entities.Actor, id uuid.UUID) (entities.OrderView, error) {
			return s.Cancel(ctx, a, id, "changed my mind")
		},
		OpMarkReady: func(s *orderService, a entities.Actor, id uuid.UUID) (entities.OrderView, error) {
			return s.MarkReady(ctx, a, id, "")
		},
		OpComplete: func(s *orderService, a entities.Actor, id uuid.UUID) (entities.OrderView, error) {
			return s.Complete(ctx, a, id, "")
		},
		OpModify: func(s *orderService, a entities.Actor, id uuid.UUID) (entities.OrderView, error) {
			return s.Modify(ctx, a, id, []entities.QuantityChange{{ProductID: productID, Quantity: 3}}, "stock shortage")
		},
		OpAcceptModifications: func(s *orderService, a entities.Actor, id uuid.UUID) (entities.OrderView, error) {
			return s.AcceptModifications(ctx, a, id)
		},
		OpRejectModifications: func(s *orderService, a entities.Actor, id uuid.UUID) (entities.OrderView, error) {
			return s.RejectModifications(ctx, a, id, "too few")
		},
	}
}

func TestTransitionTable(t *testing.T) {
	want := map[transitionKey]entities.Status{
		{entities.StatusPendingApproval, OpApprove}:                 entities.StatusApproved,
		{entities.StatusPendingApproval, OpReject}:                  entities.StatusRejected,
		{entities.StatusPendingApproval, OpModify}:                  entities.StatusModificationPending,
		{entities.StatusPendingApproval, OpCancel}:                  entities.StatusCancelled,
		{entities.StatusApproved, OpConfirm}:                        entities.StatusConfirmed,
		{entities.StatusApproved, OpMarkReady}:                      entities.StatusReadyForPickup,
		{entities.StatusApproved, OpCancel}:                         entities.StatusCancelled,
		{entities.StatusConfirmed, OpMarkReady}:                     entities.StatusReadyForPickup,
		{entities.StatusConfirmed, OpCancel}:                        entities.StatusCancelled,
		{entities.StatusReadyForPickup, OpComplete}:                 entities.StatusCompleted,
		{entities.StatusModificationPending, OpAcceptModifications}: entities.StatusApproved,
		{entities.StatusModificationPending, OpRejectModifications}: entities.StatusCancelled,
		{entities.StatusModificationPending, OpCancel}:              entities.StatusCancelled,
	}

	for op := range operations(uuid.Nil) {
		for _, from := range entities.Statuses {
			got, ok := NextStatus(from, op)
			expected, expectedOK := want[transitionKey{from, op}]
			assert.Equal(t, expectedOK, ok, "%s from %s", op, from)
			assert.Equal(t, expected, got, "%s from %s", op, from)
		}
	}

	for _, terminal := range []entities.Status{entities.StatusCancelled, entities.StatusRejected, entities.StatusCompleted} {
		for op := range operations(uuid.Nil) {
			_, ok := NextStatus(terminal, op)
			assert.False(t, ok, "%s must be terminal, %s allowed", terminal, op)
		}
	}
}

func TestWorkflow_StatusPreconditions(t *testing.T) {
	buyer := uuid.New()
	productID := uuid.New()
	admin := adminActor()

	for op, run := range operations(productID) {
		for _, from := range entities.Statuses {
			t.Run(string(op)+"/"+from.String(), func(t *testing.T) {
				f := newFixture(t)
				order := newOrder(buyer, from, lineItem(productID, 5, 100))
				f.orders.EXPECT().GetDetailedByID(mock.Anything, order.ID).Return(order, nil).Once()

				actor := buyerActor(buyer)
				if operationActors[op] == adminOnly {
					actor = admin
				}

				next, allowed := NextStatus(from, op)
				if allowed {
					f.orders.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
					f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(nil).Once()
				}

				got, err := run(f.svc, actor, order.ID)
				if !allowed {
					assert.ErrorIs(t, err, entities.ErrValidation)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, next, got.Status)
				assert.Equal(t, fixedNow, got.UpdatedAt)
			})
		}
	}
}

func TestWorkflow_AdminOnlyRejectsBuyers(t *testing.T) {
	buyer := uuid.New()
	productID := uuid.New()
	ops := operations(productID)

	for _, op := range []Operation{OpApprove, OpReject, OpMarkReady, OpComplete, OpModify} {
		t.Run(string(op), func(t *testing.T) {
			f := newFixture(t)

			_, err := ops[op](f.svc, buyerActor(buyer), uuid.New())
			assert.ErrorIs(t, err, entities.ErrForbidden)
		})
	}
}

func TestWorkflow_OwnerOnlyRejectsOthers(t *testing.T) {
	buyer := uuid.New()
	productID := uuid.New()
	ops := operations(productID)

	testCases := []struct {
		op     Operation
		status entities.Status
	}{
		{OpConfirm, entities.StatusApproved},
		{OpCancel, entities.StatusPendingApproval},
		{OpCancel, entities.StatusConfirmed},
		{OpAcceptModifications, entities.StatusModificationPending},
		{OpRejectModifications, entities.StatusModificationPending},
	}

	for _, tc := range testCases {
		for name, actor := range map[string]entities.Actor{
			"other buyer": buyerActor(uuid.New()),
			"admin":       adminActor(),
		} {
			t.Run(string(tc.op)+"/"+name, func(t *testing.T) {
				f := newFixture(t)
				order := newOrder(buyer, tc.status, lineItem(productID, 5, 100))
				f.orders.EXPECT().GetDetailedByID(mock.Anything, order.ID).Return(order, nil).Once()

				_, err := ops[tc.op](f.svc, actor, order.ID)
				assert.ErrorIs(t, err, entities.ErrForbidden)
			})
		}
	}
}

func TestWorkflow_ReasonRequired(t *testing.T) {
	buyer := uuid.New()
	ctx := context.Background()

	testCases := []struct {
		name   string
		status entities.Status
		run    func(s *orderService, id uuid.UUID) error
	}{
		{
			name:   "reject",
			status: entities.StatusPendingApproval,
			run: func(s *orderService, id uuid.UUID) error {
				_, err := s.Reject(ctx, adminActor(), id, "  ")
				return err
			},
		},
		{
			name:   "cancel",
			status: entities.StatusApproved,
			run: func(s *orderService, id uuid.UUID) error {
				_, err := s.Cancel(ctx, buyerActor(buyer), id, "")
				return err
			},
		},
		{
			name:   "reject modifications",
			status: entities.StatusModificationPending,
			run: func(s *orderService, id uuid.UUID) error {
				_, err := s.RejectModifications(ctx, buyerActor(buyer), id, "")
				return err
			},
		},
		{
			name:   "modify",
			status: entities.StatusPendingApproval,
			run: func(s *orderService, id uuid.UUID) error {
				_, err := s.Modify(ctx, adminActor(), id, []entities.QuantityChange{{ProductID: uuid.New(), Quantity: 1}}, "")
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			order := newOrder(buyer, tc.status, lineItem(uuid.New(), 1, 100))
			f.orders.EXPECT().GetDetailedByID(mock.Anything, order.ID).Return(order, nil).Once()

			assert.ErrorIs(t, tc.run(f.svc, order.ID), entities.ErrValidation)
		})
	}
}

func TestWorkflow_StampsAndNotes(t *testing.T) {
	buyer := uuid.New()
	admin := adminActor()
	ctx := context.Background()

	f := newFixture(t)
	current := f.stored(newOrder(buyer, entities.StatusPendingApproval, lineItem(uuid.New(), 2, 50)))
	f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(nil).Times(4)

	_, err := f.svc.Approve(ctx, admin, current.ID, "packed by Anna")
	require.NoError(t, err)
	_, err = f.svc.Confirm(ctx, buyerActor(buyer), current.ID, "pick up after 6pm")
	require.NoError(t, err)
	_, err = f.svc.MarkReady(ctx, admin, current.ID, "")
	require.NoError(t, err)
	view, err := f.svc.Complete(ctx, admin, current.ID, "handed over")
	require.NoError(t, err)

	assert.Equal(t, entities.StatusCompleted, view.Status)
	assert.Equal(t, "handed over", view.AdminNotes)
	assert.Equal(t, "pick up after 6pm", view.UserNotes)
	require.NotNil(t, current.Approved)
	assert.Equal(t, admin.ID, current.Approved.By)
	require.NotNil(t, current.Confirmed)
	assert.Equal(t, buyer, current.Confirmed.By)
	require.NotNil(t, current.Ready)
	require.NotNil(t, current.Completed)
	assert.Equal(t, fixedNow, current.Completed.At)
	assert.Equal(t, 5, current.Version)
}

func TestWorkflow_Reject(t *testing.T) {
	buyer := uuid.New()
	admin := adminActor()

	f := newFixture(t)
	current := f.stored(newOrder(buyer, entities.StatusPendingApproval, lineItem(uuid.New(), 2, 50)))
	f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(nil).Once()

	view, err := f.svc.Reject(context.Background(), admin, current.ID, " discontinued ")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusRejected, view.Status)
	assert.Equal(t, "discontinued", view.RejectionReason)
	require.NotNil(t, view.Rejected)
	assert.Equal(t, admin.ID, view.Rejected.By)

	_, err = f.svc.Approve(context.Background(), admin, current.ID, "")
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestWorkflow_ApproveTwiceFails(t *testing.T) {
	admin := adminActor()

	f := newFixture(t)
	current := f.stored(newOrder(uuid.New(), entities.StatusPendingApproval, lineItem(uuid.New(), 2, 50)))
	f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.svc.Approve(context.Background(), admin, current.ID, "")
	require.NoError(t, err)

	_, err = f.svc.Approve(context.Background(), admin, current.ID, "")
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestWorkflow_NotFound(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.orders.EXPECT().GetDetailedByID(mock.Anything, id).Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	_, err := f.svc.Approve(context.Background(), adminActor(), id, "")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestWorkflow_PersistenceFailure(t *testing.T) {
	buyer := uuid.New()
	dbErr := errors.New("db error")

	testCases := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "conflict", repoErr: entities.ErrConflict, wantErr: entities.ErrConflict},
		{name: "db error", repoErr: dbErr, wantErr: dbErr},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			order := newOrder(buyer, entities.StatusApproved, lineItem(uuid.New(), 2, 50))
			f.orders.EXPECT().GetDetailedByID(mock.Anything, order.ID).Return(order, nil).Once()
			f.orders.EXPECT().Update(mock.Anything, mock.Anything).Return(tc.repoErr).Once()

			_, err := f.svc.Confirm(context.Background(), buyerActor(buyer), order.ID, "")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestWorkflow_NotifyFailureDoesNotFailTransition(t *testing.T) {
	buyer := uuid.New()

	f := newFixture(t)
	current := f.stored(newOrder(buyer, entities.StatusApproved, lineItem(uuid.New(), 2, 50)))
	f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	dropped := droppedNotifications(t, eventUpdated)

	view, err := f.svc.Confirm(context.Background(), buyerActor(buyer), current.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusConfirmed, view.Status)
	assert.Equal(t, entities.StatusConfirmed, current.Status)
	assert.Equal(t, dropped+1, droppedNotifications(t, eventUpdated))
}

func TestWorkflow_Modify(t *testing.T) {
	buyer := uuid.New()
	admin := adminActor()
	productA := uuid.New()
	productB := uuid.New()

	t.Run("reduces quantity", func(t *testing.T) {
		f := newFixture(t)
		current := f.stored(newOrder(buyer, entities.StatusPendingApproval, lineItem(productA, 5, 100)))
		f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(nil).Once()

		view, err := f.svc.Modify(context.Background(), admin, current.ID,
			[]entities.QuantityChange{{ProductID: productA, Quantity: 3}}, "stock shortage")
		require.NoError(t, err)

		assert.Equal(t, entities.StatusModificationPending, view.Status)
		assert.Equal(t, "stock shortage", view.ModificationReason)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 3, view.Items[0].Quantity)
		require.NotNil(t, view.Items[0].OriginalQuantity)
		assert.Equal(t, 5, *view.Items[0].OriginalQuantity)
		assert.True(t, dec(300).Equal(view.Total), "total %s", view.Total)
		require.NotNil(t, view.OriginalTotal)
		assert.True(t, dec(500).Equal(*view.OriginalTotal), "original total %s", view.OriginalTotal)
		require.NotNil(t, current.Modified)
		assert.Equal(t, admin.ID, current.Modified.By)
	})

	t.Run("zero quantity removes line", func(t *testing.T) {
		f := newFixture(t)
		current := f.stored(newOrder(buyer, entities.StatusPendingApproval,
			lineItem(productA, 5, 100), lineItem(productB, 3, 100)))
		f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(nil).Once()

		view, err := f.svc.Modify(context.Background(), admin, current.ID,
			[]entities.QuantityChange{{ProductID: productA, Quantity: 0}}, "discontinued")
		require.NoError(t, err)

		require.Len(t, view.Items, 1)
		assert.Equal(t, productB, view.Items[0].ProductID)
		assert.True(t, dec(300).Equal(view.Total), "total %s", view.Total)
		assert.True(t, dec(300).Equal(view.Subtotal), "subtotal %s", view.Subtotal)
		assert.True(t, view.DiscountTotal.IsZero())
		require.Len(t, current.Items, 1)
	})

	t.Run("keeps first original quantity", func(t *testing.T) {
		f := newFixture(t)
		current := f.stored(newOrder(buyer, entities.StatusPendingApproval, lineItem(productA, 5, 100)))
		f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(nil).Once()

		view, err := f.svc.Modify(context.Background(), admin, current.ID,
			[]entities.QuantityChange{{ProductID: productA, Quantity: 4}, {ProductID: productA, Quantity: 2}}, "shortage")
		require.NoError(t, err)
		assert.Equal(t, 2, view.Items[0].Quantity)
		assert.Equal(t, 5, *view.Items[0].OriginalQuantity)
	})

	t.Run("line total stays at stored scale", func(t *testing.T) {
		f := newFixture(t)
		item := lineItem(productA, 5, 10)
		item.UnitPrice = decimal.RequireFromString("9.99")
		item.DiscountPercent = decimal.RequireFromString("33.33")
		item.UnitPriceWithDiscount = decimal.RequireFromString("6.660333")
		current := f.stored(newOrder(buyer, entities.StatusPendingApproval, item))
		f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(nil).Once()

		view, err := f.svc.Modify(context.Background(), admin, current.ID,
			[]entities.QuantityChange{{ProductID: productA, Quantity: 3}}, "shortage")
		require.NoError(t, err)

		assert.Equal(t, "19.9809", view.Items[0].LineTotal.String())
		assert.True(t, view.Total.Equal(view.Items[0].LineTotal), "total %s", view.Total)
	})

	invalid :=[]struct {
		name    string
		changes []entities.QuantityChange
	}{
		{name: "empties the order", changes: []entities.QuantityChange{{ProductID: productA, Quantity: 0}, {ProductID: productB, Quantity: 0}}},
		{name: "negative quantity", changes: []entities.QuantityChange{{ProductID: productA, Quantity: -1}}},
		{name: "unknown product", changes: []entities.QuantityChange{{ProductID: uuid.New(), Quantity: 1}}},
		{name: "no changes", changes: nil},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			order := newOrder(buyer, entities.StatusPendingApproval, lineItem(productA, 5, 100), lineItem(productB, 3, 100))
			f.orders.EXPECT().GetDetailedByID(mock.Anything, order.ID).Return(order, nil).Once()

			_, err := f.svc.Modify(context.Background(), admin, order.ID, tc.changes, "shortage")
			assert.ErrorIs(t, err, entities.ErrValidation)

			require.Len(t, order.Items, 2)
			assert.Equal(t, 5, order.Items[0].Quantity)
			assert.Nil(t, order.Items[0].OriginalQuantity)
			assert.Nil(t, order.OriginalTotal)
			assert.Equal(t, entities.StatusPendingApproval, order.Status)
		})
	}
}

func TestWorkflow_ModifyThenAccept(t *testing.T) {
	buyer := uuid.New()
	productA := uuid.New()
	productB := uuid.New()

	f := newFixture(t)
	current := f.stored(newOrder(buyer, entities.StatusPendingApproval, lineItem(productA, 5, 100), lineItem(productB, 2, 40)))
	f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(nil).Twice()

	_, err := f.svc.Modify(context.Background(), adminActor(), current.ID,
		[]entities.QuantityChange{{ProductID: productA, Quantity: 2}, {ProductID: productB, Quantity: 1}}, "shortage")
	require.NoError(t, err)

	view, err := f.svc.AcceptModifications(context.Background(), buyerActor(buyer), current.ID)
	require.NoError(t, err)

	assert.Equal(t, entities.StatusApproved, view.Status)
	assert.Nil(t, view.OriginalTotal)
	for _, it := range view.Items {
		assert.Nil(t, it.OriginalQuantity)
	}
	assert.True(t, dec(240).Equal(view.Total), "total %s", view.Total)
	assert.Nil(t, current.OriginalTotal)
	require.NotNil(t, current.Approved)
	assert.Equal(t, buyer, current.Approved.By)
}

func TestWorkflow_ModifyThenReject(t *testing.T) {
	buyer := uuid.New()
	productA := uuid.New()

	f := newFixture(t)
	current := f.stored(newOrder(buyer, entities.StatusPendingApproval, lineItem(productA, 5, 100)))
	f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything).Return(nil).Twice()

	_, err := f.svc.Modify(context.Background(), adminActor(), current.ID,
		[]entities.QuantityChange{{ProductID: productA, Quantity: 1}}, "shortage")
	require.NoError(t, err)

	view, err := f.svc.RejectModifications(context.Background(), buyerActor(buyer), current.ID, "need all five")
	require.NoError(t, err)

	assert.Equal(t, entities.StatusCancelled, view.Status)
	assert.Contains(t, view.CancellationReason, "need all five")
	assert.Equal(t, "buyer rejected modifications: need all five", view.CancellationReason)
	require.NotNil(t, current.Cancelled)
	assert.Equal(t, buyer, current.Cancelled.By)
}
