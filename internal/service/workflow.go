package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/pricing"
	"github.com/google/uuid"
)

type Operation string

const (
	OpApprove             Operation = "approve"
	OpReject              Operation = "reject"
	OpConfirm             Operation = "confirm"
	OpCancel              Operation = "cancel"
	OpMarkReady           Operation = "mark_ready"
	OpComplete            Operation = "complete"
	OpModify              Operation = "modify"
	OpAcceptModifications Operation = "accept_modifications"
	OpRejectModifications Operation = "reject_modifications"
)

type transitionKey struct {
	from entities.Status
	op   Operation
}

// transitions is the only place order status edges are defined.
var transitions = map[transitionKey]entities.Status{
	{entities.StatusPendingApproval, OpApprove}: entities.StatusApproved,
	{entities.StatusPendingApproval, OpReject}:  entities.StatusRejected,
	{entities.StatusPendingApproval, OpModify}:  entities.StatusModificationPending,
	{entities.StatusPendingApproval, OpCancel}:  entities.StatusCancelled,

	{entities.StatusApproved, OpConfirm}:   entities.StatusConfirmed,
	{entities.StatusApproved, OpMarkReady}: entities.StatusReadyForPickup,
	{entities.StatusApproved, OpCancel}:    entities.StatusCancelled,

	{entities.StatusConfirmed, OpMarkReady}: entities.StatusReadyForPickup,
	{entities.StatusConfirmed, OpCancel}:    entities.StatusCancelled,

	{entities.StatusReadyForPickup, OpComplete}: entities.StatusCompleted,

	{entities.StatusModificationPending, OpAcceptModifications}: entities.StatusApproved,
	{entities.StatusModificationPending, OpRejectModifications}: entities.StatusCancelled,
	{entities.StatusModificationPending, OpCancel}:              entities.StatusCancelled,
}

type actorRule int

const (
	adminOnly actorRule = iota
	ownerOnly
)

var operationActors = map[Operation]actorRule{
	OpApprove:             adminOnly,
	OpReject:              adminOnly,
	OpMarkReady:           adminOnly,
	OpComplete:            adminOnly,
	OpModify:              adminOnly,
	OpConfirm:             ownerOnly,
	OpCancel:              ownerOnly,
	OpAcceptModifications: ownerOnly,
	OpRejectModifications: ownerOnly,
}

// NextStatus reports where op leads from the given status.
func NextStatus(from entities.Status, op Operation) (entities.Status, bool) {
	next, ok := transitions[transitionKey{from, op}]
	return next, ok
}

type mutation func(o *entities.Order, stamp entities.Stamp) error

// transition loads the order, checks the actor and current status, applies mutate,
// persists the result and notifies. Nothing is persisted or notified on error.
func (s *orderService) transition(ctx context.Context, actor entities.Actor, orderID uuid.UUID, op Operation, mutate mutation) (entities.OrderView, error) {
	rule := operationActors[op]
	if rule == adminOnly && !actor.IsAdmin() {
		return entities.OrderView{}, fmt.Errorf("%w: %s requires an admin", entities.ErrForbidden, op)
	}

	loaded, err := s.load(ctx, orderID)
	if err != nil {
		return entities.OrderView{}, err
	}

	if rule == ownerOnly && actor.ID != loaded.BuyerID {
		return entities.OrderView{}, fmt.Errorf("%w: only the buyer may %s this order", entities.ErrForbidden, op)
	}

	next, ok := NextStatus(loaded.Status, op)
	if !ok {
		return entities.OrderView{}, fmt.Errorf("%w: cannot %s an order in status %s", entities.ErrValidation, op, loaded.Status)
	}

	order := loaded.Clone()
	now := s.now()
	if mutate != nil {
		if err := mutate(&order, entities.Stamp{By: actor.ID, At: now}); err != nil {
			return entities.OrderView{}, err
		}
	}
	order.Status = next
	order.UpdatedAt = now

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.orders.Update(ctx, order)
	})
	if errors.Is(err, entities.ErrConflict) {
		return entities.OrderView{}, err
	}
	if err != nil {
		return entities.OrderView{}, fmt.Errorf("failed to update order: %w", err)
	}
	order.Version++

	s.logger.DebugContext(ctx, "order transitioned",
		slog.String("order_id", order.ID.String()),
		slog.String("number", order.Number),
		slog.String("operation", string(op)),
		slog.String("from", loaded.Status.String()),
		slog.String("to", order.Status.String()),
	)

	view := s.ToExternalView(ctx, order)
	s.notify(ctx, false, view)
	return view, nil
}

func (s *orderService) Approve(ctx context.Context, actor entities.Actor, orderID uuid.UUID, note string) (entities.OrderView, error) {
	return s.transition(ctx, actor, orderID, OpApprove, func(o *entities.Order, st entities.Stamp) error {
		o.Approved = &st
		setIfPresent(&o.AdminNotes, note)
		return nil
	})
}

func (s *orderService) Reject(ctx context.Context, actor entities.Actor, orderID uuid.UUID, reason string) (entities.OrderView, error) {
	return s.transition(ctx, actor, orderID, OpReject, func(o *entities.Order, st entities.Stamp) error {
		r, err := requireReason(reason)
		if err != nil {
			return err
		}
		o.RejectionReason = r
		o.Rejected = &st
		return nil
	})
}

func (s *orderService) Confirm(ctx context.Context, actor entities.Actor, orderID uuid.UUID, note string) (entities.OrderView, error) {
	return s.transition(ctx, actor, orderID, OpConfirm, func(o *entities.Order, st entities.Stamp) error {
		o.Confirmed = &st
		setIfPresent(&o.UserNotes, note)
		return nil
	})
}

func (s *orderService) Cancel(ctx context.Context, actor entities.Actor, orderID uuid.UUID, reason string) (entities.OrderView, error) {
	return s.transition(ctx, actor, orderID, OpCancel, func(o *entities.Order, st entities.Stamp) error {
		r, err := requireReason(reason)
		if err != nil {
			return err
		}
		o.CancellationReason = r
		o.Cancelled = &st
		return nil
	})
}

func (s *orderService) MarkReady(ctx context.Context, actor entities.Actor, orderID uuid.UUID, note string) (entities.OrderView, error) {
	return s.transition(ctx, actor, orderID, OpMarkReady, func(o *entities.Order, st entities.Stamp) error {
		o.Ready = &st
		setIfPresent(&o.AdminNotes, note)
		return nil
	})
}

func (s *orderService) Complete(ctx context.Context, actor entities.Actor, orderID uuid.UUID, note string) (entities.OrderView, error) {
	return s.transition(ctx, actor, orderID, OpComplete, func(o *entities.Order, st entities.Stamp) error {
		o.Completed = &st
		setIfPresent(&o.AdminNotes, note)
		return nil
	})
}

// Modify rewrites line quantities before approval. Discount percentages granted at
// checkout are kept as is and are not re-evaluated against the new quantities.
func (s *orderService) Modify(ctx context.Context, actor entities.Actor, orderID uuid.UUID, changes []entities.QuantityChange, reason string) (entities.OrderView, error) {
	return s.transition(ctx, actor, orderID, OpModify, func(o *entities.Order, st entities.Stamp) error {
		r, err := requireReason(reason)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			return fmt.Errorf("%w: at least one item modification is required", entities.ErrValidation)
		}

		total := o.Total
		o.OriginalTotal = &total

		if err := applyQuantityChanges(o, changes); err != nil {
			return err
		}

		o.ModificationReason = r
		o.Modified = &st
		return nil
	})
}

func (s *orderService) AcceptModifications(ctx context.Context, actor entities.Actor, orderID uuid.UUID) (entities.OrderView, error) {
	return s.transition(ctx, actor, orderID, OpAcceptModifications, func(o *entities.Order, st entities.Stamp) error {
		for i := range o.Items {
			o.Items[i].OriginalQuantity = nil
		}
		o.OriginalTotal = nil
		o.Approved = &st
		return nil
	})
}

func (s *orderService) RejectModifications(ctx context.Context, actor entities.Actor, orderID uuid.UUID, reason string) (entities.OrderView, error) {
	return s.transition(ctx, actor, orderID, OpRejectModifications, func(o *entities.Order, st entities.Stamp) error {
		r, err := requireReason(reason)
		if err != nil {
			return err
		}
		o.CancellationReason = "buyer rejected modifications: " + r
		o.Cancelled = &st
		return nil
	})
}

func applyQuantityChanges(o *entities.Order, changes []entities.QuantityChange) error {
	for _, ch := range changes {
		if ch.Quantity < 0 {
			return fmt.Errorf("%w: quantity for product %s must not be negative", entities.ErrValidation, ch.ProductID)
		}

		idx := slices.IndexFunc(o.Items, func(it entities.OrderItem) bool {
			return it.ProductID == ch.ProductID
		})
		if idx < 0 {
			return fmt.Errorf("%w: product %s is not part of the order", entities.ErrValidation, ch.ProductID)
		}

		item := &o.Items[idx]
		if item.OriginalQuantity == nil {
			q := item.Quantity
			item.OriginalQuantity = &q
		}
		item.Quantity = ch.Quantity
		item.LineTotal = pricing.LineTotal(item.UnitPriceWithDiscount, ch.Quantity)
	}

	o.Items = slices.DeleteFunc(o.Items, func(it entities.OrderItem) bool {
		return it.Quantity == 0
	})
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: modification would leave the order empty, reject it instead", entities.ErrValidation)
	}

	o.RecalculateTotals()
	return nil
}

func requireReason(reason string) (string, error) {
	r := strings.TrimSpace(reason)
	if r == "" {
		return "", fmt.Errorf("%w: reason is required", entities.ErrValidation)
	}
	return r, nil
}

func setIfPresent(dst *string, note string) {
	if n := strings.TrimSpace(note); n != "" {
		*dst = n
	}
}
