package commands

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"ordermail/internal/core/domain/model/rejection"
	"ordermail/internal/core/domain/model/tracker"
	"ordermail/internal/core/domain/services"
	"ordermail/internal/core/ports"
	"ordermail/internal/pkg/checksum"
)

// ProcessOrderStatusCommandHandler runs one rejection processing pass for an
// order.
//
// The pass is strictly sequential: normalize the report against the trackers
// loaded at pass start, place the order on model-fix hold exactly once before
// any send, then per aggregate and per material send one notification, record
// it on the tracker, and upsert the tracker. A failure inside one aggregate is
// logged and skipped so sibling produced items still get their notifications;
// a failed item-id lookup or an illegal hold transition aborts the whole pass.
//
// Callers must serialize passes per order id: the hold check-then-apply and
// the tracker read-modify-write assume at most one in-flight pass per order.
type ProcessOrderStatusCommandHandler struct {
	uowFactory  RejectionUoWFactory
	emailSender ports.OrderEmailSender
	normalizer  services.RejectionNormalizer
	logger      *slog.Logger
}

// NewProcessOrderStatusCommandHandler creates a handler for status report passes.
func NewProcessOrderStatusCommandHandler(
	uowFactory RejectionUoWFactory,
	emailSender ports.OrderEmailSender,
	logger *slog.Logger,
) ProcessOrderStatusCommandHandler {
	return ProcessOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		emailSender: emailSender,
		normalizer:  services.NewRejectionNormalizer(),
		logger:      logger.With("component", "order_status_processor"),
	}
}

// Handle processes one status report pass.
// A report with no newly observed rejections is a no-op: no hold, no sends,
// no tracker writes.
func (h *ProcessOrderStatusCommandHandler) Handle(ctx context.Context, cmd ProcessOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	trackerRepo := uow.RejectionTrackerRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	trackersByModelID, err := trackerRepo.GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregates, err := h.normalizer.Normalize(cmd.Report(), ord, trackersByModelID)
	if err != nil {
		return err
	}
	if len(aggregates) == 0 {
		return nil
	}

	// Hold state is a precondition for manual review: establish it once,
	// before any notification goes out.
	if err = ord.PlaceModelFixHold(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	for i, aggregate := range aggregates {
		// A failed statement aborts the enclosing postgres transaction, which
		// would fail the sibling aggregates' upserts and the final commit.
		// A savepoint per aggregate contains the damage to that aggregate.
		savepoint := fmt.Sprintf("model_rejection_%d", i)
		if err = uow.SavePoint(ctx, savepoint); err != nil {
			return err
		}

		dispatchErr := h.dispatchAggregate(ctx, trackerRepo, trackersByModelID, aggregate)
		if dispatchErr == nil {
			continue
		}

		if err = uow.RollbackTo(ctx, savepoint); err != nil {
			return err
		}
		h.logger.ErrorContext(ctx, "Rejection notification failed, continuing with next model",
			"orderId", cmd.OrderID().String(),
			"modelId", aggregate.Model().ModelID(),
			"error", dispatchErr,
			"stack", string(debug.Stack()),
		)
	}

	return uow.Commit(ctx)
}

// dispatchAggregate sends the notifications of one produced item and records
// them on its tracker. Panics are converted to errors so one corrupt aggregate
// cannot take down the sibling aggregates of the pass.
func (h *ProcessOrderStatusCommandHandler) dispatchAggregate(
	ctx context.Context,
	trackerRepo ports.RejectionTrackerRepository,
	trackersByModelID map[string]*tracker.RejectionEmailTracker,
	aggregate *rejection.ModelRejection,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while dispatching rejection: %v\n%s", r, debug.Stack())
		}
	}()

	modelID := aggregate.Model().ModelID()
	orderID := aggregate.Order().ID()

	emailTracker := trackersByModelID[modelID]
	if emailTracker == nil {
		emailTracker, err = tracker.NewRejectionEmailTracker(orderID, modelID)
		if err != nil {
			return err
		}
		trackersByModelID[modelID] = emailTracker
	}

	// Deviation ids accumulate across the aggregate's materials; the tracker
	// merge is a set union, so re-passing earlier ids is harmless.
	var newDeviationIDs []string

	for _, material := range aggregate.Model().Materials() {
		newDeviationIDs = append(newDeviationIDs, material.DeviationIDs()...)

		rejectionKey := checksum.MD5Hex(fmt.Sprintf("%s.%s", modelID, orderID.String()))
		aggregate.SetRejectionKey(rejectionKey)

		if err = h.emailSender.SendModelRejection(ctx, aggregate, material); err != nil {
			return err
		}

		emailTracker.RecordSent(newDeviationIDs, aggregate.OrderItemIDs(), rejectionKey)
		if err = trackerRepo.SaveOrUpdate(ctx, emailTracker); err != nil {
			return err
		}
	}

	return nil
}
