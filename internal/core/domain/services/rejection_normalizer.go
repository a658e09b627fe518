package services

import (
	"fmt"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/order"
	"ordermail/internal/core/domain/model/rejection"
	"ordermail/internal/core/domain/model/statusreport"
	"ordermail/internal/core/domain/model/tracker"
	"ordermail/internal/pkg/errs"
)

// RejectionNormalizer is a domain service that converts the partner's nested
// order-status report into per-produced-item rejection aggregates, suppressing
// reasons that earlier passes already notified.
//
// Key behaviors:
//   - Report entries missing a model id or a rejection node are skipped;
//     heterogeneous reports are expected, not an error
//   - A reason whose non-empty deviation id is already tracked is discarded;
//     reasons with an empty deviation id are always kept
//   - A material with no unseen reasons contributes nothing
//   - Materials for an already-seen model id append to its aggregate
//   - A report entry whose (model, material) pair has no matching order item
//     fails the whole pass: item attribution would be undefined
//
// An empty result means "nothing to notify" and is not an error.
type RejectionNormalizer struct{}

// NewRejectionNormalizer creates a new RejectionNormalizer instance.
func NewRejectionNormalizer() RejectionNormalizer {
	return RejectionNormalizer{}
}

// Normalize walks the status report and returns the rejection aggregates for
// the order, one per distinct model id, in first-seen report order.
//
// trackersByModelID holds the notification history loaded at pass start; it
// is consulted for suppression but never mutated here. Within one pass,
// materials of the same model do not suppress each other — only history
// counts, matching the dispatch loop's per-material recording.
func (n RejectionNormalizer) Normalize(
	report *statusreport.OrderStatus,
	ord *order.Order,
	trackersByModelID map[string]*tracker.RejectionEmailTracker,
) ([]*rejection.ModelRejection, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if report == nil {
		return nil, nil
	}

	itemIDByVariantKey := orderItemIDByVariantKey(ord)

	var aggregates []*rejection.ModelRejection
	aggregateByModelID := make(map[string]*rejection.ModelRejection)

	for _, product := range report.OrderProducts {
		materialName := product.OptionDescription

		for _, entry := range product.Models {
			if entry.ModelID == "" || entry.Rejection == nil {
				continue
			}

			existing := trackersByModelID[entry.ModelID]
			reasons, err := n.unseenReasons(entry, existing)
			if err != nil {
				return nil, err
			}
			if len(reasons) == 0 {
				continue
			}

			material, err := rejection.NewMaterial(
				entry.MaterialID,
				materialName,
				entry.Rejection.AffectedMaterials,
				reasons,
			)
			if err != nil {
				return nil, err
			}

			aggregate, ok := aggregateByModelID[entry.ModelID]
			if !ok {
				model, modelErr := rejection.NewModel(entry.ModelID, entry.Title)
				if modelErr != nil {
					return nil, modelErr
				}
				aggregate, modelErr = rejection.NewModelRejection(ord, model)
				if modelErr != nil {
					return nil, modelErr
				}
				aggregateByModelID[entry.ModelID] = aggregate
				aggregates = append(aggregates, aggregate)
			}
			aggregate.Model().AddMaterial(material)

			variantKey := fmt.Sprintf("%s_%s", entry.ModelID, entry.MaterialID)
			itemID, ok := itemIDByVariantKey[variantKey]
			if !ok {
				return nil, errs.NewObjectNotFoundError("orderItem", variantKey)
			}
			aggregate.AddOrderItemID(itemID)
		}
	}

	return aggregates, nil
}

// unseenReasons filters the entry's rejection reasons down to those not yet
// notified according to the tracker. The tracker may be nil on the first pass
// for a model; every reason is then unseen.
func (n RejectionNormalizer) unseenReasons(
	entry statusreport.ModelEntry,
	existing *tracker.RejectionEmailTracker,
) ([]rejection.Reason, error) {
	var reasons []rejection.Reason
	for _, reported := range entry.Rejection.RejectionReasons {
		if existing != nil && existing.HasDeviation(reported.DeviationID) {
			continue
		}

		reason, err := rejection.NewReason(
			reported.DeviationID,
			reported.ReasonID,
			reported.Reason,
			reported.Comment,
			reported.Images,
			entry.ModelID,
		)
		if err != nil {
			return nil, err
		}
		reasons = append(reasons, reason)
	}
	return reasons, nil
}

// orderItemIDByVariantKey builds the (modelId_materialId) -> order item id
// lookup by scanning the order's line items once, up front.
func orderItemIDByVariantKey(ord *order.Order) map[string]kernel.UUID {
	lookup := make(map[string]kernel.UUID, len(ord.Items()))
	for _, item := range ord.Items() {
		lookup[item.VariantKey().String()] = item.ID()
	}
	return lookup
}
