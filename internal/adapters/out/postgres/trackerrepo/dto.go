// Package trackerrepo provides data transfer objects and mapping functions for
// rejection email tracker persistence. Trackers are keyed by (order id, model id).
// Deviation ids are stored as a text array, order item ids as a JSON document.
package trackerrepo

import (
	"encoding/json"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/tracker"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// TrackerDTO represents the database structure for persisting rejection email
// trackers. The (order_id, model_id) pair is unique so a pass can upsert by it.
type TrackerDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_trackers_order_model"`
	ModelID      string         `gorm:"uniqueIndex:idx_trackers_order_model"`
	DeviationIDs pq.StringArray `gorm:"type:text[]"`
	SentCount    int
	OrderItemIDs datatypes.JSON `gorm:"type:jsonb"`
	RejectionKey string
}

// TableName specifies the database table name for tracker entities.
func (TrackerDTO) TableName() string {
	return "rejection_email_trackers"
}

func fromDomain(aggregate *tracker.RejectionEmailTracker) (TrackerDTO, error) {
	deviationIDs := aggregate.DeviationIDs()
	if deviationIDs == nil {
		deviationIDs = []string{}
	}

	itemIDs := make([]string, 0, len(aggregate.OrderItemIDs()))
	for _, id := range aggregate.OrderItemIDs() {
		itemIDs = append(itemIDs, id.String())
	}
	itemJSON, err := json.Marshal(itemIDs)
	if err != nil {
		return TrackerDTO{}, err
	}

	return TrackerDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		ModelID:      aggregate.ModelID(),
		DeviationIDs: pq.StringArray(deviationIDs),
		SentCount:    aggregate.SentCount(),
		OrderItemIDs: datatypes.JSON(itemJSON),
		RejectionKey: aggregate.RejectionKey(),
	}, nil
}

func toDomain(dto TrackerDTO) (*tracker.RejectionEmailTracker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var rawItemIDs []string
	if len(dto.OrderItemIDs) > 0 {
		if err = json.Unmarshal(dto.OrderItemIDs, &rawItemIDs); err != nil {
			return nil, err
		}
	}

	itemIDs := make([]kernel.UUID, 0, len(rawItemIDs))
	for _, raw := range rawItemIDs {
		itemID, itemErr := kernel.UUIDFromString(raw)
		if itemErr != nil {
			return nil, itemErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	return tracker.RestoreRejectionEmailTracker(
		id,
		orderID,
		dto.ModelID,
		[]string(dto.DeviationIDs),
		dto.SentCount,
		itemIDs,
		dto.RejectionKey,
	)
}
