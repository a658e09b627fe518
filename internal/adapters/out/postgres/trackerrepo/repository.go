package trackerrepo

import (
	"context"
	"errors"
	"fmt"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/tracker"
	"ordermail/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTrackerRepository implements RejectionTrackerRepository using GORM.
type GormTrackerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackerRepository creates a new GORM rejection tracker repository.
func NewGormTrackerRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackerRepository {
	return &GormTrackerRepository{
		db:      db,
		tracker: tracker,
	}
}

// FindByModelID retrieves the tracker for one (order, model) pair.
func (r *GormTrackerRepository) FindByModelID(
	ctx context.Context,
	orderID kernel.UUID,
	modelID string,
) (*tracker.RejectionEmailTracker, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TrackerDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND model_id = ?", orderID.Bytes(), modelID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"rejectionEmailTracker",
				fmt.Sprintf("%s/%s", orderID.String(), modelID),
			)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves every tracker of an order, keyed by model id.
func (r *GormTrackerRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (map[string]*tracker.RejectionEmailTracker, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackerDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	trackers := make(map[string]*tracker.RejectionEmailTracker, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trackers[t.ModelID()] = t
	}

	return trackers, nil
}

// SaveOrUpdate upserts a tracker by its (order_id, model_id) key: the first
// notification for a pair inserts the row, later passes update it in place.
func (r *GormTrackerRepository) SaveOrUpdate(ctx context.Context, aggregate *tracker.RejectionEmailTracker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}, {Name: "model_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"deviation_ids", "sent_count", "order_item_ids", "rejection_key",
			}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
