package queries

import (
	"context"
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetRejectionTrackersQueryHandler retrieves rejection notification history
// from the database. Deviation ids are stored as a text array and order item
// ids as a JSON column; both are decoded into the read model here.
type GetRejectionTrackersQueryHandler struct {
	db *gorm.DB
}

// NewGetRejectionTrackersQueryHandler creates a handler for tracker history queries.
// Requires a GORM database connection for query execution.
func NewGetRejectionTrackersQueryHandler(db *gorm.DB) GetRejectionTrackersQueryHandler {
	return GetRejectionTrackersQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's trackers.
// Returns a slice of tracker read models sorted by model id.
func (h GetRejectionTrackersQueryHandler) Handle(
	ctx context.Context,
	query GetRejectionTrackersQuery,
) ([]GetRejectionTrackersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trackers := make([]GetRejectionTrackersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			model_id,
			deviation_ids,
			sent_count,
			order_item_ids,
			rejection_key
		FROM rejection_email_trackers
		WHERE order_id = ?
		ORDER BY model_id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetRejectionTrackersQueryResponse
		var deviationIDs pq.StringArray
		var orderItemIDs []byte

		err = rows.Scan(
			&response.ModelID,
			&deviationIDs,
			&response.SentCount,
			&orderItemIDs,
			&response.RejectionKey,
		)
		if err != nil {
			return nil, err
		}

		response.DeviationIDs = []string(deviationIDs)
		if len(orderItemIDs) > 0 {
			if err = json.Unmarshal(orderItemIDs, &response.OrderItemIDs); err != nil {
				return nil, err
			}
		}

		trackers = append(trackers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trackers, nil
}
