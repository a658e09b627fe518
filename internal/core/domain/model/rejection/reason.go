package rejection

import "ordermail/internal/pkg/errs"

// ErrReasonIDIsRequired is returned when a rejection reason is created without
// its partner-assigned reason identifier.
var ErrReasonIDIsRequired = errs.NewValueIsRequiredError("reasonId")

// Reason is one rejection reason reported for a material. It is immutable
// once constructed.
//
// DeviationID identifies the concrete rejection occurrence and is the
// deduplication key for notifications; it may be empty for legacy data, in
// which case the reason can never be deduplicated and is notified on every
// pass it appears in.
type Reason struct {
	deviationID string
	reasonID    string
	reason      string
	comment     string
	images      []string
	modelID     string
}

// NewReason creates a rejection reason. The reason id is required; deviation
// id, free text, comment, and images are optional and default to empty.
func NewReason(deviationID, reasonID, reasonText, comment string, images []string, modelID string) (Reason, error) {
	if reasonID == "" {
		return Reason{}, ErrReasonIDIsRequired
	}

	r := Reason{
		deviationID: deviationID,
		reasonID:    reasonID,
		reason:      reasonText,
		comment:     comment,
		modelID:     modelID,
	}
	r.images = append(r.images, images...)

	return r, nil
}

// DeviationID returns the external identifier of this rejection occurrence.
// Empty for legacy data.
func (r Reason) DeviationID() string {
	return r.deviationID
}

// ReasonID returns the partner's identifier for the rejection reason type.
func (r Reason) ReasonID() string {
	return r.reasonID
}

// Reason returns the free-text description of the rejection.
func (r Reason) Reason() string {
	return r.reason
}

// Comment returns the optional reviewer comment.
func (r Reason) Comment() string {
	return r.comment
}

// Images returns the image references attached to the rejection, in report order.
func (r Reason) Images() []string {
	return r.images
}

// ModelID returns the id of the produced item this reason belongs to.
func (r Reason) ModelID() string {
	return r.modelID
}
