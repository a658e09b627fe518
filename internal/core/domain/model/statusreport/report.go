// Package statusreport defines the wire format of the manufacturing partner's
// order-status document. The document is heterogeneous: entries routinely omit
// fields, and absent values decode to their zero defaults (empty string, nil
// slice) here rather than being defaulted at point of use.
package statusreport

import "encoding/json"

// OrderStatus is one order-status response from the partner feed.
type OrderStatus struct {
	OrderProducts []OrderProduct `json:"orderProducts"`
}

// OrderProduct groups the model entries of one ordered product.
// OptionDescription carries the human-readable material name shared by the
// product's model entries; it may be empty.
type OrderProduct struct {
	OptionDescription string       `json:"optionDescription"`
	Models            []ModelEntry `json:"models"`
}

// ModelEntry describes one produced item in one material. Rejection is nil
// when the partner reported no manufacturing rejection for the entry.
type ModelEntry struct {
	ModelID    string     `json:"modelId"`
	Title      string     `json:"title"`
	MaterialID string     `json:"materialId"`
	Rejection  *Rejection `json:"rejection"`
}

// Rejection is the rejection node of a model entry. AffectedMaterials is
// partner data passed through verbatim to the notification, so it stays raw.
type Rejection struct {
	RejectionReasons  []ReasonEntry   `json:"rejectionReasons"`
	AffectedMaterials json.RawMessage `json:"affectedMaterials"`
}

// ReasonEntry is one rejection reason. DeviationID identifies the concrete
// rejection occurrence and may be empty for legacy data; ReasonID is always
// set by the partner.
type ReasonEntry struct {
	DeviationID string   `json:"deviationId"`
	ReasonID    string   `json:"reasonId"`
	Reason      string   `json:"reason"`
	Comment     string   `json:"comment"`
	Images      []string `json:"images"`
}

// HasRejections reports whether any model entry in the document carries a
// rejection node. Used to short-circuit processing for clean status updates.
func (s *OrderStatus) HasRejections() bool {
	if s == nil {
		return false
	}
	for _, product := range s.OrderProducts {
		for _, model := range product.Models {
			if model.Rejection != nil {
				return true
			}
		}
	}
	return false
}
