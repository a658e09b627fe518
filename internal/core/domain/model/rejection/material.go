package rejection

import (
	"encoding/json"

	"ordermail/internal/pkg/errs"
)

var (
	// ErrMaterialIDIsRequired is returned when a material is created without its identifier.
	ErrMaterialIDIsRequired = errs.NewValueIsRequiredError("materialId")

	// ErrReasonsAreRequired is returned when a material is created with no rejection reasons.
	// A material without unseen reasons contributes nothing to a pass and must not exist.
	ErrReasonsAreRequired = errs.NewValueIsRequiredError("rejection reasons")
)

// Material is one size/material variant of a produced item, carrying the
// rejection reasons newly observed for it in the current pass.
//
// AffectedMaterials is raw partner data passed through to the notification
// without interpretation.
type Material struct {
	materialID        string
	materialName      string
	affectedMaterials json.RawMessage
	reasons           []Reason
}

// NewMaterial creates a material with its newly observed rejection reasons.
// The material id and at least one reason are required; the human-readable
// name and the affected-materials pass-through are optional.
func NewMaterial(
	materialID, materialName string,
	affectedMaterials json.RawMessage,
	reasons []Reason,
) (Material, error) {
	if materialID == "" {
		return Material{}, ErrMaterialIDIsRequired
	}
	if len(reasons) == 0 {
		return Material{}, ErrReasonsAreRequired
	}

	m := Material{
		materialID:        materialID,
		materialName:      materialName,
		affectedMaterials: affectedMaterials,
	}
	m.reasons = append(m.reasons, reasons...)

	return m, nil
}

// MaterialID returns the material's identifier.
func (m Material) MaterialID() string {
	return m.materialID
}

// MaterialName returns the human-readable material name. May be empty.
func (m Material) MaterialName() string {
	return m.materialName
}

// AffectedMaterials returns the raw affected-materials data from the report.
func (m Material) AffectedMaterials() json.RawMessage {
	return m.affectedMaterials
}

// Reasons returns the rejection reasons in report order.
func (m Material) Reasons() []Reason {
	return m.reasons
}

// DeviationIDs returns the deviation ids of the material's reasons in report
// order, including empty ids of legacy reasons.
func (m Material) DeviationIDs() []string {
	ids := make([]string, 0, len(m.reasons))
	for _, reason := range m.reasons {
		ids = append(ids, reason.DeviationID())
	}
	return ids
}
