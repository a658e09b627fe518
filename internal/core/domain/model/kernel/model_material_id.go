package kernel

import (
	"fmt"

	"ordermail/internal/pkg/errs"
)

// modelMaterialSeparator joins the model and material parts of the composite
// key. The same separator is used by the manufacturing partner's catalog, so
// keys built here match the variant keys stored on order items.
const modelMaterialSeparator = "_"

var (
	// ErrModelIDIsRequired is returned when the model part of the composite key is empty.
	ErrModelIDIsRequired = errs.NewValueIsRequiredError("modelId")

	// ErrMaterialIDIsRequired is returned when the material part of the composite key is empty.
	ErrMaterialIDIsRequired = errs.NewValueIsRequiredError("materialId")
)

// ModelMaterialID is a value object for the composite key identifying one
// produced-item variant: a model (the produced item) in a specific material.
// Order items reference their product variant through this key, and the
// status feed reports rejections per (model, material) pair, so the key is
// how payload entries are attributed to order items.
//
// The zero value is invalid; construct via NewModelMaterialID.
// ModelMaterialID is immutable and safe for concurrent use.
type ModelMaterialID struct {
	modelID    string
	materialID string
}

// NewModelMaterialID creates a composite variant key from its parts.
// Both parts are required.
func NewModelMaterialID(modelID, materialID string) (ModelMaterialID, error) {
	if modelID == "" {
		return ModelMaterialID{}, ErrModelIDIsRequired
	}
	if materialID == "" {
		return ModelMaterialID{}, ErrMaterialIDIsRequired
	}

	return ModelMaterialID{modelID: modelID, materialID: materialID}, nil
}

// ModelID returns the model part of the key.
func (m ModelMaterialID) ModelID() string {
	return m.modelID
}

// MaterialID returns the material part of the key.
func (m ModelMaterialID) MaterialID() string {
	return m.materialID
}

// String returns the wire form of the key, "<modelId>_<materialId>".
func (m ModelMaterialID) String() string {
	return fmt.Sprintf("%s%s%s", m.modelID, modelMaterialSeparator, m.materialID)
}

// IsEqual reports whether two keys identify the same variant.
func (m ModelMaterialID) IsEqual(other ModelMaterialID) bool {
	return m.modelID == other.modelID && m.materialID == other.materialID
}

// Validate returns an error if either part of the key is empty.
func (m ModelMaterialID) Validate() error {
	if m.modelID == "" {
		return ErrModelIDIsRequired
	}
	if m.materialID == "" {
		return ErrMaterialIDIsRequired
	}
	return nil
}
