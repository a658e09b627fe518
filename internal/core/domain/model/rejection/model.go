package rejection

import "ordermail/internal/pkg/errs"

// ErrModelIDIsRequired is returned when a model is created without its identifier.
var ErrModelIDIsRequired = errs.NewValueIsRequiredError("modelId")

// Model is one produced item accumulated from the status report. A model id
// may appear in several report entries (one per material); materials append
// in report order.
type Model struct {
	modelID   string
	title     string
	materials []Material
}

// NewModel creates a model with no materials yet. The model id is required.
func NewModel(modelID, title string) (*Model, error) {
	if modelID == "" {
		return nil, ErrModelIDIsRequired
	}

	return &Model{modelID: modelID, title: title}, nil
}

// ModelID returns the produced item's identifier.
func (m *Model) ModelID() string {
	return m.modelID
}

// Title returns the produced item's title. May be empty.
func (m *Model) Title() string {
	return m.title
}

// Materials returns the model's materials in the order they were attached.
func (m *Model) Materials() []Material {
	return m.materials
}

// AddMaterial appends a material. Later materials for the same model append
// rather than replace.
func (m *Model) AddMaterial(material Material) {
	m.materials = append(m.materials, material)
}
