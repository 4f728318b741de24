package model

import (
	"time"

	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// ViewState holds the UI selections of one dashboard session. It is created
// with defaults at session start, mutated only by control events, and
// discarded when the session ends. It carries no persistence guarantees.
type ViewState struct {
	ID                types.SessionID `json:"id"`
	SelectedYear      types.Year      `json:"selected_year"`
	Theme             types.Theme     `json:"theme"`
	SimulationEnabled bool            `json:"simulation_enabled"`

	// SelectedCategory references the category shown in the detail view.
	// Empty means nothing is selected.
	SelectedCategory types.CategoryID `json:"selected_category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewViewState creates a ViewState with session defaults: the baseline year,
// dark theme, simulation off, and no category selected.
func NewViewState(baseline types.Year) *ViewState {
	now := time.Now().UTC()
	return &ViewState{
		ID:           types.NewSessionID(),
		SelectedYear: baseline,
		Theme:        types.ThemeDark,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Clone returns a deep copy of the ViewState
func (s *ViewState) Clone() *ViewState {
	copied := *s
	return &copied
}
