package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// DimensionBreakdown is the detail-view card of one assessment dimension
type DimensionBreakdown struct {
	Dimension   types.Dimension `json:"dimension"`
	Label       string          `json:"label"`
	Level       types.Level     `json:"level"`
	LevelLabel  string          `json:"level_label"`
	Color       string          `json:"color"`
	Description string          `json:"description,omitempty"`
	Evidence    []string        `json:"evidence,omitempty"`
	References  []string        `json:"references,omitempty"`
}

// DetailPayload backs the click-to-detail modal of the selected category:
// the category profile, documented incidents, and the per-dimension evidence
// breakdown under the current year and simulation state
type DetailPayload struct {
	Category    types.CategoryID     `json:"category"`
	Name        string               `json:"name"`
	Year        types.Year           `json:"year"`
	YearLabel   string               `json:"year_label"`
	Simulated   bool                 `json:"simulated"`
	Description string               `json:"description,omitempty"`
	Quote       string               `json:"quote,omitempty"`
	Incidents   []string             `json:"incidents,omitempty"`
	Dimensions  []DimensionBreakdown `json:"dimensions"`
}

// BuildDetail computes the detail payload for the currently selected
// category. Returns ErrInvalidSelection when no category is selected or the
// selection is not part of the current year's records.
func BuildDetail(ds *Dataset, st *ViewState) (*DetailPayload, error) {
	if st.SelectedCategory == "" {
		return nil, goerr.Wrap(ErrInvalidSelection, "no category selected")
	}
	profile, ok := ds.Profile(st.SelectedCategory)
	if !ok {
		return nil, goerr.Wrap(ErrInvalidSelection, "unknown category",
			goerr.V(CategoryKey, st.SelectedCategory))
	}
	r, ok := visibleRecord(ds, st, profile.ID)
	if !ok {
		return nil, goerr.Wrap(ErrInvalidSelection, "no record for category in selected year",
			goerr.V(CategoryKey, profile.ID), goerr.V(YearKey, st.SelectedYear))
	}

	payload := &DetailPayload{
		Category:    profile.ID,
		Name:        profile.Name,
		Year:        st.SelectedYear,
		YearLabel:   ds.YearLabel(st.SelectedYear),
		Simulated:   st.SimulationEnabled,
		Description: profile.Description,
		Quote:       profile.Quote,
		Incidents:   profile.Incidents,
		Dimensions:  make([]DimensionBreakdown, 0, len(types.Dimensions())),
	}

	for _, dim := range types.Dimensions() {
		level := r.Level(dim)
		breakdown := DimensionBreakdown{
			Dimension:  dim,
			Label:      dim.Label(),
			Level:      level,
			LevelLabel: level.Label(),
			Color:      LevelColor(level),
		}
		if detail, ok := r.Detail(dim); ok {
			breakdown.Description = detail.Description
			breakdown.Evidence = detail.Evidence
			breakdown.References = detail.References
		}
		payload.Dimensions = append(payload.Dimensions, breakdown)
	}

	return payload, nil
}
