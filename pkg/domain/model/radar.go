package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// RadarAxis is one vertex of the radar polygon: a dimension level with its
// radius normalized onto the shared 0-1 radial scale
type RadarAxis struct {
	Dimension types.Dimension `json:"dimension"`
	Label     string          `json:"label"`
	Level     types.Level     `json:"level"`
	Radius    float64         `json:"radius"`
}

// RadarPayload describes the four dimension levels of a single category as a
// closed polygon. The reference level marks the "developing" ring drawn for
// orientation.
type RadarPayload struct {
	Category  types.CategoryID `json:"category"`
	Name      string           `json:"name"`
	Year      types.Year       `json:"year"`
	YearLabel string           `json:"year_label"`
	Simulated bool             `json:"simulated"`
	Palette   Palette          `json:"palette"`
	Axes      []RadarAxis      `json:"axes"`
	Closed    bool             `json:"closed"`
	Reference types.Level      `json:"reference"`
}

// BuildRadar computes the radar payload of one category under the current
// year and simulation state. Returns ErrInvalidSelection when the category is
// not present in the current year's records.
func BuildRadar(ds *Dataset, st *ViewState, category types.CategoryID) (*RadarPayload, error) {
	profile, ok := ds.Profile(category)
	if !ok {
		return nil, goerr.Wrap(ErrInvalidSelection, "unknown category",
			goerr.V(CategoryKey, category), goerr.V(YearKey, st.SelectedYear))
	}
	r, ok := visibleRecord(ds, st, category)
	if !ok {
		return nil, goerr.Wrap(ErrInvalidSelection, "no record for category in selected year",
			goerr.V(CategoryKey, category), goerr.V(YearKey, st.SelectedYear))
	}

	payload := &RadarPayload{
		Category:  profile.ID,
		Name:      profile.Name,
		Year:      st.SelectedYear,
		YearLabel: ds.YearLabel(st.SelectedYear),
		Simulated: st.SimulationEnabled,
		Palette:   PaletteFor(st.Theme),
		Axes:      make([]RadarAxis, 0, len(types.Dimensions())),
		Closed:    true,
		Reference: 2,
	}
	for _, dim := range types.Dimensions() {
		level := r.Level(dim)
		payload.Axes = append(payload.Axes, RadarAxis{
			Dimension: dim,
			Label:     dim.Label(),
			Level:     level,
			Radius:    level.Normalized(),
		})
	}

	return payload, nil
}
