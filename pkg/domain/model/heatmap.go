package model

import (
	"fmt"
	"strings"

	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// HeatmapCell is one cell of the maturity heatmap: a single dimension score
// of a single category with its scale color and hover tooltip
type HeatmapCell struct {
	Dimension  types.Dimension `json:"dimension"`
	Label      string          `json:"label"`
	Level      types.Level     `json:"level"`
	LevelLabel string          `json:"level_label"`
	Color      string          `json:"color"`
	Tooltip    string          `json:"tooltip"`
}

// HeatmapRow is one category row of the heatmap
type HeatmapRow struct {
	Category types.CategoryID `json:"category"`
	Name     string           `json:"name"`
	Cells    []HeatmapCell    `json:"cells"`
}

// HeatmapPayload is the declarative description of the maturity heatmap for
// the current year, theme and simulation state
type HeatmapPayload struct {
	Year      types.Year   `json:"year"`
	YearLabel string       `json:"year_label"`
	Simulated bool         `json:"simulated"`
	Palette   Palette      `json:"palette"`
	Rows      []HeatmapRow `json:"rows"`
}

// Tooltips show at most this many evidence lines and references, matching
// the hover card size
const tooltipMaxItems = 2

// BuildHeatmap computes the heatmap payload for the given view state: one row
// per category, one cell per dimension, colors mapped on the level scale
func BuildHeatmap(ds *Dataset, st *ViewState) *HeatmapPayload {
	payload := &HeatmapPayload{
		Year:      st.SelectedYear,
		YearLabel: ds.YearLabel(st.SelectedYear),
		Simulated: st.SimulationEnabled,
		Palette:   PaletteFor(st.Theme),
		Rows:      make([]HeatmapRow, 0, len(ds.Categories())),
	}

	records := visibleRecords(ds, st)
	for i, c := range ds.Categories() {
		r := records[i]
		row := HeatmapRow{
			Category: c.ID,
			Name:     c.Name,
			Cells:    make([]HeatmapCell, 0, len(types.Dimensions())),
		}
		for _, dim := range types.Dimensions() {
			level := r.Level(dim)
			row.Cells = append(row.Cells, HeatmapCell{
				Dimension:  dim,
				Label:      dim.Label(),
				Level:      level,
				LevelLabel: level.Label(),
				Color:      LevelColor(level),
				Tooltip:    cellTooltip(c.Name, dim, level, r),
			})
		}
		payload.Rows = append(payload.Rows, row)
	}

	return payload
}

// cellTooltip builds the hover text of a heatmap cell from the record's
// evidence detail
func cellTooltip(name string, dim types.Dimension, level types.Level, r *MaturityRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s / %s\nLevel %d: %s", name, dim.Label(), level, level.Label())

	detail, ok := r.Detail(dim)
	if !ok {
		return b.String()
	}

	for i, ev := range detail.Evidence {
		if i >= tooltipMaxItems {
			break
		}
		fmt.Fprintf(&b, "\n• %s", ev)
	}
	if len(detail.References) > 0 {
		refs := detail.References
		if len(refs) > tooltipMaxItems {
			refs = refs[:tooltipMaxItems]
		}
		fmt.Fprintf(&b, "\nReferences: %s", strings.Join(refs, ", "))
	}

	return b.String()
}
