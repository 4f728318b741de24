package model

import (
	"sort"

	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// GapEntry is the protection gap of one category: the shortfall between
// threat maturity and the best-performing protective dimension
type GapEntry struct {
	Category       types.CategoryID `json:"category"`
	Name           string           `json:"name"`
	ThreatLevel    types.Level      `json:"threat_level"`
	BestProtection types.Level      `json:"best_protection"`
	Gap            int              `json:"gap"`
	Color          string           `json:"color"`
}

// GapPayload is the gap chart description for the current year and simulation
// state, sorted descending by gap with ties broken by category name
type GapPayload struct {
	Year      types.Year `json:"year"`
	YearLabel string     `json:"year_label"`
	Simulated bool       `json:"simulated"`
	Palette   Palette    `json:"palette"`
	Entries   []GapEntry `json:"entries"`
}

// BuildGap computes the gap chart payload for the given view state. The
// result is deterministic: re-invocation with unchanged state yields the same
// ordering.
func BuildGap(ds *Dataset, st *ViewState) *GapPayload {
	payload := &GapPayload{
		Year:      st.SelectedYear,
		YearLabel: ds.YearLabel(st.SelectedYear),
		Simulated: st.SimulationEnabled,
		Palette:   PaletteFor(st.Theme),
		Entries:   make([]GapEntry, 0, len(ds.Categories())),
	}

	records := visibleRecords(ds, st)
	for i, c := range ds.Categories() {
		r := records[i]
		gap := r.Gap()
		payload.Entries = append(payload.Entries, GapEntry{
			Category:       c.ID,
			Name:           c.Name,
			ThreatLevel:    r.ThreatLevel,
			BestProtection: r.BestProtection(),
			Gap:            gap,
			Color:          GapColor(gap),
		})
	}

	sort.SliceStable(payload.Entries, func(i, j int) bool {
		if payload.Entries[i].Gap != payload.Entries[j].Gap {
			return payload.Entries[i].Gap > payload.Entries[j].Gap
		}
		return payload.Entries[i].Name < payload.Entries[j].Name
	})

	return payload
}
