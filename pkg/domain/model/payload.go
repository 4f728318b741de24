package model

import (
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// The payload builders (heatmap, gap, radar, stats, detail) are the
// computational core of the dashboard: pure functions from the immutable
// dataset and a view state to the plain data payloads consumed by the
// rendering side. They carry no UI or transport dependency and never mutate
// their inputs.

// visibleRecords returns the records of the selected year with the what-if
// simulation adjustment applied when enabled
func visibleRecords(ds *Dataset, st *ViewState) []*MaturityRecord {
	records := ds.Records(st.SelectedYear)
	if !st.SimulationEnabled {
		return records
	}
	adjusted := make([]*MaturityRecord, 0, len(records))
	for _, r := range records {
		adjusted = append(adjusted, r.Adjusted(ImprovementDelta))
	}
	return adjusted
}

// visibleRecord returns one category's record under the current year and
// simulation state
func visibleRecord(ds *Dataset, st *ViewState, category types.CategoryID) (*MaturityRecord, bool) {
	r, ok := ds.Record(st.SelectedYear, category)
	if !ok {
		return nil, false
	}
	if st.SimulationEnabled {
		r = r.Adjusted(ImprovementDelta)
	}
	return r, true
}
