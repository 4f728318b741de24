package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// ExportFormat selects the export output encoding
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// Validate checks if the ExportFormat is supported
func (f ExportFormat) Validate() error {
	switch f {
	case ExportJSON, ExportCSV:
		return nil
	default:
		return goerr.Wrap(ErrUnknownFormat, "export format must be json or csv", goerr.V(FormatKey, f))
	}
}

// snapshot is the JSON export document: all chart payloads of one view state
type snapshot struct {
	Heatmap *model.HeatmapPayload `json:"heatmap"`
	Gap     *model.GapPayload     `json:"gap"`
	Stats   *model.StatsPayload   `json:"stats"`
}

// Export writes the chart payloads of the given view state to w. JSON emits
// the full snapshot (heatmap, gap, stats); CSV emits the gap table.
func (uc *DashboardUseCase) Export(ctx context.Context, state *model.ViewState, format ExportFormat, w io.Writer) error {
	if err := format.Validate(); err != nil {
		return err
	}

	switch format {
	case ExportCSV:
		return uc.exportCSV(state, w)
	default:
		return uc.exportJSON(state, w)
	}
}

// ExportSession is Export for an active session
func (uc *DashboardUseCase) ExportSession(ctx context.Context, id types.SessionID, format ExportFormat, w io.Writer) error {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return err
	}
	return uc.Export(ctx, state, format, w)
}

func (uc *DashboardUseCase) exportJSON(state *model.ViewState, w io.Writer) error {
	doc := snapshot{
		Heatmap: model.BuildHeatmap(uc.dataset, state),
		Gap:     model.BuildGap(uc.dataset, state),
		Stats:   model.BuildStats(uc.dataset, state),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return goerr.Wrap(err, "failed to encode export snapshot")
	}
	return nil
}

func (uc *DashboardUseCase) exportCSV(state *model.ViewState, w io.Writer) error {
	payload := model.BuildGap(uc.dataset, state)

	cw := csv.NewWriter(w)
	header := []string{"category", "name", "year", "threat_level", "best_protection", "gap", "simulated"}
	if err := cw.Write(header); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}

	for _, entry := range payload.Entries {
		row := []string{
			entry.Category.String(),
			entry.Name,
			payload.Year.String(),
			strconv.Itoa(int(entry.ThreatLevel)),
			strconv.Itoa(int(entry.BestProtection)),
			strconv.Itoa(entry.Gap),
			strconv.FormatBool(payload.Simulated),
		}
		if err := cw.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write CSV row", goerr.V(model.CategoryKey, entry.Category))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV output")
	}
	return nil
}
