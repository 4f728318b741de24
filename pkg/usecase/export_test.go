package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/usecase"
)

func TestDashboardUseCase_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("JSON snapshot", func(t *testing.T) {
		uc := newDashboard(t)
		state, err := uc.CreateSession(ctx)
		gt.NoError(t, err).Required()

		var buf bytes.Buffer
		gt.NoError(t, uc.ExportSession(ctx, state.ID, usecase.ExportJSON, &buf)).Required()

		var doc struct {
			Heatmap struct {
				Year string `json:"year"`
				Rows []struct {
					Category string `json:"category"`
				} `json:"rows"`
			} `json:"heatmap"`
			Gap struct {
				Entries []struct {
					Category string `json:"category"`
					Gap      int    `json:"gap"`
				} `json:"entries"`
			} `json:"gap"`
			Stats struct {
				OverallGap float64 `json:"overall_gap"`
			} `json:"stats"`
		}
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &doc)).Required()

		gt.Value(t, doc.Heatmap.Year).Equal("2025")
		gt.Number(t, len(doc.Heatmap.Rows)).Equal(2)
		gt.Number(t, doc.Gap.Entries[0].Gap).Equal(3)
		gt.Number(t, doc.Stats.OverallGap).Equal(3.0)
	})

	t.Run("CSV gap table", func(t *testing.T) {
		uc := newDashboard(t)
		state, err := uc.CreateSession(ctx)
		gt.NoError(t, err).Required()

		var buf bytes.Buffer
		gt.NoError(t, uc.ExportSession(ctx, state.ID, usecase.ExportCSV, &buf)).Required()

		rows, err := csv.NewReader(&buf).ReadAll()
		gt.NoError(t, err).Required()

		gt.Number(t, len(rows)).Equal(3) // header + 2 categories
		gt.Value(t, rows[0][0]).Equal("category")
		gt.Value(t, rows[1][0]).Equal("prompt-injection")
		gt.Value(t, rows[1][5]).Equal("3")
		gt.Value(t, rows[2][0]).Equal("privacy")
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		uc := newDashboard(t)
		state, err := uc.CreateSession(ctx)
		gt.NoError(t, err).Required()

		var buf bytes.Buffer
		err = uc.ExportSession(ctx, state.ID, usecase.ExportFormat("xml"), &buf)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrUnknownFormat)).True()
		gt.Number(t, buf.Len()).Equal(0)
	})
}
