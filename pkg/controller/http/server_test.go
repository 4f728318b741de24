package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/rubyjane88/genai-maturity-explorer/pkg/controller/http"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/repository/memory"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/usecase"
)

func testDataset(t *testing.T) *model.Dataset {
	t.Helper()

	years := []model.YearInfo{
		{ID: "2025", Label: "2025 (Baseline)", Baseline: true},
		{ID: "2026", Label: "2026 (Projected)"},
	}
	categories := []*model.CategoryProfile{
		{ID: "prompt-injection", Name: "Prompt Injection", Description: "Crafted inputs that manipulate LLM behavior"},
		{ID: "privacy", Name: "Privacy", Description: "Traditional privacy protections baseline"},
	}
	records := []*model.MaturityRecord{
		{Category: "prompt-injection", Year: "2025", ThreatLevel: 4, TechnicalControls: 2, GovernanceEnforcement: 2, StakeholderProtection: 0},
		{Category: "privacy", Year: "2025", ThreatLevel: 4, TechnicalControls: 2, GovernanceEnforcement: 2, StakeholderProtection: 2},
		{Category: "prompt-injection", Year: "2026", ThreatLevel: 4, TechnicalControls: 3, GovernanceEnforcement: 2, StakeholderProtection: 1},
		{Category: "privacy", Year: "2026", ThreatLevel: 4, TechnicalControls: 2, GovernanceEnforcement: 2, StakeholderProtection: 2},
	}

	ds, err := model.NewDataset(years, categories, records)
	gt.NoError(t, err).Required()
	return ds
}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := memory.New()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})

	uc := usecase.New(repo, testDataset(t))
	ts := httptest.NewServer(httpctrl.New(uc, httpctrl.WithVersion("test")))
	t.Cleanup(ts.Close)
	return ts
}

func doRequest(t *testing.T, method, url string, body any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reqBody)
	gt.NoError(t, err).Required()
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	gt.NoError(t, err).Required()
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	gt.NoError(t, err).Required()
	return resp.StatusCode, data
}

func createSession(t *testing.T, ts *httptest.Server) types.SessionID {
	t.Helper()

	status, body := doRequest(t, http.MethodPost, ts.URL+"/api/session", nil)
	gt.Value(t, status).Equal(http.StatusCreated)

	var state model.ViewState
	gt.NoError(t, json.Unmarshal(body, &state)).Required()
	gt.NoError(t, state.ID.Validate())
	return state.ID
}

func TestServerSessionLifecycle(t *testing.T) {
	ts := setupServer(t)
	id := createSession(t, ts)
	base := ts.URL + "/api/session/" + string(id)

	status, body := doRequest(t, http.MethodGet, base, nil)
	gt.Value(t, status).Equal(http.StatusOK)

	var state model.ViewState
	gt.NoError(t, json.Unmarshal(body, &state)).Required()
	gt.Value(t, state.SelectedYear).Equal("2025")
	gt.Value(t, state.Theme).Equal(types.ThemeDark)
	gt.Bool(t, state.SimulationEnabled).False()

	status, _ = doRequest(t, http.MethodDelete, base, nil)
	gt.Value(t, status).Equal(http.StatusNoContent)

	status, _ = doRequest(t, http.MethodGet, base, nil)
	gt.Value(t, status).Equal(http.StatusNotFound)
}

func TestServerUnknownSession(t *testing.T) {
	ts := setupServer(t)

	status, _ := doRequest(t, http.MethodGet, ts.URL+"/api/session/"+types.NewSessionID().String(), nil)
	gt.Value(t, status).Equal(http.StatusNotFound)

	status, _ = doRequest(t, http.MethodGet, ts.URL+"/api/session/not-a-uuid", nil)
	gt.Value(t, status).Equal(http.StatusNotFound)
}

func TestServerSetYear(t *testing.T) {
	ts := setupServer(t)
	id := createSession(t, ts)
	base := ts.URL + "/api/session/" + string(id)

	status, body := doRequest(t, http.MethodPut, base+"/year", map[string]string{"year": "2026"})
	gt.Value(t, status).Equal(http.StatusOK)

	var state model.ViewState
	gt.NoError(t, json.Unmarshal(body, &state)).Required()
	gt.Value(t, state.SelectedYear).Equal("2026")

	// A year outside the dataset is rejected and the prior state kept
	status, _ = doRequest(t, http.MethodPut, base+"/year", map[string]string{"year": "2099"})
	gt.Value(t, status).Equal(http.StatusBadRequest)

	status, body = doRequest(t, http.MethodGet, base, nil)
	gt.Value(t, status).Equal(http.StatusOK)
	gt.NoError(t, json.Unmarshal(body, &state)).Required()
	gt.Value(t, state.SelectedYear).Equal("2026")
}

func TestServerControls(t *testing.T) {
	ts := setupServer(t)
	id := createSession(t, ts)
	base := ts.URL + "/api/session/" + string(id)

	var state model.ViewState

	status, body := doRequest(t, http.MethodPost, base+"/theme/toggle", nil)
	gt.Value(t, status).Equal(http.StatusOK)
	gt.NoError(t, json.Unmarshal(body, &state)).Required()
	gt.Value(t, state.Theme).Equal(types.ThemeLight)

	status, body = doRequest(t, http.MethodPut, base+"/simulation", map[string]bool{"enabled": true})
	gt.Value(t, status).Equal(http.StatusOK)
	gt.NoError(t, json.Unmarshal(body, &state)).Required()
	gt.Bool(t, state.SimulationEnabled).True()

	status, body = doRequest(t, http.MethodPut, base+"/selection", map[string]string{"category": "privacy"})
	gt.Value(t, status).Equal(http.StatusOK)
	gt.NoError(t, json.Unmarshal(body, &state)).Required()
	gt.Value(t, state.SelectedCategory).Equal("privacy")

	// Unknown category is rejected and the selection kept
	status, _ = doRequest(t, http.MethodPut, base+"/selection", map[string]string{"category": "no-such-category"})
	gt.Value(t, status).Equal(http.StatusBadRequest)

	status, body = doRequest(t, http.MethodGet, base, nil)
	gt.Value(t, status).Equal(http.StatusOK)
	gt.NoError(t, json.Unmarshal(body, &state)).Required()
	gt.Value(t, state.SelectedCategory).Equal("privacy")

	status, body = doRequest(t, http.MethodDelete, base+"/selection", nil)
	gt.Value(t, status).Equal(http.StatusOK)
	state = model.ViewState{}
	gt.NoError(t, json.Unmarshal(body, &state)).Required()
	gt.Value(t, state.SelectedCategory).Equal("")
}

func TestServerPayloads(t *testing.T) {
	ts := setupServer(t)
	id := createSession(t, ts)
	base := ts.URL + "/api/session/" + string(id)

	t.Run("heatmap", func(t *testing.T) {
		status, body := doRequest(t, http.MethodGet, base+"/heatmap", nil)
		gt.Value(t, status).Equal(http.StatusOK)

		var payload model.HeatmapPayload
		gt.NoError(t, json.Unmarshal(body, &payload)).Required()
		gt.Array(t, payload.Rows).Length(2)
		gt.Array(t, payload.Rows[0].Cells).Length(4)
	})

	t.Run("gap", func(t *testing.T) {
		status, body := doRequest(t, http.MethodGet, base+"/gap", nil)
		gt.Value(t, status).Equal(http.StatusOK)

		var payload model.GapPayload
		gt.NoError(t, json.Unmarshal(body, &payload)).Required()
		gt.Array(t, payload.Entries).Length(2)
		gt.Value(t, payload.Entries[0].Category).Equal("prompt-injection")
	})

	t.Run("radar", func(t *testing.T) {
		status, body := doRequest(t, http.MethodGet, base+"/radar/privacy", nil)
		gt.Value(t, status).Equal(http.StatusOK)

		var payload model.RadarPayload
		gt.NoError(t, json.Unmarshal(body, &payload)).Required()
		gt.Array(t, payload.Axes).Length(4)

		status, _ = doRequest(t, http.MethodGet, base+"/radar/no-such-category", nil)
		gt.Value(t, status).Equal(http.StatusBadRequest)
	})

	t.Run("stats", func(t *testing.T) {
		status, body := doRequest(t, http.MethodGet, base+"/stats", nil)
		gt.Value(t, status).Equal(http.StatusOK)

		var payload model.StatsPayload
		gt.NoError(t, json.Unmarshal(body, &payload)).Required()
		gt.Value(t, payload.AvgThreatMaturity).Equal(4.0)
	})

	t.Run("detail requires selection", func(t *testing.T) {
		status, _ := doRequest(t, http.MethodGet, base+"/detail", nil)
		gt.Value(t, status).Equal(http.StatusBadRequest)

		st, _ := doRequest(t, http.MethodPut, base+"/selection", map[string]string{"category": "privacy"})
		gt.Value(t, st).Equal(http.StatusOK)

		status, body := doRequest(t, http.MethodGet, base+"/detail", nil)
		gt.Value(t, status).Equal(http.StatusOK)

		var payload model.DetailPayload
		gt.NoError(t, json.Unmarshal(body, &payload)).Required()
		gt.Value(t, payload.Category).Equal("privacy")
	})
}

func TestServerExport(t *testing.T) {
	ts := setupServer(t)
	id := createSession(t, ts)
	base := ts.URL + "/api/session/" + string(id)

	resp, err := http.Get(base + "/export?format=csv")
	gt.NoError(t, err).Required()
	defer resp.Body.Close()

	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Value(t, resp.Header.Get("Content-Type")).Equal("text/csv")

	data, err := io.ReadAll(resp.Body)
	gt.NoError(t, err).Required()
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	gt.Array(t, lines).Length(3)

	status, _ := doRequest(t, http.MethodGet, base+"/export?format=xml", nil)
	gt.Value(t, status).Equal(http.StatusBadRequest)
}

func TestServerDatasetEndpoints(t *testing.T) {
	ts := setupServer(t)

	status, body := doRequest(t, http.MethodGet, ts.URL+"/api/dataset/years", nil)
	gt.Value(t, status).Equal(http.StatusOK)

	var years struct {
		Years []struct {
			ID       string `json:"id"`
			Baseline bool   `json:"baseline"`
		} `json:"years"`
	}
	gt.NoError(t, json.Unmarshal(body, &years)).Required()
	gt.Array(t, years.Years).Length(2)
	gt.Bool(t, years.Years[0].Baseline).True()

	status, body = doRequest(t, http.MethodGet, ts.URL+"/api/dataset/categories", nil)
	gt.Value(t, status).Equal(http.StatusOK)

	var categories struct {
		Categories []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	}
	gt.NoError(t, json.Unmarshal(body, &categories)).Required()
	gt.Array(t, categories.Categories).Length(2)
}
