package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/interfaces"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// DashboardUseCase is the view-synchronization controller: it applies control
// events to the session view state and derives the chart payloads from the
// immutable dataset. Every operation is a bounded in-memory computation; a
// rejected event leaves the prior view state untouched.
type DashboardUseCase struct {
	repo    interfaces.Repository
	dataset *model.Dataset
}

func NewDashboardUseCase(repo interfaces.Repository, dataset *model.Dataset) *DashboardUseCase {
	return &DashboardUseCase{
		repo:    repo,
		dataset: dataset,
	}
}

// Dataset returns the loaded assessment dataset
func (uc *DashboardUseCase) Dataset() *model.Dataset {
	return uc.dataset
}

// CreateSession starts a new dashboard session with default selections
func (uc *DashboardUseCase) CreateSession(ctx context.Context) (*model.ViewState, error) {
	state := model.NewViewState(uc.dataset.Baseline())

	created, err := uc.repo.Session().Create(ctx, state)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session")
	}
	return created, nil
}

// GetSession returns the current view state of the session
func (uc *DashboardUseCase) GetSession(ctx context.Context, id types.SessionID) (*model.ViewState, error) {
	state, err := uc.repo.Session().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrSessionNotFound, "no active session", goerr.V(SessionIDKey, id))
	}
	return state, nil
}

// CloseSession discards the session and its view state
func (uc *DashboardUseCase) CloseSession(ctx context.Context, id types.SessionID) error {
	if err := uc.repo.Session().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrSessionNotFound, "no active session", goerr.V(SessionIDKey, id))
	}
	return nil
}

// SetYear selects the assessment year. Years outside the dataset's supported
// set are rejected with ErrInvalidSelection and the prior selection is kept.
func (uc *DashboardUseCase) SetYear(ctx context.Context, id types.SessionID, year types.Year) (*model.ViewState, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if !uc.dataset.HasYear(year) {
		return nil, goerr.Wrap(model.ErrInvalidSelection, "unsupported year",
			goerr.V(model.YearKey, year), goerr.V(SessionIDKey, id))
	}

	state.SelectedYear = year
	return uc.put(ctx, state)
}

// ToggleTheme flips the theme between light and dark. Only the color palette
// of subsequent payloads changes; no chart data is recomputed.
func (uc *DashboardUseCase) ToggleTheme(ctx context.Context, id types.SessionID) (*model.ViewState, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	state.Theme = state.Theme.Toggle()
	return uc.put(ctx, state)
}

// SetSimulation enables or disables the what-if governance simulation
func (uc *DashboardUseCase) SetSimulation(ctx context.Context, id types.SessionID, enabled bool) (*model.ViewState, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	state.SimulationEnabled = enabled
	return uc.put(ctx, state)
}

// SelectCategory marks a category for the detail view. The category must
// exist in the current year's records.
func (uc *DashboardUseCase) SelectCategory(ctx context.Context, id types.SessionID, category types.CategoryID) (*model.ViewState, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, ok := uc.dataset.Record(state.SelectedYear, category); !ok {
		return nil, goerr.Wrap(model.ErrInvalidSelection, "unknown category",
			goerr.V(model.CategoryKey, category),
			goerr.V(model.YearKey, state.SelectedYear),
			goerr.V(SessionIDKey, id))
	}

	state.SelectedCategory = category
	return uc.put(ctx, state)
}

// ClearSelection clears the detail-view selection
func (uc *DashboardUseCase) ClearSelection(ctx context.Context, id types.SessionID) (*model.ViewState, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	state.SelectedCategory = ""
	return uc.put(ctx, state)
}

// Heatmap computes the heatmap payload for the session's current selections
func (uc *DashboardUseCase) Heatmap(ctx context.Context, id types.SessionID) (*model.HeatmapPayload, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.BuildHeatmap(uc.dataset, state), nil
}

// Gap computes the protection-gap payload for the session's current selections
func (uc *DashboardUseCase) Gap(ctx context.Context, id types.SessionID) (*model.GapPayload, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.BuildGap(uc.dataset, state), nil
}

// Radar computes the radar payload of one category under the session's
// current selections
func (uc *DashboardUseCase) Radar(ctx context.Context, id types.SessionID, category types.CategoryID) (*model.RadarPayload, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.BuildRadar(uc.dataset, state, category)
}

// Stats computes the quick-statistics payload for the session
func (uc *DashboardUseCase) Stats(ctx context.Context, id types.SessionID) (*model.StatsPayload, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.BuildStats(uc.dataset, state), nil
}

// Detail computes the detail payload of the session's selected category
func (uc *DashboardUseCase) Detail(ctx context.Context, id types.SessionID) (*model.DetailPayload, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.BuildDetail(uc.dataset, state)
}

func (uc *DashboardUseCase) put(ctx context.Context, state *model.ViewState) (*model.ViewState, error) {
	updated, err := uc.repo.Session().Put(ctx, state)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store session state", goerr.V(SessionIDKey, state.ID))
	}
	return updated, nil
}
