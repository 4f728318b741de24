package model

import (
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// StatsPayload holds the per-dimension averages across all categories of the
// current year plus the overall gap between average threat maturity and
// average stakeholder protection
type StatsPayload struct {
	Year                     types.Year `json:"year"`
	YearLabel                string     `json:"year_label"`
	Simulated                bool       `json:"simulated"`
	AvgThreatMaturity        float64    `json:"avg_threat_maturity"`
	AvgTechnicalControls     float64    `json:"avg_technical_controls"`
	AvgGovernance            float64    `json:"avg_governance"`
	AvgStakeholderProtection float64    `json:"avg_stakeholder_protection"`
	OverallGap               float64    `json:"overall_gap"`
}

// BuildStats computes the quick statistics payload for the given view state
func BuildStats(ds *Dataset, st *ViewState) *StatsPayload {
	payload := &StatsPayload{
		Year:      st.SelectedYear,
		YearLabel: ds.YearLabel(st.SelectedYear),
		Simulated: st.SimulationEnabled,
	}

	records := visibleRecords(ds, st)
	if len(records) == 0 {
		return payload
	}

	var threat, technical, governance, stakeholder int
	for _, r := range records {
		threat += int(r.ThreatLevel)
		technical += int(r.TechnicalControls)
		governance += int(r.GovernanceEnforcement)
		stakeholder += int(r.StakeholderProtection)
	}

	n := float64(len(records))
	payload.AvgThreatMaturity = float64(threat) / n
	payload.AvgTechnicalControls = float64(technical) / n
	payload.AvgGovernance = float64(governance) / n
	payload.AvgStakeholderProtection = float64(stakeholder) / n
	payload.OverallGap = payload.AvgThreatMaturity - payload.AvgStakeholderProtection

	return payload
}
