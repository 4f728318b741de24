package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// ImprovementDelta is the fixed policy-improvement delta applied to the
// governance and stakeholder-protection levels in what-if simulation mode.
const ImprovementDelta types.Level = 2

// DimensionDetail holds the evidence backing one cell of the maturity matrix
type DimensionDetail struct {
	Description string
	Evidence    []string
	References  []string
}

// MaturityRecord is one row of the assessment dataset: the scores of a single
// threat category for a single year across the four assessment dimensions.
type MaturityRecord struct {
	Category              types.CategoryID
	Year                  types.Year
	ThreatLevel           types.Level
	TechnicalControls     types.Level
	GovernanceEnforcement types.Level
	StakeholderProtection types.Level
	Details               map[types.Dimension]DimensionDetail
}

// Validate checks that the record references are well-formed and all level
// fields are within the 0-4 scale
func (r *MaturityRecord) Validate() error {
	if err := r.Category.Validate(); err != nil {
		return goerr.Wrap(err, "invalid record category")
	}
	if err := r.Year.Validate(); err != nil {
		return goerr.Wrap(err, "invalid record year")
	}
	for _, dim := range types.Dimensions() {
		if err := r.Level(dim).Validate(); err != nil {
			return goerr.Wrap(err, "invalid record level",
				goerr.V(CategoryKey, r.Category),
				goerr.V(YearKey, r.Year),
				goerr.V("dimension", dim),
			)
		}
	}
	for dim := range r.Details {
		if err := dim.Validate(); err != nil {
			return goerr.Wrap(err, "invalid record detail dimension",
				goerr.V(CategoryKey, r.Category),
				goerr.V(YearKey, r.Year),
			)
		}
	}
	return nil
}

// Level returns the score of the given assessment dimension
func (r *MaturityRecord) Level(d types.Dimension) types.Level {
	switch d {
	case types.DimensionThreatMaturity:
		return r.ThreatLevel
	case types.DimensionTechnicalControls:
		return r.TechnicalControls
	case types.DimensionGovernanceEnforcement:
		return r.GovernanceEnforcement
	case types.DimensionStakeholderProtections:
		return r.StakeholderProtection
	default:
		return types.LevelMin
	}
}

// Detail returns the evidence detail of the given dimension, if present
func (r *MaturityRecord) Detail(d types.Dimension) (DimensionDetail, bool) {
	detail, ok := r.Details[d]
	return detail, ok
}

// Adjusted returns a copy of the record with the governance and
// stakeholder-protection levels raised by delta, clamped to the 0-4 scale.
// Threat maturity and technical controls are unaffected. The receiver is
// never mutated; the underlying dataset stays read-only.
func (r *MaturityRecord) Adjusted(delta types.Level) *MaturityRecord {
	copied := r.clone()
	copied.GovernanceEnforcement = r.GovernanceEnforcement.Add(delta)
	copied.StakeholderProtection = r.StakeholderProtection.Add(delta)
	return copied
}

// BestProtection returns the level of the best-performing protective
// dimension (technical controls, governance, stakeholder protections)
func (r *MaturityRecord) BestProtection() types.Level {
	best := r.TechnicalControls
	if r.GovernanceEnforcement > best {
		best = r.GovernanceEnforcement
	}
	if r.StakeholderProtection > best {
		best = r.StakeholderProtection
	}
	return best
}

// Gap returns the protection gap: the shortfall between threat maturity and
// the best-performing protective dimension
func (r *MaturityRecord) Gap() int {
	return int(r.ThreatLevel) - int(r.BestProtection())
}

func (r *MaturityRecord) clone() *MaturityRecord {
	copied := &MaturityRecord{
		Category:              r.Category,
		Year:                  r.Year,
		ThreatLevel:           r.ThreatLevel,
		TechnicalControls:     r.TechnicalControls,
		GovernanceEnforcement: r.GovernanceEnforcement,
		StakeholderProtection: r.StakeholderProtection,
	}
	if r.Details != nil {
		copied.Details = make(map[types.Dimension]DimensionDetail, len(r.Details))
		for dim, detail := range r.Details {
			copied.Details[dim] = detail
		}
	}
	return copied
}
