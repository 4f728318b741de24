package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Dimension represents one assessment axis of the maturity matrix
type Dimension string

const (
	DimensionThreatMaturity         Dimension = "threat_maturity"
	DimensionTechnicalControls      Dimension = "technical_controls"
	DimensionGovernanceEnforcement  Dimension = "governance_enforcement"
	DimensionStakeholderProtections Dimension = "stakeholder_protections"
)

// Dimensions returns all assessment dimensions in display order
func Dimensions() []Dimension {
	return []Dimension{
		DimensionThreatMaturity,
		DimensionTechnicalControls,
		DimensionGovernanceEnforcement,
		DimensionStakeholderProtections,
	}
}

// Validate checks if the Dimension is one of the supported axes
func (d Dimension) Validate() error {
	switch d {
	case DimensionThreatMaturity, DimensionTechnicalControls,
		DimensionGovernanceEnforcement, DimensionStakeholderProtections:
		return nil
	default:
		return goerr.New("invalid dimension", goerr.V("dimension", d))
	}
}

// Label returns the display name of the dimension
func (d Dimension) Label() string {
	switch d {
	case DimensionThreatMaturity:
		return "Threat Maturity"
	case DimensionTechnicalControls:
		return "Technical Controls"
	case DimensionGovernanceEnforcement:
		return "Governance Enforcement"
	case DimensionStakeholderProtections:
		return "Stakeholder Protections"
	default:
		return string(d)
	}
}

// String returns the string representation of Dimension
func (d Dimension) String() string {
	return string(d)
}
