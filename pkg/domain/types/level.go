package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Level represents a maturity level on the standardized 0-4 scale, applied
// uniformly to threat sophistication and to each protection dimension.
type Level int

const (
	LevelMin Level = 0
	LevelMax Level = 4
)

// Validate checks if the Level is within the supported scale
func (l Level) Validate() error {
	if l < LevelMin || l > LevelMax {
		return goerr.New("maturity level must be between 0 and 4", goerr.V("level", int(l)))
	}
	return nil
}

// Label returns the human readable name of the maturity level
func (l Level) Label() string {
	switch l {
	case 0:
		return "Non-existent"
	case 1:
		return "Initial/Ad-hoc"
	case 2:
		return "Developing"
	case 3:
		return "Defined"
	case 4:
		return "Managed/Mature"
	default:
		return "Unknown"
	}
}

// Add returns the level shifted by delta, clamped to the 0-4 scale
func (l Level) Add(delta Level) Level {
	v := l + delta
	if v > LevelMax {
		return LevelMax
	}
	if v < LevelMin {
		return LevelMin
	}
	return v
}

// Normalized returns the level mapped onto a shared 0-1 radial scale
func (l Level) Normalized() float64 {
	return float64(l) / float64(LevelMax)
}
