package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// YearInfo describes one supported assessment year
type YearInfo struct {
	ID       types.Year
	Label    string
	Baseline bool
}

// CategoryProfile holds the year-independent description of a threat category
type CategoryProfile struct {
	ID          types.CategoryID
	Name        string
	Description string
	Incidents   []string
	Quote       string
}

// Validate checks if the CategoryProfile is valid
func (p *CategoryProfile) Validate() error {
	if err := p.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid category ID")
	}
	if p.Name == "" {
		return goerr.New("category name is required", goerr.V(CategoryKey, p.ID))
	}
	return nil
}

type recordKey struct {
	year     types.Year
	category types.CategoryID
}

// Dataset is the immutable maturity-assessment matrix. It is loaded once at
// process start, checked against its invariants, and never mutated afterwards:
// every supported year holds exactly one record per category, all levels
// within the 0-4 scale.
type Dataset struct {
	years      []YearInfo
	categories []*CategoryProfile
	records    map[recordKey]*MaturityRecord
}

// NewDataset assembles and validates a Dataset. Any invariant violation is
// reported as ErrInvalidDataset so that startup fails fast instead of
// surfacing broken data during rendering.
func NewDataset(years []YearInfo, categories []*CategoryProfile, records []*MaturityRecord) (*Dataset, error) {
	if len(years) == 0 {
		return nil, goerr.Wrap(ErrInvalidDataset, "at least one year is required")
	}
	if len(categories) == 0 {
		return nil, goerr.Wrap(ErrInvalidDataset, "at least one category is required")
	}

	yearIDs := make(map[types.Year]bool, len(years))
	baselines := 0
	for _, y := range years {
		if err := y.ID.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid year")
		}
		if yearIDs[y.ID] {
			return nil, goerr.Wrap(ErrInvalidDataset, "duplicate year", goerr.V(YearKey, y.ID))
		}
		yearIDs[y.ID] = true
		if y.Baseline {
			baselines++
		}
	}
	if baselines != 1 {
		return nil, goerr.Wrap(ErrInvalidDataset, "exactly one baseline year is required",
			goerr.V("baseline_count", baselines))
	}

	categoryIDs := make(map[types.CategoryID]bool, len(categories))
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid category")
		}
		if categoryIDs[c.ID] {
			return nil, goerr.Wrap(ErrInvalidDataset, "duplicate category", goerr.V(CategoryKey, c.ID))
		}
		categoryIDs[c.ID] = true
	}

	byKey := make(map[recordKey]*MaturityRecord, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid record")
		}
		if !yearIDs[r.Year] {
			return nil, goerr.Wrap(ErrInvalidDataset, "record references unknown year",
				goerr.V(YearKey, r.Year), goerr.V(CategoryKey, r.Category))
		}
		if !categoryIDs[r.Category] {
			return nil, goerr.Wrap(ErrInvalidDataset, "record references unknown category",
				goerr.V(YearKey, r.Year), goerr.V(CategoryKey, r.Category))
		}
		key := recordKey{year: r.Year, category: r.Category}
		if _, exists := byKey[key]; exists {
			return nil, goerr.Wrap(ErrInvalidDataset, "duplicate record",
				goerr.V(YearKey, r.Year), goerr.V(CategoryKey, r.Category))
		}
		byKey[key] = r
	}

	// Completeness: every (year, category) pair must have exactly one record
	for _, y := range years {
		for _, c := range categories {
			if _, exists := byKey[recordKey{year: y.ID, category: c.ID}]; !exists {
				return nil, goerr.Wrap(ErrInvalidDataset, "missing record",
					goerr.V(YearKey, y.ID), goerr.V(CategoryKey, c.ID))
			}
		}
	}

	return &Dataset{
		years:      years,
		categories: categories,
		records:    byKey,
	}, nil
}

// Years returns the supported years in dataset order
func (d *Dataset) Years() []YearInfo {
	return d.years
}

// Baseline returns the baseline year
func (d *Dataset) Baseline() types.Year {
	for _, y := range d.years {
		if y.Baseline {
			return y.ID
		}
	}
	return d.years[0].ID
}

// HasYear reports whether the year is in the supported set
func (d *Dataset) HasYear(year types.Year) bool {
	for _, y := range d.years {
		if y.ID == year {
			return true
		}
	}
	return false
}

// YearLabel returns the display label of the year, falling back to its ID
func (d *Dataset) YearLabel(year types.Year) string {
	for _, y := range d.years {
		if y.ID == year {
			if y.Label != "" {
				return y.Label
			}
			return year.String()
		}
	}
	return year.String()
}

// Categories returns the category profiles in dataset order
func (d *Dataset) Categories() []*CategoryProfile {
	return d.categories
}

// HasCategory reports whether the category exists in the dataset
func (d *Dataset) HasCategory(id types.CategoryID) bool {
	_, ok := d.Profile(id)
	return ok
}

// Profile returns the profile of the given category
func (d *Dataset) Profile(id types.CategoryID) (*CategoryProfile, bool) {
	for _, c := range d.categories {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Record returns the record of the given year and category
func (d *Dataset) Record(year types.Year, category types.CategoryID) (*MaturityRecord, bool) {
	r, ok := d.records[recordKey{year: year, category: category}]
	return r, ok
}

// Records returns all records of the given year in category order
func (d *Dataset) Records(year types.Year) []*MaturityRecord {
	records := make([]*MaturityRecord, 0, len(d.categories))
	for _, c := range d.categories {
		if r, ok := d.Record(year, c.ID); ok {
			records = append(records, r)
		}
	}
	return records
}
