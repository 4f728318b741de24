package config

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

//go:embed baseline.toml
var baselineTOML []byte

// Dataset holds CLI flags for dataset configuration
type Dataset struct {
	path string
}

// Flags returns CLI flags for dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Usage:       "Path to dataset file (.toml, .json or .yaml). Uses the embedded baseline when empty",
			Sources:     cli.EnvVars("MATURITY_EXPLORER_DATASET"),
			Destination: &d.path,
		},
	}
}

// Path returns the configured dataset path
func (d *Dataset) Path() string {
	return d.path
}

// LogValue returns structured log representation
func (d *Dataset) LogValue() slog.Value {
	source := d.path
	if source == "" {
		source = "(embedded)"
	}
	return slog.GroupValue(
		slog.String("source", source),
	)
}

// Configure loads and validates the dataset. When no path is given the
// embedded baseline dataset is used.
func (d *Dataset) Configure() (*model.Dataset, error) {
	if d.path == "" {
		logging.Default().Info("Using embedded baseline dataset")
		return parseDataset(baselineTOML, ".toml")
	}

	raw, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrDatasetNotFound, "failed to open dataset", goerr.V(DatasetPathKey, d.path))
		}
		return nil, goerr.Wrap(err, "failed to read dataset", goerr.V(DatasetPathKey, d.path))
	}

	ds, err := parseDataset(raw, strings.ToLower(filepath.Ext(d.path)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset", goerr.V(DatasetPathKey, d.path))
	}

	logging.Default().Info("Loaded dataset",
		"path", d.path,
		"years", len(ds.Years()),
		"categories", len(ds.Categories()),
	)
	return ds, nil
}

func parseDataset(raw []byte, ext string) (*model.Dataset, error) {
	var doc datasetDoc
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(raw, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML dataset")
		}
	case ".json":
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse JSON dataset")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML dataset")
		}
	default:
		return nil, goerr.Wrap(ErrUnsupportedFormat, "unknown dataset extension", goerr.V("ext", ext))
	}

	return doc.build()
}

type datasetDoc struct {
	Years      []yearDoc     `toml:"year" json:"years" yaml:"years"`
	Categories []categoryDoc `toml:"category" json:"categories" yaml:"categories"`
	Records    []recordDoc   `toml:"record" json:"records" yaml:"records"`
}

type yearDoc struct {
	ID       string `toml:"id" json:"id" yaml:"id"`
	Label    string `toml:"label" json:"label" yaml:"label"`
	Baseline bool   `toml:"baseline" json:"baseline" yaml:"baseline"`
}

type categoryDoc struct {
	ID          string   `toml:"id" json:"id" yaml:"id"`
	Name        string   `toml:"name" json:"name" yaml:"name"`
	Description string   `toml:"description" json:"description" yaml:"description"`
	Incidents   []string `toml:"incidents" json:"incidents" yaml:"incidents"`
	Quote       string   `toml:"quote" json:"quote" yaml:"quote"`
}

type recordDoc struct {
	Category               string               `toml:"category" json:"category" yaml:"category"`
	Year                   string               `toml:"year" json:"year" yaml:"year"`
	ThreatMaturity         int                  `toml:"threat_maturity" json:"threat_maturity" yaml:"threat_maturity"`
	TechnicalControls      int                  `toml:"technical_controls" json:"technical_controls" yaml:"technical_controls"`
	GovernanceEnforcement  int                  `toml:"governance_enforcement" json:"governance_enforcement" yaml:"governance_enforcement"`
	StakeholderProtections int                  `toml:"stakeholder_protections" json:"stakeholder_protections" yaml:"stakeholder_protections"`
	Details                map[string]detailDoc `toml:"details" json:"details" yaml:"details"`
}

type detailDoc struct {
	Description string   `toml:"description" json:"description" yaml:"description"`
	Evidence    []string `toml:"evidence" json:"evidence" yaml:"evidence"`
	References  []string `toml:"references" json:"references" yaml:"references"`
}

func (d *datasetDoc) build() (*model.Dataset, error) {
	years := make([]model.YearInfo, 0, len(d.Years))
	for _, y := range d.Years {
		years = append(years, model.YearInfo{
			ID:       types.Year(y.ID),
			Label:    y.Label,
			Baseline: y.Baseline,
		})
	}

	categories := make([]*model.CategoryProfile, 0, len(d.Categories))
	for _, c := range d.Categories {
		categories = append(categories, &model.CategoryProfile{
			ID:          types.CategoryID(c.ID),
			Name:        c.Name,
			Description: c.Description,
			Incidents:   c.Incidents,
			Quote:       c.Quote,
		})
	}

	records := make([]*model.MaturityRecord, 0, len(d.Records))
	for _, r := range d.Records {
		rec := &model.MaturityRecord{
			Category:              types.CategoryID(r.Category),
			Year:                  types.Year(r.Year),
			ThreatLevel:           types.Level(r.ThreatMaturity),
			TechnicalControls:     types.Level(r.TechnicalControls),
			GovernanceEnforcement: types.Level(r.GovernanceEnforcement),
			StakeholderProtection: types.Level(r.StakeholderProtections),
		}
		if len(r.Details) > 0 {
			rec.Details = make(map[types.Dimension]model.DimensionDetail, len(r.Details))
			for dim, detail := range r.Details {
				key := types.Dimension(dim)
				if err := key.Validate(); err != nil {
					return nil, goerr.Wrap(err, "invalid detail dimension",
						goerr.V(model.CategoryKey, r.Category),
						goerr.V(model.YearKey, r.Year),
					)
				}
				rec.Details[key] = model.DimensionDetail{
					Description: detail.Description,
					Evidence:    detail.Evidence,
					References:  detail.References,
				}
			}
		}
		records = append(records, rec)
	}

	return model.NewDataset(years, categories, records)
}
