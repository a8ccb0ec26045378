// Package config holds the compiled-in baseline figures and growth
// assumptions for BFC projection runs, plus optional file-based overrides.
// The projection engine never depends on how this data is sourced; the
// boundary stays a plain data-in, data-out contract.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"bfc_reports/pkg/core/projection"
)

// Market parameters from the 2018 case study, used in document prose only.
const (
	MarketSizeMillions = 52_000.0
	MarketSharePct     = 7.0
)

// MarketCAGRRange is the annual growth band for a prospective market.
type MarketCAGRRange struct {
	Low  float64
	High float64
}

// MarketCAGR holds the case-study growth ranges for new markets, in percent
// per year.
var MarketCAGR = map[string]MarketCAGRRange{
	"UK":      {Low: 3.2, High: 8.0},
	"Germany": {Low: 1.3, High: 4.0},
}

// Sensitivity margins, in percent, quoted in the risk factors section.
const (
	SensitivityConsumerConfidencePct    = 1.0
	SensitivityInternationalGrowthPct   = 2.0
	SensitivityInternationalGrowthHiPct = 3.0
)

// Settings is the assembled run configuration handed to main.
type Settings struct {
	OutputDir string

	// RawBaseline is kept as an untyped mapping so that file-sourced values
	// flow through the same coercion path as the defaults.
	RawBaseline map[string]interface{}

	Growth projection.GrowthAssumptions
}

// Defaults returns the compiled-in configuration: the 2018 10-K baseline and
// management's growth assumptions per horizon.
func Defaults() *Settings {
	return &Settings{
		OutputDir:   "./outputs",
		RawBaseline: defaultBaseline(),
		Growth: projection.GrowthAssumptions{
			OneYear: &projection.OneYearAssumptions{
				CommonAssumptions: projection.CommonAssumptions{
					EBITDAMarginImprovement: 0.5,
					RnDIncreasePct:          10.0,
				},
				RevenueGrowthPct: 5,
			},
			FiveYear: &projection.MultiYearAssumptions{
				CommonAssumptions: projection.CommonAssumptions{
					EBITDAMarginImprovement: 2.0,
					RnDIncreasePct:          50.0,
				},
				CumulativeRevenueGrowthPct: 20,
			},
			TenYear: &projection.MultiYearAssumptions{
				CommonAssumptions: projection.CommonAssumptions{
					EBITDAMarginImprovement: 4.0,
					RnDIncreasePct:          100.0,
				},
				CumulativeRevenueGrowthPct: 40,
			},
		},
	}
}

func defaultBaseline() map[string]interface{} {
	// 2018 10-K figures, in millions USD.
	return map[string]interface{}{
		"assets":        7265.0,
		"liabilities":   3794.0,
		"equity":        3471.0,
		"revenue":       4000.0,
		"ebitda":        800.0,
		"ebitda_margin": 0.20,
		"net_income":    400.0,
		"r_and_d_spend": 200.0,
	}
}

// fileConfig mirrors the on-disk override format. YAML files use the yaml
// tags; HJSON files (which allow commented assumption sets) decode via the
// json tags.
type fileConfig struct {
	OutputDir         string                        `yaml:"output_dir" json:"output_dir"`
	Baseline          map[string]interface{}        `yaml:"baseline" json:"baseline"`
	GrowthAssumptions map[string]map[string]float64 `yaml:"growth_assumptions" json:"growth_assumptions"`
}

// Load reads a YAML or HJSON configuration file and overlays it on the
// defaults. Sections absent from the file keep their default values; a
// growth_assumptions section present in the file replaces the default set
// entirely, so horizons omitted there are treated as missing.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	case ".hjson", ".json":
		if err := hjson.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse hjson config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml, .hjson or .json)", ext)
	}

	settings := Defaults()
	if fc.OutputDir != "" {
		settings.OutputDir = fc.OutputDir
	}
	if fc.Baseline != nil {
		settings.RawBaseline = fc.Baseline
	}
	if fc.GrowthAssumptions != nil {
		settings.Growth = GrowthFromRaw(fc.GrowthAssumptions)
	}
	return settings, nil
}

// GrowthFromRaw converts a plain nested mapping (horizon -> parameter ->
// value) into the typed per-horizon assumption set. Horizons absent from the
// mapping stay nil.
func GrowthFromRaw(raw map[string]map[string]float64) projection.GrowthAssumptions {
	var growth projection.GrowthAssumptions
	if m, ok := raw[string(projection.OneYear)]; ok {
		growth.OneYear = &projection.OneYearAssumptions{
			CommonAssumptions: commonFromRaw(m),
			RevenueGrowthPct:  m["revenue_growth_pct"],
		}
	}
	if m, ok := raw[string(projection.FiveYear)]; ok {
		growth.FiveYear = &projection.MultiYearAssumptions{
			CommonAssumptions:          commonFromRaw(m),
			CumulativeRevenueGrowthPct: m["cumulative_revenue_growth_pct"],
		}
	}
	if m, ok := raw[string(projection.TenYear)]; ok {
		growth.TenYear = &projection.MultiYearAssumptions{
			CommonAssumptions:          commonFromRaw(m),
			CumulativeRevenueGrowthPct: m["cumulative_revenue_growth_pct"],
		}
	}
	return growth
}

func commonFromRaw(m map[string]float64) projection.CommonAssumptions {
	return projection.CommonAssumptions{
		EBITDAMarginImprovement: m["ebitda_margin_improvement"],
		RnDIncreasePct:          m["r_and_d_increase"],
	}
}
