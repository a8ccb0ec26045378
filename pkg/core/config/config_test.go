package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	s := Defaults()

	if s.OutputDir != "./outputs" {
		t.Errorf("Expected output dir ./outputs, got %q", s.OutputDir)
	}
	if got := s.RawBaseline["revenue"]; got != 4000.0 {
		t.Errorf("Expected baseline revenue 4000, got %v", got)
	}
	if got := s.RawBaseline["ebitda_margin"]; got != 0.20 {
		t.Errorf("Expected baseline ebitda_margin 0.20, got %v", got)
	}

	if s.Growth.OneYear == nil || s.Growth.FiveYear == nil || s.Growth.TenYear == nil {
		t.Fatal("All three default horizons must carry assumptions")
	}
	if s.Growth.OneYear.RevenueGrowthPct != 5 {
		t.Errorf("Expected one-year revenue growth 5, got %f", s.Growth.OneYear.RevenueGrowthPct)
	}
	if s.Growth.TenYear.CumulativeRevenueGrowthPct != 40 {
		t.Errorf("Expected ten-year cumulative growth 40, got %f", s.Growth.TenYear.CumulativeRevenueGrowthPct)
	}
	if s.Growth.FiveYear.EBITDAMarginImprovement != 2.0 {
		t.Errorf("Expected five-year margin improvement 2.0, got %f", s.Growth.FiveYear.EBITDAMarginImprovement)
	}
}

func TestLoadYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	content := `
output_dir: /tmp/reports
baseline:
  revenue: 5000
  ebitda: 900
growth_assumptions:
  one_year:
    revenue_growth_pct: 8
    ebitda_margin_improvement: 1.0
    r_and_d_increase: 12
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.OutputDir != "/tmp/reports" {
		t.Errorf("Expected overridden output dir, got %q", s.OutputDir)
	}
	if got, _ := CoerceNumeric(s.RawBaseline["revenue"]); got != 5000 {
		t.Errorf("Expected overridden revenue 5000, got %v", s.RawBaseline["revenue"])
	}

	// A growth_assumptions section replaces the default set entirely: only
	// one_year was given, so five_year and ten_year are now missing.
	if s.Growth.OneYear == nil {
		t.Fatal("Expected one-year assumptions")
	}
	if s.Growth.OneYear.RevenueGrowthPct != 8 {
		t.Errorf("Expected revenue growth 8, got %f", s.Growth.OneYear.RevenueGrowthPct)
	}
	if s.Growth.FiveYear != nil || s.Growth.TenYear != nil {
		t.Error("Horizons omitted from the file must be nil, not defaulted")
	}
}

func TestLoadHJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.hjson")
	content := `{
  // commented assumption sets are the point of the hjson format
  baseline: {
    revenue: 6000
  }
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got, _ := CoerceNumeric(s.RawBaseline["revenue"]); got != 6000 {
		t.Errorf("Expected revenue 6000, got %v", s.RawBaseline["revenue"])
	}
	// Untouched sections keep defaults.
	if s.Growth.TenYear == nil {
		t.Error("Growth assumptions must keep defaults when the file omits them")
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.toml")
	if err := os.WriteFile(path, []byte("x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for unsupported config format")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestGrowthFromRawMissingHorizon(t *testing.T) {
	raw := map[string]map[string]float64{
		"one_year": {
			"revenue_growth_pct":        5,
			"ebitda_margin_improvement": 0.5,
			"r_and_d_increase":          10,
		},
		"five_year": {
			"cumulative_revenue_growth_pct": 20,
			"ebitda_margin_improvement":     2,
			"r_and_d_increase":              50,
		},
	}
	growth := GrowthFromRaw(raw)

	if growth.OneYear == nil || growth.FiveYear == nil {
		t.Fatal("Expected one-year and five-year assumptions")
	}
	if growth.TenYear != nil {
		t.Error("Expected nil ten-year assumptions")
	}
	if growth.FiveYear.CumulativeRevenueGrowthPct != 20 {
		t.Errorf("Expected cumulative growth 20, got %f", growth.FiveYear.CumulativeRevenueGrowthPct)
	}
	if growth.OneYear.RnDIncreasePct != 10 {
		t.Errorf("Expected r&d increase 10, got %f", growth.OneYear.RnDIncreasePct)
	}
}
