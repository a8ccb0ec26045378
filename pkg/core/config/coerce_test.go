package config

import (
	"testing"
)

func TestBaselineFromRaw(t *testing.T) {
	baseline, warnings := BaselineFromRaw(defaultBaseline())

	if len(warnings) != 0 {
		t.Fatalf("Defaults must coerce cleanly, got warnings: %v", warnings)
	}
	if baseline.Revenue != 4000 {
		t.Errorf("Expected revenue 4000, got %f", baseline.Revenue)
	}
	if baseline.EBITDAMargin != 0.20 {
		t.Errorf("Expected margin 0.20, got %f", baseline.EBITDAMargin)
	}
	if baseline.Assets != 7265 {
		t.Errorf("Expected assets 7265, got %f", baseline.Assets)
	}
}

func TestBaselineFromRawNonNumeric(t *testing.T) {
	raw := defaultBaseline()
	raw["revenue"] = "four thousand"
	raw["ebitda"] = []int{1, 2}

	baseline, warnings := BaselineFromRaw(raw)

	// Non-numeric values fall back to 0.0, each with one warning.
	if baseline.Revenue != 0 {
		t.Errorf("Expected revenue 0 after substitution, got %f", baseline.Revenue)
	}
	if baseline.EBITDA != 0 {
		t.Errorf("Expected ebitda 0 after substitution, got %f", baseline.EBITDA)
	}
	if len(warnings) != 2 {
		t.Fatalf("Expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	keys := map[string]bool{}
	for _, w := range warnings {
		keys[w.Key] = true
	}
	if !keys["revenue"] || !keys["ebitda"] {
		t.Errorf("Warnings must name the substituted keys, got %v", warnings)
	}
	// Untouched keys are unaffected.
	if baseline.NetIncome != 400 {
		t.Errorf("Expected net income 400, got %f", baseline.NetIncome)
	}
}

func TestBaselineFromRawMissingKeys(t *testing.T) {
	// Missing keys default silently; only type mismatches warn.
	baseline, warnings := BaselineFromRaw(map[string]interface{}{"revenue": 4000.0})

	if len(warnings) != 0 {
		t.Fatalf("Missing keys must not warn, got %v", warnings)
	}
	if baseline.Revenue != 4000 {
		t.Errorf("Expected revenue 4000, got %f", baseline.Revenue)
	}
	if baseline.EBITDA != 0 || baseline.Assets != 0 {
		t.Error("Missing keys must default to 0.0")
	}
}

func TestCoerceNumeric(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{4000.0, 4000, true},
		{float32(1.5), 1.5, true},
		{42, 42, true},
		{int64(7), 7, true},
		{uint64(9), 9, true},
		{"4000", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, c := range cases {
		got, ok := CoerceNumeric(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("CoerceNumeric(%v): expected (%f, %t), got (%f, %t)", c.in, c.want, c.ok, got, ok)
		}
	}
}
