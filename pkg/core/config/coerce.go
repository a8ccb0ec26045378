package config

import (
	"fmt"

	"bfc_reports/pkg/core/projection"
)

// Warning records a defensive substitution made while reading baseline data.
// Substitutions are observable but never fatal.
type Warning struct {
	Key     string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Key, w.Message)
}

// BaselineFromRaw builds a typed baseline from a plain mapping. Missing keys
// default to 0.0 silently; non-numeric values are rejected in favor of 0.0
// with a recorded warning. An entirely empty mapping is the caller's problem
// (a fatal data error at the top level), not this function's.
func BaselineFromRaw(raw map[string]interface{}) (projection.Baseline, []Warning) {
	var warnings []Warning
	get := func(key string) float64 {
		val, ok := raw[key]
		if !ok || val == nil {
			return 0.0
		}
		num, ok := CoerceNumeric(val)
		if !ok {
			warnings = append(warnings, Warning{
				Key:     key,
				Message: fmt.Sprintf("non-numeric value %v (%T); using default 0.0", val, val),
			})
			return 0.0
		}
		return num
	}

	baseline := projection.Baseline{
		Assets:       get("assets"),
		Liabilities:  get("liabilities"),
		Equity:       get("equity"),
		Revenue:      get("revenue"),
		EBITDA:       get("ebitda"),
		EBITDAMargin: get("ebitda_margin"),
		NetIncome:    get("net_income"),
		RnDSpend:     get("r_and_d_spend"),
	}
	return baseline, warnings
}

// CoerceNumeric converts the numeric types YAML, HJSON and literal Go maps
// produce into float64. Anything else is rejected.
func CoerceNumeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
