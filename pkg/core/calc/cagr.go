// Package calc provides deterministic financial calculations for the
// projection model. All functions are pure: failure modes are encoded as
// typed values, never as errors or panics, because these figures are
// diagnostic/display values rather than control flow.
package calc

import (
	"fmt"
	"math"
)

// Reason classifies why a CAGR could not be computed.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonInvalidYears     Reason = "Invalid Years"
	ReasonInvalidValues    Reason = "Invalid Values"
	ReasonZeroBase         Reason = "Zero Base"
	ReasonNegativeValue    Reason = "Negative Value"
	ReasonCalculationError Reason = "Calculation Error"
)

// CAGR is the result of a compound annual growth rate calculation: either a
// numeric percentage or a Reason explaining why the rate is not applicable.
type CAGR struct {
	Value  float64
	Reason Reason
}

// Valid reports whether the CAGR holds a numeric percentage.
func (c CAGR) Valid() bool {
	return c.Reason == ReasonNone
}

// String renders the CAGR for display, e.g. "5.0%" or "N/A (Zero Base)".
func (c CAGR) String() string {
	if c.Valid() {
		return fmt.Sprintf("%.1f%%", c.Value)
	}
	return "N/A (" + string(c.Reason) + ")"
}

// ComputeCAGR calculates the compound annual growth rate between start and
// end over the given number of years, as a percentage.
//
// The edge-case policy is ordered; the first matching rule wins:
//  1. years <= 0                      -> Invalid Years
//  2. non-finite start or end         -> Invalid Values
//  3. start == 0                      -> Zero Base (division undefined)
//  4. start < 0 or end < 0            -> Negative Value (rate not meaningful)
//  5. otherwise ((end/start)^(1/years) - 1) * 100
//  6. non-finite result               -> Calculation Error
//
// Rule 4 guards rule 5 against non-real results, but the outcome of the
// power computation is still checked rather than assumed.
func ComputeCAGR(start, end float64, years int) CAGR {
	if years <= 0 {
		return CAGR{Reason: ReasonInvalidYears}
	}
	if !isFinite(start) || !isFinite(end) {
		return CAGR{Reason: ReasonInvalidValues}
	}
	if start == 0 {
		return CAGR{Reason: ReasonZeroBase}
	}
	if start < 0 || end < 0 {
		return CAGR{Reason: ReasonNegativeValue}
	}

	rate := (math.Pow(end/start, 1.0/float64(years)) - 1) * 100.0
	if !isFinite(rate) {
		return CAGR{Reason: ReasonCalculationError}
	}
	return CAGR{Value: rate}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
