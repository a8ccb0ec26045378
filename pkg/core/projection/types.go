package projection

import (
	"bfc_reports/pkg/core/calc"
)

// =============================================================================
// HORIZONS
// =============================================================================

// Horizon identifies one of the three fixed projection periods.
type Horizon string

const (
	OneYear  Horizon = "one_year"
	FiveYear Horizon = "five_year"
	TenYear  Horizon = "ten_year"
)

// Horizons returns all horizons in their fixed reporting order.
func Horizons() []Horizon {
	return []Horizon{OneYear, FiveYear, TenYear}
}

// Years returns the horizon length in years from baseline.
func (h Horizon) Years() int {
	switch h {
	case OneYear:
		return 1
	case FiveYear:
		return 5
	case TenYear:
		return 10
	}
	return 0
}

// Title returns the human-readable form, e.g. "Five Year".
func (h Horizon) Title() string {
	switch h {
	case OneYear:
		return "One Year"
	case FiveYear:
		return "Five Year"
	case TenYear:
		return "Ten Year"
	}
	return string(h)
}

// =============================================================================
// BASELINE
// =============================================================================

// Baseline is the fixed year-zero financial snapshot all projections are
// computed from. Figures are in millions of USD; EBITDAMargin is a decimal
// fraction (0.20 = 20%). Assets, Liabilities and Equity are carried through
// to the documents but not projected.
type Baseline struct {
	Assets      float64
	Liabilities float64
	Equity      float64

	Revenue      float64
	EBITDA       float64
	EBITDAMargin float64
	NetIncome    float64
	RnDSpend     float64
}

// NetMargin derives the baseline net income margin (0 if revenue is 0).
func (b Baseline) NetMargin() float64 {
	if b.Revenue == 0 {
		return 0
	}
	return b.NetIncome / b.Revenue
}

// =============================================================================
// GROWTH ASSUMPTIONS
// =============================================================================

// CommonAssumptions are the drivers shared by every horizon.
type CommonAssumptions struct {
	// EBITDAMarginImprovement is expressed in percentage points, added to
	// the baseline margin after division by 100.
	EBITDAMarginImprovement float64
	// RnDIncreasePct grows baseline R&D spend, independent of revenue.
	RnDIncreasePct float64
}

// OneYearAssumptions drives the one-year horizon with a single-period
// revenue growth rate.
type OneYearAssumptions struct {
	CommonAssumptions
	RevenueGrowthPct float64
}

// MultiYearAssumptions drives the five- and ten-year horizons with a
// cumulative revenue growth percentage. The cumulative percentage is the
// total multiplier over the whole horizon; it is NOT compounded
// year-over-year.
type MultiYearAssumptions struct {
	CommonAssumptions
	CumulativeRevenueGrowthPct float64
}

// GrowthAssumptions holds the per-horizon drivers. A nil entry means no
// assumptions exist for that horizon; the engine produces an empty result
// for it rather than failing.
type GrowthAssumptions struct {
	OneYear  *OneYearAssumptions
	FiveYear *MultiYearAssumptions
	TenYear  *MultiYearAssumptions
}

// horizon unpacks the drivers for h into the shared fields plus the revenue
// growth percentage applicable to that horizon. ok is false when the horizon
// has no assumptions.
func (g GrowthAssumptions) horizon(h Horizon) (common CommonAssumptions, revenuePct float64, ok bool) {
	switch h {
	case OneYear:
		if g.OneYear == nil {
			return CommonAssumptions{}, 0, false
		}
		return g.OneYear.CommonAssumptions, g.OneYear.RevenueGrowthPct, true
	case FiveYear:
		if g.FiveYear == nil {
			return CommonAssumptions{}, 0, false
		}
		return g.FiveYear.CommonAssumptions, g.FiveYear.CumulativeRevenueGrowthPct, true
	case TenYear:
		if g.TenYear == nil {
			return CommonAssumptions{}, 0, false
		}
		return g.TenYear.CommonAssumptions, g.TenYear.CumulativeRevenueGrowthPct, true
	}
	return CommonAssumptions{}, 0, false
}

// =============================================================================
// RESULTS
// =============================================================================

// Result holds the derived metrics for one horizon. Margins are decimal
// fractions clamped to [0, 1]; the CAGR fields carry either a numeric
// percentage or a typed not-applicable reason.
type Result struct {
	ProjectedRevenue      float64
	ProjectedEBITDA       float64
	ProjectedEBITDAMargin float64
	ProjectedNetIncome    float64
	ProjectedNetMargin    float64
	ProjectedRnDSpend     float64

	RevenueCAGR   calc.CAGR
	EBITDACAGR    calc.CAGR
	NetIncomeCAGR calc.CAGR
	RnDCAGR       calc.CAGR
}

// Bundle is the engine's output: the baseline copy plus one entry per
// horizon. A nil entry marks a horizon whose assumptions were missing,
// distinct from a computed-but-degenerate result. The bundle is read-only
// once produced; downstream consumers must not mutate it.
type Bundle struct {
	Baseline Baseline
	Horizons map[Horizon]*Result
}
