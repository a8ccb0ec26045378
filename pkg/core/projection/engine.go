package projection

import (
	"github.com/phuslu/log"

	"bfc_reports/pkg/core/calc"
)

// Engine turns a baseline snapshot plus per-horizon growth assumptions into
// a bundle of derived metrics. Given identical inputs the output is
// bit-for-bit identical: there is no hidden state, randomness or clock
// dependency.
type Engine struct {
	logger log.Logger
}

// NewEngine creates a projection engine. The logger is only used for
// missing-assumption warnings; calculations themselves never log.
func NewEngine(logger log.Logger) *Engine {
	return &Engine{logger: logger}
}

// Project computes the derived metrics for every fixed horizon.
//
// Per horizon, independently:
//   - Revenue: one-year applies a single-period growth rate; five/ten-year
//     apply the cumulative percentage directly to baseline revenue.
//   - EBITDA margin: baseline margin plus the improvement in percentage
//     points, clamped to [0, 1].
//   - EBITDA: projected revenue x projected margin (derived, not grown).
//   - R&D spend: baseline spend grown by its own percentage.
//   - Net margin: improves by exactly half the EBITDA margin improvement,
//     clamped to [0, 1]. Simplifying business rule of the model.
//   - Net income: projected revenue x projected net margin.
//   - Each grown metric gets an implied CAGR over the horizon's year count.
//
// A horizon without assumptions yields a nil entry and a logged warning; the
// remaining horizons are still computed.
func (e *Engine) Project(baseline Baseline, growth GrowthAssumptions) *Bundle {
	bundle := &Bundle{
		Baseline: baseline,
		Horizons: make(map[Horizon]*Result, 3),
	}
	baseNetMargin := baseline.NetMargin()

	for _, h := range Horizons() {
		common, revenuePct, ok := growth.horizon(h)
		if !ok {
			e.logger.Warn().
				Str("horizon", string(h)).
				Msg("Growth assumptions missing for horizon; producing empty result")
			bundle.Horizons[h] = nil
			continue
		}
		bundle.Horizons[h] = e.projectHorizon(baseline, baseNetMargin, common, revenuePct, h.Years())
	}
	return bundle
}

func (e *Engine) projectHorizon(baseline Baseline, baseNetMargin float64, common CommonAssumptions, revenuePct float64, years int) *Result {
	res := &Result{}

	// Revenue. For multi-year horizons revenuePct is the cumulative total,
	// applied once, not compounded.
	res.ProjectedRevenue = baseline.Revenue * (1 + revenuePct/100.0)
	res.RevenueCAGR = calc.ComputeCAGR(baseline.Revenue, res.ProjectedRevenue, years)

	// EBITDA margin and EBITDA.
	res.ProjectedEBITDAMargin = clamp01(baseline.EBITDAMargin + common.EBITDAMarginImprovement/100.0)
	res.ProjectedEBITDA = res.ProjectedRevenue * res.ProjectedEBITDAMargin
	res.EBITDACAGR = calc.ComputeCAGR(baseline.EBITDA, res.ProjectedEBITDA, years)

	// R&D spend grows independently of revenue.
	res.ProjectedRnDSpend = baseline.RnDSpend * (1 + common.RnDIncreasePct/100.0)
	res.RnDCAGR = calc.ComputeCAGR(baseline.RnDSpend, res.ProjectedRnDSpend, years)

	// Net income via the half-improvement margin rule.
	netMarginImprovement := common.EBITDAMarginImprovement / 2.0
	res.ProjectedNetMargin = clamp01(baseNetMargin + netMarginImprovement/100.0)
	res.ProjectedNetIncome = res.ProjectedRevenue * res.ProjectedNetMargin
	res.NetIncomeCAGR = calc.ComputeCAGR(baseline.NetIncome, res.ProjectedNetIncome, years)

	return res
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
