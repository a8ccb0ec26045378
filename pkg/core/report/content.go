package report

import (
	"fmt"
	"sort"
	"strings"

	"bfc_reports/pkg/core/config"
	"bfc_reports/pkg/core/projection"
	"bfc_reports/pkg/core/strategy"
)

// BaselineYear is the fiscal year the snapshot was taken from.
const BaselineYear = 2018

// DocumentTitle returns the PDF title/header line for one horizon.
func DocumentTitle(h projection.Horizon) string {
	return fmt.Sprintf("BFC Projection Report - %s Projection (~%d)", h.Title(), BaselineYear+h.Years())
}

// BuildDocument assembles the complete markdown body for one horizon's 10-K
// style projection document. Output is fully deterministic: fixed prose plus
// figures from the read-only bundle data.
func BuildDocument(baseline projection.Baseline, res *projection.Result, h projection.Horizon) string {
	var b strings.Builder

	writeTitleBlock(&b, h)
	writeDisclaimer(&b, h)

	b.WriteString("## PART I\n\n")
	b.WriteString("### Item 1. Business\n\n")
	writeBusinessSection(&b, baseline, res, h)
	b.WriteString("### Item 1A. Risk Factors\n\n")
	writeRiskFactors(&b, h)

	b.WriteString("## PART II\n\n")
	b.WriteString("### Item 6. Selected Financial Data (Projected)\n\n")
	writeSelectedFinancialData(&b, baseline, res, h)
	b.WriteString("### Item 7. Management's Discussion and Analysis (Projected)\n\n")
	writeMDNA(&b, baseline, res, h)

	writeStrategicSummary(&b)

	return b.String()
}

func writeTitleBlock(b *strings.Builder, h projection.Horizon) {
	b.WriteString("# FORM 10-K - FINANCIAL PROJECTION\n\n")
	b.WriteString("**Beauty First Cosmetics (BFC)**\n\n")
	fmt.Fprintf(b, "Projection Horizon: %s (Fiscal Year ~%d)\n\n", h.Title(), BaselineYear+h.Years())
	fmt.Fprintf(b, "Based on the %d baseline. Internal simulation, not for filing.\n\n", BaselineYear)
	b.WriteString("---\n\n")
}

func writeDisclaimer(b *strings.Builder, h projection.Horizon) {
	horizonText := strings.ToLower(h.Title())
	b.WriteString("### Important Disclaimer & Basis of Preparation\n\n")
	b.WriteString("**Disclaimer:** This document contains forward-looking statements and " +
		"financial projections based on internal assumptions and methodologies. It is " +
		"intended for illustrative and planning purposes only and does not constitute a " +
		"formal SEC filing or audited financial statement. Actual results may differ " +
		"materially due to various risks and uncertainties. This document should not be " +
		"relied upon for investment decisions.\n\n")
	fmt.Fprintf(b, "**Basis of Preparation:** Projections are derived from the company's %d "+
		"baseline financial data and apply management's growth assumptions for revenue, "+
		"EBITDA margin improvement, and R&D investment increases specific to the %s "+
		"horizon. Net income is projected based on simplified margin assumptions linked "+
		"to EBITDA margin changes. Calculations do not constitute a full financial model.\n\n",
		BaselineYear, horizonText)
}

func writeBusinessSection(b *strings.Builder, baseline projection.Baseline, res *projection.Result, h projection.Horizon) {
	b.WriteString("#### Company Overview & Projected Strategy\n\n")
	fmt.Fprintf(b, "Beauty First Cosmetics (BFC) is a leading U.S.-based cosmetics company "+
		"with operations across multiple segments including Cosmetics, Hair, Fragrances, "+
		"Skin Care, and Beauty Tools. With an approximately %.0f%% share of a $%.0fB "+
		"industry and around 11,000 employees, BFC maintains strong operational and "+
		"financial fundamentals. This document outlines projections for the %s timeframe, "+
		"using the %d fiscal year as a baseline. The underlying strategy assumes continued "+
		"focus on core brand equities, investment in product innovation, expansion of "+
		"digital capabilities (e-commerce, the Magic Mirror AR application), and targeted "+
		"geographic market development in the UK and Germany. Operational efficiency "+
		"improvements are factored into margin projections.\n\n",
		config.MarketSharePct, config.MarketSizeMillions/1000.0, strings.ToLower(h.Title()), BaselineYear)

	b.WriteString("#### Key Financial Projections & Assumptions\n\n")
	writeMetricsTable(b, baseline, res, h, true)
}

// writeMetricsTable emits the metric comparison table. The full variant adds
// EBITDA margin and R&D rows on top of the selected-financial-data trio.
func writeMetricsTable(b *strings.Builder, baseline projection.Baseline, res *projection.Result, h projection.Horizon, full bool) {
	years := h.Years()
	fmt.Fprintf(b, "| Metric | Baseline (%d) | Projected (~%d) | Implied CAGR (%dyr) |\n",
		BaselineYear, BaselineYear+years, years)
	b.WriteString("| --- | --- | --- | --- |\n")

	fmt.Fprintf(b, "| Revenue | %s | %s | %s |\n",
		FormatCurrency(baseline.Revenue), FormatCurrency(res.ProjectedRevenue), res.RevenueCAGR)
	fmt.Fprintf(b, "| EBITDA | %s | %s | %s |\n",
		FormatCurrency(baseline.EBITDA), FormatCurrency(res.ProjectedEBITDA), res.EBITDACAGR)
	if full {
		fmt.Fprintf(b, "| EBITDA Margin | %s | %s | |\n",
			FormatPercentFromDecimal(baseline.EBITDAMargin), FormatPercentFromDecimal(res.ProjectedEBITDAMargin))
	}
	fmt.Fprintf(b, "| Net Income | %s | %s | %s |\n",
		FormatCurrency(baseline.NetIncome), FormatCurrency(res.ProjectedNetIncome), res.NetIncomeCAGR)
	if full {
		fmt.Fprintf(b, "| R&D Spend | %s | %s | %s |\n",
			FormatCurrency(baseline.RnDSpend), FormatCurrency(res.ProjectedRnDSpend), res.RnDCAGR)
	}
	b.WriteString("\n")
}

func writeRiskFactors(b *strings.Builder, h projection.Horizon) {
	b.WriteString("Achieving the financial projections outlined in this document is subject " +
		"to various significant risks and uncertainties. If these risks materialize, actual " +
		"results could differ materially from projections. Key risk categories include:\n\n")

	categories := []struct {
		title string
		risks []string
	}{
		{"Market & Competition Risks", []string{
			fmt.Sprintf("Shifts in consumer preferences or spending power; a %.0f%% change in consumer confidence could measurably affect net sales.", config.SensitivityConsumerConfidencePct),
			"Intensified competition from established global players and emerging niche brands, potentially leading to price pressure or market share erosion.",
			"Failure to adapt to evolving retail channels (D2C, social commerce, traditional retail dynamics).",
		}},
		{"Operational & Supply Chain Risks", []string{
			"Disruptions in sourcing key raw materials or packaging components.",
			"Manufacturing capacity constraints or quality control issues.",
			"Customer concentration: dependence on major accounts for a significant share of net sales.",
			"Cybersecurity incidents affecting operations, customer data, or intellectual property.",
		}},
		{"Macroeconomic & Geopolitical Risks", []string{
			"Global or regional economic downturns impacting consumer demand.",
			"Significant adverse fluctuations in foreign currency exchange rates.",
			fmt.Sprintf("A %.0f-%.0f%% swing in international growth rates may affect margins in new markets.", config.SensitivityInternationalGrowthPct, config.SensitivityInternationalGrowthHiPct),
		}},
		{"Strategic & Execution Risks", []string{
			"Inability to successfully develop and launch innovative, commercially viable products.",
			"Consumer acceptance of the Magic Mirror AR application remains unproven at scale.",
			"Challenges in implementing digital transformation initiatives or integrating new technologies.",
		}},
		{"Regulatory & Compliance Risks", []string{
			"Changes in regulations regarding cosmetic ingredients, safety testing, or advertising standards.",
			"Increased scrutiny from the FDA and international regulators, including data privacy regimes.",
		}},
	}

	if h == projection.FiveYear || h == projection.TenYear {
		categories = append(categories, struct {
			title string
			risks []string
		}{"Longer-Term & Emerging Risks", []string{
			"Fundamental shifts in technology impacting product development or customer interaction.",
			"Significant demographic changes affecting target consumer groups.",
			fmt.Sprintf("Challenges in meeting ambitious long-term (%s) sustainability goals.", strings.ToLower(h.Title())),
		}})
	}

	for _, cat := range categories {
		fmt.Fprintf(b, "#### %s\n\n", cat.title)
		for _, risk := range cat.risks {
			fmt.Fprintf(b, "- %s\n", risk)
		}
		b.WriteString("\n")
	}
}

func writeSelectedFinancialData(b *strings.Builder, baseline projection.Baseline, res *projection.Result, h projection.Horizon) {
	writeMetricsTable(b, baseline, res, h, false)

	fmt.Fprintf(b, "Balance sheet figures are carried at the %d baseline and are not "+
		"independently projected: total assets %s, total liabilities %s, total equity %s.\n\n",
		BaselineYear, FormatCurrency(baseline.Assets), FormatCurrency(baseline.Liabilities),
		FormatCurrency(baseline.Equity))
}

func writeMDNA(b *strings.Builder, baseline projection.Baseline, res *projection.Result, h projection.Horizon) {
	horizonText := strings.ToLower(h.Title())

	b.WriteString("#### Introduction and Basis of Projection\n\n")
	fmt.Fprintf(b, "This MD&A discusses projected financial trends for BFC over the %s "+
		"horizon, based on %d baseline data and specified growth assumptions. These "+
		"projections are illustrative, forward-looking, and subject to risks; they do not "+
		"represent formal guidance or audited forecasts.\n\n", horizonText, BaselineYear)

	b.WriteString("#### Projected Financial Performance\n\n")
	fmt.Fprintf(b, "**Revenue:** Projected to reach %s, representing an implied CAGR of %s. "+
		"Achieving this growth depends on successful product launches, effective marketing, "+
		"digital channel performance, and overall market conditions.\n\n",
		FormatCurrency(res.ProjectedRevenue), res.RevenueCAGR)
	fmt.Fprintf(b, "**Profitability:** EBITDA is projected at %s with an anticipated margin "+
		"of %s, %s over baseline (implied CAGR %s). Net income is projected at %s at a %s "+
		"net margin, %s over baseline (CAGR %s). The profitability outlook relies on "+
		"realizing revenue growth, managing cost inflation, and achieving assumed margin "+
		"improvements.\n\n",
		FormatCurrency(res.ProjectedEBITDA), FormatPercentFromDecimal(res.ProjectedEBITDAMargin),
		FormatPoints((res.ProjectedEBITDAMargin-baseline.EBITDAMargin)*100),
		res.EBITDACAGR, FormatCurrency(res.ProjectedNetIncome),
		FormatPercentFromDecimal(res.ProjectedNetMargin),
		FormatPoints((res.ProjectedNetMargin-baseline.NetMargin())*100),
		res.NetIncomeCAGR)

	b.WriteString("#### Projected Investments and Activities\n\n")
	fmt.Fprintf(b, "**Research & Development:** R&D spending is projected to increase from a "+
		"baseline of %s to %s (CAGR %s), reflecting a strategic priority to invest in "+
		"product efficacy, sustainability, and AR/AI applications in beauty.\n\n",
		FormatCurrency(baseline.RnDSpend), FormatCurrency(res.ProjectedRnDSpend), res.RnDCAGR)
	b.WriteString("**International Expansion:** Entry markets are expected to grow at the " +
		"following annual rates:\n\n")
	writeMarketCAGRList(b)
	b.WriteString("\n**Operational Focus:** Assumptions include ongoing supply chain " +
		"optimization, ERP upgrades, enhanced digital capabilities for e-commerce and " +
		"customer engagement, and operating expense discipline to support margin " +
		"improvement targets.\n\n")

	b.WriteString("#### Projected Liquidity and Capital Resources\n\n")
	b.WriteString("The projections assume sufficient liquidity will be generated from " +
		"operations to fund planned investments. Existing capital structure and access to " +
		"credit markets are assumed stable. Detailed cash flow statement projections are " +
		"not included.\n\n")
}

func writeMarketCAGRList(b *strings.Builder) {
	names := make([]string, 0, len(config.MarketCAGR))
	for name := range config.MarketCAGR {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r := config.MarketCAGR[name]
		fmt.Fprintf(b, "- %s: %.1f%% to %.1f%% per year\n", name, r.Low, r.High)
	}
}

func writeStrategicSummary(b *strings.Builder) {
	b.WriteString("## Strategic Summary & Recommendations\n\n")
	fmt.Fprintf(b, "1. **Global Expansion:** Immediate focus on the UK and Germany with "+
		"dedicated local teams; long-term target of at least a 10%% share of the $%.0fB "+
		"cosmetics market.\n", config.MarketSizeMillions/1000.0)
	b.WriteString("2. **Digital Transformation:** Launch and promote the Magic Mirror AR " +
		"application, then build toward a fully integrated digital ecosystem driving " +
		"personalized consumer experiences.\n")
	b.WriteString("3. **Operational Efficiency:** Invest in ERP upgrades and agile " +
		"manufacturing; target cost reductions of 2-3% near term, 10% mid term, and 15% " +
		"long term.\n")
	b.WriteString("4. **Innovation and R&D:** Increase R&D spending to fuel new product " +
		"development and sustain advantage in AR/VR and sustainability initiatives.\n")
	b.WriteString("5. **Risk Management:** Diversify supply chain sources, reduce dependency " +
		"on major accounts, and strengthen cybersecurity and regulatory compliance.\n\n")

	writePrioritizedInitiatives(b)

	b.WriteString("### Implementation Timeline\n\n")
	writeSequencingIntro(b)
	b.WriteString("- Immediate (0-1 year): finalize digital launches, begin market entry, secure regulatory approvals.\n")
	b.WriteString("- Short-term (1-3 years): scale international operations and optimize operational systems.\n")
	b.WriteString("- Mid-term (3-5 years): consolidate market positions and refine product offerings.\n")
	b.WriteString("- Long-term (5-10 years): establish BFC as a global industry leader with sustained growth.\n")
}

// strategicCapital is the near-term capital envelope for initiative
// selection; sequencingHorizonMonths bounds the first implementation wave.
const (
	strategicCapital        = 2_000_000.0
	sequencingCapital       = 3_000_000.0
	sequencingHorizonMonths = 24.0
)

func strategicFramework() (*strategy.Framework, []strategy.Project) {
	f := strategy.NewFramework(strategy.DefaultThresholds())
	for _, p := range strategy.CaseStudyProjects() {
		f.Add(p)
	}
	return f, f.Viable()
}

// writePrioritizedInitiatives ranks the case-study transformation projects
// by value score and names the highest-value combination affordable under
// the near-term capital envelope.
func writePrioritizedInitiatives(b *strings.Builder) {
	framework, viable := strategicFramework()
	ranked := framework.Prioritize(viable)
	thresholds := strategy.DefaultThresholds()

	b.WriteString("### Prioritized Initiatives\n\n")
	fmt.Fprintf(b, "%d candidate initiatives pass viability screening (timeline within "+
		"%.0f months, cost at or below %s, effort at most %s) and are ranked below by "+
		"value score, which weighs stated potential value against effort, duration and "+
		"cost:\n\n",
		len(ranked), thresholds.MaxTimelineMonths,
		FormatCurrency(thresholds.MaxCost/1_000_000), thresholds.MaxEffort)

	b.WriteString("| Initiative | Value Score | Cost | Timeline |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, r := range ranked {
		fmt.Fprintf(b, "| %s | %.2f | %s | %.1f mo |\n",
			r.Name, r.Score, FormatCurrency(r.CostEstimate/1_000_000), r.TimelineMonths)
	}
	b.WriteString("\n")

	portfolio := framework.OptimalPortfolio(viable, strategicCapital)
	fmt.Fprintf(b, "Under a %s near-term capital constraint the highest-value combination "+
		"is: %s (total cost %s, combined score %.2f).\n\n",
		FormatCurrency(strategicCapital/1_000_000), strings.Join(portfolio.Projects, "; "),
		FormatCurrency(portfolio.TotalCost/1_000_000), portfolio.TotalScore)
}

// writeSequencingIntro names the first implementation wave: the
// highest-score-first selection path under the sequencing envelope.
func writeSequencingIntro(b *strings.Builder) {
	framework, viable := strategicFramework()
	paths := framework.SimulatePaths(viable, sequencingCapital, sequencingHorizonMonths)
	first := paths[strategy.PathHighScoreFirst]

	fmt.Fprintf(b, "The first implementation wave follows a highest-value-first selection "+
		"under a %s envelope over %.0f months: %s (%s deployed).\n\n",
		FormatCurrency(sequencingCapital/1_000_000), sequencingHorizonMonths,
		strings.Join(first.Projects, "; "), FormatCurrency(first.CapitalUsed/1_000_000))
}
