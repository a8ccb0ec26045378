package report

import (
	"strings"
	"testing"

	"bfc_reports/pkg/core/calc"
	"bfc_reports/pkg/core/projection"
)

func contentBaseline() projection.Baseline {
	return projection.Baseline{
		Assets: 7265, Liabilities: 3794, Equity: 3471,
		Revenue: 4000, EBITDA: 800, EBITDAMargin: 0.20,
		NetIncome: 400, RnDSpend: 200,
	}
}

func contentResult() *projection.Result {
	return &projection.Result{
		ProjectedRevenue: 4200, ProjectedEBITDA: 861, ProjectedEBITDAMargin: 0.205,
		ProjectedNetIncome: 430.5, ProjectedNetMargin: 0.1025, ProjectedRnDSpend: 220,
		RevenueCAGR:   calc.ComputeCAGR(4000, 4200, 1),
		EBITDACAGR:    calc.ComputeCAGR(800, 861, 1),
		NetIncomeCAGR: calc.ComputeCAGR(400, 430.5, 1),
		RnDCAGR:       calc.ComputeCAGR(200, 220, 1),
	}
}

func TestDocumentTitle(t *testing.T) {
	cases := []struct {
		h    projection.Horizon
		want string
	}{
		{projection.OneYear, "BFC Projection Report - One Year Projection (~2019)"},
		{projection.FiveYear, "BFC Projection Report - Five Year Projection (~2023)"},
		{projection.TenYear, "BFC Projection Report - Ten Year Projection (~2028)"},
	}
	for _, c := range cases {
		if got := DocumentTitle(c.h); got != c.want {
			t.Errorf("%s: expected %q, got %q", c.h, c.want, got)
		}
	}
}

func TestBuildDocumentSections(t *testing.T) {
	doc := BuildDocument(contentBaseline(), contentResult(), projection.OneYear)

	for _, want := range []string{
		"# FORM 10-K - FINANCIAL PROJECTION",
		"Beauty First Cosmetics (BFC)",
		"Important Disclaimer & Basis of Preparation",
		"## PART I",
		"### Item 1. Business",
		"### Item 1A. Risk Factors",
		"## PART II",
		"### Item 6. Selected Financial Data (Projected)",
		"### Item 7. Management's Discussion and Analysis (Projected)",
		"## Strategic Summary & Recommendations",
		"### Implementation Timeline",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Document missing section %q", want)
		}
	}
}

func TestBuildDocumentFigures(t *testing.T) {
	doc := BuildDocument(contentBaseline(), contentResult(), projection.OneYear)

	for _, want := range []string{
		"$4,000.0M", // baseline revenue
		"$4,200.0M", // projected revenue
		"$861.0M",   // derived EBITDA
		"20.5%",     // projected margin
		"$430.5M",   // projected net income
		"$220.0M",   // projected R&D
		"5.0%",      // implied revenue CAGR
		"$7,265.0M", // carried-through assets
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Document missing figure %q", want)
		}
	}
}

func TestBuildDocumentNotApplicableCAGR(t *testing.T) {
	res := contentResult()
	res.NetIncomeCAGR = calc.ComputeCAGR(-50, 430.5, 1)

	doc := BuildDocument(contentBaseline(), res, projection.OneYear)
	if !strings.Contains(doc, "N/A (Negative Value)") {
		t.Error("Not-applicable CAGR must surface with its reason")
	}
}

func TestBuildDocumentLongHorizonRisks(t *testing.T) {
	short := BuildDocument(contentBaseline(), contentResult(), projection.OneYear)
	long := BuildDocument(contentBaseline(), contentResult(), projection.TenYear)

	const extra = "Longer-Term & Emerging Risks"
	if strings.Contains(short, extra) {
		t.Error("One-year document must not carry the long-horizon risk category")
	}
	if !strings.Contains(long, extra) {
		t.Error("Ten-year document must carry the long-horizon risk category")
	}
}

func TestBuildDocumentMarketProse(t *testing.T) {
	doc := BuildDocument(contentBaseline(), contentResult(), projection.FiveYear)

	// Market CAGR list is sorted by market name.
	germany := strings.Index(doc, "Germany: 1.3% to 4.0% per year")
	uk := strings.Index(doc, "UK: 3.2% to 8.0% per year")
	if germany < 0 || uk < 0 {
		t.Fatal("Document missing market growth ranges")
	}
	if germany > uk {
		t.Error("Market list must be sorted by name")
	}
}

func TestBuildDocumentMarginDeltas(t *testing.T) {
	doc := BuildDocument(contentBaseline(), contentResult(), projection.OneYear)

	// EBITDA margin moves 0.20 -> 0.205, net margin 0.10 -> 0.1025.
	if !strings.Contains(doc, "+0.50 p.p. over baseline") {
		t.Error("MD&A must state the EBITDA margin improvement in points")
	}
	if !strings.Contains(doc, "+0.25 p.p. over baseline") {
		t.Error("MD&A must state the net margin improvement in points")
	}
}

func TestBuildDocumentPrioritizedInitiatives(t *testing.T) {
	doc := BuildDocument(contentBaseline(), contentResult(), projection.OneYear)

	if !strings.Contains(doc, "### Prioritized Initiatives") {
		t.Fatal("Document missing prioritized initiatives section")
	}
	// Ranking table: highest value score first.
	ap := strings.Index(doc, "| AP Recovery Review | 15.25 | $0.3M | 3.5 mo |")
	erp := strings.Index(doc, "| New ERP Implementation | -8.75 | $1.5M | 17.5 mo |")
	if ap < 0 || erp < 0 {
		t.Fatal("Ranking table missing expected rows")
	}
	if ap > erp {
		t.Error("Ranking table must be ordered by descending value score")
	}

	// Capital-constrained portfolio line.
	if !strings.Contains(doc, "Under a $2.0M near-term capital constraint") {
		t.Error("Document missing portfolio recommendation")
	}
	if !strings.Contains(doc, "total cost $1.9M, combined score 66.25") {
		t.Error("Portfolio recommendation missing cost and score figures")
	}

	// Sequencing intro ahead of the phased timeline.
	if !strings.Contains(doc, "The first implementation wave follows a highest-value-first selection") {
		t.Error("Implementation timeline missing sequencing introduction")
	}
	// 300k+350k+400k+450k+350k = $1.85M, shown to one decimal.
	if !strings.Contains(doc, "M deployed)") {
		t.Error("Sequencing intro missing deployed capital figure")
	}
}

func TestBuildDocumentDeterministic(t *testing.T) {
	first := BuildDocument(contentBaseline(), contentResult(), projection.FiveYear)
	second := BuildDocument(contentBaseline(), contentResult(), projection.FiveYear)
	if first != second {
		t.Error("Document assembly must be deterministic")
	}
}
