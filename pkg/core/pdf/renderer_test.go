package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() log.Logger {
	return log.Logger{Level: log.FatalLevel}
}

const sampleMarkdown = `# FORM 10-K - FINANCIAL PROJECTION

**Beauty First Cosmetics (BFC)**

Projection Horizon: One Year (Fiscal Year ~2019)

---

## PART I

### Item 1. Business

Some introductory prose with *emphasis* and **strong emphasis** spanning
multiple lines of paragraph text.

| Metric | Baseline (2018) | Projected (~2019) | Implied CAGR (1yr) |
| --- | --- | --- | --- |
| Revenue | $4,000.0M | $4,200.0M | 5.0% |
| EBITDA | $800.0M | $861.0M | 7.6% |
| Net Income | $400.0M | $430.5M | 7.6% |

#### Risk Factors

- First risk item
- Second risk item
- Third risk item
`

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer(testLogger())

	data, err := r.Render(sampleMarkdown, "BFC Projection Report - One Year Projection (~2019)")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Every PDF starts with the %PDF- marker and ends with an EOF marker.
	assert.True(t, len(data) > 8)
	assert.Equal(t, "%PDF-", string(data[:5]))
	assert.Contains(t, string(data[len(data)-32:]), "%%EOF")
}

func TestRenderEmptyMarkdown(t *testing.T) {
	r := NewRenderer(testLogger())

	// An empty body still yields a valid single-page document.
	data, err := r.Render("", "Empty")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestRenderDeterministicPerInput(t *testing.T) {
	r := NewRenderer(testLogger())

	first, err := r.Render(sampleMarkdown, "Title")
	require.NoError(t, err)
	second, err := r.Render(sampleMarkdown, "Title")
	require.NoError(t, err)

	// Content layout is deterministic; only the creation timestamp metadata
	// may differ, so sizes must match.
	assert.Equal(t, len(first), len(second))
}

func TestRenderAndVerifyRoundTrip(t *testing.T) {
	r := NewRenderer(testLogger())
	data, err := r.Render(sampleMarkdown, "Round Trip")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "roundtrip.pdf")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	assert.NoError(t, Verify(path))
}

func TestFitCellKeepsRunesWhole(t *testing.T) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetFont(pageFont, "", 8)
	w := &docWriter{doc: doc}

	long := strings.Repeat("Prioritätenübersicht ", 10)
	fitted := w.fitCell(long, 20)

	assert.True(t, strings.HasSuffix(fitted, "..."))
	assert.True(t, utf8.ValidString(fitted), "truncation must not split a rune")
	assert.Less(t, len(fitted), len(long))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	assert.Error(t, Verify(path))
}

func TestVerifyMissingFile(t *testing.T) {
	assert.Error(t, Verify(filepath.Join(t.TempDir(), "absent.pdf")))
}
