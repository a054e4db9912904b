package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"

	"meanci/domain/core"
	"meanci/domain/stats"
)

// Analysis bundles one interval computation with enough context to narrate it.
type Analysis struct {
	ID       core.AnalysisID          `json:"id"`
	Title    string                   `json:"title"`
	Source   string                   `json:"source"` // where the sample came from (file, flag, generator)
	Interval stats.ConfidenceInterval `json:"interval"`
}

// NewAnalysis assigns a fresh ID to the given computation.
func NewAnalysis(title, source string, interval stats.ConfidenceInterval) Analysis {
	return Analysis{
		ID:       core.AnalysisID(core.NewID()),
		Title:    title,
		Source:   source,
		Interval: interval,
	}
}

// Markdown renders the analysis as a narrative markdown report: sample
// summary, the formula actually applied, and the resulting interval.
func Markdown(a Analysis) string {
	est := a.Interval.Estimate
	level := a.Interval.Level.Float()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	if a.Source != "" {
		fmt.Fprintf(&b, "Sample source: %s\n\n", a.Source)
	}

	b.WriteString("## Sample summary\n\n")
	fmt.Fprintf(&b, "| n | mean | std dev (n-1) | std error | df |\n")
	fmt.Fprintf(&b, "|---|------|---------------|-----------|----|\n")
	fmt.Fprintf(&b, "| %d | %.4f | %.4f | %.4f | %d |\n\n",
		est.SampleSize, est.Mean, est.StdDev, est.StandardError, est.DegreesOfFreedom)

	b.WriteString("## Method\n\n")
	fmt.Fprintf(&b, "The interval is `mean ± t · s/√n`, where `t` is the two-tailed "+
		"critical value of the Student's t-distribution with %d degrees of freedom "+
		"at confidence level %.10g. The t-distribution is used because the "+
		"population standard deviation is unknown and estimated from the sample.\n\n",
		est.DegreesOfFreedom, level)

	b.WriteString("## Result\n\n")
	fmt.Fprintf(&b, "With %.10g%% confidence, the population mean lies in "+
		"**(%.4f, %.4f)** (width %.4f, margin of error %.4f).\n",
		level*100, a.Interval.Lower, a.Interval.Upper, a.Interval.Width(), a.Interval.Margin())

	return b.String()
}

// HTML renders the markdown report to HTML.
func HTML(a Analysis) []byte {
	return markdown.ToHTML([]byte(Markdown(a)), nil, nil)
}
