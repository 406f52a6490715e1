package batch

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/udisondev/expgrowth/internal/data"
	"github.com/udisondev/expgrowth/internal/game/progression"
)

// Reporter renders results with locale-aware number formatting.
type Reporter struct {
	p *message.Printer
}

// NewReporter returns a Reporter for a BCP 47 locale ("en", "de", ...).
func NewReporter(locale string) (*Reporter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return &Reporter{p: message.NewPrinter(tag)}, nil
}

// WriteResults writes one row per result followed by a summary line.
func (r *Reporter) WriteResults(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	r.p.Fprintf(tw, "NAME\tCURVE\tEXP\tLEVEL\tLEVEL EXP\tNEXT\tREMAINING\tPROGRESS\tNATURE\t\n")
	for _, res := range results {
		if res.Err != nil {
			r.p.Fprintf(tw, "%s\t%s\t-\t-\t-\t-\t-\t-\t-\t  error: %v\n", res.Name, res.Curve, res.Err)
			continue
		}
		pr := res.Progress
		r.p.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%.1f%%\t%s\t\n",
			res.Name, res.Curve,
			pr.Experience, pr.Level, pr.ExpForLevel,
			pr.ExpToNextLevel, pr.ExpRemaining,
			pr.Fraction*100, pr.Nature)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	s := Summarize(results)
	if _, err := r.p.Fprintf(w, "\n%d creatures, %d failed, %d at level %d\n",
		s.Total, s.Failed, s.MaxLevel, data.MaxLevel); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// WriteCurves writes the experience threshold of every curve at the given levels.
func (r *Reporter) WriteCurves(w io.Writer, levels []int32) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	r.p.Fprintf(tw, "CURVE\t")
	for _, lvl := range levels {
		r.p.Fprintf(tw, "L%d\t", lvl)
	}
	r.p.Fprintf(tw, "\n")

	for _, id := range data.GrowthCurveIDs() {
		table, err := data.LookupGrowthCurve(id)
		if err != nil {
			return err
		}
		r.p.Fprintf(tw, "%d %s\t", uint8(id), id)
		for _, lvl := range levels {
			r.p.Fprintf(tw, "%d\t", progression.ExpForLevel(lvl, table))
		}
		r.p.Fprintf(tw, "\n")
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing curves: %w", err)
	}
	return nil
}
