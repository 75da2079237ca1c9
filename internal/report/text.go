package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	lineWidth = 110
	title     = "🏆 PROFESSOR'S SCHOLARSHIP AWARD REPORT 🏆"

	// EmptyMessage is printed instead of a table when there are no students.
	EmptyMessage = "No student records found. Add a student to begin."

	// Currency is the symbol prefixed to every amount.
	Currency = "₦"
)

// WriteText renders r as the fixed-width text report.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder

	if r.Empty() {
		b.WriteString(EmptyMessage + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	rule := func(c string) { b.WriteString(strings.Repeat(c, lineWidth) + "\n") }

	rule("=")
	b.WriteString(strings.Repeat(" ", 30) + title + "\n")
	rule("-")
	fmt.Fprintf(&b, "| %-3s | %-18s | %-10s | %-26s | %-18s | %-18s |\n",
		"ID", "Name", "State",
		"Total Award ("+Currency+" - Money Paid)",
		"Tax Deduction ("+Currency+")",
		"Net Payment ("+Currency+")",
	)
	rule("-")

	for _, e := range r.Students {
		fmt.Fprintf(&b, "| %-3d | %-18s | %-10s | %-26s | %-18s | %-18s |\n",
			e.ID, e.Name, e.State,
			Money(e.TotalAward), Money(e.Deduction), Money(e.NetPayment),
		)
	}

	rule("=")
	fmt.Fprintf(&b, "| %-35s | %-26s | %-18s | %-18s |\n",
		"GRAND TOTALS",
		Money(r.Totals.TotalAward), Money(r.Totals.Deduction), Money(r.Totals.NetPayment),
	)
	rule("=")
	fmt.Fprintf(&b, "\nTAX/DEDUCTION RATE: %d%% paid to the Class Representative.\n", r.DeductionPercent)

	_, err := io.WriteString(w, b.String())
	return err
}

// Money formats d with the currency symbol, thousands separators and two
// decimal places, e.g. ₦48,450.00.
func Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// Beyond int64; print ungrouped rather than lose digits.
		return sign + Currency + fixed
	}

	p := message.NewPrinter(language.English)
	return sign + Currency + p.Sprintf("%d", n) + "." + frac
}
