package award

import (
	"github.com/shopspring/decimal"

	"github.com/roach88/scholar/internal/record"
)

// Result is the award breakdown for one student. It is derived on every
// read and never stored.
type Result struct {
	TotalAward decimal.Decimal `json:"total_award"`
	Deduction  decimal.Decimal `json:"deduction"`
	NetPayment decimal.Decimal `json:"net_payment"`
}

// Calculate returns the award for s. It never fails and has no side effects.
func Calculate(s record.Student) Result {
	total := decimal.Zero
	for _, r := range table {
		if r.Applies(s) {
			total = total.Add(r.Amount)
		}
	}

	deduction := total.Mul(DeductionRate())
	return Result{
		TotalAward: total,
		Deduction:  deduction,
		NetPayment: total.Sub(deduction),
	}
}

// Breakdown returns the rules that contribute to s's award, in table order.
func Breakdown(s record.Student) []Rule {
	var applied []Rule
	for _, r := range table {
		if r.Applies(s) {
			applied = append(applied, r)
		}
	}
	return applied
}

// Add returns the field-wise sum of r and o.
func (r Result) Add(o Result) Result {
	return Result{
		TotalAward: r.TotalAward.Add(o.TotalAward),
		Deduction:  r.Deduction.Add(o.Deduction),
		NetPayment: r.NetPayment.Add(o.NetPayment),
	}
}

// Equal reports whether r and o hold numerically equal amounts.
func (r Result) Equal(o Result) bool {
	return r.TotalAward.Equal(o.TotalAward) &&
		r.Deduction.Equal(o.Deduction) &&
		r.NetPayment.Equal(o.NetPayment)
}
