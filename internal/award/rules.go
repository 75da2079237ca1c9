package award

import (
	"github.com/shopspring/decimal"

	"github.com/roach88/scholar/internal/record"
)

// DeductionPercent is the share of the total award paid to the class
// representative.
const DeductionPercent = 5

// Normalized values that earn a bonus.
const (
	BonusState  = "OSUN"
	BonusGender = "Female"
)

// Rule is one line of the award table.
type Rule struct {
	Key         string          `json:"key"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`

	applies func(record.Student) bool
}

// Applies reports whether the rule contributes to s's award.
func (r Rule) Applies(s record.Student) bool {
	return r.applies(s)
}

func always(record.Student) bool { return true }

// table is ordered the way the rules are printed.
var table = []Rule{
	{
		Key:         "general_gift",
		Description: "Base award",
		Amount:      decimal.NewFromInt(20000),
		applies:     always,
	},
	{
		Key:         "well_dressed",
		Description: "Well dressed",
		Amount:      decimal.NewFromInt(10000),
		applies:     func(s record.Student) bool { return s.WellDressed },
	},
	{
		Key:         "well_behaved",
		Description: "Well behaved",
		Amount:      decimal.NewFromInt(5000),
		applies:     func(s record.Student) bool { return s.WellBehaved },
	},
	{
		Key:         "osun_state",
		Description: "From " + BonusState + " state",
		Amount:      decimal.NewFromInt(15000),
		applies:     func(s record.Student) bool { return s.State == BonusState },
	},
	{
		Key:         "female_monthly",
		Description: "Female monthly allowance",
		Amount:      decimal.NewFromInt(1000),
		applies:     func(s record.Student) bool { return s.Gender == BonusGender },
	},
}

// Rules returns a copy of the award table.
func Rules() []Rule {
	out := make([]Rule, len(table))
	copy(out, table)
	return out
}

// DeductionRate returns DeductionPercent as a fraction (0.05).
func DeductionRate() decimal.Decimal {
	return decimal.New(DeductionPercent, -2)
}
