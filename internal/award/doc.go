// Package award computes scholarship awards from stored student records.
//
// Calculate is a pure, total function over a fixed rule table:
//
//	always                 +20000  base award
//	well dressed           +10000
//	well behaved            +5000
//	state == "OSUN"        +15000
//	gender == "Female"      +1000
//
// A flat 5% deduction is taken from the total award. Amounts are
// decimal.Decimal values; the deduction is never rounded before it is
// subtracted, so the net payment may carry fractional units.
//
// State and gender are compared with exact, case-sensitive equality against
// their normalized forms. A record stored without normalization silently
// misses the bonus.
package award
