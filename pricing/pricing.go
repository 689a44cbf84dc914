// Package pricing holds the pure money arithmetic behind payment
// reconciliation, order splitting and table merging. Everything here is
// integer math on XAF amounts so the database layer and the handlers can
// share one rounding policy.
package pricing

// DefaultTaxRateBasisPoints is the VAT rate applied to orders when no
// rate is configured: 1925 basis points = 19.25%.
const DefaultTaxRateBasisPoints = 1925

// Payment status values derived from an order's ledger.
const (
	PaymentPending  = "PENDING"
	PaymentPartial  = "PARTIAL"
	PaymentPaid     = "PAID"
	PaymentRefunded = "REFUNDED"
)

// TaxOn computes the tax on a subtotal at the given rate in basis
// points, rounding half up.
func TaxOn(subtotal, rateBasisPoints int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	return (subtotal*rateBasisPoints + 5000) / 10000
}

// BackOutTax decomposes a tax-inclusive amount into (subtotal, tax) at
// the given rate. subtotal + tax always reconstructs the input exactly.
func BackOutTax(total, rateBasisPoints int64) (subtotal, tax int64) {
	if total <= 0 {
		return total, 0
	}
	subtotal = (total*10000 + (10000+rateBasisPoints)/2) / (10000 + rateBasisPoints)
	return subtotal, total - subtotal
}

// StatusFor derives an order's payment status from the signed sum of its
// COMPLETED ledger entries. The thresholds are fixed: paid >= total is
// PAID, a positive partial balance is PARTIAL, a negative balance (more
// refunded than paid) is REFUNDED, anything else is PENDING.
func StatusFor(paidTotal, orderTotal int64) string {
	switch {
	case orderTotal > 0 && paidTotal >= orderTotal:
		return PaymentPaid
	case paidTotal > 0:
		return PaymentPartial
	case paidTotal < 0:
		return PaymentRefunded
	default:
		return PaymentPending
	}
}

// Share is one child order's money fields produced by a split.
type Share struct {
	Subtotal int64
	Tax      int64
	Discount int64
	Total    int64
}

// SplitEvenly divides a tax-inclusive total into n shares. The division
// remainder goes to the first share, so the shares always sum back to
// the input exactly. Each share's subtotal/tax are backed out of its
// total at the given rate.
func SplitEvenly(total int64, n int, rateBasisPoints int64) []Share {
	if n <= 0 {
		return nil
	}
	base := total / int64(n)
	remainder := total - base*int64(n)

	shares := make([]Share, n)
	for i := range shares {
		amount := base
		if i == 0 {
			amount += remainder
		}
		subtotal, tax := BackOutTax(amount, rateBasisPoints)
		shares[i] = Share{Subtotal: subtotal, Tax: tax, Total: amount}
	}
	return shares
}

// SplitByItems builds one share per item group. Each share's subtotal is
// the group's item total, tax is recomputed at the given rate, and the
// parent's discount is apportioned across the shares in proportion to
// their subtotals (remainder to the first share). Total follows the
// order invariant: total = subtotal + tax - discount.
func SplitByItems(groupSubtotals []int64, parentDiscount, rateBasisPoints int64) []Share {
	discounts := ApportionDiscount(parentDiscount, groupSubtotals)

	shares := make([]Share, len(groupSubtotals))
	for i, subtotal := range groupSubtotals {
		tax := TaxOn(subtotal, rateBasisPoints)
		shares[i] = Share{
			Subtotal: subtotal,
			Tax:      tax,
			Discount: discounts[i],
			Total:    subtotal + tax - discounts[i],
		}
	}
	return shares
}

// ApportionDiscount spreads a discount across groups proportionally to
// their subtotals. Rounding leftovers land on the first group so the
// apportioned parts always sum to the full discount.
func ApportionDiscount(discount int64, groupSubtotals []int64) []int64 {
	parts := make([]int64, len(groupSubtotals))
	if discount <= 0 || len(groupSubtotals) == 0 {
		return parts
	}

	var base int64
	for _, s := range groupSubtotals {
		base += s
	}
	if base <= 0 {
		parts[0] = discount
		return parts
	}

	var assigned int64
	for i, s := range groupSubtotals {
		parts[i] = discount * s / base
		assigned += parts[i]
	}
	parts[0] += discount - assigned
	return parts
}

// SumTotals returns the sum of the shares' totals.
func SumTotals(shares []Share) int64 {
	var sum int64
	for _, s := range shares {
		sum += s.Total
	}
	return sum
}

// SplitTolerance is the acceptable per-split rounding drift between the
// children's summed totals and the parent total: one unit per child.
func SplitTolerance(n int) int64 {
	return int64(n)
}

// WithinTolerance reports whether got is within tol of want.
func WithinTolerance(want, got, tol int64) bool {
	diff := want - got
	if diff < 0 {
		diff = -diff
	}
	return diff <= tol
}
