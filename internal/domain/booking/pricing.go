package booking

import "errors"

// ServiceFeeRate is the fixed surcharge applied to every booking subtotal.
const ServiceFeeRate = 0.10

var ErrNegativeRate = errors.New("nightly rate cannot be negative")

// PriceBreakdown carries unrounded monetary values; rounding to two decimals
// happens only at the display boundary, never in stored values.
type PriceBreakdown struct {
	Subtotal   float64
	ServiceFee float64
	Total      float64
}

// Breakdown computes the price for a stay. Pure and deterministic; callers
// recompute on every change to rate, range, or room count rather than caching
// the result.
func Breakdown(nightlyRate float64, nights, rooms int) PriceBreakdown {
	subtotal := nightlyRate * float64(nights) * float64(rooms)
	serviceFee := subtotal * ServiceFeeRate
	return PriceBreakdown{
		Subtotal:   subtotal,
		ServiceFee: serviceFee,
		Total:      subtotal + serviceFee,
	}
}
