//go:build unit

package booking_test

import (
	"testing"

	"hotelhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestBreakdown(t *testing.T) {
	cases := []struct {
		name       string
		rate       float64
		nights     int
		rooms      int
		subtotal   float64
		serviceFee float64
		total      float64
	}{
		{
			name: "three nights two rooms",
			rate: 100, nights: 3, rooms: 2,
			subtotal: 600, serviceFee: 60, total: 660,
		},
		{
			name: "single night single room",
			rate: 150, nights: 1, rooms: 1,
			subtotal: 150, serviceFee: 15, total: 165,
		},
		{
			name: "free stay",
			rate: 0, nights: 3, rooms: 2,
			subtotal: 0, serviceFee: 0, total: 0,
		},
		{
			name: "fractional rate",
			rate: 99.99, nights: 2, rooms: 1,
			subtotal: 199.98, serviceFee: 19.998, total: 219.978,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := booking.Breakdown(c.rate, c.nights, c.rooms)
			assert.InDelta(t, c.subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, c.serviceFee, got.ServiceFee, 1e-9)
			assert.InDelta(t, c.total, got.Total, 1e-9)
		})
	}
}

func TestBreakdownTotalIsSubtotalPlusFee(t *testing.T) {
	for _, rate := range []float64{0, 1, 49.5, 100, 123.45, 999.99} {
		for nights := 1; nights <= 5; nights++ {
			for rooms := 1; rooms <= 3; rooms++ {
				got := booking.Breakdown(rate, nights, rooms)
				assert.InDelta(t, got.Subtotal+got.ServiceFee, got.Total, 1e-9)
				assert.InDelta(t, got.Subtotal*booking.ServiceFeeRate, got.ServiceFee, 1e-9)
			}
		}
	}
}
