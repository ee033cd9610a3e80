//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		cases := []struct {
			name string
			text string
			want string
		}{
			{name: "plain date", text: "2023-06-15", want: "2023-06-15"},
			{name: "leap day", text: "2024-02-29", want: "2024-02-29"},
			{name: "leading whitespace", text: "  2023-06-15", want: "2023-06-15"},
			{name: "trailing whitespace", text: "2023-06-15  ", want: "2023-06-15"},
			{name: "first day of year", text: "2023-01-01", want: "2023-01-01"},
			{name: "last day of year", text: "2023-12-31", want: "2023-12-31"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				d, err := booking.ParseDate(c.text)
				require.NoError(t, err)
				assert.Equal(t, c.want, d.String())
			})
		}
	})

	t.Run("malformed text", func(t *testing.T) {
		cases := []struct {
			name string
			text string
		}{
			{name: "empty string", text: ""},
			{name: "whitespace only", text: "   "},
			{name: "slashes", text: "2023/06/15"},
			{name: "unpadded month", text: "2023-6-15"},
			{name: "unpadded day", text: "2023-06-5"},
			{name: "two digit year", text: "23-06-15"},
			{name: "trailing garbage", text: "2023-06-15x"},
			{name: "embedded in sentence", text: "on 2023-06-15"},
			{name: "month thirteen", text: "2023-13-01"},
			{name: "month zero", text: "2023-00-10"},
			{name: "day zero", text: "2023-06-00"},
			{name: "day thirty-two", text: "2023-06-32"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := booking.ParseDate(c.text)
				require.ErrorIs(t, err, booking.ErrInvalidDateText)
			})
		}
	})

	t.Run("nonexistent calendar days", func(t *testing.T) {
		cases := []struct {
			name string
			text string
		}{
			{name: "february thirtieth", text: "2023-02-30"},
			{name: "non-leap february 29", text: "2023-02-29"},
			{name: "april thirty-first", text: "2023-04-31"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := booking.ParseDate(c.text)
				require.ErrorIs(t, err, booking.ErrNonexistentDate)
			})
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, text := range []string{"2023-01-01", "2024-02-29", "2023-12-31", "2023-06-15"} {
			d, err := booking.ParseDate(text)
			require.NoError(t, err)
			again, err := booking.ParseDate(d.String())
			require.NoError(t, err)
			assert.Equal(t, d, again)
		}
	})
}

func TestDateValue(t *testing.T) {
	t.Run("ordering", func(t *testing.T) {
		earlier := mustDate(t, "2023-06-15")
		later := mustDate(t, "2023-06-16")

		assert.True(t, earlier.Before(later))
		assert.True(t, later.After(earlier))
		assert.False(t, earlier.Before(earlier))
		assert.False(t, earlier.After(earlier))
	})

	t.Run("add days crosses month and year", func(t *testing.T) {
		d := mustDate(t, "2023-12-31")
		assert.Equal(t, "2024-01-01", d.AddDays(1).String())
		assert.Equal(t, "2023-12-30", d.AddDays(-1).String())
	})

	t.Run("days until", func(t *testing.T) {
		from := mustDate(t, "2023-06-15")
		assert.Equal(t, 3, from.DaysUntil(mustDate(t, "2023-06-18")))
		assert.Equal(t, 0, from.DaysUntil(from))
		assert.Equal(t, -2, from.DaysUntil(mustDate(t, "2023-06-13")))
	})

	t.Run("time is midnight UTC", func(t *testing.T) {
		d := mustDate(t, "2023-06-15")
		assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), d.Time())
	})

	t.Run("date of instant drops time of day", func(t *testing.T) {
		instant := time.Date(2023, 6, 15, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, "2023-06-15", booking.DateOf(instant).String())
	})
}

func TestStayRange(t *testing.T) {
	t.Run("nights per range", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  string
			checkOut string
			nights   int
		}{
			{name: "single night", checkIn: "2023-06-15", checkOut: "2023-06-16", nights: 1},
			{name: "three nights", checkIn: "2023-06-15", checkOut: "2023-06-18", nights: 3},
			{name: "across leap day", checkIn: "2024-02-28", checkOut: "2024-03-01", nights: 2},
			{name: "across year boundary", checkIn: "2023-12-30", checkOut: "2024-01-02", nights: 3},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				stay, err := booking.NewStayRange(mustDate(t, c.checkIn), mustDate(t, c.checkOut))
				require.NoError(t, err)
				assert.Equal(t, c.nights, stay.Nights())
			})
		}
	})

	t.Run("check-out must follow check-in", func(t *testing.T) {
		day := mustDate(t, "2023-06-15")

		_, err := booking.NewStayRange(day, day)
		require.ErrorIs(t, err, booking.ErrInvalidStayRange)

		_, err = booking.NewStayRange(day, mustDate(t, "2023-06-14"))
		require.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})
}

func mustDate(t *testing.T, text string) booking.DateValue {
	t.Helper()
	d, err := booking.ParseDate(text)
	require.NoError(t, err)
	return d
}
