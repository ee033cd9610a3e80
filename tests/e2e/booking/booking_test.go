//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/handler/dto/request"
	"hotelhub/internal/handler/dto/response"
	"hotelhub/tests/common/dbtest"
	"hotelhub/tests/common/httptest"
	"hotelhub/tests/e2e"
	authHelper "hotelhub/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	hotelsURL   = "/api/hotels"
)

type bookingSuite struct {
	e2e.SharedSuite
	authHelper *authHelper.AuthTestHelper
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.authHelper = authHelper.NewAuthTestHelper(s.DB, s.Config.JWT)
}

func (s *bookingSuite) guestToken(email string) string {
	return s.authHelper.CreateAndLogin(s.T(), s.Router, email, string(user.RoleGuest))
}

func validBookingRequest() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		HotelID:  dbtest.HotelGrandPalaceID,
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-13",
		Rooms:    2,
		Guests:   3,
	}
}

func (s *bookingSuite) TestHotelSearch() {
	s.Run("seeded catalog is searchable", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, hotelsURL+"?q=Grand", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.HotelListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Len(t, res.Hotels, 1)
		require.Equal(t, "Grand Palace", res.Hotels[0].Name)
		require.Equal(t, 250.0, res.Hotels[0].NightlyRate)
	})

	s.Run("price filter narrows the result", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, hotelsURL+"?max_price=200", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var res response.HotelListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Len(t, res.Hotels, 1)
		require.Equal(t, "Seaside Resort", res.Hotels[0].Name)
	})

	s.Run("hotel detail returns amenities", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, hotelsURL+"/"+dbtest.HotelGrandPalaceID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var res response.HotelDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "Grand Palace", res.Name)
		require.Contains(t, res.Amenities, "spa")
	})

	s.Run("unknown hotel returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, hotelsURL+"/"+uuid.NewString(), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("successful booking computes the price breakdown", func() {
		t := s.T()
		token := s.guestToken("booker@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, validBookingRequest(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "confirmed", res.Status)
		require.Equal(t, int32(3), res.Nights)
		// 250 * 3 nights * 2 rooms = 1500, plus 10% service fee
		require.Equal(t, 1500.0, res.Subtotal)
		require.Equal(t, 150.0, res.ServiceFee)
		require.Equal(t, 1650.0, res.Total)
		require.Equal(t, "Grand Palace", res.HotelName)
	})

	s.Run("booking freezes the hotel attributes at creation time", func() {
		t := s.T()
		token := s.guestToken("freeze@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, validBookingRequest(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// Catalog price change must not affect the stored booking
		_, err := s.DB.Exec(t.Context(), "UPDATE hotels SET nightly_rate = 999 WHERE id = $1", dbtest.HotelGrandPalaceID)
		require.NoError(t, err)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, 250.0, fetched.NightlyRate)
		require.Equal(t, 1650.0, fetched.Total)
	})

	s.Run("validation failures map to 400", func() {
		t := s.T()
		token := s.guestToken("invalid@example.com")

		tests := []struct {
			name   string
			mutate func(r *request.CreateBookingRequest)
		}{
			{
				name: "check-out before check-in",
				mutate: func(r *request.CreateBookingRequest) {
					r.CheckIn = "2026-09-13"
					r.CheckOut = "2026-09-10"
				},
			},
			{
				name: "zero-night stay",
				mutate: func(r *request.CreateBookingRequest) {
					r.CheckOut = r.CheckIn
				},
			},
			{
				name: "nonexistent calendar date",
				mutate: func(r *request.CreateBookingRequest) {
					r.CheckIn = "2026-02-30"
				},
			},
			{
				name: "malformed date",
				mutate: func(r *request.CreateBookingRequest) {
					r.CheckIn = "10/09/2026"
				},
			},
			{
				name: "zero rooms",
				mutate: func(r *request.CreateBookingRequest) {
					r.Rooms = 0
				},
			},
			{
				name: "zero guests",
				mutate: func(r *request.CreateBookingRequest) {
					r.Guests = 0
				},
			},
		}

		for _, tt := range tests {
			s.Run(tt.name, func() {
				reqBody := validBookingRequest()
				tt.mutate(&reqBody)

				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
				require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			})
		}
	})

	s.Run("unknown hotel returns 404", func() {
		t := s.T()
		token := s.guestToken("nohotel@example.com")

		reqBody := validBookingRequest()
		reqBody.HotelID = uuid.New()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("unauthenticated request returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, validBookingRequest(), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *bookingSuite) TestGetBooking() {
	s.Run("owner can fetch, others cannot", func() {
		t := s.T()
		ownerToken := s.guestToken("owner@example.com")
		otherToken := s.guestToken("other@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, validBookingRequest(), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, "a booking must only be visible to its owner")
	})

	s.Run("admin can fetch any booking", func() {
		t := s.T()
		ownerToken := s.guestToken("guest2@example.com")
		adminToken := s.authHelper.CreateAndLogin(t, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, validBookingRequest(), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("unknown booking returns 404", func() {
		t := s.T()
		token := s.guestToken("lost@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+uuid.NewString(), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestListBookings() {
	s.Run("newest first with cursor pagination", func() {
		t := s.T()
		token := s.guestToken("pager@example.com")

		checkIns := []string{"2026-09-10", "2026-10-01", "2026-11-20"}
		for _, checkIn := range checkIns {
			reqBody := validBookingRequest()
			reqBody.CheckIn = checkIn
			reqBody.CheckOut = checkIn[:8] + "25"
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var first response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))
		require.Len(t, first.Bookings, 2)
		require.NotEmpty(t, first.NextCursor, "a full page should carry a next cursor")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2&after="+first.NextCursor, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var second response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &second))
		require.Len(t, second.Bookings, 1)
		require.Empty(t, second.NextCursor, "the last page must not carry a cursor")

		seen := map[string]bool{}
		for _, b := range append(first.Bookings, second.Bookings...) {
			require.False(t, seen[b.ID], "pagination returned a duplicate booking")
			seen[b.ID] = true
		}
	})

	s.Run("only own bookings are listed", func() {
		t := s.T()
		aliceToken := s.guestToken("alice@example.com")
		bobToken := s.guestToken("bob@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, validBookingRequest(), aliceToken)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, bobToken)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Empty(t, res.Bookings)
	})

	s.Run("broken cursor returns 400", func() {
		t := s.T()
		token := s.guestToken("cursor@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?after=not-a-cursor", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
