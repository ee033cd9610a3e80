//go:build e2e

package review_test

import (
	"fmt"
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

const reviewsURL = "/api/reviews"

func hotelReviewsURL(hotelID uuid.UUID) string {
	return fmt.Sprintf("/api/hotels/%s/reviews", hotelID)
}

func ratingSummaryURL(hotelID uuid.UUID) string {
	return fmt.Sprintf("/api/hotels/%s/rating-summary", hotelID)
}

type reviewSuite struct {
	e2e.SharedSuite
	authHelper *authHelper.AuthTestHelper
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

func (s *reviewSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.authHelper = authHelper.NewAuthTestHelper(s.DB, s.Config.JWT)
}

func (s *reviewSuite) guestToken(email string) string {
	return s.authHelper.CreateAndLogin(s.T(), s.Router, email, string(user.RoleGuest))
}

// postReview creates a review as the given user and returns its ID.
func (s *reviewSuite) postReview(token string, hotelID uuid.UUID, rating int, comment string) string {
	t := s.T()
	t.Helper()

	reqBody := request.CreateReviewRequest{
		HotelID: hotelID,
		Rating:  rating,
		Comment: comment,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.ReviewResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.ID
}

func (s *reviewSuite) fetchSummary(hotelID uuid.UUID) response.RatingSummaryResponse {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, ratingSummaryURL(hotelID), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.RatingSummaryResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *reviewSuite) TestRatingSummary() {
	s.Run("falls back to the catalog rating when no reviews exist", func() {
		t := s.T()

		summary := s.fetchSummary(dbtest.HotelGrandPalaceID)
		require.Equal(t, int32(0), summary.TotalReviews)
		require.Equal(t, 4.5, summary.AverageRating, "empty summary should show the seeded catalog rating")
	})

	s.Run("average follows posted reviews and rounds to one decimal", func() {
		t := s.T()

		s.postReview(s.guestToken("rev1@example.com"), dbtest.HotelGrandPalaceID, 4, "Great stay")
		s.postReview(s.guestToken("rev2@example.com"), dbtest.HotelGrandPalaceID, 4, "Would return")
		s.postReview(s.guestToken("rev3@example.com"), dbtest.HotelGrandPalaceID, 5, "Flawless")

		summary := s.fetchSummary(dbtest.HotelGrandPalaceID)
		require.Equal(t, int32(3), summary.TotalReviews)
		// (4+4+5)/3 = 4.333..., shown as 4.3
		require.Equal(t, 4.3, summary.AverageRating)
		require.Equal(t, int32(2), summary.Rating4Count)
		require.Equal(t, int32(1), summary.Rating5Count)
	})

	s.Run("deleting the only review restores the fallback", func() {
		t := s.T()
		token := s.guestToken("solo@example.com")

		reviewID := s.postReview(token, dbtest.HotelSeasideID, 2, "Disappointing")

		summary := s.fetchSummary(dbtest.HotelSeasideID)
		require.Equal(t, int32(1), summary.TotalReviews)
		require.Equal(t, 2.0, summary.AverageRating)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+reviewID, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		summary = s.fetchSummary(dbtest.HotelSeasideID)
		require.Equal(t, int32(0), summary.TotalReviews)
		require.Equal(t, 4.2, summary.AverageRating, "seeded catalog rating should return after the last delete")
	})

	s.Run("unknown hotel returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ratingSummaryURL(uuid.New()), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *reviewSuite) TestCreateReview() {
	s.Run("review appears in the hotel listing", func() {
		t := s.T()
		token := s.guestToken("lister@example.com")

		s.postReview(token, dbtest.HotelGrandPalaceID, 5, "Top marks")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, hotelReviewsURL(dbtest.HotelGrandPalaceID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var res response.ReviewListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Len(t, res.Reviews, 1)
		require.Equal(t, int32(5), res.Reviews[0].Rating)
		require.Equal(t, "Top marks", res.Reviews[0].Comment)
	})

	s.Run("rating filter narrows the listing", func() {
		t := s.T()

		s.postReview(s.guestToken("low@example.com"), dbtest.HotelGrandPalaceID, 2, "Noisy")
		s.postReview(s.guestToken("high@example.com"), dbtest.HotelGrandPalaceID, 5, "Quiet and clean")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, hotelReviewsURL(dbtest.HotelGrandPalaceID)+"?min_rating=4", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var res response.ReviewListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Len(t, res.Reviews, 1)
		require.Equal(t, int32(5), res.Reviews[0].Rating)
	})

	s.Run("out-of-range rating returns 400", func() {
		t := s.T()
		token := s.guestToken("badrating@example.com")

		reqBody := request.CreateReviewRequest{
			HotelID: dbtest.HotelGrandPalaceID,
			Rating:  6,
			Comment: "Too good",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("unknown hotel returns 404", func() {
		t := s.T()
		token := s.guestToken("ghost@example.com")

		reqBody := request.CreateReviewRequest{
			HotelID: uuid.New(),
			Rating:  4,
			Comment: "Where is this place",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("unauthenticated request returns 401", func() {
		t := s.T()

		reqBody := request.CreateReviewRequest{
			HotelID: dbtest.HotelGrandPalaceID,
			Rating:  4,
			Comment: "Anonymous",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *reviewSuite) TestUpdateReview() {
	s.Run("author can update, partial update keeps the other field", func() {
		t := s.T()
		token := s.guestToken("author@example.com")

		reviewID := s.postReview(token, dbtest.HotelGrandPalaceID, 3, "Average at best")

		newRating := 4
		reqBody := request.UpdateReviewRequest{Rating: &newRating}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+reviewID, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, int32(4), res.Rating)
		require.Equal(t, "Average at best", res.Comment, "comment must survive a rating-only update")

		summary := s.fetchSummary(dbtest.HotelGrandPalaceID)
		require.Equal(t, 4.0, summary.AverageRating, "summary should reflect the updated rating")
	})

	s.Run("non-author gets 403", func() {
		t := s.T()
		authorToken := s.guestToken("owner@example.com")
		otherToken := s.guestToken("intruder@example.com")

		reviewID := s.postReview(authorToken, dbtest.HotelGrandPalaceID, 3, "Mine")

		newRating := 1
		reqBody := request.UpdateReviewRequest{Rating: &newRating}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+reviewID, reqBody, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("unknown review returns 404", func() {
		t := s.T()
		token := s.guestToken("editor@example.com")

		newRating := 2
		reqBody := request.UpdateReviewRequest{Rating: &newRating}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+uuid.NewString(), reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *reviewSuite) TestDeleteReview() {
	s.Run("author can delete own review", func() {
		t := s.T()
		token := s.guestToken("remover@example.com")

		reviewID := s.postReview(token, dbtest.HotelGrandPalaceID, 3, "Changed my mind")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+reviewID, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+reviewID, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, "a second delete should report not found")
	})

	s.Run("admin can delete any review", func() {
		t := s.T()
		authorToken := s.guestToken("moderated@example.com")
		adminToken := s.authHelper.CreateAndLogin(t, s.Router, "admin@example.com", string(user.RoleAdmin))

		reviewID := s.postReview(authorToken, dbtest.HotelGrandPalaceID, 1, "Spam content")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+reviewID, nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	s.Run("non-author guest gets 403", func() {
		t := s.T()
		authorToken := s.guestToken("victim@example.com")
		otherToken := s.guestToken("vandal@example.com")

		reviewID := s.postReview(authorToken, dbtest.HotelGrandPalaceID, 4, "Pleasant")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+reviewID, nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
