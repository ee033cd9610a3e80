//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/handler/api"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"
	"hotelhub/tests/common/builder"
	"hotelhub/tests/common/httptest"
	"hotelhub/tests/common/testutil"
	commandsmock "hotelhub/tests/mock/commands"
	queriesmock "hotelhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleGuest)
		c.Next()
	}

	s.router.POST("/reviews", authMiddleware, s.handler.Create)
	s.router.PUT("/reviews/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/reviews/:id", authMiddleware, s.handler.Delete)
	s.router.GET("/hotels/:id/reviews", s.handler.ListByHotel)
	s.router.GET("/hotels/:id/rating-summary", s.handler.RatingSummary)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReviewBuilder().BuildViewQuery()
	expectedResult := &commands.CreateReviewResult{ReviewID: returnView.ID}

	// Validation boundary cases
	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReview{
		{name: "missing field: hotel_id (required)", mutate: testutil.Field("hotel_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: rating (required)", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment (required)", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
	}

	empty := []testCaseReview{
		{name: "empty comment", mutate: testutil.Field("comment", ""), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReview{bound, missing, empty}

	s.Run("success: returns 201 Created with ReviewResponse", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID.String(), response.ID)
		s.Equal(returnView.Rating, response.Rating)
		s.Equal(returnView.Comment, response.Comment)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
							Return(expectedResult, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "hotel not found",
				commandsError:  commands.ErrHotelNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Hotel not found",
			},
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Create review failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Create review failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdate() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	reqBody := builder.NewReviewBuilder().BuildUpdateRequestDTO()
	returnView := builder.NewReviewBuilder().BuildViewQuery()
	returnView.ID = reviewID

	s.Run("success: returns 200 OK with updated review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(returnView, nil).Times(2)
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reviewID.String(), response.ID)
	})

	s.Run("success: partial update keeps unset fields", func() {
		// Only the rating changes; the command receives the existing comment
		partial := map[string]any{"rating": 2}
		expectedCmd := commands.UpdateReviewRequest{Rating: 2, Comment: returnView.Comment}

		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(returnView, nil).Times(2)
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, expectedCmd, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, partial, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/reviews/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, invalidURL, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found when review missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(nil, queries.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "review not owned",
				commandsError:  commands.ErrReviewNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "review not found",
				commandsError:  commands.ErrReviewNotFoundWrite,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Review not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Update failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
					Return(returnView, nil).Times(1)
				s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.userID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestDelete() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.userID, string(user.RoleGuest)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/reviews/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "review not owned",
				commandsError:  commands.ErrReviewNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "review not found",
				commandsError:  commands.ErrReviewNotFoundWrite,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Review not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Delete failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.userID, string(user.RoleGuest)).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("success: delete as admin", func() {
		adminRouter := gin.New()
		adminID := uuid.New()
		adminAuthMiddleware := func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", adminID)
				c.Set("user_role", user.RoleAdmin)
			}
			c.Next()
		}
		adminRouter.DELETE("/reviews/:id", adminAuthMiddleware, s.handler.Delete)

		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, adminID, string(user.RoleAdmin)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), adminRouter, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// TestListByHotel
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByHotel() {
	hotelID := uuid.New()
	baseURL := "/hotels/" + hotelID.String() + "/reviews"

	items := []*queries.ReviewListItem{
		builder.NewReviewBuilder().WithRating(5).BuildListItem(),
		builder.NewReviewBuilder().WithRating(4).BuildListItem(),
		builder.NewReviewBuilder().WithRating(3).BuildListItem(),
	}

	s.Run("success: returns review list by hotel", func() {
		expectedFilters := queries.ReviewFilters{}
		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), hotelID, expectedFilters, (*queries.Cursor)(nil), 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(len(items), len(response.Reviews))
	})

	s.Run("success: pagination and filters work", func() {
		url := baseURL + "?min_rating=4&max_rating=5&limit=10&after=cursor123"
		minRating := 4
		maxRating := 5
		expectedFilters := queries.ReviewFilters{MinRating: &minRating, MaxRating: &maxRating}
		expectedCursor := &queries.Cursor{After: "cursor123"}
		nextCursor := &queries.Cursor{After: "next_cursor456"}

		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), hotelID, expectedFilters, expectedCursor, 10).
			Return(items[:2], nextCursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, len(response.Reviews))
		s.Equal("next_cursor456", response.NextCursor)
	})

	s.Run("error: 400 Bad Request for invalid hotel UUID", func() {
		invalidURL := "/hotels/invalid-uuid/reviews"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, invalidURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hotel id")
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		expectedFilters := queries.ReviewFilters{}
		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), hotelID, expectedFilters, (*queries.Cursor)(nil), 20).
			Return(nil, nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list reviews")
	})

	s.Run("success: ignores invalid filter values", func() {
		url := baseURL + "?min_rating=invalid"
		expectedFilters := queries.ReviewFilters{}

		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), hotelID, expectedFilters, (*queries.Cursor)(nil), 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestRatingSummary
// ================================================================================

func (s *ReviewHandlerTestSuite) TestRatingSummary() {
	hotelID := uuid.New()
	url := "/hotels/" + hotelID.String() + "/rating-summary"

	expectedSummary := builder.NewReviewBuilder().WithHotelID(hotelID).BuildRatingSummary()

	s.Run("success: returns 200 OK with RatingSummaryResponse", func() {
		s.mockQueries.EXPECT().GetHotelRatingSummary(gomock.Any(), hotelID).
			Return(expectedSummary, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RatingSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(hotelID.String(), response.HotelID)
		s.Equal(expectedSummary.TotalReviews, response.TotalReviews)
		s.Equal(expectedSummary.AverageRating, response.AverageRating)
		s.Equal(expectedSummary.Rating1Count, response.Rating1Count)
		s.Equal(expectedSummary.Rating5Count, response.Rating5Count)
	})

	s.Run("error: 400 Bad Request for invalid hotel UUID", func() {
		invalidURL := "/hotels/invalid-uuid/rating-summary"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, invalidURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hotel id")
	})

	s.Run("error: 404 Not Found for missing hotel", func() {
		s.mockQueries.EXPECT().GetHotelRatingSummary(gomock.Any(), hotelID).
			Return(nil, queries.ErrHotelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetHotelRatingSummary(gomock.Any(), hotelID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to get summary")
	})
}
